package server

import (
	"html/template"
	"log"
	"net/http"
	"strings"
)

type homeData struct {
	Title     string
	Submitted bool
}

func homeHandler(tmpl *template.Template, title string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		data := homeData{
			Title:     title,
			Submitted: r.URL.Query().Get("submitted") == "1",
		}
		if err := tmpl.Execute(w, data); err != nil {
			log.Printf("Failed to render homepage: %v", err)
		}
	})
}

// HandleContact accepts contact form submissions. The browser enforces the
// required fields; the server re-checks them and redirects back home.
func HandleContact(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}

	for _, field := range []string{"first_name", "last_name", "company_email"} {
		if strings.TrimSpace(r.PostForm.Get(field)) == "" {
			http.Error(w, field+" is required", http.StatusUnprocessableEntity)
			return
		}
	}

	log.Printf("Contact submission from %s", r.PostForm.Get("company_email"))
	http.Redirect(w, r, "/?submitted=1", http.StatusSeeOther)
}
