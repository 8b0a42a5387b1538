// Contact form fixture server.
//
// Serves a stand-in homepage with a contact form whose company email field
// is required. Point sitecheck or a browser at it to try the checks locally:
//
//	go run ./cmd/contact-fixture -addr :8080
//	go run ./cmd/sitecheck run --url http://localhost:8080 --title "^Contact Fixture$"
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/thesyncim/sitecheck/cmd/contact-fixture/server"
)

func main() {
	addr := flag.String("addr", ":8080", "Listen address")
	title := flag.String("title", server.DefaultTitle, "Homepage title")
	flag.Parse()

	cfg := server.DefaultConfig()
	cfg.Addr = *addr
	cfg.Title = *title

	srv, err := server.NewServer(cfg)
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}

	listenAddr, err := srv.Start()
	if err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
	log.Printf("Listening on %s (%s)", listenAddr, srv.URL())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	log.Printf("Received %v, shutting down", sig)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Shutdown failed: %v", err)
	}
}
