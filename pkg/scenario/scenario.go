// Package scenario implements the end-to-end checks run against the
// marketing site: the homepage loads with the expected title, and the
// contact form refuses a submission without a company email.
//
// Scenarios return errors instead of failing a test directly so the same
// checks back both the e2e test suite and the sitecheck CLI.
package scenario

import (
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"time"

	"github.com/thesyncim/sitecheck/internal/logging"
	"github.com/thesyncim/sitecheck/pkg/browser"
	"github.com/thesyncim/sitecheck/pkg/navigation"
)

// DefaultTitlePattern matches the production homepage title, allowing
// trailing whitespace.
const DefaultTitlePattern = `^Innovative Security Automation Solutions for Smart Cities MENAT\s*$`

// ErrFormNotFound is returned when the contact form controls cannot be located.
var ErrFormNotFound = errors.New("contact form elements not found - page structure may have changed")

// AssertionError reports a check that ran but observed the wrong state.
type AssertionError struct {
	Check string
	Msg   string
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	return e.Check + ": " + e.Msg
}

func assertionf(check, format string, args ...any) error {
	return &AssertionError{Check: check, Msg: fmt.Sprintf(format, args...)}
}

// Config holds the target site and timing for the scenarios.
type Config struct {
	URL          string
	TitlePattern *regexp.Regexp

	LoadTimeout    time.Duration // Homepage navigation timeout (default: 60s)
	NavAttempts    int           // Contact form navigation attempts (default: 3)
	NavBaseTimeout time.Duration // First-attempt navigation timeout (default: 60s)
	VisibleTimeout time.Duration // Wait for form controls to be visible (default: 30s)
	SettleDelay    time.Duration // Pause after submit for validation to run (default: 500ms)

	FirstNameLabel string
	LastNameLabel  string
	EmailLabel     string
	SubmitName     string

	Logger *slog.Logger
}

// DefaultConfig returns a Config for url with the production title pattern
// and contact form labels.
func DefaultConfig(url string) Config {
	return Config{
		URL:            url,
		TitlePattern:   regexp.MustCompile(DefaultTitlePattern),
		LoadTimeout:    60 * time.Second,
		NavAttempts:    navigation.DefaultAttempts,
		NavBaseTimeout: navigation.DefaultBaseTimeout,
		VisibleTimeout: 30 * time.Second,
		SettleDelay:    500 * time.Millisecond,
		FirstNameLabel: "First name",
		LastNameLabel:  "Last name",
		EmailLabel:     "Company email",
		SubmitName:     "Submit",
	}
}

func (c Config) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return logging.Discard()
}

// Element is a located form control.
type Element interface {
	ScrollIntoView() error
	WaitVisible(d time.Duration) error
	Fill(text string) error
	Click() error
	InputValue() (string, error)
	EvalBool(js string) (bool, error)
	EvalString(js string) (string, error)
}

// Page is what the scenarios need from a browser tab.
type Page interface {
	navigation.Navigator
	Title() (string, error)
	ByLabel(label string) (Element, error)
	ByRole(role, name string) (Element, error)
}

// browserPage adapts *browser.Page to Page.
type browserPage struct {
	*browser.Page
}

// FromBrowser wraps a Rod-backed page for use with the scenarios.
func FromBrowser(p *browser.Page) Page {
	return browserPage{Page: p}
}

func (b browserPage) ByLabel(label string) (Element, error) {
	el, err := b.Page.ByLabel(label)
	if err != nil {
		return nil, err
	}
	return el, nil
}

func (b browserPage) ByRole(role, name string) (Element, error) {
	el, err := b.Page.ByRole(role, name)
	if err != nil {
		return nil, err
	}
	return el, nil
}
