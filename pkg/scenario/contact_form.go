package scenario

import (
	"fmt"

	"github.com/thesyncim/sitecheck/pkg/fixture"
	"github.com/thesyncim/sitecheck/pkg/navigation"
)

// HTML5 constraint validation probes, evaluated with the email input bound to this.
const (
	jsRequired          = `() => this.required === true`
	jsValueMissing      = `() => this.validity.valueMissing === true`
	jsInvalid           = `() => this.matches(':invalid')`
	jsValidationMessage = `() => this.validationMessage`
)

// ContactFormRequiresEmail fills only the first and last name fields of the
// contact form, submits it, and checks that the browser flags the empty
// company email field as required and invalid.
func ContactFormRequiresEmail(page Page, gen fixture.Generator, cfg Config) error {
	log := cfg.logger()

	err := navigation.GotoWithRetry(page, cfg.URL,
		navigation.WithAttempts(cfg.NavAttempts),
		navigation.WithBaseTimeout(cfg.NavBaseTimeout),
		navigation.WithLogger(log),
	)
	if err != nil {
		return err
	}

	form, err := locateForm(page, cfg)
	if err != nil {
		log.Error("failed to locate form elements", "error", err)
		return err
	}

	if err := form.firstName.ScrollIntoView(); err != nil {
		return fmt.Errorf("failed to scroll to contact form: %w", err)
	}
	for _, el := range []Element{form.firstName, form.lastName, form.submit, form.email} {
		if err := el.WaitVisible(cfg.VisibleTimeout); err != nil {
			return err
		}
	}

	first, last := gen.FirstName(), gen.LastName()
	display, err := fixture.FullName(first, last)
	if err != nil {
		return fmt.Errorf("generated test data is unusable: %w", err)
	}
	log.Info("using test data", "name", display)

	if err := form.firstName.Fill(first); err != nil {
		return fmt.Errorf("failed to fill %q: %w", cfg.FirstNameLabel, err)
	}
	if err := form.lastName.Fill(last); err != nil {
		return fmt.Errorf("failed to fill %q: %w", cfg.LastNameLabel, err)
	}

	value, err := form.email.InputValue()
	if err != nil {
		return err
	}
	if value != "" {
		return assertionf("email empty before submit", "expected email field to be empty, but got: %q", value)
	}

	if err := form.submit.Click(); err != nil {
		return fmt.Errorf("failed to click %q: %w", cfg.SubmitName, err)
	}
	page.WaitForTimeout(cfg.SettleDelay)

	if err := checkEmailInvalid(form.email); err != nil {
		return err
	}

	log.Info("contact form validation passed", "url", cfg.URL)
	return nil
}

type contactForm struct {
	firstName Element
	lastName  Element
	email     Element
	submit    Element
}

func locateForm(page Page, cfg Config) (*contactForm, error) {
	var (
		f   contactForm
		err error
	)
	if f.firstName, err = page.ByLabel(cfg.FirstNameLabel); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFormNotFound, err)
	}
	if f.lastName, err = page.ByLabel(cfg.LastNameLabel); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFormNotFound, err)
	}
	if f.submit, err = page.ByRole("button", cfg.SubmitName); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFormNotFound, err)
	}
	if f.email, err = page.ByLabel(cfg.EmailLabel); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFormNotFound, err)
	}
	return &f, nil
}

func checkEmailInvalid(email Element) error {
	checks := []struct {
		name string
		js   string
		msg  string
	}{
		{"email required", jsRequired, "Company email input should be marked as required"},
		{"email value missing", jsValueMissing, "Company email should trigger valueMissing validation"},
		{"email invalid", jsInvalid, "Company email should be in :invalid state after submission"},
	}
	for _, c := range checks {
		ok, err := email.EvalBool(c.js)
		if err != nil {
			return err
		}
		if !ok {
			return assertionf(c.name, "%s", c.msg)
		}
	}

	msg, err := email.EvalString(jsValidationMessage)
	if err != nil {
		return err
	}
	if msg == "" {
		return assertionf("email validation message", "expected validation message, got: %q", msg)
	}
	return nil
}
