package scenario

import (
	"errors"
	"fmt"

	"github.com/thesyncim/sitecheck/pkg/navigation"
)

// HomepageLoads navigates to cfg.URL, waiting for the full load event, and
// checks the document title against cfg.TitlePattern.
func HomepageLoads(page Page, cfg Config) error {
	if cfg.TitlePattern == nil {
		return errors.New("title pattern is required")
	}
	log := cfg.logger()

	page.SetDefaultNavigationTimeout(cfg.LoadTimeout)
	if err := page.Goto(cfg.URL, navigation.ReadyLoad); err != nil {
		return fmt.Errorf("failed to load homepage: %w", err)
	}

	title, err := page.Title()
	if err != nil {
		return err
	}
	if !cfg.TitlePattern.MatchString(title) {
		return assertionf("homepage title", "got %q, want match for %s", title, cfg.TitlePattern)
	}

	log.Info("homepage loaded", "url", cfg.URL, "title", title)
	return nil
}
