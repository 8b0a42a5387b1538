// Package config loads sitecheck settings from YAML.
package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/thesyncim/sitecheck/pkg/browser"
	"github.com/thesyncim/sitecheck/pkg/navigation"
	"github.com/thesyncim/sitecheck/pkg/scenario"
)

// DefaultSiteURL is the production site checked when no URL is configured.
const DefaultSiteURL = "https://veertec.com"

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the top-level sitecheck configuration.
type Config struct {
	Site       SiteConfig       `yaml:"site"`
	Browser    BrowserConfig    `yaml:"browser"`
	Navigation NavigationConfig `yaml:"navigation"`
	Iterations int              `yaml:"iterations"`
	LogLevel   string           `yaml:"log_level"`
	Seed       uint64           `yaml:"seed"`
}

// SiteConfig describes the site under test.
type SiteConfig struct {
	URL          string     `yaml:"url"`
	TitlePattern string     `yaml:"title_pattern"`
	Form         FormConfig `yaml:"form"`
}

// FormConfig names the contact form controls.
type FormConfig struct {
	FirstNameLabel string `yaml:"first_name_label"`
	LastNameLabel  string `yaml:"last_name_label"`
	EmailLabel     string `yaml:"email_label"`
	SubmitName     string `yaml:"submit_name"`
}

// BrowserConfig configures Chrome.
type BrowserConfig struct {
	Headless  bool          `yaml:"headless"`
	NoSandbox bool          `yaml:"no_sandbox"`
	Bin       string        `yaml:"bin"`
	Timeout   time.Duration `yaml:"timeout"`
}

// NavigationConfig configures page loads.
type NavigationConfig struct {
	Attempts       int           `yaml:"attempts"`
	BaseTimeout    time.Duration `yaml:"base_timeout"`
	LoadTimeout    time.Duration `yaml:"load_timeout"`
	VisibleTimeout time.Duration `yaml:"visible_timeout"`
	SettleDelay    time.Duration `yaml:"settle_delay"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	sc := scenario.DefaultConfig(DefaultSiteURL)
	bc := browser.DefaultConfig()
	return Config{
		Site: SiteConfig{
			URL:          DefaultSiteURL,
			TitlePattern: scenario.DefaultTitlePattern,
			Form: FormConfig{
				FirstNameLabel: sc.FirstNameLabel,
				LastNameLabel:  sc.LastNameLabel,
				EmailLabel:     sc.EmailLabel,
				SubmitName:     sc.SubmitName,
			},
		},
		Browser: BrowserConfig{
			Headless:  bc.Headless,
			NoSandbox: bc.NoSandbox,
			Bin:       bc.Bin,
			Timeout:   bc.Timeout,
		},
		Navigation: NavigationConfig{
			Attempts:       navigation.DefaultAttempts,
			BaseTimeout:    navigation.DefaultBaseTimeout,
			LoadTimeout:    sc.LoadTimeout,
			VisibleTimeout: sc.VisibleTimeout,
			SettleDelay:    sc.SettleDelay,
		},
		Iterations: 1,
		LogLevel:   "info",
	}
}

// Load reads path and overlays it on Default. The result is validated.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that the configuration can drive a run.
func (c Config) Validate() error {
	if c.Site.URL == "" {
		return fmt.Errorf("%w: site.url is required", ErrInvalidConfig)
	}
	if _, err := regexp.Compile(c.Site.TitlePattern); err != nil {
		return fmt.Errorf("%w: site.title_pattern: %v", ErrInvalidConfig, err)
	}
	if c.Iterations < 1 {
		return fmt.Errorf("%w: iterations must be >= 1, got %d", ErrInvalidConfig, c.Iterations)
	}
	if c.Navigation.Attempts < 1 {
		return fmt.Errorf("%w: navigation.attempts must be >= 1, got %d", ErrInvalidConfig, c.Navigation.Attempts)
	}
	if c.Navigation.BaseTimeout <= 0 || c.Navigation.LoadTimeout <= 0 {
		return fmt.Errorf("%w: navigation timeouts must be positive", ErrInvalidConfig)
	}
	if c.Navigation.VisibleTimeout <= 0 {
		return fmt.Errorf("%w: navigation.visible_timeout must be positive", ErrInvalidConfig)
	}
	if c.Navigation.SettleDelay < 0 {
		return fmt.Errorf("%w: navigation.settle_delay must not be negative", ErrInvalidConfig)
	}
	form := []struct{ key, value string }{
		{"site.form.first_name_label", c.Site.Form.FirstNameLabel},
		{"site.form.last_name_label", c.Site.Form.LastNameLabel},
		{"site.form.email_label", c.Site.Form.EmailLabel},
		{"site.form.submit_name", c.Site.Form.SubmitName},
	}
	for _, f := range form {
		// An empty name matches the first control on the page.
		if strings.TrimSpace(f.value) == "" {
			return fmt.Errorf("%w: %s is required", ErrInvalidConfig, f.key)
		}
	}
	if c.Browser.Timeout <= 0 {
		return fmt.Errorf("%w: browser.timeout must be positive", ErrInvalidConfig)
	}
	return nil
}

// ScenarioConfig converts the site and navigation sections for the scenarios.
// The configuration must have passed Validate.
func (c Config) ScenarioConfig() scenario.Config {
	sc := scenario.DefaultConfig(c.Site.URL)
	sc.TitlePattern = regexp.MustCompile(c.Site.TitlePattern)
	sc.LoadTimeout = c.Navigation.LoadTimeout
	sc.NavAttempts = c.Navigation.Attempts
	sc.NavBaseTimeout = c.Navigation.BaseTimeout
	sc.VisibleTimeout = c.Navigation.VisibleTimeout
	sc.SettleDelay = c.Navigation.SettleDelay
	sc.FirstNameLabel = c.Site.Form.FirstNameLabel
	sc.LastNameLabel = c.Site.Form.LastNameLabel
	sc.EmailLabel = c.Site.Form.EmailLabel
	sc.SubmitName = c.Site.Form.SubmitName
	return sc
}

// BrowserOptions converts the browser section for browser.NewClient.
func (c Config) BrowserOptions() browser.Config {
	return browser.Config{
		Headless:  c.Browser.Headless,
		NoSandbox: c.Browser.NoSandbox,
		Bin:       c.Browser.Bin,
		Timeout:   c.Browser.Timeout,
	}
}
