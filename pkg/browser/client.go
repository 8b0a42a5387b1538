// Package browser provides Chrome automation for the end-to-end checks.
// It wraps Rod so pages satisfy navigation.Navigator and expose the
// label- and role-based lookups the contact form scenario needs.
package browser

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"github.com/thesyncim/sitecheck/pkg/navigation"
)

// Config configures Chrome launch options.
type Config struct {
	Headless  bool          // Run in headless mode (default: true)
	NoSandbox bool          // Disable the Chrome sandbox, needed in most containers (default: true)
	Bin       string        // Chrome binary; empty lets Rod find or download one
	Timeout   time.Duration // Default element operation timeout (default: 30s)
}

// DefaultConfig returns sensible defaults for E2E testing.
func DefaultConfig() Config {
	return Config{
		Headless:  true,
		NoSandbox: true,
		Timeout:   30 * time.Second,
	}
}

// Client owns one Chrome process.
type Client struct {
	browser *rod.Browser
	timeout time.Duration
}

// NewClient launches Chrome and connects to it over the DevTools protocol.
func NewClient(cfg Config) (*Client, error) {
	if cfg.Timeout <= 0 {
		return nil, errors.New("browser timeout must be positive")
	}

	l := launcher.New().
		Headless(cfg.Headless).
		NoSandbox(cfg.NoSandbox).
		Set("disable-gpu").
		Set("disable-dev-shm-usage")
	if cfg.Bin != "" {
		l = l.Bin(cfg.Bin)
	}

	url, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("failed to launch Chrome: %w", err)
	}

	browser := rod.New().ControlURL(url)
	if err := browser.Connect(); err != nil {
		return nil, fmt.Errorf("failed to connect to Chrome: %w", err)
	}

	return &Client{
		browser: browser,
		timeout: cfg.Timeout,
	}, nil
}

// NewPage opens a blank tab. The page's navigation timeout starts at
// navigation.DefaultBaseTimeout.
func (c *Client) NewPage() (*Page, error) {
	p, err := c.browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, fmt.Errorf("failed to open page: %w", err)
	}
	return &Page{
		page:       p,
		navTimeout: navigation.DefaultBaseTimeout,
		timeout:    c.timeout,
	}, nil
}

// Close cleans up browser resources.
// Always call this (via defer) to prevent orphaned Chrome processes.
func (c *Client) Close() error {
	if c.browser != nil {
		return c.browser.Close()
	}
	return nil
}
