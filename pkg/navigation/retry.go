package navigation

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/thesyncim/sitecheck/internal/logging"
)

const (
	// DefaultAttempts is the number of navigation attempts made by GotoWithRetry.
	DefaultAttempts = 3
	// DefaultBaseTimeout is the navigation timeout of the first attempt.
	// Attempt i runs with DefaultBaseTimeout * i.
	DefaultBaseTimeout = 60 * time.Second
	// BackoffStep is the wait inserted after failed attempt i, multiplied by i.
	BackoffStep = time.Second
)

// ErrInvalidOption is returned when GotoWithRetry is configured with values
// it cannot honor. No navigation is attempted in that case.
var ErrInvalidOption = errors.New("invalid navigation option")

// Option configures GotoWithRetry.
type Option func(*retryConfig) error

type retryConfig struct {
	attempts    int
	baseTimeout time.Duration
	logger      *slog.Logger
}

// WithAttempts sets the maximum number of navigation attempts.
// Default: 3. Must be at least 1; 1 disables retries.
func WithAttempts(n int) Option {
	return func(c *retryConfig) error {
		if n < 1 {
			return fmt.Errorf("%w: attempts must be >= 1, got %d", ErrInvalidOption, n)
		}
		c.attempts = n
		return nil
	}
}

// WithBaseTimeout sets the navigation timeout of the first attempt.
// Default: 60s
func WithBaseTimeout(d time.Duration) Option {
	return func(c *retryConfig) error {
		if d <= 0 {
			return fmt.Errorf("%w: base timeout must be positive, got %v", ErrInvalidOption, d)
		}
		c.baseTimeout = d
		return nil
	}
}

// WithLogger sets the logger that records attempt outcomes.
// Default: discard
func WithLogger(l *slog.Logger) Option {
	return func(c *retryConfig) error {
		if l != nil {
			c.logger = l
		}
		return nil
	}
}

// GotoWithRetry navigates nav to url, waiting only for the document structure
// to be ready. Attempt i uses a navigation timeout of base*i; after a failed
// attempt that is not the last one it waits i seconds before trying again.
//
// Every error kind is retried the same way. When the last attempt fails its
// error is returned as-is so callers can inspect it with errors.Is/As.
func GotoWithRetry(nav Navigator, url string, opts ...Option) error {
	cfg := retryConfig{
		attempts:    DefaultAttempts,
		baseTimeout: DefaultBaseTimeout,
		logger:      logging.Discard(),
	}
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return err
		}
	}
	if nav == nil {
		return fmt.Errorf("%w: navigator must not be nil", ErrInvalidOption)
	}
	if url == "" {
		return fmt.Errorf("%w: url must not be empty", ErrInvalidOption)
	}

	for i := 1; i <= cfg.attempts; i++ {
		nav.SetDefaultNavigationTimeout(cfg.baseTimeout * time.Duration(i))

		err := nav.Goto(url, ReadyDOMContentLoaded)
		if err == nil {
			cfg.logger.Info("navigated", "url", url, "attempt", i)
			return nil
		}

		cfg.logger.Warn("navigation attempt failed", "url", url, "attempt", i, "error", err)
		if i == cfg.attempts {
			cfg.logger.Error("all navigation attempts failed", "url", url, "attempts", cfg.attempts)
			return err
		}

		nav.WaitForTimeout(BackoffStep * time.Duration(i))
	}
	return nil
}
