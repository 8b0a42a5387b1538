//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/thesyncim/sitecheck/cmd/contact-fixture/server"
	"github.com/thesyncim/sitecheck/pkg/browser"
	"github.com/thesyncim/sitecheck/pkg/scenario"
)

const fixtureTitle = "Contact Fixture"

// startFixture runs the contact-fixture server on a random port and returns
// its URL. The server is shut down when the test ends.
func startFixture(t *testing.T) string {
	t.Helper()

	cfg := server.DefaultConfig()
	cfg.Title = fixtureTitle
	srv, err := server.NewServer(cfg)
	require.NoError(t, err, "failed to create server")

	addr, err := srv.Start()
	require.NoError(t, err, "failed to start server")
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			t.Errorf("server shutdown error: %v", err)
		}
	})

	t.Logf("Fixture server started on %s", addr)
	return srv.URL()
}

// targetConfig returns the scenario config for -site, or for a fresh
// fixture server when -site is not set.
func targetConfig(t *testing.T) scenario.Config {
	t.Helper()

	if *siteURL != "" {
		cfg := scenario.DefaultConfig(*siteURL)
		if *siteTitle != "" {
			cfg.TitlePattern = regexp.MustCompile(*siteTitle)
		}
		return cfg
	}

	cfg := scenario.DefaultConfig(startFixture(t))
	cfg.TitlePattern = regexp.MustCompile(`^` + regexp.QuoteMeta(fixtureTitle) + `\s*$`)
	// The fixture is local; keep failures fast.
	cfg.LoadTimeout = 15 * time.Second
	cfg.NavBaseTimeout = 15 * time.Second
	cfg.VisibleTimeout = 10 * time.Second
	return cfg
}

// newClient launches Chrome for the duration of the test.
func newClient(t *testing.T) *browser.Client {
	t.Helper()

	client, err := browser.NewClient(browser.DefaultConfig())
	require.NoError(t, err, "failed to create browser")
	t.Cleanup(func() {
		if err := client.Close(); err != nil {
			t.Errorf("browser close error: %v", err)
		}
	})
	return client
}

// newPage opens a tab owned by the calling test.
func newPage(t *testing.T, client *browser.Client) *browser.Page {
	t.Helper()

	page, err := client.NewPage()
	require.NoError(t, err, "failed to open page")
	t.Cleanup(func() { _ = page.Close() })
	return page
}

// forEachIteration runs fn as one subtest per -iterations value.
func forEachIteration(t *testing.T, fn func(t *testing.T, iteration int)) {
	for i := 1; i <= *iterations; i++ {
		t.Run(fmt.Sprintf("iteration=%d", i), func(t *testing.T) {
			fn(t, i)
		})
	}
}
