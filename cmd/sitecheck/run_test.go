package main

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thesyncim/sitecheck/internal/config"
	"github.com/thesyncim/sitecheck/internal/logging"
	"github.com/thesyncim/sitecheck/pkg/navigation"
	"github.com/thesyncim/sitecheck/pkg/scenario"
)

// nopPage satisfies scenario.Page for checks that never touch it.
type nopPage struct{}

func (nopPage) SetDefaultNavigationTimeout(time.Duration)       {}
func (nopPage) Goto(string, navigation.ReadyState) error        { return nil }
func (nopPage) WaitForTimeout(time.Duration)                    {}
func (nopPage) Title() (string, error)                          { return "", nil }
func (nopPage) ByLabel(string) (scenario.Element, error)        { return nil, errors.New("none") }
func (nopPage) ByRole(string, string) (scenario.Element, error) { return nil, errors.New("none") }

func TestRunIterations(t *testing.T) {
	var opened, closed int
	newPage := func() (scenario.Page, func() error, error) {
		opened++
		return nopPage{}, func() error { closed++; return nil }, nil
	}

	errBroken := errors.New("broken")
	checks := []check{
		{name: "ok", run: func(scenario.Page, *slog.Logger) error { return nil }},
		{name: "bad", run: func(scenario.Page, *slog.Logger) error { return errBroken }},
	}

	results := runIterations(3, checks, newPage, logging.Discard())

	require.Len(t, results, 6)
	assert.Equal(t, 6, opened, "each check gets a fresh page")
	assert.Equal(t, 6, closed)
	assert.Equal(t, 3, countFailed(results))
	assert.Equal(t, "ok", results[0].Check)
	assert.Equal(t, 1, results[0].Iteration)
	assert.Equal(t, "bad", results[5].Check)
	assert.Equal(t, 3, results[5].Iteration)
	assert.ErrorIs(t, results[5].Err, errBroken)
}

func TestRunIterations_PageErrors(t *testing.T) {
	errOpen := errors.New("no tab")
	newPage := func() (scenario.Page, func() error, error) {
		return nil, nil, errOpen
	}
	checks := []check{{name: "ok", run: func(scenario.Page, *slog.Logger) error { return nil }}}

	results := runIterations(1, checks, newPage, logging.Discard())
	require.Len(t, results, 1)
	assert.ErrorIs(t, results[0].Err, errOpen)
}

func TestRunIterations_CloseErrorIsReported(t *testing.T) {
	errClose := errors.New("close failed")
	newPage := func() (scenario.Page, func() error, error) {
		return nopPage{}, func() error { return errClose }, nil
	}
	checks := []check{{name: "ok", run: func(scenario.Page, *slog.Logger) error { return nil }}}

	results := runIterations(1, checks, newPage, logging.Discard())
	assert.ErrorIs(t, results[0].Err, errClose)
}

func TestRunIterations_LogsIteration(t *testing.T) {
	var buf bytes.Buffer
	log := logging.New(slog.LevelInfo, &buf)
	newPage := func() (scenario.Page, func() error, error) {
		return nopPage{}, func() error { return nil }, nil
	}
	checks := []check{{name: "homepage", run: func(scenario.Page, *slog.Logger) error { return nil }}}

	runIterations(2, checks, newPage, log)

	out := buf.String()
	assert.Contains(t, out, "check=homepage")
	assert.Contains(t, out, "iteration=2")
	assert.Contains(t, out, "check passed")
}

func TestRenderSummary(t *testing.T) {
	results := []result{
		{Check: "homepage", Iteration: 1, Duration: 1200 * time.Millisecond},
		{Check: "contact-form", Iteration: 1, Duration: 3 * time.Second, Err: errors.New("email required: not marked")},
	}

	out := renderSummary(results)
	assert.Contains(t, out, "Sitecheck Summary")
	assert.Contains(t, out, "homepage")
	assert.Contains(t, out, "email required: not marked")
	assert.Contains(t, out, "Checks: 2  Passed: 1  Failed: 1")
	assert.Contains(t, out, "FAIL")
}

// executeRun runs the run command with args and returns the config it
// would have checked with.
func executeRun(t *testing.T, args ...string) (config.Config, error) {
	t.Helper()

	var got config.Config
	cmd := newRunCmdWith(func(_ *cobra.Command, cfg config.Config) error {
		got = cfg
		return nil
	})
	cmd.SetArgs(args)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)

	err := cmd.Execute()
	return got, err
}

func TestRunCmd_FlagsOverrideDefaults(t *testing.T) {
	cfg, err := executeRun(t,
		"--url", "http://localhost:8080",
		"--title", "^Contact Fixture$",
		"-n", "4",
		"--attempts", "2",
		"--headless=false",
		"--seed", "42",
	)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080", cfg.Site.URL)
	assert.Equal(t, "^Contact Fixture$", cfg.Site.TitlePattern)
	assert.Equal(t, 4, cfg.Iterations)
	assert.Equal(t, 2, cfg.Navigation.Attempts)
	assert.False(t, cfg.Browser.Headless)
	assert.Equal(t, uint64(42), cfg.Seed)
	assert.Equal(t, 60*time.Second, cfg.Navigation.BaseTimeout, "unset flags keep config values")
}

func TestRunCmd_ConfigFileThenFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sitecheck.yaml")
	require.NoError(t, os.WriteFile(path, []byte("site:\n  url: http://from-file\niterations: 7\n"), 0o600))

	cfg, err := executeRun(t, "--config", path, "--iterations", "2")
	require.NoError(t, err)

	assert.Equal(t, "http://from-file", cfg.Site.URL)
	assert.Equal(t, 2, cfg.Iterations)
}

func TestRunCmd_RejectsInvalid(t *testing.T) {
	_, err := executeRun(t, "--iterations", "0")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestVersionCommand(t *testing.T) {
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"version"})

	require.NoError(t, root.Execute())
	assert.Equal(t, "sitecheck version dev\n", out.String())
}
