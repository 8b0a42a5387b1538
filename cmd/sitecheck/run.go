package main

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/thesyncim/sitecheck/internal/config"
	"github.com/thesyncim/sitecheck/internal/logging"
	"github.com/thesyncim/sitecheck/pkg/browser"
	"github.com/thesyncim/sitecheck/pkg/fixture"
	"github.com/thesyncim/sitecheck/pkg/scenario"
)

type runOptions struct {
	configPath string
	url        string
	title      string
	iterations int
	attempts   int
	headless   bool
	logLevel   string
	seed       uint64
}

func newRunCmd() *cobra.Command {
	return newRunCmdWith(runChecks)
}

// newRunCmdWith builds the run command; run receives the resolved config.
func newRunCmdWith(run func(cmd *cobra.Command, cfg config.Config) error) *cobra.Command {
	opts := &runOptions{}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the homepage and contact form checks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.resolve(cmd)
			if err != nil {
				return err
			}
			return run(cmd, cfg)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.configPath, "config", "c", "", "YAML config file")
	f.StringVar(&opts.url, "url", "", "Site URL (overrides config)")
	f.StringVar(&opts.title, "title", "", "Homepage title regular expression (overrides config)")
	f.IntVarP(&opts.iterations, "iterations", "n", 1, "How many times to repeat each check")
	f.IntVar(&opts.attempts, "attempts", 3, "Navigation attempts for the contact form page")
	f.BoolVar(&opts.headless, "headless", true, "Run Chrome headless")
	f.StringVar(&opts.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	f.Uint64Var(&opts.seed, "seed", 0, "Fake data seed (0 = random)")
	return cmd
}

// resolve loads the config file, if any, and applies flags that were set
// explicitly on the command line.
func (o *runOptions) resolve(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()
	if o.configPath != "" {
		loaded, err := config.Load(o.configPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("url") {
		cfg.Site.URL = o.url
	}
	if flags.Changed("title") {
		cfg.Site.TitlePattern = o.title
	}
	if flags.Changed("iterations") {
		cfg.Iterations = o.iterations
	}
	if flags.Changed("attempts") {
		cfg.Navigation.Attempts = o.attempts
	}
	if flags.Changed("headless") {
		cfg.Browser.Headless = o.headless
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = o.logLevel
	}
	if flags.Changed("seed") {
		cfg.Seed = o.seed
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func runChecks(cmd *cobra.Command, cfg config.Config) error {
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	log := logging.New(level, cmd.ErrOrStderr()).With("run_id", uuid.NewString())

	client, err := browser.NewClient(cfg.BrowserOptions())
	if err != nil {
		return err
	}
	defer func() {
		if err := client.Close(); err != nil {
			log.Warn("browser close failed", "error", err)
		}
	}()

	newPage := func() (scenario.Page, func() error, error) {
		p, err := client.NewPage()
		if err != nil {
			return nil, nil, err
		}
		return scenario.FromBrowser(p), p.Close, nil
	}

	sc := cfg.ScenarioConfig()
	gen := fixture.NewGenerator(cfg.Seed)
	results := runIterations(cfg.Iterations, checksFor(sc, gen), newPage, log)

	fmt.Fprint(cmd.OutOrStdout(), renderSummary(results))
	if failed := countFailed(results); failed > 0 {
		return fmt.Errorf("%d of %d checks failed", failed, len(results))
	}
	return nil
}

// check is one named scenario bound to its configuration.
type check struct {
	name string
	run  func(page scenario.Page, log *slog.Logger) error
}

func checksFor(sc scenario.Config, gen fixture.Generator) []check {
	return []check{
		{
			name: "homepage",
			run: func(page scenario.Page, log *slog.Logger) error {
				c := sc
				c.Logger = log
				return scenario.HomepageLoads(page, c)
			},
		},
		{
			name: "contact-form",
			run: func(page scenario.Page, log *slog.Logger) error {
				c := sc
				c.Logger = log
				return scenario.ContactFormRequiresEmail(page, gen, c)
			},
		},
	}
}

// result records the outcome of one check in one iteration.
type result struct {
	Check     string
	Iteration int
	Duration  time.Duration
	Err       error
}

type pageFactory func() (page scenario.Page, closePage func() error, err error)

// runIterations runs every check once per iteration, sequentially, each on a
// fresh page.
func runIterations(iterations int, checks []check, newPage pageFactory, log *slog.Logger) []result {
	results := make([]result, 0, iterations*len(checks))
	for i := 1; i <= iterations; i++ {
		for _, c := range checks {
			clog := log.With("check", c.name, "iteration", i)
			clog.Info("starting check")

			start := time.Now()
			err := runOne(c, newPage, clog)
			res := result{Check: c.name, Iteration: i, Duration: time.Since(start), Err: err}
			results = append(results, res)

			if err != nil {
				clog.Error("check failed", "error", err, "duration", res.Duration)
				continue
			}
			clog.Info("check passed", "duration", res.Duration)
		}
	}
	return results
}

func runOne(c check, newPage pageFactory, log *slog.Logger) (err error) {
	page, closePage, err := newPage()
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, closePage())
	}()
	return c.run(page, log)
}

func countFailed(results []result) int {
	n := 0
	for _, r := range results {
		if r.Err != nil {
			n++
		}
	}
	return n
}
