// Command astrolog is the interactive Czech astrologer and numerologist.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/war-crycz/ai-kurz/agents"
	"github.com/war-crycz/ai-kurz/astrolog"
	"github.com/war-crycz/ai-kurz/components/contextwindow"
	"github.com/war-crycz/ai-kurz/components/healthcheck"
	"github.com/war-crycz/ai-kurz/config"
	"github.com/war-crycz/ai-kurz/logger"
	"github.com/war-crycz/ai-kurz/tools/browser"
	"github.com/war-crycz/ai-kurz/tools/people"
	"github.com/war-crycz/ai-kurz/tools/searxng"
	"github.com/war-crycz/ai-kurz/tools/webscraper"
)

func main() {
	app := &cli.App{
		Name:   "astrolog",
		Usage:  "osobní astrolog a numerolog",
		Flags:  config.Flags(),
		Action: run,
	}
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	if err := app.RunContext(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	cfg, err := config.FromContext(c, config.Default())
	if err != nil {
		return err
	}
	out := c.App.Writer
	if !astrolog.ReportKey(out, cfg) {
		return cli.Exit("", 1)
	}
	if err := cfg.Validate(); err != nil {
		return cli.Exit(fmt.Sprintf("❌ CHYBA: %v", err), 1)
	}
	l := logger.Init(logger.Options{Debug: cfg.Debug, File: cfg.LogFile, Terminal: c.App.ErrWriter})
	astrolog.ReportSearchHealth(c.Context, out, healthcheck.New(), cfg.SearxngURL)
	fmt.Fprintln(out, strings.Repeat("-", 60))

	logic := astrolog.NewLogicAgent(cfg.NewChatClient(), people.NewStore(), time.Now, l,
		agents.WithModel(cfg.Model),
		agents.WithTemperature(cfg.Temperature),
		agents.WithMaxTokens(cfg.MaxTokens),
		agents.WithMaxSteps(cfg.MaxSteps),
	)
	web := newBrowser(cfg, l)
	clt, err := cfg.NewInstructor(c.Context)
	if err != nil {
		return cli.Exit(fmt.Sprintf("❌ CHYBA: %v", err), 1)
	}
	newWeb := func() agents.AnonymousAgent {
		return astrolog.NewWebAgent(clt, web, l,
			agents.WithModel(cfg.WebModelName()),
			agents.WithTemperature(cfg.Temperature),
			agents.WithMaxTokens(cfg.MaxTokens),
		)
	}
	l.WithFields(logrus.Fields{
		"model":    cfg.Model,
		"provider": cfg.Provider,
		"searxng":  cfg.SearxngURL,
	}).Debug("assistant ready")

	repl := astrolog.NewREPL(astrolog.NewAssistant(logic, newWeb).SetLogger(l), c.App.Reader, out, l)
	repl.Banner()
	return repl.Run(c.Context)
}

func newBrowser(cfg *config.Config, l logrus.FieldLogger) *browser.Tool {
	hooks := astrolog.ToolHooks(l)
	return browser.New(
		browser.WithSearcher(searxng.New(
			searxng.WithBaseURL(cfg.SearxngURL),
			searxng.WithLanguage(cfg.Language),
			searxng.WithToolOptions(hooks...),
		)),
		browser.WithScraper(webscraper.New(webscraper.WithLanguage("cs,en;q=0.5"), webscraper.WithToolOptions(hooks...))),
		browser.WithWindow(contextwindow.New(cfg.PageTokens)),
		browser.WithOpenPages(cfg.OpenPages),
		browser.WithToolOptions(hooks...),
	)
}
