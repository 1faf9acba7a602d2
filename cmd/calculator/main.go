// Command calculator asks a model an arithmetic question and lets it answer with the calculate tool.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	openai "github.com/sashabaranov/go-openai"
	"github.com/urfave/cli/v2"

	"github.com/war-crycz/ai-kurz/agents"
	"github.com/war-crycz/ai-kurz/components"
	"github.com/war-crycz/ai-kurz/components/systemprompt/cot"
	"github.com/war-crycz/ai-kurz/config"
	"github.com/war-crycz/ai-kurz/logger"
	"github.com/war-crycz/ai-kurz/schema"
	"github.com/war-crycz/ai-kurz/tools"
	"github.com/war-crycz/ai-kurz/tools/calculator"
)

const (
	defaultModel = "gpt-4o"
	defaultQuery = "Kolik je 123 krát 45?"
)

func main() {
	app := &cli.App{
		Name:  "calculator",
		Usage: "LLM calculator with a calculate tool",
		Flags: append(config.ChatFlags(),
			&cli.StringFlag{
				Name:    "query",
				Aliases: []string{"q"},
				Usage:   "question for the model",
				Value:   defaultQuery,
			},
		),
		Action: func(c *cli.Context) error {
			base := config.Default()
			base.Model = defaultModel
			base.MaxSteps = agents.DefaultMaxSteps
			cfg, err := config.FromContext(c, base)
			if err != nil {
				return err
			}
			if err := cfg.ValidateChat(); err != nil {
				return cli.Exit(fmt.Sprintf("❌ CHYBA: %v", err), 1)
			}
			logger.Init(logger.Options{Debug: cfg.Debug, File: cfg.LogFile, Terminal: c.App.ErrWriter})
			return run(c.Context, c.App.Writer, cfg.NewChatClient(), cfg, c.String("query"))
		},
	}
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	if err := app.RunContext(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// announcer reports to w every time tool results are sent back to the model
type announcer struct {
	agents.ChatCompleter
	w io.Writer
}

func (a announcer) CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	if l := len(req.Messages); l > 0 && req.Messages[l-1].Role == openai.ChatMessageRoleTool {
		fmt.Fprintln(a.w, "Posílám výsledek zpět modelu pro finální odpověď...")
	}
	return a.ChatCompleter.CreateChatCompletion(ctx, req)
}

func run(ctx context.Context, w io.Writer, clt agents.ChatCompleter, cfg *config.Config, query string) error {
	fmt.Fprintf(w, "User: %s\n", query)
	agent := agents.NewFunctionAgent(
		agents.WithChatClient(announcer{ChatCompleter: clt, w: w}),
		agents.WithName("calculator"),
		agents.WithModel(cfg.Model),
		agents.WithTemperature(cfg.Temperature),
		agents.WithMaxSteps(cfg.MaxSteps),
		agents.WithSystemPromptGenerator(cot.New(
			cot.WithPlainText(),
			cot.WithBackground("- You are a helpful assistant which uses the calculate tool for arithmetic."),
		)),
		agents.WithTools(tools.MustFunction[calculator.Input, calculator.Output](calculator.New())),
	)
	announced := false
	agent.SetToolHook(func(ctx context.Context, a *agents.FunctionAgent, call components.ToolCall, callback components.ToolCallback) {
		if !announced {
			fmt.Fprintln(w, "Model se rozhodl použít nástroj (tool call)...")
			announced = true
		}
		fmt.Fprintf(w, " -> Volám funkci '%s' s argumenty: %s\n", call.Name, call.Arguments)
		fmt.Fprintf(w, " -> Výsledek: %s\n", callback.Content)
	})
	out := new(schema.Output)
	if err := agent.Run(ctx, schema.NewInput(query), out, nil); err != nil {
		return err
	}
	if agent.Stats().ToolCalls == 0 {
		fmt.Fprintln(w, "Model se rozhodl nepoužít žádný nástroj a odpověděl přímo.")
		fmt.Fprintf(w, "AI: %s\n", out.ChatMessage)
		return nil
	}
	fmt.Fprintf(w, "\nAI: %s\n", out.ChatMessage)
	return nil
}
