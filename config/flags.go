package config

import (
	"github.com/urfave/cli/v2"
)

// Flag names shared by the command line programs
const (
	FlagConfig   = "config"
	FlagEnvFile  = "env-file"
	FlagModel    = "model"
	FlagProvider = "provider"
	FlagBaseURL  = "base-url"
	FlagSearxng  = "searxng"
	FlagMaxSteps = "max-steps"
	FlagDebug    = "debug"
	FlagLogFile  = "log-file"
)

// Flags returns the command line flags of the configuration
func Flags() []cli.Flag {
	return append(ChatFlags(),
		&cli.StringFlag{
			Name:  FlagProvider,
			Usage: "provider of the structured output agents: openai, anthropic, cohere or gemini",
		},
		&cli.StringFlag{
			Name:  FlagSearxng,
			Usage: "SearxNG instance url",
		},
	)
}

// ChatFlags returns the flags of a program using only the OpenAI chat client
func ChatFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    FlagConfig,
			Aliases: []string{"c"},
			Usage:   "YAML configuration file",
		},
		&cli.StringFlag{
			Name:  FlagEnvFile,
			Usage: "dotenv file with the API keys",
			Value: ".env",
		},
		&cli.StringFlag{
			Name:    FlagModel,
			Aliases: []string{"m"},
			Usage:   "chat completion model",
		},
		&cli.StringFlag{
			Name:  FlagBaseURL,
			Usage: "OpenAI compatible API endpoint",
		},
		&cli.IntFlag{
			Name:  FlagMaxSteps,
			Usage: "maximum tool call rounds of one answer",
		},
		&cli.BoolFlag{
			Name:  FlagDebug,
			Usage: "print debug logs",
		},
		&cli.StringFlag{
			Name:  FlagLogFile,
			Usage: "rotating JSON log file",
		},
	}
}

// FromContext loads the configuration on top of base, flags set on the command line win
func FromContext(c *cli.Context, base Config) (*Config, error) {
	cfg, err := Loader{
		ConfigFile: c.String(FlagConfig),
		EnvFile:    c.String(FlagEnvFile),
	}.Load(base)
	if err != nil {
		return nil, err
	}
	if c.IsSet(FlagModel) {
		cfg.Model = c.String(FlagModel)
	}
	if c.IsSet(FlagProvider) {
		cfg.Provider = c.String(FlagProvider)
	}
	if c.IsSet(FlagBaseURL) {
		cfg.BaseURL = c.String(FlagBaseURL)
	}
	if c.IsSet(FlagSearxng) {
		cfg.SearxngURL = c.String(FlagSearxng)
	}
	if c.IsSet(FlagMaxSteps) {
		cfg.MaxSteps = c.Int(FlagMaxSteps)
	}
	if c.IsSet(FlagDebug) {
		cfg.Debug = c.Bool(FlagDebug)
	}
	if c.IsSet(FlagLogFile) {
		cfg.LogFile = c.String(FlagLogFile)
	}
	return cfg, nil
}
