package agents

import (
	"github.com/bububa/instructor-go"

	"github.com/war-crycz/ai-kurz/components"
	"github.com/war-crycz/ai-kurz/components/systemprompt"
	"github.com/war-crycz/ai-kurz/tools"
)

type Option func(c *Config)

// WithClient sets the structured output client
func WithClient(clt instructor.Instructor) Option {
	return func(c *Config) {
		c.client = clt
	}
}

// WithChatClient sets the native function calling client
func WithChatClient(clt ChatCompleter) Option {
	return func(c *Config) {
		c.chatClient = clt
	}
}

func WithMemory(m *components.Memory) Option {
	return func(c *Config) {
		c.memory = m
	}
}

func WithSystemPromptGenerator(g systemprompt.Generator) Option {
	return func(c *Config) {
		c.systemPromptGenerator = g
	}
}

func WithModel(model string) Option {
	return func(c *Config) {
		c.model = model
	}
}

func WithTemperature(temperature float32) Option {
	return func(c *Config) {
		c.temperature = temperature
	}
}

func WithMaxTokens(maxTokens int) Option {
	return func(c *Config) {
		c.maxTokens = maxTokens
	}
}

func WithName(name string) Option {
	return func(c *Config) {
		c.name = name
	}
}

// WithTools registers functions offered to the model
func WithTools(fns ...tools.Function) Option {
	return func(c *Config) {
		if c.registry == nil {
			c.registry = tools.NewRegistry()
		}
		c.registry.Register(fns...)
	}
}

// WithMaxSteps bounds model round trips of a single turn
func WithMaxSteps(steps int) Option {
	return func(c *Config) {
		c.maxSteps = steps
	}
}
