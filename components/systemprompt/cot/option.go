package cot

import "github.com/war-crycz/ai-kurz/components/systemprompt"

// Option configures a Generator
type Option func(g *Generator)

// WithBackground appends lines to the identity section
func WithBackground(lines ...string) Option {
	return func(g *Generator) {
		g.background = append(g.background, lines...)
	}
}

// WithSteps appends lines to the internal steps section
func WithSteps(lines ...string) Option {
	return func(g *Generator) {
		g.steps = append(g.steps, lines...)
	}
}

// WithOutputInstructs appends lines to the output instructions section
func WithOutputInstructs(lines ...string) Option {
	return func(g *Generator) {
		g.outputInstructs = append(g.outputInstructs, lines...)
	}
}

func WithContextProviders(providers ...systemprompt.ContextProvider) Option {
	return func(g *Generator) {
		g.AddContextProviders(providers...)
	}
}

// WithPlainText drops the JSON schema output instruction, for agents answering in free text
func WithPlainText() Option {
	return func(g *Generator) {
		g.plainText = true
	}
}
