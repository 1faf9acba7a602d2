package tools

import (
	"context"

	"github.com/war-crycz/ai-kurz/schema"
)

type (
	StartHook func(ctx context.Context, tool AnonymousTool, input any)
	EndHook   func(ctx context.Context, tool AnonymousTool, input any, output any)
	ErrorHook func(ctx context.Context, tool AnonymousTool, input any, err error)
)

// Describer names a tool for the model
type Describer interface {
	Title() string
	Description() string
}

// Configurable is the part of a tool options and hooks are applied to
type Configurable interface {
	Describer
	SetTitle(string)
	SetDescription(string)
	SetStartHook(fn StartHook)
	SetEndHook(fn EndHook)
	SetErrorHook(fn ErrorHook)
}

// Tool runs with typed input and output schemas
type Tool[I schema.Schema, O schema.Schema] interface {
	Configurable
	Run(ctx context.Context, in *I, out *O) error
}

// AnonymousTool runs with untyped input, for callers that only know the tool by name
type AnonymousTool interface {
	Configurable
	RunAnonymous(ctx context.Context, in any) (any, error)
}
