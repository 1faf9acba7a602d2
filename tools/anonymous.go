package tools

import (
	"context"

	"github.com/war-crycz/ai-kurz/schema"
)

// hookRunner is satisfied by every tool embedding Config
type hookRunner interface {
	OnStart(context.Context, AnonymousTool, any)
	OnEnd(context.Context, AnonymousTool, any, any)
	OnError(context.Context, AnonymousTool, any, error)
}

// Anonymous wraps a typed tool so it can be called without knowing its schemas.
// Hooks of the wrapped tool are triggered around every call.
type Anonymous[I schema.Schema, O schema.Schema] struct {
	Tool[I, O]
}

var _ AnonymousTool = (*Anonymous[schema.Input, schema.Output])(nil)

// Anonymize returns an Anonymous wrapper of the tool
func Anonymize[I schema.Schema, O schema.Schema](t Tool[I, O]) *Anonymous[I, O] {
	return &Anonymous[I, O]{Tool: t}
}

// RunAnonymous runs the wrapped tool, input must be *I and the result is *O
func (a *Anonymous[I, O]) RunAnonymous(ctx context.Context, input any) (any, error) {
	in, ok := input.(*I)
	if !ok {
		return nil, ErrInvalidSchema
	}
	hooks, _ := a.Tool.(hookRunner)
	if hooks != nil {
		hooks.OnStart(ctx, a, in)
	}
	out := new(O)
	if err := a.Tool.Run(ctx, in, out); err != nil {
		if hooks != nil {
			hooks.OnError(ctx, a, in, err)
		}
		return nil, err
	}
	if hooks != nil {
		hooks.OnEnd(ctx, a, in, out)
	}
	return out, nil
}

// Run executes a typed tool with its hooks
func Run[I schema.Schema, O schema.Schema](ctx context.Context, t Tool[I, O], input *I, output *O) error {
	ret, err := Anonymize(t).RunAnonymous(ctx, input)
	if err != nil {
		return err
	}
	*output = *(ret.(*O))
	return nil
}
