package tools

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/war-crycz/ai-kurz/schema"
)

type greetInput struct {
	schema.Base
	Name     string `json:"name" jsonschema:"title=name,description=Name to greet." validate:"required"`
	Language string `json:"language,omitempty" jsonschema:"title=language,enum=cs,enum=en,description=Greeting language."`
}

type greetTool struct {
	Config
}

func newGreetTool(opts ...Option) *greetTool {
	ret := new(greetTool)
	for _, opt := range opts {
		opt(&ret.Config)
	}
	if ret.Title() == "" {
		ret.SetTitle("greet")
	}
	return ret
}

func (t *greetTool) Run(ctx context.Context, input *greetInput, output *schema.String) error {
	if input.Name == "nobody" {
		return errors.New("nobody to greet")
	}
	if input.Language == "en" {
		*output = schema.String("Hello " + input.Name)
		return nil
	}
	*output = schema.String("Ahoj " + input.Name)
	return nil
}

func TestParametersSchema(t *testing.T) {
	raw, err := ParametersSchema[greetInput]()
	require.NoError(t, err)
	var mp map[string]any
	require.NoError(t, json.Unmarshal(raw, &mp))
	assert.Equal(t, "object", mp["type"])
	assert.NotContains(t, mp, "$schema")
	props, ok := mp["properties"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, props, "name")
	assert.Contains(t, props, "language")
	assert.Len(t, props, 2)
	name := props["name"].(map[string]any)
	assert.Equal(t, "Name to greet.", name["description"])
	assert.Equal(t, []any{"name"}, mp["required"])
}

func TestParametersSchemaWithoutFields(t *testing.T) {
	type empty struct {
		schema.Base
	}
	raw, err := ParametersSchema[empty]()
	require.NoError(t, err)
	var mp map[string]any
	require.NoError(t, json.Unmarshal(raw, &mp))
	assert.Equal(t, "object", mp["type"])
	assert.Equal(t, map[string]any{}, mp["properties"])
}

func TestFunctionCall(t *testing.T) {
	ctx := context.Background()
	var (
		started []string
		ended   []string
		failed  []error
	)
	tool := newGreetTool(
		WithDescription("Greets a person."),
		WithStartHook(func(_ context.Context, t AnonymousTool, in any) {
			started = append(started, t.Title())
		}),
		WithEndHook(func(_ context.Context, t AnonymousTool, in any, out any) {
			ended = append(ended, schema.Stringify(*(out.(*schema.String))))
		}),
		WithErrorHook(func(_ context.Context, t AnonymousTool, in any, err error) {
			failed = append(failed, err)
		}),
	)
	fn := MustFunction[greetInput, schema.String](tool)

	def := fn.Definition()
	assert.Equal(t, openai.ToolTypeFunction, def.Type)
	require.NotNil(t, def.Function)
	assert.Equal(t, "greet", def.Function.Name)
	assert.Equal(t, "Greets a person.", def.Function.Description)

	ret, err := fn.Call(ctx, `{"name":"Jan"}`)
	require.NoError(t, err)
	assert.Equal(t, "Ahoj Jan", ret)

	ret, err = fn.Call(ctx, `{"name":"Jan","language":"en"}`)
	require.NoError(t, err)
	assert.Equal(t, "Hello Jan", ret)

	_, err = fn.Call(ctx, `{"name":"nobody"}`)
	assert.EqualError(t, err, "nobody to greet")

	_, err = fn.Call(ctx, `{}`)
	assert.ErrorIs(t, err, ErrInvalidArguments)

	_, err = fn.Call(ctx, `{"name":`)
	assert.ErrorIs(t, err, ErrInvalidArguments)

	assert.Equal(t, []string{"greet", "greet", "greet"}, started)
	assert.Equal(t, []string{"Ahoj Jan", "Hello Jan"}, ended)
	assert.Len(t, failed, 1)
}

func TestAnonymousInvalidSchema(t *testing.T) {
	_, err := Anonymize[greetInput, schema.String](newGreetTool()).RunAnonymous(context.Background(), "not an input")
	assert.ErrorIs(t, err, ErrInvalidSchema)
}

func TestRegistry(t *testing.T) {
	ctx := context.Background()
	reg := NewRegistry(
		MustFunction[greetInput, schema.String](newGreetTool()),
		MustFunction[greetInput, schema.String](newGreetTool(WithTitle("pozdrav"))),
	)
	assert.Equal(t, 2, reg.Len())
	defs := reg.Definitions()
	require.Len(t, defs, 2)
	assert.Equal(t, "greet", defs[0].Function.Name)
	assert.Equal(t, "pozdrav", defs[1].Function.Name)

	ret, err := reg.Call(ctx, "pozdrav", `{"name":"Eva"}`)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(ret, "Ahoj"))

	_, err = reg.Call(ctx, "missing", `{}`)
	assert.ErrorIs(t, err, ErrUnknownTool)

	reg.Register(MustFunction[greetInput, schema.String](newGreetTool(WithTitle("greet"), WithDescription("replaced"))))
	assert.Equal(t, 2, reg.Len())
	fn, ok := reg.Get("greet")
	require.True(t, ok)
	assert.Equal(t, "replaced", fn.Description())
}
