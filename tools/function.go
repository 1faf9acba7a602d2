package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/invopop/jsonschema"
	openai "github.com/sashabaranov/go-openai"

	"github.com/war-crycz/ai-kurz/schema"
)

var validate = validator.New()

// Function is a tool exposed to the model through native function calling
type Function interface {
	AnonymousTool
	// Definition returns the function declaration sent to the model
	Definition() openai.Tool
	// Call decodes JSON arguments, runs the tool and stringifies its output
	Call(ctx context.Context, arguments string) (string, error)
}

// FunctionTool exposes a typed tool as a model function.
// Parameters are reflected from the jsonschema tags of I, arguments are checked against its validate tags.
type FunctionTool[I schema.Schema, O schema.Schema] struct {
	*Anonymous[I, O]
	parameters json.RawMessage
}

var _ Function = (*FunctionTool[schema.Input, schema.Output])(nil)

// NewFunction returns a FunctionTool for the tool
func NewFunction[I schema.Schema, O schema.Schema](t Tool[I, O]) (*FunctionTool[I, O], error) {
	params, err := ParametersSchema[I]()
	if err != nil {
		return nil, fmt.Errorf("%s parameters schema: %w", t.Title(), err)
	}
	return &FunctionTool[I, O]{
		Anonymous:  Anonymize(t),
		parameters: params,
	}, nil
}

// MustFunction is like NewFunction but panics on schema errors
func MustFunction[I schema.Schema, O schema.Schema](t Tool[I, O]) *FunctionTool[I, O] {
	fn, err := NewFunction(t)
	if err != nil {
		panic(err)
	}
	return fn
}

// Parameters returns the JSON schema of the function parameters
func (f *FunctionTool[I, O]) Parameters() json.RawMessage {
	return f.parameters
}

func (f *FunctionTool[I, O]) Definition() openai.Tool {
	return openai.Tool{
		Type: openai.ToolTypeFunction,
		Function: &openai.FunctionDefinition{
			Name:        f.Title(),
			Description: f.Description(),
			Parameters:  f.parameters,
		},
	}
}

func (f *FunctionTool[I, O]) Call(ctx context.Context, arguments string) (string, error) {
	in := new(I)
	if args := strings.TrimSpace(arguments); args != "" {
		if err := json.Unmarshal([]byte(args), in); err != nil {
			return "", fmt.Errorf("%w: %v", ErrInvalidArguments, err)
		}
	}
	if err := validate.Struct(in); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidArguments, err)
	}
	out, err := f.RunAnonymous(ctx, in)
	if err != nil {
		return "", err
	}
	return schema.Stringify(*(out.(*O))), nil
}

// ParametersSchema reflects the JSON schema of a tool input struct
func ParametersSchema[I any]() (json.RawMessage, error) {
	r := &jsonschema.Reflector{
		DoNotReference: true,
		ExpandedStruct: true,
	}
	bs, err := json.Marshal(r.Reflect(new(I)))
	if err != nil {
		return nil, err
	}
	mp := make(map[string]any)
	if err := json.Unmarshal(bs, &mp); err != nil {
		return nil, err
	}
	delete(mp, "$schema")
	delete(mp, "$id")
	mp["type"] = "object"
	if _, ok := mp["properties"]; !ok {
		mp["properties"] = map[string]any{}
	}
	return json.Marshal(mp)
}
