package agents

import (
	"context"
	"fmt"

	"github.com/war-crycz/ai-kurz/components"
	"github.com/war-crycz/ai-kurz/components/systemprompt"
	"github.com/war-crycz/ai-kurz/schema"
	"github.com/war-crycz/ai-kurz/tools"
)

// ToolAgent runs a tool between two structured agents.
// The start agent turns the input into tool parameters T, the tool result is
// handed to the end agent as context for producing the final output.
type ToolAgent[I schema.Schema, T schema.Schema, O schema.Schema] struct {
	name  string
	start *Agent[I, T]
	end   *Agent[I, O]
	tool  tools.AnonymousTool
}

var _ AnonymousAgent = (*ToolAgent[schema.Input, schema.String, schema.Output])(nil)

// NewToolAgent returns a new ToolAgent instance, options are shared by both agents
func NewToolAgent[I schema.Schema, T schema.Schema, O schema.Schema](options ...Option) *ToolAgent[I, T, O] {
	return &ToolAgent[I, T, O]{
		start: NewAgent[I, T](options...),
		end:   NewAgent[I, O](options...),
	}
}

func (t *ToolAgent[I, T, O]) Name() string {
	return t.name
}

func (t *ToolAgent[I, T, O]) SetName(name string) *ToolAgent[I, T, O] {
	t.name = name
	return t
}

// SetTool sets the tool, its input type must be T
func (t *ToolAgent[I, T, O]) SetTool(tool tools.AnonymousTool) *ToolAgent[I, T, O] {
	t.tool = tool
	return t
}

// SetStartSystemPromptGenerator replaces the system prompt of the agent producing tool parameters
func (t *ToolAgent[I, T, O]) SetStartSystemPromptGenerator(g systemprompt.Generator) *ToolAgent[I, T, O] {
	t.start.SetSystemPromptGenerator(g)
	return t
}

// SetEndSystemPromptGenerator replaces the system prompt of the agent producing the output
func (t *ToolAgent[I, T, O]) SetEndSystemPromptGenerator(g systemprompt.Generator) *ToolAgent[I, T, O] {
	t.end.SetSystemPromptGenerator(g)
	return t
}

// Start returns the agent producing tool parameters
func (t *ToolAgent[I, T, O]) Start() *Agent[I, T] {
	return t.start
}

// End returns the agent producing the output
func (t *ToolAgent[I, T, O]) End() *Agent[I, O] {
	return t.end
}

func (t *ToolAgent[I, T, O]) ResetMemory() {
	t.start.ResetMemory()
	t.end.ResetMemory()
}

// Run runs the chat agent with the given user input synchronously.
func (t *ToolAgent[I, T, O]) Run(ctx context.Context, userInput *I, output *O, llmResp *components.LLMResponse) error {
	if llmResp == nil {
		llmResp = new(components.LLMResponse)
	}
	toolInput := new(T)
	if err := t.start.Run(ctx, userInput, toolInput, llmResp); err != nil {
		return err
	}
	if t.tool != nil {
		toolResult, err := t.tool.RunAnonymous(ctx, toolInput)
		if err != nil {
			return fmt.Errorf("%s: %w", t.tool.Title(), err)
		}
		out, ok := toolResult.(schema.Schema)
		if !ok {
			return ErrInvalidOutput
		}
		t.end.NewMessage(components.SystemRole, schema.String(schema.Stringify(out)))
	}
	return t.end.Run(ctx, userInput, output, llmResp)
}

// RunAnonymous runs the agent with an input of type *I and returns *O
func (t *ToolAgent[I, T, O]) RunAnonymous(ctx context.Context, input any, llmResp *components.LLMResponse) (any, error) {
	in, ok := input.(*I)
	if !ok {
		return nil, ErrInvalidInput
	}
	out := new(O)
	if err := t.Run(ctx, in, out, llmResp); err != nil {
		return nil, err
	}
	return out, nil
}
