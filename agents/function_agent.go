package agents

import (
	"context"
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/atomic"

	"github.com/war-crycz/ai-kurz/components"
	"github.com/war-crycz/ai-kurz/schema"
)

// DefaultMaxSteps bounds model round trips of one turn when no WithMaxSteps is given
const DefaultMaxSteps = 5

var (
	ErrMaxSteps     = errors.New("too many tool call rounds")
	ErrNoChoices    = errors.New("model returned no choices")
	ErrNoChatClient = errors.New("agent has no chat completion client")
)

// ChatCompleter is the chat completion endpoint, *openai.Client implements it
type ChatCompleter interface {
	CreateChatCompletion(context.Context, openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Stats counts the agent activity since creation
type Stats struct {
	Turns     int64
	Requests  int64
	ToolCalls int64
	Failures  int64
}

// FunctionAgent answers chat input using native model function calling.
// Every turn loops request, tool calls and tool results until the model answers in text.
// Memory persists across turns, a failed turn is removed from it.
type FunctionAgent struct {
	Config
	turns     atomic.Int64
	requests  atomic.Int64
	toolCalls atomic.Int64
	failures  atomic.Int64
	startHook func(context.Context, *FunctionAgent, *schema.Input)
	endHook   func(context.Context, *FunctionAgent, *schema.Input, *schema.Output, *components.LLMResponse)
	errorHook func(context.Context, *FunctionAgent, *schema.Input, *components.LLMResponse, error)
	toolHook  func(context.Context, *FunctionAgent, components.ToolCall, components.ToolCallback)
}

var _ AnonymousAgent = (*FunctionAgent)(nil)

// NewFunctionAgent initializes the FunctionAgent
func NewFunctionAgent(options ...Option) *FunctionAgent {
	ret := new(FunctionAgent)
	ret.applyDefaults(options)
	if ret.maxSteps <= 0 {
		ret.maxSteps = DefaultMaxSteps
	}
	return ret
}

func (a *FunctionAgent) SetStartHook(fn func(context.Context, *FunctionAgent, *schema.Input)) {
	a.startHook = fn
}

func (a *FunctionAgent) SetEndHook(fn func(context.Context, *FunctionAgent, *schema.Input, *schema.Output, *components.LLMResponse)) {
	a.endHook = fn
}

func (a *FunctionAgent) SetErrorHook(fn func(context.Context, *FunctionAgent, *schema.Input, *components.LLMResponse, error)) {
	a.errorHook = fn
}

// SetToolHook sets a hook triggered after every tool call with its result
func (a *FunctionAgent) SetToolHook(fn func(context.Context, *FunctionAgent, components.ToolCall, components.ToolCallback)) {
	a.toolHook = fn
}

// Stats returns counters of the agent activity
func (a *FunctionAgent) Stats() Stats {
	return Stats{
		Turns:     a.turns.Load(),
		Requests:  a.requests.Load(),
		ToolCalls: a.toolCalls.Load(),
		Failures:  a.failures.Load(),
	}
}

// Run runs one turn with the given user input
func (a *FunctionAgent) Run(ctx context.Context, userInput *schema.Input, output *schema.Output, llmResp *components.LLMResponse) error {
	if fn := a.startHook; fn != nil {
		fn(ctx, a, userInput)
	}
	if llmResp == nil {
		llmResp = new(components.LLMResponse)
	}
	a.turns.Inc()
	turnID := a.memory.NewTurn()
	if userInput != nil {
		a.memory.NewMessage(components.UserRole, *userInput)
	}
	if err := a.loop(ctx, output, llmResp); err != nil {
		a.failures.Inc()
		// a half finished turn would leave tool calls without results
		_ = a.memory.DeleteTurn(turnID)
		if fn := a.errorHook; fn != nil {
			fn(ctx, a, userInput, llmResp, err)
		}
		return err
	}
	if fn := a.endHook; fn != nil {
		fn(ctx, a, userInput, output, llmResp)
	}
	return nil
}

func (a *FunctionAgent) loop(ctx context.Context, output *schema.Output, llmResp *components.LLMResponse) error {
	if a.chatClient == nil {
		return ErrNoChatClient
	}
	for step := 0; step < a.maxSteps; step++ {
		a.requests.Inc()
		res, err := a.chatClient.CreateChatCompletion(ctx, a.request())
		if err != nil {
			return err
		}
		llmResp.FromOpenAI(&res)
		if len(res.Choices) == 0 {
			return ErrNoChoices
		}
		msg := res.Choices[0].Message
		calls := components.ToolCallsFromOpenAI(msg.ToolCalls)
		if len(calls) == 0 {
			a.memory.NewMessage(components.AssistantRole, schema.String(msg.Content))
			*output = *schema.NewOutput(msg.Content)
			return nil
		}
		a.memory.Append(components.NewToolCallsMessage(schema.String(msg.Content), calls))
		for _, call := range calls {
			a.toolCalls.Inc()
			callback := a.call(ctx, call)
			if err := ctx.Err(); err != nil {
				return err
			}
			a.memory.Append(components.NewToolCallbackMessage(callback))
			if fn := a.toolHook; fn != nil {
				fn(ctx, a, call, callback)
			}
		}
	}
	return fmt.Errorf("%w: %d", ErrMaxSteps, a.maxSteps)
}

// call runs a tool, errors are reported back to the model as the tool result
func (a *FunctionAgent) call(ctx context.Context, call components.ToolCall) components.ToolCallback {
	callback := components.ToolCallback{
		ID:   call.ID,
		Name: call.Name,
	}
	ret, err := a.registry.Call(ctx, call.Name, call.Arguments)
	if err != nil {
		callback.Content = fmt.Sprintf("Error: %v", err)
		callback.IsError = true
		return callback
	}
	callback.Content = ret
	return callback
}

func (a *FunctionAgent) request() openai.ChatCompletionRequest {
	req := openai.ChatCompletionRequest{
		Model:               a.model,
		Temperature:         a.temperature,
		MaxCompletionTokens: a.maxTokens,
	}
	messages := a.messages()
	req.Messages = make([]openai.ChatCompletionMessage, 0, len(messages))
	for _, msg := range dropOrphans(messages) {
		v := new(openai.ChatCompletionMessage)
		msg.ToOpenAI(v)
		req.Messages = append(req.Messages, *v)
	}
	if a.registry.Len() > 0 {
		req.Tools = a.registry.Definitions()
		req.ToolChoice = "auto"
	}
	return req
}

// dropOrphans removes history messages preceding the first user message after the system prompt.
// Trimmed memory may start with tool results whose tool calls were dropped.
func dropOrphans(messages []components.Message) []components.Message {
	if len(messages) < 2 {
		return messages
	}
	for idx := 1; idx < len(messages); idx++ {
		if messages[idx].Role() == components.UserRole {
			if idx == 1 {
				return messages
			}
			return append(messages[:1:1], messages[idx:]...)
		}
	}
	return messages[:1]
}

// RunAnonymous runs the agent with a *schema.Input and returns *schema.Output
func (a *FunctionAgent) RunAnonymous(ctx context.Context, input any, llmResp *components.LLMResponse) (any, error) {
	in, ok := input.(*schema.Input)
	if !ok {
		return nil, ErrInvalidInput
	}
	out := new(schema.Output)
	if err := a.Run(ctx, in, out, llmResp); err != nil {
		return nil, err
	}
	return out, nil
}
