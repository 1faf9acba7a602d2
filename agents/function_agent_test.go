package agents

import (
	"context"
	"errors"
	"sync"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/war-crycz/ai-kurz/components"
	"github.com/war-crycz/ai-kurz/components/systemprompt/cot"
	"github.com/war-crycz/ai-kurz/schema"
	"github.com/war-crycz/ai-kurz/tools"
	"github.com/war-crycz/ai-kurz/tools/calculator"
)

// scriptedCompleter replays responses and records requests
type scriptedCompleter struct {
	mtx       sync.Mutex
	responses []openai.ChatCompletionResponse
	errs      []error
	requests  []openai.ChatCompletionRequest
}

func (s *scriptedCompleter) CreateChatCompletion(_ context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	idx := len(s.requests)
	s.requests = append(s.requests, req)
	if idx < len(s.errs) && s.errs[idx] != nil {
		return openai.ChatCompletionResponse{}, s.errs[idx]
	}
	if idx >= len(s.responses) {
		return s.responses[len(s.responses)-1], nil
	}
	return s.responses[idx], nil
}

func textResponse(content string) openai.ChatCompletionResponse {
	return openai.ChatCompletionResponse{
		ID:    "chatcmpl-text",
		Model: "gpt-4o",
		Choices: []openai.ChatCompletionChoice{{
			Message: openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: content},
		}},
		Usage: openai.Usage{PromptTokens: 10, CompletionTokens: 5},
	}
}

func toolResponse(calls ...openai.ToolCall) openai.ChatCompletionResponse {
	return openai.ChatCompletionResponse{
		ID:    "chatcmpl-tool",
		Model: "gpt-4o",
		Choices: []openai.ChatCompletionChoice{{
			Message: openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, ToolCalls: calls},
		}},
		Usage: openai.Usage{PromptTokens: 20, CompletionTokens: 7},
	}
}

func toolCall(id string, name string, args string) openai.ToolCall {
	return openai.ToolCall{
		ID:       id,
		Type:     openai.ToolTypeFunction,
		Function: openai.FunctionCall{Name: name, Arguments: args},
	}
}

func newCalculatorAgent(clt ChatCompleter, opts ...Option) *FunctionAgent {
	return NewFunctionAgent(append([]Option{
		WithChatClient(clt),
		WithModel("gpt-4o"),
		WithSystemPromptGenerator(cot.New(cot.WithPlainText())),
		WithTools(tools.MustFunction[calculator.Input, calculator.Output](calculator.New())),
	}, opts...)...)
}

func TestFunctionAgentToolRoundTrip(t *testing.T) {
	clt := &scriptedCompleter{responses: []openai.ChatCompletionResponse{
		toolResponse(toolCall("call_1", "calculate", `{"a":123,"b":45,"operation":"multiply"}`)),
		textResponse("123 krát 45 je 5535."),
	}}
	agent := newCalculatorAgent(clt, WithMaxTokens(256))
	var hooked []components.ToolCallback
	agent.SetToolHook(func(_ context.Context, _ *FunctionAgent, call components.ToolCall, cb components.ToolCallback) {
		assert.Equal(t, "calculate", call.Name)
		hooked = append(hooked, cb)
	})

	output := new(schema.Output)
	llmResp := new(components.LLMResponse)
	require.NoError(t, agent.Run(context.Background(), schema.NewInput("Kolik je 123 krát 45?"), output, llmResp))
	assert.Equal(t, "123 krát 45 je 5535.", output.ChatMessage)
	require.Len(t, hooked, 1)
	assert.Equal(t, "5535", hooked[0].Content)
	assert.False(t, hooked[0].IsError)

	require.Len(t, clt.requests, 2)
	first := clt.requests[0]
	assert.Equal(t, "gpt-4o", first.Model)
	assert.Equal(t, 256, first.MaxCompletionTokens)
	assert.Equal(t, "auto", first.ToolChoice)
	require.Len(t, first.Tools, 1)
	assert.Equal(t, "calculate", first.Tools[0].Function.Name)
	require.Len(t, first.Messages, 2)
	assert.Equal(t, openai.ChatMessageRoleSystem, first.Messages[0].Role)
	assert.Equal(t, "Kolik je 123 krát 45?", first.Messages[1].Content)

	second := clt.requests[1].Messages
	require.Len(t, second, 4)
	assert.Equal(t, openai.ChatMessageRoleAssistant, second[2].Role)
	require.Len(t, second[2].ToolCalls, 1)
	assert.Equal(t, "call_1", second[2].ToolCalls[0].ID)
	assert.Equal(t, openai.ChatMessageRoleTool, second[3].Role)
	assert.Equal(t, "call_1", second[3].ToolCallID)
	assert.Equal(t, "calculate", second[3].Name)
	assert.Equal(t, "5535", second[3].Content)

	require.NotNil(t, llmResp.Usage)
	assert.Equal(t, int64(30), llmResp.Usage.InputTokens)
	assert.Equal(t, int64(12), llmResp.Usage.OutputTokens)

	assert.Equal(t, Stats{Turns: 1, Requests: 2, ToolCalls: 1}, agent.Stats())
	assert.Equal(t, 4, agent.Memory().MessageCount())
}

func TestFunctionAgentKeepsMemoryAcrossTurns(t *testing.T) {
	clt := &scriptedCompleter{responses: []openai.ChatCompletionResponse{
		textResponse("Ahoj Marku."),
		textResponse("Jmenuješ se Marek."),
	}}
	agent := newCalculatorAgent(clt)
	output := new(schema.Output)
	require.NoError(t, agent.Run(context.Background(), schema.NewInput("Jsem Marek"), output, nil))
	require.NoError(t, agent.Run(context.Background(), schema.NewInput("Jak se jmenuju?"), output, nil))
	assert.Equal(t, "Jmenuješ se Marek.", output.ChatMessage)

	msgs := clt.requests[1].Messages
	require.Len(t, msgs, 4)
	assert.Equal(t, "Jsem Marek", msgs[1].Content)
	assert.Equal(t, "Ahoj Marku.", msgs[2].Content)
	assert.Equal(t, "Jak se jmenuju?", msgs[3].Content)
}

func TestFunctionAgentToolErrorsGoBackToModel(t *testing.T) {
	clt := &scriptedCompleter{responses: []openai.ChatCompletionResponse{
		toolResponse(
			toolCall("call_1", "horoscope", `{}`),
			toolCall("call_2", "calculate", `{"a":1,"b":2,"operation":"power"}`),
		),
		textResponse("Nevím."),
	}}
	agent := newCalculatorAgent(clt)
	require.NoError(t, agent.Run(context.Background(), schema.NewInput("?"), new(schema.Output), nil))
	msgs := clt.requests[1].Messages
	require.Len(t, msgs, 5)
	assert.Equal(t, "Error: unknown tool: horoscope", msgs[3].Content)
	assert.Contains(t, msgs[4].Content, "Error: invalid tool arguments")
}

func TestFunctionAgentFailedTurnIsForgotten(t *testing.T) {
	boom := errors.New("boom")
	clt := &scriptedCompleter{
		responses: []openai.ChatCompletionResponse{
			textResponse("První."),
			toolResponse(toolCall("call_1", "calculate", `{"a":1,"b":1,"operation":"add"}`)),
			textResponse("unused"),
		},
		errs: []error{nil, nil, boom},
	}
	agent := newCalculatorAgent(clt)
	var hookErr error
	agent.SetErrorHook(func(_ context.Context, _ *FunctionAgent, _ *schema.Input, _ *components.LLMResponse, err error) {
		hookErr = err
	})
	require.NoError(t, agent.Run(context.Background(), schema.NewInput("první"), new(schema.Output), nil))
	err := agent.Run(context.Background(), schema.NewInput("druhý"), new(schema.Output), nil)
	assert.ErrorIs(t, err, boom)
	assert.ErrorIs(t, hookErr, boom)
	assert.Equal(t, 2, agent.Memory().MessageCount())
	assert.Equal(t, int64(1), agent.Stats().Failures)
}

func TestFunctionAgentMaxSteps(t *testing.T) {
	clt := &scriptedCompleter{responses: []openai.ChatCompletionResponse{
		toolResponse(toolCall("call_1", "calculate", `{"a":1,"b":1,"operation":"add"}`)),
	}}
	agent := newCalculatorAgent(clt, WithMaxSteps(3))
	err := agent.Run(context.Background(), schema.NewInput("loop"), new(schema.Output), nil)
	assert.ErrorIs(t, err, ErrMaxSteps)
	assert.Len(t, clt.requests, 3)
	assert.Zero(t, agent.Memory().MessageCount())
}

func TestFunctionAgentWithoutClient(t *testing.T) {
	agent := NewFunctionAgent()
	err := agent.Run(context.Background(), schema.NewInput("hi"), new(schema.Output), nil)
	assert.ErrorIs(t, err, ErrNoChatClient)
}

func TestFunctionAgentNoChoices(t *testing.T) {
	clt := &scriptedCompleter{responses: []openai.ChatCompletionResponse{{ID: "empty"}}}
	err := newCalculatorAgent(clt).Run(context.Background(), schema.NewInput("hi"), new(schema.Output), nil)
	assert.ErrorIs(t, err, ErrNoChoices)
}

func TestDropOrphans(t *testing.T) {
	system := *components.NewMessage(components.SystemRole, schema.String("sys"))
	tool := *components.NewToolCallbackMessage(components.ToolCallback{ID: "x", Content: "orphan"})
	user := *components.NewMessage(components.UserRole, schema.String("hi"))
	assistant := *components.NewMessage(components.AssistantRole, schema.String("hello"))

	got := dropOrphans([]components.Message{system, tool, assistant, user, assistant})
	require.Len(t, got, 3)
	assert.Equal(t, components.UserRole, got[1].Role())

	got = dropOrphans([]components.Message{system, user, assistant})
	assert.Len(t, got, 3)

	got = dropOrphans([]components.Message{system, tool})
	assert.Len(t, got, 1)
}

func TestFunctionAgentRunAnonymous(t *testing.T) {
	clt := &scriptedCompleter{responses: []openai.ChatCompletionResponse{textResponse("ok")}}
	agent := newCalculatorAgent(clt)
	out, err := agent.RunAnonymous(context.Background(), schema.NewInput("hi"), nil)
	require.NoError(t, err)
	assert.Equal(t, "ok", out.(*schema.Output).ChatMessage)

	_, err = agent.RunAnonymous(context.Background(), "hi", nil)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
