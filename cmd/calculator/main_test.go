package main

import (
	"context"
	"strings"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/war-crycz/ai-kurz/config"
)

type scriptedCompleter struct {
	responses []openai.ChatCompletionResponse
	requests  []openai.ChatCompletionRequest
}

func (s *scriptedCompleter) CreateChatCompletion(_ context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	idx := len(s.requests)
	s.requests = append(s.requests, req)
	return s.responses[idx], nil
}

func answer(msg openai.ChatCompletionMessage) openai.ChatCompletionResponse {
	msg.Role = openai.ChatMessageRoleAssistant
	return openai.ChatCompletionResponse{Choices: []openai.ChatCompletionChoice{{Message: msg}}}
}

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.Model = defaultModel
	cfg.MaxSteps = 5
	return &cfg
}

func TestRunWithToolCall(t *testing.T) {
	clt := &scriptedCompleter{responses: []openai.ChatCompletionResponse{
		answer(openai.ChatCompletionMessage{ToolCalls: []openai.ToolCall{{
			ID:       "call_1",
			Type:     openai.ToolTypeFunction,
			Function: openai.FunctionCall{Name: "calculate", Arguments: `{"a":123,"b":45,"operation":"multiply"}`},
		}}}),
		answer(openai.ChatCompletionMessage{Content: "123 krát 45 je 5535."}),
	}}
	out := new(strings.Builder)
	require.NoError(t, run(context.Background(), out, clt, testConfig(), defaultQuery))

	assert.Equal(t, strings.Join([]string{
		"User: Kolik je 123 krát 45?",
		"Model se rozhodl použít nástroj (tool call)...",
		` -> Volám funkci 'calculate' s argumenty: {"a":123,"b":45,"operation":"multiply"}`,
		" -> Výsledek: 5535",
		"Posílám výsledek zpět modelu pro finální odpověď...",
		"",
		"AI: 123 krát 45 je 5535.",
		"",
	}, "\n"), out.String())

	require.Len(t, clt.requests, 2)
	assert.Equal(t, "gpt-4o", clt.requests[0].Model)
	last := clt.requests[1].Messages[len(clt.requests[1].Messages)-1]
	assert.Equal(t, openai.ChatMessageRoleTool, last.Role)
	assert.Equal(t, "call_1", last.ToolCallID)
	assert.Equal(t, "calculate", last.Name)
	assert.Equal(t, "5535", last.Content)
}

func TestRunDirectAnswer(t *testing.T) {
	clt := &scriptedCompleter{responses: []openai.ChatCompletionResponse{
		answer(openai.ChatCompletionMessage{Content: "Ahoj!"}),
	}}
	out := new(strings.Builder)
	require.NoError(t, run(context.Background(), out, clt, testConfig(), "Ahoj"))
	assert.Equal(t, "User: Ahoj\nModel se rozhodl nepoužít žádný nástroj a odpověděl přímo.\nAI: Ahoj!\n", out.String())
}
