package agents

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/war-crycz/ai-kurz/components"
	"github.com/war-crycz/ai-kurz/components/systemprompt"
	"github.com/war-crycz/ai-kurz/components/systemprompt/cot"
	"github.com/war-crycz/ai-kurz/schema"
)

func TestAgentWithoutClient(t *testing.T) {
	agent := NewAgent[schema.Input, schema.Output](WithName("web"))
	var (
		started bool
		failed  error
	)
	agent.SetStartHook(func(_ context.Context, a *Agent[schema.Input, schema.Output], in *schema.Input) {
		started = true
		assert.Equal(t, "web", a.Name())
	})
	agent.SetErrorHook(func(_ context.Context, _ *Agent[schema.Input, schema.Output], _ *schema.Input, _ *components.LLMResponse, err error) {
		failed = err
	})
	err := agent.Run(context.Background(), schema.NewInput("ahoj"), new(schema.Output), nil)
	assert.ErrorIs(t, err, ErrNoClient)
	assert.True(t, started)
	assert.ErrorIs(t, failed, ErrNoClient)
	// the user message stays, the agent answered nothing
	assert.Equal(t, 1, agent.Memory().MessageCount())
}

func TestAgentSystemPromptProviders(t *testing.T) {
	agent := NewAgent[schema.Input, schema.Output](WithSystemPromptGenerator(cot.New(
		cot.WithBackground("- Jsi astrolog."),
	)))
	agent.RegisterSystemPromptContextProvider(systemprompt.NewProvider("Dnes", func() string {
		return "pondělí"
	}))
	assert.Contains(t, agent.SystemPrompt(), "## Dnes\npondělí")
	provider, err := agent.SystemPromptContextProvider("Dnes")
	require.NoError(t, err)
	assert.Equal(t, "pondělí", provider.Info())

	agent.UnregisterSystemPromptContextProvider("Dnes")
	assert.NotContains(t, agent.SystemPrompt(), "pondělí")
}

type echoAgent struct {
	name string
	err  error
}

func (e echoAgent) Name() string {
	return e.name
}

func (e echoAgent) RunAnonymous(_ context.Context, input any, _ *components.LLMResponse) (any, error) {
	if e.err != nil {
		return nil, e.err
	}
	return schema.NewOutput(e.name + ": " + input.(*schema.Input).ChatMessage), nil
}

func TestOrchestrationAgent(t *testing.T) {
	logic := echoAgent{name: "logic"}
	web := echoAgent{name: "web"}
	orchestrator := NewOrchestrationAgent[schema.Input, schema.Output](func(_ context.Context, req *schema.Input) (AnonymousAgent, any, error) {
		switch req.ChatMessage {
		case "svátek":
			return web, schema.NewInput("Kdy má svátek Jan?"), nil
		case "":
			return nil, nil, errors.New("empty input")
		}
		return logic, req, nil
	})
	orchestrator.SetName("router")
	assert.Equal(t, "router", orchestrator.Name())

	output := new(schema.Output)
	require.NoError(t, orchestrator.Run(context.Background(), schema.NewInput("seznam"), output, nil))
	assert.Equal(t, "logic: seznam", output.ChatMessage)

	require.NoError(t, orchestrator.Run(context.Background(), schema.NewInput("svátek"), output, nil))
	assert.Equal(t, "web: Kdy má svátek Jan?", output.ChatMessage)

	assert.EqualError(t, orchestrator.Run(context.Background(), schema.NewInput(""), output, nil), "empty input")

	_, err := orchestrator.RunAnonymous(context.Background(), schema.NewOutput("x"), nil)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestOrchestrationAgentFallback(t *testing.T) {
	orchestrator := NewOrchestrationAgent[schema.Input, schema.Output](func(_ context.Context, req *schema.Input) (AnonymousAgent, any, error) {
		return nil, nil, nil
	})
	output := new(schema.Output)
	assert.ErrorIs(t, orchestrator.Run(context.Background(), schema.NewInput("ahoj"), output, nil), ErrNoAgentSelected)

	var selected []string
	orchestrator.SetFallback(echoAgent{name: "logic"})
	orchestrator.SetSelectHook(func(_ context.Context, agent AnonymousAgent) {
		selected = append(selected, agent.Name())
	})
	require.NoError(t, orchestrator.Run(context.Background(), schema.NewInput("ahoj"), output, nil))
	assert.Equal(t, "logic: ahoj", output.ChatMessage)
	assert.Equal(t, []string{"logic"}, selected)
}

func TestOrchestrationAgentInvalidOutput(t *testing.T) {
	orchestrator := NewOrchestrationAgent[schema.Input, schema.String](func(_ context.Context, req *schema.Input) (AnonymousAgent, any, error) {
		return echoAgent{name: "logic"}, req, nil
	})
	var out schema.String
	err := orchestrator.Run(context.Background(), schema.NewInput("x"), &out, nil)
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestToolAgentPropagatesStartError(t *testing.T) {
	agent := NewToolAgent[schema.Input, schema.String, schema.Output]().SetName("web")
	assert.Equal(t, "web", agent.Name())
	err := agent.Run(context.Background(), schema.NewInput("Kdy má svátek Jan?"), new(schema.Output), nil)
	assert.ErrorIs(t, err, ErrNoClient)
	assert.Equal(t, 1, agent.Start().Memory().MessageCount())
	assert.Zero(t, agent.End().Memory().MessageCount())
}
