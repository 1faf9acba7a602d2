package agents

import (
	"context"

	"github.com/war-crycz/ai-kurz/components"
	"github.com/war-crycz/ai-kurz/schema"
)

// AgentSelector picks the agent for a request and builds the input that agent receives.
// Returning a nil agent without an error falls back to the default agent.
type AgentSelector[I schema.Schema] func(ctx context.Context, req *I) (AnonymousAgent, any, error)

// OrchestrationAgent delegates every request to the agent its selector picks
type OrchestrationAgent[I schema.Schema, O schema.Schema] struct {
	name     string
	selector AgentSelector[I]
	fallback AnonymousAgent
	onSelect func(ctx context.Context, agent AnonymousAgent)
}

var _ AnonymousAgent = (*OrchestrationAgent[schema.Input, schema.Output])(nil)

func NewOrchestrationAgent[I schema.Schema, O schema.Schema](selector AgentSelector[I]) *OrchestrationAgent[I, O] {
	return &OrchestrationAgent[I, O]{selector: selector}
}

func (a *OrchestrationAgent[I, O]) Name() string {
	return a.name
}

func (a *OrchestrationAgent[I, O]) SetName(name string) {
	a.name = name
}

// SetFallback sets the agent receiving the unchanged request when the selector picks none
func (a *OrchestrationAgent[I, O]) SetFallback(agent AnonymousAgent) {
	a.fallback = agent
}

// SetSelectHook sets a function called with every selected agent before it runs
func (a *OrchestrationAgent[I, O]) SetSelectHook(fn func(ctx context.Context, agent AnonymousAgent)) {
	a.onSelect = fn
}

func (a *OrchestrationAgent[I, O]) Run(ctx context.Context, input *I, output *O, llmResp *components.LLMResponse) error {
	ret, err := a.RunAnonymous(ctx, input, llmResp)
	if err != nil {
		return err
	}
	out, ok := ret.(*O)
	if !ok {
		return ErrInvalidOutput
	}
	*output = *out
	return nil
}

func (a *OrchestrationAgent[I, O]) RunAnonymous(ctx context.Context, input any, llmResp *components.LLMResponse) (any, error) {
	req, ok := input.(*I)
	if !ok {
		return nil, ErrInvalidInput
	}
	agent, params, err := a.selector(ctx, req)
	if err != nil {
		return nil, err
	}
	if agent == nil {
		if a.fallback == nil {
			return nil, ErrNoAgentSelected
		}
		agent, params = a.fallback, req
	}
	if a.onSelect != nil {
		a.onSelect(ctx, agent)
	}
	return agent.RunAnonymous(ctx, params, llmResp)
}
