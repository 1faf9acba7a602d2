// Package astrolog is the Czech astrologer and numerologist assistant.
// A persistent function calling agent analyses birth dates and keeps the user
// list, a stateless web agent looks up name days.
package astrolog

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/war-crycz/ai-kurz/agents"
	"github.com/war-crycz/ai-kurz/schema"
)

var ErrNoAgent = errors.New("no agent for route")

// Request is a user message with its route
type Request struct {
	schema.Base
	Route   Route
	Message string
}

// WebAgentFactory returns a new web agent for every request
type WebAgentFactory func() agents.AnonymousAgent

// Assistant routes user messages to the logic agent or a fresh web agent
type Assistant struct {
	logic  agents.AnonymousAgent
	newWeb WebAgentFactory
	router *agents.OrchestrationAgent[Request, schema.Output]
}

// NewAssistant returns a new Assistant
func NewAssistant(logic agents.AnonymousAgent, newWeb WebAgentFactory) *Assistant {
	ret := &Assistant{
		logic:  logic,
		newWeb: newWeb,
	}
	ret.router = agents.NewOrchestrationAgent[Request, schema.Output](ret.selectAgent)
	ret.router.SetName(LogicAgentName)
	return ret
}

// SetLogger logs every routed request at debug level
func (a *Assistant) SetLogger(l logrus.FieldLogger) *Assistant {
	a.router.SetSelectHook(func(_ context.Context, agent agents.AnonymousAgent) {
		l.WithField("agent", agent.Name()).Debug("request routed")
	})
	return a
}

func (a *Assistant) selectAgent(_ context.Context, req *Request) (agents.AnonymousAgent, any, error) {
	var agent agents.AnonymousAgent
	switch req.Route {
	case RouteLogic:
		agent = a.logic
	case RouteNameDay:
		if a.newWeb != nil {
			agent = a.newWeb()
		}
	}
	if agent == nil {
		return nil, nil, fmt.Errorf("%w: %s", ErrNoAgent, req.Route)
	}
	return agent, schema.NewInput(req.Message), nil
}

// Ask runs the agent of a single agent route
func (a *Assistant) Ask(ctx context.Context, route Route, msg string) (string, error) {
	out := new(schema.Output)
	if err := a.router.Run(ctx, &Request{Route: route, Message: msg}, out, nil); err != nil {
		return "", err
	}
	return out.ChatMessage, nil
}

// Logic sends a message to the logic agent
func (a *Assistant) Logic(ctx context.Context, msg string) (string, error) {
	return a.Ask(ctx, RouteLogic, msg)
}

// NameDay sends a question to a fresh web agent
func (a *Assistant) NameDay(ctx context.Context, question string) (string, error) {
	return a.Ask(ctx, RouteNameDay, question)
}
