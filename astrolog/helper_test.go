package astrolog

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/war-crycz/ai-kurz/agents"
	"github.com/war-crycz/ai-kurz/components"
	"github.com/war-crycz/ai-kurz/schema"
)

func fixedClock() time.Time {
	return time.Date(2026, time.October, 19, 12, 0, 0, 0, time.UTC)
}

func discardLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// fakeAgent answers chat input with a reply function and records every input
type fakeAgent struct {
	mtx    sync.Mutex
	name   string
	reply  func(msg string) (string, error)
	inputs []string
}

var _ agents.AnonymousAgent = (*fakeAgent)(nil)

func (f *fakeAgent) Name() string {
	return f.name
}

func (f *fakeAgent) RunAnonymous(_ context.Context, input any, _ *components.LLMResponse) (any, error) {
	in, ok := input.(*schema.Input)
	if !ok {
		return nil, agents.ErrInvalidInput
	}
	f.mtx.Lock()
	f.inputs = append(f.inputs, in.ChatMessage)
	f.mtx.Unlock()
	text, err := f.reply(in.ChatMessage)
	if err != nil {
		return nil, err
	}
	return schema.NewOutput(text), nil
}

func (f *fakeAgent) Inputs() []string {
	f.mtx.Lock()
	defer f.mtx.Unlock()
	return append([]string(nil), f.inputs...)
}

// webFactory counts created web agents, all of them share one fake
type webFactory struct {
	agent   *fakeAgent
	created int
}

func (w *webFactory) New() agents.AnonymousAgent {
	w.created++
	return w.agent
}
