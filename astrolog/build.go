package astrolog

import (
	"context"

	"github.com/bububa/instructor-go"
	"github.com/sirupsen/logrus"

	"github.com/war-crycz/ai-kurz/agents"
	"github.com/war-crycz/ai-kurz/birthdate"
	"github.com/war-crycz/ai-kurz/components"
	"github.com/war-crycz/ai-kurz/schema"
	"github.com/war-crycz/ai-kurz/tools"
	"github.com/war-crycz/ai-kurz/tools/age"
	"github.com/war-crycz/ai-kurz/tools/browser"
	"github.com/war-crycz/ai-kurz/tools/chinesezodiac"
	"github.com/war-crycz/ai-kurz/tools/clock"
	"github.com/war-crycz/ai-kurz/tools/numerology"
	"github.com/war-crycz/ai-kurz/tools/people"
	"github.com/war-crycz/ai-kurz/tools/zodiac"
)

const (
	LogicAgentName = "astrolog"
	WebAgentName   = "svatky"
)

// LogicTools returns the nine functions of the logic agent
func LogicTools(store *people.Store, clk birthdate.Clock, opts ...tools.Option) []tools.Function {
	fns := make([]tools.Function, 0, 9)
	fns = append(fns, tools.MustFunction[clock.Input, schema.String](clock.New(clock.WithClock(clk), clock.WithToolOptions(opts...))))
	fns = append(fns, people.Functions(store, people.WithClock(clk), people.WithToolOptions(opts...))...)
	fns = append(fns,
		tools.MustFunction[zodiac.Input, schema.String](zodiac.New(opts...)),
		tools.MustFunction[age.Input, schema.String](age.New(age.WithClock(clk), age.WithToolOptions(opts...))),
		tools.MustFunction[chinesezodiac.Input, schema.String](chinesezodiac.New(opts...)),
		tools.MustFunction[numerology.Input, schema.String](numerology.New(opts...)),
	)
	return fns
}

// NewLogicAgent returns the persistent function calling agent over the user store
func NewLogicAgent(chat agents.ChatCompleter, store *people.Store, clk birthdate.Clock, l logrus.FieldLogger, opts ...agents.Option) *agents.FunctionAgent {
	base := []agents.Option{
		agents.WithChatClient(chat),
		agents.WithName(LogicAgentName),
		agents.WithSystemPromptGenerator(LogicPrompt(clk)),
		agents.WithTools(LogicTools(store, clk, ToolHooks(l)...)...),
	}
	ret := agents.NewFunctionAgent(append(base, opts...)...)
	ret.SetToolHook(func(ctx context.Context, a *agents.FunctionAgent, call components.ToolCall, callback components.ToolCallback) {
		l.WithFields(logrus.Fields{
			"agent":     a.Name(),
			"tool":      call.Name,
			"arguments": call.Arguments,
			"is_error":  callback.IsError,
		}).Debug(callback.Content)
	})
	ret.SetEndHook(func(ctx context.Context, a *agents.FunctionAgent, in *schema.Input, out *schema.Output, resp *components.LLMResponse) {
		entry := l.WithField("agent", a.Name())
		if usage := resp.Usage; usage != nil {
			entry = entry.WithFields(logrus.Fields{
				"input_tokens":  usage.InputTokens,
				"output_tokens": usage.OutputTokens,
				"total_tokens":  usage.Total(),
			})
		}
		entry.Debug("turn finished")
	})
	ret.SetErrorHook(func(ctx context.Context, a *agents.FunctionAgent, in *schema.Input, resp *components.LLMResponse, err error) {
		l.WithField("agent", a.Name()).WithError(err).Debug("turn failed")
	})
	return ret
}

// WebAgent writes search queries, browses and answers from the opened pages
type WebAgent = agents.ToolAgent[schema.Input, browser.Input, schema.Output]

// NewWebAgent returns a fresh web agent, it is created for every request and keeps no history
func NewWebAgent(clt instructor.Instructor, web tools.Tool[browser.Input, browser.Output], l logrus.FieldLogger, opts ...agents.Option) *WebAgent {
	opts = append([]agents.Option{agents.WithClient(clt), agents.WithName(WebAgentName)}, opts...)
	ret := agents.NewToolAgent[schema.Input, browser.Input, schema.Output](opts...).
		SetName(WebAgentName).
		SetTool(tools.Anonymize(web)).
		SetStartSystemPromptGenerator(WebQueryPrompt()).
		SetEndSystemPromptGenerator(WebAnswerPrompt())
	ret.Start().SetEndHook(func(ctx context.Context, a *agents.Agent[schema.Input, browser.Input], in *schema.Input, out *browser.Input, resp *components.LLMResponse) {
		l.WithFields(logrus.Fields{"agent": a.Name(), "queries": out.Queries}).Debug("search queries")
	})
	ret.End().SetErrorHook(func(ctx context.Context, a *agents.Agent[schema.Input, schema.Output], in *schema.Input, resp *components.LLMResponse, err error) {
		l.WithField("agent", a.Name()).WithError(err).Debug("answer failed")
	})
	return ret
}

// ToolHooks log every tool call
func ToolHooks(l logrus.FieldLogger) []tools.Option {
	return []tools.Option{
		tools.WithStartHook(func(ctx context.Context, t tools.AnonymousTool, input any) {
			l.WithField("tool", t.Title()).Debugf("input: %+v", input)
		}),
		tools.WithEndHook(func(ctx context.Context, t tools.AnonymousTool, input any, output any) {
			l.WithField("tool", t.Title()).Debug("done")
		}),
		tools.WithErrorHook(func(ctx context.Context, t tools.AnonymousTool, input any, err error) {
			l.WithField("tool", t.Title()).WithError(err).Warn("tool failed")
		}),
	}
}
