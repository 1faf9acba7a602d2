package agents

import (
	"context"
	"errors"

	"github.com/bububa/instructor-go"
	"github.com/bububa/instructor-go/encoding"
	anthropicInstructor "github.com/bububa/instructor-go/instructors/anthropic"
	cohereInstructor "github.com/bububa/instructor-go/instructors/cohere"
	geminiInstructor "github.com/bububa/instructor-go/instructors/gemini"
	openaiInstructor "github.com/bububa/instructor-go/instructors/openai"
	cohere "github.com/cohere-ai/cohere-go/v2"
	"github.com/google/generative-ai-go/genai"
	anthropic "github.com/liushuangls/go-anthropic/v2"
	openai "github.com/sashabaranov/go-openai"

	"github.com/war-crycz/ai-kurz/components"
	"github.com/war-crycz/ai-kurz/components/systemprompt"
	"github.com/war-crycz/ai-kurz/components/systemprompt/cot"
	"github.com/war-crycz/ai-kurz/schema"
	"github.com/war-crycz/ai-kurz/tools"
)

// DefaultAnthropicMaxTokens is used when no max tokens is configured, anthropic requires one
const DefaultAnthropicMaxTokens = 1024

var (
	ErrInvalidInput    = errors.New("invalid agent input schema")
	ErrInvalidOutput   = errors.New("invalid agent output schema")
	ErrNoClient        = errors.New("agent has no llm client")
	ErrUnknownProvider = errors.New("unsupported instructor provider")
	ErrNoAgentSelected = errors.New("no agent selected")
)

type IAgent interface {
	Name() string
}

// AnonymousAgent is an agent which could be run without knowing its schemas
type AnonymousAgent interface {
	IAgent
	RunAnonymous(ctx context.Context, input any, llmResp *components.LLMResponse) (any, error)
}

// Config represents general agents configuration
type Config struct {
	// client Client for structured output
	client instructor.Instructor
	// chatClient Client for native function calling
	chatClient ChatCompleter
	//	memory  Memory component for storing chat history.
	memory *components.Memory
	//	systemPromptGenerator Component for generating system prompts.
	systemPromptGenerator systemprompt.Generator
	// registry functions offered to the model
	registry *tools.Registry
	// model llm model
	model string
	// temperature Temperature for response generation, typically ranging from 0 to 1.
	temperature float32
	// maxTokens Maximum number of tokens allowed in the response
	maxTokens int
	// maxSteps Maximum model round trips of a single turn
	maxSteps int
	// name is Agent name presentation
	name string
}

func (c *Config) SetClient(clt instructor.Instructor) {
	c.client = clt
}

func (c *Config) SetMemory(m *components.Memory) {
	c.memory = m
}

func (c *Config) SetSystemPromptGenerator(g systemprompt.Generator) {
	c.systemPromptGenerator = g
}

func (c *Config) SetModel(model string) {
	c.model = model
}

func (c Config) Model() string {
	return c.model
}

func (c *Config) SetTemperature(temperature float32) {
	c.temperature = temperature
}

func (c *Config) SetMaxTokens(maxTokens int) {
	c.maxTokens = maxTokens
}

func (c Config) Name() string {
	return c.name
}

func (c *Config) SetName(name string) {
	c.name = name
}

// Memory returns the agent memory
func (c Config) Memory() *components.Memory {
	return c.memory
}

// ResetMemory clears the chat history
func (c *Config) ResetMemory() {
	c.memory.Reset()
}

// NewMessage appends a message to the agent memory
func (c *Config) NewMessage(role components.MessageRole, content schema.Schema) *components.Message {
	return c.memory.NewMessage(role, content)
}

// SystemPromptContextProvider returns agent systemPromptGenerator's context provider
func (c *Config) SystemPromptContextProvider(title string) (systemprompt.ContextProvider, error) {
	return c.systemPromptGenerator.ContextProvider(title)
}

// RegisterSystemPromptContextProvider registers a new context provider
func (c *Config) RegisterSystemPromptContextProvider(provider systemprompt.ContextProvider) {
	c.systemPromptGenerator.AddContextProviders(provider)
}

// UnregisterSystemPromptContextProvider Unregisters an existing context provider.
func (c *Config) UnregisterSystemPromptContextProvider(title string) {
	c.systemPromptGenerator.RemoveContextProviders(title)
}

// SystemPrompt returns the system prompt
func (c *Config) SystemPrompt() string {
	return c.systemPromptGenerator.Generate()
}

// messages returns the system prompt followed by the chat history
func (c *Config) messages() []components.Message {
	history := c.memory.History()
	messages := make([]components.Message, 0, len(history)+1)
	messages = append(messages, *components.NewMessage(components.SystemRole, schema.String(c.SystemPrompt())))
	return append(messages, history...)
}

func (c *Config) applyDefaults(options []Option) {
	for _, opt := range options {
		opt(c)
	}
	if c.memory == nil {
		c.memory = components.NewMemory(0)
	}
	if c.systemPromptGenerator == nil {
		c.systemPromptGenerator = cot.New()
	}
	if c.registry == nil {
		c.registry = tools.NewRegistry()
	}
}

// Agent class for structured output chat agents.
// It provides the core functionality for handling chat interactions, including managing memory,
// generating system prompts, and obtaining typed responses from a language model.
type Agent[I schema.Schema, O schema.Schema] struct {
	Config
	startHook func(context.Context, *Agent[I, O], *I)
	endHook   func(context.Context, *Agent[I, O], *I, *O, *components.LLMResponse)
	errorHook func(context.Context, *Agent[I, O], *I, *components.LLMResponse, error)
}

var _ AnonymousAgent = (*Agent[schema.Input, schema.Output])(nil)

// NewAgent initializes the Agent
func NewAgent[I schema.Schema, O schema.Schema](options ...Option) *Agent[I, O] {
	ret := new(Agent[I, O])
	ret.applyDefaults(options)
	return ret
}

func (a *Agent[I, O]) SetStartHook(fn func(context.Context, *Agent[I, O], *I)) {
	a.startHook = fn
}

func (a *Agent[I, O]) SetEndHook(fn func(context.Context, *Agent[I, O], *I, *O, *components.LLMResponse)) {
	a.endHook = fn
}

func (a *Agent[I, O]) SetErrorHook(fn func(context.Context, *Agent[I, O], *I, *components.LLMResponse, error)) {
	a.errorHook = fn
}

// useEncoder rebuilds the client encoder for the response schema.
// The instructor caches its encoder, a client shared by agents with different outputs needs a fresh one per call.
func (a *Agent[I, O]) useEncoder(response *O) error {
	enc, err := encoding.PredefinedEncoder(a.client.Mode(), response)
	if err != nil {
		return err
	}
	a.client.SetEncoder(enc)
	return nil
}

// response obtains a response from the language model synchronously
func (a *Agent[I, O]) response(ctx context.Context, response *O, llmResp *components.LLMResponse) error {
	if a.client == nil {
		return ErrNoClient
	}
	if llmResp == nil {
		llmResp = new(components.LLMResponse)
	}
	if err := a.useEncoder(response); err != nil {
		return err
	}
	messages := a.messages()
	switch clt := a.client.(type) {
	case *openaiInstructor.Instructor:
		chatReq := openai.ChatCompletionRequest{
			Model:               a.model,
			Temperature:         a.temperature,
			MaxCompletionTokens: a.maxTokens,
		}
		for _, msg := range messages {
			v := new(openai.ChatCompletionMessage)
			msg.ToOpenAI(v)
			chatReq.Messages = append(chatReq.Messages, *v)
		}
		var res openai.ChatCompletionResponse
		if err := clt.Chat(ctx, &chatReq, response, &res); err != nil {
			return err
		}
		llmResp.FromOpenAI(&res)
	case *anthropicInstructor.Instructor:
		chatReq := anthropic.MessagesRequest{
			Model:       anthropic.Model(a.model),
			System:      messages[0].StringifiedContent(),
			Temperature: &a.temperature,
			MaxTokens:   a.maxTokens,
		}
		if chatReq.MaxTokens <= 0 {
			chatReq.MaxTokens = DefaultAnthropicMaxTokens
		}
		for _, msg := range messages[1:] {
			v := new(anthropic.Message)
			msg.ToAnthropic(v)
			// consecutive messages of one role are merged, roles must alternate
			if l := len(chatReq.Messages); l > 0 && chatReq.Messages[l-1].Role == v.Role {
				chatReq.Messages[l-1].Content = append(chatReq.Messages[l-1].Content, v.Content...)
				continue
			}
			chatReq.Messages = append(chatReq.Messages, *v)
		}
		var res anthropic.MessagesResponse
		if err := clt.Chat(ctx, &chatReq, response, &res); err != nil {
			return err
		}
		llmResp.FromAnthropic(&res)
	case *cohereInstructor.Instructor:
		lastIdx := len(messages) - 1
		temperature := float64(a.temperature)
		chatReq := cohere.ChatRequest{
			Message:     messages[lastIdx].StringifiedContent(),
			Temperature: &temperature,
		}
		if a.model != "" {
			chatReq.Model = &a.model
		}
		if a.maxTokens > 0 {
			chatReq.MaxTokens = &a.maxTokens
		}
		for _, msg := range messages[:lastIdx] {
			v := new(cohere.Message)
			msg.ToCohere(v)
			chatReq.ChatHistory = append(chatReq.ChatHistory, v)
		}
		var res cohere.NonStreamedChatResponse
		if err := clt.Chat(ctx, &chatReq, response, &res); err != nil {
			return err
		}
		llmResp.FromCohere(&res)
	case *geminiInstructor.Instructor:
		lastIdx := len(messages) - 1
		chatReq := geminiInstructor.Request{
			Model:  a.model,
			System: &genai.Content{Parts: []genai.Part{genai.Text(messages[0].StringifiedContent())}},
		}
		last := new(genai.Content)
		messages[lastIdx].ToGemini(last)
		chatReq.Parts = last.Parts
		if lastIdx > 0 {
			for _, msg := range messages[1:lastIdx] {
				v := new(genai.Content)
				msg.ToGemini(v)
				chatReq.History = append(chatReq.History, v)
			}
		}
		var res genai.GenerateContentResponse
		if err := clt.Chat(ctx, &chatReq, response, &res); err != nil {
			return err
		}
		llmResp.FromGemini(&res)
	default:
		return ErrUnknownProvider
	}
	return nil
}

// Run runs the chat agent with the given user input synchronously.
func (a *Agent[I, O]) Run(ctx context.Context, userInput *I, output *O, llmResp *components.LLMResponse) error {
	if fn := a.startHook; fn != nil {
		fn(ctx, a, userInput)
	}
	if userInput != nil {
		a.memory.NewTurn()
		a.memory.NewMessage(components.UserRole, *userInput)
	}
	if err := a.response(ctx, output, llmResp); err != nil {
		if fn := a.errorHook; fn != nil {
			fn(ctx, a, userInput, llmResp, err)
		}
		return err
	}
	a.memory.NewMessage(components.AssistantRole, *output)
	if fn := a.endHook; fn != nil {
		fn(ctx, a, userInput, output, llmResp)
	}
	return nil
}

// RunAnonymous runs the agent with an input of type *I and returns *O
func (a *Agent[I, O]) RunAnonymous(ctx context.Context, input any, llmResp *components.LLMResponse) (any, error) {
	in, ok := input.(*I)
	if !ok {
		return nil, ErrInvalidInput
	}
	out := new(O)
	if err := a.Run(ctx, in, out, llmResp); err != nil {
		return nil, err
	}
	return out, nil
}
