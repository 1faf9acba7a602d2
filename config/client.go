package config

import (
	"context"
	"fmt"

	"github.com/bububa/instructor-go"
	"github.com/bububa/instructor-go/instructors"
	cohereClient "github.com/cohere-ai/cohere-go/v2/client"
	cohereOption "github.com/cohere-ai/cohere-go/v2/option"
	"github.com/google/generative-ai-go/genai"
	anthropic "github.com/liushuangls/go-anthropic/v2"
	openai "github.com/sashabaranov/go-openai"
	"google.golang.org/api/option"
)

// NewChatClient returns the OpenAI client used for native function calling
func (c Config) NewChatClient() *openai.Client {
	cfg := openai.DefaultConfig(c.APIKey)
	if c.BaseURL != "" {
		cfg.BaseURL = c.BaseURL
	}
	return openai.NewClientWithConfig(cfg)
}

func instructorOptions() []instructor.Option {
	return []instructor.Option{
		instructor.WithMode(instructor.ModeJSON),
		instructor.WithMaxRetries(instructor.DefaultMaxRetries),
		instructor.WithValidation(),
	}
}

// NewInstructor returns the structured output client of the configured provider
func (c Config) NewInstructor(ctx context.Context) (instructor.Instructor, error) {
	switch c.Provider {
	case Anthropic:
		clt := anthropic.NewClient(c.AnthropicAPIKey)
		return instructors.FromAnthropic(clt, instructorOptions()...), nil
	case Cohere:
		clt := cohereClient.NewClient(cohereOption.WithToken(c.CohereAPIKey))
		return instructors.FromCohere(clt, instructorOptions()...), nil
	case Gemini:
		clt, err := genai.NewClient(ctx, option.WithAPIKey(c.GeminiAPIKey))
		if err != nil {
			return nil, fmt.Errorf("gemini client: %w", err)
		}
		return instructors.FromGemini(clt, instructorOptions()...), nil
	default:
		return instructors.FromOpenAI(c.NewChatClient(), instructorOptions()...), nil
	}
}
