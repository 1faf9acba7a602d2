package contextwindow

import (
	"fmt"

	"github.com/clipperhouse/uax29/words"
	"github.com/pkoukk/tiktoken-go"
)

// DefaultEncoding is the tiktoken encoding of the gpt-4o family
const DefaultEncoding = "o200k_base"

// TokenCounter defines the interface for counting tokens in a string.
type TokenCounter interface {
	Count(text string) int
}

// WordsTokenCounter approximates tokens by unicode word segments.
// It needs no vocabulary download and is the fallback when tiktoken is unavailable.
type WordsTokenCounter struct{}

func (c WordsTokenCounter) Count(text string) int {
	return len(words.SegmentAll([]byte(text)))
}

// TikTokenCounter provides accurate token counting using the tiktoken library,
// which implements the tokenization schemes used by OpenAI models.
type TikTokenCounter struct {
	tke *tiktoken.Tiktoken
}

// NewTikTokenCounter creates a new TikTokenCounter using the specified encoding.
// Common encodings include:
// - "o200k_base" (GPT-4o)
// - "cl100k_base" (GPT-4, ChatGPT)
func NewTikTokenCounter(encoding string) (*TikTokenCounter, error) {
	tke, err := tiktoken.GetEncoding(encoding)
	if err != nil {
		return nil, fmt.Errorf("failed to get encoding: %w", err)
	}
	return &TikTokenCounter{tke: tke}, nil
}

// Count returns the exact number of tokens in the text according to the
// specified tiktoken encoding.
func (c *TikTokenCounter) Count(text string) int {
	return len(c.tke.Encode(text, nil, nil))
}
