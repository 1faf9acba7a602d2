// Package contextwindow keeps tool results inside a token budget before they are handed to a model.
package contextwindow

import (
	"strings"

	"github.com/clipperhouse/uax29/sentences"
	"github.com/clipperhouse/uax29/words"
)

// Window truncates text to a token budget on sentence boundaries
type Window struct {
	counter   TokenCounter
	maxTokens int
}

type Option func(*Window)

// WithTokenCounter set the token counter
func WithTokenCounter(counter TokenCounter) Option {
	return func(w *Window) {
		w.counter = counter
	}
}

// New returns a Window with the given budget. Without a counter option the
// tiktoken DefaultEncoding is tried first, falling back to word segments.
func New(maxTokens int, opts ...Option) *Window {
	ret := &Window{
		maxTokens: maxTokens,
	}
	for _, opt := range opts {
		opt(ret)
	}
	if ret.counter == nil {
		if counter, err := NewTikTokenCounter(DefaultEncoding); err == nil {
			ret.counter = counter
		} else {
			ret.counter = WordsTokenCounter{}
		}
	}
	return ret
}

// MaxTokens returns the token budget
func (w *Window) MaxTokens() int {
	return w.maxTokens
}

// Count returns number of tokens of the text
func (w *Window) Count(text string) int {
	return w.counter.Count(text)
}

// Fit returns the longest prefix of whole sentences which fits the budget.
// When not even the first sentence fits, it is cut on a word boundary instead.
// The second return value reports whether anything was cut.
// A non positive budget disables truncation.
func (w *Window) Fit(text string) (string, bool) {
	if w.maxTokens <= 0 || w.counter.Count(text) <= w.maxTokens {
		return text, false
	}
	if ret := w.prefix(sentences.SegmentAll([]byte(text))); ret != "" {
		return ret, true
	}
	return w.prefix(words.SegmentAll([]byte(text))), true
}

// prefix joins leading segments while they fit the budget
func (w *Window) prefix(segments [][]byte) string {
	var (
		buf    strings.Builder
		tokens int
	)
	for _, segment := range segments {
		n := w.counter.Count(string(segment))
		if tokens+n > w.maxTokens {
			break
		}
		buf.Write(segment)
		tokens += n
	}
	return strings.TrimSpace(buf.String())
}
