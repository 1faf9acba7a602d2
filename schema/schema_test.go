package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringify(t *testing.T) {
	type payload struct {
		Base
		Value int `json:"value"`
	}
	tests := []struct {
		name   string
		input  Schema
		expect string
	}{
		{name: "string", input: String("hello"), expect: "hello"},
		{name: "string pointer", input: NewString("pointer"), expect: "pointer"},
		{name: "chat input", input: NewInput("Jan 1.1.1980"), expect: "Jan 1.1.1980"},
		{name: "chat output", input: Output{ChatMessage: "Ahoj"}, expect: "Ahoj"},
		{name: "struct", input: payload{Value: 42}, expect: `{"value":42}`},
		{name: "nil", input: nil, expect: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, Stringify(tt.input))
		})
	}
}

func TestBaseAttachment(t *testing.T) {
	in := NewInput("look at this")
	assert.Nil(t, in.Attachment())
	in.SetAttachment(&Attachment{ImageURLs: []string{"https://example.com/a.png"}})
	if assert.NotNil(t, in.Attachment()) {
		assert.Equal(t, []string{"https://example.com/a.png"}, in.Attachment().ImageURLs)
	}
}
