package components

import (
	openai "github.com/sashabaranov/go-openai"
)

// ToolCall is a function invocation requested by the model
type ToolCall struct {
	ID        string `json:"id,omitempty"`
	Name      string `json:"name,omitempty"`
	Arguments string `json:"arguments,omitempty"`
}

// ToolCallsFromOpenAI converts openai tool calls
func ToolCallsFromOpenAI(src []openai.ToolCall) []ToolCall {
	list := make([]ToolCall, 0, len(src))
	for _, v := range src {
		list = append(list, ToolCall{
			ID:        v.ID,
			Name:      v.Function.Name,
			Arguments: v.Function.Arguments,
		})
	}
	return list
}

// ToolCallsToOpenAI attaches tool calls to an assistant message
func ToolCallsToOpenAI(src []ToolCall, dist *openai.ChatCompletionMessage) {
	list := make([]openai.ToolCall, 0, len(src))
	for _, v := range src {
		list = append(list, openai.ToolCall{
			ID:   v.ID,
			Type: openai.ToolTypeFunction,
			Function: openai.FunctionCall{
				Name:      v.Name,
				Arguments: v.Arguments,
			},
		})
	}
	dist.Role = openai.ChatMessageRoleAssistant
	dist.ToolCalls = list
}

// ToolCallback is the result of a local tool execution
type ToolCallback struct {
	ID      string `json:"id,omitempty"`
	Name    string `json:"name,omitempty"`
	Content string `json:"content,omitempty"`
	IsError bool   `json:"is_error,omitempty"`
}

// ToolCallbackToOpenAI fills a tool role message
func ToolCallbackToOpenAI(src ToolCallback, dist *openai.ChatCompletionMessage) {
	dist.Role = openai.ChatMessageRoleTool
	dist.ToolCallID = src.ID
	dist.Name = src.Name
	dist.Content = src.Content
}
