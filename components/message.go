package components

import (
	cohere "github.com/cohere-ai/cohere-go/v2"
	"github.com/google/generative-ai-go/genai"
	anthropic "github.com/liushuangls/go-anthropic/v2"
	"github.com/rs/xid"
	openai "github.com/sashabaranov/go-openai"

	"github.com/war-crycz/ai-kurz/schema"
)

// NewTurnID returns a new turn ID.
func NewTurnID() string {
	return xid.New().String()
}

// MessageRole is the role of the message sender (e.g., 'user', 'system', 'tool')
type MessageRole = string

const (
	SystemRole    MessageRole = "system"
	UserRole      MessageRole = "user"
	AssistantRole MessageRole = "assistant"
	ToolRole      MessageRole = "tool"
)

// Message  Represents a message in the chat history.
type Message struct {
	content schema.Schema
	// role is the role of the message sender (e.g., 'user', 'system', 'tool')
	role MessageRole
	//	turnID is Unique identifier for the turn this message belongs to.
	turnID string
	// toolCalls are the tool invocations requested by an assistant message
	toolCalls []ToolCall
	// callback is the tool result carried by a tool message
	callback *ToolCallback
}

// NewMessage returns a new Message
func NewMessage(role MessageRole, content schema.Schema) *Message {
	return &Message{
		role:    role,
		content: content,
	}
}

// NewToolCallsMessage returns an assistant message requesting tool calls
func NewToolCallsMessage(content schema.Schema, calls []ToolCall) *Message {
	return &Message{
		role:      AssistantRole,
		content:   content,
		toolCalls: calls,
	}
}

// NewToolCallbackMessage returns a tool message carrying a tool result
func NewToolCallbackMessage(callback ToolCallback) *Message {
	return &Message{
		role:     ToolRole,
		content:  schema.String(callback.Content),
		callback: &callback,
	}
}

// SetTurnID set message turnID
func (m *Message) SetTurnID(turnID string) *Message {
	m.turnID = turnID
	return m
}

// Role returns message role
func (m Message) Role() MessageRole {
	return m.role
}

// Content returns message content
func (m Message) Content() schema.Schema {
	return m.content
}

// StringifiedContent returns message content as string
func (m Message) StringifiedContent() string {
	return schema.Stringify(m.content)
}

// Attachment returns message attachment
func (m Message) Attachment() *schema.Attachment {
	if m.content == nil {
		return nil
	}
	return m.content.Attachment()
}

// TurnID returns message turnID
func (m Message) TurnID() string {
	return m.turnID
}

// ToolCalls returns tool calls requested by the message
func (m Message) ToolCalls() []ToolCall {
	return m.toolCalls
}

// ToolCallback returns the tool result carried by the message
func (m Message) ToolCallback() *ToolCallback {
	return m.callback
}

// ToOpenAI convert message to openai ChatCompletionMessage
func (m Message) ToOpenAI(dist *openai.ChatCompletionMessage) {
	dist.Role = m.role
	if len(m.toolCalls) > 0 {
		ToolCallsToOpenAI(m.toolCalls, dist)
	}
	if m.callback != nil {
		ToolCallbackToOpenAI(*m.callback, dist)
		return
	}
	if attachment := m.Attachment(); attachment.HasImages() {
		dist.MultiContent = make([]openai.ChatMessagePart, 0, len(attachment.ImageURLs)+1)
		dist.MultiContent = append(dist.MultiContent, openai.ChatMessagePart{
			Type: openai.ChatMessagePartTypeText,
			Text: m.StringifiedContent(),
		})
		for _, imageURL := range attachment.ImageURLs {
			dist.MultiContent = append(dist.MultiContent, openai.ChatMessagePart{
				Type: openai.ChatMessagePartTypeImageURL,
				ImageURL: &openai.ChatMessageImageURL{
					URL: imageURL,
				},
			})
		}
		return
	}
	dist.Content = m.StringifiedContent()
}

// ToAnthropic convert message to anthropic Message.
// Anthropic has no system role inside the message list, such messages are sent as user content.
func (m Message) ToAnthropic(dist *anthropic.Message) {
	switch m.role {
	case AssistantRole:
		dist.Role = anthropic.RoleAssistant
	default:
		dist.Role = anthropic.RoleUser
	}
	dist.Content = []anthropic.MessageContent{anthropic.NewTextMessageContent(m.StringifiedContent())}
}

// ToCohere convert message to cohere Message
func (m Message) ToCohere(dist *cohere.Message) {
	msg := &cohere.ChatMessage{
		Message: m.StringifiedContent(),
	}
	switch m.role {
	case SystemRole:
		dist.Role = "SYSTEM"
		dist.System = msg
	case AssistantRole:
		dist.Role = "CHATBOT"
		dist.Chatbot = msg
	default:
		dist.Role = "USER"
		dist.User = msg
	}
}

// ToGemini convert message to gemini Content, gemini only knows user and model roles
func (m Message) ToGemini(dist *genai.Content) {
	dist.Role = "user"
	if m.role == AssistantRole {
		dist.Role = "model"
	}
	dist.Parts = []genai.Part{genai.Text(m.StringifiedContent())}
}
