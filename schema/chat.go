package schema

// Input is the plain chat input schema, a message typed by the user.
type Input struct {
	Base
	// ChatMessage The chat message sent by the user to the assistant.
	ChatMessage string `json:"chat_message" jsonschema:"title=chat_message,description=The chat message sent by the user to the assistant." validate:"required"`
}

// NewInput returns a new Input
func NewInput(msg string) *Input {
	return &Input{
		ChatMessage: msg,
	}
}

func (s Input) String() string {
	return s.ChatMessage
}

// Output is the plain chat output schema, a message returned by the assistant.
type Output struct {
	Base
	// ChatMessage The chat message exchanged between the user and the chat agent.
	ChatMessage string `json:"chat_message" jsonschema:"title=chat_message,description=The chat message exchanged between the user and the chat agent. This contains the markdown-enabled response generated by the chat agent."`
}

// NewOutput returns a new Output
func NewOutput(msg string) *Output {
	return &Output{
		ChatMessage: msg,
	}
}

func (s Output) String() string {
	return s.ChatMessage
}
