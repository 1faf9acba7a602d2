package components

import (
	"errors"
	"fmt"
	"sync"

	"github.com/war-crycz/ai-kurz/schema"
)

var ErrTurnNotFound = errors.New("turn not found in memory")

// Memory is the chat history of an agent, grouped into turns.
// A turn starts with NewTurn and holds the user message, tool calls, tool
// results and the final answer. It is safe for concurrent use.
type Memory struct {
	mtx     sync.RWMutex
	history []Message
	turnID  string
	// maxMessages bounds the history, zero keeps everything
	maxMessages int
}

// NewMemory returns an empty Memory keeping at most maxMessages messages
func NewMemory(maxMessages int) *Memory {
	return &Memory{maxMessages: maxMessages}
}

// MaxMessages returns the history bound
func (m *Memory) MaxMessages() int {
	m.mtx.RLock()
	defer m.mtx.RUnlock()
	return m.maxMessages
}

// TurnID returns the current turn ID
func (m *Memory) TurnID() string {
	m.mtx.RLock()
	defer m.mtx.RUnlock()
	return m.turnID
}

// NewTurn starts a turn and returns its ID
func (m *Memory) NewTurn() string {
	id := NewTurnID()
	m.mtx.Lock()
	m.turnID = id
	m.mtx.Unlock()
	return id
}

// NewMessage appends a message with the role and content to the current turn
func (m *Memory) NewMessage(role MessageRole, content schema.Schema) *Message {
	return m.Append(NewMessage(role, content))
}

// Append adds a prepared message, such as tool calls or a tool result, to the current turn
func (m *Memory) Append(msg *Message) *Message {
	m.mtx.Lock()
	defer m.mtx.Unlock()
	msg.SetTurnID(m.turnID)
	m.history = append(m.history, *msg)
	m.trim()
	return msg
}

// trim drops the oldest messages over the bound, then the rest of a cut turn
// up to the next user message so tool results never lose their tool calls
func (m *Memory) trim() {
	over := len(m.history) - m.maxMessages
	if m.maxMessages <= 0 || over <= 0 {
		return
	}
	for idx := over; idx < len(m.history); idx++ {
		if m.history[idx].Role() == UserRole {
			over = idx
			break
		}
	}
	m.history = append([]Message(nil), m.history[over:]...)
}

// History returns a copy of the chat history
func (m *Memory) History() []Message {
	m.mtx.RLock()
	defer m.mtx.RUnlock()
	return append([]Message(nil), m.history...)
}

// Copy replaces the memory content with the content of src
func (m *Memory) Copy(src *Memory) {
	src.mtx.RLock()
	history := append([]Message(nil), src.history...)
	turnID, maxMessages := src.turnID, src.maxMessages
	src.mtx.RUnlock()

	m.mtx.Lock()
	m.history, m.turnID, m.maxMessages = history, turnID, maxMessages
	m.mtx.Unlock()
}

// Reset forgets the whole history
func (m *Memory) Reset() {
	m.mtx.Lock()
	m.history = nil
	m.turnID = ""
	m.mtx.Unlock()
}

// DeleteTurn removes every message of a turn.
// When the current turn is removed the last remaining turn becomes current.
func (m *Memory) DeleteTurn(turnID string) error {
	m.mtx.Lock()
	defer m.mtx.Unlock()
	kept := m.history[:0:0]
	for _, msg := range m.history {
		if msg.TurnID() != turnID {
			kept = append(kept, msg)
		}
	}
	if len(kept) == len(m.history) {
		return fmt.Errorf("%w: %s", ErrTurnNotFound, turnID)
	}
	m.history = kept
	if turnID == m.turnID {
		m.turnID = ""
		if l := len(kept); l > 0 {
			m.turnID = kept[l-1].TurnID()
		}
	}
	return nil
}

// MessageCount returns the number of messages in the chat history
func (m *Memory) MessageCount() int {
	m.mtx.RLock()
	defer m.mtx.RUnlock()
	return len(m.history)
}
