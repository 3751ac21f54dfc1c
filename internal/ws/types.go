package ws

import (
	"encoding/json"
)

// MessageType names the kind of frame exchanged on a game socket.
type MessageType string

const (
	MessageTypeMove      MessageType = "move"
	MessageTypeGameState MessageType = "gameState"
	MessageTypeError     MessageType = "error"
)

// Message is the envelope of every WebSocket frame.
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type ErrorPayload struct {
	Error string `json:"error"`
}

// NewMessage encodes payload into a frame of the given type.
func NewMessage(t MessageType, payload interface{}) (Message, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return Message{}, err
	}
	return Message{Type: t, Payload: raw}, nil
}

// ErrorMessage builds an error frame. It cannot fail.
func ErrorMessage(text string) Message {
	raw, _ := json.Marshal(ErrorPayload{Error: text})
	return Message{Type: MessageTypeError, Payload: raw}
}
