package models

import (
	"encoding/json"
	"time"
)

// MessageSender tags who wrote a chat message
type MessageSender string

const (
	SenderUser     MessageSender = "user"
	SenderHospital MessageSender = "hospital"
)

// Message is one entry of the emergency chat log
type Message struct {
	ID        string        `json:"id"`
	Text      string        `json:"text"`
	Sender    MessageSender `json:"sender"`
	Timestamp time.Time     `json:"timestamp"`
}

// Conversation is a snapshot of a chat with the selected hospital
type Conversation struct {
	ID       string           `json:"id"`
	Request  EmergencyRequest `json:"request"`
	Messages []Message        `json:"messages"`
	Typing   bool             `json:"typing"`
}

// ChatEvent is pushed to chat subscribers
type ChatEvent struct {
	Event        string        `json:"event"`
	Message      *Message      `json:"message,omitempty"`
	Typing       *bool         `json:"typing,omitempty"`
	Conversation *Conversation `json:"conversation,omitempty"`
}

// SendMessageRequest is the body of a chat message post
type SendMessageRequest struct {
	Text string `json:"text"`
}

// WSMessage represents a WebSocket message structure
type WSMessage struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// WSErrorMessage represents an error message sent over WebSocket
type WSErrorMessage struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
