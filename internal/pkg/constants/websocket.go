package constants

// WebSocket event types
const (
	// Common events
	EventError = "error"
	EventPing  = "ping"
	EventPong  = "pong"

	// Chat events
	EventChatHistory = "chat.history"
	EventChatMessage = "chat.message"
	EventChatTyping  = "chat.typing"
	EventChatSend    = "chat.send"
)

// WebSocket error codes
const (
	ErrorInvalidFormat    = "invalid_format"
	ErrorValidationFailed = "validation_failed"
	ErrorInternalError    = "internal_error"
	ErrorChatNotFound     = "chat_not_found"
)
