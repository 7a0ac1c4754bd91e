package constants

// Redis key formats
const (
	KeyEmergencySession = "emergency:session:%s" // Format: emergency:session:{session_id}
)

// Cache key formats for the in-memory stores
const (
	KeyGeocodeCell  = "geocode:%s" // Format: geocode:{geohash}
	KeyConversation = "chat:%s"    // Format: chat:{chat_id}
)
