package constants

// NATS Subjects
const (
	// Emergency alerts sent to hospitals
	SubjectEmergencyAlert = "emergency.alert"
)
