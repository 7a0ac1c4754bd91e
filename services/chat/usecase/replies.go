package usecase

import (
	"fmt"
	"math/rand"
)

// Responder picks the next hospital reply
type Responder func() string

var cannedReplies = []string{
	"Thank you for the information. Our team is on the way.",
	"Can you provide more details about your current condition?",
	"The ambulance is currently navigating to your location. ETA is about 5-7 minutes.",
	"Please stay calm and remain in your current location if possible.",
	"Is there anyone else with you who can assist until our team arrives?",
	"Our emergency response team has been notified and is preparing for your arrival.",
}

// RandomReply returns one of the canned hospital replies
func RandomReply() string {
	return cannedReplies[rand.Intn(len(cannedReplies))]
}

func alertSentText(hospitalName string) string {
	return fmt.Sprintf("Your emergency alert has been sent to %s. Please stay on this page for updates.", hospitalName)
}

func acknowledgementText(hospitalName string) string {
	return fmt.Sprintf("This is the emergency response team at %s. We have received your alert and dispatched help. Please provide any additional information about your situation.", hospitalName)
}
