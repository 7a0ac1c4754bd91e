package models

import (
	"strings"
	"time"
)

// EmergencyType is the closed set of emergencies the service handles
type EmergencyType string

const (
	EmergencyTypeAccident  EmergencyType = "Accident"
	EmergencyTypePregnancy EmergencyType = "Pregnancy"
	EmergencyTypeOther     EmergencyType = "Other Emergency"
)

// EmergencyTypes lists the types in priority order
var EmergencyTypes = []EmergencyType{
	EmergencyTypeAccident,
	EmergencyTypePregnancy,
	EmergencyTypeOther,
}

// IsValid reports whether t is one of the known emergency types
func (t EmergencyType) IsValid() bool {
	for _, known := range EmergencyTypes {
		if t == known {
			return true
		}
	}
	return false
}

// ParseEmergencyType accepts the display value or its short key
// ("accident", "pregnancy", "other"), case-insensitively
func ParseEmergencyType(s string) (EmergencyType, bool) {
	v := strings.ToLower(strings.TrimSpace(s))
	switch v {
	case "accident":
		return EmergencyTypeAccident, true
	case "pregnancy":
		return EmergencyTypePregnancy, true
	case "other", "other emergency":
		return EmergencyTypeOther, true
	}
	return "", false
}

// EmergencyOption describes an emergency type for the type selector
type EmergencyOption struct {
	Type        EmergencyType `json:"type"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Priority    string        `json:"priority"`
}

// EmergencyOptions is the type selector catalogue
var EmergencyOptions = []EmergencyOption{
	{
		Type:        EmergencyTypeAccident,
		Title:       "Accident",
		Description: "Traffic accidents, falls, injuries",
		Priority:    "First Priority",
	},
	{
		Type:        EmergencyTypePregnancy,
		Title:       "Pregnancy",
		Description: "Labor, pregnancy complications",
		Priority:    "Second Priority",
	},
	{
		Type:        EmergencyTypeOther,
		Title:       "Other Emergency",
		Description: "Heart attack, severe pain, etc.",
		Priority:    "Third Priority",
	},
}

// EmergencyRequest is built once, when the user sends the alert
type EmergencyRequest struct {
	ID               string        `json:"id"`
	Type             EmergencyType `json:"type"`
	Description      string        `json:"description"`
	UserLocation     UserLocation  `json:"user_location"`
	SelectedHospital Hospital      `json:"selected_hospital"`
	Timestamp        time.Time     `json:"timestamp"`
}

// SubmitRequest is the form sent on the last wizard step
type SubmitRequest struct {
	Description   string `json:"description"`
	ManualAddress string `json:"manual_address"`
}
