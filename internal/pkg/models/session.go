package models

import "time"

// WizardStep is a position in the three-step emergency flow
type WizardStep int

const (
	StepSelectType     WizardStep = 1
	StepSelectHospital WizardStep = 2
	StepSubmit         WizardStep = 3
)

// String returns the label shown under the step indicator
func (s WizardStep) String() string {
	switch s {
	case StepSelectType:
		return "Type"
	case StepSelectHospital:
		return "Location"
	case StepSubmit:
		return "Send"
	default:
		return "Unknown"
	}
}

// EmergencySession holds the wizard state of one user between requests
type EmergencySession struct {
	ID               string            `json:"id"`
	Step             WizardStep        `json:"step"`
	Type             EmergencyType     `json:"type,omitempty"`
	Location         *UserLocation     `json:"location,omitempty"`
	Hospitals        []Hospital        `json:"hospitals,omitempty"`
	SelectedHospital *Hospital         `json:"selected_hospital,omitempty"`
	Request          *EmergencyRequest `json:"request,omitempty"`
	ChatID           string            `json:"chat_id,omitempty"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
}

// SessionView is a session as returned to clients
type SessionView struct {
	*EmergencySession
	StepLabel    string        `json:"step_label"`
	CanContinue  bool          `json:"can_continue"`
	Notification *Notification `json:"notification,omitempty"`
}

// SelectTypeRequest is the body of an emergency type selection
type SelectTypeRequest struct {
	Type string `json:"type"`
}

// SelectHospitalRequest is the body of a hospital selection
type SelectHospitalRequest struct {
	HospitalID string `json:"hospital_id"`
}
