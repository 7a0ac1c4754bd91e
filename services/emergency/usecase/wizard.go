package usecase

import (
	"github.com/piresc/quickconnect/internal/pkg/models"
	"github.com/piresc/quickconnect/services/emergency"
)

// CanContinue reports whether the session may move to the next step
func CanContinue(s *models.EmergencySession) bool {
	switch s.Step {
	case models.StepSelectType:
		return s.Type != ""
	case models.StepSelectHospital:
		return s.SelectedHospital != nil
	default:
		return false
	}
}

// advance moves s one step forward when its guard holds
func advance(s *models.EmergencySession) error {
	switch s.Step {
	case models.StepSelectType:
		if s.Type == "" {
			return emergency.ErrTypeRequired
		}
	case models.StepSelectHospital:
		if s.SelectedHospital == nil {
			return emergency.ErrHospitalRequired
		}
	default:
		return emergency.ErrNoNextStep
	}
	s.Step++
	return nil
}

// retreat moves s one step back, keeping every selection
func retreat(s *models.EmergencySession) error {
	if s.Step <= models.StepSelectType {
		return emergency.ErrFirstStep
	}
	s.Step--
	return nil
}

// requireStep fails unless s is on step
func requireStep(s *models.EmergencySession, step models.WizardStep) error {
	if s.Step != step {
		return emergency.ErrWrongStep
	}
	return nil
}

func newView(s *models.EmergencySession, n *models.Notification) *models.SessionView {
	return &models.SessionView{
		EmergencySession: s,
		StepLabel:        s.Step.String(),
		CanContinue:      CanContinue(s),
		Notification:     n,
	}
}
