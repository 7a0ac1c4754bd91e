package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	ctxpkg "github.com/piresc/quickconnect/internal/pkg/context"
	"github.com/piresc/quickconnect/internal/pkg/logger"
	"github.com/piresc/quickconnect/internal/pkg/metrics"
	"github.com/piresc/quickconnect/internal/pkg/models"
	nrpkg "github.com/piresc/quickconnect/internal/pkg/newrelic"
	"github.com/piresc/quickconnect/internal/utils"
	"github.com/piresc/quickconnect/services/emergency"
	"github.com/piresc/quickconnect/services/geocode"
	"github.com/piresc/quickconnect/services/hospital"
)

// EmergencyUC implements emergency.EmergencyUC
type EmergencyUC struct {
	repo        emergency.EmergencyRepo
	gateway     emergency.EmergencyGW
	hospitalUC  hospital.HospitalUC
	geocoder    geocode.GeocodeGW
	chat        emergency.ChatStarter
	metrics     *metrics.Metrics
	submitDelay time.Duration

	// operations on one session are serialised
	locks *sessionLocks
}

// NewEmergencyUC creates a new emergency use case
func NewEmergencyUC(
	cfg *models.Config,
	repo emergency.EmergencyRepo,
	gateway emergency.EmergencyGW,
	hospitalUC hospital.HospitalUC,
	geocoder geocode.GeocodeGW,
	chat emergency.ChatStarter,
	m *metrics.Metrics,
) *EmergencyUC {
	return &EmergencyUC{
		repo:        repo,
		gateway:     gateway,
		hospitalUC:  hospitalUC,
		geocoder:    geocoder,
		chat:        chat,
		metrics:     m,
		submitDelay: cfg.Emergency.SubmitDelay,
		locks:       newSessionLocks(),
	}
}

func (uc *EmergencyUC) lock(id string) func() {
	return uc.locks.lock(id)
}

// update loads the session, applies fn and saves the result when fn succeeds
func (uc *EmergencyUC) update(ctx context.Context, id string, fn func(s *models.EmergencySession) (*models.Notification, error)) (*models.SessionView, error) {
	unlock := uc.lock(id)
	defer unlock()

	session, err := uc.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	n, err := fn(session)
	if err != nil {
		return nil, err
	}

	session.UpdatedAt = models.Now()
	if err := uc.repo.Save(ctx, session); err != nil {
		return nil, err
	}
	return newView(session, n), nil
}

// CreateSession starts a wizard on the first step
func (uc *EmergencyUC) CreateSession(ctx context.Context) (*models.SessionView, error) {
	now := models.Now()
	session := &models.EmergencySession{
		ID:        uuid.New().String(),
		Step:      models.StepSelectType,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uc.repo.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	logger.Info("Emergency session created", logger.String("session_id", session.ID))
	return newView(session, nil), nil
}

// GetSession returns the current state of a session
func (uc *EmergencyUC) GetSession(ctx context.Context, id string) (*models.SessionView, error) {
	session, err := uc.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return newView(session, nil), nil
}

// SelectType records the emergency type. Selecting again replaces it.
func (uc *EmergencyUC) SelectType(ctx context.Context, id string, emergencyType string) (*models.SessionView, error) {
	t, ok := models.ParseEmergencyType(emergencyType)
	if !ok {
		return nil, emergency.ErrInvalidType
	}

	return uc.update(ctx, id, func(s *models.EmergencySession) (*models.Notification, error) {
		if err := requireStep(s, models.StepSelectType); err != nil {
			return nil, err
		}
		s.Type = t
		return nil, nil
	})
}

// SetLocation resolves the reported location and ranks hospitals around it.
// Any previous hospital list and selection are discarded.
func (uc *EmergencyUC) SetLocation(ctx context.Context, id string, input models.LocationInput) (*models.SessionView, error) {
	unlock := uc.lock(id)
	defer unlock()

	session, err := uc.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := requireStep(session, models.StepSelectHospital); err != nil {
		return nil, err
	}

	location, err := uc.resolveLocation(ctx, input)
	if err != nil {
		return nil, err
	}

	session.Location = location
	session.Hospitals = nil
	session.SelectedHospital = nil
	session.UpdatedAt = models.Now()

	hospitals, fetchErr := uc.hospitalUC.FetchNearbyHospitals(ctx, location.Latitude, location.Longitude)
	if fetchErr != nil {
		logger.Error("Failed to fetch nearby hospitals",
			logger.String("session_id", id),
			logger.Err(fetchErr))
	} else {
		session.Hospitals = hospitals
	}

	if err := uc.repo.Save(ctx, session); err != nil {
		return nil, err
	}
	if fetchErr != nil {
		return nil, fmt.Errorf("%w: %v", emergency.ErrHospitalFetch, fetchErr)
	}
	return newView(session, models.NewInfo("Location detected", "Your location has been successfully detected.")), nil
}

func (uc *EmergencyUC) resolveLocation(ctx context.Context, input models.LocationInput) (*models.UserLocation, error) {
	switch input.Source {
	case models.LocationSourceDevice:
		if input.ErrorCode != nil {
			return nil, &emergency.GeolocationError{Code: *input.ErrorCode}
		}
		if input.Latitude == nil || input.Longitude == nil ||
			!models.ValidCoordinates(*input.Latitude, *input.Longitude) {
			return nil, emergency.ErrInvalidLocation
		}

		lat, lng := *input.Latitude, *input.Longitude
		return &models.UserLocation{
			Latitude:  lat,
			Longitude: lng,
			Address:   uc.reverseGeocode(ctx, lat, lng),
		}, nil

	case models.LocationSourceManual:
		address := strings.TrimSpace(input.Address)
		if address == "" {
			return nil, emergency.ErrBlankAddress
		}
		return &models.UserLocation{Address: address}, nil

	default:
		return nil, emergency.ErrInvalidLocation
	}
}

func (uc *EmergencyUC) reverseGeocode(ctx context.Context, lat, lng float64) string {
	if uc.geocoder == nil {
		return geocode.AddressUnavailable
	}

	address, err := uc.geocoder.ReverseGeocode(ctx, lat, lng)
	if err != nil {
		logger.Warn("Reverse geocoding failed",
			logger.Float64("latitude", lat),
			logger.Float64("longitude", lng),
			logger.Err(err))
		return geocode.AddressUnavailable
	}
	return address
}

// ClearLocation drops the location together with the hospitals ranked for it
func (uc *EmergencyUC) ClearLocation(ctx context.Context, id string) (*models.SessionView, error) {
	return uc.update(ctx, id, func(s *models.EmergencySession) (*models.Notification, error) {
		if err := requireStep(s, models.StepSelectHospital); err != nil {
			return nil, err
		}
		s.Location = nil
		s.Hospitals = nil
		s.SelectedHospital = nil
		return nil, nil
	})
}

// SelectHospital picks one of the ranked hospitals
func (uc *EmergencyUC) SelectHospital(ctx context.Context, id string, hospitalID string) (*models.SessionView, error) {
	return uc.update(ctx, id, func(s *models.EmergencySession) (*models.Notification, error) {
		if err := requireStep(s, models.StepSelectHospital); err != nil {
			return nil, err
		}
		for i := range s.Hospitals {
			if s.Hospitals[i].ID == hospitalID {
				selected := s.Hospitals[i]
				s.SelectedHospital = &selected
				return nil, nil
			}
		}
		return nil, emergency.ErrHospitalNotInList
	})
}

// Continue moves to the next step when the current step is complete
func (uc *EmergencyUC) Continue(ctx context.Context, id string) (*models.SessionView, error) {
	return uc.update(ctx, id, func(s *models.EmergencySession) (*models.Notification, error) {
		return nil, advance(s)
	})
}

// Back moves to the previous step
func (uc *EmergencyUC) Back(ctx context.Context, id string) (*models.SessionView, error) {
	return uc.update(ctx, id, func(s *models.EmergencySession) (*models.Notification, error) {
		return nil, retreat(s)
	})
}

// Submit sends the alert to the selected hospital and opens the chat with it.
// A session can be submitted once.
func (uc *EmergencyUC) Submit(ctx context.Context, id string, req models.SubmitRequest) (*models.SessionView, error) {
	ctx = ctxpkg.WithSessionID(ctx, id)
	return uc.update(ctx, id, func(s *models.EmergencySession) (*models.Notification, error) {
		if err := requireStep(s, models.StepSubmit); err != nil {
			return nil, err
		}
		if s.Request != nil {
			return nil, emergency.ErrAlreadySubmitted
		}
		if s.Type == "" || s.Location == nil || s.SelectedHospital == nil {
			return nil, emergency.ErrIncomplete
		}

		request := buildRequest(s, req)

		err := nrpkg.WithSegment(ctx, "emergency.Submit", func() error {
			return utils.Sleep(ctx, uc.submitDelay)
		})
		if err != nil {
			return nil, err
		}

		if err := uc.gateway.PublishAlert(ctx, request); err != nil {
			logger.Error("Failed to publish emergency alert",
				logger.String("session_id", s.ID),
				logger.String("request_id", request.ID),
				logger.Err(err))
		}

		conversation, err := uc.chat.Open(ctx, *request)
		if err != nil {
			return nil, fmt.Errorf("failed to open chat: %w", err)
		}

		s.Request = request
		s.ChatID = conversation.ID
		uc.metrics.AlertSubmitted(string(request.Type))

		logger.Info("Emergency alert sent",
			logger.String("session_id", s.ID),
			logger.String("http_request_id", ctxpkg.GetRequestID(ctx)),
			logger.String("request_id", request.ID),
			logger.String("type", string(request.Type)),
			logger.String("hospital_id", request.SelectedHospital.ID),
			logger.String("chat_id", conversation.ID))
		return nil, nil
	})
}

func buildRequest(s *models.EmergencySession, req models.SubmitRequest) *models.EmergencyRequest {
	location := *s.Location
	if manual := strings.TrimSpace(req.ManualAddress); manual != "" {
		location.Address = manual
	}

	return &models.EmergencyRequest{
		ID:               uuid.New().String(),
		Type:             s.Type,
		Description:      strings.TrimSpace(req.Description),
		UserLocation:     location,
		SelectedHospital: *s.SelectedHospital,
		Timestamp:        models.Now(),
	}
}
