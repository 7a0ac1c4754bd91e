package gateway

import (
	"context"
	"fmt"

	"github.com/piresc/quickconnect/internal/pkg/constants"
	ctxpkg "github.com/piresc/quickconnect/internal/pkg/context"
	"github.com/piresc/quickconnect/internal/pkg/logger"
	"github.com/piresc/quickconnect/internal/pkg/models"
	"github.com/piresc/quickconnect/services/emergency"
)

// Publisher is the part of the NATS client the gateway needs
type Publisher interface {
	PublishJSON(subject string, message interface{}) error
}

type alertGW struct {
	publisher Publisher
}

// NewAlertGW creates the alert gateway. With a nil publisher alerts are only
// logged.
func NewAlertGW(publisher Publisher) emergency.EmergencyGW {
	return &alertGW{publisher: publisher}
}

// PublishAlert sends the submitted request on the emergency alert subject
func (g *alertGW) PublishAlert(ctx context.Context, request *models.EmergencyRequest) error {
	fields := []logger.Field{
		logger.String("session_id", ctxpkg.GetSessionID(ctx)),
		logger.String("request_id", request.ID),
		logger.String("type", string(request.Type)),
		logger.String("hospital_id", request.SelectedHospital.ID),
	}

	if g.publisher == nil {
		logger.Info("Emergency alert recorded without broker", fields...)
		return nil
	}

	if err := g.publisher.PublishJSON(constants.SubjectEmergencyAlert, request); err != nil {
		return fmt.Errorf("failed to publish emergency alert: %w", err)
	}

	logger.Info("Emergency alert published", fields...)
	return nil
}
