package emergency

import (
	"context"

	"github.com/piresc/quickconnect/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/quickconnect/services/emergency EmergencyGW,ChatStarter

// EmergencyGW delivers submitted alerts to the hospitals
type EmergencyGW interface {
	PublishAlert(ctx context.Context, request *models.EmergencyRequest) error
}

// ChatStarter opens the hospital conversation once an alert is sent
type ChatStarter interface {
	Open(ctx context.Context, request models.EmergencyRequest) (*models.Conversation, error)
}
