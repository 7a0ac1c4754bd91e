package emergency

import (
	"context"

	"github.com/piresc/quickconnect/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/quickconnect/services/emergency EmergencyRepo

// EmergencyRepo stores wizard sessions for a bounded time
type EmergencyRepo interface {
	Save(ctx context.Context, session *models.EmergencySession) error
	Get(ctx context.Context, id string) (*models.EmergencySession, error)
	Delete(ctx context.Context, id string) error
}
