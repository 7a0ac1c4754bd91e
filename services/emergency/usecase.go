package emergency

import (
	"context"

	"github.com/piresc/quickconnect/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/quickconnect/services/emergency EmergencyUC

// EmergencyUC drives the three-step emergency wizard
type EmergencyUC interface {
	CreateSession(ctx context.Context) (*models.SessionView, error)
	GetSession(ctx context.Context, id string) (*models.SessionView, error)

	// step 1
	SelectType(ctx context.Context, id string, emergencyType string) (*models.SessionView, error)

	// step 2
	SetLocation(ctx context.Context, id string, input models.LocationInput) (*models.SessionView, error)
	ClearLocation(ctx context.Context, id string) (*models.SessionView, error)
	SelectHospital(ctx context.Context, id string, hospitalID string) (*models.SessionView, error)

	// navigation
	Continue(ctx context.Context, id string) (*models.SessionView, error)
	Back(ctx context.Context, id string) (*models.SessionView, error)

	// step 3
	Submit(ctx context.Context, id string, req models.SubmitRequest) (*models.SessionView, error)
}
