package hospital

import (
	"context"

	"github.com/piresc/quickconnect/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/quickconnect/services/hospital HospitalRepo

// HospitalRepo gives read access to the hospital catalogue
type HospitalRepo interface {
	List(ctx context.Context) ([]models.Hospital, error)
	Get(ctx context.Context, id string) (*models.Hospital, error)
}
