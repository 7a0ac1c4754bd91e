package hospital

import (
	"context"

	"github.com/piresc/quickconnect/internal/pkg/models"
)

// Ranking modes reported with every ranking
const (
	RankingComputed = "computed"
	RankingStatic   = "static"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/quickconnect/services/hospital HospitalUC

// HospitalUC ranks hospitals around a location
type HospitalUC interface {
	RankHospitals(ctx context.Context, lat, lng float64) ([]models.Hospital, error)
	FetchNearbyHospitals(ctx context.Context, lat, lng float64) ([]models.Hospital, error)
	GetHospital(ctx context.Context, id string) (*models.Hospital, error)
}
