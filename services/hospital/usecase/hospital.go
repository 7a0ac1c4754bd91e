package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/piresc/quickconnect/internal/pkg/logger"
	"github.com/piresc/quickconnect/internal/pkg/metrics"
	"github.com/piresc/quickconnect/internal/pkg/models"
	nrpkg "github.com/piresc/quickconnect/internal/pkg/newrelic"
	"github.com/piresc/quickconnect/internal/utils"
	"github.com/piresc/quickconnect/services/hospital"
)

// HospitalUC implements hospital.HospitalUC
type HospitalUC struct {
	repo       hospital.HospitalRepo
	fetchDelay time.Duration
	metrics    *metrics.Metrics
}

// NewHospitalUC creates a new hospital use case
func NewHospitalUC(repo hospital.HospitalRepo, cfg *models.Config, m *metrics.Metrics) *HospitalUC {
	return &HospitalUC{
		repo:       repo,
		fetchDelay: cfg.Hospital.FetchDelay,
		metrics:    m,
	}
}

// Rank returns a copy of catalog sorted ascending by distance from lat/lng.
// For the sentinel (0,0) the catalogue's static distances are kept; otherwise
// each distance is the haversine distance rounded to 0.1 km. Ties keep
// catalogue order.
func Rank(catalog []models.Hospital, lat, lng float64) ([]models.Hospital, string) {
	ranked := make([]models.Hospital, len(catalog))
	copy(ranked, catalog)

	mode := hospital.RankingStatic
	if !models.IsSentinel(lat, lng) {
		mode = hospital.RankingComputed
		origin := utils.GeoPoint{Latitude: lat, Longitude: lng}
		for i := range ranked {
			d := utils.CalculateDistance(origin, utils.GeoPoint{
				Latitude:  ranked[i].Coordinates.Lat,
				Longitude: ranked[i].Coordinates.Lng,
			})
			ranked[i].Distance = utils.RoundDistance(d)
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Distance < ranked[j].Distance
	})
	return ranked, mode
}

// RankHospitals ranks the catalogue around lat/lng without delay
func (uc *HospitalUC) RankHospitals(ctx context.Context, lat, lng float64) ([]models.Hospital, error) {
	catalog, err := uc.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list hospitals: %w", err)
	}

	ranked, mode := Rank(catalog, lat, lng)
	uc.metrics.HospitalsRanked(mode)
	return ranked, nil
}

// FetchNearbyHospitals ranks the catalogue after the configured lookup latency
func (uc *HospitalUC) FetchNearbyHospitals(ctx context.Context, lat, lng float64) ([]models.Hospital, error) {
	var ranked []models.Hospital
	err := nrpkg.WithSegment(ctx, "hospital.FetchNearby", func() error {
		if err := utils.Sleep(ctx, uc.fetchDelay); err != nil {
			return err
		}
		var err error
		ranked, err = uc.RankHospitals(ctx, lat, lng)
		return err
	})
	if err != nil {
		return nil, err
	}

	logger.Debug("Ranked nearby hospitals",
		logger.Float64("latitude", lat),
		logger.Float64("longitude", lng),
		logger.Int("count", len(ranked)))
	return ranked, nil
}

// GetHospital returns one hospital from the catalogue
func (uc *HospitalUC) GetHospital(ctx context.Context, id string) (*models.Hospital, error) {
	return uc.repo.Get(ctx, id)
}
