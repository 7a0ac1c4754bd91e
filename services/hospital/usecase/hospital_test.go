package usecase

import (
	"context"
	"errors"
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/piresc/quickconnect/internal/pkg/models"
	"github.com/piresc/quickconnect/internal/utils"
	"github.com/piresc/quickconnect/services/hospital"
	"github.com/piresc/quickconnect/services/hospital/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() []models.Hospital {
	return []models.Hospital{
		{ID: "h1", Name: "City Emergency Hospital", Distance: 1.2, Coordinates: models.Coordinates{Lat: 37.7749, Lng: -122.4194}},
		{ID: "h2", Name: "General Medical Center", Distance: 2.5, Coordinates: models.Coordinates{Lat: 37.7833, Lng: -122.4167}},
		{ID: "h3", Name: "St. Mary's Hospital", Distance: 3.7, Coordinates: models.Coordinates{Lat: 37.7694, Lng: -122.4862}},
		{ID: "h4", Name: "Memorial Healthcare", Distance: 4.2, Coordinates: models.Coordinates{Lat: 37.7992, Lng: -122.3892}},
		{ID: "h5", Name: "University Medical Hospital", Distance: 5.6, Coordinates: models.Coordinates{Lat: 37.8044, Lng: -122.2711}},
	}
}

func ids(hs []models.Hospital) []string {
	out := make([]string, len(hs))
	for i, h := range hs {
		out[i] = h.ID
	}
	return out
}

// greatCircleKm uses the spherical law of cosines, independent of the haversine code
func greatCircleKm(lat1, lng1, lat2, lng2 float64) float64 {
	rad := math.Pi / 180
	v := math.Sin(lat1*rad)*math.Sin(lat2*rad) + math.Cos(lat1*rad)*math.Cos(lat2*rad)*math.Cos((lng2-lng1)*rad)
	return 6371 * math.Acos(math.Min(1, math.Max(-1, v)))
}

func TestRank_OrdersByComputedDistance(t *testing.T) {
	ranked, mode := Rank(testCatalog(), 37.7700, -122.4800)

	assert.Equal(t, hospital.RankingComputed, mode)
	assert.Equal(t, "h3", ranked[0].ID)
	assert.Equal(t, "h5", ranked[len(ranked)-1].ID)

	for _, h := range ranked {
		expected := greatCircleKm(37.7700, -122.4800, h.Coordinates.Lat, h.Coordinates.Lng)
		assert.InDelta(t, expected, h.Distance, 0.051, h.ID)
		assert.Equal(t, h.Distance, math.Round(h.Distance*10)/10)
	}
}

func TestRank_NonDecreasingForAnyInput(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 200; i++ {
		lat := rng.Float64()*180 - 90
		lng := rng.Float64()*360 - 180

		ranked, _ := Rank(testCatalog(), lat, lng)

		require.Len(t, ranked, 5)
		for j := 1; j < len(ranked); j++ {
			assert.LessOrEqual(t, ranked[j-1].Distance, ranked[j].Distance)
		}
	}
}

func TestRank_SentinelKeepsStaticDistances(t *testing.T) {
	catalog := testCatalog()
	catalog[0].Distance, catalog[4].Distance = 5.6, 1.2

	ranked, mode := Rank(catalog, 0, 0)

	assert.Equal(t, hospital.RankingStatic, mode)
	assert.Equal(t, []string{"h5", "h2", "h3", "h4", "h1"}, ids(ranked))
	assert.Equal(t, 1.2, ranked[0].Distance)
	assert.Equal(t, 5.6, ranked[4].Distance)

	// the haversine itself has no special case for (0,0)
	raw := utils.CalculateDistance(utils.GeoPoint{}, utils.GeoPoint{Latitude: 37.7749, Longitude: -122.4194})
	assert.Greater(t, raw, 10000.0)
}

func TestRank_DoesNotMutateCatalog(t *testing.T) {
	catalog := testCatalog()
	_, _ = Rank(catalog, 37.8044, -122.2711)

	assert.Equal(t, 1.2, catalog[0].Distance)
	assert.Equal(t, "h1", catalog[0].ID)
}

func TestRank_TiesKeepCatalogOrder(t *testing.T) {
	catalog := []models.Hospital{
		{ID: "a", Coordinates: models.Coordinates{Lat: 10, Lng: 10}},
		{ID: "b", Coordinates: models.Coordinates{Lat: 10, Lng: 10}},
		{ID: "c", Coordinates: models.Coordinates{Lat: 10, Lng: 10}},
	}

	ranked, _ := Rank(catalog, 10, 10)

	assert.Equal(t, []string{"a", "b", "c"}, ids(ranked))
	assert.Equal(t, 0.0, ranked[0].Distance)
}

func TestRank_Empty(t *testing.T) {
	ranked, _ := Rank(nil, 1, 1)
	assert.Empty(t, ranked)
}

func TestFetchNearbyHospitals(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockHospitalRepo(ctrl)
	cfg := &models.Config{Hospital: models.HospitalConfig{FetchDelay: 10 * time.Millisecond}}
	uc := NewHospitalUC(mockRepo, cfg, nil)

	mockRepo.EXPECT().List(gomock.Any()).Return(testCatalog(), nil)

	start := time.Now()
	ranked, err := uc.FetchNearbyHospitals(context.Background(), 37.8044, -122.2711)

	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 10*time.Millisecond)
	assert.Equal(t, "h5", ranked[0].ID)
	assert.Equal(t, 0.0, ranked[0].Distance)
}

func TestFetchNearbyHospitals_Cancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockHospitalRepo(ctrl)
	cfg := &models.Config{Hospital: models.HospitalConfig{FetchDelay: time.Minute}}
	uc := NewHospitalUC(mockRepo, cfg, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := uc.FetchNearbyHospitals(ctx, 37.7, -122.4)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRankHospitals_RepoError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockHospitalRepo(ctrl)
	uc := NewHospitalUC(mockRepo, &models.Config{}, nil)

	mockRepo.EXPECT().List(gomock.Any()).Return(nil, errors.New("catalog unavailable"))

	_, err := uc.RankHospitals(context.Background(), 37.7, -122.4)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list hospitals")
}

func TestGetHospital(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockHospitalRepo(ctrl)
	uc := NewHospitalUC(mockRepo, &models.Config{}, nil)

	mockRepo.EXPECT().Get(gomock.Any(), "h2").Return(&testCatalog()[1], nil)
	mockRepo.EXPECT().Get(gomock.Any(), "zz").Return(nil, hospital.ErrHospitalNotFound)

	h, err := uc.GetHospital(context.Background(), "h2")
	require.NoError(t, err)
	assert.Equal(t, "General Medical Center", h.Name)

	_, err = uc.GetHospital(context.Background(), "zz")
	assert.ErrorIs(t, err, hospital.ErrHospitalNotFound)
}
