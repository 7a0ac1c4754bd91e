package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// sphericalLawOfCosines is an independent great-circle formula used to
// cross-check the haversine implementation
func sphericalLawOfCosines(p1, p2 GeoPoint) float64 {
	rad := math.Pi / 180
	v := math.Sin(p1.Latitude*rad)*math.Sin(p2.Latitude*rad) +
		math.Cos(p1.Latitude*rad)*math.Cos(p2.Latitude*rad)*math.Cos((p2.Longitude-p1.Longitude)*rad)
	return 6371 * math.Acos(math.Min(1, math.Max(-1, v)))
}

func TestCalculateDistance(t *testing.T) {
	tests := []struct {
		name      string
		point1    GeoPoint
		point2    GeoPoint
		expected  float64
		tolerance float64
	}{
		{
			name:      "Same point",
			point1:    GeoPoint{Latitude: 37.7749, Longitude: -122.4194},
			point2:    GeoPoint{Latitude: 37.7749, Longitude: -122.4194},
			expected:  0,
			tolerance: 0.0001,
		},
		{
			name:      "San Francisco to Oakland",
			point1:    GeoPoint{Latitude: 37.7749, Longitude: -122.4194},
			point2:    GeoPoint{Latitude: 37.8044, Longitude: -122.2711},
			expected:  13.4,
			tolerance: 0.2,
		},
		{
			name:      "One degree of longitude at the equator",
			point1:    GeoPoint{Latitude: 0, Longitude: 0},
			point2:    GeoPoint{Latitude: 0, Longitude: 1},
			expected:  111.19,
			tolerance: 0.01,
		},
		{
			name:      "Antipodal points",
			point1:    GeoPoint{Latitude: 0, Longitude: 0},
			point2:    GeoPoint{Latitude: 0, Longitude: 180},
			expected:  math.Pi * 6371,
			tolerance: 0.01,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateDistance(tt.point1, tt.point2)
			assert.InDelta(t, tt.expected, got, tt.tolerance)
		})
	}
}

func TestCalculateDistance_Symmetric(t *testing.T) {
	a := GeoPoint{Latitude: 37.7694, Longitude: -122.4862}
	b := GeoPoint{Latitude: 37.7992, Longitude: -122.3892}

	assert.InDelta(t, CalculateDistance(a, b), CalculateDistance(b, a), 1e-9)
}

func TestCalculateDistance_MatchesReferenceFormula(t *testing.T) {
	points := []GeoPoint{
		{Latitude: 37.7749, Longitude: -122.4194},
		{Latitude: 37.7833, Longitude: -122.4167},
		{Latitude: 37.7694, Longitude: -122.4862},
		{Latitude: 37.7992, Longitude: -122.3892},
		{Latitude: 37.8044, Longitude: -122.2711},
		{Latitude: -33.8688, Longitude: 151.2093},
	}

	origin := GeoPoint{Latitude: 37.76, Longitude: -122.45}
	for _, p := range points {
		assert.InDelta(t, sphericalLawOfCosines(origin, p), CalculateDistance(origin, p), 0.001)
	}
}

func TestRoundDistance(t *testing.T) {
	assert.Equal(t, 1.2, RoundDistance(1.2345))
	assert.Equal(t, 1.3, RoundDistance(1.25))
	assert.Equal(t, 0.0, RoundDistance(0.04))
	assert.Equal(t, 13.4, RoundDistance(13.41))
}

func TestEncodeGeohash(t *testing.T) {
	hash := EncodeGeohash(37.7749, -122.4194, 7)
	assert.Len(t, hash, 7)
	assert.Equal(t, "9q8yy", hash[:5])

	// nearby points share the cell at coarse precision
	assert.Equal(t, EncodeGeohash(37.77490, -122.41940, 6), EncodeGeohash(37.77491, -122.41941, 6))
}
