package utils

import (
	"math"

	"github.com/mmcloughlin/geohash"
)

const earthRadiusKm = 6371.0

// GeoPoint represents a geographical point with latitude and longitude
type GeoPoint struct {
	Latitude  float64
	Longitude float64
}

// CalculateDistance returns the great-circle distance between two points in
// kilometres using the haversine formula
func CalculateDistance(point1, point2 GeoPoint) float64 {
	lat1 := point1.Latitude * math.Pi / 180.0
	lat2 := point2.Latitude * math.Pi / 180.0
	dLat := lat2 - lat1
	dLon := (point2.Longitude - point1.Longitude) * math.Pi / 180.0

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// RoundDistance rounds kilometres to one decimal place
func RoundDistance(km float64) float64 {
	return math.Round(km*10) / 10
}

// EncodeGeohash converts a coordinate pair to a geohash cell of the given precision
func EncodeGeohash(latitude, longitude float64, precision uint) string {
	return geohash.EncodeWithPrecision(latitude, longitude, precision)
}
