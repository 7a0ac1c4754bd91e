package models

// Coordinates is a latitude/longitude pair in degrees
type Coordinates struct {
	Lat float64 `json:"lat" yaml:"lat"`
	Lng float64 `json:"lng" yaml:"lng"`
}

// UserLocation is where the person asking for help is.
// Manually entered addresses carry the sentinel coordinates (0,0).
type UserLocation struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address,omitempty"`
}

// HasCoordinates reports whether the location carries real coordinates
// rather than the (0,0) sentinel used for manual addresses
func (l UserLocation) HasCoordinates() bool {
	return !IsSentinel(l.Latitude, l.Longitude)
}

// IsSentinel reports whether lat/lng is the "no coordinates" marker
func IsSentinel(lat, lng float64) bool {
	return lat == 0 && lng == 0
}

// Location sources accepted when setting a session location
const (
	LocationSourceDevice = "device"
	LocationSourceManual = "manual"
)

// LocationInput is what a client reports after trying to locate the user.
// A device report carries either coordinates or a geolocation error code.
type LocationInput struct {
	Source    string   `json:"source"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	Address   string   `json:"address,omitempty"`
	ErrorCode *int     `json:"error_code,omitempty"`
}

// Geolocation error codes as reported by the browser geolocation API.
// Zero is used for "geolocation not supported".
const (
	GeolocationUnsupported         = 0
	GeolocationPermissionDenied    = 1
	GeolocationPositionUnavailable = 2
	GeolocationTimeout             = 3
)

// ValidCoordinates reports whether lat/lng are finite and within range
func ValidCoordinates(lat, lng float64) bool {
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}
