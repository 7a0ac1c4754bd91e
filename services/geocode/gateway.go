package geocode

import (
	"context"
	"errors"
)

// ErrAddressNotFound is returned when the geocoder answers without an address
var ErrAddressNotFound = errors.New("no address for coordinates")

// AddressUnavailable is shown when a detected location cannot be turned into an address
const AddressUnavailable = "Address unavailable"

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/quickconnect/services/geocode GeocodeGW

// GeocodeGW turns coordinates into a human-readable address
type GeocodeGW interface {
	ReverseGeocode(ctx context.Context, lat, lng float64) (string, error)
}
