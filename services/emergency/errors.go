package emergency

import (
	"errors"
	"fmt"

	"github.com/piresc/quickconnect/internal/pkg/models"
)

var (
	ErrSessionNotFound   = errors.New("session not found")
	ErrTypeRequired      = errors.New("emergency type required")
	ErrHospitalRequired  = errors.New("hospital selection required")
	ErrWrongStep         = errors.New("operation not allowed on this step")
	ErrFirstStep         = errors.New("already on the first step")
	ErrNoNextStep        = errors.New("no step after send")
	ErrInvalidType       = errors.New("invalid emergency type")
	ErrHospitalNotInList = errors.New("hospital is not in the nearby list")
	ErrInvalidLocation   = errors.New("invalid location")
	ErrBlankAddress      = errors.New("manual address is required")
	ErrGeolocation       = errors.New("geolocation failed")
	ErrIncomplete        = errors.New("emergency information incomplete")
	ErrAlreadySubmitted  = errors.New("emergency alert already sent")
	ErrHospitalFetch     = errors.New("failed to fetch nearby hospitals")
)

// GeolocationError carries the code a client reported when locating the user
type GeolocationError struct {
	Code int
}

func (e *GeolocationError) Error() string {
	return fmt.Sprintf("geolocation error %d: %s", e.Code, GeolocationMessage(e.Code))
}

// Is lets errors.Is(err, ErrGeolocation) match any code
func (e *GeolocationError) Is(target error) bool {
	return target == ErrGeolocation
}

// GeolocationMessage maps a geolocation error code to the text shown to the user
func GeolocationMessage(code int) string {
	switch code {
	case models.GeolocationUnsupported:
		return "Geolocation is not supported by your browser."
	case models.GeolocationPermissionDenied:
		return "Location permission denied. Please enable location services."
	case models.GeolocationPositionUnavailable:
		return "Location information is unavailable."
	case models.GeolocationTimeout:
		return "Request to get location timed out."
	default:
		return "Unknown error occurred while detecting location."
	}
}

// NotificationFor returns the notification describing err to the user
func NotificationFor(err error) *models.Notification {
	var geoErr *GeolocationError
	switch {
	case errors.As(err, &geoErr):
		return models.NewAlert("Error", GeolocationMessage(geoErr.Code))
	case errors.Is(err, ErrTypeRequired):
		return models.NewAlert("Selection Required", "Please select an emergency type to continue.")
	case errors.Is(err, ErrHospitalRequired):
		return models.NewAlert("Selection Required", "Please select a hospital to continue.")
	case errors.Is(err, ErrSessionNotFound):
		return models.NewAlert("Error", "No emergency information found.")
	case errors.Is(err, ErrAlreadySubmitted):
		return models.NewAlert("Error", "Emergency alert already sent.")
	case errors.Is(err, ErrHospitalFetch):
		return models.NewAlert("Error", "Failed to fetch nearby hospitals. Please try again.")
	case errors.Is(err, ErrFirstStep):
		return models.NewAlert("Error", "You are already on the first step.")
	case errors.Is(err, ErrNoNextStep):
		return models.NewAlert("Error", "Send your emergency alert to finish.")
	case errors.Is(err, ErrWrongStep):
		return models.NewAlert("Error", "This action is not available on the current step.")
	case errors.Is(err, ErrInvalidType):
		return models.NewAlert("Error", "Please choose Accident, Pregnancy or Other Emergency.")
	case errors.Is(err, ErrHospitalNotInList):
		return models.NewAlert("Error", "Please select one of the nearby hospitals.")
	case errors.Is(err, ErrBlankAddress):
		return models.NewAlert("Error", "Please enter your address.")
	case errors.Is(err, ErrInvalidLocation):
		return models.NewAlert("Error", "The location provided is not valid.")
	case errors.Is(err, ErrIncomplete):
		return models.NewAlert("Error", "Emergency type, location and hospital are required.")
	default:
		return models.NewAlert("Error", "Something went wrong. Please try again.")
	}
}
