package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/piresc/quickconnect/internal/pkg/logger"
	"github.com/piresc/quickconnect/internal/pkg/models"
	nrpkg "github.com/piresc/quickconnect/internal/pkg/newrelic"
	"github.com/piresc/quickconnect/internal/utils"
	"github.com/piresc/quickconnect/services/hospital"
)

// HospitalHandler handles HTTP requests for hospital lookups
type HospitalHandler struct {
	hospitalUC hospital.HospitalUC
}

// NewHospitalHandler creates a new hospital handler
func NewHospitalHandler(hospitalUC hospital.HospitalUC) *HospitalHandler {
	return &HospitalHandler{hospitalUC: hospitalUC}
}

// Nearby handles GET /hospitals/nearby?lat=&lng=
func (h *HospitalHandler) Nearby(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Hospital.Nearby")

	lat, errLat := strconv.ParseFloat(c.QueryParam("lat"), 64)
	lng, errLng := strconv.ParseFloat(c.QueryParam("lng"), 64)
	if errLat != nil || errLng != nil || !models.ValidCoordinates(lat, lng) {
		return utils.BadRequestResponse(c, "lat and lng must be valid coordinates")
	}

	hospitals, err := h.hospitalUC.FetchNearbyHospitals(c.Request().Context(), lat, lng)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		logger.Error("Failed to fetch nearby hospitals",
			logger.Err(err),
			logger.Float64("latitude", lat),
			logger.Float64("longitude", lng))
		return utils.NotificationErrorResponse(c, http.StatusBadGateway, "failed to fetch nearby hospitals",
			models.NewAlert("Error", "Failed to fetch nearby hospitals. Please try again."))
	}

	return utils.SuccessResponse(c, http.StatusOK, "Nearby hospitals retrieved successfully", hospitals)
}

// GetHospital handles GET /hospitals/:id
func (h *HospitalHandler) GetHospital(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Hospital.GetHospital")

	found, err := h.hospitalUC.GetHospital(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, hospital.ErrHospitalNotFound) {
			return utils.NotFoundResponse(c, "Hospital not found")
		}
		nrpkg.NoticeTransactionError(txn, err)
		return utils.InternalServerErrorResponse(c, "Failed to retrieve hospital")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Hospital retrieved successfully", found)
}
