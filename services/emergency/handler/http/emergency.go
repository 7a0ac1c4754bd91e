package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
	ctxpkg "github.com/piresc/quickconnect/internal/pkg/context"
	"github.com/piresc/quickconnect/internal/pkg/logger"
	"github.com/piresc/quickconnect/internal/pkg/models"
	nrpkg "github.com/piresc/quickconnect/internal/pkg/newrelic"
	"github.com/piresc/quickconnect/internal/utils"
	"github.com/piresc/quickconnect/services/emergency"
)

// EmergencyHandler handles HTTP requests for the emergency wizard
type EmergencyHandler struct {
	emergencyUC emergency.EmergencyUC
}

// NewEmergencyHandler creates a new emergency handler
func NewEmergencyHandler(emergencyUC emergency.EmergencyUC) *EmergencyHandler {
	return &EmergencyHandler{emergencyUC: emergencyUC}
}

// StatusFor maps a wizard error to its HTTP status
func StatusFor(err error) int {
	switch {
	case errors.Is(err, emergency.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, emergency.ErrTypeRequired),
		errors.Is(err, emergency.ErrHospitalRequired),
		errors.Is(err, emergency.ErrGeolocation),
		errors.Is(err, emergency.ErrIncomplete):
		return http.StatusUnprocessableEntity
	case errors.Is(err, emergency.ErrWrongStep),
		errors.Is(err, emergency.ErrFirstStep),
		errors.Is(err, emergency.ErrNoNextStep),
		errors.Is(err, emergency.ErrAlreadySubmitted):
		return http.StatusConflict
	case errors.Is(err, emergency.ErrInvalidType),
		errors.Is(err, emergency.ErrHospitalNotInList),
		errors.Is(err, emergency.ErrInvalidLocation),
		errors.Is(err, emergency.ErrBlankAddress):
		return http.StatusBadRequest
	case errors.Is(err, emergency.ErrHospitalFetch):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func (h *EmergencyHandler) fail(c echo.Context, txn *newrelic.Transaction, op string, err error) error {
	status := StatusFor(err)
	nrpkg.AddTransactionAttribute(txn, "session_id", c.Param("id"))
	fields := []logger.Field{
		logger.String("operation", op),
		logger.String("session_id", c.Param("id")),
		logger.String("http_request_id", ctxpkg.GetRequestID(c.Request().Context())),
	}
	if status >= http.StatusInternalServerError {
		nrpkg.NoticeTransactionError(txn, err)
		logger.Error("Emergency operation failed", append(fields, logger.Err(err))...)
	} else {
		logger.Debug("Emergency operation rejected", append(fields, logger.String("reason", err.Error()))...)
	}
	return utils.NotificationErrorResponse(c, status, err.Error(), emergency.NotificationFor(err))
}

func (h *EmergencyHandler) respond(c echo.Context, status int, message string, view *models.SessionView) error {
	if view.Notification != nil {
		return utils.NotifyResponse(c, status, message, view, view.Notification)
	}
	return utils.SuccessResponse(c, status, message, view)
}

// ListTypes handles GET /emergency-types
func (h *EmergencyHandler) ListTypes(c echo.Context) error {
	nrpkg.SetTransactionName(nrpkg.FromEchoContext(c), "Emergency.ListTypes")
	return utils.SuccessResponse(c, http.StatusOK, "Emergency types retrieved successfully", models.EmergencyOptions)
}

// CreateSession handles POST /sessions
func (h *EmergencyHandler) CreateSession(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Emergency.CreateSession")

	view, err := h.emergencyUC.CreateSession(c.Request().Context())
	if err != nil {
		return h.fail(c, txn, "create_session", err)
	}
	return h.respond(c, http.StatusCreated, "Session created successfully", view)
}

// GetSession handles GET /sessions/:id
func (h *EmergencyHandler) GetSession(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Emergency.GetSession")

	view, err := h.emergencyUC.GetSession(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.fail(c, txn, "get_session", err)
	}
	return h.respond(c, http.StatusOK, "Session retrieved successfully", view)
}

// SelectType handles PUT /sessions/:id/type
func (h *EmergencyHandler) SelectType(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Emergency.SelectType")

	var req models.SelectTypeRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	view, err := h.emergencyUC.SelectType(c.Request().Context(), c.Param("id"), req.Type)
	if err != nil {
		return h.fail(c, txn, "select_type", err)
	}
	return h.respond(c, http.StatusOK, "Emergency type selected", view)
}

// SetLocation handles PUT /sessions/:id/location
func (h *EmergencyHandler) SetLocation(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Emergency.SetLocation")

	var input models.LocationInput
	if err := c.Bind(&input); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	view, err := h.emergencyUC.SetLocation(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		return h.fail(c, txn, "set_location", err)
	}
	return h.respond(c, http.StatusOK, "Location set successfully", view)
}

// ClearLocation handles DELETE /sessions/:id/location
func (h *EmergencyHandler) ClearLocation(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Emergency.ClearLocation")

	view, err := h.emergencyUC.ClearLocation(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.fail(c, txn, "clear_location", err)
	}
	return h.respond(c, http.StatusOK, "Location cleared", view)
}

// SelectHospital handles PUT /sessions/:id/hospital
func (h *EmergencyHandler) SelectHospital(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Emergency.SelectHospital")

	var req models.SelectHospitalRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	view, err := h.emergencyUC.SelectHospital(c.Request().Context(), c.Param("id"), req.HospitalID)
	if err != nil {
		return h.fail(c, txn, "select_hospital", err)
	}
	return h.respond(c, http.StatusOK, "Hospital selected", view)
}

// Continue handles POST /sessions/:id/continue
func (h *EmergencyHandler) Continue(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Emergency.Continue")

	view, err := h.emergencyUC.Continue(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.fail(c, txn, "continue", err)
	}
	return h.respond(c, http.StatusOK, "Moved to the next step", view)
}

// Back handles POST /sessions/:id/back
func (h *EmergencyHandler) Back(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Emergency.Back")

	view, err := h.emergencyUC.Back(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.fail(c, txn, "back", err)
	}
	return h.respond(c, http.StatusOK, "Moved to the previous step", view)
}

// Submit handles POST /sessions/:id/submit
func (h *EmergencyHandler) Submit(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Emergency.Submit")

	var req models.SubmitRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	view, err := h.emergencyUC.Submit(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return h.fail(c, txn, "submit", err)
	}
	return h.respond(c, http.StatusOK, "Emergency alert sent successfully", view)
}
