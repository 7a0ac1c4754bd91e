package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/quickconnect/services/emergency/handler/http"
)

// Handler coordinates the emergency wizard HTTP handlers
type Handler struct {
	emergencyHandler *http.EmergencyHandler
}

// NewHandler creates the emergency handler set
func NewHandler(emergencyHandler *http.EmergencyHandler) *Handler {
	return &Handler{emergencyHandler: emergencyHandler}
}

// RegisterRoutes registers wizard routes on the API group. limit guards the
// routes that create sessions or send alerts.
func (h *Handler) RegisterRoutes(api *echo.Group, limit echo.MiddlewareFunc) {
	var guarded []echo.MiddlewareFunc
	if limit != nil {
		guarded = append(guarded, limit)
	}

	api.GET("/emergency-types", h.emergencyHandler.ListTypes)

	sessions := api.Group("/sessions")
	sessions.POST("", h.emergencyHandler.CreateSession, guarded...)
	sessions.GET("/:id", h.emergencyHandler.GetSession)
	sessions.PUT("/:id/type", h.emergencyHandler.SelectType)
	sessions.PUT("/:id/location", h.emergencyHandler.SetLocation)
	sessions.DELETE("/:id/location", h.emergencyHandler.ClearLocation)
	sessions.PUT("/:id/hospital", h.emergencyHandler.SelectHospital)
	sessions.POST("/:id/continue", h.emergencyHandler.Continue)
	sessions.POST("/:id/back", h.emergencyHandler.Back)
	sessions.POST("/:id/submit", h.emergencyHandler.Submit, guarded...)
}
