package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/quickconnect/services/hospital/handler/http"
)

// Handler coordinates the hospital HTTP handlers
type Handler struct {
	hospitalHandler *http.HospitalHandler
}

// NewHandler creates the hospital handler set
func NewHandler(hospitalHandler *http.HospitalHandler) *Handler {
	return &Handler{hospitalHandler: hospitalHandler}
}

// RegisterRoutes registers hospital routes on the API group
func (h *Handler) RegisterRoutes(api *echo.Group) {
	g := api.Group("/hospitals")
	g.GET("/nearby", h.hospitalHandler.Nearby)
	g.GET("/:id", h.hospitalHandler.GetHospital)
}
