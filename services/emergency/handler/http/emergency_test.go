package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/piresc/quickconnect/internal/pkg/models"
	"github.com/piresc/quickconnect/services/emergency"
	"github.com/piresc/quickconnect/services/emergency/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type apiResponse struct {
	Success      bool                 `json:"success"`
	Error        string               `json:"error"`
	Code         int                  `json:"code"`
	Data         json.RawMessage      `json:"data"`
	Notification *models.Notification `json:"notification"`
}

func newRouter(uc emergency.EmergencyUC) *echo.Echo {
	e := echo.New()
	h := NewEmergencyHandler(uc)
	e.GET("/emergency-types", h.ListTypes)
	e.POST("/sessions", h.CreateSession)
	e.GET("/sessions/:id", h.GetSession)
	e.PUT("/sessions/:id/type", h.SelectType)
	e.PUT("/sessions/:id/location", h.SetLocation)
	e.DELETE("/sessions/:id/location", h.ClearLocation)
	e.PUT("/sessions/:id/hospital", h.SelectHospital)
	e.POST("/sessions/:id/continue", h.Continue)
	e.POST("/sessions/:id/back", h.Back)
	e.POST("/sessions/:id/submit", h.Submit)
	return e
}

func do(t *testing.T, e *echo.Echo, method, path, body string) (*httptest.ResponseRecorder, apiResponse) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var resp apiResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return rec, resp
}

func view(step models.WizardStep) *models.SessionView {
	return &models.SessionView{
		EmergencySession: &models.EmergencySession{ID: "s-1", Step: step},
		StepLabel:        step.String(),
	}
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{err: emergency.ErrSessionNotFound, status: http.StatusNotFound},
		{err: emergency.ErrTypeRequired, status: http.StatusUnprocessableEntity},
		{err: emergency.ErrHospitalRequired, status: http.StatusUnprocessableEntity},
		{err: &emergency.GeolocationError{Code: 2}, status: http.StatusUnprocessableEntity},
		{err: emergency.ErrWrongStep, status: http.StatusConflict},
		{err: emergency.ErrFirstStep, status: http.StatusConflict},
		{err: emergency.ErrNoNextStep, status: http.StatusConflict},
		{err: emergency.ErrAlreadySubmitted, status: http.StatusConflict},
		{err: emergency.ErrInvalidType, status: http.StatusBadRequest},
		{err: emergency.ErrBlankAddress, status: http.StatusBadRequest},
		{err: fmt.Errorf("%w: timeout", emergency.ErrHospitalFetch), status: http.StatusBadGateway},
		{err: errors.New("redis down"), status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.status, StatusFor(tt.err))
		})
	}
}

func TestEmergencyHandler_ListTypes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rec, resp := do(t, newRouter(mocks.NewMockEmergencyUC(ctrl)), http.MethodGet, "/emergency-types", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	var options []models.EmergencyOption
	require.NoError(t, json.Unmarshal(resp.Data, &options))
	require.Len(t, options, 3)
	assert.Equal(t, models.EmergencyTypeAccident, options[0].Type)
	assert.Equal(t, "First Priority", options[0].Priority)
}

func TestEmergencyHandler_CreateSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockEmergencyUC(ctrl)
	mockUC.EXPECT().CreateSession(gomock.Any()).Return(view(models.StepSelectType), nil)

	rec, resp := do(t, newRouter(mockUC), http.MethodPost, "/sessions", "")

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, resp.Success)
	var got models.SessionView
	require.NoError(t, json.Unmarshal(resp.Data, &got))
	assert.Equal(t, "s-1", got.ID)
	assert.Equal(t, "Type", got.StepLabel)
}

func TestEmergencyHandler_SessionNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockEmergencyUC(ctrl)
	mockUC.EXPECT().GetSession(gomock.Any(), "missing").Return(nil, emergency.ErrSessionNotFound)

	rec, resp := do(t, newRouter(mockUC), http.MethodGet, "/sessions/missing", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Notification)
	assert.Equal(t, "No emergency information found.", resp.Notification.Description)
}

func TestEmergencyHandler_SelectType(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockEmergencyUC(ctrl)
	mockUC.EXPECT().SelectType(gomock.Any(), "s-1", "accident").Return(view(models.StepSelectType), nil)

	rec, _ := do(t, newRouter(mockUC), http.MethodPut, "/sessions/s-1/type", `{"type":"accident"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestEmergencyHandler_InvalidBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rec, resp := do(t, newRouter(mocks.NewMockEmergencyUC(ctrl)), http.MethodPut, "/sessions/s-1/type", `{"type":`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid request body", resp.Error)
}

func TestEmergencyHandler_ContinueWithoutSelection(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockEmergencyUC(ctrl)
	mockUC.EXPECT().Continue(gomock.Any(), "s-1").Return(nil, emergency.ErrTypeRequired)

	rec, resp := do(t, newRouter(mockUC), http.MethodPost, "/sessions/s-1/continue", "")

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	require.NotNil(t, resp.Notification)
	assert.Equal(t, "Selection Required", resp.Notification.Title)
	assert.Equal(t, "Please select an emergency type to continue.", resp.Notification.Description)
	assert.Equal(t, models.VariantDestructive, resp.Notification.Variant)
}

func TestEmergencyHandler_BackFromFirstStep(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockEmergencyUC(ctrl)
	mockUC.EXPECT().Back(gomock.Any(), "s-1").Return(nil, emergency.ErrFirstStep)

	rec, _ := do(t, newRouter(mockUC), http.MethodPost, "/sessions/s-1/back", "")

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestEmergencyHandler_SetLocation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockEmergencyUC(ctrl)
	mockUC.EXPECT().SetLocation(gomock.Any(), "s-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, input models.LocationInput) (*models.SessionView, error) {
			assert.Equal(t, models.LocationSourceDevice, input.Source)
			require.NotNil(t, input.Latitude)
			assert.Equal(t, 37.7749, *input.Latitude)
			v := view(models.StepSelectHospital)
			v.Notification = models.NewInfo("Location detected", "Your location has been successfully detected.")
			return v, nil
		})

	rec, resp := do(t, newRouter(mockUC), http.MethodPut, "/sessions/s-1/location",
		`{"source":"device","latitude":37.7749,"longitude":-122.4194}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, resp.Notification)
	assert.Equal(t, "Location detected", resp.Notification.Title)
}

func TestEmergencyHandler_SetLocationGeolocationError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockEmergencyUC(ctrl)
	mockUC.EXPECT().SetLocation(gomock.Any(), "s-1", gomock.Any()).Return(nil, &emergency.GeolocationError{Code: 3})

	rec, resp := do(t, newRouter(mockUC), http.MethodPut, "/sessions/s-1/location", `{"source":"device","error_code":3}`)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "Request to get location timed out.", resp.Notification.Description)
}

func TestEmergencyHandler_SetLocationFetchFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockEmergencyUC(ctrl)
	mockUC.EXPECT().SetLocation(gomock.Any(), "s-1", gomock.Any()).
		Return(nil, fmt.Errorf("%w: boom", emergency.ErrHospitalFetch))

	rec, resp := do(t, newRouter(mockUC), http.MethodPut, "/sessions/s-1/location", `{"source":"manual","address":"12 Elm St"}`)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, "Failed to fetch nearby hospitals. Please try again.", resp.Notification.Description)
}

func TestEmergencyHandler_ClearAndSelectHospital(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockEmergencyUC(ctrl)
	mockUC.EXPECT().ClearLocation(gomock.Any(), "s-1").Return(view(models.StepSelectHospital), nil)
	mockUC.EXPECT().SelectHospital(gomock.Any(), "s-1", "9").Return(nil, emergency.ErrHospitalNotInList)

	router := newRouter(mockUC)

	rec, _ := do(t, router, http.MethodDelete, "/sessions/s-1/location", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = do(t, router, http.MethodPut, "/sessions/s-1/hospital", `{"hospital_id":"9"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestEmergencyHandler_Submit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockEmergencyUC(ctrl)
	submitted := view(models.StepSubmit)
	submitted.ChatID = "chat-1"
	mockUC.EXPECT().Submit(gomock.Any(), "s-1", models.SubmitRequest{Description: "chest pain", ManualAddress: ""}).
		Return(submitted, nil)

	rec, resp := do(t, newRouter(mockUC), http.MethodPost, "/sessions/s-1/submit", `{"description":"chest pain"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	var got models.SessionView
	require.NoError(t, json.Unmarshal(resp.Data, &got))
	assert.Equal(t, "chat-1", got.ChatID)
}

func TestEmergencyHandler_SubmitTwice(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockEmergencyUC(ctrl)
	mockUC.EXPECT().Submit(gomock.Any(), "s-1", gomock.Any()).Return(nil, emergency.ErrAlreadySubmitted)

	rec, resp := do(t, newRouter(mockUC), http.MethodPost, "/sessions/s-1/submit", `{}`)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "Emergency alert already sent.", resp.Notification.Description)
}

func TestEmergencyHandler_InternalError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockEmergencyUC(ctrl)
	mockUC.EXPECT().CreateSession(gomock.Any()).Return(nil, errors.New("redis down"))

	rec, resp := do(t, newRouter(mockUC), http.MethodPost, "/sessions", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Something went wrong. Please try again.", resp.Notification.Description)
}
