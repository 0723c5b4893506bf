package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"cotizador/internal/domain"
	"cotizador/internal/handler"
	"cotizador/internal/service"
	"cotizador/mocks"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func postJSON(t *testing.T, path string, payload any) (*httptest.ResponseRecorder, *gin.Context) {
	t.Helper()
	body, err := json.Marshal(payload)
	assert.NoError(t, err)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return w, c
}

func TestJourneyHandler_Start_Success(t *testing.T) {
	mockJourneys := new(mocks.MockJourneyService)
	h := handler.NewJourneyHandler(mockJourneys)

	view := &service.JourneyView{
		SessionID: uuid.New(),
		Product:   domain.ProductExequias,
		Step:      domain.StepState{Current: 0, Total: 3},
		Valid:     true,
	}
	mockJourneys.On("Start", mock.Anything, service.StartJourneyInput{
		Product: domain.ProductExequias,
	}).Return(view, nil)

	w, c := postJSON(t, "/api/v1/journeys", map[string]string{"product": "exequias"})
	h.Start(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp handler.APIResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	mockJourneys.AssertExpectations(t)
}

func TestJourneyHandler_Start_UnknownProduct(t *testing.T) {
	mockJourneys := new(mocks.MockJourneyService)
	h := handler.NewJourneyHandler(mockJourneys)

	mockJourneys.On("Start", mock.Anything, mock.AnythingOfType("service.StartJourneyInput")).
		Return(nil, domain.ErrUnknownProduct)

	w, c := postJSON(t, "/api/v1/journeys", map[string]string{"product": "hogar"})
	h.Start(c)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp handler.APIResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "UNKNOWN_PRODUCT", resp.Error.Code)
}

func TestJourneyHandler_Start_MissingProduct(t *testing.T) {
	mockJourneys := new(mocks.MockJourneyService)
	h := handler.NewJourneyHandler(mockJourneys)

	w, c := postJSON(t, "/api/v1/journeys", map[string]string{})
	h.Start(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockJourneys.AssertNotCalled(t, "Start")
}

func TestJourneyHandler_Advance_Success(t *testing.T) {
	mockJourneys := new(mocks.MockJourneyService)
	h := handler.NewJourneyHandler(mockJourneys)

	sessionID := uuid.New()
	view := &service.JourneyView{
		SessionID: sessionID,
		Product:   domain.ProductViajero,
		Step:      domain.StepState{Current: 1, Total: 3},
		Valid:     true,
	}
	mockJourneys.On("Advance", mock.Anything, sessionID, mock.AnythingOfType("domain.FormSnapshot")).
		Return(view, nil)

	w, c := postJSON(t, "/api/v1/journeys/"+sessionID.String()+"/advance", map[string]string{
		"nombres": "Ana",
	})
	c.Params = gin.Params{{Key: "id", Value: sessionID.String()}}
	h.Advance(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockJourneys.AssertExpectations(t)
}

func TestJourneyHandler_Advance_InvalidID(t *testing.T) {
	mockJourneys := new(mocks.MockJourneyService)
	h := handler.NewJourneyHandler(mockJourneys)

	w, c := postJSON(t, "/api/v1/journeys/not-a-uuid/advance", map[string]string{})
	c.Params = gin.Params{{Key: "id", Value: "not-a-uuid"}}
	h.Advance(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockJourneys.AssertNotCalled(t, "Advance")
}

func TestJourneyHandler_Advance_CompletedSession(t *testing.T) {
	mockJourneys := new(mocks.MockJourneyService)
	h := handler.NewJourneyHandler(mockJourneys)

	sessionID := uuid.New()
	mockJourneys.On("Advance", mock.Anything, sessionID, mock.AnythingOfType("domain.FormSnapshot")).
		Return(nil, domain.ErrSessionCompleted)

	w, c := postJSON(t, "/api/v1/journeys/"+sessionID.String()+"/advance", map[string]string{})
	c.Params = gin.Params{{Key: "id", Value: sessionID.String()}}
	h.Advance(c)

	assert.Equal(t, http.StatusConflict, w.Code)

	var resp handler.APIResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "SESSION_COMPLETED", resp.Error.Code)
}

func TestJourneyHandler_Get_NotFound(t *testing.T) {
	mockJourneys := new(mocks.MockJourneyService)
	h := handler.NewJourneyHandler(mockJourneys)

	sessionID := uuid.New()
	mockJourneys.On("Get", mock.Anything, sessionID).Return(nil, domain.ErrSessionNotFound)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/journeys/"+sessionID.String(), nil)
	c.Params = gin.Params{{Key: "id", Value: sessionID.String()}}
	h.Get(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestJourneyHandler_Retreat_Success(t *testing.T) {
	mockJourneys := new(mocks.MockJourneyService)
	h := handler.NewJourneyHandler(mockJourneys)

	sessionID := uuid.New()
	view := &service.JourneyView{
		SessionID: sessionID,
		Product:   domain.ProductDeudores,
		Step:      domain.StepState{Current: 0, Total: 3},
		Valid:     true,
	}
	mockJourneys.On("Retreat", mock.Anything, sessionID).Return(view, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/journeys/"+sessionID.String()+"/retreat", nil)
	c.Params = gin.Params{{Key: "id", Value: sessionID.String()}}
	h.Retreat(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockJourneys.AssertExpectations(t)
}
