package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"cotizador/internal/domain"
	"cotizador/internal/handler"
	"cotizador/internal/service"
	"cotizador/mocks"
)

func TestReportHandler_ListLeads_Success(t *testing.T) {
	mockReports := new(mocks.MockReportService)
	h := handler.NewReportHandler(mockReports)

	leads := []domain.Lead{
		{
			ID:         uuid.New(),
			Product:    domain.ProductExequias,
			FullName:   "Ana María Pérez",
			QuoteTotal: 575000,
			Status:     domain.LeadStatusAccepted,
			CreatedAt:  time.Now().UTC(),
		},
	}
	mockReports.On("ListLeads", mock.Anything, domain.ProductExequias, 0, 50).
		Return(leads, 1, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/admin/leads?product=exequias", nil)
	h.ListLeads(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp handler.APIResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.NotNil(t, resp.Meta)
	assert.Equal(t, 1, resp.Meta.Total)
	mockReports.AssertExpectations(t)
}

func TestReportHandler_ListLeads_PassesPagination(t *testing.T) {
	mockReports := new(mocks.MockReportService)
	h := handler.NewReportHandler(mockReports)

	mockReports.On("ListLeads", mock.Anything, domain.ProductCode(""), 20, 10).
		Return([]domain.Lead{}, 35, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/admin/leads?offset=20&limit=10", nil)
	h.ListLeads(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockReports.AssertExpectations(t)
}

func TestReportHandler_ExportLeads_Success(t *testing.T) {
	mockReports := new(mocks.MockReportService)
	h := handler.NewReportHandler(mockReports)

	payload := []byte("workbook-bytes")
	mockReports.On("ExportLeads", mock.Anything, domain.ProductCode(""), service.FormatXLSX).
		Return(payload, "leads_20260830_120000.xlsx", nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/admin/leads/export", nil)
	h.ExportLeads(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, payload, w.Body.Bytes())
	assert.Contains(t, w.Header().Get("Content-Disposition"), "leads_20260830_120000.xlsx")
	assert.Contains(t, w.Header().Get("Content-Type"), "spreadsheetml")
}

func TestReportHandler_ExportLeads_CSVFormat(t *testing.T) {
	mockReports := new(mocks.MockReportService)
	h := handler.NewReportHandler(mockReports)

	payload := []byte("csv-bytes")
	mockReports.On("ExportLeads", mock.Anything, domain.ProductExequias, service.FormatCSV).
		Return(payload, "leads_exequias_20260830_120000.csv", nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/admin/leads/export?product=exequias&format=csv", nil)
	h.ExportLeads(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, w.Header().Get("Content-Disposition"), ".csv")
}

func TestReportHandler_ExportLeads_Error(t *testing.T) {
	mockReports := new(mocks.MockReportService)
	h := handler.NewReportHandler(mockReports)

	mockReports.On("ExportLeads", mock.Anything, domain.ProductCode(""), service.FormatXLSX).
		Return(nil, "", assert.AnError)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/admin/leads/export", nil)
	h.ExportLeads(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
