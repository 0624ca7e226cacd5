package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jothamO/prism-app-sub003/internal/api/service"
	"github.com/jothamO/prism-app-sub003/internal/domain/levy"
	"github.com/jothamO/prism-app-sub003/internal/domain/transaction"
)

type MockLevyService struct {
	mock.Mock
}

func (m *MockLevyService) ScanTransactions(ctx context.Context, accountHolderID uuid.UUID, txns []transaction.Transaction) (*service.LevyScanResult, error) {
	args := m.Called(ctx, accountHolderID, txns)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.LevyScanResult), args.Error(1)
}

func (m *MockLevyService) GetChargesByAccountHolderID(ctx context.Context, accountHolderID uuid.UUID, page, perPage int) ([]*levy.Charge, int64, error) {
	args := m.Called(ctx, accountHolderID, page, perPage)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*levy.Charge), args.Get(1).(int64), args.Error(2)
}

func setupLevyRouter(svc service.LevyService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewLevyHandler(slog.Default(), svc)
	r.POST("/api/v1/accounts/:id/levy-scan", h.Scan)
	r.GET("/api/v1/accounts/:id/levy-charges", h.GetCharges)
	return r
}

func TestLevyHandler_Scan(t *testing.T) {
	mockSvc := &MockLevyService{}
	router := setupLevyRouter(mockSvc)
	accountHolderID := uuid.New()

	result := &service.LevyScanResult{
		Charges: []*levy.Charge{{TransactionID: "tx-2", Status: levy.StatusLegitimate}},
		Summary: levy.ScanSummary{Total: 1, Legitimate: 1},
	}
	mockSvc.On("ScanTransactions", mock.Anything, accountHolderID, mock.Anything).Return(result, nil)

	body := LevyScanRequest{
		Transactions: []TransactionPayload{
			{ID: "tx-1", Direction: "debit", Amount: 1_500_000, Narration: "Transfer to Acme", Timestamp: time.Now().UTC()},
			{ID: "tx-2", Direction: "debit", Amount: 5_000, Narration: "EMTL charge", Timestamp: time.Now().UTC()},
		},
	}
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/accounts/"+accountHolderID.String()+"/levy-scan", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Nil(t, resp.Error)
	assert.NotNil(t, resp.Data)

	mockSvc.AssertExpectations(t)
}

func TestLevyHandler_Scan_InvalidAccountID(t *testing.T) {
	mockSvc := &MockLevyService{}
	router := setupLevyRouter(mockSvc)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/accounts/not-a-uuid/levy-scan", bytes.NewReader([]byte(`{"transactions":[]}`)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockSvc.AssertNotCalled(t, "ScanTransactions", mock.Anything, mock.Anything, mock.Anything)
}

func TestLevyHandler_Scan_InvalidBody(t *testing.T) {
	mockSvc := &MockLevyService{}
	router := setupLevyRouter(mockSvc)
	accountHolderID := uuid.New()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/accounts/"+accountHolderID.String()+"/levy-scan", bytes.NewReader([]byte(`{`)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLevyHandler_Scan_ServiceError(t *testing.T) {
	mockSvc := &MockLevyService{}
	router := setupLevyRouter(mockSvc)
	accountHolderID := uuid.New()

	mockSvc.On("ScanTransactions", mock.Anything, accountHolderID, mock.Anything).Return(nil, errors.New("mongo down"))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/accounts/"+accountHolderID.String()+"/levy-scan",
		bytes.NewReader([]byte(`{"transactions":[{"id":"tx-1","direction":"debit","amount":5000,"narration":"EMTL","timestamp":"2026-03-10T09:00:00Z"}]}`)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestLevyHandler_GetCharges(t *testing.T) {
	mockSvc := &MockLevyService{}
	router := setupLevyRouter(mockSvc)
	accountHolderID := uuid.New()

	charges := []*levy.Charge{{TransactionID: "tx-1", Status: levy.StatusSuspicious}}
	mockSvc.On("GetChargesByAccountHolderID", mock.Anything, accountHolderID, 1, 10).Return(charges, int64(1), nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/accounts/"+accountHolderID.String()+"/levy-charges", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Meta)
	assert.Equal(t, 1, resp.Meta.TotalItems)

	mockSvc.AssertExpectations(t)
}

func TestLevyHandler_GetCharges_InvalidPagination(t *testing.T) {
	mockSvc := &MockLevyService{}
	router := setupLevyRouter(mockSvc)
	accountHolderID := uuid.New()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/accounts/"+accountHolderID.String()+"/levy-charges?page=0", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
