package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"log/slog"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apiservice "github.com/jothamO/prism-app-sub003/internal/api/service"
	"github.com/jothamO/prism-app-sub003/internal/domain/feed"
	"github.com/jothamO/prism-app-sub003/internal/domain/levy"
	"github.com/jothamO/prism-app-sub003/internal/domain/transaction"
)

type MockLevyService struct {
	mock.Mock
}

func (m *MockLevyService) ScanTransactions(ctx context.Context, accountHolderID uuid.UUID, txns []transaction.Transaction) (*apiservice.LevyScanResult, error) {
	args := m.Called(ctx, accountHolderID, txns)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*apiservice.LevyScanResult), args.Error(1)
}

func (m *MockLevyService) GetChargesByAccountHolderID(ctx context.Context, accountHolderID uuid.UUID, page, perPage int) ([]*levy.Charge, int64, error) {
	args := m.Called(ctx, accountHolderID, page, perPage)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*levy.Charge), args.Get(1).(int64), args.Error(2)
}

func TestProcessBatch(t *testing.T) {
	mockLevyService := &MockLevyService{}
	svc := NewReconciliationService(slog.Default(), mockLevyService)

	batch := &feed.Batch{
		BatchID:         uuid.New(),
		AccountHolderID: uuid.New(),
		Transactions: []transaction.Transaction{
			{ID: "tx-1", Direction: transaction.DirectionDebit, Amount: 5_000, Narration: "EMTL charge", Timestamp: time.Now().UTC()},
		},
		CorrelationID: "corr1",
	}

	mockLevyService.On("ScanTransactions", mock.Anything, batch.AccountHolderID, batch.Transactions).
		Return(&apiservice.LevyScanResult{Summary: levy.ScanSummary{Total: 1, Suspicious: 1}}, nil)

	err := svc.ProcessBatch(context.Background(), batch)
	require.NoError(t, err)

	mockLevyService.AssertExpectations(t)
}

func TestProcessBatch_ScanFailure(t *testing.T) {
	mockLevyService := &MockLevyService{}
	svc := NewReconciliationService(slog.Default(), mockLevyService)

	batch := &feed.Batch{
		BatchID:         uuid.New(),
		AccountHolderID: uuid.New(),
	}

	mockLevyService.On("ScanTransactions", mock.Anything, batch.AccountHolderID, mock.Anything).
		Return(nil, errors.New("kafka down"))

	err := svc.ProcessBatch(context.Background(), batch)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to reconcile feed batch")
}
