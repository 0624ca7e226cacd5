package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"log/slog"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/jothamO/prism-app-sub003/internal/domain/feed"
	"github.com/jothamO/prism-app-sub003/internal/domain/transaction"
)

// MockReconciliationService for testing
type MockReconciliationService struct {
	mock.Mock
}

func (m *MockReconciliationService) ProcessBatch(ctx context.Context, batch *feed.Batch) error {
	args := m.Called(ctx, batch)
	return args.Error(0)
}

// MockDeadLetterPublisher for testing
type MockDeadLetterPublisher struct {
	mock.Mock
}

func (m *MockDeadLetterPublisher) PublishToDLQ(ctx context.Context, key string, value []byte, reason string) error {
	args := m.Called(ctx, key, value, reason)
	return args.Error(0)
}

func (m *MockDeadLetterPublisher) Close() error {
	args := m.Called()
	return args.Error(0)
}

func TestHandleMessage(t *testing.T) {
	logger := slog.Default()

	validBatch := &feed.Batch{
		BatchID:         uuid.New(),
		AccountHolderID: uuid.New(),
		Transactions: []transaction.Transaction{
			{ID: "tx-1", Direction: transaction.DirectionDebit, Amount: 5_000, Narration: "EMTL charge", Timestamp: time.Now().UTC()},
		},
		CorrelationID: "corr1",
		RetrievedAt:   time.Now().UTC(),
	}

	validJSON, err := json.Marshal(validBatch)
	assert.NoError(t, err)

	tests := []struct {
		name          string
		key           []byte
		value         []byte
		setupMocks    func(svc *MockReconciliationService, dlq *MockDeadLetterPublisher)
		expectedError error
	}{
		{
			name:  "successful processing",
			key:   []byte("test-key"),
			value: validJSON,
			setupMocks: func(svc *MockReconciliationService, dlq *MockDeadLetterPublisher) {
				svc.On("ProcessBatch", mock.Anything, mock.MatchedBy(func(b *feed.Batch) bool {
					return b.BatchID == validBatch.BatchID && len(b.Transactions) == 1
				})).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:  "processing error",
			key:   []byte("test-key"),
			value: validJSON,
			setupMocks: func(svc *MockReconciliationService, dlq *MockDeadLetterPublisher) {
				svc.On("ProcessBatch", mock.Anything, mock.Anything).Return(errors.New("mongo down"))
			},
			expectedError: errors.New("processing feed batch"),
		},
		{
			name:  "unmarshal error with successful DLQ publish",
			key:   []byte("test-key"),
			value: []byte("invalid json"),
			setupMocks: func(svc *MockReconciliationService, dlq *MockDeadLetterPublisher) {
				dlq.On("PublishToDLQ", mock.Anything, "test-key", []byte("invalid json"), mock.Anything).Return(nil)
			},
			expectedError: nil, // Message was handed to the DLQ, so the offset commits
		},
		{
			name:  "unmarshal error with DLQ publish failure",
			key:   []byte("test-key"),
			value: []byte("invalid json"),
			setupMocks: func(svc *MockReconciliationService, dlq *MockDeadLetterPublisher) {
				dlq.On("PublishToDLQ", mock.Anything, "test-key", []byte("invalid json"), mock.Anything).Return(errors.New("dlq error"))
			},
			expectedError: errors.New("failed to unmarshal"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &MockReconciliationService{}
			mockDLQPublisher := &MockDeadLetterPublisher{}
			mockDLQPublisher.On("Close").Return(nil).Maybe()

			handler := NewFeedEventHandler(logger, mockService, mockDLQPublisher)

			tt.setupMocks(mockService, mockDLQPublisher)

			err := handler.HandleMessage(context.Background(), tt.key, tt.value)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedError.Error())
			} else {
				assert.NoError(t, err)
			}

			mockService.AssertExpectations(t)
			mockDLQPublisher.AssertExpectations(t)
		})
	}
}

func TestHandleMessage_NoDLQConfigured(t *testing.T) {
	mockService := &MockReconciliationService{}
	handler := NewFeedEventHandler(slog.Default(), mockService, nil)

	err := handler.HandleMessage(context.Background(), []byte("test-key"), []byte("invalid json"))

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal")
	mockService.AssertNotCalled(t, "ProcessBatch", mock.Anything, mock.Anything)
}
