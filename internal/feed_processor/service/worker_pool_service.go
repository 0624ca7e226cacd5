package service

import (
	"context"
	"log/slog"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/jothamO/prism-app-sub003/internal/domain/feed"
)

// WorkerPoolReconciliationService implements the ReconciliationService
// interface. Batches for different account holders are independent, so they
// run concurrently through the pool.
type WorkerPoolReconciliationService struct {
	baseService ReconciliationService
	pool        *ants.Pool
	logger      *slog.Logger
	// Use a mutex to protect access to the results map
	mu      sync.Mutex
	results map[string]chan error
}

type WorkerPoolConfig struct {
	Size int
}

func NewWorkerPoolReconciliationService(
	baseService ReconciliationService,
	config WorkerPoolConfig,
	logger *slog.Logger,
) (*WorkerPoolReconciliationService, error) {
	pool, err := ants.NewPool(config.Size)
	if err != nil {
		return nil, err
	}

	return &WorkerPoolReconciliationService{
		baseService: baseService,
		pool:        pool,
		logger:      logger,
		results:     make(map[string]chan error),
	}, nil
}

// ProcessBatch submits a feed batch to the worker pool for processing.
func (s *WorkerPoolReconciliationService) ProcessBatch(ctx context.Context, batch *feed.Batch) error {
	logger := s.logger
	if batch.CorrelationID != "" {
		logger = s.logger.With("correlation_id", batch.CorrelationID)
	}

	logger.Info("Submitting feed batch to worker pool",
		"batch_id", batch.BatchID.String(),
		"account_holder_id", batch.AccountHolderID.String(),
	)

	// Create a channel to receive the result of the batch processing
	resultChan := make(chan error, 1)

	batchID := batch.BatchID.String()
	s.mu.Lock()
	s.results[batchID] = resultChan
	s.mu.Unlock()

	// Create a copy of the batch to avoid data races
	batchCopy := *batch

	err := s.pool.Submit(func() {
		err := s.baseService.ProcessBatch(ctx, &batchCopy)

		resultChan <- err

		s.mu.Lock()
		delete(s.results, batchID)
		close(resultChan)
		s.mu.Unlock()
	})

	if err != nil {
		// If we couldn't submit the task to the pool, remove the result channel
		s.mu.Lock()
		delete(s.results, batchID)
		close(resultChan)
		s.mu.Unlock()

		logger.Error("Failed to submit feed batch to worker pool",
			"batch_id", batch.BatchID.String(),
			"error", err,
		)
		return err
	}

	// Wait for the result from the worker
	return <-resultChan
}

// Shutdown gracefully shuts down the worker pool.
func (s *WorkerPoolReconciliationService) Shutdown() {
	s.logger.Info("Shutting down worker pool", "running_workers", s.pool.Running())
	s.pool.Release()
}

// Running returns the number of running workers in the pool.
func (s *WorkerPoolReconciliationService) Running() int {
	return s.pool.Running()
}

// Capacity returns the capacity of the worker pool.
func (s *WorkerPoolReconciliationService) Capacity() int {
	return s.pool.Cap()
}
