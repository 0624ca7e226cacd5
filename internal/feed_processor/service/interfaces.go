package service

import (
	"context"

	"github.com/jothamO/prism-app-sub003/internal/domain/feed"
)

// ReconciliationService defines the interface for processing feed batches
type ReconciliationService interface {
	ProcessBatch(ctx context.Context, batch *feed.Batch) error
}
