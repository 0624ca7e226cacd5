package mongo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jothamO/prism-app-sub003/internal/domain/levy"
)

const chargeCollection = "levy_charges"

// LevyRepository implements levy.Repository using MongoDB
type LevyRepository struct {
	collection *mongo.Collection
}

// NewLevyRepository creates a new MongoDB levy charge repository
func NewLevyRepository(db *mongo.Database) levy.Repository {
	return &LevyRepository{
		collection: db.Collection(chargeCollection),
	}
}

// Upsert writes a charge keyed by transaction ID, replacing any previous
// classification of the same debit
func (r *LevyRepository) Upsert(ctx context.Context, charge *levy.Charge) error {
	filter := bson.M{"transaction_id": charge.TransactionID}
	opts := options.Replace().SetUpsert(true)

	if _, err := r.collection.ReplaceOne(ctx, filter, charge, opts); err != nil {
		return fmt.Errorf("failed to upsert levy charge: %w", err)
	}

	return nil
}

// GetByTransactionID retrieves the charge recorded for one debit
func (r *LevyRepository) GetByTransactionID(ctx context.Context, transactionID string) (*levy.Charge, error) {
	filter := bson.M{"transaction_id": transactionID}

	var charge levy.Charge
	err := r.collection.FindOne(ctx, filter).Decode(&charge)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, levy.ErrChargeNotFound{TransactionID: transactionID}
		}
		return nil, fmt.Errorf("failed to get levy charge: %w", err)
	}

	return &charge, nil
}

// GetByAccountHolderID retrieves charges for an account holder with pagination,
// newest first
func (r *LevyRepository) GetByAccountHolderID(ctx context.Context, accountHolderID uuid.UUID, limit, offset int) ([]*levy.Charge, error) {
	filter := bson.M{"account_holder_id": accountHolderID}
	opts := options.Find().
		SetSort(bson.M{"detected_at": -1}).
		SetSkip(int64(offset)).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find levy charges: %w", err)
	}
	defer cursor.Close(ctx)

	var charges []*levy.Charge
	if err := cursor.All(ctx, &charges); err != nil {
		return nil, fmt.Errorf("failed to decode levy charges: %w", err)
	}

	return charges, nil
}

// CountByAccountHolderID counts charges recorded for an account holder
func (r *LevyRepository) CountByAccountHolderID(ctx context.Context, accountHolderID uuid.UUID) (int64, error) {
	filter := bson.M{"account_holder_id": accountHolderID}

	count, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to count levy charges: %w", err)
	}

	return count, nil
}
