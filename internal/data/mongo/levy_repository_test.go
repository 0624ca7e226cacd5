package mongo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestNewLevyRepository(t *testing.T) {
	client, err := mongo.Connect(context.Background())
	if err != nil {
		t.Fatalf("failed to construct mongo client: %v", err)
	}
	t.Cleanup(func() { _ = client.Disconnect(context.Background()) })
	db := client.Database(chargeCollection)

	repo := NewLevyRepository(db)

	assert.NotNil(t, repo)
	assert.IsType(t, &LevyRepository{}, repo)
}
