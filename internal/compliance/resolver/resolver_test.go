package resolver

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jothamO/prism-app-sub003/internal/domain/party"
)

type MockPartyRepository struct {
	mock.Mock
}

func (m *MockPartyRepository) ListBusinesses(ctx context.Context, accountHolderID uuid.UUID) ([]party.Business, error) {
	args := m.Called(ctx, accountHolderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]party.Business), args.Error(1)
}

func (m *MockPartyRepository) ListRelatedParties(ctx context.Context, accountHolderID uuid.UUID) ([]party.RelatedParty, error) {
	args := m.Called(ctx, accountHolderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]party.RelatedParty), args.Error(1)
}

func TestResolve_NoInputsMeansNotConnected(t *testing.T) {
	mockRepo := &MockPartyRepository{}
	accountHolderID := uuid.New()
	mockRepo.On("ListBusinesses", mock.Anything, accountHolderID).Return([]party.Business{{Name: "Acme Trading"}}, nil)
	mockRepo.On("ListRelatedParties", mock.Anything, accountHolderID).Return([]party.RelatedParty{}, nil)

	r := NewResolver(mockRepo, 0.7, slog.Default())
	match := r.Resolve(context.Background(), accountHolderID, "", "")

	assert.False(t, match.IsConnected)
}

func TestResolve_TaxIDExactMatch(t *testing.T) {
	mockRepo := &MockPartyRepository{}
	accountHolderID := uuid.New()
	mockRepo.On("ListBusinesses", mock.Anything, accountHolderID).Return([]party.Business{
		{Name: "Acme Trading Ltd", TaxID: "TIN-12345"},
	}, nil)
	mockRepo.On("ListRelatedParties", mock.Anything, accountHolderID).Return([]party.RelatedParty{}, nil)

	r := NewResolver(mockRepo, 0.7, slog.Default())
	match := r.Resolve(context.Background(), accountHolderID, "Completely Different Name", "TIN-12345")

	require.True(t, match.IsConnected)
	assert.Equal(t, party.MatchSourceOwnBusiness, match.MatchSource)
	assert.Equal(t, "Acme Trading Ltd", match.MatchedName)
}

func TestResolve_NameSimilarityMatch(t *testing.T) {
	mockRepo := &MockPartyRepository{}
	accountHolderID := uuid.New()
	mockRepo.On("ListBusinesses", mock.Anything, accountHolderID).Return([]party.Business{}, nil)
	mockRepo.On("ListRelatedParties", mock.Anything, accountHolderID).Return([]party.RelatedParty{
		{Name: "Chukwu & Sons Ltd", TaxID: "TIN-99", RelationshipType: "sibling"},
	}, nil)

	r := NewResolver(mockRepo, 0.7, slog.Default())
	match := r.Resolve(context.Background(), accountHolderID, "CHUKWU SONS LIMITED", "")

	require.True(t, match.IsConnected)
	assert.Equal(t, party.MatchSourceRelatedParty, match.MatchSource)
	assert.Equal(t, "Chukwu & Sons Ltd", match.MatchedName)
	assert.Equal(t, "sibling", match.RelationshipType)
}

func TestResolve_BelowThresholdIsNotConnected(t *testing.T) {
	mockRepo := &MockPartyRepository{}
	accountHolderID := uuid.New()
	mockRepo.On("ListBusinesses", mock.Anything, accountHolderID).Return([]party.Business{
		{Name: "Acme Trading Ltd"},
	}, nil)
	mockRepo.On("ListRelatedParties", mock.Anything, accountHolderID).Return([]party.RelatedParty{}, nil)

	r := NewResolver(mockRepo, 0.7, slog.Default())
	match := r.Resolve(context.Background(), accountHolderID, "Acme Holdings Group", "")

	assert.False(t, match.IsConnected)
}

func TestResolve_BusinessesCheckedBeforeRelatedParties(t *testing.T) {
	mockRepo := &MockPartyRepository{}
	accountHolderID := uuid.New()
	mockRepo.On("ListBusinesses", mock.Anything, accountHolderID).Return([]party.Business{
		{Name: "Acme Trading", TaxID: "TIN-1"},
	}, nil)
	mockRepo.On("ListRelatedParties", mock.Anything, accountHolderID).Return([]party.RelatedParty{
		{Name: "Acme Trading", TaxID: "TIN-1", RelationshipType: "spouse"},
	}, nil)

	r := NewResolver(mockRepo, 0.7, slog.Default())
	match := r.Resolve(context.Background(), accountHolderID, "Acme Trading", "")

	require.True(t, match.IsConnected)
	assert.Equal(t, party.MatchSourceOwnBusiness, match.MatchSource)
}

func TestResolve_FirstMatchInStorageOrderWins(t *testing.T) {
	mockRepo := &MockPartyRepository{}
	accountHolderID := uuid.New()
	mockRepo.On("ListBusinesses", mock.Anything, accountHolderID).Return([]party.Business{
		{Name: "Acme Trading"},
		{Name: "Acme Trading Ltd"},
	}, nil)
	mockRepo.On("ListRelatedParties", mock.Anything, accountHolderID).Return([]party.RelatedParty{}, nil)

	r := NewResolver(mockRepo, 0.7, slog.Default())
	match := r.Resolve(context.Background(), accountHolderID, "acme trading", "")

	require.True(t, match.IsConnected)
	assert.Equal(t, "Acme Trading", match.MatchedName)
}

func TestProfileFor_FailsOpenOnStoreErrors(t *testing.T) {
	mockRepo := &MockPartyRepository{}
	accountHolderID := uuid.New()
	mockRepo.On("ListBusinesses", mock.Anything, accountHolderID).Return(nil, errors.New("connection refused"))
	mockRepo.On("ListRelatedParties", mock.Anything, accountHolderID).Return(nil, errors.New("connection refused"))

	r := NewResolver(mockRepo, 0.7, slog.Default())
	profile := r.ProfileFor(context.Background(), accountHolderID)

	assert.True(t, profile.Degraded)

	match := profile.Resolve("Acme Trading", "TIN-1")
	assert.False(t, match.IsConnected)
}

func TestProfileFor_PartialDegradation(t *testing.T) {
	mockRepo := &MockPartyRepository{}
	accountHolderID := uuid.New()
	mockRepo.On("ListBusinesses", mock.Anything, accountHolderID).Return(nil, errors.New("timeout"))
	mockRepo.On("ListRelatedParties", mock.Anything, accountHolderID).Return([]party.RelatedParty{
		{Name: "Acme Trading", RelationshipType: "parent"},
	}, nil)

	r := NewResolver(mockRepo, 0.7, slog.Default())
	profile := r.ProfileFor(context.Background(), accountHolderID)

	assert.True(t, profile.Degraded)

	// The list that did load still resolves
	match := profile.Resolve("acme trading", "")
	require.True(t, match.IsConnected)
	assert.Equal(t, party.MatchSourceRelatedParty, match.MatchSource)
}
