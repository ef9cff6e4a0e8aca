package estimate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"estimateai/internal/domain"
)

func TestDraftStore_MergePatchWins(t *testing.T) {
	store := NewDraftStore(20)
	store.Begin(DraftTargetNew)

	_, err := store.Merge(DraftTargetNew, map[string]any{"title": "Kitchen", "profit_margin": 20.0})
	assert.NoError(t, err)

	merged, err := store.Merge(DraftTargetNew, map[string]any{"title": "Kitchen Renovation"})
	assert.NoError(t, err)

	// last write wins per field, untouched fields survive
	assert.Equal(t, "Kitchen Renovation", merged["title"])
	assert.Equal(t, 20.0, merged["profit_margin"])
}

func TestDraftStore_MergeForDifferentTargetIsStale(t *testing.T) {
	store := NewDraftStore(20)
	store.Begin("7")

	_, err := store.Merge("7", map[string]any{"title": "Deck"})
	assert.NoError(t, err)

	_, err = store.Merge("8", map[string]any{"title": "Fence"})
	assert.ErrorIs(t, err, ErrStaleDraft)

	// the scoped draft is untouched by the rejected patch
	target, fields := store.Snapshot()
	assert.Equal(t, "7", target)
	assert.Equal(t, "Deck", fields["title"])
}

func TestDraftStore_BeginNewTargetDropsOldDraft(t *testing.T) {
	store := NewDraftStore(20)
	store.Begin("7")
	_, _ = store.Merge("7", map[string]any{"title": "Deck"})

	store.Begin("8")

	target, fields := store.Snapshot()
	assert.Equal(t, "8", target)
	assert.Empty(t, fields)
}

func TestDraftStore_BeginSameTargetKeepsDraft(t *testing.T) {
	store := NewDraftStore(20)
	store.Begin("7")
	_, _ = store.Merge("7", map[string]any{"title": "Deck"})

	store.Begin("7")

	_, fields := store.Snapshot()
	assert.Equal(t, "Deck", fields["title"])
}

func TestDraftStore_BaselineDefaults(t *testing.T) {
	store := NewDraftStore(20)

	baseline := store.Baseline(nil)

	assert.Equal(t, "", baseline.Title)
	assert.Equal(t, domain.EstimateDraft, baseline.Status)
	assert.Equal(t, 20.0, baseline.ProfitMargin)
	assert.Equal(t, 0.0, baseline.TotalCost)
}

func TestDraftStore_BaselineDraftOverInitial(t *testing.T) {
	store := NewDraftStore(20)
	store.Begin("7")
	_, _ = store.Merge("7", map[string]any{
		"title":         "Deck v2",
		"profit_margin": 25.0,
	})

	initial := &domain.Estimate{
		ID:           7,
		Title:        "Deck",
		Description:  "Backyard deck",
		Status:       domain.EstimatePending,
		ProfitMargin: 20,
		TotalCost:    898.80,
	}

	baseline := store.Baseline(initial)

	// buffered fields win, the rest falls through to the stored estimate
	assert.Equal(t, "Deck v2", baseline.Title)
	assert.Equal(t, 25.0, baseline.ProfitMargin)
	assert.Equal(t, "Backyard deck", baseline.Description)
	assert.Equal(t, domain.EstimatePending, baseline.Status)
	assert.InDelta(t, 898.80, baseline.TotalCost, 1e-9)
}

func TestDraftStore_BaselineClientIDFromJSONNumber(t *testing.T) {
	store := NewDraftStore(20)
	store.Begin(DraftTargetNew)
	// JSON decoding hands numbers to the store as float64
	_, _ = store.Merge(DraftTargetNew, map[string]any{"client_id": 3.0})

	baseline := store.Baseline(nil)

	if assert.NotNil(t, baseline.ClientID) {
		assert.Equal(t, int64(3), *baseline.ClientID)
	}
}

func TestDraftStore_ClearTargetOnlyClearsOwnDraft(t *testing.T) {
	store := NewDraftStore(20)
	store.Begin("7")
	_, _ = store.Merge("7", map[string]any{"title": "Deck"})

	store.ClearTarget("8")
	target, _ := store.Snapshot()
	assert.Equal(t, "7", target)

	store.ClearTarget("7")
	target, fields := store.Snapshot()
	assert.Equal(t, "", target)
	assert.Empty(t, fields)
}

func TestMergeDraft_ValidatesMarginInPatch(t *testing.T) {
	svc := newTestService(new(MockEstimateRepository), new(MockClientRepository))
	svc.BeginDraft(DraftTargetNew)

	_, err := svc.MergeDraft(DraftTargetNew, map[string]any{"profit_margin": 150.0})
	assert.Error(t, err)

	_, err = svc.MergeDraft(DraftTargetNew, map[string]any{"profit_margin": 25.0})
	assert.NoError(t, err)
}

func TestMergeDraft_ValidatesZipcodeLength(t *testing.T) {
	svc := newTestService(new(MockEstimateRepository), new(MockClientRepository))
	svc.BeginDraft(DraftTargetNew)

	_, err := svc.MergeDraft(DraftTargetNew, map[string]any{"location_zipcode": "941031234567"})
	assert.ErrorIs(t, err, ErrValidation)
}
