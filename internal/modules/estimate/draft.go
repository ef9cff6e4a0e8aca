package estimate

import (
	"sync"

	"estimateai/internal/domain"
)

// DraftTargetNew is the sentinel target for a creation flow, before the
// estimate has an id.
const DraftTargetNew = "new"

// DraftStore buffers unsaved field edits while the user moves between the
// steps of the estimate form. It holds a single slot scoped to one target
// estimate at a time; switching targets drops the previous draft so edits
// can never leak from one estimate into another.
type DraftStore struct {
	mu            sync.Mutex
	target        string
	fields        map[string]any
	defaultMargin float64
}

func NewDraftStore(defaultMargin float64) *DraftStore {
	return &DraftStore{defaultMargin: defaultMargin}
}

// Begin scopes the store to targetID, clearing any draft left over from a
// different target.
func (s *DraftStore) Begin(targetID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.target != targetID {
		s.fields = nil
	}
	s.target = targetID
	if s.fields == nil {
		s.fields = make(map[string]any)
	}
}

// Merge shallow-merges patch over the buffered fields, patch values winning
// per field. A patch aimed at a different target than the scoped one is
// rejected with ErrStaleDraft instead of silently contaminating the draft.
func (s *DraftStore) Merge(targetID string, patch map[string]any) (map[string]any, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.target == "" {
		s.target = targetID
		s.fields = make(map[string]any)
	}
	if s.target != targetID {
		return nil, ErrStaleDraft
	}

	for k, v := range patch {
		s.fields[k] = v
	}
	return copyFields(s.fields), nil
}

// Snapshot returns the scoped target and a copy of the buffered fields.
func (s *DraftStore) Snapshot() (string, map[string]any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.target, copyFields(s.fields)
}

func (s *DraftStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.target = ""
	s.fields = nil
}

// ClearTarget clears the draft only if it is scoped to targetID. Used after
// a successful commit so an unrelated draft survives.
func (s *DraftStore) ClearTarget(targetID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.target == targetID {
		s.target = ""
		s.fields = nil
	}
}

// Baseline resolves the values the form should show: a field buffered in the
// draft wins, then the loaded estimate, then the documented defaults (empty
// title, draft status, configured default margin, zero total).
func (s *DraftStore) Baseline(initial *domain.Estimate) domain.Estimate {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := domain.Estimate{
		Status:       domain.EstimateDraft,
		ProfitMargin: s.defaultMargin,
	}
	if initial != nil {
		out = *initial
	}

	if v, ok := stringField(s.fields, "title"); ok {
		out.Title = v
	}
	if v, ok := stringField(s.fields, "description"); ok {
		out.Description = v
	}
	if v, ok := stringField(s.fields, "status"); ok {
		if st := domain.EstimateStatus(v); st.Valid() {
			out.Status = st
		}
	}
	if v, ok := numberField(s.fields, "profit_margin"); ok {
		out.ProfitMargin = v
	}
	if v, ok := numberField(s.fields, "total_cost"); ok {
		out.TotalCost = v
	}
	if v, ok := stringField(s.fields, "location_zipcode"); ok {
		out.LocationZipcode = v
	}
	if raw, ok := s.fields["client_id"]; ok {
		if raw == nil {
			out.ClientID = nil
		} else if id, ok := toInt64(raw); ok {
			out.ClientID = &id
		}
	}

	return out
}

func copyFields(in map[string]any) map[string]any {
	out := make(map[string]any, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func stringField(fields map[string]any, key string) (string, bool) {
	raw, ok := fields[key]
	if !ok {
		return "", false
	}
	v, ok := raw.(string)
	return v, ok
}

func numberField(fields map[string]any, key string) (float64, bool) {
	raw, ok := fields[key]
	if !ok {
		return 0, false
	}
	switch v := raw.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	}
	return 0, false
}

func toInt64(raw any) (int64, bool) {
	switch v := raw.(type) {
	case float64:
		return int64(v), true
	case int:
		return int64(v), true
	case int64:
		return v, true
	}
	return 0, false
}
