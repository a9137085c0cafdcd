package bom

import (
	"github.com/shopspring/decimal"

	"github.com/autoflexhq/inventory-console/pkg/inventory"
)

// DraftStore holds per-row quantity edits that have not been saved yet. It
// is keyed by association id and is rebuilt from the authoritative list on
// every successful reload, so unsaved edits never survive a reload.
type DraftStore struct {
	values map[int64]decimal.Decimal
}

func NewDraftStore() *DraftStore {
	return &DraftStore{values: map[int64]decimal.Decimal{}}
}

// Rebuild replaces every draft with the server value for the given rows.
func (s *DraftStore) Rebuild(items []inventory.ProductMaterial) {
	next := make(map[int64]decimal.Decimal, len(items))
	for _, pm := range items {
		next[pm.ID] = pm.RequiredQuantity
	}
	s.values = next
}

// Set records an edited value for one row. It never touches the network.
func (s *DraftStore) Set(associationID int64, value decimal.Decimal) {
	s.values[associationID] = value
}

// Value returns the draft for the row, or false when none is held.
func (s *DraftStore) Value(associationID int64) (decimal.Decimal, bool) {
	v, ok := s.values[associationID]
	return v, ok
}

// Len reports how many rows have a draft entry.
func (s *DraftStore) Len() int {
	return len(s.values)
}

// isDirty reports whether a draft is a valid positive quantity that differs
// numerically from the persisted value.
func isDirty(draft, persisted decimal.Decimal) bool {
	return draft.IsPositive() && !draft.Equal(persisted)
}
