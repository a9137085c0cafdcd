package bom

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/autoflexhq/inventory-console/pkg/inventory"
)

func TestDraftStoreRebuildReplacesAllDrafts(t *testing.T) {
	store := NewDraftStore()
	store.Set(1, decimal.NewFromInt(99))

	store.Rebuild([]inventory.ProductMaterial{
		{ID: 1, RequiredQuantity: decimal.RequireFromString("2.5")},
		{ID: 2, RequiredQuantity: decimal.NewFromInt(4)},
	})

	if store.Len() != 2 {
		t.Fatalf("expected 2 drafts, got %d", store.Len())
	}
	v, ok := store.Value(1)
	if !ok || !v.Equal(decimal.RequireFromString("2.5")) {
		t.Fatalf("expected server value 2.5 after rebuild, got %s", v)
	}
}

func TestDraftStoreRebuildDropsStaleRows(t *testing.T) {
	store := NewDraftStore()
	store.Rebuild([]inventory.ProductMaterial{{ID: 1, RequiredQuantity: decimal.NewFromInt(1)}})
	store.Rebuild(nil)

	if store.Len() != 0 {
		t.Fatalf("expected empty store, got %d", store.Len())
	}
	if _, ok := store.Value(1); ok {
		t.Fatal("expected draft for removed row to be gone")
	}
}

func TestIsDirtySemantics(t *testing.T) {
	persisted := decimal.RequireFromString("2.5")

	cases := []struct {
		name  string
		draft string
		want  bool
	}{
		{"equal value", "2.5", false},
		{"equal value different scale", "2.50", false},
		{"different positive value", "4", true},
		{"zero is invalid", "0", false},
		{"negative is invalid", "-1", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			draft := decimal.RequireFromString(tc.draft)
			if got := isDirty(draft, persisted); got != tc.want {
				t.Fatalf("isDirty(%s, %s) = %v, want %v", tc.draft, persisted, got, tc.want)
			}
		})
	}
}
