package production

import (
	"context"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/autoflexhq/inventory-console/pkg/inventory"
)

type fakeClient struct {
	suggestion *inventory.ProductionSuggestion
	err        error
}

func (f *fakeClient) ProductionSuggestion(context.Context) (*inventory.ProductionSuggestion, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.suggestion, nil
}

func TestSuggestRendersServerValuesVerbatim(t *testing.T) {
	want := &inventory.ProductionSuggestion{
		Items: []inventory.ProductionItem{
			{
				ProductID:          1,
				ProductCode:        "P-001",
				ProductName:        "Chair",
				UnitPrice:          decimal.RequireFromString("30.00"),
				ProducibleQuantity: 4,
				TotalValue:         decimal.RequireFromString("120.00"),
			},
		},
		TotalValue: decimal.RequireFromString("120.00"),
	}

	svc, err := NewService(&fakeClient{suggestion: want})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	got, err := svc.Suggest(context.Background())
	if err != nil {
		t.Fatalf("suggest: %v", err)
	}
	if len(got.Items) != 1 || got.Items[0].ProducibleQuantity != 4 {
		t.Fatalf("unexpected items %+v", got.Items)
	}
	if !got.TotalValue.Equal(want.TotalValue) {
		t.Fatalf("unexpected total %s", got.TotalValue)
	}
}

func TestSuggestNormalizesNilItems(t *testing.T) {
	svc, err := NewService(&fakeClient{suggestion: &inventory.ProductionSuggestion{}})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	got, err := svc.Suggest(context.Background())
	if err != nil {
		t.Fatalf("suggest: %v", err)
	}
	if got.Items == nil {
		t.Fatal("expected empty slice, got nil")
	}
}

func TestSuggestPropagatesFailure(t *testing.T) {
	svc, err := NewService(&fakeClient{err: fmt.Errorf("upstream down")})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	if _, err := svc.Suggest(context.Background()); err == nil {
		t.Fatal("expected error")
	}
}
