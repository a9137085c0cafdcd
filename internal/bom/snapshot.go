package bom

import (
	"github.com/shopspring/decimal"

	"github.com/autoflexhq/inventory-console/pkg/inventory"
)

// Row is one association rendered with its draft state.
type Row struct {
	inventory.ProductMaterial
	Draft decimal.Decimal `json:"draft"`
	Dirty bool            `json:"dirty"`
}

// Snapshot is the read model the presentation layer renders from. It is a
// copy; mutating it has no effect on the editor.
type Snapshot struct {
	ProductID             int64                   `json:"productId"`
	State                 State                   `json:"state"`
	Busy                  bool                    `json:"busy"`
	Error                 string                  `json:"error,omitempty"`
	Items                 []Row                   `json:"items"`
	AvailableRawMaterials []inventory.RawMaterial `json:"availableRawMaterials"`
	PendingRawMaterialID  int64                   `json:"pendingRawMaterialId,omitempty"`
	PendingQuantity       decimal.Decimal         `json:"pendingQuantity"`
}

// Snapshot renders the current editor state.
func (e *Editor) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	rows := make([]Row, 0, len(e.items))
	for _, pm := range e.items {
		draft, ok := e.drafts.Value(pm.ID)
		if !ok {
			draft = pm.RequiredQuantity
		}
		rows = append(rows, Row{
			ProductMaterial: pm,
			Draft:           draft,
			Dirty:           isDirty(draft, pm.RequiredQuantity),
		})
	}

	options := AvailableRawMaterials(e.items, e.catalog)

	return Snapshot{
		ProductID:             e.productID,
		State:                 e.state,
		Busy:                  e.state == StateBusy || e.state == StateLoading,
		Error:                 e.errorMsg,
		Items:                 rows,
		AvailableRawMaterials: options,
		PendingRawMaterialID:  e.pendingRawMaterialID,
		PendingQuantity:       e.pendingQuantity,
	}
}
