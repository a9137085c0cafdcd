package inventory

import "github.com/shopspring/decimal"

// Product is a finished good managed by the inventory API.
type Product struct {
	ID    int64           `json:"id"`
	Code  string          `json:"code"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// ProductCreate is the payload to register a new product.
type ProductCreate struct {
	Code  string          `json:"code"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// ProductUpdate mutates a product in place. The code is immutable.
type ProductUpdate struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// RawMaterial is a stocked input material.
type RawMaterial struct {
	ID            int64           `json:"id"`
	Code          string          `json:"code"`
	Name          string          `json:"name"`
	StockQuantity decimal.Decimal `json:"stockQuantity"`
}

// RawMaterialCreate is the payload to register a new raw material.
type RawMaterialCreate struct {
	Code          string          `json:"code"`
	Name          string          `json:"name"`
	StockQuantity decimal.Decimal `json:"stockQuantity"`
}

// RawMaterialUpdate mutates a raw material in place.
type RawMaterialUpdate struct {
	Name          string          `json:"name"`
	StockQuantity decimal.Decimal `json:"stockQuantity"`
}

// ProductMaterial is one BOM row: the quantity of a raw material required
// to produce one unit of the owning product. The raw material code and name
// are denormalized by the server for display.
type ProductMaterial struct {
	ID               int64           `json:"id"`
	ProductID        int64           `json:"productId"`
	RawMaterialID    int64           `json:"rawMaterialId"`
	RawMaterialCode  string          `json:"rawMaterialCode"`
	RawMaterialName  string          `json:"rawMaterialName"`
	RequiredQuantity decimal.Decimal `json:"requiredQuantity"`
}

// ProductMaterialCreate links a raw material to a product.
type ProductMaterialCreate struct {
	RawMaterialID    int64           `json:"rawMaterialId"`
	RequiredQuantity decimal.Decimal `json:"requiredQuantity"`
}

// ProductMaterialUpdate changes the required quantity of an existing link.
type ProductMaterialUpdate struct {
	RequiredQuantity decimal.Decimal `json:"requiredQuantity"`
}

// ProductionItem is one row of the server-computed production plan. Totals
// are computed upstream and rendered verbatim.
type ProductionItem struct {
	ProductID          int64           `json:"productId"`
	ProductCode        string          `json:"productCode"`
	ProductName        string          `json:"productName"`
	UnitPrice          decimal.Decimal `json:"unitPrice"`
	ProducibleQuantity int64           `json:"producibleQuantity"`
	TotalValue         decimal.Decimal `json:"totalValue"`
}

// ProductionSuggestion aggregates the production plan.
type ProductionSuggestion struct {
	Items      []ProductionItem `json:"items"`
	TotalValue decimal.Decimal  `json:"totalValue"`
}
