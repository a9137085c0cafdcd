package rawmaterials

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	pkgerrors "github.com/autoflexhq/inventory-console/pkg/errors"
	"github.com/autoflexhq/inventory-console/pkg/inventory"
)

// Service exposes the raw material screens' operations.
type Service interface {
	List(ctx context.Context) ([]inventory.RawMaterial, error)
	Create(ctx context.Context, input CreateInput) (*inventory.RawMaterial, error)
	Update(ctx context.Context, id int64, input UpdateInput) (*inventory.RawMaterial, error)
	Delete(ctx context.Context, id int64) error
}

// CreateInput holds the validated payload to create a raw material.
type CreateInput struct {
	Code          string
	Name          string
	StockQuantity decimal.Decimal
}

// UpdateInput mutates a raw material's name and stock quantity.
type UpdateInput struct {
	Name          string
	StockQuantity decimal.Decimal
}

type apiClient interface {
	ListRawMaterials(ctx context.Context) ([]inventory.RawMaterial, error)
	CreateRawMaterial(ctx context.Context, payload inventory.RawMaterialCreate) (*inventory.RawMaterial, error)
	UpdateRawMaterial(ctx context.Context, id int64, payload inventory.RawMaterialUpdate) (*inventory.RawMaterial, error)
	DeleteRawMaterial(ctx context.Context, id int64) error
}

type service struct {
	client apiClient
}

// NewService constructs a raw material service over the inventory API
// client.
func NewService(client apiClient) (Service, error) {
	if client == nil {
		return nil, fmt.Errorf("inventory client required")
	}
	return &service{client: client}, nil
}

func (s *service) List(ctx context.Context) ([]inventory.RawMaterial, error) {
	return s.client.ListRawMaterials(ctx)
}

func (s *service) Create(ctx context.Context, input CreateInput) (*inventory.RawMaterial, error) {
	code := strings.TrimSpace(input.Code)
	if code == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "code is required")
	}
	if err := validateNameAndStock(input.Name, input.StockQuantity); err != nil {
		return nil, err
	}
	return s.client.CreateRawMaterial(ctx, inventory.RawMaterialCreate{
		Code:          code,
		Name:          strings.TrimSpace(input.Name),
		StockQuantity: input.StockQuantity,
	})
}

func (s *service) Update(ctx context.Context, id int64, input UpdateInput) (*inventory.RawMaterial, error) {
	if err := validateNameAndStock(input.Name, input.StockQuantity); err != nil {
		return nil, err
	}
	return s.client.UpdateRawMaterial(ctx, id, inventory.RawMaterialUpdate{
		Name:          strings.TrimSpace(input.Name),
		StockQuantity: input.StockQuantity,
	})
}

func (s *service) Delete(ctx context.Context, id int64) error {
	return s.client.DeleteRawMaterial(ctx, id)
}

func validateNameAndStock(name string, stock decimal.Decimal) error {
	if strings.TrimSpace(name) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "name is required")
	}
	if stock.IsNegative() {
		return pkgerrors.New(pkgerrors.CodeValidation, "stockQuantity cannot be negative")
	}
	return nil
}
