package products

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	pkgerrors "github.com/autoflexhq/inventory-console/pkg/errors"
	"github.com/autoflexhq/inventory-console/pkg/inventory"
)

// Service exposes the product catalog screens' operations.
type Service interface {
	List(ctx context.Context) ([]inventory.Product, error)
	Create(ctx context.Context, input CreateInput) (*inventory.Product, error)
	Update(ctx context.Context, id int64, input UpdateInput) (*inventory.Product, error)
	Delete(ctx context.Context, id int64) error
}

// CreateInput holds the validated payload to create a product.
type CreateInput struct {
	Code  string
	Name  string
	Price decimal.Decimal
}

// UpdateInput mutates a product's name and price. The code is immutable
// after creation.
type UpdateInput struct {
	Name  string
	Price decimal.Decimal
}

type apiClient interface {
	ListProducts(ctx context.Context) ([]inventory.Product, error)
	CreateProduct(ctx context.Context, payload inventory.ProductCreate) (*inventory.Product, error)
	UpdateProduct(ctx context.Context, id int64, payload inventory.ProductUpdate) (*inventory.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
}

type service struct {
	client apiClient
}

// NewService constructs a product service over the inventory API client.
func NewService(client apiClient) (Service, error) {
	if client == nil {
		return nil, fmt.Errorf("inventory client required")
	}
	return &service{client: client}, nil
}

func (s *service) List(ctx context.Context) ([]inventory.Product, error) {
	return s.client.ListProducts(ctx)
}

func (s *service) Create(ctx context.Context, input CreateInput) (*inventory.Product, error) {
	code := strings.TrimSpace(input.Code)
	if code == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "code is required")
	}
	if err := validateNameAndPrice(input.Name, input.Price); err != nil {
		return nil, err
	}
	return s.client.CreateProduct(ctx, inventory.ProductCreate{
		Code:  code,
		Name:  strings.TrimSpace(input.Name),
		Price: input.Price,
	})
}

func (s *service) Update(ctx context.Context, id int64, input UpdateInput) (*inventory.Product, error) {
	if err := validateNameAndPrice(input.Name, input.Price); err != nil {
		return nil, err
	}
	return s.client.UpdateProduct(ctx, id, inventory.ProductUpdate{
		Name:  strings.TrimSpace(input.Name),
		Price: input.Price,
	})
}

// Delete forwards the delete unconditionally; the server rejects it while
// BOM links still reference the product.
func (s *service) Delete(ctx context.Context, id int64) error {
	return s.client.DeleteProduct(ctx, id)
}

func validateNameAndPrice(name string, price decimal.Decimal) error {
	if strings.TrimSpace(name) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "name is required")
	}
	if !price.IsPositive() {
		return pkgerrors.New(pkgerrors.CodeValidation, "price must be greater than zero")
	}
	return nil
}
