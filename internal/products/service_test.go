package products

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	pkgerrors "github.com/autoflexhq/inventory-console/pkg/errors"
	"github.com/autoflexhq/inventory-console/pkg/inventory"
)

type fakeClient struct {
	created *inventory.ProductCreate
	updated *inventory.ProductUpdate
	deleted []int64
}

func (f *fakeClient) ListProducts(context.Context) ([]inventory.Product, error) {
	return []inventory.Product{{ID: 1, Code: "P-001", Name: "Chair", Price: decimal.NewFromInt(30)}}, nil
}

func (f *fakeClient) CreateProduct(_ context.Context, payload inventory.ProductCreate) (*inventory.Product, error) {
	f.created = &payload
	return &inventory.Product{ID: 2, Code: payload.Code, Name: payload.Name, Price: payload.Price}, nil
}

func (f *fakeClient) UpdateProduct(_ context.Context, id int64, payload inventory.ProductUpdate) (*inventory.Product, error) {
	f.updated = &payload
	return &inventory.Product{ID: id, Code: "P-001", Name: payload.Name, Price: payload.Price}, nil
}

func (f *fakeClient) DeleteProduct(_ context.Context, id int64) error {
	f.deleted = append(f.deleted, id)
	return nil
}

func TestCreateTrimsAndForwards(t *testing.T) {
	client := &fakeClient{}
	svc, err := NewService(client)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	p, err := svc.Create(context.Background(), CreateInput{
		Code:  "  P-002 ",
		Name:  " Table ",
		Price: decimal.RequireFromString("49.90"),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if client.created == nil || client.created.Code != "P-002" || client.created.Name != "Table" {
		t.Fatalf("unexpected payload %+v", client.created)
	}
	if p.ID != 2 {
		t.Fatalf("unexpected product %+v", p)
	}
}

func TestCreateValidation(t *testing.T) {
	svc, err := NewService(&fakeClient{})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	cases := []struct {
		name  string
		input CreateInput
	}{
		{"missing code", CreateInput{Name: "Table", Price: decimal.NewFromInt(10)}},
		{"missing name", CreateInput{Code: "P-002", Price: decimal.NewFromInt(10)}},
		{"zero price", CreateInput{Code: "P-002", Name: "Table"}},
		{"negative price", CreateInput{Code: "P-002", Name: "Table", Price: decimal.NewFromInt(-1)}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tc.input)
			typed := pkgerrors.As(err)
			if typed == nil || typed.Code() != pkgerrors.CodeValidation {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestUpdateValidatesBeforeRemoteCall(t *testing.T) {
	client := &fakeClient{}
	svc, err := NewService(client)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	if _, err := svc.Update(context.Background(), 1, UpdateInput{Name: "", Price: decimal.NewFromInt(5)}); err == nil {
		t.Fatal("expected validation error")
	}
	if client.updated != nil {
		t.Fatal("expected no remote call on invalid input")
	}

	if _, err := svc.Update(context.Background(), 1, UpdateInput{Name: "Chair XL", Price: decimal.NewFromInt(35)}); err != nil {
		t.Fatalf("update: %v", err)
	}
	if client.updated == nil || client.updated.Name != "Chair XL" {
		t.Fatalf("unexpected payload %+v", client.updated)
	}
}

func TestDeleteForwardsWithoutPreCheck(t *testing.T) {
	client := &fakeClient{}
	svc, err := NewService(client)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	if err := svc.Delete(context.Background(), 9); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(client.deleted) != 1 || client.deleted[0] != 9 {
		t.Fatalf("unexpected deletes %v", client.deleted)
	}
}
