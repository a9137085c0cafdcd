package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	productsvc "github.com/autoflexhq/inventory-console/internal/products"
	pkgerrors "github.com/autoflexhq/inventory-console/pkg/errors"
	"github.com/autoflexhq/inventory-console/pkg/inventory"
)

type stubProductService struct {
	items   []inventory.Product
	created *productsvc.CreateInput
	deleted []int64
	err     error
}

func (s *stubProductService) List(context.Context) ([]inventory.Product, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.items, nil
}

func (s *stubProductService) Create(_ context.Context, input productsvc.CreateInput) (*inventory.Product, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.created = &input
	return &inventory.Product{ID: 7, Code: input.Code, Name: input.Name, Price: input.Price}, nil
}

func (s *stubProductService) Update(_ context.Context, id int64, input productsvc.UpdateInput) (*inventory.Product, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &inventory.Product{ID: id, Code: "P-001", Name: input.Name, Price: input.Price}, nil
}

func (s *stubProductService) Delete(_ context.Context, id int64) error {
	if s.err != nil {
		return s.err
	}
	s.deleted = append(s.deleted, id)
	return nil
}

func TestListProductsSuccess(t *testing.T) {
	svc := &stubProductService{items: []inventory.Product{
		{ID: 1, Code: "P-001", Name: "Chair", Price: decimal.NewFromInt(30)},
	}}
	handler := ListProducts(svc, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	var envelope struct {
		Data []inventory.Product `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(envelope.Data) != 1 || envelope.Data[0].Code != "P-001" {
		t.Fatalf("unexpected payload %+v", envelope.Data)
	}
}

func TestListProductsUpstreamFailure(t *testing.T) {
	svc := &stubProductService{err: pkgerrors.New(pkgerrors.CodeDependency, "inventory api unreachable")}
	handler := ListProducts(svc, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadGateway {
		t.Fatalf("expected 502 got %d", rec.Code)
	}
}

func TestCreateProductSuccess(t *testing.T) {
	svc := &stubProductService{}
	handler := CreateProduct(svc, nil)

	body := bytes.NewBufferString(`{"code":"P-002","name":"Table","price":"49.90"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/products", body)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d", rec.Code)
	}
	if svc.created == nil || svc.created.Code != "P-002" {
		t.Fatalf("unexpected input %+v", svc.created)
	}
	if !svc.created.Price.Equal(decimal.RequireFromString("49.90")) {
		t.Fatalf("unexpected price %s", svc.created.Price)
	}
}

func TestCreateProductRejectsUnknownFields(t *testing.T) {
	handler := CreateProduct(&stubProductService{}, nil)

	body := bytes.NewBufferString(`{"code":"P-002","name":"Table","price":"49.90","sku":"x"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/products", body)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
}

func TestCreateProductMissingCode(t *testing.T) {
	svc := &stubProductService{}
	handler := CreateProduct(svc, nil)

	body := bytes.NewBufferString(`{"name":"Table","price":"49.90"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/products", body)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
	if svc.created != nil {
		t.Fatal("expected no service call on invalid body")
	}
}

func TestUpdateProductInvalidID(t *testing.T) {
	r := chi.NewRouter()
	r.Put("/products/{productID}", UpdateProduct(&stubProductService{}, nil))

	body := bytes.NewBufferString(`{"name":"Chair XL","price":"35"}`)
	req := httptest.NewRequest(http.MethodPut, "/products/abc", body)
	rec := httptest.NewRecorder()

	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
}

func TestDeleteProductForwardsID(t *testing.T) {
	svc := &stubProductService{}
	r := chi.NewRouter()
	r.Delete("/products/{productID}", DeleteProduct(svc, nil))

	req := httptest.NewRequest(http.MethodDelete, "/products/9", nil)
	rec := httptest.NewRecorder()

	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	if len(svc.deleted) != 1 || svc.deleted[0] != 9 {
		t.Fatalf("unexpected deletes %v", svc.deleted)
	}
}
