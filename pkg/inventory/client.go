package inventory

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	pkgerrors "github.com/autoflexhq/inventory-console/pkg/errors"
)

const (
	defaultTimeout             = 15 * time.Second
	errorBodyReadLimit   int64 = 4096
	headerContentType          = "Content-Type"
	contentTypeJSON            = "application/json"
)

var errBaseURLRequired = errors.New("inventory api base url is required")

// Client wraps the upstream inventory API that owns products, raw
// materials, BOM links, and the production plan. It is the only path to
// persistent state; the console keeps nothing durable of its own.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// Option configures optional client behavior.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithTimeout overrides the default request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient.Timeout = timeout
		}
	}
}

// NewClient builds an inventory API client for the given base URL.
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	trimmed := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if trimmed == "" {
		return nil, errBaseURLRequired
	}

	client := &Client{
		baseURL:    trimmed,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}

	for _, opt := range opts {
		if opt != nil {
			opt(client)
		}
	}

	if client.httpClient == nil {
		client.httpClient = &http.Client{Timeout: defaultTimeout}
	}

	return client, nil
}

// ListProducts fetches the full product catalog.
func (c *Client) ListProducts(ctx context.Context) ([]Product, error) {
	var out []Product
	if err := c.do(ctx, http.MethodGet, "/products", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateProduct registers a new product.
func (c *Client) CreateProduct(ctx context.Context, payload ProductCreate) (*Product, error) {
	var out Product
	if err := c.do(ctx, http.MethodPost, "/products", payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateProduct mutates the name and price of an existing product.
func (c *Client) UpdateProduct(ctx context.Context, id int64, payload ProductUpdate) (*Product, error) {
	var out Product
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/products/%d", id), payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteProduct removes a product. The server rejects the delete while
// dependent BOM links exist; the client does not pre-check.
func (c *Client) DeleteProduct(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/products/%d", id), nil, nil)
}

// ListRawMaterials fetches the full raw material catalog.
func (c *Client) ListRawMaterials(ctx context.Context) ([]RawMaterial, error) {
	var out []RawMaterial
	if err := c.do(ctx, http.MethodGet, "/raw-materials", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateRawMaterial registers a new raw material.
func (c *Client) CreateRawMaterial(ctx context.Context, payload RawMaterialCreate) (*RawMaterial, error) {
	var out RawMaterial
	if err := c.do(ctx, http.MethodPost, "/raw-materials", payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateRawMaterial mutates the name and stock quantity of a raw material.
func (c *Client) UpdateRawMaterial(ctx context.Context, id int64, payload RawMaterialUpdate) (*RawMaterial, error) {
	var out RawMaterial
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/raw-materials/%d", id), payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteRawMaterial removes a raw material.
func (c *Client) DeleteRawMaterial(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/raw-materials/%d", id), nil, nil)
}

// ListProductMaterials fetches the BOM rows for one product.
func (c *Client) ListProductMaterials(ctx context.Context, productID int64) ([]ProductMaterial, error) {
	var out []ProductMaterial
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/products/%d/materials", productID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AddProductMaterial links a raw material to the product. The server
// enforces uniqueness of the (product, raw material) pair.
func (c *Client) AddProductMaterial(ctx context.Context, productID int64, payload ProductMaterialCreate) (*ProductMaterial, error) {
	var out ProductMaterial
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/products/%d/materials", productID), payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateProductMaterial persists a new required quantity for one BOM row.
func (c *Client) UpdateProductMaterial(ctx context.Context, productID, productMaterialID int64, payload ProductMaterialUpdate) (*ProductMaterial, error) {
	var out ProductMaterial
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/products/%d/materials/%d", productID, productMaterialID), payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteProductMaterial removes one BOM row.
func (c *Client) DeleteProductMaterial(ctx context.Context, productID, productMaterialID int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/products/%d/materials/%d", productID, productMaterialID), nil, nil)
}

// ProductionSuggestion fetches the server-computed production plan.
func (c *Client) ProductionSuggestion(ctx context.Context) (*ProductionSuggestion, error) {
	var out ProductionSuggestion
	if err := c.do(ctx, http.MethodGet, "/production/suggestions", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) do(ctx context.Context, method, path string, payload, dest any) error {
	if c == nil {
		return pkgerrors.New(pkgerrors.CodeDependency, "inventory client not configured")
	}

	var body *bytes.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "marshal request body")
		}
		body = bytes.NewReader(encoded)
	} else {
		body = bytes.NewReader(nil)
	}

	url := c.baseURL + path
	httpReq, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "build request")
	}
	if payload != nil {
		httpReq.Header.Set(headerContentType, contentTypeJSON)
	}
	httpReq.Header.Set("Accept", contentTypeJSON)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, fmt.Sprintf("%s %s failed", method, path))
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return normalizeAPIError(resp)
	}

	if dest == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, fmt.Sprintf("decode %s %s response", method, path))
	}
	return nil
}
