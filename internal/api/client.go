// Package api is the typed storefront API client. Every tenant-scoped call
// carries an explicit shop id supplied by the caller, and every response is
// validated against its contract before being handed to callers.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/appetiteclub/apt"
	"github.com/brewclub/storefront/internal/catalog"
	"github.com/brewclub/storefront/internal/httpx"
	"github.com/brewclub/storefront/internal/ordering"
	"github.com/brewclub/storefront/internal/tenant"
)

// validator is implemented by every contract type the client decodes.
type validator interface {
	Validate() error
}

// Client talks to the storefront backend.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     apt.Logger
}

func NewClient(baseURL string, logger apt.Logger) *Client {
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}
	if logger == nil {
		logger = apt.NewNoopLogger()
	}
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger: logger,
	}
}

// Shops lists all shops. Tenant-global: no shop id required.
func (c *Client) Shops(ctx context.Context) ([]catalog.Shop, error) {
	var shops []catalog.Shop
	if err := c.get(ctx, "/api/v1/shops", "", nil, &shops); err != nil {
		return nil, err
	}
	for i := range shops {
		if err := shops[i].Validate(); err != nil {
			return nil, &ContractError{Endpoint: "/api/v1/shops", Detail: fmt.Sprintf("[%d].%v", i, err)}
		}
	}
	return shops, nil
}

// Banners lists promotional banners. Tenant-global.
func (c *Client) Banners(ctx context.Context) ([]catalog.Banner, error) {
	var banners []catalog.Banner
	if err := c.get(ctx, "/api/v1/banners", "", nil, &banners); err != nil {
		return nil, err
	}
	for i := range banners {
		if err := banners[i].Validate(); err != nil {
			return nil, &ContractError{Endpoint: "/api/v1/banners", Detail: fmt.Sprintf("[%d].%v", i, err)}
		}
	}
	return banners, nil
}

// Shop fetches the tenant's own shop record.
func (c *Client) Shop(ctx context.Context, shopID string) (*catalog.Shop, error) {
	var shop catalog.Shop
	if err := c.getValidated(ctx, "/api/v1/shop", shopID, nil, &shop); err != nil {
		return nil, err
	}
	return &shop, nil
}

// Categories lists the tenant's menu categories.
func (c *Client) Categories(ctx context.Context, shopID string) ([]catalog.Category, error) {
	if shopID == "" {
		return nil, fmt.Errorf("/api/v1/categories: shop id is required")
	}
	var categories []catalog.Category
	if err := c.get(ctx, "/api/v1/categories", shopID, nil, &categories); err != nil {
		return nil, err
	}
	for i := range categories {
		if err := categories[i].Validate(); err != nil {
			return nil, &ContractError{Endpoint: "/api/v1/categories", Detail: fmt.Sprintf("[%d].%v", i, err)}
		}
	}
	return categories, nil
}

// Products lists the tenant's products, optionally filtered by category.
func (c *Client) Products(ctx context.Context, shopID, categoryID string) (*catalog.ProductList, error) {
	var params url.Values
	if categoryID != "" {
		params = url.Values{"categoryId": []string{categoryID}}
	}
	var list catalog.ProductList
	if err := c.getValidated(ctx, "/api/v1/products", shopID, params, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// Product fetches a single product from the tenant's catalog.
func (c *Client) Product(ctx context.Context, shopID, productID string) (*catalog.Product, error) {
	var product catalog.Product
	if err := c.getValidated(ctx, "/api/v1/products/"+productID, shopID, nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// CreateOrder submits an order payload. The shop id is passed explicitly and
// sent as the tenant header; the backend rejects a payload built for another
// tenant, which is the guard against orders leaking across a shop switch.
func (c *Client) CreateOrder(ctx context.Context, shopID string, payload ordering.Payload) (*ordering.Order, error) {
	const endpoint = "/api/v1/orders"
	if shopID == "" {
		return nil, fmt.Errorf("%s: shop id is required", endpoint)
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("%s: cannot encode payload: %w", endpoint, err)
	}

	var order ordering.Order
	if err := c.do(ctx, http.MethodPost, endpoint, shopID, nil, bytes.NewReader(body), &order); err != nil {
		return nil, err
	}
	if err := order.Validate(); err != nil {
		return nil, &ContractError{Endpoint: endpoint, Detail: err.Error()}
	}
	return &order, nil
}

func (c *Client) get(ctx context.Context, endpoint, shopID string, params url.Values, target interface{}) error {
	return c.do(ctx, http.MethodGet, endpoint, shopID, params, nil, target)
}

func (c *Client) getValidated(ctx context.Context, endpoint, shopID string, params url.Values, target validator) error {
	if shopID == "" {
		return fmt.Errorf("%s: shop id is required", endpoint)
	}
	if err := c.get(ctx, endpoint, shopID, params, target); err != nil {
		return err
	}
	if err := target.Validate(); err != nil {
		return &ContractError{Endpoint: endpoint, Detail: err.Error()}
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, endpoint, shopID string, params url.Values, body io.Reader, target interface{}) error {
	reqURL := c.baseURL + endpoint
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, body)
	if err != nil {
		return fmt.Errorf("%s: create request failed: %w", endpoint, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if shopID != "" {
		req.Header.Set(tenant.HeaderShopID, shopID)
	}

	c.logger.Debug("api request", "method", method, "endpoint", endpoint, "shop_id", shopID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s: request failed: %w", endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{Status: resp.StatusCode, Endpoint: endpoint}
		var msg httpx.MessageResponse
		if decodeErr := json.NewDecoder(resp.Body).Decode(&msg); decodeErr == nil {
			apiErr.Message = msg.Message
		}
		return apiErr
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return &ContractError{Endpoint: endpoint, Detail: fmt.Sprintf("cannot decode body: %v", err)}
	}
	return nil
}
