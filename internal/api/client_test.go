package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/brewclub/storefront/internal/ordering"
	"github.com/brewclub/storefront/internal/tenant"
)

func testShopJSON() string {
	return `[{"id":"shop_1","name":"Main","logoUrl":"https://cdn.test/logo.jpg",
		"currency":"RUB","themeColor":"#fff","isClosed":false,"openingHours":"8-22"}]`
}

func TestShops(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/shops" {
			t.Errorf("path = %q, want /api/v1/shops", r.URL.Path)
		}
		// The shop list is tenant-global; no tenant header must be sent.
		if got := r.Header.Get(tenant.HeaderShopID); got != "" {
			t.Errorf("tenant header = %q, want unset", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(testShopJSON()))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil)
	shops, err := c.Shops(context.Background())
	if err != nil {
		t.Fatalf("Shops() error = %v", err)
	}
	if len(shops) != 1 || shops[0].ID != "shop_1" {
		t.Errorf("Shops() = %+v, want one shop_1", shops)
	}
}

func TestBanners(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/banners" {
			t.Errorf("path = %q, want /api/v1/banners", r.URL.Path)
		}
		if got := r.Header.Get(tenant.HeaderShopID); got != "" {
			t.Errorf("tenant header = %q, want unset", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":"ban_1","title":"Business lunch","imageUrl":"https://cdn.test/lunch.jpg"}]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil)
	banners, err := c.Banners(context.Background())
	if err != nil {
		t.Fatalf("Banners() error = %v", err)
	}
	if len(banners) != 1 || banners[0].ID != "ban_1" {
		t.Errorf("Banners() = %+v, want one ban_1", banners)
	}
}

func TestCategories(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/categories" {
			t.Errorf("path = %q, want /api/v1/categories", r.URL.Path)
		}
		if got := r.Header.Get(tenant.HeaderShopID); got != "shop_1" {
			t.Errorf("tenant header = %q, want shop_1", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":"cat_coffee","name":"Coffee","slug":"coffee","sortOrder":0}]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil)
	categories, err := c.Categories(context.Background(), "shop_1")
	if err != nil {
		t.Fatalf("Categories() error = %v", err)
	}
	if len(categories) != 1 || categories[0].Slug != "coffee" {
		t.Errorf("Categories() = %+v, want one coffee category", categories)
	}
}

func TestProduct(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/products/prod_cap" {
			t.Errorf("path = %q, want /api/v1/products/prod_cap", r.URL.Path)
		}
		if got := r.Header.Get(tenant.HeaderShopID); got != "shop_1" {
			t.Errorf("tenant header = %q, want shop_1", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"prod_cap","categoryId":"cat_coffee","name":"Cappuccino",
			"price":18000,"imageUrl":"https://cdn.test/cap.jpg","isAvailable":true,
			"addons":[{"id":"m1","name":"Coconut milk","price":5000}]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil)
	product, err := c.Product(context.Background(), "shop_1", "prod_cap")
	if err != nil {
		t.Fatalf("Product() error = %v", err)
	}
	if product.Price != 18000 {
		t.Errorf("Price = %d, want 18000", product.Price)
	}
	if addon := product.Addon("m1"); addon == nil || addon.Price != 5000 {
		t.Errorf("Addon(m1) = %+v, want price 5000", addon)
	}
}

func TestProductsCategoryFilterParam(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("categoryId"); got != "cat_food" {
			t.Errorf("categoryId param = %q, want cat_food", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"items":[],"total":0}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil)
	if _, err := c.Products(context.Background(), "shop_1", "cat_food"); err != nil {
		t.Fatalf("Products() error = %v", err)
	}
}

func TestTenantScopedCallsSendHeader(t *testing.T) {
	var gotHeader string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHeader = r.Header.Get(tenant.HeaderShopID)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"items":[],"total":0}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil)
	if _, err := c.Products(context.Background(), "shop_2", ""); err != nil {
		t.Fatalf("Products() error = %v", err)
	}
	if gotHeader != "shop_2" {
		t.Errorf("tenant header = %q, want shop_2", gotHeader)
	}
}

func TestTenantScopedCallsRejectEmptyShopID(t *testing.T) {
	// The guard fires before any request is made.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("request reached the server despite a missing shop id")
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil)
	ctx := context.Background()

	if _, err := c.Shop(ctx, ""); err == nil {
		t.Error("Shop() with empty shop id returned no error")
	}
	if _, err := c.Categories(ctx, ""); err == nil {
		t.Error("Categories() with empty shop id returned no error")
	}
	if _, err := c.Products(ctx, "", ""); err == nil {
		t.Error("Products() with empty shop id returned no error")
	}
	if _, err := c.CreateOrder(ctx, "", ordering.Payload{}); err == nil {
		t.Error("CreateOrder() with empty shop id returned no error")
	}
}

func TestErrorBodyBecomesAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"shop shop_9 not found"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil)
	_, err := c.Shop(context.Background(), "shop_9")
	if err == nil {
		t.Fatal("Shop() error = nil, want APIError")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error type = %T, want *APIError", err)
	}
	if apiErr.Status != http.StatusNotFound {
		t.Errorf("Status = %d, want %d", apiErr.Status, http.StatusNotFound)
	}
	if apiErr.Message != "shop shop_9 not found" {
		t.Errorf("Message = %q, want the backend message", apiErr.Message)
	}
}

func TestMalformedBodyBecomesContractError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"shop_1"`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil)
	_, err := c.Shop(context.Background(), "shop_1")

	var contractErr *ContractError
	if !errors.As(err, &contractErr) {
		t.Fatalf("error type = %T, want *ContractError", err)
	}
}

func TestContractViolationDetected(t *testing.T) {
	// Syntactically valid JSON that breaks the contract: total disagrees with
	// the item count.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"items":[],"total":5}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil)
	_, err := c.Products(context.Background(), "shop_1", "")

	var contractErr *ContractError
	if !errors.As(err, &contractErr) {
		t.Fatalf("error type = %T, want *ContractError", err)
	}
}

func TestCreateOrder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %q, want POST", r.Method)
		}
		if got := r.Header.Get(tenant.HeaderShopID); got != "shop_1" {
			t.Errorf("tenant header = %q, want shop_1", got)
		}

		var payload ordering.Payload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("decode payload: %v", err)
		}
		if payload.PaymentMethod != ordering.PaymentCardOnline {
			t.Errorf("paymentMethod = %q, want CARD_ONLINE", payload.PaymentMethod)
		}

		order := ordering.NewOrder()
		order.ShopID = payload.ShopID
		order.Type = payload.Type
		order.Items = payload.Items
		order.TotalAmount = 46000

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(order)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil)
	order, err := c.CreateOrder(context.Background(), "shop_1", ordering.Payload{
		ShopID:        "shop_1",
		Type:          ordering.TypeDineIn,
		PaymentMethod: ordering.PaymentCardOnline,
		Items:         []ordering.Item{{ProductID: "prod_cap", Quantity: 2}},
	})
	if err != nil {
		t.Fatalf("CreateOrder() error = %v", err)
	}
	if order.TotalAmount != 46000 {
		t.Errorf("TotalAmount = %d, want 46000", order.TotalAmount)
	}
	if order.Status != ordering.StatusPending {
		t.Errorf("Status = %q, want PENDING", order.Status)
	}
}
