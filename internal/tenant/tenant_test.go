package tenant

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestRequire(t *testing.T) {
	var seenShopID string
	handler := Require(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenShopID = ShopIDFrom(r.Context())
	}))

	t.Run("missingHeader", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/shop", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
		}
	})

	t.Run("headerPropagatesToContext", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/shop", nil)
		req.Header.Set(HeaderShopID, "shop_2")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
		}
		if seenShopID != "shop_2" {
			t.Errorf("ShopIDFrom() = %q, want shop_2", seenShopID)
		}
	})
}

func TestShopIDFromEmptyContext(t *testing.T) {
	if got := ShopIDFrom(context.Background()); got != "" {
		t.Errorf("ShopIDFrom() = %q, want empty", got)
	}
}

func TestSimulatedLatency(t *testing.T) {
	const delay = 30 * time.Millisecond
	handler := SimulatedLatency(delay)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	start := time.Now()
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if elapsed := time.Since(start); elapsed < delay {
		t.Errorf("elapsed = %v, want at least %v", elapsed, delay)
	}
}

func TestSimulatedLatencyHonorsCancellation(t *testing.T) {
	var reached bool
	handler := SimulatedLatency(time.Hour)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
	}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil).WithContext(ctx))

	if reached {
		t.Error("handler ran despite a cancelled request")
	}
}

func TestSimulatedLatencyZeroIsPassthrough(t *testing.T) {
	var reached bool
	handler := SimulatedLatency(0)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if !reached {
		t.Error("handler did not run")
	}
}
