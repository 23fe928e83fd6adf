package tenant

import (
	"context"
	"net/http"
	"time"

	"github.com/brewclub/storefront/internal/httpx"
)

// HeaderShopID carries the tenant a request is scoped to. Every tenant-scoped
// endpoint requires it; there is no fallback to a default tenant on the server.
const HeaderShopID = "X-Shop-Id"

const (
	// DefaultShopID is the tenant a fresh client session starts with.
	DefaultShopID = "shop_1"

	// DeliveryShopID is the reserved technical tenant for delivery-mode
	// ordering. It is a regular entry in the shop list, not a physical store.
	DeliveryShopID = "shop_delivery"
)

type ctxKey struct{}

// WithShopID returns a context carrying the resolved tenant id.
func WithShopID(ctx context.Context, shopID string) context.Context {
	return context.WithValue(ctx, ctxKey{}, shopID)
}

// ShopIDFrom extracts the tenant id placed in the context by Require.
func ShopIDFrom(ctx context.Context) string {
	shopID, _ := ctx.Value(ctxKey{}).(string)
	return shopID
}

// FromRequest reads the tenant header without any validation.
func FromRequest(r *http.Request) string {
	return r.Header.Get(HeaderShopID)
}

// Require rejects requests missing the tenant header with 400 and stores the
// header value in the request context for downstream handlers. Whether the
// tenant actually exists is decided by the handler against the catalog.
func Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		shopID := FromRequest(r)
		if shopID == "" {
			httpx.RespondMessage(w, http.StatusBadRequest, "X-Shop-Id header is required")
			return
		}
		next.ServeHTTP(w, r.WithContext(WithShopID(r.Context(), shopID)))
	})
}

// SimulatedLatency delays every request by d. The reference backend uses it to
// model real network delay so client loading states stay observable.
func SimulatedLatency(d time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if d > 0 {
				select {
				case <-time.After(d):
				case <-r.Context().Done():
					return
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}
