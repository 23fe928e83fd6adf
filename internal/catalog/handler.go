package catalog

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/appetiteclub/apt"
	"github.com/brewclub/storefront/internal/httpx"
	"github.com/brewclub/storefront/internal/tenant"
	"github.com/go-chi/chi/v5"
)

// Handler serves the read side of the storefront API: shop list, per-tenant
// shop data, categories, products and banners.
type Handler struct {
	logger apt.Logger
	config *apt.Config
	repo   Repo
}

func NewHandler(repo Repo, config *apt.Config, logger apt.Logger) *Handler {
	if logger == nil {
		logger = apt.NewNoopLogger()
	}
	return &Handler{
		logger: logger,
		config: config,
		repo:   repo,
	}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	// Tenant-global endpoints.
	r.Get("/api/v1/shops", h.ListShops)
	r.Get("/api/v1/banners", h.ListBanners)

	// Tenant-scoped endpoints.
	r.Group(func(r chi.Router) {
		r.Use(tenant.Require)
		r.Get("/api/v1/shop", h.GetShop)
		r.Get("/api/v1/categories", h.ListCategories)
		r.Get("/api/v1/products", h.ListProducts)
		r.Get("/api/v1/products/{id}", h.GetProduct)
	})
}

func (h *Handler) ListShops(w http.ResponseWriter, r *http.Request) {
	shops, err := h.repo.Shops(r.Context())
	if err != nil {
		h.logger.Error("cannot list shops", "error", err)
		httpx.RespondMessage(w, http.StatusInternalServerError, "Could not retrieve shops")
		return
	}
	httpx.RespondJSON(w, http.StatusOK, shops)
}

func (h *Handler) ListBanners(w http.ResponseWriter, r *http.Request) {
	banners, err := h.repo.Banners(r.Context())
	if err != nil {
		h.logger.Error("cannot list banners", "error", err)
		httpx.RespondMessage(w, http.StatusInternalServerError, "Could not retrieve banners")
		return
	}
	httpx.RespondJSON(w, http.StatusOK, banners)
}

func (h *Handler) GetShop(w http.ResponseWriter, r *http.Request) {
	shopID := tenant.ShopIDFrom(r.Context())

	shop, err := h.repo.Shop(r.Context(), shopID)
	if err != nil {
		h.respondShopError(w, shopID, err)
		return
	}
	httpx.RespondJSON(w, http.StatusOK, shop)
}

func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	shopID := tenant.ShopIDFrom(r.Context())

	categories, err := h.repo.Categories(r.Context(), shopID)
	if err != nil {
		h.respondShopError(w, shopID, err)
		return
	}
	httpx.RespondJSON(w, http.StatusOK, categories)
}

func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	shopID := tenant.ShopIDFrom(r.Context())
	categoryID := r.URL.Query().Get("categoryId")

	products, err := h.repo.Products(r.Context(), shopID, categoryID)
	if err != nil {
		h.respondShopError(w, shopID, err)
		return
	}
	httpx.RespondJSON(w, http.StatusOK, ProductList{Items: products, Total: len(products)})
}

func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request) {
	shopID := tenant.ShopIDFrom(r.Context())
	productID := chi.URLParam(r, "id")

	product, err := h.repo.Product(r.Context(), shopID, productID)
	if err != nil {
		if errors.Is(err, ErrProductNotFound) {
			httpx.RespondMessage(w, http.StatusNotFound,
				fmt.Sprintf("product %s not found in shop %s", productID, shopID))
			return
		}
		h.respondShopError(w, shopID, err)
		return
	}
	httpx.RespondJSON(w, http.StatusOK, product)
}

func (h *Handler) respondShopError(w http.ResponseWriter, shopID string, err error) {
	if errors.Is(err, ErrShopNotFound) {
		httpx.RespondMessage(w, http.StatusNotFound,
			fmt.Sprintf("shop %s not found", shopID))
		return
	}
	h.logger.Error("catalog lookup failed", "shop_id", shopID, "error", err)
	httpx.RespondMessage(w, http.StatusInternalServerError, "Could not retrieve catalog")
}
