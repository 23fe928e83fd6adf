package ordering

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/appetiteclub/apt"
	"github.com/appetiteclub/apt/events"
	"github.com/brewclub/storefront/internal/catalog"
	"github.com/brewclub/storefront/internal/httpx"
	"github.com/brewclub/storefront/internal/tenant"
	"github.com/brewclub/storefront/pkg/event"
	"github.com/go-chi/chi/v5"
)

const MaxBodyBytes = 1 << 20

// Handler serves order creation for the storefront API.
type Handler struct {
	logger    apt.Logger
	config    *apt.Config
	catalog   catalog.Repo
	orderRepo OrderRepo
	publisher events.Publisher
}

type HandlerDeps struct {
	Catalog   catalog.Repo
	OrderRepo OrderRepo
	Publisher events.Publisher
}

func NewHandler(hd HandlerDeps, config *apt.Config, logger apt.Logger) *Handler {
	if logger == nil {
		logger = apt.NewNoopLogger()
	}
	return &Handler{
		logger:    logger,
		config:    config,
		catalog:   hd.Catalog,
		orderRepo: hd.OrderRepo,
		publisher: hd.Publisher,
	}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(tenant.Require)
		r.Post("/api/v1/orders", h.CreateOrder)
	})
}

func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	shopID := tenant.ShopIDFrom(ctx)

	payload, ok := h.decodePayload(w, r)
	if !ok {
		return
	}

	if verrs := ValidatePayload(payload); len(verrs) > 0 {
		h.logger.Debug("invalid order payload", "field", verrs[0].Field)
		httpx.RespondMessage(w, http.StatusBadRequest, verrs[0].Error())
		return
	}

	// The tenant header must match the tenant the payload was built for.
	// A mismatch means the client raced a shop switch; rejecting here is what
	// keeps an order from leaking into the wrong tenant.
	if payload.ShopID != shopID {
		httpx.RespondMessage(w, http.StatusBadRequest,
			"payload shopId does not match X-Shop-Id header")
		return
	}

	products, err := h.catalog.Products(ctx, shopID, "")
	if err != nil {
		if errors.Is(err, catalog.ErrShopNotFound) {
			httpx.RespondMessage(w, http.StatusNotFound, "shop "+shopID+" not found")
			return
		}
		h.logger.Error("cannot load catalog for pricing", "shop_id", shopID, "error", err)
		httpx.RespondMessage(w, http.StatusInternalServerError, "Could not create order")
		return
	}

	total, err := PriceItems(payload.Items, products, shopID)
	if err != nil {
		var unknown *UnknownProductError
		if errors.As(err, &unknown) {
			h.logger.Info("order references unknown product",
				"shop_id", shopID, "product_id", unknown.ProductID)
			httpx.RespondMessage(w, http.StatusBadRequest, unknown.Error())
			return
		}
		h.logger.Error("cannot price order", "shop_id", shopID, "error", err)
		httpx.RespondMessage(w, http.StatusInternalServerError, "Could not create order")
		return
	}

	order := NewOrder()
	order.ShopID = shopID
	order.Type = payload.Type
	order.Items = payload.Items
	order.TotalAmount = total
	order.Comment = payload.Comment
	order.DeliveryAddress = payload.DeliveryAddress

	if err := h.orderRepo.Create(ctx, order); err != nil {
		h.logger.Error("cannot store order", "error", err)
		httpx.RespondMessage(w, http.StatusInternalServerError, "Could not create order")
		return
	}

	if h.publisher != nil {
		h.publishOrderCreated(r, order)
	}

	httpx.RespondJSON(w, http.StatusCreated, order)
}

func (h *Handler) decodePayload(w http.ResponseWriter, r *http.Request) (*Payload, bool) {
	body, err := io.ReadAll(io.LimitReader(r.Body, MaxBodyBytes))
	if err != nil {
		h.logger.Debug("cannot read order body", "error", err)
		httpx.RespondMessage(w, http.StatusBadRequest, "Cannot read request body")
		return nil, false
	}

	var payload Payload
	if err := json.Unmarshal(body, &payload); err != nil {
		h.logger.Debug("cannot decode order payload", "error", err)
		httpx.RespondMessage(w, http.StatusBadRequest, "Invalid order payload")
		return nil, false
	}
	return &payload, true
}

func (h *Handler) publishOrderCreated(r *http.Request, order *Order) {
	evt := event.OrderCreated{
		OrderID:     order.ID,
		ShopID:      order.ShopID,
		Type:        string(order.Type),
		TotalAmount: order.TotalAmount,
		CreatedAt:   order.CreatedAt,
	}
	msg, err := json.Marshal(evt)
	if err != nil {
		h.logger.Error("cannot marshal order event", "order_id", order.ID, "error", err)
		return
	}
	if err := h.publisher.Publish(r.Context(), event.TopicOrderCreated, msg); err != nil {
		// Event delivery is best effort; the order itself is already stored.
		h.logger.Error("cannot publish order event", "order_id", order.ID, "error", err)
	}
}
