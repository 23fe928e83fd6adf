// Package checkout turns the current cart and shop session into an order
// submission, and owns the post-success cleanup.
package checkout

import (
	"context"
	"errors"

	"github.com/appetiteclub/apt"
	"github.com/brewclub/storefront/internal/cart"
	"github.com/brewclub/storefront/internal/ordering"
	"github.com/brewclub/storefront/internal/tenant"
)

// ErrEmptyCart rejects a submission with nothing to order.
var ErrEmptyCart = errors.New("cart is empty")

// ErrAbandoned marks a submission whose caller went away before the backend
// answered. The order may well exist server-side; the local cart is left
// untouched so the user can see what they ordered.
var ErrAbandoned = errors.New("order submission abandoned by caller")

// Payment choices offered by the UI layer.
const (
	PayOnline  = "online"  // card, paid in the app
	PayOffline = "offline" // card or cash at pickup
	PayCash    = "cash"
)

// Cart is the slice of the cart store the pipeline needs.
type Cart interface {
	Items() []cart.LineItem
	DiningOption() cart.DiningOption
	Clear(ctx context.Context) error
}

// Session is the slice of the shop session the pipeline needs.
type Session interface {
	CurrentShopID() string
	DeliveryAddress() string
}

// OrderAPI submits order payloads.
type OrderAPI interface {
	CreateOrder(ctx context.Context, shopID string, payload ordering.Payload) (*ordering.Order, error)
}

// Params describes one submission attempt.
type Params struct {
	TimeSlot      string
	PaymentMethod string
	Comment       string
	// OnSuccess runs after the backend confirmed the order and before the
	// cart is cleared. Typically navigates to the confirmation view.
	OnSuccess func(*ordering.Order)
}

// Service is the order submission pipeline.
type Service struct {
	api     OrderAPI
	cart    Cart
	session Session
	logger  apt.Logger
}

func NewService(api OrderAPI, c Cart, s Session, logger apt.Logger) *Service {
	if logger == nil {
		logger = apt.NewNoopLogger()
	}
	return &Service{
		api:     api,
		cart:    c,
		session: s,
		logger:  logger,
	}
}

// Submit builds the payload from cart and session state, submits it scoped to
// the shop it was built for, and clears the cart only on confirmed success.
// Any failure leaves the cart intact; retrying is the caller's decision.
func (s *Service) Submit(ctx context.Context, params Params) (*ordering.Order, error) {
	lineItems := s.cart.Items()
	if len(lineItems) == 0 {
		return nil, ErrEmptyCart
	}

	// The backend only knows product references; client cart ids stay local.
	items := make([]ordering.Item, 0, len(lineItems))
	for _, li := range lineItems {
		items = append(items, ordering.Item{
			ProductID:      li.ProductID,
			Quantity:       li.Quantity,
			SelectedAddons: li.SelectedAddons,
		})
	}

	shopID := s.session.CurrentShopID()
	if shopID == "" {
		shopID = tenant.DefaultShopID
	}

	deliveryAddress := s.session.DeliveryAddress()
	orderType := ordering.TypeDelivery
	if deliveryAddress == "" {
		if s.cart.DiningOption() == cart.DineIn {
			orderType = ordering.TypeDineIn
		} else {
			orderType = ordering.TypeTakeout
		}
	}

	comment := params.Comment
	if comment == "" {
		comment = "Storefront order"
	}

	payload := ordering.Payload{
		ShopID:          shopID,
		Type:            orderType,
		PaymentMethod:   MapPaymentMethod(params.PaymentMethod),
		RequestedTime:   params.TimeSlot,
		Items:           items,
		Comment:         comment,
		DeliveryAddress: deliveryAddress,
	}

	order, err := s.api.CreateOrder(ctx, shopID, payload)
	if err != nil {
		s.logger.Info("order submission failed", "shop_id", shopID, "error", err)
		return nil, err
	}

	// Liveness guard: a submission that resolved after the caller navigated
	// away must not retroactively clear the cart.
	if ctx.Err() != nil {
		s.logger.Info("order confirmed after caller went away; keeping cart",
			"order_id", order.ID)
		return order, ErrAbandoned
	}

	if params.OnSuccess != nil {
		params.OnSuccess(order)
	}

	if err := s.cart.Clear(ctx); err != nil {
		// The order exists; a failed cart write must not look like a failed
		// submission.
		s.logger.Error("cannot clear cart after order", "order_id", order.ID, "error", err)
	}

	s.logger.Info("order created", "order_id", order.ID, "shop_id", order.ShopID,
		"total_amount", order.TotalAmount)
	return order, nil
}

// MapPaymentMethod maps the UI payment choice to the order payload enum.
// Unrecognized values deliberately fall back to online card payment rather
// than failing the submission.
func MapPaymentMethod(choice string) ordering.PaymentMethod {
	switch choice {
	case PayOnline:
		return ordering.PaymentCardOnline
	case PayOffline:
		return ordering.PaymentCardOffline
	case PayCash:
		return ordering.PaymentCash
	default:
		return ordering.PaymentCardOnline
	}
}
