package ordering

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusConfirmed Status = "CONFIRMED"
	StatusCompleted Status = "COMPLETED"
	StatusCancelled Status = "CANCELLED"
)

type Type string

const (
	TypeDineIn   Type = "DINE_IN"
	TypeTakeout  Type = "TAKEOUT"
	TypeDelivery Type = "DELIVERY"
)

type PaymentMethod string

const (
	PaymentCardOnline  PaymentMethod = "CARD_ONLINE"
	PaymentCardOffline PaymentMethod = "CARD_OFFLINE"
	PaymentCash        PaymentMethod = "CASH"
)

// Item is one ordered product configuration. It carries no client-side cart
// id; the backend only knows product references.
type Item struct {
	ProductID      string   `json:"productId" bson:"product_id"`
	Quantity       int      `json:"quantity" bson:"quantity"`
	SelectedAddons []string `json:"selectedAddons,omitempty" bson:"selected_addons,omitempty"`
}

// Order is created server-side from a payload and is immutable once returned.
// TotalAmount is always recomputed from the tenant's own catalog; a
// client-supplied total is never trusted.
type Order struct {
	ID              string    `json:"id" bson:"_id"`
	ShopID          string    `json:"shopId" bson:"shop_id"`
	Status          Status    `json:"status" bson:"status"`
	Type            Type      `json:"type,omitempty" bson:"type,omitempty"`
	Items           []Item    `json:"items" bson:"items"`
	TotalAmount     int64     `json:"totalAmount" bson:"total_amount"`
	Comment         string    `json:"comment,omitempty" bson:"comment,omitempty"`
	DeliveryAddress string    `json:"deliveryAddress,omitempty" bson:"delivery_address,omitempty"`
	CreatedAt       time.Time `json:"createdAt" bson:"created_at"`
}

func NewOrder() *Order {
	return &Order{
		ID:        fmt.Sprintf("ord_%s", uuid.NewString()),
		Status:    StatusPending,
		CreatedAt: time.Now().UTC(),
	}
}

// Validate checks the order against its wire contract.
func (o *Order) Validate() error {
	if o.ID == "" {
		return fmt.Errorf("id: is required")
	}
	if o.ShopID == "" {
		return fmt.Errorf("shopId: is required")
	}
	switch o.Status {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
	default:
		return fmt.Errorf("status: unknown value %q", o.Status)
	}
	if o.Type != "" {
		switch o.Type {
		case TypeDineIn, TypeTakeout, TypeDelivery:
		default:
			return fmt.Errorf("type: unknown value %q", o.Type)
		}
	}
	if len(o.Items) == 0 {
		return fmt.Errorf("items: at least one item is required")
	}
	for i, item := range o.Items {
		if item.ProductID == "" {
			return fmt.Errorf("items[%d].productId: is required", i)
		}
		if item.Quantity < 1 {
			return fmt.Errorf("items[%d].quantity: must be at least 1", i)
		}
	}
	if o.TotalAmount < 0 {
		return fmt.Errorf("totalAmount: must not be negative")
	}
	return nil
}
