package event

import "time"

// TopicOrderCreated carries one OrderCreated per successfully stored order.
const TopicOrderCreated = "orders.created"

// OrderCreated notifies downstream consumers (kitchen displays, analytics)
// that a tenant accepted an order. Amounts are minor currency units.
type OrderCreated struct {
	OrderID     string    `json:"order_id"`
	ShopID      string    `json:"shop_id"`
	Type        string    `json:"type"`
	TotalAmount int64     `json:"total_amount"`
	CreatedAt   time.Time `json:"created_at"`
}
