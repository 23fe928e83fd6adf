package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/brewclub/storefront/internal/ordering"
)

// OrderRepo keeps accepted orders in memory. It backs the reference backend
// when no MongoDB is configured.
type OrderRepo struct {
	mu     sync.RWMutex
	orders map[string]*ordering.Order
	seq    []string
}

func NewOrderRepo() *OrderRepo {
	return &OrderRepo{
		orders: make(map[string]*ordering.Order),
	}
}

func (r *OrderRepo) Create(ctx context.Context, order *ordering.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.orders[order.ID]; exists {
		return fmt.Errorf("order %s already exists", order.ID)
	}
	stored := *order
	r.orders[order.ID] = &stored
	r.seq = append(r.seq, order.ID)
	return nil
}

func (r *OrderRepo) Get(ctx context.Context, id string) (*ordering.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	order, ok := r.orders[id]
	if !ok {
		return nil, fmt.Errorf("order %s not found", id)
	}
	found := *order
	return &found, nil
}

func (r *OrderRepo) ListByShop(ctx context.Context, shopID string) ([]*ordering.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var orders []*ordering.Order
	for _, id := range r.seq {
		if order := r.orders[id]; order.ShopID == shopID {
			found := *order
			orders = append(orders, &found)
		}
	}
	return orders, nil
}
