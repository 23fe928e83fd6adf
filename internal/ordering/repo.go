package ordering

import "context"

type OrderRepo interface {
	Create(ctx context.Context, order *Order) error
	Get(ctx context.Context, id string) (*Order, error)
	ListByShop(ctx context.Context, shopID string) ([]*Order, error)
}
