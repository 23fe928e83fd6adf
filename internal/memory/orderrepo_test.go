package memory

import (
	"context"
	"testing"

	"github.com/brewclub/storefront/internal/ordering"
)

func newOrder(shopID string) *ordering.Order {
	order := ordering.NewOrder()
	order.ShopID = shopID
	order.Items = []ordering.Item{{ProductID: "prod_cap", Quantity: 1}}
	order.TotalAmount = 18000
	return order
}

func TestOrderRepoCreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderRepo()
	order := newOrder("shop_1")

	if err := repo.Create(ctx, order); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	// A duplicate id is rejected.
	if err := repo.Create(ctx, order); err == nil {
		t.Error("Create() with duplicate id returned no error")
	}

	got, err := repo.Get(ctx, order.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.ID != order.ID || got.TotalAmount != 18000 {
		t.Errorf("Get() = %+v, want stored order", got)
	}

	if _, err := repo.Get(ctx, "ord_missing"); err == nil {
		t.Error("Get() with unknown id returned no error")
	}
}

func TestOrderRepoListByShop(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderRepo()

	first := newOrder("shop_1")
	second := newOrder("shop_2")
	third := newOrder("shop_1")
	for _, order := range []*ordering.Order{first, second, third} {
		if err := repo.Create(ctx, order); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}

	orders, err := repo.ListByShop(ctx, "shop_1")
	if err != nil {
		t.Fatalf("ListByShop() error = %v", err)
	}
	if len(orders) != 2 {
		t.Fatalf("ListByShop() len = %d, want 2", len(orders))
	}
	// Insertion order is preserved.
	if orders[0].ID != first.ID || orders[1].ID != third.ID {
		t.Error("ListByShop() did not preserve insertion order")
	}
}
