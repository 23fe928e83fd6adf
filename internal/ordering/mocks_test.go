package ordering

import (
	"context"

	"github.com/brewclub/storefront/internal/catalog"
)

type mockCatalogRepo struct {
	ShopsFunc      func(ctx context.Context) ([]catalog.Shop, error)
	ShopFunc       func(ctx context.Context, shopID string) (*catalog.Shop, error)
	CategoriesFunc func(ctx context.Context, shopID string) ([]catalog.Category, error)
	ProductsFunc   func(ctx context.Context, shopID, categoryID string) ([]catalog.Product, error)
	ProductFunc    func(ctx context.Context, shopID, productID string) (*catalog.Product, error)
	BannersFunc    func(ctx context.Context) ([]catalog.Banner, error)
}

func (m *mockCatalogRepo) Shops(ctx context.Context) ([]catalog.Shop, error) {
	return m.ShopsFunc(ctx)
}

func (m *mockCatalogRepo) Shop(ctx context.Context, shopID string) (*catalog.Shop, error) {
	return m.ShopFunc(ctx, shopID)
}

func (m *mockCatalogRepo) Categories(ctx context.Context, shopID string) ([]catalog.Category, error) {
	return m.CategoriesFunc(ctx, shopID)
}

func (m *mockCatalogRepo) Products(ctx context.Context, shopID, categoryID string) ([]catalog.Product, error) {
	return m.ProductsFunc(ctx, shopID, categoryID)
}

func (m *mockCatalogRepo) Product(ctx context.Context, shopID, productID string) (*catalog.Product, error) {
	return m.ProductFunc(ctx, shopID, productID)
}

func (m *mockCatalogRepo) Banners(ctx context.Context) ([]catalog.Banner, error) {
	return m.BannersFunc(ctx)
}

type mockOrderRepo struct {
	CreateFunc     func(ctx context.Context, order *Order) error
	GetFunc        func(ctx context.Context, id string) (*Order, error)
	ListByShopFunc func(ctx context.Context, shopID string) ([]*Order, error)

	created []*Order
}

func (m *mockOrderRepo) Create(ctx context.Context, order *Order) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, order)
	}
	m.created = append(m.created, order)
	return nil
}

func (m *mockOrderRepo) Get(ctx context.Context, id string) (*Order, error) {
	return m.GetFunc(ctx, id)
}

func (m *mockOrderRepo) ListByShop(ctx context.Context, shopID string) ([]*Order, error) {
	return m.ListByShopFunc(ctx, shopID)
}

type mockPublisher struct {
	PublishFunc func(ctx context.Context, topic string, msg []byte) error

	published map[string][][]byte
}

func (m *mockPublisher) Publish(ctx context.Context, topic string, msg []byte) error {
	if m.PublishFunc != nil {
		return m.PublishFunc(ctx, topic, msg)
	}
	if m.published == nil {
		m.published = make(map[string][][]byte)
	}
	m.published[topic] = append(m.published[topic], msg)
	return nil
}
