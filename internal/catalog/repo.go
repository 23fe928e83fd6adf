package catalog

import (
	"context"
	"errors"
)

// ErrShopNotFound marks an unknown tenant id. Handlers translate it to a 404;
// it is never papered over with another tenant's data.
var ErrShopNotFound = errors.New("shop not found")

// ErrProductNotFound marks a product id absent from the tenant's catalog.
var ErrProductNotFound = errors.New("product not found")

// Repo provides read access to the per-tenant catalog.
type Repo interface {
	Shops(ctx context.Context) ([]Shop, error)
	Shop(ctx context.Context, shopID string) (*Shop, error)
	Categories(ctx context.Context, shopID string) ([]Category, error)
	Products(ctx context.Context, shopID, categoryID string) ([]Product, error)
	Product(ctx context.Context, shopID, productID string) (*Product, error)
	Banners(ctx context.Context) ([]Banner, error)
}
