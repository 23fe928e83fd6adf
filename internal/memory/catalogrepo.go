package memory

import (
	"context"
	"sync"

	"github.com/brewclub/storefront/internal/catalog"
)

// shopMenu is one tenant's isolated slice of the catalog.
type shopMenu struct {
	categories []catalog.Category
	products   []catalog.Product
}

// CatalogRepo is the in-memory reference catalog. Each tenant owns a fully
// separate menu; lookups never cross tenants and never fall back to another
// tenant's data.
type CatalogRepo struct {
	mu      sync.RWMutex
	shops   []catalog.Shop
	menus   map[string]shopMenu
	banners []catalog.Banner
}

// NewCatalogRepo returns a repo pre-populated with the demo catalog.
func NewCatalogRepo() *CatalogRepo {
	r := &CatalogRepo{
		menus: make(map[string]shopMenu),
	}
	seedCatalog(r)
	return r
}

func (r *CatalogRepo) Shops(ctx context.Context) ([]catalog.Shop, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	shops := make([]catalog.Shop, len(r.shops))
	copy(shops, r.shops)
	return shops, nil
}

func (r *CatalogRepo) Shop(ctx context.Context, shopID string) (*catalog.Shop, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.shops {
		if r.shops[i].ID == shopID {
			shop := r.shops[i]
			return &shop, nil
		}
	}
	return nil, catalog.ErrShopNotFound
}

func (r *CatalogRepo) Categories(ctx context.Context, shopID string) ([]catalog.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	menu, ok := r.menus[shopID]
	if !ok {
		return nil, catalog.ErrShopNotFound
	}
	categories := make([]catalog.Category, len(menu.categories))
	copy(categories, menu.categories)
	return categories, nil
}

func (r *CatalogRepo) Products(ctx context.Context, shopID, categoryID string) ([]catalog.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	menu, ok := r.menus[shopID]
	if !ok {
		return nil, catalog.ErrShopNotFound
	}

	products := make([]catalog.Product, 0, len(menu.products))
	for _, p := range menu.products {
		if categoryID != "" && p.CategoryID != categoryID {
			continue
		}
		products = append(products, p)
	}
	return products, nil
}

func (r *CatalogRepo) Product(ctx context.Context, shopID, productID string) (*catalog.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	menu, ok := r.menus[shopID]
	if !ok {
		return nil, catalog.ErrShopNotFound
	}
	for i := range menu.products {
		if menu.products[i].ID == productID {
			product := menu.products[i]
			return &product, nil
		}
	}
	return nil, catalog.ErrProductNotFound
}

func (r *CatalogRepo) Banners(ctx context.Context) ([]catalog.Banner, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	banners := make([]catalog.Banner, len(r.banners))
	copy(banners, r.banners)
	return banners, nil
}
