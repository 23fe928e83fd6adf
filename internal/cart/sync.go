package cart

import (
	"context"

	"github.com/brewclub/storefront/internal/catalog"
)

// SyncWithCatalog evicts ghost items: line items whose product is no longer
// present in the active shop's catalog. Valid items keep their order. Runs
// after every catalog load and is idempotent.
//
// While the catalog is still loading the cart is left alone; an empty
// placeholder catalog must not evict anything.
func (s *Store) SyncWithCatalog(ctx context.Context, products []catalog.Product, loading bool) (int, error) {
	if loading || len(products) == 0 {
		return 0, nil
	}

	valid := make(map[string]bool, len(products))
	for _, p := range products {
		valid[p.ID] = true
	}

	s.mu.Lock()
	if len(s.items) == 0 {
		s.mu.Unlock()
		return 0, nil
	}

	kept := s.items[:0]
	removed := 0
	for _, item := range s.items {
		if valid[item.ProductID] {
			kept = append(kept, item)
			continue
		}
		removed++
	}
	s.items = kept
	s.mu.Unlock()

	if removed == 0 {
		return 0, nil
	}
	s.logger.Info("removed ghost cart items", "removed", removed)
	return removed, s.persist(ctx)
}
