// Package cart implements the persisted shopping cart and the rules that keep
// it scoped to exactly one shop across reloads, shop switches and stale
// product references.
package cart

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/appetiteclub/apt"
	"github.com/brewclub/storefront/internal/catalog"
	"github.com/brewclub/storefront/internal/storage"
	"github.com/google/uuid"
)

type DiningOption string

const (
	DineIn  DiningOption = "dine-in"
	Takeout DiningOption = "takeout"
)

const (
	storageKey = "cart"

	// schemaVersion 2 added diningOption. Version 1 records migrate with the
	// dine-in default; anything else is discarded.
	schemaVersion = 2
)

type record struct {
	Version      int          `json:"version"`
	ShopID       string       `json:"shopId,omitempty"`
	DiningOption DiningOption `json:"diningOption,omitempty"`
	Items        []LineItem   `json:"items"`
}

// Store is the persisted cart. All mutations run under one lock: a mutation
// completes fully, including its tenant reconciliation, before the next one
// observes the cart.
//
// The active shop id is always an argument supplied by the caller at
// invocation time, never read from ambient state, so the append-vs-evict
// decision is consistent with the moment the mutation executes.
type Store struct {
	mu     sync.Mutex
	store  storage.Store
	logger apt.Logger

	shopID       string
	diningOption DiningOption
	items        []LineItem
}

func NewStore(st storage.Store, logger apt.Logger) *Store {
	if logger == nil {
		logger = apt.NewNoopLogger()
	}
	return &Store{
		store:        st,
		logger:       logger,
		diningOption: DineIn,
	}
}

// Load rehydrates raw state from storage. It performs no session check; call
// ValidateSession with the active shop id before anything reads the cart.
func (s *Store) Load(ctx context.Context) error {
	data, ok, err := s.store.Load(ctx, storageKey)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		s.logger.Debug("discarding unreadable cart record", "error", err)
		return nil
	}

	switch rec.Version {
	case schemaVersion:
	case 1:
		// v1 predates diningOption.
		rec.DiningOption = DineIn
	default:
		s.logger.Debug("discarding cart record with unknown version", "version", rec.Version)
		return nil
	}

	if rec.DiningOption != DineIn && rec.DiningOption != Takeout {
		rec.DiningOption = DineIn
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.shopID = rec.ShopID
	s.diningOption = rec.DiningOption
	s.items = rec.Items
	return nil
}

// ValidateSession reconciles a rehydrated cart with the active shop. A cart
// persisted for another tenant is cleared and adopts the active shop id.
// Must run once after Load, before any UI reads the cart.
func (s *Store) ValidateSession(ctx context.Context, activeShopID string) error {
	s.mu.Lock()
	changed := s.reconcileTenantLocked(activeShopID)
	s.mu.Unlock()

	if !changed {
		return nil
	}
	return s.persist(ctx)
}

// AddItem puts a configured product into the cart. The tenant reconciliation
// runs first: a cart owned by another shop is evicted before the new item is
// considered. Items with the same product and the same addon set merge into
// one line with summed quantity.
func (s *Store) AddItem(ctx context.Context, activeShopID string, product catalog.Product, quantity int, selectedAddons []string) error {
	if quantity < 1 {
		quantity = 1
	}

	s.mu.Lock()
	s.reconcileTenantLocked(activeShopID)

	key := addonKey(selectedAddons)
	merged := false
	for i := range s.items {
		if s.items[i].ProductID == product.ID && addonKey(s.items[i].SelectedAddons) == key {
			s.items[i].Quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		s.items = append(s.items, LineItem{
			CartID:         uuid.NewString(),
			ProductID:      product.ID,
			Quantity:       quantity,
			SelectedAddons: append([]string(nil), selectedAddons...),
		})
	}
	s.mu.Unlock()

	return s.persist(ctx)
}

// RemoveItem drops the matching line item; unknown cart ids are a no-op.
func (s *Store) RemoveItem(ctx context.Context, cartID string) error {
	s.mu.Lock()
	kept := s.items[:0]
	for _, item := range s.items {
		if item.CartID != cartID {
			kept = append(kept, item)
		}
	}
	s.items = kept
	s.mu.Unlock()

	return s.persist(ctx)
}

// UpdateQuantity applies a delta, clamped at zero. A line item driven to zero
// is removed entirely, never kept around empty.
func (s *Store) UpdateQuantity(ctx context.Context, cartID string, delta int) error {
	s.mu.Lock()
	kept := s.items[:0]
	for _, item := range s.items {
		if item.CartID == cartID {
			item.Quantity += delta
			if item.Quantity < 0 {
				item.Quantity = 0
			}
			if item.Quantity == 0 {
				continue
			}
		}
		kept = append(kept, item)
	}
	s.items = kept
	s.mu.Unlock()

	return s.persist(ctx)
}

// Clear empties the cart. The shop id is retained; the next AddItem adopts
// the active shop anyway.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	s.items = nil
	s.mu.Unlock()

	return s.persist(ctx)
}

// SetDiningOption switches between dine-in and takeout.
func (s *Store) SetDiningOption(ctx context.Context, option DiningOption) error {
	if option != DineIn && option != Takeout {
		option = DineIn
	}
	s.mu.Lock()
	s.diningOption = option
	s.mu.Unlock()

	return s.persist(ctx)
}

// Items returns a copy of the line items in insertion order.
func (s *Store) Items() []LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := make([]LineItem, len(s.items))
	copy(items, s.items)
	return items
}

// ShopID returns the tenant the cart currently belongs to, empty until the
// first item is added.
func (s *Store) ShopID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.shopID
}

func (s *Store) DiningOption() DiningOption {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.diningOption
}

// TotalItems is the sum of quantities, derived, never stored.
func (s *Store) TotalItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, item := range s.items {
		total += item.Quantity
	}
	return total
}

// reconcileTenantLocked enforces the single-tenant invariant: a cart owned by
// a different shop than the active one loses all items before anything else
// happens. Reports whether state changed.
func (s *Store) reconcileTenantLocked(activeShopID string) bool {
	if activeShopID == "" || s.shopID == activeShopID {
		return false
	}
	if s.shopID != "" {
		if len(s.items) > 0 {
			s.logger.Info("evicting cart items after shop switch",
				"previous_shop_id", s.shopID, "shop_id", activeShopID, "evicted", len(s.items))
		}
		s.items = nil
	}
	s.shopID = activeShopID
	return true
}

func (s *Store) persist(ctx context.Context) error {
	s.mu.Lock()
	rec := record{
		Version:      schemaVersion,
		ShopID:       s.shopID,
		DiningOption: s.diningOption,
		Items:        append([]LineItem(nil), s.items...),
	}
	s.mu.Unlock()

	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return s.store.Save(ctx, storageKey, data)
}
