// Package session holds the active shop context: which tenant the client is
// currently browsing, and the delivery address when in delivery mode. It is
// the single source of truth the cart consults to detect tenant changes.
package session

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/appetiteclub/apt"
	"github.com/brewclub/storefront/internal/storage"
	"github.com/brewclub/storefront/internal/tenant"
)

const (
	storageKey    = "shop-session"
	schemaVersion = 1
)

type record struct {
	Version         int    `json:"version"`
	CurrentShopID   string `json:"currentShopId"`
	DeliveryAddress string `json:"deliveryAddress,omitempty"`
}

// Store is the persisted shop session. Reads are synchronous and never block
// on storage; only mutations write through.
type Store struct {
	mu     sync.RWMutex
	store  storage.Store
	logger apt.Logger

	currentShopID   string
	deliveryAddress string
}

func NewStore(st storage.Store, logger apt.Logger) *Store {
	if logger == nil {
		logger = apt.NewNoopLogger()
	}
	return &Store{
		store:  st,
		logger: logger,
		// A fresh session starts at the default tenant so the strict API
		// client works out of the box.
		currentShopID: tenant.DefaultShopID,
	}
}

// Load rehydrates the session from storage. Records with an unknown schema
// version are discarded, never trusted.
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
		s.logger.Debug("discarding unreadable session record", "error", err)
		return nil
	}
	if rec.Version != schemaVersion {
		s.logger.Debug("discarding session record with unknown version", "version", rec.Version)
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if rec.CurrentShopID != "" {
		s.currentShopID = rec.CurrentShopID
	}
	s.deliveryAddress = rec.DeliveryAddress
	return nil
}

// CurrentShopID returns the active tenant. Validity of the id is established
// by the catalog fetch succeeding, not here.
func (s *Store) CurrentShopID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currentShopID
}

// DeliveryAddress returns the delivery address, empty when not in delivery
// mode.
func (s *Store) DeliveryAddress() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.deliveryAddress
}

// SetShopID switches the active tenant and leaves delivery mode.
func (s *Store) SetShopID(ctx context.Context, shopID string) error {
	s.mu.Lock()
	s.currentShopID = shopID
	s.deliveryAddress = ""
	s.mu.Unlock()
	return s.persist(ctx)
}

// SetDeliveryAddress enters delivery mode: a non-empty address activates the
// reserved delivery tenant. An empty address leaves delivery mode and falls
// back to the default tenant.
func (s *Store) SetDeliveryAddress(ctx context.Context, address string) error {
	s.mu.Lock()
	s.deliveryAddress = address
	if address != "" {
		s.currentShopID = tenant.DeliveryShopID
	} else if s.currentShopID == tenant.DeliveryShopID {
		s.currentShopID = tenant.DefaultShopID
	}
	s.mu.Unlock()
	return s.persist(ctx)
}

func (s *Store) persist(ctx context.Context) error {
	s.mu.RLock()
	rec := record{
		Version:         schemaVersion,
		CurrentShopID:   s.currentShopID,
		DeliveryAddress: s.deliveryAddress,
	}
	s.mu.RUnlock()

	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return s.store.Save(ctx, storageKey, data)
}
