package cart

import (
	"context"
	"testing"

	"github.com/brewclub/storefront/internal/catalog"
)

func catalogOf(ids ...string) []catalog.Product {
	products := make([]catalog.Product, 0, len(ids))
	for _, id := range ids {
		products = append(products, catalog.Product{ID: id, Price: 1000})
	}
	return products
}

func TestSyncWithCatalogRemovesGhostItems(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)
	for _, id := range []string{"prod_1", "prod_2", "prod_3"} {
		product := catalog.Product{ID: id, Price: 1000}
		if err := s.AddItem(ctx, "shop_1", product, 1, nil); err != nil {
			t.Fatalf("AddItem() error = %v", err)
		}
	}

	removed, err := s.SyncWithCatalog(ctx, catalogOf("prod_1", "prod_3"), false)
	if err != nil {
		t.Fatalf("SyncWithCatalog() error = %v", err)
	}
	if removed != 1 {
		t.Errorf("SyncWithCatalog() removed = %d, want 1", removed)
	}

	items := s.Items()
	if len(items) != 2 {
		t.Fatalf("Items() len = %d, want 2", len(items))
	}
	// Surviving items keep their insertion order.
	if items[0].ProductID != "prod_1" || items[1].ProductID != "prod_3" {
		t.Errorf("Items() order = [%s, %s], want [prod_1, prod_3]",
			items[0].ProductID, items[1].ProductID)
	}

	// Second run with unchanged inputs is a no-op.
	removed, err = s.SyncWithCatalog(ctx, catalogOf("prod_1", "prod_3"), false)
	if err != nil {
		t.Fatalf("SyncWithCatalog() second run error = %v", err)
	}
	if removed != 0 {
		t.Errorf("SyncWithCatalog() second run removed = %d, want 0", removed)
	}
	if len(s.Items()) != 2 {
		t.Errorf("Items() len after second run = %d, want 2", len(s.Items()))
	}
}

func TestSyncWithCatalogSkipsWhileLoading(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)
	if err := s.AddItem(ctx, "shop_1", catalog.Product{ID: "prod_1", Price: 1000}, 1, nil); err != nil {
		t.Fatalf("AddItem() error = %v", err)
	}

	// A loading catalog, even an empty one, must not evict anything.
	removed, err := s.SyncWithCatalog(ctx, nil, true)
	if err != nil {
		t.Fatalf("SyncWithCatalog() error = %v", err)
	}
	if removed != 0 || len(s.Items()) != 1 {
		t.Error("SyncWithCatalog() evicted items against a loading catalog")
	}
}

func TestSyncWithCatalogSkipsEmptyCatalog(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)
	if err := s.AddItem(ctx, "shop_1", catalog.Product{ID: "prod_1", Price: 1000}, 1, nil); err != nil {
		t.Fatalf("AddItem() error = %v", err)
	}

	removed, err := s.SyncWithCatalog(ctx, []catalog.Product{}, false)
	if err != nil {
		t.Fatalf("SyncWithCatalog() error = %v", err)
	}
	if removed != 0 || len(s.Items()) != 1 {
		t.Error("SyncWithCatalog() evicted items against an empty placeholder catalog")
	}
}
