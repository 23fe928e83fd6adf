package cart

import (
	"sort"
	"strings"
)

// LineItem is one configured-product-and-quantity entry. ProductID is a
// reference, not ownership: the product may vanish from the catalog while the
// item is still persisted.
type LineItem struct {
	CartID         string   `json:"cartId"`
	ProductID      string   `json:"productId"`
	Quantity       int      `json:"quantity"`
	SelectedAddons []string `json:"selectedAddons,omitempty"`
}

// addonKey builds an order-independent representation of an addon selection.
// Two line items with the same product and the same addon key are the same
// configuration and must be merged, never kept side by side.
func addonKey(selectedAddons []string) string {
	if len(selectedAddons) == 0 {
		return ""
	}
	ids := make([]string, 0, len(selectedAddons))
	seen := make(map[string]bool, len(selectedAddons))
	for _, id := range selectedAddons {
		if seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return strings.Join(ids, ",")
}
