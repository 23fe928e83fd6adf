package ordering

import (
	"fmt"

	"github.com/brewclub/storefront/internal/catalog"
)

// UnknownProductError marks a line item referencing a product absent from the
// tenant's catalog. It is the defense against price tampering and cross-tenant
// product injection, so the offending id is part of the message.
type UnknownProductError struct {
	ProductID string
	ShopID    string
}

func (e *UnknownProductError) Error() string {
	return fmt.Sprintf("product %s is not available in shop %s", e.ProductID, e.ShopID)
}

// PriceItems recomputes the order total from the tenant's own catalog prices.
// Addon ids the product does not carry contribute nothing; an unknown product
// id fails the whole order.
func PriceItems(items []Item, products []catalog.Product, shopID string) (int64, error) {
	byID := make(map[string]*catalog.Product, len(products))
	for i := range products {
		byID[products[i].ID] = &products[i]
	}

	var total int64
	for _, item := range items {
		product, ok := byID[item.ProductID]
		if !ok {
			return 0, &UnknownProductError{ProductID: item.ProductID, ShopID: shopID}
		}

		unit := product.Price
		for _, addonID := range item.SelectedAddons {
			if addon := product.Addon(addonID); addon != nil {
				unit += addon.Price
			}
		}
		total += unit * int64(item.Quantity)
	}
	return total, nil
}
