package cart

import (
	"fmt"

	"github.com/brewclub/storefront/internal/catalog"
)

// Pricing helpers are pure and integer-only. All amounts are minor currency
// units; nothing in the money path touches floating point.

// UnitPrice is the product price plus every selected addon the product
// actually carries. Addon ids the product does not know contribute zero;
// stale references are a normal state, not an error.
func UnitPrice(product catalog.Product, selectedAddons []string) int64 {
	price := product.Price
	for _, addonID := range selectedAddons {
		if addon := product.Addon(addonID); addon != nil {
			price += addon.Price
		}
	}
	return price
}

// LineTotal is unit price times quantity. Non-positive quantities price at
// zero, never negative.
func LineTotal(product catalog.Product, selectedAddons []string, quantity int) int64 {
	if quantity <= 0 {
		return 0
	}
	return UnitPrice(product, selectedAddons) * int64(quantity)
}

// CartTotal sums line totals across the cart. Items whose product is missing
// from products contribute zero; a missing product is a transient state the
// reconciler deals with, not a pricing error.
func CartTotal(items []LineItem, products []catalog.Product) int64 {
	byID := make(map[string]*catalog.Product, len(products))
	for i := range products {
		byID[products[i].ID] = &products[i]
	}

	var total int64
	for _, item := range items {
		product, ok := byID[item.ProductID]
		if !ok {
			continue
		}
		total += LineTotal(*product, item.SelectedAddons, item.Quantity)
	}
	return total
}

// FormatPrice renders a minor-unit amount for display, rounding to whole
// major units. Display formatting never feeds back into order totals; the
// same integer amount goes to the backend untouched.
func FormatPrice(amount int64, currency string) string {
	major := (amount + 50) / 100
	if amount < 0 {
		major = (amount - 50) / 100
	}
	if currency == "" {
		currency = "RUB"
	}
	return fmt.Sprintf("%d %s", major, currency)
}
