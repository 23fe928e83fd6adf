package ordering

import "fmt"

// Payload is the order-creation request body. It carries no total: the
// backend derives the amount from its own catalog.
type Payload struct {
	ShopID          string        `json:"shopId"`
	Type            Type          `json:"type"`
	PaymentMethod   PaymentMethod `json:"paymentMethod"`
	RequestedTime   string        `json:"requestedTime,omitempty"`
	Items           []Item        `json:"items"`
	Comment         string        `json:"comment,omitempty"`
	DeliveryAddress string        `json:"deliveryAddress,omitempty"`
}

// ValidationError describes one invalid payload field.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidatePayload validates an order payload before pricing.
func ValidatePayload(p *Payload) []ValidationError {
	var errs []ValidationError

	if p.ShopID == "" {
		errs = append(errs, ValidationError{
			Field:   "shopId",
			Message: "shopId is required",
		})
	}

	switch p.Type {
	case TypeDineIn, TypeTakeout, TypeDelivery:
	default:
		errs = append(errs, ValidationError{
			Field:   "type",
			Message: "type must be one of: DINE_IN, TAKEOUT, DELIVERY",
		})
	}

	switch p.PaymentMethod {
	case PaymentCardOnline, PaymentCardOffline, PaymentCash:
	default:
		errs = append(errs, ValidationError{
			Field:   "paymentMethod",
			Message: "paymentMethod must be one of: CARD_ONLINE, CARD_OFFLINE, CASH",
		})
	}

	if p.Type == TypeDelivery && p.DeliveryAddress == "" {
		errs = append(errs, ValidationError{
			Field:   "deliveryAddress",
			Message: "deliveryAddress is required for delivery orders",
		})
	}

	if len(p.Items) == 0 {
		errs = append(errs, ValidationError{
			Field:   "items",
			Message: "at least one item is required",
		})
	}
	for i, item := range p.Items {
		if item.ProductID == "" {
			errs = append(errs, ValidationError{
				Field:   fmt.Sprintf("items[%d].productId", i),
				Message: "productId is required",
			})
		}
		if item.Quantity < 1 {
			errs = append(errs, ValidationError{
				Field:   fmt.Sprintf("items[%d].quantity", i),
				Message: "quantity must be at least 1",
			})
		}
	}

	return errs
}
