package catalog

import "fmt"

// Addon is an optional extra belonging to exactly one product. Price is in
// minor currency units; zero-priced addons are common (sugar, ice water).
type Addon struct {
	ID    string `json:"id" bson:"_id"`
	Name  string `json:"name" bson:"name"`
	Price int64  `json:"price" bson:"price"`
	Group string `json:"group,omitempty" bson:"group,omitempty"`
}

// Product is a single sellable item in a shop's catalog. All monetary values
// are integers in minor currency units. Products are immutable once fetched;
// a cart references them by id only and must tolerate them vanishing.
type Product struct {
	ID          string  `json:"id" bson:"_id"`
	CategoryID  string  `json:"categoryId" bson:"category_id"`
	Name        string  `json:"name" bson:"name"`
	Description string  `json:"description,omitempty" bson:"description,omitempty"`
	Price       int64   `json:"price" bson:"price"`
	ImageURL    string  `json:"imageUrl" bson:"image_url"`
	IsAvailable bool    `json:"isAvailable" bson:"is_available"`
	Addons      []Addon `json:"addons,omitempty" bson:"addons,omitempty"`
	Subcategory string  `json:"subcategory,omitempty" bson:"subcategory,omitempty"`
}

// Validate checks the product against its wire contract.
func (p *Product) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("id: is required")
	}
	if p.CategoryID == "" {
		return fmt.Errorf("categoryId: is required")
	}
	if p.Name == "" {
		return fmt.Errorf("name: is required")
	}
	if p.Price < 0 {
		return fmt.Errorf("price: must not be negative")
	}
	if p.ImageURL == "" {
		return fmt.Errorf("imageUrl: is required")
	}
	for i, addon := range p.Addons {
		if addon.ID == "" {
			return fmt.Errorf("addons[%d].id: is required", i)
		}
		if addon.Name == "" {
			return fmt.Errorf("addons[%d].name: is required", i)
		}
	}
	return nil
}

// Addon returns the addon with the given id, or nil when the product does not
// carry it. Stale addon references are a normal state, not an error.
func (p *Product) Addon(id string) *Addon {
	for i := range p.Addons {
		if p.Addons[i].ID == id {
			return &p.Addons[i]
		}
	}
	return nil
}

// ProductList is the collection shape of the products endpoint.
type ProductList struct {
	Items []Product `json:"items"`
	Total int       `json:"total"`
}

// Validate checks the list against its wire contract.
func (l *ProductList) Validate() error {
	if l.Total != len(l.Items) {
		return fmt.Errorf("total: does not match item count")
	}
	for i := range l.Items {
		if err := l.Items[i].Validate(); err != nil {
			return fmt.Errorf("items[%d].%v", i, err)
		}
	}
	return nil
}
