package catalog

import "fmt"

// Category groups products inside one shop's menu.
type Category struct {
	ID        string `json:"id" bson:"_id"`
	Name      string `json:"name" bson:"name"`
	Slug      string `json:"slug" bson:"slug"`
	IconURL   string `json:"iconUrl,omitempty" bson:"icon_url,omitempty"`
	SortOrder int    `json:"sortOrder" bson:"sort_order"`
}

// Validate checks the category against its wire contract.
func (c *Category) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("id: is required")
	}
	if c.Name == "" {
		return fmt.Errorf("name: is required")
	}
	if c.Slug == "" {
		return fmt.Errorf("slug: is required")
	}
	return nil
}
