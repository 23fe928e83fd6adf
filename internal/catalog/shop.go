package catalog

import "fmt"

// Shop is one tenant of the storefront: a physical store location, or the
// reserved delivery pseudo-location. Owned by the catalog; clients never
// mutate it.
type Shop struct {
	ID           string `json:"id" bson:"_id"`
	Name         string `json:"name" bson:"name"`
	Description  string `json:"description,omitempty" bson:"description,omitempty"`
	Address      string `json:"address,omitempty" bson:"address,omitempty"`
	LogoURL      string `json:"logoUrl" bson:"logo_url"`
	BannerURL    string `json:"bannerUrl,omitempty" bson:"banner_url,omitempty"`
	Currency     string `json:"currency" bson:"currency"`
	ThemeColor   string `json:"themeColor" bson:"theme_color"`
	IsClosed     bool   `json:"isClosed" bson:"is_closed"`
	OpeningHours string `json:"openingHours" bson:"opening_hours"`
}

// Validate checks the shop against its wire contract.
func (s *Shop) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("id: is required")
	}
	if s.Name == "" {
		return fmt.Errorf("name: is required")
	}
	if s.LogoURL == "" {
		return fmt.Errorf("logoUrl: is required")
	}
	return nil
}

// Banner is a promotional entry shown on the storefront home screen.
// Banners are tenant-global.
type Banner struct {
	ID          string `json:"id" bson:"_id"`
	Title       string `json:"title" bson:"title"`
	Description string `json:"description,omitempty" bson:"description,omitempty"`
	ImageURL    string `json:"imageUrl" bson:"image_url"`
	ActionURL   string `json:"actionUrl,omitempty" bson:"action_url,omitempty"`
	TextColor   string `json:"textColor,omitempty" bson:"text_color,omitempty"`
}

// Validate checks the banner against its wire contract.
func (b *Banner) Validate() error {
	if b.ID == "" {
		return fmt.Errorf("id: is required")
	}
	if b.Title == "" {
		return fmt.Errorf("title: is required")
	}
	if b.ImageURL == "" {
		return fmt.Errorf("imageUrl: is required")
	}
	return nil
}
