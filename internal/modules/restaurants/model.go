// README: Normalized restaurant shape shared by live and fallback sources.
package restaurants

import "tripforge/internal/types"

// Entry is the provider-agnostic restaurant shape.
type Entry struct {
	Name        string           `json:"name"`
	Cuisine     string           `json:"cuisine"`
	PriceRange  string           `json:"priceRange"` // "€" .. "€€€€"
	Rating      float64          `json:"rating"`
	ReviewCount int              `json:"reviewCount"`
	Address     string           `json:"address,omitempty"`
	URL         string           `json:"url,omitempty"`
	Description string           `json:"description,omitempty"`
	DataSource  types.DataSource `json:"dataSource"`
}
