// README: Normalized activity shape shared by live and fallback sources.
package activities

import "tripforge/internal/types"

// Entry is the provider-agnostic activity shape.
type Entry struct {
	Title       string           `json:"title"`
	Category    string           `json:"category"`
	Price       float64          `json:"price"`
	Currency    string           `json:"currency"`
	Rating      float64          `json:"rating"`
	ReviewCount int              `json:"reviewCount"`
	Duration    string           `json:"duration"`
	Description string           `json:"description,omitempty"`
	BookingURL  string           `json:"bookingUrl,omitempty"`
	DataSource  types.DataSource `json:"dataSource"`
}
