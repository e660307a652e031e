// README: Lodging acquisition — curated fallback stays; live integration feature-flagged off.
package lodging

import (
	"context"

	"tripforge/internal/logger"
	"tripforge/internal/types"
)

// Stay is one lodging option.
type Stay struct {
	Name        string           `json:"name"`
	Area        string           `json:"area"`
	Price       float64          `json:"pricePerNight"`
	Currency    string           `json:"currency"`
	Rating      float64          `json:"rating"`
	Description string           `json:"description,omitempty"`
	BookingURL  string           `json:"bookingUrl,omitempty"`
	DataSource  types.DataSource `json:"dataSource"`
}

// Result is either skipped or a populated set of stays.
type Result struct {
	Skipped bool   `json:"skipped,omitempty"`
	Reason  string `json:"reason,omitempty"`
	Stays   []Stay `json:"stays,omitempty"`
}

// Service returns stays for a destination. The live hotel provider is gated
// behind a deployment flag that is currently off, so every non-skipped
// request serves the curated catalog.
type Service struct {
	live bool
	log  logger.Logger
}

func NewService(live bool, log logger.Logger) *Service {
	return &Service{live: live, log: log}
}

// Fetch returns lodging options for the destination.
func (s *Service) Fetch(ctx context.Context, destination string, skip bool) (*Result, error) {
	if skip {
		return &Result{Skipped: true, Reason: "hotel already booked"}, nil
	}
	// Live integration is scaffolded but disabled; when enabled it would sit
	// here with the same error-to-fallback contract as the other stages.
	stays := catalogFor(destination)
	for i := range stays {
		stays[i].DataSource = types.SourceFallback
		stays[i].Currency = "EUR"
	}
	return &Result{Stays: stays}, nil
}
