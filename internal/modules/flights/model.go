// README: Flight result shapes and the live-provider contract.
package flights

import (
	"context"
	"time"

	"tripforge/internal/types"
)

// Leg is one direction of a round trip.
type Leg struct {
	Airline      string `json:"airline"`
	FlightNumber string `json:"flightNumber"`
	Departure    string `json:"departure"`
	Arrival      string `json:"arrival"`
	Duration     string `json:"duration"`
	Stops        int    `json:"stops"`
}

// Option is one bookable round-trip fare.
type Option struct {
	ID              string  `json:"id"`
	PricePerPerson  float64 `json:"pricePerPerson"`
	Currency        string  `json:"currency"`
	Outbound        Leg     `json:"outbound"`
	Return          Leg     `json:"return"`
	BaggageIncluded bool    `json:"baggageIncluded"`
	BaggagePrice    float64 `json:"baggagePrice,omitempty"`
	BookingURL      string  `json:"bookingUrl,omitempty"`
	IsBestPrice     bool    `json:"isBestPrice"`
}

// Result is exactly one of two shapes: skipped, or populated with options.
type Result struct {
	Skipped    bool             `json:"skipped,omitempty"`
	Reason     string           `json:"reason,omitempty"`
	Options    []Option         `json:"options,omitempty"`
	BestPrice  float64          `json:"bestPrice,omitempty"`
	DataSource types.DataSource `json:"dataSource,omitempty"`
}

// Query describes one round-trip fare search.
type Query struct {
	Skip          bool
	Origin        string
	Destination   string
	DepartureDate time.Time
	ReturnDate    time.Time
	Travelers     int
	TravelerAges  []int
	PreferredTime string // "early-morning", "morning", "afternoon", "evening", "night" or ""
}

// OfferRequest is the provider-facing search request.
type OfferRequest struct {
	Origin        string
	Destination   string
	DepartureDate time.Time
	ReturnDate    time.Time
	PassengerAges []int
}

// OfferSegment is one flight within a slice.
type OfferSegment struct {
	Origin       string
	Destination  string
	DepartAt     time.Time
	ArriveAt     time.Time
	CarrierCode  string
	CarrierName  string
	FlightNumber string
}

// OfferSlice is one direction of an offer (outbound or return).
type OfferSlice struct {
	Segments []OfferSegment
	Duration time.Duration
}

// Offer is one priced round-trip fare from the live provider.
type Offer struct {
	ID              string
	TotalAmount     float64
	Currency        string
	OwnerCode       string
	OwnerName       string
	Slices          []OfferSlice
	BaggageIncluded bool
}

// OfferProvider is the live fare search contract. Implementations own their
// request timeout and any result polling.
type OfferProvider interface {
	SearchOffers(ctx context.Context, req OfferRequest) ([]Offer, error)
}
