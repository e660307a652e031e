// README: Itinerary document shapes: day plans, scheduled items, the assembled result.
package itinerary

import (
	"tripforge/internal/modules/activities"
	"tripforge/internal/modules/flights"
	"tripforge/internal/modules/lodging"
	"tripforge/internal/modules/restaurants"
	"tripforge/internal/modules/transport"
)

// ActivityItem is one scheduled entry inside a day plan. Meal entries that
// the reconciler matched against directory data additionally carry rating,
// cuisine, price range, and address.
type ActivityItem struct {
	Time        string  `json:"time"`
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	Category    string  `json:"category,omitempty"`
	Price       float64 `json:"price"`
	Currency    string  `json:"currency"`

	SkipTheLine      bool    `json:"skipTheLine,omitempty"`
	SkipTheLinePrice float64 `json:"skipTheLinePrice,omitempty"`

	Duration string `json:"duration,omitempty"`
	Tips     string `json:"tips,omitempty"`

	IsLocalExperience bool `json:"isLocalExperience,omitempty"`

	Rating     float64 `json:"rating,omitempty"`
	Cuisine    string  `json:"cuisine,omitempty"`
	PriceRange string  `json:"priceRange,omitempty"`
	Address    string  `json:"address,omitempty"`
}

// DayPlan is one calendar day of the trip. Day numbers are 1-based and
// contiguous across the itinerary; Date is YYYY-MM-DD.
type DayPlan struct {
	Day        int            `json:"day"`
	Date       string         `json:"date"`
	Title      string         `json:"title"`
	Activities []ActivityItem `json:"activities"`
}

// Itinerary is the assembled result of one generation run. It is written to
// the trip record wholesale; components never patch a stored itinerary.
type Itinerary struct {
	Flights        flights.Result      `json:"flights"`
	Hotels         lodging.Result      `json:"hotels"`
	Activities     []activities.Entry  `json:"activities"`
	Restaurants    []restaurants.Entry `json:"restaurants"`
	Transportation []transport.Option  `json:"transportation"`

	DayByDayItinerary []DayPlan `json:"dayByDayItinerary"`

	EstimatedDailyExpenses float64 `json:"estimatedDailyExpenses"`
	Currency               string  `json:"currency"`
}
