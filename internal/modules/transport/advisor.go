// README: Pure per-city transportation guidance lookup.
package transport

import "strings"

// Option is one way of getting around a destination.
type Option struct {
	Mode           string  `json:"mode"`
	Description    string  `json:"description"`
	SinglePrice    float64 `json:"singlePrice,omitempty"`
	DayPassPrice   float64 `json:"dayPassPrice,omitempty"`
	PriceRangeLow  float64 `json:"priceRangeLow,omitempty"`
	PriceRangeHigh float64 `json:"priceRangeHigh,omitempty"`
	Currency       string  `json:"currency"`
	Tip            string  `json:"tip,omitempty"`
}

// Advise returns transit, rideshare, and taxi guidance for a destination.
// The city token is whatever precedes the first comma. A city missing from
// the table is not an error: it gets the generic three-entry response.
func Advise(destination string) []Option {
	city := strings.ToLower(strings.TrimSpace(destination))
	if idx := strings.Index(city, ","); idx >= 0 {
		city = strings.TrimSpace(city[:idx])
	}
	if options, ok := cityTransport[city]; ok {
		out := make([]Option, len(options))
		copy(out, options)
		return out
	}
	return []Option{
		{Mode: "Public Transport", Currency: "EUR",
			Description: "Most cities run buses and often a metro or tram network; day passes usually beat single tickets for sightseeing.",
			Tip:         "Buy tickets before boarding and validate them."},
		{Mode: "Rideshare", Currency: "EUR", PriceRangeLow: 5, PriceRangeHigh: 25,
			Description: "Check which rideshare apps operate locally before you arrive.",
			Tip:         "Compare the fare estimate against a metered taxi."},
		{Mode: "Taxi", Currency: "EUR", PriceRangeLow: 8, PriceRangeHigh: 35,
			Description: "Licensed taxis are available at ranks and by phone.",
			Tip:         "Insist on the meter or agree the fare before setting off."},
	}
}
