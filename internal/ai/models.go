package ai

// GeneratedDay is one day of the model's structured itinerary output.
type GeneratedDay struct {
	// Day is the 1-based day number the model was asked to produce.
	Day int `json:"day"`

	// Date is the calendar date in YYYY-MM-DD form. Models occasionally
	// omit or mangle this; downstream repair re-stamps it from the trip
	// start date, so it is advisory here.
	Date string `json:"date,omitempty"`

	Title string `json:"title"`

	Activities []GeneratedActivity `json:"activities"`
}

// GeneratedActivity is one scheduled entry within a generated day.
type GeneratedActivity struct {
	Time        string  `json:"time"`
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	Category    string  `json:"category,omitempty"`
	Price       float64 `json:"price"`
	Currency    string  `json:"currency,omitempty"`

	SkipTheLine      bool    `json:"skipTheLine,omitempty"`
	SkipTheLinePrice float64 `json:"skipTheLinePrice,omitempty"`

	Duration string `json:"duration,omitempty"`
	Tips     string `json:"tips,omitempty"`

	IsLocalExperience bool `json:"isLocalExperience,omitempty"`
}
