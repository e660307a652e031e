// README: Trip aggregate, request shape, and status definitions.
package trip

import (
	"time"

	"tripforge/internal/modules/itinerary"
	"tripforge/internal/types"
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusGenerating Status = "generating"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
)

// Request is the caller-supplied input for one trip. It is immutable for
// the duration of a generation run.
type Request struct {
	Destination string    `json:"destination" binding:"required"`
	Origin      string    `json:"origin"`
	StartDate   time.Time `json:"startDate" binding:"required"`
	EndDate     time.Time `json:"endDate" binding:"required"`
	Travelers   int       `json:"travelers" binding:"required,min=1"`
	Budget      float64   `json:"budget" binding:"min=0"`

	Interests        []string `json:"interests,omitempty"`
	LocalExperiences []string `json:"localExperiences,omitempty"`

	SkipFlights bool `json:"skipFlights"`
	SkipHotel   bool `json:"skipHotel"`

	PreferredFlightTime string `json:"preferredFlightTime,omitempty"`
	ArrivalTime         string `json:"arrivalTime,omitempty"`
	DepartureTime       string `json:"departureTime,omitempty"`

	TravelerAges []int `json:"travelerAges,omitempty"`
}

// Days is the calendar-day span of the trip, never less than 1.
func (r Request) Days() int {
	days := int(r.EndDate.Sub(r.StartDate).Hours()/24) + 1
	if days < 1 {
		return 1
	}
	return days
}

// Trip is the persisted aggregate. Generation is a monotonic token bumped
// at the start of every run; terminal writes are conditional on it so a
// slow stale run cannot overwrite a newer one.
type Trip struct {
	ID         types.ID
	Request    Request
	Status     Status
	Generation int
	Itinerary  *itinerary.Itinerary
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
