// README: Deterministic fare synthesis used when the live provider is unavailable.
package flights

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"time"

	"tripforge/internal/types"
)

// timeSlot is one entry in the time-of-day catalog. priceFactor applies an
// afternoon premium and early/red-eye discounts to the route base price.
type timeSlot struct {
	name        string
	departHour  int
	departMin   int
	priceFactor float64
}

var timeSlots = []timeSlot{
	{"early-morning", 6, 15, 0.90},
	{"morning", 9, 30, 1.00},
	{"afternoon", 14, 45, 1.15},
	{"evening", 18, 20, 1.05},
	{"night", 22, 10, 0.85},
}

const synthOptionCount = 4

// synthesize builds a full fare set from the static route model. Codes may be
// empty when the resolver failed; the default route and roster still apply.
func (s *Service) synthesize(q Query, originCode, destCode string) *Result {
	route := lookupRoute(originCode, destCode)
	roster := rosterFor(originCode, destCode)

	options := make([]Option, 0, synthOptionCount)
	for i := 0; i < synthOptionCount; i++ {
		slot := timeSlots[i%len(timeSlots)]
		carrier := roster[i%len(roster)]

		price := route.basePrice * slot.priceFactor
		if carrier.lowCost {
			price *= 0.75
		}
		// Jitter keeps repeated synth runs from looking like a price grid.
		price *= 1.0 + (rand.Float64()*0.10 - 0.02)
		price = float64(int(price/5) * 5)

		dur := time.Duration(route.durationMin) * time.Minute
		outDep := at(q.DepartureDate, slot.departHour, slot.departMin)
		retDep := at(q.ReturnDate, slot.departHour, slot.departMin)
		flightNo := fmt.Sprintf("%s%d", carrier.code, 100+rand.Intn(800))

		opt := Option{
			ID:             fmt.Sprintf("synth-%s-%d", slot.name, i),
			PricePerPerson: price,
			Currency:       "EUR",
			Outbound: Leg{
				Airline:      carrier.name,
				FlightNumber: flightNo,
				Departure:    outDep.Format("Mon, Jan 2 15:04"),
				Arrival:      outDep.Add(dur).Format("Mon, Jan 2 15:04"),
				Duration:     formatDuration(dur),
				Stops:        0,
			},
			Return: Leg{
				Airline:      carrier.name,
				FlightNumber: fmt.Sprintf("%s%d", carrier.code, 101+rand.Intn(800)),
				Departure:    retDep.Format("Mon, Jan 2 15:04"),
				Arrival:      retDep.Add(dur).Format("Mon, Jan 2 15:04"),
				Duration:     formatDuration(dur),
				Stops:        0,
			},
			BaggageIncluded: !carrier.lowCost,
			BookingURL:      fmt.Sprintf("https://www.google.com/travel/flights?q=flights%%20from%%20%s%%20to%%20%s", originCode, destCode),
		}
		if carrier.lowCost {
			opt.BaggagePrice = 35
		}
		options = append(options, opt)
	}

	markBestPrice(options)

	// Preference matching: options in the requested slot first, then by price.
	preferred := q.PreferredTime
	sort.SliceStable(options, func(i, j int) bool {
		pi := preferred != "" && slotOf(options[i].ID) == preferred
		pj := preferred != "" && slotOf(options[j].ID) == preferred
		if pi != pj {
			return pi
		}
		return options[i].PricePerPerson < options[j].PricePerPerson
	})

	return &Result{
		Options:    options,
		BestPrice:  minPrice(options),
		DataSource: types.SourceSynthesized,
	}
}

// slotOf recovers the time-slot name embedded in a synthetic option ID.
func slotOf(id string) string {
	for _, slot := range timeSlots {
		if strings.HasPrefix(id, "synth-"+slot.name+"-") {
			return slot.name
		}
	}
	return ""
}

func at(day time.Time, hour, min int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), hour, min, 0, 0, day.Location())
}

func formatDuration(d time.Duration) string {
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	if m == 0 {
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dh %dm", h, m)
}

func markBestPrice(options []Option) {
	if len(options) == 0 {
		return
	}
	best := 0
	for i := range options {
		options[i].IsBestPrice = false
		if options[i].PricePerPerson < options[best].PricePerPerson {
			best = i
		}
	}
	options[best].IsBestPrice = true
}

func minPrice(options []Option) float64 {
	if len(options) == 0 {
		return 0
	}
	min := options[0].PricePerPerson
	for _, o := range options[1:] {
		if o.PricePerPerson < min {
			min = o.PricePerPerson
		}
	}
	return min
}
