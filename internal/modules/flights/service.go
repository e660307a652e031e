// README: Flight acquisition — skip path, live fare search, synthesis fallback.
package flights

import (
	"context"
	"errors"
	"sort"

	"tripforge/internal/logger"
	"tripforge/internal/modules/locale"
	"tripforge/internal/types"
)

// ErrMissingOrigin is the one fatal validation error in this stage: flights
// were requested but there is nothing to search from.
var ErrMissingOrigin = errors.New("flight search requires an origin")

// defaultAdultAge is assumed per passenger when actual ages are unknown.
const defaultAdultAge = 30

const maxLiveOptions = 5

// Service acquires round-trip fares. A nil provider (or a disabled live
// integration) degrades every search to synthesis.
type Service struct {
	provider    OfferProvider
	testCarrier string
	log         logger.Logger
}

func NewService(provider OfferProvider, testCarrier string, log logger.Logger) *Service {
	return &Service{provider: provider, testCarrier: testCarrier, log: log}
}

// Search returns exactly one of two shapes: a skipped result, or a populated
// option set. Provider errors never escape; they degrade to synthesis.
func (s *Service) Search(ctx context.Context, q Query) (*Result, error) {
	if q.Skip {
		return &Result{Skipped: true, Reason: "flights already booked"}, nil
	}
	if q.Origin == "" {
		return nil, ErrMissingOrigin
	}

	originCode := locale.Resolve(q.Origin)
	destCode := locale.Resolve(q.Destination)

	// Unresolvable or degenerate routes are the same failure class as a
	// provider error: go straight to synthesis, never call the provider.
	if originCode == "" || destCode == "" || originCode == destCode {
		s.log.Warn("flight route not searchable, synthesizing",
			"origin", q.Origin, "destination", q.Destination,
			"originCode", originCode, "destCode", destCode)
		return s.synthesize(q, originCode, destCode), nil
	}

	if s.provider == nil {
		return s.synthesize(q, originCode, destCode), nil
	}

	offers, err := s.provider.SearchOffers(ctx, OfferRequest{
		Origin:        originCode,
		Destination:   destCode,
		DepartureDate: q.DepartureDate,
		ReturnDate:    q.ReturnDate,
		PassengerAges: passengerAges(q),
	})
	if err != nil {
		s.log.Warn("flight provider error, synthesizing", "err", err)
		return s.synthesize(q, originCode, destCode), nil
	}

	if s.testCarrier != "" {
		offers = filterByCarrier(offers, s.testCarrier)
	}
	if len(offers) == 0 {
		s.log.Warn("flight provider returned no offers, synthesizing",
			"origin", originCode, "destination", destCode)
		return s.synthesize(q, originCode, destCode), nil
	}

	return transformOffers(offers, q.Travelers), nil
}

func passengerAges(q Query) []int {
	if len(q.TravelerAges) > 0 {
		return q.TravelerAges
	}
	ages := make([]int, q.Travelers)
	for i := range ages {
		ages[i] = defaultAdultAge
	}
	return ages
}

func filterByCarrier(offers []Offer, carrier string) []Offer {
	out := offers[:0]
	for _, o := range offers {
		if o.OwnerCode == carrier {
			out = append(out, o)
		}
	}
	return out
}

// transformOffers maps the cheapest offers onto FlightOptions and marks the
// minimum-price option best.
func transformOffers(offers []Offer, travelers int) *Result {
	sort.Slice(offers, func(i, j int) bool {
		return offers[i].TotalAmount < offers[j].TotalAmount
	})
	if len(offers) > maxLiveOptions {
		offers = offers[:maxLiveOptions]
	}
	if travelers < 1 {
		travelers = 1
	}

	options := make([]Option, 0, len(offers))
	for _, o := range offers {
		options = append(options, Option{
			ID:              o.ID,
			PricePerPerson:  o.TotalAmount / float64(travelers),
			Currency:        o.Currency,
			Outbound:        legFromSlice(o.Slices[0]),
			Return:          legFromSlice(o.Slices[1]),
			BaggageIncluded: o.BaggageIncluded,
			BookingURL:      "https://app.duffel.com/offers/" + o.ID,
		})
	}
	markBestPrice(options)

	return &Result{
		Options:    options,
		BestPrice:  minPrice(options),
		DataSource: types.SourceLiveProvider,
	}
}

func legFromSlice(sl OfferSlice) Leg {
	first := sl.Segments[0]
	last := sl.Segments[len(sl.Segments)-1]
	name := first.CarrierName
	if name == "" {
		name = airlineName(first.CarrierCode)
	}
	return Leg{
		Airline:      name,
		FlightNumber: first.FlightNumber,
		Departure:    first.DepartAt.Format("Mon, Jan 2 15:04"),
		Arrival:      last.ArriveAt.Format("Mon, Jan 2 15:04"),
		Duration:     formatDuration(sl.Duration),
		Stops:        len(sl.Segments) - 1,
	}
}
