// README: Pipeline orchestrator: one trip request in, one terminal write out.
package service

import (
	"context"
	"fmt"
	"time"

	"tripforge/internal/logger"
	"tripforge/internal/metrics"
	"tripforge/internal/modules/activities"
	"tripforge/internal/modules/flights"
	"tripforge/internal/modules/itinerary"
	"tripforge/internal/modules/lodging"
	"tripforge/internal/modules/restaurants"
	"tripforge/internal/modules/transport"
	"tripforge/internal/modules/trip"
	"tripforge/internal/types"
)

// TripStore is the persistence slice the pipeline needs. The terminal writes
// are conditional on the generation token so a stale run discards silently.
type TripStore interface {
	Get(ctx context.Context, id types.ID) (*trip.Trip, error)
	CommitItinerary(ctx context.Context, id types.ID, generation int, doc *itinerary.Itinerary) (bool, error)
	MarkFailed(ctx context.Context, id types.ID, generation int) (bool, error)
}

// Generator runs the itinerary pipeline for one trip at a time. Stages run
// sequentially in a fixed order; each acquisition stage is individually
// fault-tolerant, so the only fatal errors here are validation failures and
// persistence failures.
type Generator struct {
	store       TripStore
	flights     *flights.Service
	lodging     *lodging.Service
	activities  *activities.Service
	restaurants *restaurants.Service
	narrative   *itinerary.Generator
	log         logger.Logger
}

func NewGenerator(
	store TripStore,
	flightSvc *flights.Service,
	lodgingSvc *lodging.Service,
	activitySvc *activities.Service,
	restaurantSvc *restaurants.Service,
	narrative *itinerary.Generator,
	log logger.Logger,
) *Generator {
	return &Generator{
		store:       store,
		flights:     flightSvc,
		lodging:     lodgingSvc,
		activities:  activitySvc,
		restaurants: restaurantSvc,
		narrative:   narrative,
		log:         log,
	}
}

// Run executes one generation run for the trip, presenting the generation
// token at commit time. The trip must already be in the generating state.
func (g *Generator) Run(ctx context.Context, id types.ID, generation int) (err error) {
	start := time.Now()
	defer func() {
		metrics.GenerationDuration.Observe(time.Since(start).Seconds())
	}()
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("generation panic: %v", r)
			g.fail(ctx, id, generation, err)
		}
	}()

	t, err := g.store.Get(ctx, id)
	if err != nil {
		metrics.GenerationRuns.WithLabelValues("failed").Inc()
		return fmt.Errorf("load trip %s: %w", id, err)
	}

	doc, err := g.assemble(ctx, t.Request)
	if err != nil {
		g.fail(ctx, id, generation, err)
		return err
	}

	committed, err := g.store.CommitItinerary(ctx, id, generation, doc)
	if err != nil {
		metrics.GenerationRuns.WithLabelValues("failed").Inc()
		return fmt.Errorf("commit itinerary for trip %s: %w", id, err)
	}
	if !committed {
		metrics.GenerationRuns.WithLabelValues("stale").Inc()
		g.log.Info("generation result discarded, a newer run owns the trip",
			"trip", string(id), "generation", generation)
		return nil
	}

	metrics.GenerationRuns.WithLabelValues("completed").Inc()
	g.log.Info("itinerary generated",
		"trip", string(id),
		"days", len(doc.DayByDayItinerary),
		"flightSource", string(doc.Flights.DataSource),
		"elapsed", time.Since(start).String())
	return nil
}

// assemble runs the acquisition and generation stages in their fixed order.
func (g *Generator) assemble(ctx context.Context, req trip.Request) (*itinerary.Itinerary, error) {
	flightRes, err := g.flights.Search(ctx, flights.Query{
		Skip:          req.SkipFlights,
		Origin:        req.Origin,
		Destination:   req.Destination,
		DepartureDate: req.StartDate,
		ReturnDate:    req.EndDate,
		Travelers:     req.Travelers,
		TravelerAges:  req.TravelerAges,
		PreferredTime: req.PreferredFlightTime,
	})
	if err != nil {
		return nil, err
	}
	recordStage("flights", flightRes.Skipped, string(flightRes.DataSource))

	hotels, err := g.lodging.Fetch(ctx, req.Destination, req.SkipHotel)
	if err != nil {
		return nil, err
	}
	recordStage("hotels", hotels.Skipped, staysSource(hotels))

	acts := g.activities.Fetch(ctx, req.Destination)
	recordStage("activities", false, activitiesSource(acts))

	rests := g.restaurants.Fetch(ctx, req.Destination)
	recordStage("restaurants", false, restaurantsSource(rests))

	transportation := transport.Advise(req.Destination)

	days := g.narrative.Generate(ctx, itinerary.Params{
		Destination:      req.Destination,
		StartDate:        req.StartDate,
		Days:             req.Days(),
		Travelers:        req.Travelers,
		Budget:           req.Budget,
		Interests:        req.Interests,
		LocalExperiences: req.LocalExperiences,
		Activities:       g.activities.Fallback(req.Destination),
		Restaurants:      g.restaurants.Fallback(req.Destination),
	})
	itinerary.Reconcile(days, rests)

	return &itinerary.Itinerary{
		Flights:                *flightRes,
		Hotels:                 *hotels,
		Activities:             acts,
		Restaurants:            rests,
		Transportation:         transportation,
		DayByDayItinerary:      days,
		EstimatedDailyExpenses: itinerary.EstimateDailyExpenses(req.Budget),
		Currency:               "EUR",
	}, nil
}

func (g *Generator) fail(ctx context.Context, id types.ID, generation int, cause error) {
	metrics.GenerationRuns.WithLabelValues("failed").Inc()
	g.log.Error("itinerary generation failed",
		"trip", string(id), "generation", generation, "err", cause)
	if _, err := g.store.MarkFailed(ctx, id, generation); err != nil {
		g.log.Error("failed to mark trip failed", "trip", string(id), "err", err)
	}
}

func recordStage(stage string, skipped bool, source string) {
	if skipped {
		source = "skipped"
	}
	if source == "" {
		source = "unknown"
	}
	metrics.StageDataSource.WithLabelValues(stage, source).Inc()
}

func staysSource(r *lodging.Result) string {
	if len(r.Stays) == 0 {
		return ""
	}
	return string(r.Stays[0].DataSource)
}

func activitiesSource(entries []activities.Entry) string {
	if len(entries) == 0 {
		return ""
	}
	return string(entries[0].DataSource)
}

func restaurantsSource(entries []restaurants.Entry) string {
	if len(entries) == 0 {
		return ""
	}
	return string(entries[0].DataSource)
}
