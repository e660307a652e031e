// README: Flight acquisition tests — skip semantics, synthesis triggers, transforms.
package flights

import (
	"context"
	"errors"
	"testing"
	"time"

	"tripforge/internal/logger"
	"tripforge/internal/types"
)

type fakeProvider struct {
	calls  int
	offers []Offer
	err    error
}

func (f *fakeProvider) SearchOffers(ctx context.Context, req OfferRequest) ([]Offer, error) {
	f.calls++
	return f.offers, f.err
}

func testQuery() Query {
	return Query{
		Origin:        "London",
		Destination:   "Rome",
		DepartureDate: time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC),
		ReturnDate:    time.Date(2026, 5, 13, 0, 0, 0, 0, time.UTC),
		Travelers:     2,
	}
}

func TestSearchSkipped(t *testing.T) {
	fake := &fakeProvider{}
	svc := NewService(fake, "", logger.Nop())

	q := testQuery()
	q.Skip = true
	res, err := svc.Search(context.Background(), q)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if !res.Skipped || res.Reason == "" {
		t.Errorf("want skipped result with reason, got %+v", res)
	}
	if len(res.Options) != 0 || res.BestPrice != 0 || res.DataSource != "" {
		t.Errorf("skipped result must carry no fare data, got %+v", res)
	}
	if fake.calls != 0 {
		t.Errorf("provider called %d times on skip path", fake.calls)
	}
}

func TestSearchMissingOrigin(t *testing.T) {
	svc := NewService(nil, "", logger.Nop())
	q := testQuery()
	q.Origin = ""
	if _, err := svc.Search(context.Background(), q); !errors.Is(err, ErrMissingOrigin) {
		t.Fatalf("want ErrMissingOrigin, got %v", err)
	}
}

func TestSearchSameCodeSynthesizes(t *testing.T) {
	fake := &fakeProvider{}
	svc := NewService(fake, "", logger.Nop())

	q := testQuery()
	q.Origin = "London"
	q.Destination = "London Airport" // resolves to the same hub
	res, err := svc.Search(context.Background(), q)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if fake.calls != 0 {
		t.Fatalf("provider must not be called for a degenerate route, got %d calls", fake.calls)
	}
	assertSynthesized(t, res)
}

func TestSearchUnresolvableSynthesizes(t *testing.T) {
	fake := &fakeProvider{}
	svc := NewService(fake, "", logger.Nop())

	q := testQuery()
	q.Destination = "Nowhereville"
	res, err := svc.Search(context.Background(), q)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if fake.calls != 0 {
		t.Fatalf("provider must not be called for an unresolvable route")
	}
	assertSynthesized(t, res)
}

func TestSearchProviderErrorSynthesizes(t *testing.T) {
	fake := &fakeProvider{err: errors.New("boom")}
	svc := NewService(fake, "", logger.Nop())

	res, err := svc.Search(context.Background(), testQuery())
	if err != nil {
		t.Fatalf("provider error must not propagate, got %v", err)
	}
	if fake.calls != 1 {
		t.Fatalf("provider calls = %d, want 1", fake.calls)
	}
	assertSynthesized(t, res)
}

func TestSearchEmptyOffersSynthesizes(t *testing.T) {
	fake := &fakeProvider{}
	svc := NewService(fake, "", logger.Nop())

	res, err := svc.Search(context.Background(), testQuery())
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	assertSynthesized(t, res)
}

func TestSearchLiveOffers(t *testing.T) {
	offers := []Offer{
		liveOffer("off_1", 480, "ZZ"),
		liveOffer("off_2", 320, "ZZ"),
		liveOffer("off_3", 600, "ZZ"),
		liveOffer("off_4", 410, "ZZ"),
		liveOffer("off_5", 550, "ZZ"),
		liveOffer("off_6", 700, "ZZ"),
		liveOffer("off_7", 900, "ZZ"),
	}
	fake := &fakeProvider{offers: offers}
	svc := NewService(fake, "", logger.Nop())

	res, err := svc.Search(context.Background(), testQuery())
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if res.DataSource != types.SourceLiveProvider {
		t.Fatalf("dataSource = %s, want live-provider", res.DataSource)
	}
	if len(res.Options) != 5 {
		t.Fatalf("options = %d, want 5 cheapest", len(res.Options))
	}
	// 2 travelers: cheapest total 320 -> 160 per person.
	if res.BestPrice != 160 {
		t.Errorf("bestPrice = %v, want 160", res.BestPrice)
	}
	assertOneBest(t, res.Options)
	if !res.Options[0].IsBestPrice {
		t.Errorf("cheapest option should be first and flagged best")
	}
}

func TestSearchTestCarrierFilter(t *testing.T) {
	offers := []Offer{
		liveOffer("off_1", 480, "BA"),
		liveOffer("off_2", 320, "ZZ"),
	}
	fake := &fakeProvider{offers: offers}
	svc := NewService(fake, "ZZ", logger.Nop())

	res, err := svc.Search(context.Background(), testQuery())
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(res.Options) != 1 || res.Options[0].ID != "off_2" {
		t.Fatalf("carrier filter not applied: %+v", res.Options)
	}
}

func TestSynthesizePreferredSlotFirst(t *testing.T) {
	svc := NewService(nil, "", logger.Nop())
	q := testQuery()
	q.PreferredTime = "afternoon"

	res, err := svc.Search(context.Background(), q)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if slotOf(res.Options[0].ID) != "afternoon" {
		t.Errorf("first option slot = %q, want preferred afternoon", slotOf(res.Options[0].ID))
	}
	// Remaining options sorted by ascending price.
	rest := res.Options[1:]
	for i := 1; i < len(rest); i++ {
		if rest[i].PricePerPerson < rest[i-1].PricePerPerson {
			t.Errorf("non-preferred options not price-sorted: %v then %v",
				rest[i-1].PricePerPerson, rest[i].PricePerPerson)
		}
	}
}

func assertSynthesized(t *testing.T, res *Result) {
	t.Helper()
	if res.Skipped {
		t.Fatalf("unexpected skipped result")
	}
	if res.DataSource != types.SourceSynthesized {
		t.Errorf("dataSource = %s, want synthesized", res.DataSource)
	}
	if len(res.Options) != 4 {
		t.Fatalf("options = %d, want 4", len(res.Options))
	}
	assertOneBest(t, res.Options)
	for _, o := range res.Options {
		if o.PricePerPerson <= 0 {
			t.Errorf("option %s has non-positive price %v", o.ID, o.PricePerPerson)
		}
		if o.Currency != "EUR" {
			t.Errorf("option %s currency = %s, want EUR", o.ID, o.Currency)
		}
	}
}

func assertOneBest(t *testing.T, options []Option) {
	t.Helper()
	best := 0
	for _, o := range options {
		if o.IsBestPrice {
			best++
		}
	}
	if best != 1 {
		t.Errorf("isBestPrice flags = %d, want exactly 1", best)
	}
}

func liveOffer(id string, total float64, carrier string) Offer {
	seg := OfferSegment{
		Origin: "LHR", Destination: "FCO",
		DepartAt:     time.Date(2026, 5, 10, 9, 0, 0, 0, time.UTC),
		ArriveAt:     time.Date(2026, 5, 10, 12, 30, 0, 0, time.UTC),
		CarrierCode:  carrier,
		FlightNumber: carrier + "123",
	}
	ret := seg
	ret.Origin, ret.Destination = seg.Destination, seg.Origin
	return Offer{
		ID:          id,
		TotalAmount: total,
		Currency:    "EUR",
		OwnerCode:   carrier,
		Slices: []OfferSlice{
			{Segments: []OfferSegment{seg}, Duration: 3*time.Hour + 30*time.Minute},
			{Segments: []OfferSegment{ret}, Duration: 3*time.Hour + 30*time.Minute},
		},
	}
}
