// README: Activity acquisition tests — categorization and fallback routing.
package activities

import (
	"context"
	"errors"
	"testing"

	"googlemaps.github.io/maps"

	"tripforge/internal/logger"
	"tripforge/internal/types"
)

func TestCategorize(t *testing.T) {
	cases := []struct {
		title string
		want  string
	}{
		{"Louvre Museum Timed Entry", "museum"},
		{"Montmartre Walking Tour", "tour"},
		{"Le Marais Food & Wine Tasting", "food"},
		{"Seine River Cruise", "cruise"},
		{"West End Theatre Show", "entertainment"},
		{"Mountain Bike Adventure", "adventure"},
		{"Sushi Making Experience", "experience"},
		{"Famous Old Landmark", "attraction"},
		{"Completely Unrelated Thing", "attraction"},
	}
	for _, tc := range cases {
		if got := Categorize(tc.title); got != tc.want {
			t.Errorf("Categorize(%q) = %q, want %q", tc.title, got, tc.want)
		}
	}
}

func TestCategorizePriorityOrder(t *testing.T) {
	// "museum" outranks "tour" when both keywords appear.
	if got := Categorize("Guided Tour of the National Museum"); got != "museum" {
		t.Errorf("Categorize priority broken: got %q, want museum", got)
	}
	// "cruise" sits above "entertainment".
	if got := Categorize("Evening Show Cruise"); got != "cruise" {
		t.Errorf("Categorize priority broken: got %q, want cruise", got)
	}
}

type fakeSearcher struct {
	resp maps.PlacesSearchResponse
	err  error
}

func (f *fakeSearcher) TextSearch(ctx context.Context, r *maps.TextSearchRequest) (maps.PlacesSearchResponse, error) {
	return f.resp, f.err
}

func TestFetchNoProviderUsesFallback(t *testing.T) {
	svc := NewService(nil, nil, logger.Nop())
	entries := svc.Fetch(context.Background(), "Rome")
	if len(entries) == 0 {
		t.Fatal("fallback catalog must not be empty")
	}
	for _, e := range entries {
		if e.DataSource != types.SourceFallback {
			t.Errorf("entry %q dataSource = %s, want fallback", e.Title, e.DataSource)
		}
		if e.Category == "" {
			t.Errorf("entry %q has no category", e.Title)
		}
	}
}

func TestFetchProviderErrorUsesFallback(t *testing.T) {
	svc := NewService(&fakeSearcher{err: errors.New("quota")}, nil, logger.Nop())
	entries := svc.Fetch(context.Background(), "Rome")
	if len(entries) == 0 || entries[0].DataSource != types.SourceFallback {
		t.Fatalf("provider error should route to fallback, got %+v", entries)
	}
}

func TestFetchEmptyResultUsesFallback(t *testing.T) {
	svc := NewService(&fakeSearcher{}, nil, logger.Nop())
	entries := svc.Fetch(context.Background(), "Rome")
	if len(entries) == 0 || entries[0].DataSource != types.SourceFallback {
		t.Fatalf("empty provider result should route to fallback, got %+v", entries)
	}
}

func TestFetchLiveResultsNormalized(t *testing.T) {
	resp := maps.PlacesSearchResponse{
		Results: []maps.PlacesSearchResult{
			{Name: "City Museum of Art", Rating: 4.6, UserRatingsTotal: 1200, PlaceID: "p1"},
			{Name: "Harbor Boat Cruise", Rating: 4.2, UserRatingsTotal: 400, PlaceID: "p2"},
		},
	}
	svc := NewService(&fakeSearcher{resp: resp}, nil, logger.Nop())
	entries := svc.Fetch(context.Background(), "Valletta")
	if len(entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(entries))
	}
	if entries[0].DataSource != types.SourceLiveProvider {
		t.Errorf("dataSource = %s, want live-provider", entries[0].DataSource)
	}
	if entries[0].Category != "museum" {
		t.Errorf("category = %s, want museum", entries[0].Category)
	}
	if entries[1].Category != "cruise" {
		t.Errorf("category = %s, want cruise", entries[1].Category)
	}
}

func TestFetchUnknownCityGenericCatalog(t *testing.T) {
	svc := NewService(nil, nil, logger.Nop())
	entries := svc.Fetch(context.Background(), "Nowhereville")
	if len(entries) == 0 {
		t.Fatal("generic catalog must not be empty")
	}
}
