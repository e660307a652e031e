// README: Restaurant acquisition — Places search plus per-result detail fetch, catalog fallback.
package restaurants

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"googlemaps.github.io/maps"

	"tripforge/internal/logger"
	"tripforge/internal/types"
)

const (
	maxLiveEntries = 6
	cacheTTL       = 30 * time.Minute
)

// PlacesClient is the slice of the Google Maps client this stage uses: a
// destination search plus a per-result detail fetch.
type PlacesClient interface {
	TextSearch(ctx context.Context, r *maps.TextSearchRequest) (maps.PlacesSearchResponse, error)
	PlaceDetails(ctx context.Context, r *maps.PlaceDetailsRequest) (maps.PlaceDetailsResult, error)
}

// Service acquires restaurants for a destination. A nil client serves the
// fallback catalog.
type Service struct {
	places PlacesClient
	cache  *redis.Client
	log    logger.Logger
}

func NewService(places PlacesClient, cache *redis.Client, log logger.Logger) *Service {
	return &Service{places: places, cache: cache, log: log}
}

// Fetch returns normalized restaurants; failures degrade to the catalog.
func (s *Service) Fetch(ctx context.Context, destination string) []Entry {
	if s.places == nil {
		return s.fallback(destination)
	}

	if cached, ok := s.cacheGet(ctx, destination); ok {
		return cached
	}

	resp, err := s.places.TextSearch(ctx, &maps.TextSearchRequest{
		Query: "best restaurants in " + destination,
	})
	if err != nil {
		s.log.Warn("restaurant provider error, using fallback catalog", "destination", destination, "err", err)
		return s.fallback(destination)
	}
	if len(resp.Results) == 0 {
		s.log.Warn("restaurant provider returned nothing, using fallback catalog", "destination", destination)
		return s.fallback(destination)
	}

	entries := make([]Entry, 0, maxLiveEntries)
	for _, r := range resp.Results {
		entry := Entry{
			Name:        r.Name,
			Cuisine:     "Local",
			PriceRange:  priceRange(r.PriceLevel),
			Rating:      float64(r.Rating),
			ReviewCount: r.UserRatingsTotal,
			Address:     r.FormattedAddress,
			URL:         "https://www.google.com/maps/place/?q=place_id:" + r.PlaceID,
			DataSource:  types.SourceLiveProvider,
		}
		// Detail fetch fills the canonical listing URL and cuisine hints;
		// a failed detail call keeps the search-level entry.
		if detail, err := s.places.PlaceDetails(ctx, &maps.PlaceDetailsRequest{PlaceID: r.PlaceID}); err == nil {
			if detail.Website != "" {
				entry.URL = detail.Website
			}
			if detail.FormattedAddress != "" {
				entry.Address = detail.FormattedAddress
			}
			if c := cuisineFromTypes(detail.Types); c != "" {
				entry.Cuisine = c
			}
		}
		entries = append(entries, entry)
		if len(entries) >= maxLiveEntries {
			break
		}
	}
	s.cacheSet(ctx, destination, entries)
	return entries
}

// Fallback exposes the static catalog for narrative grounding and template
// generation.
func (s *Service) Fallback(destination string) []Entry {
	return s.fallback(destination)
}

func (s *Service) fallback(destination string) []Entry {
	entries := Catalog(destination)
	for i := range entries {
		entries[i].DataSource = types.SourceFallback
	}
	return entries
}

func priceRange(level int) string {
	switch {
	case level <= 1:
		return "€"
	case level == 2:
		return "€€"
	case level == 3:
		return "€€€"
	default:
		return "€€€€"
	}
}

func cuisineFromTypes(placeTypes []string) string {
	for _, t := range placeTypes {
		switch t {
		case "cafe":
			return "Café"
		case "bakery":
			return "Bakery"
		case "bar":
			return "Bar"
		case "meal_takeaway":
			return "Street Food"
		}
	}
	return ""
}

func cacheKey(destination string) string {
	return "restaurants:" + strings.ToLower(strings.TrimSpace(destination))
}

func (s *Service) cacheGet(ctx context.Context, destination string) ([]Entry, bool) {
	if s.cache == nil {
		return nil, false
	}
	raw, err := s.cache.Get(ctx, cacheKey(destination)).Bytes()
	if err != nil {
		return nil, false
	}
	var entries []Entry
	if err := json.Unmarshal(raw, &entries); err != nil || len(entries) == 0 {
		return nil, false
	}
	return entries, true
}

func (s *Service) cacheSet(ctx context.Context, destination string, entries []Entry) {
	if s.cache == nil || len(entries) == 0 {
		return
	}
	raw, err := json.Marshal(entries)
	if err != nil {
		return
	}
	_ = s.cache.Set(ctx, cacheKey(destination), raw, cacheTTL).Err()
}
