// README: Activity acquisition — Places text search with catalog fallback and redis caching.
package activities

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"googlemaps.github.io/maps"

	"tripforge/internal/logger"
	"tripforge/internal/types"
)

const (
	maxLiveEntries = 8
	cacheTTL       = 30 * time.Minute
)

// PlacesSearcher is the slice of the Google Maps client this stage uses.
type PlacesSearcher interface {
	TextSearch(ctx context.Context, r *maps.TextSearchRequest) (maps.PlacesSearchResponse, error)
}

// Service acquires activities for a destination. A nil searcher (no
// credential, or the integration flagged off) serves the fallback catalog.
type Service struct {
	places PlacesSearcher
	cache  *redis.Client
	log    logger.Logger
}

func NewService(places PlacesSearcher, cache *redis.Client, log logger.Logger) *Service {
	return &Service{places: places, cache: cache, log: log}
}

// Fetch returns normalized activities, never an error: every failure class
// (no credential, provider error, empty result) degrades to the catalog.
func (s *Service) Fetch(ctx context.Context, destination string) []Entry {
	if s.places == nil {
		return s.fallback(destination)
	}

	if cached, ok := s.cacheGet(ctx, destination); ok {
		return cached
	}

	resp, err := s.places.TextSearch(ctx, &maps.TextSearchRequest{
		Query: "top attractions and things to do in " + destination,
	})
	if err != nil {
		s.log.Warn("activity provider error, using fallback catalog", "destination", destination, "err", err)
		return s.fallback(destination)
	}
	if len(resp.Results) == 0 {
		s.log.Warn("activity provider returned nothing, using fallback catalog", "destination", destination)
		return s.fallback(destination)
	}

	entries := make([]Entry, 0, maxLiveEntries)
	for _, r := range resp.Results {
		entries = append(entries, Entry{
			Title:       r.Name,
			Category:    Categorize(r.Name),
			Price:       priceFromLevel(r.PriceLevel),
			Currency:    "EUR",
			Rating:      float64(r.Rating),
			ReviewCount: r.UserRatingsTotal,
			Duration:    "2-3 hours",
			Description: r.FormattedAddress,
			BookingURL:  "https://www.google.com/maps/place/?q=place_id:" + r.PlaceID,
			DataSource:  types.SourceLiveProvider,
		})
		if len(entries) >= maxLiveEntries {
			break
		}
	}
	s.cacheSet(ctx, destination, entries)
	return entries
}

// Fallback exposes the static catalog directly; the narrative generator uses
// it as grounding and supplement input regardless of what the live provider
// returned.
func (s *Service) Fallback(destination string) []Entry {
	return s.fallback(destination)
}

func (s *Service) fallback(destination string) []Entry {
	entries := Catalog(destination)
	for i := range entries {
		entries[i].Category = Categorize(entries[i].Title)
		entries[i].Currency = "EUR"
		entries[i].DataSource = types.SourceFallback
	}
	return entries
}

// priceFromLevel maps the Places 0-4 price level onto a rough ticket price.
func priceFromLevel(level int) float64 {
	switch level {
	case 0:
		return 0
	case 1:
		return 15
	case 2:
		return 30
	case 3:
		return 60
	default:
		if level >= 4 {
			return 100
		}
		return 25
	}
}

func cacheKey(destination string) string {
	return "activities:" + strings.ToLower(strings.TrimSpace(destination))
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
	if err := s.cache.Set(ctx, cacheKey(destination), raw, cacheTTL).Err(); err != nil {
		s.log.Debug(fmt.Sprintf("activity cache write failed: %v", err))
	}
}
