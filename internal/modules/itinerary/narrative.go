// README: Narrative day-plan generation with the day-count repair pass.
package itinerary

import (
	"context"
	"fmt"
	"strings"
	"time"

	"tripforge/internal/ai"
	"tripforge/internal/logger"
	"tripforge/internal/modules/activities"
	"tripforge/internal/modules/restaurants"
)

// Params carries everything the narrative stage needs for one trip.
type Params struct {
	Destination      string
	StartDate        time.Time
	Days             int
	Travelers        int
	Budget           float64
	Interests        []string
	LocalExperiences []string

	// Catalogs ground the prompt and feed the template fallback.
	Activities  []activities.Entry
	Restaurants []restaurants.Entry
}

// Generator produces the day-by-day plan. A nil provider means template-only
// operation; provider failures degrade the same way.
type Generator struct {
	provider ai.NarrativeProvider
	log      logger.Logger
}

func NewGenerator(provider ai.NarrativeProvider, log logger.Logger) *Generator {
	return &Generator{provider: provider, log: log}
}

// Generate returns exactly p.Days contiguous day plans numbered from 1.
// The model output is repaired rather than trusted: missing tail days are
// filled from the template builder, day numbers and dates are re-stamped,
// and a failed or unparsable generation falls back to a full template run.
func (g *Generator) Generate(ctx context.Context, p Params) []DayPlan {
	if p.Days < 1 {
		p.Days = 1
	}

	if g.provider == nil {
		return TemplateDays(p.StartDate, 1, p.Days, p.Activities, p.Restaurants)
	}

	generated, err := g.provider.GenerateDays(ctx, buildPrompt(p))
	if err != nil {
		g.log.Warn("narrative generation failed, using template itinerary",
			"destination", p.Destination, "err", err)
		return TemplateDays(p.StartDate, 1, p.Days, p.Activities, p.Restaurants)
	}

	days := make([]DayPlan, 0, p.Days)
	for i, gd := range generated {
		if i >= p.Days {
			break
		}
		days = append(days, fromGenerated(gd, i+1, p.StartDate))
	}

	if missing := p.Days - len(days); missing > 0 {
		g.log.Warn("narrative output short on days, supplementing tail",
			"destination", p.Destination, "got", len(days), "want", p.Days)
		days = append(days, TemplateDays(p.StartDate, len(days)+1, missing, p.Activities, p.Restaurants)...)
	}
	return days
}

// fromGenerated converts one model day, re-stamping the day number and date
// so the contiguity invariant never depends on model arithmetic.
func fromGenerated(gd ai.GeneratedDay, day int, start time.Time) DayPlan {
	plan := DayPlan{
		Day:   day,
		Date:  start.AddDate(0, 0, day-1).Format(dateLayout),
		Title: gd.Title,
	}
	if plan.Title == "" {
		plan.Title = fmt.Sprintf("Day %d", day)
	}
	for _, ga := range gd.Activities {
		item := ActivityItem{
			Time:              ga.Time,
			Title:             ga.Title,
			Description:       ga.Description,
			Category:          ga.Category,
			Price:             ga.Price,
			Currency:          ga.Currency,
			SkipTheLine:       ga.SkipTheLine,
			SkipTheLinePrice:  ga.SkipTheLinePrice,
			Duration:          ga.Duration,
			Tips:              ga.Tips,
			IsLocalExperience: ga.IsLocalExperience,
		}
		if item.Price < 0 {
			item.Price = 0
		}
		if item.Currency == "" {
			item.Currency = "EUR"
		}
		plan.Activities = append(plan.Activities, item)
	}
	return plan
}

func buildPrompt(p Params) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You are a travel planner. Create a day-by-day itinerary for a trip to %s.\n", p.Destination)
	fmt.Fprintf(&b, "Trip length: EXACTLY %d days, starting %s. You MUST produce exactly %d day objects, numbered 1 to %d.\n",
		p.Days, p.StartDate.Format(dateLayout), p.Days, p.Days)
	fmt.Fprintf(&b, "Travelers: %d. Total budget: %.0f EUR.\n", p.Travelers, p.Budget)

	if len(p.Interests) > 0 {
		b.WriteString("Style guidance: ")
		if len(p.Interests) == 1 {
			fmt.Fprintf(&b, "focus the trip on %s.\n", p.Interests[0])
		} else {
			fmt.Fprintf(&b, "blend these interests with equal weight across the days: %s.\n",
				strings.Join(p.Interests, ", "))
		}
	}
	if len(p.LocalExperiences) > 0 {
		fmt.Fprintf(&b, "Prioritize authentic local experiences in these categories and mark them with \"isLocalExperience\": true: %s.\n",
			strings.Join(p.LocalExperiences, ", "))
	}

	if names := entryTitles(p.Activities, 6); len(names) > 0 {
		fmt.Fprintf(&b, "Known activities you may draw on: %s.\n", strings.Join(names, "; "))
	}
	if names := restaurantNames(p.Restaurants, 6); len(names) > 0 {
		fmt.Fprintf(&b, "Known restaurants you may draw on: %s.\n", strings.Join(names, "; "))
	}

	b.WriteString(`Respond with ONLY a JSON array of day objects, each shaped as:
{
  "day": 1,
  "date": "YYYY-MM-DD",
  "title": "string",
  "activities": [
    {
      "time": "Morning" | "Lunch" | "Afternoon" | "Dinner" | "Evening",
      "title": "string",
      "description": "string",
      "category": "string",
      "price": number (per person, EUR),
      "currency": "EUR",
      "skipTheLine": boolean,
      "skipTheLinePrice": number,
      "duration": "string",
      "tips": "string",
      "isLocalExperience": boolean
    }
  ]
}
Include lunch and dinner entries each day. Prices must be non-negative.`)
	return b.String()
}

func entryTitles(acts []activities.Entry, limit int) []string {
	names := make([]string, 0, limit)
	for _, a := range acts {
		if len(names) == limit {
			break
		}
		names = append(names, a.Title)
	}
	return names
}

func restaurantNames(rests []restaurants.Entry, limit int) []string {
	names := make([]string, 0, limit)
	for _, r := range rests {
		if len(names) == limit {
			break
		}
		names = append(names, r.Name)
	}
	return names
}
