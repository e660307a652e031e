// README: Deterministic template day builder. Fills whole itineraries or the tail the model left short.
package itinerary

import (
	"fmt"
	"time"

	"tripforge/internal/modules/activities"
	"tripforge/internal/modules/restaurants"
)

const dateLayout = "2006-01-02"

// TemplateDays builds n deterministic day plans starting at day number
// firstDay, cycling through the activity and restaurant catalogs. Each day
// has the fixed four-slot shape: morning activity, lunch, afternoon
// activity, dinner.
func TemplateDays(start time.Time, firstDay, n int, acts []activities.Entry, rests []restaurants.Entry) []DayPlan {
	days := make([]DayPlan, 0, n)
	for i := 0; i < n; i++ {
		day := firstDay + i
		days = append(days, templateDay(day, start.AddDate(0, 0, day-1), acts, rests))
	}
	return days
}

func templateDay(day int, date time.Time, acts []activities.Entry, rests []restaurants.Entry) DayPlan {
	idx := day - 1
	plan := DayPlan{
		Day:   day,
		Date:  date.Format(dateLayout),
		Title: fmt.Sprintf("Day %d: Exploring", day),
	}

	// Activity slots cycle through the catalog two per day; lunch and
	// dinner alternate distinct restaurants the same way.
	plan.Activities = append(plan.Activities, activitySlot("Morning", acts, idx*2))
	plan.Activities = append(plan.Activities, mealSlot("Lunch", rests, idx*2))
	plan.Activities = append(plan.Activities, activitySlot("Afternoon", acts, idx*2+1))
	plan.Activities = append(plan.Activities, mealSlot("Dinner", rests, idx*2+1))
	return plan
}

func activitySlot(timeLabel string, acts []activities.Entry, idx int) ActivityItem {
	if len(acts) == 0 {
		return ActivityItem{
			Time:     timeLabel,
			Title:    "Free time to explore",
			Category: "attraction",
			Currency: "EUR",
		}
	}
	a := acts[idx%len(acts)]
	return ActivityItem{
		Time:        timeLabel,
		Title:       a.Title,
		Description: a.Description,
		Category:    a.Category,
		Price:       a.Price,
		Currency:    a.Currency,
		Duration:    a.Duration,
	}
}

func mealSlot(timeLabel string, rests []restaurants.Entry, idx int) ActivityItem {
	if len(rests) == 0 {
		return ActivityItem{
			Time:     timeLabel,
			Title:    timeLabel + " at a local restaurant",
			Category: "restaurant",
			Price:    20,
			Currency: "EUR",
		}
	}
	r := rests[idx%len(rests)]
	return ActivityItem{
		Time:        timeLabel,
		Title:       timeLabel + " at " + r.Name,
		Description: r.Description,
		Category:    "restaurant",
		Price:       mealPrice(r.PriceRange),
		Currency:    "EUR",
		Cuisine:     r.Cuisine,
		PriceRange:  r.PriceRange,
		Address:     r.Address,
		Rating:      r.Rating,
	}
}

// mealPrice turns a price-tier glyph into a nominal per-person estimate.
func mealPrice(priceRange string) float64 {
	switch priceRange {
	case "€":
		return 12
	case "€€":
		return 25
	case "€€€":
		return 45
	case "€€€€":
		return 80
	default:
		return 20
	}
}
