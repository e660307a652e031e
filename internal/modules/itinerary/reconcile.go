// README: Post-pass that attaches real restaurant metadata to meal entries.
package itinerary

import (
	"strings"

	"tripforge/internal/modules/restaurants"
)

// Reconcile matches meal entries in the day plans against acquired
// restaurant records and merges their metadata in. Matching order per entry:
// exact case-insensitive name, substring either direction, then positional
// assignment mirroring the template generator's day/slot rule. Running it
// twice yields the same output as running it once.
func Reconcile(days []DayPlan, rests []restaurants.Entry) {
	if len(rests) == 0 {
		return
	}
	for d := range days {
		mealIdx := 0
		for i := range days[d].Activities {
			item := &days[d].Activities[i]
			if !isMeal(item) {
				continue
			}
			match, ok := findMatch(item.Title, rests)
			if !ok {
				match = rests[((days[d].Day-1)*2+mealIdx)%len(rests)]
			}
			mealIdx++
			merge(item, match)
		}
	}
}

func isMeal(item *ActivityItem) bool {
	category := strings.ToLower(item.Category)
	if category == "restaurant" || category == "meal" {
		return true
	}
	title := strings.ToLower(item.Title)
	for _, kw := range []string{"breakfast", "lunch", "dinner", "restaurant"} {
		if strings.Contains(title, kw) {
			return true
		}
	}
	return false
}

func findMatch(title string, rests []restaurants.Entry) (restaurants.Entry, bool) {
	lower := strings.ToLower(title)
	for _, r := range rests {
		if strings.ToLower(r.Name) == lower {
			return r, true
		}
	}
	for _, r := range rests {
		name := strings.ToLower(r.Name)
		if name != "" && (strings.Contains(lower, name) || strings.Contains(name, lower)) {
			return r, true
		}
	}
	return restaurants.Entry{}, false
}

// merge overwrites the entry with the matched restaurant's identity when the
// match carries real directory signal (a rating or a listing URL). Weaker
// matches leave the entry as its source produced it.
func merge(item *ActivityItem, r restaurants.Entry) {
	if r.Rating == 0 && r.URL == "" {
		return
	}
	meal := mealLabel(item)
	if meal != "" {
		item.Title = meal + " at " + r.Name
	} else {
		item.Title = r.Name
	}
	item.Cuisine = r.Cuisine
	item.PriceRange = r.PriceRange
	item.Address = r.Address
	item.Rating = r.Rating
	if item.Category == "" {
		item.Category = "restaurant"
	}
}

// mealLabel recovers the meal word so re-titled entries stay readable and a
// second reconciliation pass matches the same restaurant again.
func mealLabel(item *ActivityItem) string {
	source := strings.ToLower(item.Time + " " + item.Title)
	for _, meal := range []string{"breakfast", "lunch", "dinner"} {
		if strings.Contains(source, meal) {
			return strings.ToUpper(meal[:1]) + meal[1:]
		}
	}
	return ""
}
