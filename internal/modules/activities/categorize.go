// README: Title-keyword category derivation for activities.
package activities

import "strings"

// categoryKeywords is checked in priority order; first match wins.
var categoryKeywords = []struct {
	category string
	keywords []string
}{
	{"museum", []string{"museum", "gallery", "exhibit"}},
	{"tour", []string{"tour", "walking", "guided", "sightseeing"}},
	{"food", []string{"food", "tasting", "culinary", "wine", "cooking", "market"}},
	{"cruise", []string{"cruise", "boat", "river", "sail"}},
	{"entertainment", []string{"show", "concert", "theater", "theatre", "nightlife"}},
	{"adventure", []string{"hike", "bike", "climb", "kayak", "adventure", "zip"}},
	{"experience", []string{"experience", "workshop", "class"}},
	{"attraction", []string{"attraction", "landmark", "palace", "cathedral", "castle", "park"}},
}

// Categorize derives a category tag from the activity title.
func Categorize(title string) string {
	lower := strings.ToLower(title)
	for _, entry := range categoryKeywords {
		for _, kw := range entry.keywords {
			if strings.Contains(lower, kw) {
				return entry.category
			}
		}
	}
	return "attraction"
}
