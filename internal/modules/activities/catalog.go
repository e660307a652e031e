// README: Per-city activity fallback catalog plus a generic set. Content, not logic.
package activities

import (
	"fmt"
	"strings"
)

var cityActivities = map[string][]Entry{
	"rome": {
		{Title: "Colosseum & Roman Forum Guided Tour", Price: 55, Rating: 4.7, ReviewCount: 12840, Duration: "3 hours",
			Description: "Skip the queues and walk the arena floor with an archaeologist guide."},
		{Title: "Vatican Museums & Sistine Chapel", Price: 42, Rating: 4.6, ReviewCount: 9530, Duration: "3 hours",
			Description: "Early-entry visit to the Vatican collections and the Sistine Chapel."},
		{Title: "Trastevere Food Tasting Walk", Price: 68, Rating: 4.8, ReviewCount: 3120, Duration: "3.5 hours",
			Description: "Supplì, porchetta, and natural wine across six family-run stops."},
		{Title: "Borghese Gallery Entry", Price: 25, Rating: 4.7, ReviewCount: 5210, Duration: "2 hours",
			Description: "Timed entry to Bernini's sculptures and Caravaggio's canvases."},
		{Title: "Tiber Evening Cruise", Price: 30, Rating: 4.2, ReviewCount: 1480, Duration: "1.5 hours",
			Description: "Sunset cruise under Rome's bridges with a welcome drink."},
		{Title: "Pasta Making Class with Local Chef", Price: 75, Rating: 4.9, ReviewCount: 2650, Duration: "3 hours",
			Description: "Hands-on fettuccine and tiramisù class near Campo de' Fiori."},
	},
	"paris": {
		{Title: "Louvre Museum Timed Entry", Price: 22, Rating: 4.6, ReviewCount: 18450, Duration: "3 hours",
			Description: "Reserved entry to the world's largest art museum."},
		{Title: "Seine River Cruise", Price: 18, Rating: 4.4, ReviewCount: 14210, Duration: "1 hour",
			Description: "Classic riverboat loop past Notre-Dame and the Eiffel Tower."},
		{Title: "Montmartre Walking Tour", Price: 25, Rating: 4.7, ReviewCount: 4320, Duration: "2 hours",
			Description: "Artists' square, hidden vineyards, and Sacré-Cœur views."},
		{Title: "Eiffel Tower Summit Access", Price: 38, Rating: 4.5, ReviewCount: 22100, Duration: "2 hours",
			Description: "Lift ticket to the summit with priority lane."},
		{Title: "Le Marais Food & Wine Tasting", Price: 85, Rating: 4.8, ReviewCount: 1980, Duration: "3 hours",
			Description: "Cheese, charcuterie, and wine pairings in the old Jewish quarter."},
	},
	"london": {
		{Title: "Tower of London & Crown Jewels", Price: 33, Rating: 4.6, ReviewCount: 16730, Duration: "3 hours",
			Description: "Beefeater-led tour of the fortress and the Crown Jewels."},
		{Title: "British Museum Highlights Tour", Price: 20, Rating: 4.7, ReviewCount: 8840, Duration: "2 hours",
			Description: "The Rosetta Stone and Parthenon sculptures with an expert guide."},
		{Title: "Thames River Cruise", Price: 16, Rating: 4.3, ReviewCount: 9670, Duration: "1 hour",
			Description: "Westminster to Greenwich with live commentary."},
		{Title: "Borough Market Food Walk", Price: 60, Rating: 4.8, ReviewCount: 2310, Duration: "2.5 hours",
			Description: "London's oldest food market, tasting as you go."},
		{Title: "West End Theatre Show", Price: 70, Rating: 4.7, ReviewCount: 5420, Duration: "2.5 hours",
			Description: "Evening performance in the heart of Theatreland."},
	},
	"barcelona": {
		{Title: "Sagrada Família Fast-Track Entry", Price: 35, Rating: 4.8, ReviewCount: 21300, Duration: "1.5 hours",
			Description: "Timed entry to Gaudí's basilica with audio guide."},
		{Title: "Gothic Quarter Walking Tour", Price: 20, Rating: 4.6, ReviewCount: 5130, Duration: "2 hours",
			Description: "Roman walls, hidden squares, and cathedral cloisters."},
		{Title: "Tapas & Wine Evening", Price: 65, Rating: 4.8, ReviewCount: 2760, Duration: "3 hours",
			Description: "Five tapas bars in El Born with a local host."},
		{Title: "Park Güell Admission", Price: 13, Rating: 4.5, ReviewCount: 16200, Duration: "1.5 hours",
			Description: "Gaudí's mosaic park overlooking the city."},
		{Title: "Sailing Experience from Port Olímpic", Price: 55, Rating: 4.7, ReviewCount: 980, Duration: "2 hours",
			Description: "Small-group sail along the Barceloneta coastline."},
	},
	"tokyo": {
		{Title: "Tsukiji Outer Market Food Tour", Price: 80, Rating: 4.8, ReviewCount: 3450, Duration: "3 hours",
			Description: "Tamagoyaki, tuna, and street snacks with a local foodie."},
		{Title: "teamLab Planets Admission", Price: 25, Rating: 4.7, ReviewCount: 12850, Duration: "2 hours",
			Description: "Immersive digital art museum in Toyosu."},
		{Title: "Asakusa & Senso-ji Walking Tour", Price: 30, Rating: 4.6, ReviewCount: 4210, Duration: "2 hours",
			Description: "Old Tokyo backstreets and the city's oldest temple."},
		{Title: "Sumida River Cruise", Price: 12, Rating: 4.3, ReviewCount: 2890, Duration: "40 minutes",
			Description: "Water bus from Asakusa to Hamarikyu Gardens."},
		{Title: "Sushi Making Experience", Price: 90, Rating: 4.9, ReviewCount: 1540, Duration: "2.5 hours",
			Description: "Roll your own nigiri with a licensed sushi chef."},
	},
}

// Catalog returns the fallback catalog for a destination: the per-city set
// when a known city key matches, else a generic set parameterized with the
// destination name. Entries carry no dataSource; callers stamp it.
func Catalog(destination string) []Entry {
	lower := strings.ToLower(destination)
	for key, entries := range cityActivities {
		if strings.Contains(lower, key) {
			out := make([]Entry, len(entries))
			copy(out, entries)
			return out
		}
	}
	return genericCatalog(destination)
}

func genericCatalog(destination string) []Entry {
	return []Entry{
		{Title: fmt.Sprintf("%s Old Town Walking Tour", destination), Price: 25, Rating: 4.5, ReviewCount: 1250, Duration: "2 hours",
			Description: fmt.Sprintf("Guided walk through the historic heart of %s.", destination)},
		{Title: fmt.Sprintf("%s City Museum", destination), Price: 15, Rating: 4.3, ReviewCount: 890, Duration: "2 hours",
			Description: "Local history and art under one roof."},
		{Title: fmt.Sprintf("Panoramic Sightseeing Tour of %s", destination), Price: 35, Rating: 4.4, ReviewCount: 2100, Duration: "3 hours",
			Description: "The landmarks, viewpoints, and stories that define the city."},
		{Title: fmt.Sprintf("%s Food Market Tasting", destination), Price: 50, Rating: 4.6, ReviewCount: 760, Duration: "2.5 hours",
			Description: "Sample regional specialties with a local guide."},
		{Title: fmt.Sprintf("Day Trip from %s", destination), Price: 80, Rating: 4.5, ReviewCount: 540, Duration: "8 hours",
			Description: "Escape the city for the region's best-known excursion."},
	}
}
