// README: Per-city restaurant fallback catalog plus a generic set. Content, not logic.
package restaurants

import (
	"fmt"
	"strings"
)

var cityRestaurants = map[string][]Entry{
	"rome": {
		{Name: "Trattoria Da Enzo al 29", Cuisine: "Roman", PriceRange: "€€", Rating: 4.6, ReviewCount: 5240, Address: "Via dei Vascellari 29, Trastevere"},
		{Name: "Roscioli Salumeria", Cuisine: "Italian", PriceRange: "€€€", Rating: 4.5, ReviewCount: 4180, Address: "Via dei Giubbonari 21"},
		{Name: "Pizzarium Bonci", Cuisine: "Pizza", PriceRange: "€", Rating: 4.4, ReviewCount: 8930, Address: "Via della Meloria 43, Prati"},
		{Name: "Armando al Pantheon", Cuisine: "Roman", PriceRange: "€€", Rating: 4.5, ReviewCount: 3660, Address: "Salita de' Crescenzi 31"},
		{Name: "Giolitti", Cuisine: "Gelato", PriceRange: "€", Rating: 4.4, ReviewCount: 15200, Address: "Via degli Uffici del Vicario 40"},
		{Name: "La Pergola", Cuisine: "Fine Dining", PriceRange: "€€€€", Rating: 4.8, ReviewCount: 1890, Address: "Via Alberto Cadlolo 101"},
	},
	"paris": {
		{Name: "Le Comptoir du Relais", Cuisine: "Bistro", PriceRange: "€€€", Rating: 4.3, ReviewCount: 3120, Address: "9 Carrefour de l'Odéon"},
		{Name: "Breizh Café", Cuisine: "Crêperie", PriceRange: "€€", Rating: 4.5, ReviewCount: 4870, Address: "109 Rue Vieille du Temple, Le Marais"},
		{Name: "L'As du Fallafel", Cuisine: "Middle Eastern", PriceRange: "€", Rating: 4.4, ReviewCount: 11200, Address: "34 Rue des Rosiers"},
		{Name: "Bouillon Chartier", Cuisine: "French", PriceRange: "€", Rating: 4.2, ReviewCount: 28400, Address: "7 Rue du Faubourg Montmartre"},
		{Name: "Septime", Cuisine: "Modern French", PriceRange: "€€€€", Rating: 4.7, ReviewCount: 2310, Address: "80 Rue de Charonne"},
	},
	"london": {
		{Name: "Dishoom Shoreditch", Cuisine: "Indian", PriceRange: "€€", Rating: 4.7, ReviewCount: 16800, Address: "7 Boundary St, Shoreditch"},
		{Name: "Borough Market Kitchen", Cuisine: "Street Food", PriceRange: "€", Rating: 4.4, ReviewCount: 7650, Address: "8 Southwark St"},
		{Name: "The Barbary", Cuisine: "North African", PriceRange: "€€€", Rating: 4.6, ReviewCount: 2890, Address: "16 Neal's Yard, Covent Garden"},
		{Name: "Flat Iron Covent Garden", Cuisine: "Steakhouse", PriceRange: "€€", Rating: 4.5, ReviewCount: 9240, Address: "17-18 Henrietta St"},
		{Name: "Sketch", Cuisine: "Fine Dining", PriceRange: "€€€€", Rating: 4.3, ReviewCount: 10400, Address: "9 Conduit St, Mayfair"},
	},
	"barcelona": {
		{Name: "Cal Pep", Cuisine: "Tapas", PriceRange: "€€€", Rating: 4.4, ReviewCount: 4320, Address: "Plaça de les Olles 8, El Born"},
		{Name: "Bar Cañete", Cuisine: "Catalan", PriceRange: "€€€", Rating: 4.6, ReviewCount: 3780, Address: "Carrer de la Unió 17, El Raval"},
		{Name: "La Boqueria Market Stalls", Cuisine: "Market", PriceRange: "€", Rating: 4.5, ReviewCount: 21500, Address: "La Rambla 91"},
		{Name: "Brunells", Cuisine: "Bakery", PriceRange: "€", Rating: 4.6, ReviewCount: 1870, Address: "Carrer de la Princesa 22"},
		{Name: "Disfrutar", Cuisine: "Fine Dining", PriceRange: "€€€€", Rating: 4.8, ReviewCount: 2940, Address: "Carrer de Villarroel 163"},
	},
	"tokyo": {
		{Name: "Ichiran Shibuya", Cuisine: "Ramen", PriceRange: "€", Rating: 4.4, ReviewCount: 19200, Address: "1-22-7 Jinnan, Shibuya"},
		{Name: "Sushi no Midori Umegaoka", Cuisine: "Sushi", PriceRange: "€€", Rating: 4.5, ReviewCount: 6540, Address: "Umegaoka, Setagaya"},
		{Name: "Gonpachi Nishi-Azabu", Cuisine: "Izakaya", PriceRange: "€€€", Rating: 4.2, ReviewCount: 8870, Address: "1-13-11 Nishi-Azabu, Minato"},
		{Name: "Tsukiji Sushi Say", Cuisine: "Sushi", PriceRange: "€€", Rating: 4.3, ReviewCount: 3210, Address: "Tsukiji Outer Market"},
		{Name: "Den", Cuisine: "Modern Japanese", PriceRange: "€€€€", Rating: 4.7, ReviewCount: 1420, Address: "2-3-18 Jingumae, Shibuya"},
	},
}

// Catalog matches the destination case-insensitively against known city
// keys, else returns a generic set parameterized with the destination name.
func Catalog(destination string) []Entry {
	lower := strings.ToLower(destination)
	for key, entries := range cityRestaurants {
		if strings.Contains(lower, key) {
			out := make([]Entry, len(entries))
			copy(out, entries)
			return out
		}
	}
	return []Entry{
		{Name: fmt.Sprintf("Old Town Bistro %s", destination), Cuisine: "Local", PriceRange: "€€", Rating: 4.4, ReviewCount: 980,
			Address: "Historic Quarter, " + destination},
		{Name: fmt.Sprintf("Market Hall %s", destination), Cuisine: "Street Food", PriceRange: "€", Rating: 4.3, ReviewCount: 2140,
			Address: "Central Market, " + destination},
		{Name: "The Riverside Table", Cuisine: "Contemporary", PriceRange: "€€€", Rating: 4.5, ReviewCount: 760,
			Address: "Riverside, " + destination},
		{Name: "Corner Café & Bakery", Cuisine: "Café", PriceRange: "€", Rating: 4.2, ReviewCount: 1530,
			Address: "City Center, " + destination},
	}
}
