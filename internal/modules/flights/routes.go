// README: Static route/airline knowledge tables for fare synthesis. Content, not logic.
package flights

// routeInfo models a hub pair with a typical nonstop duration (minutes) and a
// mid-tier round-trip base price (EUR, per person).
type routeInfo struct {
	durationMin int
	basePrice   float64
}

// defaultRoute is used when a hub pair is not in the table.
var defaultRoute = routeInfo{durationMin: 150, basePrice: 220}

// hubRoutes is keyed "AAA-BBB"; lookups try both directions.
var hubRoutes = map[string]routeInfo{
	"LHR-CDG": {75, 120},
	"LHR-FCO": {150, 160},
	"LHR-MAD": {145, 150},
	"LHR-BCN": {125, 140},
	"LHR-AMS": {70, 110},
	"LHR-BER": {105, 130},
	"LHR-LIS": {160, 155},
	"LHR-ATH": {220, 190},
	"LHR-IST": {235, 210},
	"LHR-JFK": {480, 450},
	"LHR-DXB": {410, 380},
	"CDG-FCO": {120, 140},
	"CDG-MAD": {120, 135},
	"CDG-BCN": {100, 125},
	"CDG-BER": {105, 130},
	"CDG-AMS": {75, 110},
	"CDG-IST": {210, 200},
	"CDG-JFK": {500, 470},
	"FCO-ATH": {115, 130},
	"FCO-BCN": {110, 125},
	"FCO-MAD": {150, 145},
	"MAD-BCN": {80, 90},
	"MAD-LIS": {80, 95},
	"AMS-BER": {80, 105},
	"BER-PRG": {55, 85},
	"VIE-BUD": {45, 80},
	"IST-DXB": {240, 250},
	"DXB-SIN": {440, 420},
	"DXB-BKK": {390, 360},
	"JFK-LAX": {370, 320},
	"JFK-MIA": {190, 210},
	"SFO-LAX": {85, 110},
	"HND-ICN": {140, 180},
	"HND-TPE": {220, 230},
	"SIN-BKK": {150, 160},
	"SIN-HKG": {235, 250},
	"SYD-MEL": {95, 120},
}

// Region hub-code sets used to infer a plausible carrier roster for
// synthesized fares. A pair matching neither endpoint falls back to the
// European roster.
var (
	euHubs = map[string]bool{
		"LHR": true, "LGW": true, "MAN": true, "EDI": true, "DUB": true,
		"CDG": true, "ORY": true, "NCE": true, "LYS": true, "MRS": true,
		"FCO": true, "MXP": true, "VCE": true, "FLR": true, "NAP": true,
		"MAD": true, "BCN": true, "SVQ": true, "VLC": true, "LIS": true, "OPO": true,
		"AMS": true, "BRU": true, "BER": true, "MUC": true, "FRA": true,
		"VIE": true, "ZRH": true, "GVA": true, "CPH": true, "ARN": true,
		"OSL": true, "HEL": true, "ATH": true, "IST": true, "PRG": true,
		"BUD": true, "WAW": true, "KRK": true, "KEF": true,
	}
	usHubs = map[string]bool{
		"JFK": true, "LGA": true, "EWR": true, "LAX": true, "SFO": true,
		"ORD": true, "BOS": true, "IAD": true, "MIA": true, "SEA": true,
		"YYZ": true, "YVR": true, "YUL": true, "MEX": true,
	}
	asiaHubs = map[string]bool{
		"HND": true, "NRT": true, "KIX": true, "ICN": true, "PEK": true,
		"PVG": true, "HKG": true, "TPE": true, "SIN": true, "BKK": true,
		"KUL": true, "CGK": true, "MNL": true, "DEL": true, "BOM": true,
		"DXB": true, "AUH": true, "DOH": true,
	}
)

type airline struct {
	name    string
	code    string
	lowCost bool
}

var (
	euAirlines = []airline{
		{"Lufthansa", "LH", false},
		{"Air France", "AF", false},
		{"British Airways", "BA", false},
		{"KLM", "KL", false},
		{"Ryanair", "FR", true},
		{"EasyJet", "U2", true},
	}
	usAirlines = []airline{
		{"United Airlines", "UA", false},
		{"Delta Air Lines", "DL", false},
		{"American Airlines", "AA", false},
		{"JetBlue", "B6", true},
	}
	asiaAirlines = []airline{
		{"Singapore Airlines", "SQ", false},
		{"Cathay Pacific", "CX", false},
		{"ANA", "NH", false},
		{"Emirates", "EK", false},
		{"AirAsia", "AK", true},
	}
)

// lookupRoute returns the route model for a hub pair, trying both directions.
func lookupRoute(origin, destination string) routeInfo {
	if r, ok := hubRoutes[origin+"-"+destination]; ok {
		return r
	}
	if r, ok := hubRoutes[destination+"-"+origin]; ok {
		return r
	}
	return defaultRoute
}

// rosterFor picks an airline roster by matching either endpoint against the
// region sets. Unmatched regions default to the European roster.
func rosterFor(origin, destination string) []airline {
	switch {
	case usHubs[origin] || usHubs[destination]:
		return usAirlines
	case asiaHubs[origin] || asiaHubs[destination]:
		return asiaAirlines
	default:
		return euAirlines
	}
}

// airlineNames maps carrier IATA codes to display names for live offers that
// arrive without one.
var airlineNames = map[string]string{
	"LH": "Lufthansa", "AF": "Air France", "BA": "British Airways",
	"KL": "KLM", "IB": "Iberia", "AZ": "ITA Airways", "LX": "Swiss",
	"OS": "Austrian Airlines", "TK": "Turkish Airlines", "FR": "Ryanair",
	"U2": "EasyJet", "W6": "Wizz Air", "UA": "United Airlines",
	"DL": "Delta Air Lines", "AA": "American Airlines", "B6": "JetBlue",
	"EK": "Emirates", "QR": "Qatar Airways", "EY": "Etihad Airways",
	"SQ": "Singapore Airlines", "CX": "Cathay Pacific", "NH": "ANA",
	"JL": "Japan Airlines", "KE": "Korean Air", "AK": "AirAsia",
	"ZZ": "Duffel Airways",
}

func airlineName(code string) string {
	if name, ok := airlineNames[code]; ok {
		return name
	}
	if code != "" {
		return code + " Airlines"
	}
	return "Unknown Airline"
}
