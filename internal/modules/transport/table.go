// README: Static per-city transportation knowledge table. Content, not logic.
package transport

var cityTransport = map[string][]Option{
	"rome": {
		{Mode: "Metro & Bus (ATAC)", Currency: "EUR", SinglePrice: 1.50, DayPassPrice: 7,
			Description: "Two metro lines plus a dense bus network; the 24h ticket covers both.",
			Tip:         "Validate paper tickets in the yellow machines."},
		{Mode: "Rideshare", Currency: "EUR", PriceRangeLow: 8, PriceRangeHigh: 20,
			Description: "Uber operates Black-tier only; FreeNow books licensed taxis.",
			Tip:         "FreeNow is usually cheaper than Uber in Rome."},
		{Mode: "Taxi", Currency: "EUR", PriceRangeLow: 10, PriceRangeHigh: 25,
			Description: "White licensed taxis from official ranks; fixed airport rates.",
			Tip:         "The fixed fare to Fiumicino is €50 from inside the Aurelian walls."},
	},
	"paris": {
		{Mode: "Métro & RER", Currency: "EUR", SinglePrice: 2.15, DayPassPrice: 8.65,
			Description: "Sixteen metro lines; the Navigo Jour pass covers zones 1-5.",
			Tip:         "Keep your ticket until you exit; inspections are common."},
		{Mode: "Rideshare", Currency: "EUR", PriceRangeLow: 10, PriceRangeHigh: 30,
			Description: "Uber and Bolt both operate citywide.",
			Tip:         "Surge pricing is steep around midnight when the metro closes."},
		{Mode: "Taxi", Currency: "EUR", PriceRangeLow: 12, PriceRangeHigh: 35,
			Description: "G7 taxis can be hailed or booked; fixed airport fares apply.",
			Tip:         "Flat rate to CDG: €56 right bank, €65 left bank."},
	},
	"london": {
		{Mode: "Tube & Bus (TfL)", Currency: "EUR", SinglePrice: 3.10, DayPassPrice: 9.20,
			Description: "Contactless pay-as-you-go caps at the day-pass price automatically.",
			Tip:         "Just tap a contactless card — no ticket needed."},
		{Mode: "Rideshare", Currency: "EUR", PriceRangeLow: 10, PriceRangeHigh: 35,
			Description: "Uber, Bolt, and FreeNow all operate.",
			Tip:         "Black cabs accept card and can use bus lanes in traffic."},
		{Mode: "Taxi", Currency: "EUR", PriceRangeLow: 15, PriceRangeHigh: 45,
			Description: "Iconic black cabs are metered and hailable on the street.",
			Tip:         "Drivers know the city by heart — no postcode needed."},
	},
	"barcelona": {
		{Mode: "Metro & Bus (TMB)", Currency: "EUR", SinglePrice: 2.55, DayPassPrice: 11.20,
			Description: "The T-casual 10-trip card is the best value for most visits.",
			Tip:         "The metro runs all night on Saturdays."},
		{Mode: "Rideshare", Currency: "EUR", PriceRangeLow: 7, PriceRangeHigh: 20,
			Description: "Free Now and Cabify dominate; Uber availability varies.",
			Tip:         "Book ahead during trade fairs — demand spikes."},
		{Mode: "Taxi", Currency: "EUR", PriceRangeLow: 9, PriceRangeHigh: 25,
			Description: "Black-and-yellow taxis are plentiful and metered.",
			Tip:         "Green roof light means available."},
	},
	"tokyo": {
		{Mode: "Metro & JR", Currency: "EUR", SinglePrice: 1.40, DayPassPrice: 5.60,
			Description: "Suica/Pasmo IC cards work across metro, JR, and buses.",
			Tip:         "Trains stop around midnight; plan the last ride home."},
		{Mode: "Rideshare", Currency: "EUR", PriceRangeLow: 15, PriceRangeHigh: 40,
			Description: "GO is the dominant taxi-hailing app; Uber books licensed taxis.",
			Tip:         "Rideshare is taxi-priced in Japan — the train is far cheaper."},
		{Mode: "Taxi", Currency: "EUR", PriceRangeLow: 15, PriceRangeHigh: 50,
			Description: "Doors open automatically; drivers rarely speak English.",
			Tip:         "Show your destination written in Japanese."},
	},
}
