// README: Static gazetteer mapping normalized city names to hub codes.
package locale

// gazetteer keys are normalized city names (lowercase, no region suffix).
// Content table, not logic: extend freely.
var gazetteer = map[string]string{
	"london":        "LHR",
	"paris":         "CDG",
	"rome":          "FCO",
	"madrid":        "MAD",
	"barcelona":     "BCN",
	"lisbon":        "LIS",
	"amsterdam":     "AMS",
	"berlin":        "BER",
	"munich":        "MUC",
	"frankfurt":     "FRA",
	"vienna":        "VIE",
	"zurich":        "ZRH",
	"geneva":        "GVA",
	"brussels":      "BRU",
	"copenhagen":    "CPH",
	"stockholm":     "ARN",
	"oslo":          "OSL",
	"helsinki":      "HEL",
	"dublin":        "DUB",
	"edinburgh":     "EDI",
	"manchester":    "MAN",
	"milan":         "MXP",
	"venice":        "VCE",
	"florence":      "FLR",
	"naples":        "NAP",
	"athens":        "ATH",
	"istanbul":      "IST",
	"prague":        "PRG",
	"budapest":      "BUD",
	"warsaw":        "WAW",
	"krakow":        "KRK",
	"porto":         "OPO",
	"seville":       "SVQ",
	"valencia":      "VLC",
	"nice":          "NCE",
	"lyon":          "LYS",
	"marseille":     "MRS",
	"new york":      "JFK",
	"los angeles":   "LAX",
	"san francisco": "SFO",
	"chicago":       "ORD",
	"boston":        "BOS",
	"washington":    "IAD",
	"miami":         "MIA",
	"seattle":       "SEA",
	"toronto":       "YYZ",
	"vancouver":     "YVR",
	"montreal":      "YUL",
	"mexico city":   "MEX",
	"dubai":         "DXB",
	"abu dhabi":     "AUH",
	"doha":          "DOH",
	"tokyo":         "HND",
	"osaka":         "KIX",
	"seoul":         "ICN",
	"beijing":       "PEK",
	"shanghai":      "PVG",
	"hong kong":     "HKG",
	"taipei":        "TPE",
	"singapore":     "SIN",
	"bangkok":       "BKK",
	"kuala lumpur":  "KUL",
	"jakarta":       "CGK",
	"manila":        "MNL",
	"delhi":         "DEL",
	"mumbai":        "BOM",
	"sydney":        "SYD",
	"melbourne":     "MEL",
	"auckland":      "AKL",
	"cairo":         "CAI",
	"marrakech":     "RAK",
	"cape town":     "CPT",
	"johannesburg":  "JNB",
	"nairobi":       "NBO",
	"rio de janeiro": "GIG",
	"sao paulo":     "GRU",
	"buenos aires":  "EZE",
	"lima":          "LIM",
	"bogota":        "BOG",
	"santiago":      "SCL",
	"reykjavik":     "KEF",
	"tashkent":      "TAS",
}
