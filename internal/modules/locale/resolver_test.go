// README: Resolver unit tests covering all matching tiers.
package locale

import "testing"

func TestResolve(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		// already a code
		{"CDG", "CDG"},
		{"jfk", "JFK"},
		// embedded codes
		{"Paris (CDG)", "CDG"},
		{"London - LHR", "LHR"},
		{"Rome – FCO", "FCO"},
		// exact gazetteer match after normalization
		{"paris", "CDG"},
		{"Paris", "CDG"},
		{"Paris, France", "CDG"},
		{"Rome, Italy", "FCO"},
		{"London Airport", "LHR"},
		// substring either direction
		{"Greater London", "LHR"},
		{"new york city", "JFK"},
		// misses
		{"Nowhereville", ""},
		{"", ""},
		{"   ", ""},
	}
	for _, tc := range cases {
		if got := Resolve(tc.in); got != tc.want {
			t.Errorf("Resolve(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestResolveDeterministic(t *testing.T) {
	// Same input must always map to the same code even though gazetteer
	// iteration order is random: exact match runs before substring scan.
	for i := 0; i < 50; i++ {
		if got := Resolve("paris"); got != "CDG" {
			t.Fatalf("iteration %d: Resolve(paris) = %q", i, got)
		}
	}
}
