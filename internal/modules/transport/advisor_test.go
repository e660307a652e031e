package transport

import "testing"

func TestAdviseKnownCity(t *testing.T) {
	options := Advise("Rome, Italy")
	if len(options) != 3 {
		t.Fatalf("options = %d, want 3", len(options))
	}
	if options[0].Mode != "Metro & Bus (ATAC)" {
		t.Errorf("unexpected first mode %q", options[0].Mode)
	}
}

func TestAdviseCityTokenBeforeComma(t *testing.T) {
	withComma := Advise("paris, france")
	bare := Advise("Paris")
	if withComma[0].Mode != bare[0].Mode {
		t.Errorf("comma handling broken: %q vs %q", withComma[0].Mode, bare[0].Mode)
	}
}

func TestAdviseUnknownCityGeneric(t *testing.T) {
	options := Advise("Nowhereville")
	if len(options) != 3 {
		t.Fatalf("generic response must have 3 entries, got %d", len(options))
	}
	modes := map[string]bool{}
	for _, o := range options {
		modes[o.Mode] = true
		if o.Currency == "" {
			t.Errorf("option %q missing currency", o.Mode)
		}
	}
	for _, want := range []string{"Public Transport", "Rideshare", "Taxi"} {
		if !modes[want] {
			t.Errorf("generic response missing %q", want)
		}
	}
}
