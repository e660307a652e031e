package lodging

import (
	"context"
	"testing"

	"tripforge/internal/logger"
	"tripforge/internal/types"
)

func TestFetchSkipped(t *testing.T) {
	svc := NewService(false, logger.Nop())
	res, err := svc.Fetch(context.Background(), "Rome", true)
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if !res.Skipped || len(res.Stays) != 0 {
		t.Errorf("want pure skipped result, got %+v", res)
	}
}

func TestFetchKnownCity(t *testing.T) {
	svc := NewService(false, logger.Nop())
	res, err := svc.Fetch(context.Background(), "Rome, Italy", false)
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if len(res.Stays) == 0 {
		t.Fatal("no stays returned")
	}
	for _, stay := range res.Stays {
		if stay.DataSource != types.SourceFallback {
			t.Errorf("stay %s dataSource = %s, want fallback", stay.Name, stay.DataSource)
		}
		if stay.Currency != "EUR" {
			t.Errorf("stay %s currency = %s, want EUR", stay.Name, stay.Currency)
		}
	}
}

func TestFetchUnknownCityGeneric(t *testing.T) {
	svc := NewService(false, logger.Nop())
	res, err := svc.Fetch(context.Background(), "Nowhereville", false)
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if len(res.Stays) == 0 {
		t.Fatal("generic catalog must not be empty")
	}
	found := false
	for _, stay := range res.Stays {
		if containsDestination(stay.Area, "Nowhereville") {
			found = true
		}
	}
	if !found {
		t.Errorf("generic stays should be parameterized with the destination: %+v", res.Stays)
	}
}

func containsDestination(area, dest string) bool {
	return len(area) >= len(dest) && area[len(area)-len(dest):] == dest
}
