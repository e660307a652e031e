package itinerary

import (
	"reflect"
	"testing"

	"tripforge/internal/modules/restaurants"
)

func testRestaurants() []restaurants.Entry {
	return []restaurants.Entry{
		{Name: "Trattoria Vecchia", Cuisine: "Roman", PriceRange: "€€", Rating: 4.6, Address: "Via Vecchia 3"},
		{Name: "Pizzeria Sole", Cuisine: "Pizza", PriceRange: "€", Rating: 4.4, Address: "Piazza Sole 9"},
		{Name: "Il Giardino", Cuisine: "Italian", PriceRange: "€€€", Rating: 4.7, Address: "Via Giardino 12"},
	}
}

func TestReconcileExactNameMatch(t *testing.T) {
	days := []DayPlan{{Day: 1, Activities: []ActivityItem{
		{Time: "Lunch", Title: "trattoria vecchia", Category: "restaurant", Currency: "EUR"},
	}}}
	Reconcile(days, testRestaurants())
	got := days[0].Activities[0]
	if got.Rating != 4.6 || got.Cuisine != "Roman" || got.Address != "Via Vecchia 3" {
		t.Errorf("exact match metadata not merged: %+v", got)
	}
}

func TestReconcileSubstringMatch(t *testing.T) {
	days := []DayPlan{{Day: 1, Activities: []ActivityItem{
		{Time: "Dinner", Title: "Dinner at Pizzeria Sole", Category: "restaurant", Currency: "EUR"},
	}}}
	Reconcile(days, testRestaurants())
	got := days[0].Activities[0]
	if got.Cuisine != "Pizza" || got.PriceRange != "€" {
		t.Errorf("substring match metadata not merged: %+v", got)
	}
	if got.Title != "Dinner at Pizzeria Sole" {
		t.Errorf("title rewritten unexpectedly: %q", got.Title)
	}
}

func TestReconcilePositionalAssignment(t *testing.T) {
	rests := testRestaurants()
	days := []DayPlan{{Day: 2, Activities: []ActivityItem{
		{Time: "Lunch", Title: "Lunch break", Category: "meal", Currency: "EUR"},
		{Time: "Dinner", Title: "Dinner somewhere nice", Category: "meal", Currency: "EUR"},
	}}}
	Reconcile(days, rests)
	// Day 2 meals map to catalog indices 2 and 3 mod 3.
	if days[0].Activities[0].Cuisine != rests[2].Cuisine {
		t.Errorf("lunch positional match wrong: %+v", days[0].Activities[0])
	}
	if days[0].Activities[1].Cuisine != rests[0].Cuisine {
		t.Errorf("dinner positional match wrong: %+v", days[0].Activities[1])
	}
}

func TestReconcileSkipsNonMeals(t *testing.T) {
	days := []DayPlan{{Day: 1, Activities: []ActivityItem{
		{Time: "Morning", Title: "Colosseum Tour", Category: "tour", Currency: "EUR"},
	}}}
	Reconcile(days, testRestaurants())
	got := days[0].Activities[0]
	if got.Rating != 0 || got.Cuisine != "" || got.Title != "Colosseum Tour" {
		t.Errorf("non-meal entry modified: %+v", got)
	}
}

func TestReconcileNoRestaurantsLeavesPlanAlone(t *testing.T) {
	days := []DayPlan{{Day: 1, Activities: []ActivityItem{
		{Time: "Lunch", Title: "Lunch break", Category: "meal", Currency: "EUR"},
	}}}
	before := days[0].Activities[0]
	Reconcile(days, nil)
	if !reflect.DeepEqual(before, days[0].Activities[0]) {
		t.Errorf("plan changed without restaurant data: %+v", days[0].Activities[0])
	}
}

func TestReconcileIdempotent(t *testing.T) {
	rests := testRestaurants()
	days := []DayPlan{
		{Day: 1, Activities: []ActivityItem{
			{Time: "Morning", Title: "Forum Walk", Category: "tour", Currency: "EUR"},
			{Time: "Lunch", Title: "Lunch break", Category: "meal", Currency: "EUR"},
			{Time: "Dinner", Title: "Dinner at Il Giardino", Category: "restaurant", Currency: "EUR"},
		}},
		{Day: 2, Activities: []ActivityItem{
			{Time: "Lunch", Title: "Quick lunch", Category: "meal", Currency: "EUR"},
		}},
	}
	Reconcile(days, rests)
	once := make([]DayPlan, len(days))
	for i, d := range days {
		once[i] = DayPlan{Day: d.Day, Date: d.Date, Title: d.Title}
		once[i].Activities = append([]ActivityItem(nil), d.Activities...)
	}
	Reconcile(days, rests)
	if !reflect.DeepEqual(once, days) {
		t.Errorf("second pass changed output:\nonce:  %+v\ntwice: %+v", once, days)
	}
}
