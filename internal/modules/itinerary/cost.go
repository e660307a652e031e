// README: Daily incidental-expense estimate.
package itinerary

import "math"

const (
	dailyExpenseFloor = 50
	incidentalShare   = 0.3
	baselineTripDays  = 7
)

// EstimateDailyExpenses assumes 30% of the total budget covers a nominal
// seven-day baseline of incidentals regardless of actual trip length,
// floored at 50 EUR per day.
func EstimateDailyExpenses(totalBudget float64) float64 {
	if totalBudget < 0 {
		totalBudget = 0
	}
	daily := math.Round(incidentalShare * totalBudget / baselineTripDays)
	if daily < dailyExpenseFloor {
		return dailyExpenseFloor
	}
	return daily
}
