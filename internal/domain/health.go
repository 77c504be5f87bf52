package domain

import "math"

// WeeklySummaryDays is the size of the rolling health window.
const WeeklySummaryDays = 7

// CaloriesPerStep is the burned-calorie estimate per step.
const CaloriesPerStep = 0.04

// DailySteps is one day's recorded step count.
type DailySteps struct {
	Date  Date  `json:"date"`
	Steps int64 `json:"steps"`
}

// MealFood is one food line item of a meal.
type MealFood struct {
	Calories float64 `json:"calories"` // per unit
	Quantity float64 `json:"quantity"`
}

// Meal is a recorded meal with its food line items.
type Meal struct {
	ID    string     `json:"id,omitempty"`
	Date  Date       `json:"date"`
	Foods []MealFood `json:"foods"`
}

// ConsumedCalories sums calories across the meal's line items.
func (m Meal) ConsumedCalories() float64 {
	var total float64
	for _, f := range m.Foods {
		total += f.Calories * f.Quantity
	}
	return total
}

// DailyHealthPoint is one merged row of the weekly summary.
type DailyHealthPoint struct {
	Date             Date    `json:"date"`
	Steps            int64   `json:"steps"`
	CaloriesBurned   int64   `json:"caloriesBurned"`
	ConsumedCalories float64 `json:"totalConsumedCalories"`
}

// BuildWeeklySummary merges the steps and meals series over the inclusive
// 7-day window ending at end. Every date in the window yields exactly one
// row, ascending by date; a date absent from a series contributes zero for
// that series. Burned calories are estimated as round(steps * 0.04).
func BuildWeeklySummary(end Date, steps []DailySteps, meals []Meal) []DailyHealthPoint {
	windowStart := end.AddDays(-(WeeklySummaryDays - 1))

	stepsByDate := make(map[string]int64)
	for _, s := range steps {
		stepsByDate[s.Date.String()] += s.Steps
	}

	consumedByDate := make(map[string]float64)
	for _, m := range meals {
		consumedByDate[m.Date.String()] += m.ConsumedCalories()
	}

	rows := make([]DailyHealthPoint, 0, WeeklySummaryDays)
	for i := 0; i < WeeklySummaryDays; i++ {
		date := windowStart.AddDays(i)
		key := date.String()
		stepCount := stepsByDate[key]
		rows = append(rows, DailyHealthPoint{
			Date:             date,
			Steps:            stepCount,
			CaloriesBurned:   int64(math.Round(float64(stepCount) * CaloriesPerStep)),
			ConsumedCalories: consumedByDate[key],
		})
	}
	return rows
}
