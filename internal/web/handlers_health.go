package web

import (
	"net/http"

	"github.com/emiliopalmerini/daybook/internal/domain"
)

func (s *Server) handleWeeklySummary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, ok := userID(w, r)
	if !ok {
		return
	}
	end, err := dateParam(r, "end")
	if err != nil {
		writeError(w, err)
		return
	}
	from := end.AddDays(-(domain.WeeklySummaryDays - 1))

	steps, err := s.health.ListDailySteps(ctx, user, from, end)
	if err != nil {
		writeError(w, err)
		return
	}
	meals, err := s.health.ListMeals(ctx, user, from, end)
	if err != nil {
		writeError(w, err)
		return
	}

	s.metrics.RecordQuery(ctx, "weekly")
	writeJSON(w, http.StatusOK, map[string]any{
		"summary": domain.BuildWeeklySummary(end, steps, meals),
	})
}

func (s *Server) handleRecordSteps(w http.ResponseWriter, r *http.Request) {
	user, ok := userID(w, r)
	if !ok {
		return
	}

	var steps domain.DailySteps
	if !decodeBody(w, r, &steps) {
		return
	}
	if steps.Date.IsZero() {
		badRequest(w, "date is required")
		return
	}
	if steps.Steps < 0 {
		badRequest(w, "steps must be non-negative")
		return
	}

	if err := s.health.RecordSteps(r.Context(), user, steps); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, steps)
}

func (s *Server) handleCreateMeal(w http.ResponseWriter, r *http.Request) {
	user, ok := userID(w, r)
	if !ok {
		return
	}

	var meal domain.Meal
	if !decodeBody(w, r, &meal) {
		return
	}
	if meal.Date.IsZero() {
		badRequest(w, "date is required")
		return
	}
	for _, food := range meal.Foods {
		if food.Calories < 0 || food.Quantity < 0 {
			badRequest(w, "calories and quantity must be non-negative")
			return
		}
	}

	if err := s.health.CreateMeal(r.Context(), user, &meal); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, meal)
}
