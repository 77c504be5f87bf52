package web

import (
	"net/http"

	"github.com/emiliopalmerini/daybook/internal/domain"
)

func (s *Server) handleCycle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, ok := userID(w, r)
	if !ok {
		return
	}
	today, err := dateParam(r, "today")
	if err != nil {
		writeError(w, err)
		return
	}

	// The persisted override is consulted before any computation; a stale
	// override keeps winning until the user overwrites it.
	override, err := s.predictions.Get(ctx, user)
	if err != nil {
		writeError(w, err)
		return
	}

	history, err := s.cycles.ListByUser(ctx, user)
	if err != nil {
		writeError(w, err)
		return
	}

	outcome := domain.PredictCycle(history, override, today)

	s.metrics.RecordQuery(ctx, "cycle")
	if override == nil && len(history) >= domain.MinCycleHistory {
		s.metrics.RecordPrediction(ctx, domain.ComputeCycleStats(history).AvgCycleLength)
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"prediction": outcome.Prediction,
		"history":    history,
		"message":    outcome.Message,
	})
}

func (s *Server) handleCreateCycleRecord(w http.ResponseWriter, r *http.Request) {
	user, ok := userID(w, r)
	if !ok {
		return
	}

	var record domain.CycleRecord
	if !decodeBody(w, r, &record) {
		return
	}
	if record.Start.IsZero() || record.End.IsZero() {
		badRequest(w, "startDate and endDate are required")
		return
	}
	if err := record.Validate(); err != nil {
		writeError(w, err)
		return
	}

	if err := s.cycles.Create(r.Context(), user, &record); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, record)
}

func (s *Server) handleDeleteCycleRecord(w http.ResponseWriter, r *http.Request) {
	user, ok := userID(w, r)
	if !ok {
		return
	}

	if err := s.cycles.Delete(r.Context(), user, r.PathValue("id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSavePrediction(w http.ResponseWriter, r *http.Request) {
	user, ok := userID(w, r)
	if !ok {
		return
	}

	var prediction domain.CyclePrediction
	if !decodeBody(w, r, &prediction) {
		return
	}
	if prediction.Start.IsZero() || prediction.End.IsZero() {
		badRequest(w, "startDate and endDate are required")
		return
	}
	if prediction.End.Before(prediction.Start) {
		badRequest(w, "endDate precedes startDate")
		return
	}

	if err := s.predictions.Upsert(r.Context(), user, prediction); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, prediction)
}
