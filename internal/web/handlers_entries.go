package web

import (
	"io"
	"net/http"

	"github.com/emiliopalmerini/daybook/internal/domain"
)

func (s *Server) handleListEntries(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, ok := userID(w, r)
	if !ok {
		return
	}

	byDate, err := s.entries.MapByDate(ctx, user)
	if err != nil {
		writeError(w, err)
		return
	}

	// Without a period the full map is returned.
	if raw := r.URL.Query().Get("period"); raw != "" {
		period, err := domain.ParsePeriod(raw)
		if err != nil {
			writeError(w, err)
			return
		}
		now, err := dateParam(r, "today")
		if err != nil {
			writeError(w, err)
			return
		}
		byDate, err = domain.FilterByPeriod(byDate, period, now.Time(), s.logger)
		if err != nil {
			writeError(w, err)
			return
		}
	}

	writeJSON(w, http.StatusOK, map[string]any{"entries": byDate})
}

func (s *Server) handleCreateEntry(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, ok := userID(w, r)
	if !ok {
		return
	}

	var entry domain.TimeEntry
	if !decodeBody(w, r, &entry) {
		return
	}
	if entry.Date.IsZero() {
		badRequest(w, "date is required")
		return
	}
	if _, err := domain.ParseClockDuration(entry.Duration); err != nil {
		writeError(w, err)
		return
	}

	if err := s.entries.Create(ctx, user, &entry); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, entry)
}

func (s *Server) handleDeleteEntry(w http.ResponseWriter, r *http.Request) {
	user, ok := userID(w, r)
	if !ok {
		return
	}

	if err := s.entries.Delete(r.Context(), user, r.PathValue("id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, ok := userID(w, r)
	if !ok {
		return
	}
	period, err := domain.ParsePeriod(r.URL.Query().Get("period"))
	if err != nil {
		writeError(w, err)
		return
	}
	now, err := dateParam(r, "today")
	if err != nil {
		writeError(w, err)
		return
	}

	byDate, err := s.entries.MapByDate(ctx, user)
	if err != nil {
		writeError(w, err)
		return
	}
	filtered, err := domain.FilterByPeriod(byDate, period, now.Time(), s.logger)
	if err != nil {
		writeError(w, err)
		return
	}

	totals := domain.AggregateByCategory(filtered, s.logger)

	var count int64
	for _, list := range filtered {
		count += int64(len(list))
	}
	s.metrics.RecordQuery(ctx, "stats")
	s.metrics.RecordAggregation(ctx, count)

	categories, err := s.categories.ListByUser(ctx, user)
	if err != nil {
		s.logger.Warn("loading categories for %s: %v", user, err)
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"totals":   totals,
		"rendered": domain.RenderTotals(totals),
		"colors":   domain.ColorMap(categories),
	})
}

func (s *Server) handleListCategories(w http.ResponseWriter, r *http.Request) {
	user, ok := userID(w, r)
	if !ok {
		return
	}

	categories, err := s.categories.ListByUser(r.Context(), user)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"categories": categories})
}

// handleImportCategories replaces nothing and saves everything: the body is
// an externally produced palette blob, and a malformed blob imports zero
// entries instead of failing the request.
func (s *Server) handleImportCategories(w http.ResponseWriter, r *http.Request) {
	user, ok := userID(w, r)
	if !ok {
		return
	}

	raw, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, err)
		return
	}

	categories := domain.ParseCategories(raw)
	for _, category := range categories {
		if category.Name == "" {
			continue
		}
		if err := s.categories.Save(r.Context(), user, category); err != nil {
			writeError(w, err)
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]any{"imported": len(categories)})
}

func (s *Server) handleSaveCategory(w http.ResponseWriter, r *http.Request) {
	user, ok := userID(w, r)
	if !ok {
		return
	}

	var category domain.Category
	if !decodeBody(w, r, &category) {
		return
	}
	if category.Name == "" {
		badRequest(w, "name is required")
		return
	}

	if err := s.categories.Save(r.Context(), user, category); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, category)
}
