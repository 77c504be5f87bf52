package web

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/emiliopalmerini/daybook/internal/domain"
	"github.com/emiliopalmerini/daybook/internal/ports"
)

type Server struct {
	router      *http.ServeMux
	addr        string
	logger      domain.Logger
	metrics     ports.MetricsExporter
	entries     ports.TimeEntryRepository
	cycles      ports.CycleRepository
	predictions ports.PredictionRepository
	health      ports.HealthRepository
	categories  ports.CategoryRepository
}

func NewServer(
	addr string,
	logger domain.Logger,
	metrics ports.MetricsExporter,
	entries ports.TimeEntryRepository,
	cycles ports.CycleRepository,
	predictions ports.PredictionRepository,
	health ports.HealthRepository,
	categories ports.CategoryRepository,
) *Server {
	s := &Server{
		router:      http.NewServeMux(),
		addr:        addr,
		logger:      logger,
		metrics:     metrics,
		entries:     entries,
		cycles:      cycles,
		predictions: predictions,
		health:      health,
		categories:  categories,
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// Time tracking
	s.router.HandleFunc("GET /api/entries", s.handleListEntries)
	s.router.HandleFunc("POST /api/entries", s.handleCreateEntry)
	s.router.HandleFunc("DELETE /api/entries/{id}", s.handleDeleteEntry)
	s.router.HandleFunc("GET /api/stats", s.handleStats)

	// Chart palette
	s.router.HandleFunc("GET /api/categories", s.handleListCategories)
	s.router.HandleFunc("PUT /api/categories", s.handleSaveCategory)
	s.router.HandleFunc("POST /api/categories/import", s.handleImportCategories)

	// Cycle tracking and prediction
	s.router.HandleFunc("GET /api/cycle", s.handleCycle)
	s.router.HandleFunc("POST /api/cycle", s.handleCreateCycleRecord)
	s.router.HandleFunc("DELETE /api/cycle/{id}", s.handleDeleteCycleRecord)
	s.router.HandleFunc("PUT /api/cycle/prediction", s.handleSavePrediction)

	// Health tracking
	s.router.HandleFunc("GET /api/health/weekly", s.handleWeeklySummary)
	s.router.HandleFunc("POST /api/health/steps", s.handleRecordSteps)
	s.router.HandleFunc("POST /api/health/meals", s.handleCreateMeal)
}

func (s *Server) Start(ctx context.Context) error {
	server := &http.Server{
		Addr:         s.addr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	fmt.Printf("Starting server at http://localhost%s\n", s.addr)

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("server shutdown: %v", err)
		}
	}()

	err := server.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}
