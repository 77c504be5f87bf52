package web

import (
	"context"
	"net/http"
	"testing"

	"github.com/emiliopalmerini/daybook/internal/domain"
)

type cycleResponse struct {
	Prediction *domain.PredictionResult `json:"prediction"`
	History    []domain.CycleRecord     `json:"history"`
	Message    string                   `json:"message"`
}

func seedCycleHistory(t *testing.T, create func(context.Context, string, *domain.CycleRecord) error) {
	t.Helper()
	ctx := context.Background()
	for _, span := range [][2]string{
		{"2024-01-01", "2024-01-05"},
		{"2024-01-29", "2024-02-02"},
		{"2024-02-26", "2024-03-01"},
	} {
		start, err := domain.ParseDate(span[0])
		if err != nil {
			t.Fatalf("fixture date: %v", err)
		}
		end, err := domain.ParseDate(span[1])
		if err != nil {
			t.Fatalf("fixture date: %v", err)
		}
		rec := domain.CycleRecord{Start: start, End: end}
		if err := create(ctx, "user-1", &rec); err != nil {
			t.Fatalf("seed cycle record: %v", err)
		}
	}
}

func TestCycleEndpointComputesPrediction(t *testing.T) {
	s, repos := testServer(t, testDB(t))
	seedCycleHistory(t, repos.Cycles.Create)

	rec := doRequest(t, s, http.MethodGet, "/api/cycle?user=user-1&today=2024-03-01", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp cycleResponse
	decodeResponse(t, rec, &resp)

	if resp.Prediction == nil {
		t.Fatalf("expected a prediction, got message %q", resp.Message)
	}
	if resp.Prediction.Start.String() != "2024-03-25" {
		t.Errorf("predicted start = %s, want 2024-03-25", resp.Prediction.Start)
	}
	if resp.Prediction.End.String() != "2024-03-29" {
		t.Errorf("predicted end = %s, want 2024-03-29", resp.Prediction.End)
	}
	if resp.Prediction.DDay != 24 {
		t.Errorf("dDay = %d, want 24", resp.Prediction.DDay)
	}
	if len(resp.History) != 3 {
		t.Errorf("expected 3 history records, got %d", len(resp.History))
	}
}

func TestCycleEndpointInsufficientHistory(t *testing.T) {
	s, _ := testServer(t, testDB(t))

	rec := doRequest(t, s, http.MethodGet, "/api/cycle?user=user-1&today=2024-03-01", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp cycleResponse
	decodeResponse(t, rec, &resp)
	if resp.Prediction != nil {
		t.Errorf("expected no prediction, got %+v", resp.Prediction)
	}
	if resp.Message == "" {
		t.Error("expected an insufficient-history message")
	}
}

// A saved prediction wins over the computed one, even after new records
// arrive, until it is overwritten.
func TestCycleEndpointOverridePrecedence(t *testing.T) {
	s, repos := testServer(t, testDB(t))
	seedCycleHistory(t, repos.Cycles.Create)

	rec := doRequest(t, s, http.MethodPut, "/api/cycle/prediction?user=user-1",
		`{"startDate":"2024-04-10","endDate":"2024-04-14"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("save prediction: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	// New history after the save must not change the answer.
	start, _ := domain.ParseDate("2024-03-24")
	end, _ := domain.ParseDate("2024-03-28")
	extra := domain.CycleRecord{Start: start, End: end}
	if err := repos.Cycles.Create(context.Background(), "user-1", &extra); err != nil {
		t.Fatalf("seed extra record: %v", err)
	}

	rec = doRequest(t, s, http.MethodGet, "/api/cycle?user=user-1&today=2024-03-01", "")
	var resp cycleResponse
	decodeResponse(t, rec, &resp)

	if resp.Prediction == nil {
		t.Fatal("expected the saved prediction")
	}
	if resp.Prediction.Start.String() != "2024-04-10" || resp.Prediction.End.String() != "2024-04-14" {
		t.Errorf("expected the saved window, got [%s, %s]", resp.Prediction.Start, resp.Prediction.End)
	}
	if resp.Prediction.DDay != 40 {
		t.Errorf("dDay = %d, want 40", resp.Prediction.DDay)
	}
}

func TestCycleEndpointRejectsBadInput(t *testing.T) {
	s, _ := testServer(t, testDB(t))

	rec := doRequest(t, s, http.MethodGet, "/api/cycle?user=user-1&today=2024-02-30", "")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("invalid today: expected 400, got %d", rec.Code)
	}

	rec = doRequest(t, s, http.MethodPost, "/api/cycle?user=user-1",
		`{"startDate":"2024-02-05","endDate":"2024-02-01"}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("inverted span: expected 400, got %d", rec.Code)
	}

	rec = doRequest(t, s, http.MethodPut, "/api/cycle/prediction?user=user-1",
		`{"startDate":"2024-04-14","endDate":"2024-04-10"}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("inverted prediction: expected 400, got %d", rec.Code)
	}
}

func TestCycleRecordCreateAndDelete(t *testing.T) {
	s, repos := testServer(t, testDB(t))

	rec := doRequest(t, s, http.MethodPost, "/api/cycle?user=user-1",
		`{"startDate":"2024-01-01","endDate":"2024-01-05"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var created domain.CycleRecord
	decodeResponse(t, rec, &created)
	if created.ID == "" {
		t.Fatal("expected a generated record ID")
	}

	rec = doRequest(t, s, http.MethodDelete, "/api/cycle/"+created.ID+"?user=user-1", "")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}

	history, err := repos.Cycles.ListByUser(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(history) != 0 {
		t.Errorf("expected empty history after delete, got %d", len(history))
	}
}
