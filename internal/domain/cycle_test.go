package domain

import "testing"

func cycleRecord(t *testing.T, start, end string) CycleRecord {
	t.Helper()
	return CycleRecord{Start: mustDate(t, start), End: mustDate(t, end)}
}

// History fixture: starts 28 days apart, each cycle 5 days inclusive,
// ordered by start date descending as the store returns it.
func regularHistory(t *testing.T) []CycleRecord {
	t.Helper()
	return []CycleRecord{
		cycleRecord(t, "2024-02-26", "2024-03-01"),
		cycleRecord(t, "2024-01-29", "2024-02-02"),
		cycleRecord(t, "2024-01-01", "2024-01-05"),
	}
}

func TestComputeCycleStats(t *testing.T) {
	stats := ComputeCycleStats(regularHistory(t))
	if stats.AvgCycleLength != 28 {
		t.Errorf("avg cycle length = %.2f, want 28", stats.AvgCycleLength)
	}
	if stats.AvgDuration != 5 {
		t.Errorf("avg duration = %.2f, want 5", stats.AvgDuration)
	}
}

func TestPredictCycleFromHistory(t *testing.T) {
	today := mustDate(t, "2024-03-01")
	outcome := PredictCycle(regularHistory(t), nil, today)

	if outcome.Prediction == nil {
		t.Fatalf("expected a prediction, got message %q", outcome.Message)
	}
	p := outcome.Prediction
	if p.Start.String() != "2024-03-25" {
		t.Errorf("predicted start = %s, want 2024-03-25", p.Start)
	}
	if p.End.String() != "2024-03-29" {
		t.Errorf("predicted end = %s, want 2024-03-29", p.End)
	}
	if p.DDay != 24 {
		t.Errorf("dDay = %d, want 24", p.DDay)
	}
}

func TestPredictCycleUnevenHistoryRoundsOnce(t *testing.T) {
	// Cycle lengths 27 and 30 average to 28.5; a single nearest-integer
	// round (ties away from zero) gives 29.
	history := []CycleRecord{
		cycleRecord(t, "2024-02-27", "2024-03-02"),
		cycleRecord(t, "2024-01-28", "2024-02-01"),
		cycleRecord(t, "2024-01-01", "2024-01-06"),
	}
	outcome := PredictCycle(history, nil, mustDate(t, "2024-03-05"))
	if outcome.Prediction == nil {
		t.Fatal("expected a prediction")
	}
	if got := outcome.Prediction.Start.String(); got != "2024-03-27" {
		t.Errorf("predicted start = %s, want 2024-03-27", got)
	}
}

func TestPredictCycleOverrideTakesPrecedence(t *testing.T) {
	override := &CyclePrediction{
		Start: mustDate(t, "2024-04-10"),
		End:   mustDate(t, "2024-04-14"),
	}
	outcome := PredictCycle(regularHistory(t), override, mustDate(t, "2024-03-01"))

	if outcome.Prediction == nil {
		t.Fatal("expected the override to be returned")
	}
	p := outcome.Prediction
	if !p.Start.Equal(override.Start) || !p.End.Equal(override.End) {
		t.Errorf("override not returned verbatim: got [%s, %s]", p.Start, p.End)
	}
	if p.DDay != 40 {
		t.Errorf("dDay = %d, want 40", p.DDay)
	}
}

func TestPredictCycleOverrideWithoutHistory(t *testing.T) {
	override := &CyclePrediction{
		Start: mustDate(t, "2024-03-05"),
		End:   mustDate(t, "2024-03-09"),
	}
	outcome := PredictCycle(nil, override, mustDate(t, "2024-03-10"))
	if outcome.Prediction == nil {
		t.Fatal("expected the override to be returned")
	}
	// Predicted start already past: D-day goes negative.
	if outcome.Prediction.DDay != -5 {
		t.Errorf("dDay = %d, want -5", outcome.Prediction.DDay)
	}
}

func TestPredictCycleInsufficientHistory(t *testing.T) {
	for _, history := range [][]CycleRecord{
		nil,
		{cycleRecord(t, "2024-01-01", "2024-01-05")},
	} {
		outcome := PredictCycle(history, nil, mustDate(t, "2024-03-01"))
		if outcome.Prediction != nil {
			t.Errorf("expected no prediction for %d records", len(history))
		}
		if outcome.Message != InsufficientHistoryMessage {
			t.Errorf("unexpected message: %q", outcome.Message)
		}
	}
}

func TestCycleRecordValidate(t *testing.T) {
	ok := cycleRecord(t, "2024-01-01", "2024-01-01")
	if err := ok.Validate(); err != nil {
		t.Errorf("single-day cycle should validate: %v", err)
	}
	bad := cycleRecord(t, "2024-01-05", "2024-01-01")
	if err := bad.Validate(); err == nil {
		t.Error("expected validation error when end precedes start")
	}
}
