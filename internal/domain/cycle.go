package domain

import (
	"fmt"
	"math"
)

// MinCycleHistory is the number of recorded cycles needed before a
// prediction can be computed.
const MinCycleHistory = 2

// InsufficientHistoryMessage is returned instead of a prediction when fewer
// than MinCycleHistory records exist. This is informational, not a fault.
const InsufficientHistoryMessage = "at least 2 cycle records are required for a prediction"

// CycleRecord is one recorded menstrual cycle. End never precedes Start.
// Records are created by user input and only ever deleted, never mutated.
type CycleRecord struct {
	ID    string `json:"id,omitempty"`
	Start Date   `json:"startDate"`
	End   Date   `json:"endDate"`
}

// CyclePrediction is a predicted next-cycle window, either derived from
// history or persisted as a user override.
type CyclePrediction struct {
	Start Date `json:"startDate"`
	End   Date `json:"endDate"`
}

// PredictionResult is a prediction together with its D-day offset: the
// signed day count from today to the predicted start. Negative means the
// predicted start is already past.
type PredictionResult struct {
	Start Date `json:"startDate"`
	End   Date `json:"endDate"`
	DDay  int  `json:"dDay"`
}

// CycleOutcome is the resolved answer of a cycle query: a prediction, or a
// message explaining why there is none.
type CycleOutcome struct {
	Prediction *PredictionResult `json:"prediction"`
	Message    string            `json:"message,omitempty"`
}

// CycleStats are the learned statistics of a cycle history.
type CycleStats struct {
	AvgCycleLength float64 // days between consecutive starts
	AvgDuration    float64 // inclusive day-span of a single cycle
}

// PredictCycle resolves a user's next-cycle prediction, in priority order:
// a persisted override is returned verbatim (with D-day recomputed against
// today); otherwise a prediction is derived from history when it holds at
// least MinCycleHistory records; otherwise only a message is returned.
//
// history must be ordered by start date descending. today is always an
// explicit input so results are deterministic.
func PredictCycle(history []CycleRecord, override *CyclePrediction, today Date) CycleOutcome {
	if override != nil {
		return CycleOutcome{
			Prediction: &PredictionResult{
				Start: override.Start,
				End:   override.End,
				DDay:  DaysBetween(today, override.Start),
			},
		}
	}

	if len(history) < MinCycleHistory {
		return CycleOutcome{Message: InsufficientHistoryMessage}
	}

	stats := ComputeCycleStats(history)
	prediction := stats.Predict(history[0].Start)
	return CycleOutcome{
		Prediction: &PredictionResult{
			Start: prediction.Start,
			End:   prediction.End,
			DDay:  DaysBetween(today, prediction.Start),
		},
	}
}

// ComputeCycleStats derives mean cycle length and mean cycle duration from a
// start-descending history of at least two records. Cycle length uses start
// dates only; duration is the inclusive start-to-end span of each record.
func ComputeCycleStats(history []CycleRecord) CycleStats {
	var lengthSum int
	for i := 0; i < len(history)-1; i++ {
		days := DaysBetween(history[i+1].Start, history[i].Start)
		if days < 0 {
			days = -days
		}
		lengthSum += days
	}

	var durationSum int
	for _, rec := range history {
		days := DaysBetween(rec.Start, rec.End)
		if days < 0 {
			days = -days
		}
		durationSum += days + 1
	}

	return CycleStats{
		AvgCycleLength: float64(lengthSum) / float64(len(history)-1),
		AvgDuration:    float64(durationSum) / float64(len(history)),
	}
}

// Predict projects the next cycle window from the most recent start.
// Rounding happens once per derived quantity, not per summand, so the
// averages do not accumulate bias.
func (s CycleStats) Predict(mostRecentStart Date) CyclePrediction {
	start := mostRecentStart.AddDays(int(math.Round(s.AvgCycleLength)))
	end := start.AddDays(int(math.Round(s.AvgDuration - 1)))
	return CyclePrediction{Start: start, End: end}
}

// Validate rejects a record whose end precedes its start.
func (r CycleRecord) Validate() error {
	if r.End.Before(r.Start) {
		return fmt.Errorf("%w: cycle end %s precedes start %s", ErrMalformedDate, r.End, r.Start)
	}
	return nil
}
