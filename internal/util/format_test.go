package util

import (
	"database/sql"
	"testing"

	"github.com/emiliopalmerini/daybook/internal/domain"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{500, "500"},
		{999, "999"},
		{1500, "1.5K"},
		{12345, "12.3K"},
		{1500000, "1.5M"},
	}
	for _, tt := range tests {
		if got := FormatNumber(tt.in); got != tt.want {
			t.Errorf("FormatNumber(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatDateHuman(t *testing.T) {
	d, err := domain.ParseDate("2024-03-25")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if got := FormatDateHuman(d); got != "Mar 25, 2024" {
		t.Errorf("FormatDateHuman = %q, want \"Mar 25, 2024\"", got)
	}
}

func TestFormatCalories(t *testing.T) {
	if got := FormatCalories(650); got != "650" {
		t.Errorf("FormatCalories(650) = %q, want \"650\"", got)
	}
	if got := FormatCalories(650.25); got != "650.2" {
		t.Errorf("FormatCalories(650.25) = %q, want \"650.2\"", got)
	}
}

func TestNullStringRoundTrip(t *testing.T) {
	if got := NullString(""); got.Valid {
		t.Error("NullString(\"\") should be NULL")
	}
	if got := NullString("study"); !got.Valid || got.String != "study" {
		t.Errorf("NullString(\"study\") = %+v", got)
	}
	if got := FromNullString(sql.NullString{}); got != "" {
		t.Errorf("FromNullString(NULL) = %q, want \"\"", got)
	}
}

func TestToFloat64(t *testing.T) {
	if got := ToFloat64(sql.NullFloat64{}); got != 0 {
		t.Errorf("ToFloat64(NULL) = %v, want 0", got)
	}
	if got := ToFloat64(sql.NullFloat64{Float64: 2.5, Valid: true}); got != 2.5 {
		t.Errorf("ToFloat64(2.5) = %v", got)
	}
}
