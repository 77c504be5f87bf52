package util

import "database/sql"

// NullString converts a string to sql.NullString, treating "" as NULL.
func NullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

// FromNullString converts sql.NullString back to a plain string, NULL as "".
func FromNullString(s sql.NullString) string {
	if !s.Valid {
		return ""
	}
	return s.String
}

// ToFloat64 converts sql.NullFloat64 to a plain float64, NULL as 0.
func ToFloat64(f sql.NullFloat64) float64 {
	if !f.Valid {
		return 0
	}
	return f.Float64
}
