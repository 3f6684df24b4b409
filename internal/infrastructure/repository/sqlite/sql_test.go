package sqlite

import (
	"database/sql"
	"errors"
	"testing"
	"time"
)

func TestParseTemporal(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  time.Time
	}{
		{
			name:  "iso date",
			value: "2024-01-01",
			want:  time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "timestamp truncated to date",
			value: "2024-01-01 10:00:00",
			want:  time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "epoch milliseconds",
			value: "1700000000000",
			want:  time.UnixMilli(1700000000000).UTC(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseTemporal("created_at", tt.value)
			if err != nil {
				t.Fatalf("parse %q: %v", tt.value, err)
			}
			if !got.Equal(tt.want) {
				t.Fatalf("parse %q: got %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestParseTemporal_Unrecognized(t *testing.T) {
	_, err := parseTemporal("match_date", "next tuesday")

	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected *ParseError, got %v", err)
	}
	if parseErr.Column != "match_date" || parseErr.Value != "next tuesday" {
		t.Fatalf("unexpected error fields: %+v", parseErr)
	}
}

func TestParseNullableTemporal_AbsenceForms(t *testing.T) {
	for _, v := range []sql.NullString{
		{},
		{String: "", Valid: true},
		{String: "   ", Valid: true},
	} {
		got, err := parseNullableTemporal("last_login", v)
		if err != nil {
			t.Fatalf("parse %+v: %v", v, err)
		}
		if got != nil {
			t.Fatalf("expected absence for %+v, got %v", v, got)
		}
	}
}

func TestParseNullableTemporal_TrimsBeforeParsing(t *testing.T) {
	got, err := parseNullableTemporal("last_login", sql.NullString{String: " 2024-03-05 ", Valid: true})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)
	if got == nil || !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestParseRequiredTemporal_BlankIsZero(t *testing.T) {
	got, err := parseRequiredTemporal("created_at", sql.NullString{})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !got.IsZero() {
		t.Fatalf("expected zero time, got %v", got)
	}
}

func TestFormatDateTime_NormalizesToUTC(t *testing.T) {
	loc := time.FixedZone("UTC+7", 7*60*60)
	in := time.Date(2024, time.June, 1, 6, 30, 0, 0, loc)

	if got := formatDateTime(in); got != "2024-05-31 23:30:00" {
		t.Fatalf("got %q", got)
	}
}

func TestNullableHelpers(t *testing.T) {
	if v := nullableDate(nil); v.Valid {
		t.Fatalf("expected invalid NullString for nil date")
	}
	day := time.Date(2024, time.June, 1, 15, 4, 5, 0, time.UTC)
	if v := nullableDate(&day); v.String != "2024-06-01" {
		t.Fatalf("got %q", v.String)
	}

	if v := intPtrToNullInt64(nil); v.Valid {
		t.Fatalf("expected invalid NullInt64 for nil int")
	}
	n := 7
	if v := intPtrToNullInt64(&n); v.Int64 != 7 {
		t.Fatalf("got %d", v.Int64)
	}
	if got := nullInt64ToIntPtr(sql.NullInt64{Int64: 9, Valid: true}); got == nil || *got != 9 {
		t.Fatalf("got %v", got)
	}
	if got := nullInt64ToIntPtr(sql.NullInt64{}); got != nil {
		t.Fatalf("expected nil, got %v", got)
	}

	if got := stringToNullString(""); got.Valid {
		t.Fatalf("expected invalid NullString for empty string")
	}
	if got := nullStringToString(sql.NullString{String: "GK", Valid: true}); got != "GK" {
		t.Fatalf("got %q", got)
	}
}
