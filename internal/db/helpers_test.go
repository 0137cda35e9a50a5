package db

import (
	"database/sql"
	"testing"

	"cvnapi/internal/models"
)

func TestTicksToUnix(t *testing.T) {
	tests := []struct {
		name     string
		ticks    int64
		expected int64
	}{
		{name: "unix epoch", ticks: 621355968000000000, expected: 0},
		{name: "2020-01-01T00:00:00Z", ticks: 637134336000000000, expected: 1577836800},
		{name: "sub-second ticks truncate", ticks: 621355968000000001, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ticksToUnix(tt.ticks); got != tt.expected {
				t.Errorf("ticksToUnix(%d) = %d, want %d", tt.ticks, got, tt.expected)
			}
		})
	}
}

func TestDedupe(t *testing.T) {
	got := dedupe([]string{"Alice", "Bob", "Alice", "", "Bob", ""})
	want := []string{"Alice", "Bob", ""}

	if len(got) != len(want) {
		t.Fatalf("dedupe = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("dedupe[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestPlaceholders(t *testing.T) {
	if got := placeholders(1); got != "?" {
		t.Errorf("placeholders(1) = %q", got)
	}
	if got := placeholders(3); got != "?,?,?" {
		t.Errorf("placeholders(3) = %q", got)
	}
}

func TestOptionalColumns(t *testing.T) {
	if optionalComment(sql.NullString{}).Set {
		t.Error("NULL reason should be absent")
	}
	if optionalComment(sql.NullString{String: "", Valid: true}).Set {
		t.Error("empty reason should be absent")
	}
	if got := optionalComment(sql.NullString{String: "spam", Valid: true}); got != models.Comment("spam") {
		t.Errorf("optionalComment = %+v", got)
	}

	if optionalExpiry(sql.NullInt64{}).Set {
		t.Error("NULL expiry should be absent")
	}
	if optionalExpiry(sql.NullInt64{Int64: 0, Valid: true}).Set {
		t.Error("zero expiry should be absent")
	}
	if got := optionalExpiry(sql.NullInt64{Int64: 637134336000000000, Valid: true}); got != models.Expiry(1577836800) {
		t.Errorf("optionalExpiry = %+v", got)
	}
}
