package db

import (
	"database/sql"
	"strings"

	"cvnapi/internal/models"
)

// Expiry timestamps are stored as .NET-style ticks: 100-nanosecond
// intervals since 0001-01-01. unixEpochTicks is the tick count at the
// Unix epoch.
const (
	unixEpochTicks = 621355968000000000
	ticksPerSecond = 10000000
)

// ticksToUnix converts a stored expiry to Unix seconds.
func ticksToUnix(ticks int64) int64 {
	return (ticks - unixEpochTicks) / ticksPerSecond
}

// dedupe returns the distinct values of the input. Order is not
// preserved beyond first occurrence.
func dedupe(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// placeholders builds "?,?,...,?" for an IN clause of n values.
func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?,", n), ",")
}

// bindValues widens a string slice for QueryContext.
func bindValues(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}

// optionalComment maps a NULL or empty reason column to an absent field.
func optionalComment(v sql.NullString) models.OptionalString {
	if v.String == "" {
		return models.OptionalString{}
	}
	return models.Comment(v.String)
}

// optionalExpiry maps a NULL or zero expiry column to an absent field,
// converting ticks to Unix seconds otherwise.
func optionalExpiry(v sql.NullInt64) models.OptionalSeconds {
	if !v.Valid || v.Int64 == 0 {
		return models.OptionalSeconds{}
	}
	return models.Expiry(ticksToUnix(v.Int64))
}
