package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"cvnapi/internal/metrics"
	"cvnapi/internal/models"
)

// LookupUsers fetches the moderation entries for the given user names.
// Input is deduplicated before querying. Failures never propagate: a
// query error degrades to a warning and row-level defects drop the row
// with a warning naming the failure category, so operators can tell
// data-quality problems from intentional filtering. The returned map is
// never nil.
func (d *DB) LookupUsers(ctx context.Context, names []string) (map[string]models.UserListEntry, []string) {
	entries := make(map[string]models.UserListEntry)
	var warnings []string

	names = dedupe(names)
	if len(names) == 0 {
		return entries, nil
	}

	query := fmt.Sprintf(
		`SELECT name, type, reason, expiry, adder FROM users WHERE name IN (%s)`,
		placeholders(len(names)),
	)

	rows, err := d.Conn.QueryContext(ctx, query, bindValues(names)...)
	if err != nil {
		return entries, append(warnings, fmt.Sprintf("users query failed: %v", err))
	}
	defer rows.Close()

	for rows.Next() {
		var (
			name     sql.NullString
			typeCode sql.NullInt64
			reason   sql.NullString
			expiry   sql.NullInt64
			adder    sql.NullString
		)
		if err := rows.Scan(&name, &typeCode, &reason, &expiry, &adder); err != nil {
			warnings = append(warnings, fmt.Sprintf("users row scan failed: %v", err))
			continue
		}

		// A row missing any required field is corrupt and never
		// partially emitted.
		if name.String == "" || !typeCode.Valid || adder.String == "" {
			warnings = append(warnings, "Skipped a corrupt user row")
			metrics.RecordSkippedRow("corrupt")
			continue
		}

		listType, err := models.ClassifyListType(typeCode.Int64)
		if err != nil {
			if errors.Is(err, models.ErrExcludedListType) {
				warnings = append(warnings, "Skipped row with excluded type")
				metrics.RecordSkippedRow("excluded_type")
			} else {
				warnings = append(warnings, "Skipped row with unknown type")
				metrics.RecordSkippedRow("unknown_type")
			}
			continue
		}

		entries[name.String] = models.UserListEntry{
			Type:    listType,
			Comment: optionalComment(reason),
			Expiry:  optionalExpiry(expiry),
			Adder:   adder.String,
		}
	}

	if err := rows.Err(); err != nil {
		warnings = append(warnings, fmt.Sprintf("users query failed: %v", err))
	}

	return entries, warnings
}
