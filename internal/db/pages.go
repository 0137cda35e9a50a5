package db

import (
	"context"
	"database/sql"
	"fmt"

	"cvnapi/internal/metrics"
	"cvnapi/internal/models"
)

// LookupPages fetches the globally watched pages matching the given
// article titles. Only the cross-wiki partition (empty project) is
// consulted. Same degradation contract as LookupUsers: warnings, never
// errors, never a nil map.
func (d *DB) LookupPages(ctx context.Context, titles []string) (map[string]models.PageListEntry, []string) {
	entries := make(map[string]models.PageListEntry)
	var warnings []string

	titles = dedupe(titles)
	if len(titles) == 0 {
		return entries, nil
	}

	query := fmt.Sprintf(
		`SELECT article, reason, expiry, adder FROM watchlist WHERE project = '' AND article IN (%s)`,
		placeholders(len(titles)),
	)

	rows, err := d.Conn.QueryContext(ctx, query, bindValues(titles)...)
	if err != nil {
		return entries, append(warnings, fmt.Sprintf("pages query failed: %v", err))
	}
	defer rows.Close()

	for rows.Next() {
		var (
			article sql.NullString
			reason  sql.NullString
			expiry  sql.NullInt64
			adder   sql.NullString
		)
		if err := rows.Scan(&article, &reason, &expiry, &adder); err != nil {
			warnings = append(warnings, fmt.Sprintf("pages row scan failed: %v", err))
			continue
		}

		if article.String == "" || adder.String == "" {
			warnings = append(warnings, "Skipped a corrupt page row")
			metrics.RecordSkippedRow("corrupt")
			continue
		}

		entries[article.String] = models.PageListEntry{
			Comment: optionalComment(reason),
			Expiry:  optionalExpiry(expiry),
			Adder:   adder.String,
		}
	}

	if err := rows.Err(); err != nil {
		warnings = append(warnings, fmt.Sprintf("pages query failed: %v", err))
	}

	return entries, warnings
}
