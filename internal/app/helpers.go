package app

import (
	"database/sql"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/example/scribe/internal/dump"
)

// maxQuoteLen is the target field's length budget. Longer quote text is
// cut to truncatedQuoteLen runes plus an ellipsis marker.
const (
	maxQuoteLen       = 255
	truncatedQuoteLen = 252
)

// buildName joins first and last name; a person with neither recorded
// keeps their legacy identifier as the display name.
func buildName(first, last sql.NullString, dce string) string {
	var parts []string
	if dump.HasText(first) {
		parts = append(parts, first.String)
	}
	if dump.HasText(last) {
		parts = append(parts, last.String)
	}
	if len(parts) == 0 {
		return dce
	}
	return strings.Join(parts, " ")
}

// slugify lowercases a title and joins its words with dashes, for use in
// synthesized position addresses.
func slugify(title string) string {
	return strings.Join(strings.Fields(strings.ToLower(title)), "-")
}

// estimateEndDate places a missing term end on May 15 of the academic year
// containing start. The academic year flips in August: an August-December
// start ends the following calendar year.
func estimateEndDate(start time.Time) time.Time {
	year := start.Year()
	if start.Month() >= time.August {
		year++
	}
	return time.Date(year, time.May, 15, 0, 0, 0, 0, time.UTC)
}

// truncateQuote enforces the quote length budget, marking the cut with an
// ellipsis.
func truncateQuote(body string) string {
	if utf8.RuneCountInString(body) <= maxQuoteLen {
		return body
	}
	runes := []rune(body)
	return string(runes[:truncatedQuoteLen]) + "..."
}

// timeOr returns the coerced timestamp, or fallback when it is null.
func timeOr(v sql.NullTime, fallback time.Time) time.Time {
	if v.Valid {
		return v.Time
	}
	return fallback
}
