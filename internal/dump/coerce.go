package dump

import (
	"database/sql"
	"time"
)

// timeLayouts are tried in order. The legacy export writes Sequelize
// timestamps with fractional seconds and a short numeric zone, but older
// rows carry bare dates.
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05.999999999-07",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

// ToBool coerces a raw field to a boolean. "t"/"true" and "f"/"false" are
// the only recognized spellings; anything else, including null, yields an
// invalid NullBool, never an error.
func ToBool(v sql.NullString) sql.NullBool {
	if !v.Valid {
		return sql.NullBool{}
	}
	switch v.String {
	case "t", "true":
		return sql.NullBool{Bool: true, Valid: true}
	case "f", "false":
		return sql.NullBool{Bool: false, Valid: true}
	}
	return sql.NullBool{}
}

// ToTime coerces a raw field to a timestamp. Unparseable or null input
// yields an invalid NullTime; callers supply their own fallback.
func ToTime(v sql.NullString) sql.NullTime {
	if !v.Valid || v.String == "" {
		return sql.NullTime{}
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, v.String); err == nil {
			return sql.NullTime{Time: t, Valid: true}
		}
	}
	return sql.NullTime{}
}

// HasText reports whether the field is present and non-empty. Null and
// empty string are both "absent" for defaulting purposes.
func HasText(v sql.NullString) bool {
	return v.Valid && v.String != ""
}

// TextOr returns the field's text, or fallback when the field is null.
// An empty string is still a value here; use HasText when blank should
// also trigger the fallback.
func TextOr(v sql.NullString, fallback string) string {
	if v.Valid {
		return v.String
	}
	return fallback
}

// BlankToNull folds empty strings into null, for columns where the store
// should record absence rather than an empty value.
func BlankToNull(v sql.NullString) sql.NullString {
	if !HasText(v) {
		return sql.NullString{}
	}
	return v
}
