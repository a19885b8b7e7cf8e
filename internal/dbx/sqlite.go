package dbx

import (
	"strings"
	"time"
)

// IsUniqueViolation reports whether err is a SQLite unique-constraint
// failure. The driver exposes no typed error for this, so the message is
// matched.
func IsUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// FormatTime renders t for storage in a DATETIME column. Values are UTC with
// a fixed-width fraction so that lexicographic order is chronological.
func FormatTime(t time.Time) string {
	return t.UTC().Format("2006-01-02 15:04:05.000000")
}
