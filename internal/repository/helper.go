package repository

import (
	"database/sql"
	"fmt"
	"strings"
	"time"
)

// dbtx is satisfied by both *sql.DB and *sql.Tx, so repositories can run
// inside an explicit transaction when the service layer needs atomicity.
type dbtx interface {
	Exec(query string, args ...any) (sql.Result, error)
	Query(query string, args ...any) (*sql.Rows, error)
	QueryRow(query string, args ...any) *sql.Row
}

// ParseTime parses a date string in "2006-01-02", RFC3339, or SQLite
// datetime format.
func ParseTime(str string) (time.Time, error) {
	for _, layout := range []string{"2006-01-02", time.RFC3339, "2006-01-02 15:04:05"} {
		if parsed, err := time.Parse(layout, str); err == nil {
			return parsed.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("failed to parse date: %q", str)
}

// isUniqueViolation reports whether err is a SQLite UNIQUE constraint failure.
// modernc.org/sqlite does not export a typed constraint error, so the message
// is the stable contract here.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
