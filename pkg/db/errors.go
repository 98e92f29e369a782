package db

import "strings"

// IsUniqueViolation reports whether the provided error is a unique constraint
// violation from either supported engine. sqlite reports
// "UNIQUE constraint failed: table.column"; postgres reports
// "duplicate key value violates unique constraint".
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value")
}
