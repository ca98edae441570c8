package services

import (
	"strings"
)

// isDuplicateKey matches the driver's unique-violation error text for both
// MySQL ("Duplicate entry") and SQLite ("UNIQUE constraint failed").
func isDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "Duplicate entry") || strings.Contains(msg, "UNIQUE constraint failed")
}
