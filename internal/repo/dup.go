package repo

import "strings"

// IsDuplicateKey reports whether err is a unique-constraint violation.
// String matching instead of gorm.ErrDuplicatedKey keeps the check stable
// across drivers (sqlite, mysql and postgres word it differently).
func IsDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "unique violation") ||
		strings.Contains(msg, "duplicate key")
}
