package handlers

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// isUniqueViolation reports whether err is the store rejecting a duplicate
// under a unique index. The index is the authority for email, link-id and
// one-menu-per-admin uniqueness; application-level pre-checks only exist for
// friendlier messages.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint")
}
