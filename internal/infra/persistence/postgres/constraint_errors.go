package postgres

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Helper functions for PostgreSQL error checking
func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	// Fall back to PostgreSQL-specific message patterns for drivers that
	// GORM does not translate.
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "duplicate key") ||
		strings.Contains(errMsg, "unique constraint") ||
		strings.Contains(errMsg, "23505") // PostgreSQL unique_violation error code
}

func isForeignKeyConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "foreign key constraint") ||
		strings.Contains(errMsg, "23503") // PostgreSQL foreign_key_violation error code
}

func isNotNullConstraintViolation(err error) bool {
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "null value") ||
		strings.Contains(errMsg, "not null") ||
		strings.Contains(errMsg, "23502") // PostgreSQL not_null_violation error code
}

// classifyBlockingRelation inspects a foreign key violation raised while
// deleting a plant and names the relationship class still holding a
// reference. PostgreSQL includes the referencing table in the constraint
// message ("violates foreign key constraint ... on table "order_details"").
// Returns "" when the message carries no recognizable table name.
func classifyBlockingRelation(err error) string {
	if err == nil {
		return ""
	}

	errMsg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(errMsg, "order_details"):
		return "orders"
	case strings.Contains(errMsg, "maintenance_schedules"):
		return "maintenance schedules"
	case strings.Contains(errMsg, "suggestions"):
		return "suggestions"
	default:
		return ""
	}
}
