package repository

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ideanest/ideanest-backend/internal/entity"
	"github.com/jackc/pgx/v5/pgconn"
)

// Postgres error codes this pipeline distinguishes.
const (
	pgUndefinedTable        = "42P01"
	pgInsufficientPrivilege = "42501"
	pgForeignKeyViolation   = "23503"
	pgUniqueViolation       = "23505"
)

// classifyStoreError maps a driver failure onto the small set of user-facing
// categories the submission flow reports: missing schema, dangling foreign
// key, access-policy denial, duplicate key, or a generic fallback. The raw
// driver message stays wrapped for logs; it is never the primary message.
func classifyStoreError(op string, err error) error {
	category := entity.ErrStoreUnclassified

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUndefinedTable:
			category = entity.ErrSchemaMissing
		case pgForeignKeyViolation:
			category = entity.ErrInvalidReference
		case pgInsufficientPrivilege:
			category = entity.ErrAccessDenied
		case pgUniqueViolation:
			category = entity.ErrDuplicateValidation
		}
	} else {
		category = classifyByMessage(err.Error())
	}

	return fmt.Errorf("%w: %s: %v", category, op, err)
}

// classifyByMessage is the fallback for errors that don't carry a Postgres
// code, matching the substrings hosted backends put in their messages.
func classifyByMessage(msg string) error {
	lower := strings.ToLower(msg)

	switch {
	case strings.Contains(lower, "relation") && strings.Contains(lower, "does not exist"):
		return entity.ErrSchemaMissing
	case strings.Contains(lower, "foreign key constraint"):
		return entity.ErrInvalidReference
	case strings.Contains(lower, "row-level security"), strings.Contains(lower, "permission denied"):
		return entity.ErrAccessDenied
	case strings.Contains(lower, "duplicate key"):
		return entity.ErrDuplicateValidation
	default:
		return entity.ErrStoreUnclassified
	}
}
