package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"go-hospital-records/internal/identity"
	"go-hospital-records/pkg/apperr"
)

const dateLayout = "2006-01-02"

// ensureExists is the foreign-key gate every write runs before touching the
// store: a miss in the identity cache means the referenced row does not exist.
func ensureExists(ctx context.Context, cache identity.Cache, kind identity.Kind, id uint) error {
	ok, err := cache.Contains(ctx, kind, id)
	if err != nil {
		return apperr.Storage("identity cache lookup", err)
	}
	if !ok {
		return apperr.NotFound(string(kind), id)
	}
	return nil
}

// isDuplicateKeyError checks if the error is a PostgreSQL unique constraint
// violation containing the specified constraint name
func isDuplicateKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23505 = unique_violation
		if pgErr.Code == "23505" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}

// parseDate converts a validated YYYY-MM-DD string. The empty string maps to
// nil for nullable date columns.
func parseDate(value string) (time.Time, error) {
	return time.Parse(dateLayout, value)
}

func parseOptionalDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
