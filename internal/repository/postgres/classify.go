package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	apperrors "github.com/stellarinsights/stellarinsights/api/internal/pkg/errors"
)

// PostgreSQL SQLSTATE codes for constraint violations.
const (
	sqlstateUniqueViolation     = "23505"
	sqlstateForeignKeyViolation = "23503"
	sqlstateNotNullViolation    = "23502"
	sqlstateCheckViolation      = "23514"
)

// classify maps a raw driver error to the application taxonomy. All
// storage error classification happens here, once; neither handlers
// nor callers ever see driver detail.
//
// The schema has a single unique constraint (anchors.stellar_account)
// and a single foreign key (assets.anchor_id), so constraint
// violations map unambiguously.
func classify(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case sqlstateUniqueViolation:
			return apperrors.Conflict("anchor with this Stellar account already exists")
		case sqlstateForeignKeyViolation:
			return apperrors.NotFound("anchor")
		case sqlstateNotNullViolation, sqlstateCheckViolation:
			return apperrors.Validation("value violates a storage constraint").WithError(err)
		}
	}
	return apperrors.Unavailable("storage unavailable").WithError(err)
}
