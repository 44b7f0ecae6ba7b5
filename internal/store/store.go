package store

import (
	"errors"

	"entraide/pkg/types"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgconn"
)

func psql() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
}

const (
	pgErrUniqueViolation     = "23505"
	pgErrForeignKeyViolation = "23503"
)

// constraintError translates Postgres integrity violations on the
// participations table into domain errors. The unique constraint is the
// authoritative duplicate check; the service-level pre-read only exists
// to give a friendlier fast path.
func constraintError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return nil
	}

	switch pgErr.Code {
	case pgErrUniqueViolation:
		return types.ErrAlreadyParticipating
	case pgErrForeignKeyViolation:
		return types.ErrNeedNotFound
	}

	return nil
}
