package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/shah-dhwanil/gaatha-salesforce-sub000/internal/domain/domainerr"
)

// Postgres error codes translated into domain errors
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
)

// translatePgError converts storage-level constraint violations into the
// matching domain error; anything unanticipated is wrapped with the operation
// tag so storage detail never leaks untagged.
func translatePgError(err error, op, entity, field, value string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return domainerr.NewAlreadyExists(entity, field, value)
		case pgForeignKeyViolation:
			return domainerr.NewValidation(field, "referenced %s does not exist", entity)
		case pgCheckViolation:
			return domainerr.NewValidation(field, "value violates constraint %s", pgErr.ConstraintName)
		}
	}
	return domainerr.NewOperation(op, err)
}
