package repository

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shah-dhwanil/gaatha-salesforce-sub000/internal/domain/domainerr"
)

func TestTranslatePgErrorUniqueViolation(t *testing.T) {
	// the path a duplicate active assignment takes: uq_route_assignment_active
	// raises 23505 and the insert surfaces as a conflict
	pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "uq_route_assignment_active"}

	err := translatePgError(pgErr, "route.assignment_create", "route assignment", "user_id", "member-1")

	var ae *domainerr.AlreadyExistsError
	require.ErrorAs(t, err, &ae)
	assert.Contains(t, err.Error(), "route assignment")
	assert.Contains(t, err.Error(), "member-1")
}

func TestTranslatePgErrorForeignKeyViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23503"}

	err := translatePgError(pgErr, "route.assignment_create", "route", "route_id", "r-1")

	var ve *domainerr.ValidationError
	require.ErrorAs(t, err, &ve)
}

func TestTranslatePgErrorCheckViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23514", ConstraintName: "route_assignment_day_of_week_check"}

	err := translatePgError(pgErr, "route.assignment_create", "route assignment", "day_of_week", "9")

	var ve *domainerr.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, err.Error(), "route_assignment_day_of_week_check")
}

func TestTranslatePgErrorUnclassified(t *testing.T) {
	err := translatePgError(errors.New("connection reset"), "route.assignment_create", "route assignment", "user_id", "member-1")

	var oe *domainerr.OperationError
	require.ErrorAs(t, err, &oe)
}
