package repository

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shah-dhwanil/gaatha-salesforce-sub000/internal/domain/domainerr"
)

func visibilityRow(id string, isActive bool) fakeRow {
	return fakeRow{fill: func(dest []any) {
		*(dest[0].(*string)) = id
		*(dest[1].(*bool)) = isActive
	}}
}

func TestAddVisibilityRowInsertsWhenAbsent(t *testing.T) {
	q := &fakeQuerier{execTag: pgconn.NewCommandTag("INSERT 0 1")}

	areaID := "area-1"
	err := addVisibilityRow(context.Background(), q, "brand_visibility", "brand_id", "b-1", &areaID, "v-new")
	require.NoError(t, err)

	require.Len(t, q.execs, 1)
	assert.Contains(t, q.execs[0].sql, "INSERT INTO brand_visibility")
	assert.Equal(t, "v-new", q.execs[0].args[0])
}

func TestAddVisibilityRowConflictsOnActiveDuplicate(t *testing.T) {
	q := &fakeQuerier{rows: []fakeRow{visibilityRow("v-1", true)}}

	areaID := "area-1"
	err := addVisibilityRow(context.Background(), q, "brand_visibility", "brand_id", "b-1", &areaID, "v-new")

	var ae *domainerr.AlreadyExistsError
	require.ErrorAs(t, err, &ae)
	assert.Empty(t, q.execs)
}

func TestAddVisibilityRowReactivatesInactiveRow(t *testing.T) {
	q := &fakeQuerier{
		rows:    []fakeRow{visibilityRow("v-1", false)},
		execTag: pgconn.NewCommandTag("UPDATE 1"),
	}

	err := addVisibilityRow(context.Background(), q, "brand_visibility", "brand_id", "b-1", nil, "v-new")
	require.NoError(t, err)

	// the inactive row is flipped back instead of inserting a second one
	require.Len(t, q.execs, 1)
	assert.Contains(t, q.execs[0].sql, "SET is_active = true")
	assert.Equal(t, "v-1", q.execs[0].args[0])
}

func TestAddVisibilityRowTranslatesInsertRace(t *testing.T) {
	// two concurrent adds can both see no row; the partial unique index turns
	// the losing insert into a conflict
	q := &fakeQuerier{execErr: &pgconn.PgError{Code: "23505", ConstraintName: "uq_brand_visibility_area"}}

	areaID := "area-1"
	err := addVisibilityRow(context.Background(), q, "brand_visibility", "brand_id", "b-1", &areaID, "v-new")

	var ae *domainerr.AlreadyExistsError
	require.ErrorAs(t, err, &ae)
}

func TestRemoveVisibilityRowDeactivates(t *testing.T) {
	q := &fakeQuerier{execTag: pgconn.NewCommandTag("UPDATE 1")}

	areaID := "area-1"
	err := removeVisibilityRow(context.Background(), q, "brand_visibility", "brand_id", "b-1", &areaID)
	require.NoError(t, err)

	require.Len(t, q.execs, 1)
	assert.Contains(t, q.execs[0].sql, "SET is_active = false")
}

func TestRemoveVisibilityRowNotFoundWhenNothingActive(t *testing.T) {
	q := &fakeQuerier{execTag: pgconn.NewCommandTag("UPDATE 0")}

	err := removeVisibilityRow(context.Background(), q, "brand_visibility", "brand_id", "b-1", nil)

	var nf *domainerr.NotFoundError
	require.ErrorAs(t, err, &nf)
}
