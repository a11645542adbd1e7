package sqlbuilder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateBuilderSkipsAbsentValues(t *testing.T) {
	name := "North Zone"
	var code *string // absent
	active := false

	query, args, err := NewUpdate("areas").
		SetIfString("name", &name).
		SetIfString("code", code).
		SetIfBool("is_active", &active).
		Where("id = $1", "area-1").
		Build()

	require.NoError(t, err)
	assert.Equal(t, "UPDATE areas SET name = $2, is_active = $3 WHERE id = $1", query)
	assert.Equal(t, []interface{}{"area-1", "North Zone", false}, args)
}

func TestUpdateBuilderErrorsWithoutAssignments(t *testing.T) {
	_, _, err := NewUpdate("areas").Where("id = $1", "area-1").Build()
	require.ErrorIs(t, err, ErrNoAssignments)
}

func TestUpdateBuilderSetIfAllowsExplicitNull(t *testing.T) {
	query, args, err := NewUpdate("product_prices").
		SetIf(true, "area_id", nil).
		Set("updated_at", "now").
		Where("id = $1 AND is_active = true", "price-1").
		Build()

	require.NoError(t, err)
	assert.Equal(t, "UPDATE product_prices SET area_id = $2, updated_at = $3 WHERE id = $1 AND is_active = true", query)
	assert.Equal(t, []interface{}{"price-1", nil, "now"}, args)
}

func TestUpdateBuilderNumbersPlaceholdersAfterWhereArgs(t *testing.T) {
	qty := 5
	query, args, err := NewUpdate("order_items").
		SetIfInt("quantity", &qty).
		Where("order_id = $1 AND product_id = $2", "o1", "p1").
		Build()

	require.NoError(t, err)
	assert.Equal(t, "UPDATE order_items SET quantity = $3 WHERE order_id = $1 AND product_id = $2", query)
	assert.Equal(t, []interface{}{"o1", "p1", 5}, args)
}
