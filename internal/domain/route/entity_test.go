package route

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shah-dhwanil/gaatha-salesforce-sub000/internal/domain/domainerr"
)

func TestNewRouteRequiresExactlyOneChannel(t *testing.T) {
	_, err := NewRoute("Route 7", "area-1", true, false, false)
	require.NoError(t, err)

	var ve *domainerr.ValidationError

	_, err = NewRoute("Route 7", "area-1", false, false, false)
	require.ErrorAs(t, err, &ve)

	_, err = NewRoute("Route 7", "area-1", true, true, false)
	require.ErrorAs(t, err, &ve)
}

func TestNewAssignmentValidatesDateRange(t *testing.T) {
	from := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)

	a, err := NewAssignment("route-1", "user-1", 2, &from, &to)
	require.NoError(t, err)
	assert.True(t, a.IsActive)

	// Open-ended ranges are fine.
	_, err = NewAssignment("route-1", "user-1", 2, &from, nil)
	require.NoError(t, err)

	var ve *domainerr.ValidationError
	_, err = NewAssignment("route-1", "user-1", 2, &to, &from)
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "to_date", ve.Field)

	_, err = NewAssignment("route-1", "user-1", 9, nil, nil)
	require.ErrorAs(t, err, &ve)
}
