package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shah-dhwanil/gaatha-salesforce-sub000/internal/domain/domainerr"
)

func TestStatusTransitions(t *testing.T) {
	require.NoError(t, ValidateTransition(StatusDraft, StatusConfirmed))
	require.NoError(t, ValidateTransition(StatusDraft, StatusCancelled))
	require.NoError(t, ValidateTransition(StatusConfirmed, StatusDelivered))
	require.NoError(t, ValidateTransition(StatusConfirmed, StatusCancelled))
}

func TestStatusTransitionRejectsSkipsAndBackwards(t *testing.T) {
	var st *domainerr.StatusTransitionError

	err := ValidateTransition(StatusDraft, StatusDelivered)
	require.ErrorAs(t, err, &st)
	assert.Equal(t, "DRAFT", st.From)
	assert.Equal(t, "DELIVERED", st.To)

	require.ErrorAs(t, ValidateTransition(StatusConfirmed, StatusDraft), &st)
	require.ErrorAs(t, ValidateTransition(StatusDraft, StatusDraft), &st)
}

func TestTerminalStatesRejectEverything(t *testing.T) {
	var st *domainerr.StatusTransitionError

	for _, terminal := range []Status{StatusDelivered, StatusCancelled} {
		for _, next := range []Status{StatusDraft, StatusConfirmed, StatusDelivered, StatusCancelled} {
			err := ValidateTransition(terminal, next)
			require.ErrorAs(t, err, &st, "from %s to %s must fail", terminal, next)
		}
	}
}

func TestValidateTransitionRejectsUnknownStatus(t *testing.T) {
	var ve *domainerr.ValidationError
	require.ErrorAs(t, ValidateTransition(StatusDraft, Status("SHIPPED")), &ve)
}
