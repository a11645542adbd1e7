package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarginApply(t *testing.T) {
	base := decimal.NewFromInt(200)

	markup := Margin{Type: MarkUp, Value: 10}
	assert.True(t, markup.Apply(base).Equal(decimal.NewFromInt(220)), "markup adds a percentage")

	markdown := Margin{Type: MarkDown, Value: 25}
	assert.True(t, markdown.Apply(base).Equal(decimal.NewFromInt(150)), "markdown subtracts a percentage")

	fixed := Margin{Type: Fixed, Value: 99.5}
	assert.True(t, fixed.Apply(base).Equal(decimal.NewFromFloat(99.5)), "fixed overrides the price")
}

func TestMarginValidate(t *testing.T) {
	require.NoError(t, Margin{Type: MarkUp, Value: 5}.Validate())
	require.ErrorIs(t, Margin{Type: "DISCOUNT", Value: 5}.Validate(), ErrInvalidMarginType)
}

func TestMarginSetPatchLeavesUnsuppliedTiersUntouched(t *testing.T) {
	current := MarginSet{
		SuperStockist: &Margin{Type: MarkUp, Value: 4},
		Distributor:   &Margin{Type: MarkUp, Value: 8},
		Retailer:      &Margin{Type: MarkUp, Value: 12},
	}

	current.Patch(MarginSet{Distributor: &Margin{Type: Fixed, Value: 90}})

	require.NotNil(t, current.SuperStockist)
	assert.Equal(t, MarkUp, current.SuperStockist.Type)
	assert.Equal(t, 4.0, current.SuperStockist.Value)

	require.NotNil(t, current.Distributor)
	assert.Equal(t, Fixed, current.Distributor.Type)
	assert.Equal(t, 90.0, current.Distributor.Value)

	require.NotNil(t, current.Retailer)
	assert.Equal(t, 12.0, current.Retailer.Value)
}

func TestMarginSetValidateAndEmpty(t *testing.T) {
	assert.True(t, MarginSet{}.IsEmpty())

	set := MarginSet{Retailer: &Margin{Type: "BOGUS", Value: 1}}
	assert.False(t, set.IsEmpty())
	require.ErrorIs(t, set.Validate(), ErrInvalidMarginType)
}
