package order

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shah-dhwanil/gaatha-salesforce-sub000/internal/domain/area"
	"github.com/shah-dhwanil/gaatha-salesforce-sub000/internal/domain/domainerr"
	"github.com/shah-dhwanil/gaatha-salesforce-sub000/internal/domain/product"
)

// fakePrices resolves prices from a static map regardless of chain, the way
// the repository would after its fallback query.
type fakePrices struct {
	prices map[string]*product.ResolvedPrice
}

func (f *fakePrices) ResolvePrice(_ context.Context, productID string, _ area.Chain) (*product.ResolvedPrice, error) {
	p, ok := f.prices[productID]
	if !ok {
		return nil, domainerr.NewNotFound("product price", productID)
	}
	return p, nil
}

type fakeChains struct {
	chain area.Chain
}

func (f *fakeChains) AreaChain(_ context.Context, _ string) (area.Chain, error) {
	return f.chain, nil
}

func newTestCalculator() *Calculator {
	div := "div-1"
	return NewCalculator(&fakePrices{prices: map[string]*product.ResolvedPrice{
		"p1": {ProductID: "p1", MRP: decimal.NewFromInt(100), GSTRate: decimal.NewFromInt(18)},
		"p2": {ProductID: "p2", MRP: decimal.NewFromInt(50), GSTRate: decimal.NewFromInt(12)},
	}}, &fakeChains{chain: area.Chain{DivisionID: &div}})
}

func TestCalculateOrderAmounts(t *testing.T) {
	calc := newTestCalculator()

	amounts, err := calc.Calculate(context.Background(), "retailer-1", []ItemRequest{
		{ProductID: "p1", Quantity: 2},
		{ProductID: "p2", Quantity: 1},
	})
	require.NoError(t, err)

	// base = 2*100 + 1*50; each GST half = 2*100*9/100 + 1*50*6/100 = 21.
	assert.Equal(t, "250.00", amounts.Base.StringFixed(2))
	assert.Equal(t, "0.00", amounts.Discount.StringFixed(2))
	assert.Equal(t, "250.00", amounts.Net.StringFixed(2))
	assert.Equal(t, "0.00", amounts.IGST.StringFixed(2))
	assert.Equal(t, "21.00", amounts.CGST.StringFixed(2))
	assert.Equal(t, "21.00", amounts.SGST.StringFixed(2))
	assert.Equal(t, "292.00", amounts.Total.StringFixed(2))
}

func TestCalculateFailsWhenPriceMissing(t *testing.T) {
	calc := newTestCalculator()

	_, err := calc.Calculate(context.Background(), "retailer-1", []ItemRequest{
		{ProductID: "p1", Quantity: 1},
		{ProductID: "unpriced", Quantity: 3},
	})

	var ve *domainerr.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Reason, "unpriced")
}

func TestValidateItems(t *testing.T) {
	var ve *domainerr.ValidationError

	require.ErrorAs(t, ValidateItems(nil), &ve)

	err := ValidateItems([]ItemRequest{
		{ProductID: "p1", Quantity: 2},
		{ProductID: "p1", Quantity: 5},
	})
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Reason, "duplicate")

	require.ErrorAs(t, ValidateItems([]ItemRequest{{ProductID: "p1", Quantity: 0}}), &ve)

	require.NoError(t, ValidateItems([]ItemRequest{
		{ProductID: "p1", Quantity: 1},
		{ProductID: "p2", Quantity: 4},
	}))
}

func TestCalculateRoundsToTwoDecimals(t *testing.T) {
	div := "div-1"
	calc := NewCalculator(&fakePrices{prices: map[string]*product.ResolvedPrice{
		"p3": {ProductID: "p3", MRP: decimal.NewFromFloat(33.33), GSTRate: decimal.NewFromInt(5)},
	}}, &fakeChains{chain: area.Chain{DivisionID: &div}})

	amounts, err := calc.Calculate(context.Background(), "retailer-1", []ItemRequest{
		{ProductID: "p3", Quantity: 3},
	})
	require.NoError(t, err)

	// base 99.99, each half tax 99.99*2.5% = 2.49975 -> 2.50 after rounding
	assert.Equal(t, "99.99", amounts.Base.StringFixed(2))
	assert.Equal(t, "2.50", amounts.CGST.StringFixed(2))
	assert.Equal(t, "2.50", amounts.SGST.StringFixed(2))
	assert.Equal(t, "104.99", amounts.Total.StringFixed(2))
}
