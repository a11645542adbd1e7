package repository

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shah-dhwanil/gaatha-salesforce-sub000/internal/domain/area"
	"github.com/shah-dhwanil/gaatha-salesforce-sub000/internal/domain/domainerr"
)

func fullChain() (area.Chain, []string) {
	division, areaID, region, zone, nation := "div-1", "area-1", "reg-1", "zone-1", "nat-1"
	c := area.Chain{
		DivisionID: &division,
		AreaID:     &areaID,
		RegionID:   &region,
		ZoneID:     &zone,
		NationID:   &nation,
	}
	return c, []string{division, areaID, region, zone, nation}
}

func priceRow(productID, areaID string, mrp int64) fakeRow {
	return fakeRow{fill: func(dest []any) {
		*(dest[0].(*string)) = productID
		if areaID != "" {
			id := areaID
			*(dest[1].(**string)) = &id
		}
		*(dest[2].(*decimal.Decimal)) = decimal.NewFromInt(mrp)
		*(dest[3].(*decimal.Decimal)) = decimal.NewFromInt(18)
		*(dest[4].(*[]byte)) = nil
		*(dest[5].(*int)) = 1
	}}
}

func TestResolvePriceUsesChainOrderedByPriority(t *testing.T) {
	chain, ids := fullChain()
	q := &fakeQuerier{rows: []fakeRow{priceRow("p1", "div-1", 100)}}

	resolved, err := resolvePriceFrom(context.Background(), q, "p1", chain)
	require.NoError(t, err)

	require.Len(t, q.queries, 1)
	// the chain query carries every chain id, most specific first, and lets
	// get_area_priority rank the matches
	assert.Contains(t, q.queries[0].sql, "ANY($2)")
	assert.Contains(t, q.queries[0].sql, "ORDER BY get_area_priority(a.type) ASC")
	assert.Equal(t, ids, q.queries[0].args[1])

	require.NotNil(t, resolved.AreaID)
	assert.Equal(t, "div-1", *resolved.AreaID)
	assert.Equal(t, "100", resolved.MRP.String())
}

func TestResolvePriceFallsBackToGlobalRow(t *testing.T) {
	chain, _ := fullChain()
	q := &fakeQuerier{rows: []fakeRow{
		{err: pgx.ErrNoRows},
		priceRow("p1", "", 80),
	}}

	resolved, err := resolvePriceFrom(context.Background(), q, "p1", chain)
	require.NoError(t, err)

	require.Len(t, q.queries, 2)
	assert.Contains(t, q.queries[1].sql, "area_id IS NULL")
	assert.Nil(t, resolved.AreaID)
	assert.Equal(t, "80", resolved.MRP.String())
}

func TestResolvePriceEmptyChainSkipsChainQuery(t *testing.T) {
	q := &fakeQuerier{rows: []fakeRow{priceRow("p1", "", 80)}}

	resolved, err := resolvePriceFrom(context.Background(), q, "p1", area.Chain{})
	require.NoError(t, err)

	require.Len(t, q.queries, 1)
	assert.Contains(t, q.queries[0].sql, "area_id IS NULL")
	assert.Nil(t, resolved.AreaID)
}

func TestResolvePriceNotFoundNamesProduct(t *testing.T) {
	chain, _ := fullChain()
	q := &fakeQuerier{}

	_, err := resolvePriceFrom(context.Background(), q, "p-unpriced", chain)

	var nf *domainerr.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Contains(t, err.Error(), "p-unpriced")
}
