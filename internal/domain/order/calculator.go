package order

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/shah-dhwanil/gaatha-salesforce-sub000/internal/domain/area"
	"github.com/shah-dhwanil/gaatha-salesforce-sub000/internal/domain/domainerr"
	"github.com/shah-dhwanil/gaatha-salesforce-sub000/internal/domain/product"
)

// Amounts is the computed money breakdown of an order, quantized to 2 dp.
type Amounts struct {
	Base     decimal.Decimal
	Discount decimal.Decimal
	Net      decimal.Decimal
	IGST     decimal.Decimal
	CGST     decimal.Decimal
	SGST     decimal.Decimal
	Total    decimal.Decimal
}

// PriceResolver resolves the effective price of one product for a shop's area
// chain. Implemented by the product repository.
type PriceResolver interface {
	ResolvePrice(ctx context.Context, productID string, chain area.Chain) (*product.ResolvedPrice, error)
}

// ChainResolver resolves a retailer's area chain. Implemented by the retailer
// repository.
type ChainResolver interface {
	AreaChain(ctx context.Context, retailerID string) (area.Chain, error)
}

// Calculator derives order amounts from an item list using the area-priority
// price fallback. Intra-state GST splits evenly into CGST and SGST; IGST is
// carried but currently always zero, matching the tax rule set in force.
type Calculator struct {
	prices PriceResolver
	chains ChainResolver
}

// NewCalculator creates an amount calculator
func NewCalculator(prices PriceResolver, chains ChainResolver) *Calculator {
	return &Calculator{prices: prices, chains: chains}
}

var two = decimal.NewFromInt(2)
var hundred = decimal.NewFromInt(100)

// Calculate resolves every item's price through the retailer's chain and
// accumulates base, tax and total amounts. A product with no resolvable price
// aborts the calculation, naming the product.
func (c *Calculator) Calculate(ctx context.Context, retailerID string, items []ItemRequest) (Amounts, error) {
	if err := ValidateItems(items); err != nil {
		return Amounts{}, err
	}

	chain, err := c.chains.AreaChain(ctx, retailerID)
	if err != nil {
		return Amounts{}, err
	}

	return c.CalculateForChain(ctx, chain, items)
}

// CalculateForChain computes amounts for an already-resolved area chain.
func (c *Calculator) CalculateForChain(ctx context.Context, chain area.Chain, items []ItemRequest) (Amounts, error) {
	if err := ValidateItems(items); err != nil {
		return Amounts{}, err
	}

	base := decimal.Zero
	cgst := decimal.Zero
	sgst := decimal.Zero

	for _, item := range items {
		price, err := c.prices.ResolvePrice(ctx, item.ProductID, chain)
		if err != nil {
			var nf *domainerr.NotFoundError
			if errors.As(err, &nf) {
				return Amounts{}, domainerr.NewValidation("items", "no price found for product %s", item.ProductID)
			}
			return Amounts{}, err
		}

		qty := decimal.NewFromInt(int64(item.Quantity))
		itemBase := price.MRP.Mul(qty)
		base = base.Add(itemBase)

		// GST splits evenly between the central and state halves.
		halfTax := itemBase.Mul(price.GSTRate).Div(two).Div(hundred)
		cgst = cgst.Add(halfTax)
		sgst = sgst.Add(halfTax)
	}

	// No discount engine exists yet; discounts are zero on every create and
	// recompute path.
	discount := decimal.Zero
	igst := decimal.Zero
	net := base.Sub(discount)
	total := net.Add(igst).Add(cgst).Add(sgst)

	return Amounts{
		Base:     base.Round(2),
		Discount: discount.Round(2),
		Net:      net.Round(2),
		IGST:     igst.Round(2),
		CGST:     cgst.Round(2),
		SGST:     sgst.Round(2),
		Total:    total.Round(2),
	}, nil
}
