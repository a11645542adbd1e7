package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/shah-dhwanil/gaatha-salesforce-sub000/internal/domain/pricing"
	"github.com/shah-dhwanil/gaatha-salesforce-sub000/internal/domain/product"
)

// ProductPriceRequest is the upsert payload of one price row
type ProductPriceRequest struct {
	AreaID           *string          `json:"area_id,omitempty"`
	MRP              *decimal.Decimal `json:"mrp,omitempty"`
	Margins          MarginSetRequest `json:"margins"`
	MinOrderQuantity *int             `json:"min_order_quantity,omitempty"`
}

// ProductVisibilityRequest is the upsert payload of one visibility row
type ProductVisibilityRequest struct {
	AreaID     *string `json:"area_id,omitempty"`
	ForGeneral *bool   `json:"for_general,omitempty"`
	ForModern  *bool   `json:"for_modern,omitempty"`
	ForHoreca  *bool   `json:"for_horeca,omitempty"`
	ForTypeA   *bool   `json:"for_type_a,omitempty"`
	ForTypeB   *bool   `json:"for_type_b,omitempty"`
	ForTypeC   *bool   `json:"for_type_c,omitempty"`
}

// ProductRequest carries the creation payload, optionally with initial price
// and visibility rows
type ProductRequest struct {
	Name         string                     `json:"name" binding:"required"`
	Code         string                     `json:"code" binding:"required"`
	BrandID      *string                    `json:"brand_id,omitempty"`
	CategoryID   *string                    `json:"category_id,omitempty"`
	GSTRate      decimal.Decimal            `json:"gst_rate"`
	UOM          string                     `json:"uom"`
	Prices       []ProductPriceRequest      `json:"prices,omitempty"`
	Visibilities []ProductVisibilityRequest `json:"visibilities,omitempty"`
}

// ProductUpdateRequest carries the optional PATCH fields of a product
type ProductUpdateRequest struct {
	Name       *string          `json:"name,omitempty"`
	Code       *string          `json:"code,omitempty"`
	BrandID    *string          `json:"brand_id,omitempty"`
	CategoryID *string          `json:"category_id,omitempty"`
	GSTRate    *decimal.Decimal `json:"gst_rate,omitempty"`
	UOM        *string          `json:"uom,omitempty"`
}

// ProductResponse is the read view of a product
type ProductResponse struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Code       string          `json:"code"`
	BrandID    *string         `json:"brand_id,omitempty"`
	CategoryID *string         `json:"category_id,omitempty"`
	GSTRate    decimal.Decimal `json:"gst_rate"`
	UOM        string          `json:"uom"`
	IsActive   bool            `json:"is_active"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// ProductPriceResponse is the read view of one price row
type ProductPriceResponse struct {
	ID               string            `json:"id"`
	ProductID        string            `json:"product_id"`
	AreaID           *string           `json:"area_id,omitempty"`
	MRP              decimal.Decimal   `json:"mrp"`
	Margins          pricing.MarginSet `json:"margins"`
	MinOrderQuantity int               `json:"min_order_quantity"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
}

// ProductVisibilityResponse is the read view of one visibility row
type ProductVisibilityResponse struct {
	ID         string    `json:"id"`
	ProductID  string    `json:"product_id"`
	AreaID     *string   `json:"area_id,omitempty"`
	ForGeneral bool      `json:"for_general"`
	ForModern  bool      `json:"for_modern"`
	ForHoreca  bool      `json:"for_horeca"`
	ForTypeA   bool      `json:"for_type_a"`
	ForTypeB   bool      `json:"for_type_b"`
	ForTypeC   bool      `json:"for_type_c"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ResolvedPriceResponse is the outcome of a price fallback lookup
type ResolvedPriceResponse struct {
	ProductID        string            `json:"product_id"`
	AreaID           *string           `json:"area_id,omitempty"`
	MRP              decimal.Decimal   `json:"mrp"`
	GSTRate          decimal.Decimal   `json:"gst_rate"`
	Margins          pricing.MarginSet `json:"margins"`
	MinOrderQuantity int               `json:"min_order_quantity"`
}

// ToProductResponse converts a domain product into its response form
func ToProductResponse(p *product.Product) ProductResponse {
	return ProductResponse{
		ID:         p.ID,
		Name:       p.Name,
		Code:       p.Code,
		BrandID:    p.BrandID,
		CategoryID: p.CategoryID,
		GSTRate:    p.GSTRate,
		UOM:        p.UOM,
		IsActive:   p.IsActive,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}

// ToProductListResponse converts a page of products
func ToProductListResponse(products []*product.Product) []ProductResponse {
	response := make([]ProductResponse, len(products))
	for i, p := range products {
		response[i] = ToProductResponse(p)
	}
	return response
}

// ToProductPriceResponse converts a price row
func ToProductPriceResponse(p *product.Price) ProductPriceResponse {
	return ProductPriceResponse{
		ID:               p.ID,
		ProductID:        p.ProductID,
		AreaID:           p.AreaID,
		MRP:              p.MRP,
		Margins:          p.Margins,
		MinOrderQuantity: p.MinOrderQuantity,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}

// ToProductPriceListResponse converts the price rows of a product
func ToProductPriceListResponse(prices []*product.Price) []ProductPriceResponse {
	response := make([]ProductPriceResponse, len(prices))
	for i, p := range prices {
		response[i] = ToProductPriceResponse(p)
	}
	return response
}

// ToProductVisibilityResponse converts a visibility row
func ToProductVisibilityResponse(v *product.Visibility) ProductVisibilityResponse {
	return ProductVisibilityResponse{
		ID:         v.ID,
		ProductID:  v.ProductID,
		AreaID:     v.AreaID,
		ForGeneral: v.ForGeneral,
		ForModern:  v.ForModern,
		ForHoreca:  v.ForHoreca,
		ForTypeA:   v.ForTypeA,
		ForTypeB:   v.ForTypeB,
		ForTypeC:   v.ForTypeC,
		CreatedAt:  v.CreatedAt,
		UpdatedAt:  v.UpdatedAt,
	}
}

// ToProductVisibilityListResponse converts the visibility rows of a product
func ToProductVisibilityListResponse(visibilities []*product.Visibility) []ProductVisibilityResponse {
	response := make([]ProductVisibilityResponse, len(visibilities))
	for i, v := range visibilities {
		response[i] = ToProductVisibilityResponse(v)
	}
	return response
}

// ToResolvedPriceResponse converts a fallback lookup result
func ToResolvedPriceResponse(rp *product.ResolvedPrice) ResolvedPriceResponse {
	return ResolvedPriceResponse{
		ProductID:        rp.ProductID,
		AreaID:           rp.AreaID,
		MRP:              rp.MRP,
		GSTRate:          rp.GSTRate,
		Margins:          rp.Margins,
		MinOrderQuantity: rp.MinOrderQuantity,
	}
}
