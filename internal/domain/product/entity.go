package product

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shah-dhwanil/gaatha-salesforce-sub000/internal/domain/pricing"
)

var (
	ErrEmptyName      = errors.New("product name must not be empty")
	ErrEmptyCode      = errors.New("product code must not be empty")
	ErrNegativeGST    = errors.New("gst rate must not be negative")
	ErrNonPositiveMRP = errors.New("mrp must be positive")
)

// Product is a sellable SKU. Pricing and visibility live in area-scoped child
// rows; the GST rate is a property of the product itself.
type Product struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Code       string          `json:"code"`
	BrandID    *string         `json:"brand_id,omitempty"`
	CategoryID *string         `json:"category_id,omitempty"`
	GSTRate    decimal.Decimal `json:"gst_rate"`
	UOM        string          `json:"uom"`
	IsActive   bool            `json:"is_active"`
	IsDeleted  bool            `json:"is_deleted"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// NewProduct creates an active product
func NewProduct(name, code string, brandID, categoryID *string, gstRate decimal.Decimal, uom string) (*Product, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if code == "" {
		return nil, ErrEmptyCode
	}
	if gstRate.IsNegative() {
		return nil, ErrNegativeGST
	}

	now := time.Now()
	return &Product{
		ID:         uuid.New().String(),
		Name:       name,
		Code:       code,
		BrandID:    brandID,
		CategoryID: categoryID,
		GSTRate:    gstRate,
		UOM:        uom,
		IsActive:   true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

// Delete soft-deletes the product
func (p *Product) Delete() {
	p.IsActive = false
	p.IsDeleted = true
	p.UpdatedAt = time.Now()
}

// Price is one (product, area-or-null) price row. A nil AreaID is the global
// default used when no area-scoped row matches the shop's chain.
type Price struct {
	ID               string            `json:"id"`
	ProductID        string            `json:"product_id"`
	AreaID           *string           `json:"area_id,omitempty"`
	MRP              decimal.Decimal   `json:"mrp"`
	Margins          pricing.MarginSet `json:"margins"`
	MinOrderQuantity int               `json:"min_order_quantity"`
	IsActive         bool              `json:"is_active"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
}

// NewPrice creates an active price row
func NewPrice(productID string, areaID *string, mrp decimal.Decimal, margins pricing.MarginSet, minOrderQuantity int) (*Price, error) {
	if !mrp.IsPositive() {
		return nil, ErrNonPositiveMRP
	}
	if minOrderQuantity < 1 {
		minOrderQuantity = 1
	}

	now := time.Now()
	return &Price{
		ID:               uuid.New().String(),
		ProductID:        productID,
		AreaID:           areaID,
		MRP:              mrp,
		Margins:          margins,
		MinOrderQuantity: minOrderQuantity,
		IsActive:         true,
		CreatedAt:        now,
		UpdatedAt:        now,
	}, nil
}

// Visibility is one (product, area-or-null) visibility row carrying the trade
// channel gates.
type Visibility struct {
	ID         string    `json:"id"`
	ProductID  string    `json:"product_id"`
	AreaID     *string   `json:"area_id,omitempty"`
	ForGeneral bool      `json:"for_general"`
	ForModern  bool      `json:"for_modern"`
	ForHoreca  bool      `json:"for_horeca"`
	ForTypeA   bool      `json:"for_type_a"`
	ForTypeB   bool      `json:"for_type_b"`
	ForTypeC   bool      `json:"for_type_c"`
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// NewVisibility creates an active product visibility row
func NewVisibility(productID string, areaID *string, forGeneral, forModern, forHoreca, forTypeA, forTypeB, forTypeC bool) *Visibility {
	now := time.Now()
	return &Visibility{
		ID:         uuid.New().String(),
		ProductID:  productID,
		AreaID:     areaID,
		ForGeneral: forGeneral,
		ForModern:  forModern,
		ForHoreca:  forHoreca,
		ForTypeA:   forTypeA,
		ForTypeB:   forTypeB,
		ForTypeC:   forTypeC,
		IsActive:   true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// ResolvedPrice is the outcome of the area-priority fallback lookup for one
// product and one shop's chain.
type ResolvedPrice struct {
	ProductID        string          `json:"product_id"`
	AreaID           *string         `json:"area_id,omitempty"`
	MRP              decimal.Decimal `json:"mrp"`
	GSTRate          decimal.Decimal `json:"gst_rate"`
	Margins          pricing.MarginSet `json:"margins"`
	MinOrderQuantity int             `json:"min_order_quantity"`
}
