package brand

import (
	"time"

	"github.com/google/uuid"

	"github.com/shah-dhwanil/gaatha-salesforce-sub000/internal/domain/pricing"
)

// Category is a brand category, optionally nested one level under a parent
// category of the same brand. The nesting depth is modeled but not enforced
// beyond the foreign key.
type Category struct {
	ID               string    `json:"id"`
	BrandID          string    `json:"brand_id"`
	ParentCategoryID *string   `json:"parent_category_id,omitempty"`
	Name             string    `json:"name"`
	Code             string    `json:"code"`
	ForGeneral       bool      `json:"for_general"`
	ForModern        bool      `json:"for_modern"`
	ForHoreca        bool      `json:"for_horeca"`
	Logo             *string   `json:"logo,omitempty"`
	IsActive         bool      `json:"is_active"`
	IsDeleted        bool      `json:"is_deleted"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// NewCategory creates an active brand category
func NewCategory(brandID string, parentCategoryID *string, name, code string, forGeneral, forModern, forHoreca bool, logo *string) (*Category, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if code == "" {
		return nil, ErrEmptyCode
	}

	now := time.Now()
	return &Category{
		ID:               uuid.New().String(),
		BrandID:          brandID,
		ParentCategoryID: parentCategoryID,
		Name:             name,
		Code:             code,
		ForGeneral:       forGeneral,
		ForModern:        forModern,
		ForHoreca:        forHoreca,
		Logo:             logo,
		IsActive:         true,
		CreatedAt:        now,
		UpdatedAt:        now,
	}, nil
}

// Delete soft-deletes the category
func (c *Category) Delete() {
	c.IsActive = false
	c.IsDeleted = true
	c.UpdatedAt = time.Now()
}

// CategoryVisibility is one (category, area-or-null) visibility row
type CategoryVisibility struct {
	ID         string    `json:"id"`
	CategoryID string    `json:"category_id"`
	AreaID     *string   `json:"area_id,omitempty"`
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// NewCategoryVisibility creates an active category visibility row
func NewCategoryVisibility(categoryID string, areaID *string) *CategoryVisibility {
	now := time.Now()
	return &CategoryVisibility{
		ID:         uuid.New().String(),
		CategoryID: categoryID,
		AreaID:     areaID,
		IsActive:   true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// CategoryMargin is one (category, area-or-null) margin row
type CategoryMargin struct {
	ID         string            `json:"id"`
	CategoryID string            `json:"category_id"`
	AreaID     *string           `json:"area_id,omitempty"`
	Name       string            `json:"name"`
	Margins    pricing.MarginSet `json:"margins"`
	IsActive   bool              `json:"is_active"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
}

// NewCategoryMargin creates an active category margin row
func NewCategoryMargin(categoryID string, areaID *string, name string, margins pricing.MarginSet) *CategoryMargin {
	now := time.Now()
	return &CategoryMargin{
		ID:         uuid.New().String(),
		CategoryID: categoryID,
		AreaID:     areaID,
		Name:       name,
		Margins:    margins,
		IsActive:   true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}
