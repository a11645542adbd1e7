package brand

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/shah-dhwanil/gaatha-salesforce-sub000/internal/domain/pricing"
)

var (
	ErrEmptyName = errors.New("brand name must not be empty")
	ErrEmptyCode = errors.New("brand code must not be empty")
)

// Brand is a manufacturer label sold through the tenant's channels
type Brand struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Code       string    `json:"code"`
	ForGeneral bool      `json:"for_general"`
	ForModern  bool      `json:"for_modern"`
	ForHoreca  bool      `json:"for_horeca"`
	Logo       *string   `json:"logo,omitempty"`
	IsActive   bool      `json:"is_active"`
	IsDeleted  bool      `json:"is_deleted"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// NewBrand creates an active brand
func NewBrand(name, code string, forGeneral, forModern, forHoreca bool, logo *string) (*Brand, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if code == "" {
		return nil, ErrEmptyCode
	}

	now := time.Now()
	return &Brand{
		ID:         uuid.New().String(),
		Name:       name,
		Code:       code,
		ForGeneral: forGeneral,
		ForModern:  forModern,
		ForHoreca:  forHoreca,
		Logo:       logo,
		IsActive:   true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

// Delete soft-deletes the brand. One-way; deleted brands are never reactivated.
func (b *Brand) Delete() {
	b.IsActive = false
	b.IsDeleted = true
	b.UpdatedAt = time.Now()
}

// Visibility is one (brand, area-or-null) visibility row. A nil AreaID means
// the brand is visible everywhere; a global row and area-scoped rows may
// coexist.
type Visibility struct {
	ID        string    `json:"id"`
	BrandID   string    `json:"brand_id"`
	AreaID    *string   `json:"area_id,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewVisibility creates an active visibility row
func NewVisibility(brandID string, areaID *string) *Visibility {
	now := time.Now()
	return &Visibility{
		ID:        uuid.New().String(),
		BrandID:   brandID,
		AreaID:    areaID,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Margin is one (brand, area-or-null) margin row carrying the tier set
type Margin struct {
	ID        string            `json:"id"`
	BrandID   string            `json:"brand_id"`
	AreaID    *string           `json:"area_id,omitempty"`
	Name      string            `json:"name"`
	Margins   pricing.MarginSet `json:"margins"`
	IsActive  bool              `json:"is_active"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// NewMargin creates an active margin row
func NewMargin(brandID string, areaID *string, name string, margins pricing.MarginSet) *Margin {
	now := time.Now()
	return &Margin{
		ID:        uuid.New().String(),
		BrandID:   brandID,
		AreaID:    areaID,
		Name:      name,
		Margins:   margins,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
