package dto

import (
	"time"

	"github.com/shah-dhwanil/gaatha-salesforce-sub000/internal/domain/brand"
	"github.com/shah-dhwanil/gaatha-salesforce-sub000/internal/domain/pricing"
)

// BrandVisibilityRequest scopes a brand to one area; nil means everywhere
type BrandVisibilityRequest struct {
	AreaID *string `json:"area_id,omitempty"`
}

// BrandMarginRequest is the add-or-update payload of one margin row
type BrandMarginRequest struct {
	AreaID  *string          `json:"area_id,omitempty"`
	Name    *string          `json:"name,omitempty"`
	Margins MarginSetRequest `json:"margins"`
}

// BrandRequest carries the creation payload, optionally with initial
// visibility and margin rows
type BrandRequest struct {
	Name         string                   `json:"name" binding:"required"`
	Code         string                   `json:"code" binding:"required"`
	ForGeneral   bool                     `json:"for_general"`
	ForModern    bool                     `json:"for_modern"`
	ForHoreca    bool                     `json:"for_horeca"`
	Logo         *string                  `json:"logo,omitempty"`
	Visibilities []BrandVisibilityRequest `json:"visibilities,omitempty"`
	Margins      []BrandMarginRequest     `json:"margins,omitempty"`
}

// BrandUpdateRequest carries the optional PATCH fields of a brand
type BrandUpdateRequest struct {
	Name       *string `json:"name,omitempty"`
	Code       *string `json:"code,omitempty"`
	ForGeneral *bool   `json:"for_general,omitempty"`
	ForModern  *bool   `json:"for_modern,omitempty"`
	ForHoreca  *bool   `json:"for_horeca,omitempty"`
	Logo       *string `json:"logo,omitempty"`
}

// BrandResponse is the read view of a brand
type BrandResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Code       string    `json:"code"`
	ForGeneral bool      `json:"for_general"`
	ForModern  bool      `json:"for_modern"`
	ForHoreca  bool      `json:"for_horeca"`
	Logo       *string   `json:"logo,omitempty"`
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// BrandVisibilityResponse is the read view of one visibility row
type BrandVisibilityResponse struct {
	ID        string    `json:"id"`
	BrandID   string    `json:"brand_id"`
	AreaID    *string   `json:"area_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// BrandMarginResponse is the read view of one margin row
type BrandMarginResponse struct {
	ID        string            `json:"id"`
	BrandID   string            `json:"brand_id"`
	AreaID    *string           `json:"area_id,omitempty"`
	Name      string            `json:"name"`
	Margins   pricing.MarginSet `json:"margins"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// ToBrandResponse converts a domain brand into its response form
func ToBrandResponse(b *brand.Brand) BrandResponse {
	return BrandResponse{
		ID:         b.ID,
		Name:       b.Name,
		Code:       b.Code,
		ForGeneral: b.ForGeneral,
		ForModern:  b.ForModern,
		ForHoreca:  b.ForHoreca,
		Logo:       b.Logo,
		IsActive:   b.IsActive,
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
	}
}

// ToBrandListResponse converts a page of brands
func ToBrandListResponse(brands []*brand.Brand) []BrandResponse {
	response := make([]BrandResponse, len(brands))
	for i, b := range brands {
		response[i] = ToBrandResponse(b)
	}
	return response
}

// ToBrandVisibilityResponse converts a visibility row
func ToBrandVisibilityResponse(v *brand.Visibility) BrandVisibilityResponse {
	return BrandVisibilityResponse{
		ID:        v.ID,
		BrandID:   v.BrandID,
		AreaID:    v.AreaID,
		CreatedAt: v.CreatedAt,
	}
}

// ToBrandVisibilityListResponse converts the visibility rows of a brand
func ToBrandVisibilityListResponse(visibilities []*brand.Visibility) []BrandVisibilityResponse {
	response := make([]BrandVisibilityResponse, len(visibilities))
	for i, v := range visibilities {
		response[i] = ToBrandVisibilityResponse(v)
	}
	return response
}

// ToBrandMarginResponse converts a margin row
func ToBrandMarginResponse(m *brand.Margin) BrandMarginResponse {
	return BrandMarginResponse{
		ID:        m.ID,
		BrandID:   m.BrandID,
		AreaID:    m.AreaID,
		Name:      m.Name,
		Margins:   m.Margins,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// ToBrandMarginListResponse converts the margin rows of a brand
func ToBrandMarginListResponse(margins []*brand.Margin) []BrandMarginResponse {
	response := make([]BrandMarginResponse, len(margins))
	for i, m := range margins {
		response[i] = ToBrandMarginResponse(m)
	}
	return response
}
