package dto

import (
	"time"

	"github.com/shah-dhwanil/gaatha-salesforce-sub000/internal/domain/brand"
	"github.com/shah-dhwanil/gaatha-salesforce-sub000/internal/domain/pricing"
)

// BrandCategoryRequest carries the creation payload of a category under a brand
type BrandCategoryRequest struct {
	ParentCategoryID *string                  `json:"parent_category_id,omitempty"`
	Name             string                   `json:"name" binding:"required"`
	Code             string                   `json:"code" binding:"required"`
	ForGeneral       bool                     `json:"for_general"`
	ForModern        bool                     `json:"for_modern"`
	ForHoreca        bool                     `json:"for_horeca"`
	Logo             *string                  `json:"logo,omitempty"`
	Visibilities     []BrandVisibilityRequest `json:"visibilities,omitempty"`
	Margins          []BrandMarginRequest     `json:"margins,omitempty"`
}

// BrandCategoryResponse is the read view of a category
type BrandCategoryResponse struct {
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
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// BrandCategoryVisibilityResponse is the read view of one visibility row
type BrandCategoryVisibilityResponse struct {
	ID         string    `json:"id"`
	CategoryID string    `json:"category_id"`
	AreaID     *string   `json:"area_id,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// BrandCategoryMarginResponse is the read view of one margin row
type BrandCategoryMarginResponse struct {
	ID         string            `json:"id"`
	CategoryID string            `json:"category_id"`
	AreaID     *string           `json:"area_id,omitempty"`
	Name       string            `json:"name"`
	Margins    pricing.MarginSet `json:"margins"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
}

// ToBrandCategoryResponse converts a domain category into its response form
func ToBrandCategoryResponse(c *brand.Category) BrandCategoryResponse {
	return BrandCategoryResponse{
		ID:               c.ID,
		BrandID:          c.BrandID,
		ParentCategoryID: c.ParentCategoryID,
		Name:             c.Name,
		Code:             c.Code,
		ForGeneral:       c.ForGeneral,
		ForModern:        c.ForModern,
		ForHoreca:        c.ForHoreca,
		Logo:             c.Logo,
		IsActive:         c.IsActive,
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
	}
}

// ToBrandCategoryListResponse converts a page of categories
func ToBrandCategoryListResponse(categories []*brand.Category) []BrandCategoryResponse {
	response := make([]BrandCategoryResponse, len(categories))
	for i, c := range categories {
		response[i] = ToBrandCategoryResponse(c)
	}
	return response
}

// ToBrandCategoryVisibilityListResponse converts the visibility rows of a category
func ToBrandCategoryVisibilityListResponse(visibilities []*brand.CategoryVisibility) []BrandCategoryVisibilityResponse {
	response := make([]BrandCategoryVisibilityResponse, len(visibilities))
	for i, v := range visibilities {
		response[i] = BrandCategoryVisibilityResponse{
			ID:         v.ID,
			CategoryID: v.CategoryID,
			AreaID:     v.AreaID,
			CreatedAt:  v.CreatedAt,
		}
	}
	return response
}

// ToBrandCategoryMarginResponse converts a margin row
func ToBrandCategoryMarginResponse(m *brand.CategoryMargin) BrandCategoryMarginResponse {
	return BrandCategoryMarginResponse{
		ID:         m.ID,
		CategoryID: m.CategoryID,
		AreaID:     m.AreaID,
		Name:       m.Name,
		Margins:    m.Margins,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

// ToBrandCategoryMarginListResponse converts the margin rows of a category
func ToBrandCategoryMarginListResponse(margins []*brand.CategoryMargin) []BrandCategoryMarginResponse {
	response := make([]BrandCategoryMarginResponse, len(margins))
	for i, m := range margins {
		response[i] = ToBrandCategoryMarginResponse(m)
	}
	return response
}
