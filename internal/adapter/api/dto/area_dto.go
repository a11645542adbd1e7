package dto

import (
	"time"

	"github.com/shah-dhwanil/gaatha-salesforce-sub000/internal/domain/area"
)

// AreaRequest carries the creation payload. Only the immediate parent id for
// the level is accepted; higher ancestors are resolved server-side.
type AreaRequest struct {
	Name     string  `json:"name" binding:"required"`
	Type     string  `json:"type" binding:"required"`
	NationID *string `json:"nation_id,omitempty"`
	ZoneID   *string `json:"zone_id,omitempty"`
	RegionID *string `json:"region_id,omitempty"`
	AreaID   *string `json:"area_id,omitempty"`
}

// AreaUpdateRequest carries the optional PATCH fields of an area. Supplying a
// new type without the parent id the new level requires is rejected during
// hierarchy validation.
type AreaUpdateRequest struct {
	Name     *string `json:"name,omitempty"`
	Type     *string `json:"type,omitempty"`
	NationID *string `json:"nation_id,omitempty"`
	ZoneID   *string `json:"zone_id,omitempty"`
	RegionID *string `json:"region_id,omitempty"`
	AreaID   *string `json:"area_id,omitempty"`
}

// AreaResponse is the read view of one hierarchy node
type AreaResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	NationID  *string   `json:"nation_id,omitempty"`
	ZoneID    *string   `json:"zone_id,omitempty"`
	RegionID  *string   `json:"region_id,omitempty"`
	AreaID    *string   `json:"area_id,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToAreaResponse converts a domain area into its response form
func ToAreaResponse(a *area.Area) AreaResponse {
	return AreaResponse{
		ID:        a.ID,
		Name:      a.Name,
		Type:      string(a.Type),
		NationID:  a.NationID,
		ZoneID:    a.ZoneID,
		RegionID:  a.RegionID,
		AreaID:    a.AreaID,
		IsActive:  a.IsActive,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

// ToAreaListResponse converts a page of areas
func ToAreaListResponse(areas []*area.Area) []AreaResponse {
	response := make([]AreaResponse, len(areas))
	for i, a := range areas {
		response[i] = ToAreaResponse(a)
	}
	return response
}
