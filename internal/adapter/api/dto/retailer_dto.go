package dto

import (
	"time"

	"github.com/shah-dhwanil/gaatha-salesforce-sub000/internal/domain/retailer"
)

// RetailerRequest carries the creation payload of a shop
type RetailerRequest struct {
	Name          string  `json:"name" binding:"required"`
	RouteID       string  `json:"route_id" binding:"required"`
	ContactPerson string  `json:"contact_person"`
	Phone         string  `json:"phone"`
	Address       string  `json:"address"`
	GSTIN         *string `json:"gstin,omitempty"`
	IsTypeA       bool    `json:"is_type_a"`
	IsTypeB       bool    `json:"is_type_b"`
	IsTypeC       bool    `json:"is_type_c"`
}

// RetailerUpdateRequest carries the optional PATCH fields of a retailer
type RetailerUpdateRequest struct {
	Name          *string `json:"name,omitempty"`
	RouteID       *string `json:"route_id,omitempty"`
	ContactPerson *string `json:"contact_person,omitempty"`
	Phone         *string `json:"phone,omitempty"`
	Address       *string `json:"address,omitempty"`
	GSTIN         *string `json:"gstin,omitempty"`
	IsTypeA       *bool   `json:"is_type_a,omitempty"`
	IsTypeB       *bool   `json:"is_type_b,omitempty"`
	IsTypeC       *bool   `json:"is_type_c,omitempty"`
}

// RetailerResponse is the read view of a shop
type RetailerResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	RouteID       string    `json:"route_id"`
	ContactPerson string    `json:"contact_person"`
	Phone         string    `json:"phone"`
	Address       string    `json:"address"`
	GSTIN         *string   `json:"gstin,omitempty"`
	IsTypeA       bool      `json:"is_type_a"`
	IsTypeB       bool      `json:"is_type_b"`
	IsTypeC       bool      `json:"is_type_c"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ToRetailerResponse converts a domain retailer into its response form
func ToRetailerResponse(r *retailer.Retailer) RetailerResponse {
	return RetailerResponse{
		ID:            r.ID,
		Name:          r.Name,
		RouteID:       r.RouteID,
		ContactPerson: r.ContactPerson,
		Phone:         r.Phone,
		Address:       r.Address,
		GSTIN:         r.GSTIN,
		IsTypeA:       r.IsTypeA,
		IsTypeB:       r.IsTypeB,
		IsTypeC:       r.IsTypeC,
		IsActive:      r.IsActive,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

// ToRetailerListResponse converts a page of retailers
func ToRetailerListResponse(retailers []*retailer.Retailer) []RetailerResponse {
	response := make([]RetailerResponse, len(retailers))
	for i, r := range retailers {
		response[i] = ToRetailerResponse(r)
	}
	return response
}
