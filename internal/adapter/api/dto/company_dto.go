package dto

import (
	"time"

	"github.com/shah-dhwanil/gaatha-salesforce-sub000/internal/domain/company"
)

// CompanyRequest carries the registration payload of a tenant
type CompanyRequest struct {
	Name string `json:"name" binding:"required"`
}

// CompanyResponse is the read view of a tenant
type CompanyResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToCompanyResponse converts a domain company into its response form. The
// schema name is an internal detail and never leaves the server.
func ToCompanyResponse(c *company.Company) CompanyResponse {
	return CompanyResponse{
		ID:        c.ID,
		Name:      c.Name,
		IsActive:  c.IsActive,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// ToCompanyListResponse converts a page of companies
func ToCompanyListResponse(companies []*company.Company) []CompanyResponse {
	response := make([]CompanyResponse, len(companies))
	for i, c := range companies {
		response[i] = ToCompanyResponse(c)
	}
	return response
}
