package company

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName = errors.New("company name must not be empty")
)

// Company is one tenant, isolated behind its own database schema
type Company struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	SchemaName string    `json:"schema_name"`
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// NewCompany creates an active company with a schema name derived from its id
func NewCompany(name string) (*Company, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	id := uuid.New()
	now := time.Now()
	return &Company{
		ID:         id.String(),
		Name:       name,
		SchemaName: SchemaName(id.String()),
		IsActive:   true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

// SchemaName normalizes a company uuid into a valid schema identifier.
// Distinct uuids always map to distinct names: the uuid hex is kept verbatim,
// only the dashes are dropped.
func SchemaName(companyID string) string {
	return "company_" + strings.ReplaceAll(strings.ToLower(companyID), "-", "")
}

// Deactivate soft-deletes the company. The schema is left in place.
func (c *Company) Deactivate() {
	c.IsActive = false
	c.UpdatedAt = time.Now()
}
