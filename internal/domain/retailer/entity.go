package retailer

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName    = errors.New("retailer name must not be empty")
	ErrEmptyRouteID = errors.New("retailer must belong to a route")
)

// Retailer is a shop on a route. The trade-type flags select which product
// visibility channel applies to it.
type Retailer struct {
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

// NewRetailer creates an active retailer
func NewRetailer(name, routeID, contactPerson, phone, address string, gstin *string, isTypeA, isTypeB, isTypeC bool) (*Retailer, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if routeID == "" {
		return nil, ErrEmptyRouteID
	}

	now := time.Now()
	return &Retailer{
		ID:            uuid.New().String(),
		Name:          name,
		RouteID:       routeID,
		ContactPerson: contactPerson,
		Phone:         phone,
		Address:       address,
		GSTIN:         gstin,
		IsTypeA:       isTypeA,
		IsTypeB:       isTypeB,
		IsTypeC:       isTypeC,
		IsActive:      true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

// Deactivate soft-deletes the retailer
func (r *Retailer) Deactivate() {
	r.IsActive = false
	r.UpdatedAt = time.Now()
}
