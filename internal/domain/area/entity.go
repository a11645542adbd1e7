package area

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName   = errors.New("area name must not be empty")
	ErrInvalidType = errors.New("invalid area type")
)

// Type is the level of an area in the geographic hierarchy
type Type string

const (
	TypeNation   Type = "NATION"
	TypeZone     Type = "ZONE"
	TypeRegion   Type = "REGION"
	TypeArea     Type = "AREA"
	TypeDivision Type = "DIVISION"
)

// IsValid reports whether t is one of the five hierarchy levels
func (t Type) IsValid() bool {
	switch t {
	case TypeNation, TypeZone, TypeRegion, TypeArea, TypeDivision:
		return true
	}
	return false
}

// Priority returns the ordinal rank of the level, most specific first.
// DIVISION resolves before AREA, AREA before REGION and so on; the same
// ordering is encoded in SQL by get_area_priority for price fallback queries.
func (t Type) Priority() int {
	switch t {
	case TypeDivision:
		return 0
	case TypeArea:
		return 1
	case TypeRegion:
		return 2
	case TypeZone:
		return 3
	case TypeNation:
		return 4
	}
	return 5
}

// Area is one node of the NATION > ZONE > REGION > AREA > DIVISION hierarchy.
// Exactly the ancestor ids required by Type are non-nil; they are populated
// transitively from the immediate parent, never supplied by the caller beyond
// the one parent reference.
type Area struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Type      Type       `json:"type"`
	NationID  *string    `json:"nation_id,omitempty"`
	ZoneID    *string    `json:"zone_id,omitempty"`
	RegionID  *string    `json:"region_id,omitempty"`
	AreaID    *string    `json:"area_id,omitempty"`
	IsActive  bool       `json:"is_active"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// NewArea creates an area with the caller-supplied immediate parent reference.
// Ancestor propagation and parent-type checks happen in ValidateHierarchy.
func NewArea(name string, areaType Type, nationID, zoneID, regionID, areaID *string) (*Area, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if !areaType.IsValid() {
		return nil, ErrInvalidType
	}

	now := time.Now()
	return &Area{
		ID:        uuid.New().String(),
		Name:      name,
		Type:      areaType,
		NationID:  nationID,
		ZoneID:    zoneID,
		RegionID:  regionID,
		AreaID:    areaID,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Deactivate soft-deletes the area. Deactivation is one-way; nothing in the
// system reactivates a deleted area.
func (a *Area) Deactivate() {
	a.IsActive = false
	a.UpdatedAt = time.Now()
}

// Chain is the resolved ancestor set of one point in the hierarchy, used to
// look up the most specific matching price or margin row.
type Chain struct {
	DivisionID *string
	AreaID     *string
	RegionID   *string
	ZoneID     *string
	NationID   *string
}

// IDs returns the non-nil ids of the chain, most specific first.
func (c Chain) IDs() []string {
	ids := make([]string, 0, 5)
	for _, id := range []*string{c.DivisionID, c.AreaID, c.RegionID, c.ZoneID, c.NationID} {
		if id != nil {
			ids = append(ids, *id)
		}
	}
	return ids
}

// ChainOf builds the chain for an area row, including the row itself at its
// own level.
func ChainOf(a *Area) Chain {
	c := Chain{
		AreaID:   a.AreaID,
		RegionID: a.RegionID,
		ZoneID:   a.ZoneID,
		NationID: a.NationID,
	}
	id := a.ID
	switch a.Type {
	case TypeDivision:
		c.DivisionID = &id
	case TypeArea:
		c.AreaID = &id
	case TypeRegion:
		c.RegionID = &id
	case TypeZone:
		c.ZoneID = &id
	case TypeNation:
		c.NationID = &id
	}
	return c
}
