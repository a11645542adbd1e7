package area

import (
	"context"
	"errors"

	"github.com/shah-dhwanil/gaatha-salesforce-sub000/internal/domain/domainerr"
)

// ParentLookup fetches a candidate parent by id. Implemented by the area
// repository; tests supply an in-memory fake.
type ParentLookup interface {
	FindByID(ctx context.Context, id string) (*Area, error)
}

// parentRule names the single permitted parent field for a type and the type
// the referenced row must have.
type parentRule struct {
	field      string
	parentType Type
	get        func(*Area) *string
}

func ruleFor(t Type) *parentRule {
	switch t {
	case TypeZone:
		return &parentRule{"nation_id", TypeNation, func(a *Area) *string { return a.NationID }}
	case TypeRegion:
		return &parentRule{"zone_id", TypeZone, func(a *Area) *string { return a.ZoneID }}
	case TypeArea:
		return &parentRule{"region_id", TypeRegion, func(a *Area) *string { return a.RegionID }}
	case TypeDivision:
		return &parentRule{"area_id", TypeArea, func(a *Area) *string { return a.AreaID }}
	}
	return nil // NATION has no parent
}

// ancestorFields lists every ancestor column with its accessor, used to reject
// rows where a field other than the permitted parent is set.
var ancestorFields = []struct {
	name string
	get  func(*Area) *string
}{
	{"nation_id", func(a *Area) *string { return a.NationID }},
	{"zone_id", func(a *Area) *string { return a.ZoneID }},
	{"region_id", func(a *Area) *string { return a.RegionID }},
	{"area_id", func(a *Area) *string { return a.AreaID }},
}

// ValidateHierarchy enforces the parent-chain invariants on a and copies the
// parent's remaining ancestor ids onto it. The caller supplies only the
// immediate parent reference; every other ancestor field must be nil on entry
// and is populated here from the fetched parent.
//
// Cycles are not checked: the tree only grows downward from already validated
// nodes, so a cycle cannot form through this path.
func ValidateHierarchy(ctx context.Context, lookup ParentLookup, a *Area) error {
	if !a.Type.IsValid() {
		return domainerr.NewInvalidHierarchy("unknown area type %q", a.Type)
	}

	rule := ruleFor(a.Type)

	// NATION permits no ancestor ids at all.
	if rule == nil {
		for _, f := range ancestorFields {
			if f.get(a) != nil {
				return domainerr.NewInvalidHierarchy("NATION must not reference %s", f.name)
			}
		}
		return nil
	}

	parentID := rule.get(a)
	if parentID == nil {
		return domainerr.NewInvalidHierarchy("%s requires %s", a.Type, rule.field)
	}

	for _, f := range ancestorFields {
		if f.name == rule.field {
			continue
		}
		if f.get(a) != nil {
			return domainerr.NewInvalidHierarchy("%s must only reference %s, got %s", a.Type, rule.field, f.name)
		}
	}

	parent, err := lookup.FindByID(ctx, *parentID)
	if err != nil {
		var nf *domainerr.NotFoundError
		if errors.As(err, &nf) {
			return domainerr.NewInvalidHierarchy("%s %q does not exist", rule.field, *parentID)
		}
		return err
	}

	if parent.Type != rule.parentType {
		return domainerr.NewInvalidHierarchy("%s must reference an area of type %s, %q is %s",
			rule.field, rule.parentType, parent.ID, parent.Type)
	}

	// Copy the parent's own ancestors up onto the child. The parent passed
	// validation when it was created, so its chain is complete for its level.
	switch a.Type {
	case TypeRegion:
		a.NationID = parent.NationID
	case TypeArea:
		a.ZoneID = parent.ZoneID
		a.NationID = parent.NationID
	case TypeDivision:
		a.RegionID = parent.RegionID
		a.ZoneID = parent.ZoneID
		a.NationID = parent.NationID
	}

	return nil
}

// HierarchyChanged reports whether an update moves a within the tree: a type
// change or any ancestor id change forces re-validation.
func HierarchyChanged(current *Area, newType *Type, nationID, zoneID, regionID, areaID *string) bool {
	if newType != nil && *newType != current.Type {
		return true
	}
	for _, pair := range []struct {
		supplied *string
		current  *string
	}{
		{nationID, current.NationID},
		{zoneID, current.ZoneID},
		{regionID, current.RegionID},
		{areaID, current.AreaID},
	} {
		if pair.supplied != nil && (pair.current == nil || *pair.supplied != *pair.current) {
			return true
		}
	}
	return false
}
