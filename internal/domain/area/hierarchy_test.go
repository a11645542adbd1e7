package area

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shah-dhwanil/gaatha-salesforce-sub000/internal/domain/domainerr"
)

// fakeLookup serves areas from a map, the way the repository would.
type fakeLookup struct {
	areas map[string]*Area
}

func (f *fakeLookup) FindByID(_ context.Context, id string) (*Area, error) {
	a, ok := f.areas[id]
	if !ok {
		return nil, domainerr.NewNotFound("area", id)
	}
	return a, nil
}

func strptr(s string) *string { return &s }

// buildChainFixture returns a validated NATION > ZONE > REGION > AREA chain.
func buildChainFixture() *fakeLookup {
	nation := &Area{ID: "nation-1", Name: "India", Type: TypeNation, IsActive: true}
	zone := &Area{ID: "zone-1", Name: "West Zone", Type: TypeZone, NationID: strptr("nation-1"), IsActive: true}
	region := &Area{
		ID: "region-1", Name: "Gujarat", Type: TypeRegion,
		ZoneID: strptr("zone-1"), NationID: strptr("nation-1"), IsActive: true,
	}
	areaNode := &Area{
		ID: "area-1", Name: "Ahmedabad", Type: TypeArea,
		RegionID: strptr("region-1"), ZoneID: strptr("zone-1"), NationID: strptr("nation-1"), IsActive: true,
	}
	return &fakeLookup{areas: map[string]*Area{
		"nation-1": nation,
		"zone-1":   zone,
		"region-1": region,
		"area-1":   areaNode,
	}}
}

func TestValidateHierarchyPropagatesAncestors(t *testing.T) {
	lookup := buildChainFixture()

	division, err := NewArea("Bopal", TypeDivision, nil, nil, nil, strptr("area-1"))
	require.NoError(t, err)

	require.NoError(t, ValidateHierarchy(context.Background(), lookup, division))

	// The division inherits the AREA's full chain transitively.
	require.NotNil(t, division.RegionID)
	require.NotNil(t, division.ZoneID)
	require.NotNil(t, division.NationID)
	assert.Equal(t, "region-1", *division.RegionID)
	assert.Equal(t, "zone-1", *division.ZoneID)
	assert.Equal(t, "nation-1", *division.NationID)
}

func TestValidateHierarchyNationPermitsNoAncestors(t *testing.T) {
	lookup := buildChainFixture()

	nation, err := NewArea("Bharat", TypeNation, nil, nil, nil, nil)
	require.NoError(t, err)
	require.NoError(t, ValidateHierarchy(context.Background(), lookup, nation))

	tainted, err := NewArea("Bharat", TypeNation, nil, strptr("zone-1"), nil, nil)
	require.NoError(t, err)
	var ih *domainerr.InvalidHierarchyError
	require.ErrorAs(t, ValidateHierarchy(context.Background(), lookup, tainted), &ih)
}

func TestValidateHierarchyRequiresExactParentField(t *testing.T) {
	lookup := buildChainFixture()
	ctx := context.Background()

	var ih *domainerr.InvalidHierarchyError

	// Missing the required parent field.
	division, _ := NewArea("Bopal", TypeDivision, nil, nil, nil, nil)
	require.ErrorAs(t, ValidateHierarchy(ctx, lookup, division), &ih)

	// A field other than the permitted one is set.
	zone, _ := NewArea("South Zone", TypeZone, strptr("nation-1"), nil, strptr("region-1"), nil)
	require.ErrorAs(t, ValidateHierarchy(ctx, lookup, zone), &ih)

	// Changing type without supplying the new parent id.
	region, _ := NewArea("Gujarat", TypeRegion, strptr("nation-1"), nil, nil, nil)
	require.ErrorAs(t, ValidateHierarchy(ctx, lookup, region), &ih)
}

func TestValidateHierarchyChecksParentType(t *testing.T) {
	lookup := buildChainFixture()

	// A DIVISION's area_id must reference an area literally of type AREA.
	division, _ := NewArea("Bopal", TypeDivision, nil, nil, nil, strptr("region-1"))
	var ih *domainerr.InvalidHierarchyError
	require.ErrorAs(t, ValidateHierarchy(context.Background(), lookup, division), &ih)
}

func TestValidateHierarchyMissingParent(t *testing.T) {
	lookup := buildChainFixture()

	zone, _ := NewArea("East Zone", TypeZone, strptr("no-such-nation"), nil, nil, nil)
	var ih *domainerr.InvalidHierarchyError
	require.ErrorAs(t, ValidateHierarchy(context.Background(), lookup, zone), &ih)
	assert.Contains(t, ih.Error(), "no-such-nation")
}

func TestHierarchyChanged(t *testing.T) {
	current := &Area{
		ID: "div-1", Type: TypeDivision,
		AreaID: strptr("area-1"), RegionID: strptr("region-1"),
		ZoneID: strptr("zone-1"), NationID: strptr("nation-1"),
	}

	assert.False(t, HierarchyChanged(current, nil, nil, nil, nil, nil))
	assert.False(t, HierarchyChanged(current, nil, nil, nil, nil, strptr("area-1")))
	assert.True(t, HierarchyChanged(current, nil, nil, nil, nil, strptr("area-2")))

	newType := TypeArea
	assert.True(t, HierarchyChanged(current, &newType, nil, nil, nil, nil))
}

func TestChainOfIncludesOwnLevel(t *testing.T) {
	division := &Area{
		ID: "div-1", Type: TypeDivision,
		AreaID: strptr("area-1"), RegionID: strptr("region-1"),
		ZoneID: strptr("zone-1"), NationID: strptr("nation-1"),
	}

	chain := ChainOf(division)
	assert.Equal(t, []string{"div-1", "area-1", "region-1", "zone-1", "nation-1"}, chain.IDs())

	nation := &Area{ID: "nation-1", Type: TypeNation}
	assert.Equal(t, []string{"nation-1"}, ChainOf(nation).IDs())
}

func TestTypePriorityOrdersMostSpecificFirst(t *testing.T) {
	assert.Less(t, TypeDivision.Priority(), TypeArea.Priority())
	assert.Less(t, TypeArea.Priority(), TypeRegion.Priority())
	assert.Less(t, TypeRegion.Priority(), TypeZone.Priority())
	assert.Less(t, TypeZone.Priority(), TypeNation.Priority())
}
