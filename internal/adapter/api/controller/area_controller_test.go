package controller

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	areadomain "github.com/shah-dhwanil/gaatha-salesforce-sub000/internal/domain/area"
	"github.com/shah-dhwanil/gaatha-salesforce-sub000/internal/domain/domainerr"
)

// stubAreaRepo serves areas from a map and records the last Update.
type stubAreaRepo struct {
	areas   map[string]*areadomain.Area
	updated *areadomain.Area
}

func (s *stubAreaRepo) Create(_ context.Context, _ *areadomain.Area) error { return nil }

func (s *stubAreaRepo) FindByID(_ context.Context, id string) (*areadomain.Area, error) {
	a, ok := s.areas[id]
	if !ok {
		return nil, domainerr.NewNotFound("area", id)
	}
	return a, nil
}

func (s *stubAreaRepo) List(_ context.Context, _ areadomain.Filter, _, _ int) ([]*areadomain.Area, error) {
	return nil, nil
}

func (s *stubAreaRepo) Count(_ context.Context, _ areadomain.Filter) (int, error) { return 0, nil }

func (s *stubAreaRepo) ListChildren(_ context.Context, _, _ string, _ areadomain.Type) ([]*areadomain.Area, error) {
	return nil, nil
}

func (s *stubAreaRepo) Update(_ context.Context, a *areadomain.Area) error {
	s.updated = a
	return nil
}

func (s *stubAreaRepo) Deactivate(_ context.Context, _ string) error { return nil }

func ptr(s string) *string { return &s }

func areaChainRepo() *stubAreaRepo {
	return &stubAreaRepo{areas: map[string]*areadomain.Area{
		"nation-1": {ID: "nation-1", Name: "India", Type: areadomain.TypeNation, IsActive: true},
		"zone-1": {ID: "zone-1", Name: "West Zone", Type: areadomain.TypeZone,
			NationID: ptr("nation-1"), IsActive: true},
		"region-1": {ID: "region-1", Name: "Gujarat", Type: areadomain.TypeRegion,
			ZoneID: ptr("zone-1"), NationID: ptr("nation-1"), IsActive: true},
		"area-1": {ID: "area-1", Name: "Ahmedabad", Type: areadomain.TypeArea,
			RegionID: ptr("region-1"), ZoneID: ptr("zone-1"), NationID: ptr("nation-1"), IsActive: true},
		"div-1": {ID: "div-1", Name: "Bopal", Type: areadomain.TypeDivision,
			AreaID: ptr("area-1"), RegionID: ptr("region-1"), ZoneID: ptr("zone-1"),
			NationID: ptr("nation-1"), IsActive: true},
	}}
}

func patchArea(t *testing.T, repo *stubAreaRepo, id, body string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	c := NewAreaController(repo, &recordingLogger{})
	router.PATCH("/areas/:id", c.Update)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/areas/"+id, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestAreaUpdateTypeChangeWithoutParentRejected(t *testing.T) {
	repo := areaChainRepo()

	// promoting a division to AREA needs a region_id for the new level
	w := patchArea(t, repo, "div-1", `{"type":"AREA"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "region_id")
	assert.Nil(t, repo.updated)
}

func TestAreaUpdateTypeChangeWithParentSucceeds(t *testing.T) {
	repo := areaChainRepo()

	w := patchArea(t, repo, "div-1", `{"type":"AREA","region_id":"region-1"}`)

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, repo.updated)
	assert.Equal(t, areadomain.TypeArea, repo.updated.Type)
	require.NotNil(t, repo.updated.RegionID)
	assert.Equal(t, "region-1", *repo.updated.RegionID)
	// the rest of the chain is recomputed from the new parent
	require.NotNil(t, repo.updated.NationID)
	assert.Equal(t, "nation-1", *repo.updated.NationID)
	assert.Nil(t, repo.updated.AreaID)
}

func TestAreaUpdateUnknownTypeRejected(t *testing.T) {
	repo := areaChainRepo()

	w := patchArea(t, repo, "div-1", `{"type":"PLANET"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "unknown area type")
	assert.Nil(t, repo.updated)
}
