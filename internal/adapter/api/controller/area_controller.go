package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shah-dhwanil/gaatha-salesforce-sub000/internal/adapter/api/dto"
	areadomain "github.com/shah-dhwanil/gaatha-salesforce-sub000/internal/domain/area"
	"github.com/shah-dhwanil/gaatha-salesforce-sub000/pkg/logger"
)

// AreaController handles the geographic hierarchy endpoints
type AreaController struct {
	areaRepo areadomain.Repository
	logger   logger.Logger
}

// NewAreaController creates a new AreaController
func NewAreaController(areaRepo areadomain.Repository, logger logger.Logger) *AreaController {
	return &AreaController{
		areaRepo: areaRepo,
		logger:   logger,
	}
}

// Create registers a new hierarchy node
// @Summary Create area
// @Description Creates an area after validating its parent chain; higher ancestors are copied from the parent
// @Tags areas
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param company_id path string true "Company ID"
// @Param area body dto.AreaRequest true "Area payload"
// @Success 201 {object} dto.Envelope{data=dto.AreaResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /companies/{company_id}/areas [post]
func (c *AreaController) Create(ctx *gin.Context) {
	var req dto.AreaRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, err)
		return
	}

	a, err := areadomain.NewArea(req.Name, areadomain.Type(req.Type), req.NationID, req.ZoneID, req.RegionID, req.AreaID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))
		return
	}

	if err := areadomain.ValidateHierarchy(ctx.Request.Context(), c.areaRepo, a); err != nil {
		respondError(ctx, c.logger, "area.create", err)
		return
	}

	if err := c.areaRepo.Create(ctx.Request.Context(), a); err != nil {
		respondError(ctx, c.logger, "area.create", err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewEnvelope(http.StatusCreated, dto.ToAreaResponse(a)))
}

// Get returns one area by id
// @Summary Get area
// @Tags areas
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param company_id path string true "Company ID"
// @Param id path string true "Area ID"
// @Success 200 {object} dto.Envelope{data=dto.AreaResponse}
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /companies/{company_id}/areas/{id} [get]
func (c *AreaController) Get(ctx *gin.Context) {
	a, err := c.areaRepo.FindByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, c.logger, "area.get", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewEnvelope(http.StatusOK, dto.ToAreaResponse(a)))
}

// List returns a page of areas, optionally filtered by type
// @Summary List areas
// @Tags areas
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param company_id path string true "Company ID"
// @Param type query string false "Area type filter"
// @Param page query int false "Page"
// @Param page_size query int false "Page size"
// @Success 200 {object} dto.ListEnvelope{data=[]dto.AreaResponse}
// @Failure 500 {object} dto.ErrorResponse
// @Router /companies/{company_id}/areas [get]
func (c *AreaController) List(ctx *gin.Context) {
	pagination := pageParams(ctx)

	var filter areadomain.Filter
	if t := ctx.Query("type"); t != "" {
		areaType := areadomain.Type(t)
		if !areaType.IsValid() {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("unknown area type "+t))
			return
		}
		filter.Type = &areaType
	}
	active := true
	filter.IsActive = &active

	areas, err := c.areaRepo.List(ctx.Request.Context(), filter, pagination.PageSize, pagination.Offset())
	if err != nil {
		respondError(ctx, c.logger, "area.list", err)
		return
	}

	total, err := c.areaRepo.Count(ctx.Request.Context(), filter)
	if err != nil {
		respondError(ctx, c.logger, "area.list", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewListEnvelope(http.StatusOK, dto.ToAreaListResponse(areas), pagination.PageSize, total))
}

// ListChildren returns the direct children of an area
// @Summary List child areas
// @Description Returns the active areas one level below the given area
// @Tags areas
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param company_id path string true "Company ID"
// @Param id path string true "Parent area ID"
// @Success 200 {object} dto.Envelope{data=[]dto.AreaResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /companies/{company_id}/areas/{id}/children [get]
func (c *AreaController) ListChildren(ctx *gin.Context) {
	parent, err := c.areaRepo.FindByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, c.logger, "area.children", err)
		return
	}

	childType, parentField, ok := childLevelOf(parent.Type)
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("DIVISION areas have no children"))
		return
	}

	children, err := c.areaRepo.ListChildren(ctx.Request.Context(), parentField, parent.ID, childType)
	if err != nil {
		respondError(ctx, c.logger, "area.children", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewEnvelope(http.StatusOK, dto.ToAreaListResponse(children)))
}

// ListNations returns every active top-level node
// @Summary List nations
// @Tags areas
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param company_id path string true "Company ID"
// @Success 200 {object} dto.Envelope{data=[]dto.AreaResponse}
// @Failure 500 {object} dto.ErrorResponse
// @Router /companies/{company_id}/areas/hierarchy/nations [get]
func (c *AreaController) ListNations(ctx *gin.Context) {
	nationType := areadomain.TypeNation
	active := true
	filter := areadomain.Filter{Type: &nationType, IsActive: &active}

	total, err := c.areaRepo.Count(ctx.Request.Context(), filter)
	if err != nil {
		respondError(ctx, c.logger, "area.nations", err)
		return
	}

	nations, err := c.areaRepo.List(ctx.Request.Context(), filter, total, 0)
	if err != nil {
		respondError(ctx, c.logger, "area.nations", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewEnvelope(http.StatusOK, dto.ToAreaListResponse(nations)))
}

// ListZones returns the zones under a nation
// @Summary List zones of a nation
// @Tags areas
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param company_id path string true "Company ID"
// @Param id path string true "Nation ID"
// @Success 200 {object} dto.Envelope{data=[]dto.AreaResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /companies/{company_id}/areas/nation/{id}/zones [get]
func (c *AreaController) ListZones(ctx *gin.Context) {
	c.listTypedChildren(ctx, areadomain.TypeNation, "area.zones")
}

// ListRegions returns the regions under a zone
// @Summary List regions of a zone
// @Tags areas
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param company_id path string true "Company ID"
// @Param id path string true "Zone ID"
// @Success 200 {object} dto.Envelope{data=[]dto.AreaResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /companies/{company_id}/areas/zone/{id}/regions [get]
func (c *AreaController) ListRegions(ctx *gin.Context) {
	c.listTypedChildren(ctx, areadomain.TypeZone, "area.regions")
}

// ListAreas returns the areas under a region
// @Summary List areas of a region
// @Tags areas
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param company_id path string true "Company ID"
// @Param id path string true "Region ID"
// @Success 200 {object} dto.Envelope{data=[]dto.AreaResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /companies/{company_id}/areas/region/{id}/areas [get]
func (c *AreaController) ListAreas(ctx *gin.Context) {
	c.listTypedChildren(ctx, areadomain.TypeRegion, "area.areas")
}

// ListDivisions returns the divisions under an area
// @Summary List divisions of an area
// @Tags areas
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param company_id path string true "Company ID"
// @Param id path string true "Area ID"
// @Success 200 {object} dto.Envelope{data=[]dto.AreaResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /companies/{company_id}/areas/area/{id}/divisions [get]
func (c *AreaController) ListDivisions(ctx *gin.Context) {
	c.listTypedChildren(ctx, areadomain.TypeArea, "area.divisions")
}

// listTypedChildren is ListChildren with the parent level fixed by the route
func (c *AreaController) listTypedChildren(ctx *gin.Context, parentType areadomain.Type, op string) {
	parent, err := c.areaRepo.FindByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, c.logger, op, err)
		return
	}

	if parent.Type != parentType {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("area "+parent.ID+" is a "+string(parent.Type)+", not a "+string(parentType)))
		return
	}

	childType, parentField, _ := childLevelOf(parent.Type)
	children, err := c.areaRepo.ListChildren(ctx.Request.Context(), parentField, parent.ID, childType)
	if err != nil {
		respondError(ctx, c.logger, op, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewEnvelope(http.StatusOK, dto.ToAreaListResponse(children)))
}

// childLevelOf maps a level onto the next level down and the ancestor column
// its children reference it by.
func childLevelOf(t areadomain.Type) (areadomain.Type, string, bool) {
	switch t {
	case areadomain.TypeNation:
		return areadomain.TypeZone, "nation_id", true
	case areadomain.TypeZone:
		return areadomain.TypeRegion, "zone_id", true
	case areadomain.TypeRegion:
		return areadomain.TypeArea, "region_id", true
	case areadomain.TypeArea:
		return areadomain.TypeDivision, "area_id", true
	}
	return "", "", false
}

// Update patches an area; moving it in the tree re-runs hierarchy validation
// @Summary Update area
// @Tags areas
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param company_id path string true "Company ID"
// @Param id path string true "Area ID"
// @Param area body dto.AreaUpdateRequest true "Fields to update"
// @Success 200 {object} dto.Envelope{data=dto.AreaResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /companies/{company_id}/areas/{id} [patch]
func (c *AreaController) Update(ctx *gin.Context) {
	var req dto.AreaUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, err)
		return
	}

	a, err := c.areaRepo.FindByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, c.logger, "area.update", err)
		return
	}

	if req.Name != nil {
		if *req.Name == "" {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("area name must not be empty"))
			return
		}
		a.Name = *req.Name
	}

	var newType *areadomain.Type
	if req.Type != nil {
		t := areadomain.Type(*req.Type)
		if !t.IsValid() {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("unknown area type "+*req.Type))
			return
		}
		newType = &t
	}

	if areadomain.HierarchyChanged(a, newType, req.NationID, req.ZoneID, req.RegionID, req.AreaID) {
		// The moved node keeps only the supplied parent; the rest of the chain
		// is recomputed from it. A type change with no parent id for the new
		// level fails validation.
		if newType != nil {
			a.Type = *newType
		}
		a.NationID, a.ZoneID, a.RegionID, a.AreaID = req.NationID, req.ZoneID, req.RegionID, req.AreaID
		if err := areadomain.ValidateHierarchy(ctx.Request.Context(), c.areaRepo, a); err != nil {
			respondError(ctx, c.logger, "area.update", err)
			return
		}
	}

	if err := c.areaRepo.Update(ctx.Request.Context(), a); err != nil {
		respondError(ctx, c.logger, "area.update", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewEnvelope(http.StatusOK, dto.ToAreaResponse(a)))
}

// Delete deactivates an area
// @Summary Delete area
// @Tags areas
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param company_id path string true "Company ID"
// @Param id path string true "Area ID"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /companies/{company_id}/areas/{id} [delete]
func (c *AreaController) Delete(ctx *gin.Context) {
	if err := c.areaRepo.Deactivate(ctx.Request.Context(), ctx.Param("id")); err != nil {
		respondError(ctx, c.logger, "area.delete", err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
