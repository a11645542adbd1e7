package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shah-dhwanil/gaatha-salesforce-sub000/internal/adapter/api/dto"
	branddomain "github.com/shah-dhwanil/gaatha-salesforce-sub000/internal/domain/brand"
	"github.com/shah-dhwanil/gaatha-salesforce-sub000/pkg/logger"
)

// BrandController handles brand endpoints, including visibility and margins
type BrandController struct {
	brandRepo branddomain.Repository
	logger    logger.Logger
}

// NewBrandController creates a new BrandController
func NewBrandController(brandRepo branddomain.Repository, logger logger.Logger) *BrandController {
	return &BrandController{
		brandRepo: brandRepo,
		logger:    logger,
	}
}

// Create registers a brand with optional initial visibility and margin rows
// @Summary Create brand
// @Tags brands
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param company_id path string true "Company ID"
// @Param brand body dto.BrandRequest true "Brand payload"
// @Success 201 {object} dto.Envelope{data=dto.BrandResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /companies/{company_id}/brands [post]
func (c *BrandController) Create(ctx *gin.Context) {
	var req dto.BrandRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, err)
		return
	}

	b, err := branddomain.NewBrand(req.Name, req.Code, req.ForGeneral, req.ForModern, req.ForHoreca, req.Logo)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))
		return
	}

	visibilities := make([]*branddomain.Visibility, 0, len(req.Visibilities))
	for _, v := range req.Visibilities {
		visibilities = append(visibilities, branddomain.NewVisibility(b.ID, v.AreaID))
	}

	margins := make([]*branddomain.Margin, 0, len(req.Margins))
	for _, m := range req.Margins {
		set, err := m.Margins.ToMarginSet()
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))
			return
		}
		name := ""
		if m.Name != nil {
			name = *m.Name
		}
		margins = append(margins, branddomain.NewMargin(b.ID, m.AreaID, name, set))
	}

	if err := c.brandRepo.Create(ctx.Request.Context(), b, visibilities, margins); err != nil {
		respondError(ctx, c.logger, "brand.create", err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewEnvelope(http.StatusCreated, dto.ToBrandResponse(b)))
}

// Get returns one brand by id
// @Summary Get brand
// @Tags brands
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param company_id path string true "Company ID"
// @Param brand_id path string true "Brand ID"
// @Success 200 {object} dto.Envelope{data=dto.BrandResponse}
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /companies/{company_id}/brands/{brand_id} [get]
func (c *BrandController) Get(ctx *gin.Context) {
	b, err := c.brandRepo.FindByID(ctx.Request.Context(), ctx.Param("brand_id"))
	if err != nil {
		respondError(ctx, c.logger, "brand.get", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewEnvelope(http.StatusOK, dto.ToBrandResponse(b)))
}

// List returns a page of active brands
// @Summary List brands
// @Tags brands
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param company_id path string true "Company ID"
// @Param page query int false "Page"
// @Param page_size query int false "Page size"
// @Success 200 {object} dto.ListEnvelope{data=[]dto.BrandResponse}
// @Failure 500 {object} dto.ErrorResponse
// @Router /companies/{company_id}/brands [get]
func (c *BrandController) List(ctx *gin.Context) {
	pagination := pageParams(ctx)

	brands, err := c.brandRepo.List(ctx.Request.Context(), pagination.PageSize, pagination.Offset())
	if err != nil {
		respondError(ctx, c.logger, "brand.list", err)
		return
	}

	total, err := c.brandRepo.Count(ctx.Request.Context())
	if err != nil {
		respondError(ctx, c.logger, "brand.list", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewListEnvelope(http.StatusOK, dto.ToBrandListResponse(brands), pagination.PageSize, total))
}

// Update patches a brand
// @Summary Update brand
// @Tags brands
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param company_id path string true "Company ID"
// @Param brand_id path string true "Brand ID"
// @Param brand body dto.BrandUpdateRequest true "Fields to update"
// @Success 200 {object} dto.Envelope{data=dto.BrandResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /companies/{company_id}/brands/{brand_id} [patch]
func (c *BrandController) Update(ctx *gin.Context) {
	var req dto.BrandUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, err)
		return
	}

	b, err := c.brandRepo.Update(ctx.Request.Context(), ctx.Param("brand_id"), branddomain.Update{
		Name:       req.Name,
		Code:       req.Code,
		ForGeneral: req.ForGeneral,
		ForModern:  req.ForModern,
		ForHoreca:  req.ForHoreca,
		Logo:       req.Logo,
	})
	if err != nil {
		respondError(ctx, c.logger, "brand.update", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewEnvelope(http.StatusOK, dto.ToBrandResponse(b)))
}

// Delete soft-deletes a brand
// @Summary Delete brand
// @Tags brands
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param company_id path string true "Company ID"
// @Param brand_id path string true "Brand ID"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /companies/{company_id}/brands/{brand_id} [delete]
func (c *BrandController) Delete(ctx *gin.Context) {
	if err := c.brandRepo.Delete(ctx.Request.Context(), ctx.Param("brand_id")); err != nil {
		respondError(ctx, c.logger, "brand.delete", err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// AddVisibility inserts or reactivates one (brand, area) visibility row
// @Summary Add brand visibility
// @Tags brands
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param company_id path string true "Company ID"
// @Param brand_id path string true "Brand ID"
// @Param visibility body dto.BrandVisibilityRequest true "Visibility payload"
// @Success 201 {object} dto.Envelope{data=dto.BrandVisibilityResponse}
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /companies/{company_id}/brands/{brand_id}/visibility [post]
func (c *BrandController) AddVisibility(ctx *gin.Context) {
	var req dto.BrandVisibilityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, err)
		return
	}

	v := branddomain.NewVisibility(ctx.Param("brand_id"), req.AreaID)
	if err := c.brandRepo.AddVisibility(ctx.Request.Context(), v); err != nil {
		respondError(ctx, c.logger, "brand.add_visibility", err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewEnvelope(http.StatusCreated, dto.ToBrandVisibilityResponse(v)))
}

// RemoveVisibility deactivates the exact (brand, area) visibility row
// @Summary Remove brand visibility
// @Tags brands
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param company_id path string true "Company ID"
// @Param brand_id path string true "Brand ID"
// @Param visibility body dto.BrandVisibilityRequest true "Visibility payload"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /companies/{company_id}/brands/{brand_id}/visibility [delete]
func (c *BrandController) RemoveVisibility(ctx *gin.Context) {
	var req dto.BrandVisibilityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, err)
		return
	}

	if err := c.brandRepo.RemoveVisibility(ctx.Request.Context(), ctx.Param("brand_id"), req.AreaID); err != nil {
		respondError(ctx, c.logger, "brand.remove_visibility", err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// ListVisibility returns the active visibility rows of a brand
// @Summary List brand visibility
// @Tags brands
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param company_id path string true "Company ID"
// @Param brand_id path string true "Brand ID"
// @Success 200 {object} dto.Envelope{data=[]dto.BrandVisibilityResponse}
// @Failure 500 {object} dto.ErrorResponse
// @Router /companies/{company_id}/brands/{brand_id}/visibility [get]
func (c *BrandController) ListVisibility(ctx *gin.Context) {
	visibilities, err := c.brandRepo.ListVisibility(ctx.Request.Context(), ctx.Param("brand_id"))
	if err != nil {
		respondError(ctx, c.logger, "brand.list_visibility", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewEnvelope(http.StatusOK, dto.ToBrandVisibilityListResponse(visibilities)))
}

// AddOrUpdateMargin patches the (brand, area) margin row or inserts a new one
// @Summary Add or update brand margin
// @Tags brands
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param company_id path string true "Company ID"
// @Param brand_id path string true "Brand ID"
// @Param margin body dto.BrandMarginRequest true "Margin payload"
// @Success 200 {object} dto.Envelope{data=dto.BrandMarginResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /companies/{company_id}/brands/{brand_id}/margins [put]
func (c *BrandController) AddOrUpdateMargin(ctx *gin.Context) {
	var req dto.BrandMarginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, err)
		return
	}

	set, err := req.Margins.ToMarginSet()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))
		return
	}

	m, err := c.brandRepo.AddOrUpdateMargin(ctx.Request.Context(), ctx.Param("brand_id"), req.AreaID, branddomain.MarginPatch{
		Name:    req.Name,
		Margins: set,
	})
	if err != nil {
		respondError(ctx, c.logger, "brand.margin", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewEnvelope(http.StatusOK, dto.ToBrandMarginResponse(m)))
}

// RemoveMargin deactivates the exact (brand, area) margin row
// @Summary Remove brand margin
// @Tags brands
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param company_id path string true "Company ID"
// @Param brand_id path string true "Brand ID"
// @Param margin body dto.BrandVisibilityRequest true "Area selector"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /companies/{company_id}/brands/{brand_id}/margins [delete]
func (c *BrandController) RemoveMargin(ctx *gin.Context) {
	var req dto.BrandVisibilityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, err)
		return
	}

	if err := c.brandRepo.RemoveMargin(ctx.Request.Context(), ctx.Param("brand_id"), req.AreaID); err != nil {
		respondError(ctx, c.logger, "brand.remove_margin", err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// ListMargins returns the active margin rows of a brand
// @Summary List brand margins
// @Tags brands
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param company_id path string true "Company ID"
// @Param brand_id path string true "Brand ID"
// @Success 200 {object} dto.Envelope{data=[]dto.BrandMarginResponse}
// @Failure 500 {object} dto.ErrorResponse
// @Router /companies/{company_id}/brands/{brand_id}/margins [get]
func (c *BrandController) ListMargins(ctx *gin.Context) {
	margins, err := c.brandRepo.ListMargins(ctx.Request.Context(), ctx.Param("brand_id"))
	if err != nil {
		respondError(ctx, c.logger, "brand.list_margins", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewEnvelope(http.StatusOK, dto.ToBrandMarginListResponse(margins)))
}
