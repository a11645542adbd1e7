package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shah-dhwanil/gaatha-salesforce-sub000/internal/adapter/api/dto"
	branddomain "github.com/shah-dhwanil/gaatha-salesforce-sub000/internal/domain/brand"
	"github.com/shah-dhwanil/gaatha-salesforce-sub000/pkg/logger"
)

// BrandCategoryController handles the categories nested under a brand
type BrandCategoryController struct {
	categoryRepo branddomain.CategoryRepository
	brandRepo    branddomain.Repository
	logger       logger.Logger
}

// NewBrandCategoryController creates a new BrandCategoryController
func NewBrandCategoryController(categoryRepo branddomain.CategoryRepository, brandRepo branddomain.Repository, logger logger.Logger) *BrandCategoryController {
	return &BrandCategoryController{
		categoryRepo: categoryRepo,
		brandRepo:    brandRepo,
		logger:       logger,
	}
}

// Create registers a category under a brand
// @Summary Create brand category
// @Tags brand-categories
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param company_id path string true "Company ID"
// @Param brand_id path string true "Brand ID"
// @Param category body dto.BrandCategoryRequest true "Category payload"
// @Success 201 {object} dto.Envelope{data=dto.BrandCategoryResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /companies/{company_id}/brands/{brand_id}/categories [post]
func (c *BrandCategoryController) Create(ctx *gin.Context) {
	var req dto.BrandCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, err)
		return
	}

	brandID := ctx.Param("brand_id")
	if _, err := c.brandRepo.FindByID(ctx.Request.Context(), brandID); err != nil {
		respondError(ctx, c.logger, "brand_category.create", err)
		return
	}

	category, err := branddomain.NewCategory(brandID, req.ParentCategoryID, req.Name, req.Code,
		req.ForGeneral, req.ForModern, req.ForHoreca, req.Logo)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))
		return
	}

	visibilities := make([]*branddomain.CategoryVisibility, 0, len(req.Visibilities))
	for _, v := range req.Visibilities {
		visibilities = append(visibilities, branddomain.NewCategoryVisibility(category.ID, v.AreaID))
	}

	margins := make([]*branddomain.CategoryMargin, 0, len(req.Margins))
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
		margins = append(margins, branddomain.NewCategoryMargin(category.ID, m.AreaID, name, set))
	}

	if err := c.categoryRepo.Create(ctx.Request.Context(), category, visibilities, margins); err != nil {
		respondError(ctx, c.logger, "brand_category.create", err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewEnvelope(http.StatusCreated, dto.ToBrandCategoryResponse(category)))
}

// Get returns one category by id
// @Summary Get brand category
// @Tags brand-categories
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param company_id path string true "Company ID"
// @Param brand_id path string true "Brand ID"
// @Param id path string true "Category ID"
// @Success 200 {object} dto.Envelope{data=dto.BrandCategoryResponse}
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /companies/{company_id}/brands/{brand_id}/categories/{id} [get]
func (c *BrandCategoryController) Get(ctx *gin.Context) {
	category, err := c.categoryRepo.FindByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, c.logger, "brand_category.get", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewEnvelope(http.StatusOK, dto.ToBrandCategoryResponse(category)))
}

// List returns a page of a brand's active categories
// @Summary List brand categories
// @Tags brand-categories
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param company_id path string true "Company ID"
// @Param brand_id path string true "Brand ID"
// @Param page query int false "Page"
// @Param page_size query int false "Page size"
// @Success 200 {object} dto.ListEnvelope{data=[]dto.BrandCategoryResponse}
// @Failure 500 {object} dto.ErrorResponse
// @Router /companies/{company_id}/brands/{brand_id}/categories [get]
func (c *BrandCategoryController) List(ctx *gin.Context) {
	pagination := pageParams(ctx)
	brandID := ctx.Param("brand_id")

	categories, err := c.categoryRepo.ListByBrand(ctx.Request.Context(), brandID, pagination.PageSize, pagination.Offset())
	if err != nil {
		respondError(ctx, c.logger, "brand_category.list", err)
		return
	}

	total, err := c.categoryRepo.CountByBrand(ctx.Request.Context(), brandID)
	if err != nil {
		respondError(ctx, c.logger, "brand_category.list", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewListEnvelope(http.StatusOK, dto.ToBrandCategoryListResponse(categories), pagination.PageSize, total))
}

// Update patches a category
// @Summary Update brand category
// @Tags brand-categories
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param company_id path string true "Company ID"
// @Param brand_id path string true "Brand ID"
// @Param id path string true "Category ID"
// @Param category body dto.BrandUpdateRequest true "Fields to update"
// @Success 200 {object} dto.Envelope{data=dto.BrandCategoryResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /companies/{company_id}/brands/{brand_id}/categories/{id} [patch]
func (c *BrandCategoryController) Update(ctx *gin.Context) {
	var req dto.BrandUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, err)
		return
	}

	category, err := c.categoryRepo.Update(ctx.Request.Context(), ctx.Param("id"), branddomain.Update{
		Name:       req.Name,
		Code:       req.Code,
		ForGeneral: req.ForGeneral,
		ForModern:  req.ForModern,
		ForHoreca:  req.ForHoreca,
		Logo:       req.Logo,
	})
	if err != nil {
		respondError(ctx, c.logger, "brand_category.update", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewEnvelope(http.StatusOK, dto.ToBrandCategoryResponse(category)))
}

// Delete soft-deletes a category
// @Summary Delete brand category
// @Tags brand-categories
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param company_id path string true "Company ID"
// @Param brand_id path string true "Brand ID"
// @Param id path string true "Category ID"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /companies/{company_id}/brands/{brand_id}/categories/{id} [delete]
func (c *BrandCategoryController) Delete(ctx *gin.Context) {
	if err := c.categoryRepo.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		respondError(ctx, c.logger, "brand_category.delete", err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// AddVisibility inserts or reactivates one (category, area) visibility row
// @Summary Add category visibility
// @Tags brand-categories
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param company_id path string true "Company ID"
// @Param brand_id path string true "Brand ID"
// @Param id path string true "Category ID"
// @Param visibility body dto.BrandVisibilityRequest true "Visibility payload"
// @Success 201 {object} dto.Envelope{data=dto.BrandCategoryVisibilityResponse}
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /companies/{company_id}/brands/{brand_id}/categories/{id}/visibility [post]
func (c *BrandCategoryController) AddVisibility(ctx *gin.Context) {
	var req dto.BrandVisibilityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, err)
		return
	}

	v := branddomain.NewCategoryVisibility(ctx.Param("id"), req.AreaID)
	if err := c.categoryRepo.AddVisibility(ctx.Request.Context(), v); err != nil {
		respondError(ctx, c.logger, "brand_category.add_visibility", err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewEnvelope(http.StatusCreated, dto.BrandCategoryVisibilityResponse{
		ID:         v.ID,
		CategoryID: v.CategoryID,
		AreaID:     v.AreaID,
		CreatedAt:  v.CreatedAt,
	}))
}

// RemoveVisibility deactivates the exact (category, area) visibility row
// @Summary Remove category visibility
// @Tags brand-categories
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param company_id path string true "Company ID"
// @Param brand_id path string true "Brand ID"
// @Param id path string true "Category ID"
// @Param visibility body dto.BrandVisibilityRequest true "Visibility payload"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /companies/{company_id}/brands/{brand_id}/categories/{id}/visibility [delete]
func (c *BrandCategoryController) RemoveVisibility(ctx *gin.Context) {
	var req dto.BrandVisibilityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, err)
		return
	}

	if err := c.categoryRepo.RemoveVisibility(ctx.Request.Context(), ctx.Param("id"), req.AreaID); err != nil {
		respondError(ctx, c.logger, "brand_category.remove_visibility", err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// ListVisibility returns the active visibility rows of a category
// @Summary List category visibility
// @Tags brand-categories
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param company_id path string true "Company ID"
// @Param brand_id path string true "Brand ID"
// @Param id path string true "Category ID"
// @Success 200 {object} dto.Envelope{data=[]dto.BrandCategoryVisibilityResponse}
// @Failure 500 {object} dto.ErrorResponse
// @Router /companies/{company_id}/brands/{brand_id}/categories/{id}/visibility [get]
func (c *BrandCategoryController) ListVisibility(ctx *gin.Context) {
	visibilities, err := c.categoryRepo.ListVisibility(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, c.logger, "brand_category.list_visibility", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewEnvelope(http.StatusOK, dto.ToBrandCategoryVisibilityListResponse(visibilities)))
}

// AddOrUpdateMargin patches the (category, area) margin row or inserts one
// @Summary Add or update category margin
// @Tags brand-categories
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param company_id path string true "Company ID"
// @Param brand_id path string true "Brand ID"
// @Param id path string true "Category ID"
// @Param margin body dto.BrandMarginRequest true "Margin payload"
// @Success 200 {object} dto.Envelope{data=dto.BrandCategoryMarginResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /companies/{company_id}/brands/{brand_id}/categories/{id}/margins [put]
func (c *BrandCategoryController) AddOrUpdateMargin(ctx *gin.Context) {
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

	m, err := c.categoryRepo.AddOrUpdateMargin(ctx.Request.Context(), ctx.Param("id"), req.AreaID, branddomain.MarginPatch{
		Name:    req.Name,
		Margins: set,
	})
	if err != nil {
		respondError(ctx, c.logger, "brand_category.margin", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewEnvelope(http.StatusOK, dto.ToBrandCategoryMarginResponse(m)))
}

// RemoveMargin deactivates the exact (category, area) margin row
// @Summary Remove category margin
// @Tags brand-categories
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param company_id path string true "Company ID"
// @Param brand_id path string true "Brand ID"
// @Param id path string true "Category ID"
// @Param margin body dto.BrandVisibilityRequest true "Area selector"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /companies/{company_id}/brands/{brand_id}/categories/{id}/margins [delete]
func (c *BrandCategoryController) RemoveMargin(ctx *gin.Context) {
	var req dto.BrandVisibilityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, err)
		return
	}

	if err := c.categoryRepo.RemoveMargin(ctx.Request.Context(), ctx.Param("id"), req.AreaID); err != nil {
		respondError(ctx, c.logger, "brand_category.remove_margin", err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// ListMargins returns the active margin rows of a category
// @Summary List category margins
// @Tags brand-categories
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param company_id path string true "Company ID"
// @Param brand_id path string true "Brand ID"
// @Param id path string true "Category ID"
// @Success 200 {object} dto.Envelope{data=[]dto.BrandCategoryMarginResponse}
// @Failure 500 {object} dto.ErrorResponse
// @Router /companies/{company_id}/brands/{brand_id}/categories/{id}/margins [get]
func (c *BrandCategoryController) ListMargins(ctx *gin.Context) {
	margins, err := c.categoryRepo.ListMargins(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, c.logger, "brand_category.list_margins", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewEnvelope(http.StatusOK, dto.ToBrandCategoryMarginListResponse(margins)))
}
