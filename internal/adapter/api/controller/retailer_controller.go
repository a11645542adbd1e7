package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shah-dhwanil/gaatha-salesforce-sub000/internal/adapter/api/dto"
	retailerdomain "github.com/shah-dhwanil/gaatha-salesforce-sub000/internal/domain/retailer"
	"github.com/shah-dhwanil/gaatha-salesforce-sub000/pkg/logger"
)

// RetailerController handles retailer endpoints
type RetailerController struct {
	retailerRepo retailerdomain.Repository
	logger       logger.Logger
}

// NewRetailerController creates a new RetailerController
func NewRetailerController(retailerRepo retailerdomain.Repository, logger logger.Logger) *RetailerController {
	return &RetailerController{
		retailerRepo: retailerRepo,
		logger:       logger,
	}
}

// Create registers a retailer on a route
// @Summary Create retailer
// @Tags retailers
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param company_id path string true "Company ID"
// @Param retailer body dto.RetailerRequest true "Retailer payload"
// @Success 201 {object} dto.Envelope{data=dto.RetailerResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /companies/{company_id}/retailers [post]
func (c *RetailerController) Create(ctx *gin.Context) {
	var req dto.RetailerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, err)
		return
	}

	r, err := retailerdomain.NewRetailer(req.Name, req.RouteID, req.ContactPerson, req.Phone, req.Address,
		req.GSTIN, req.IsTypeA, req.IsTypeB, req.IsTypeC)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))
		return
	}

	if err := c.retailerRepo.Create(ctx.Request.Context(), r); err != nil {
		respondError(ctx, c.logger, "retailer.create", err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewEnvelope(http.StatusCreated, dto.ToRetailerResponse(r)))
}

// Get returns one retailer by id
// @Summary Get retailer
// @Tags retailers
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param company_id path string true "Company ID"
// @Param id path string true "Retailer ID"
// @Success 200 {object} dto.Envelope{data=dto.RetailerResponse}
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /companies/{company_id}/retailers/{id} [get]
func (c *RetailerController) Get(ctx *gin.Context) {
	r, err := c.retailerRepo.FindByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, c.logger, "retailer.get", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewEnvelope(http.StatusOK, dto.ToRetailerResponse(r)))
}

// List returns a page of active retailers, optionally narrowed to one route
// @Summary List retailers
// @Tags retailers
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param company_id path string true "Company ID"
// @Param route_id query string false "Route filter"
// @Param page query int false "Page"
// @Param page_size query int false "Page size"
// @Success 200 {object} dto.ListEnvelope{data=[]dto.RetailerResponse}
// @Failure 500 {object} dto.ErrorResponse
// @Router /companies/{company_id}/retailers [get]
func (c *RetailerController) List(ctx *gin.Context) {
	pagination := pageParams(ctx)

	var (
		retailers []*retailerdomain.Retailer
		err       error
	)
	if routeID := ctx.Query("route_id"); routeID != "" {
		retailers, err = c.retailerRepo.ListByRoute(ctx.Request.Context(), routeID, pagination.PageSize, pagination.Offset())
	} else {
		retailers, err = c.retailerRepo.List(ctx.Request.Context(), pagination.PageSize, pagination.Offset())
	}
	if err != nil {
		respondError(ctx, c.logger, "retailer.list", err)
		return
	}

	total, err := c.retailerRepo.Count(ctx.Request.Context())
	if err != nil {
		respondError(ctx, c.logger, "retailer.list", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewListEnvelope(http.StatusOK, dto.ToRetailerListResponse(retailers), pagination.PageSize, total))
}

// Update patches a retailer
// @Summary Update retailer
// @Tags retailers
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param company_id path string true "Company ID"
// @Param id path string true "Retailer ID"
// @Param retailer body dto.RetailerUpdateRequest true "Fields to update"
// @Success 200 {object} dto.Envelope{data=dto.RetailerResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /companies/{company_id}/retailers/{id} [patch]
func (c *RetailerController) Update(ctx *gin.Context) {
	var req dto.RetailerUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, err)
		return
	}

	r, err := c.retailerRepo.Update(ctx.Request.Context(), ctx.Param("id"), retailerdomain.Update{
		Name:          req.Name,
		RouteID:       req.RouteID,
		ContactPerson: req.ContactPerson,
		Phone:         req.Phone,
		Address:       req.Address,
		GSTIN:         req.GSTIN,
		IsTypeA:       req.IsTypeA,
		IsTypeB:       req.IsTypeB,
		IsTypeC:       req.IsTypeC,
	})
	if err != nil {
		respondError(ctx, c.logger, "retailer.update", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewEnvelope(http.StatusOK, dto.ToRetailerResponse(r)))
}

// Delete deactivates a retailer
// @Summary Delete retailer
// @Tags retailers
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param company_id path string true "Company ID"
// @Param id path string true "Retailer ID"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /companies/{company_id}/retailers/{id} [delete]
func (c *RetailerController) Delete(ctx *gin.Context) {
	if err := c.retailerRepo.Deactivate(ctx.Request.Context(), ctx.Param("id")); err != nil {
		respondError(ctx, c.logger, "retailer.delete", err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
