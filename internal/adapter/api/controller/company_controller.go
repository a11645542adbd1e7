package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shah-dhwanil/gaatha-salesforce-sub000/internal/adapter/api/dto"
	companydomain "github.com/shah-dhwanil/gaatha-salesforce-sub000/internal/domain/company"
	"github.com/shah-dhwanil/gaatha-salesforce-sub000/pkg/logger"
)

// CompanyController handles the tenant registry endpoints
type CompanyController struct {
	companyRepo companydomain.Repository
	logger      logger.Logger
}

// NewCompanyController creates a new CompanyController
func NewCompanyController(companyRepo companydomain.Repository, logger logger.Logger) *CompanyController {
	return &CompanyController{
		companyRepo: companyRepo,
		logger:      logger,
	}
}

// Create registers a company and provisions its schema
// @Summary Create company
// @Description Registers a tenant, creates its database schema and applies the tenant migrations
// @Tags companies
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param company body dto.CompanyRequest true "Company payload"
// @Success 201 {object} dto.Envelope{data=dto.CompanyResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /companies [post]
func (c *CompanyController) Create(ctx *gin.Context) {
	var req dto.CompanyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, err)
		return
	}

	company, err := companydomain.NewCompany(req.Name)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))
		return
	}

	if err := c.companyRepo.Create(ctx.Request.Context(), company); err != nil {
		respondError(ctx, c.logger, "company.create", err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewEnvelope(http.StatusCreated, dto.ToCompanyResponse(company)))
}

// Get returns one company by id
// @Summary Get company
// @Tags companies
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param company_id path string true "Company ID"
// @Success 200 {object} dto.Envelope{data=dto.CompanyResponse}
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /companies/{company_id} [get]
func (c *CompanyController) Get(ctx *gin.Context) {
	company, err := c.companyRepo.FindByID(ctx.Request.Context(), ctx.Param("company_id"))
	if err != nil {
		respondError(ctx, c.logger, "company.get", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewEnvelope(http.StatusOK, dto.ToCompanyResponse(company)))
}

// List returns a page of active companies
// @Summary List companies
// @Tags companies
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param page query int false "Page"
// @Param page_size query int false "Page size"
// @Success 200 {object} dto.ListEnvelope{data=[]dto.CompanyResponse}
// @Failure 500 {object} dto.ErrorResponse
// @Router /companies [get]
func (c *CompanyController) List(ctx *gin.Context) {
	pagination := pageParams(ctx)

	companies, err := c.companyRepo.List(ctx.Request.Context(), pagination.PageSize, pagination.Offset())
	if err != nil {
		respondError(ctx, c.logger, "company.list", err)
		return
	}

	total, err := c.companyRepo.Count(ctx.Request.Context())
	if err != nil {
		respondError(ctx, c.logger, "company.list", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewListEnvelope(http.StatusOK, dto.ToCompanyListResponse(companies), pagination.PageSize, total))
}

// Delete deactivates a company; its schema is left in place
// @Summary Delete company
// @Tags companies
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param company_id path string true "Company ID"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /companies/{company_id} [delete]
func (c *CompanyController) Delete(ctx *gin.Context) {
	if err := c.companyRepo.Deactivate(ctx.Request.Context(), ctx.Param("company_id")); err != nil {
		respondError(ctx, c.logger, "company.delete", err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
