package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shah-dhwanil/gaatha-salesforce-sub000/internal/adapter/api/dto"
	productdomain "github.com/shah-dhwanil/gaatha-salesforce-sub000/internal/domain/product"
	retailerdomain "github.com/shah-dhwanil/gaatha-salesforce-sub000/internal/domain/retailer"
	"github.com/shah-dhwanil/gaatha-salesforce-sub000/pkg/logger"
)

// ProductController handles product endpoints, including area-scoped pricing
// and visibility
type ProductController struct {
	productRepo  productdomain.Repository
	retailerRepo retailerdomain.Repository
	logger       logger.Logger
}

// NewProductController creates a new ProductController
func NewProductController(productRepo productdomain.Repository, retailerRepo retailerdomain.Repository, logger logger.Logger) *ProductController {
	return &ProductController{
		productRepo:  productRepo,
		retailerRepo: retailerRepo,
		logger:       logger,
	}
}

// Create registers a product with optional initial price and visibility rows
// @Summary Create product
// @Tags products
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param company_id path string true "Company ID"
// @Param product body dto.ProductRequest true "Product payload"
// @Success 201 {object} dto.Envelope{data=dto.ProductResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /companies/{company_id}/products [post]
func (c *ProductController) Create(ctx *gin.Context) {
	var req dto.ProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, err)
		return
	}

	p, err := productdomain.NewProduct(req.Name, req.Code, req.BrandID, req.CategoryID, req.GSTRate, req.UOM)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))
		return
	}

	prices := make([]*productdomain.Price, 0, len(req.Prices))
	for _, pr := range req.Prices {
		if pr.MRP == nil {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("price mrp is required"))
			return
		}
		set, err := pr.Margins.ToMarginSet()
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))
			return
		}
		minQty := 1
		if pr.MinOrderQuantity != nil {
			minQty = *pr.MinOrderQuantity
		}
		price, err := productdomain.NewPrice(p.ID, pr.AreaID, *pr.MRP, set, minQty)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))
			return
		}
		prices = append(prices, price)
	}

	visibilities := make([]*productdomain.Visibility, 0, len(req.Visibilities))
	for _, v := range req.Visibilities {
		visibilities = append(visibilities, productdomain.NewVisibility(p.ID, v.AreaID,
			boolValue(v.ForGeneral), boolValue(v.ForModern), boolValue(v.ForHoreca),
			boolValue(v.ForTypeA), boolValue(v.ForTypeB), boolValue(v.ForTypeC)))
	}

	if err := c.productRepo.Create(ctx.Request.Context(), p, prices, visibilities); err != nil {
		respondError(ctx, c.logger, "product.create", err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewEnvelope(http.StatusCreated, dto.ToProductResponse(p)))
}

func boolValue(b *bool) bool {
	return b != nil && *b
}

// Get returns one product by id
// @Summary Get product
// @Tags products
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param company_id path string true "Company ID"
// @Param id path string true "Product ID"
// @Success 200 {object} dto.Envelope{data=dto.ProductResponse}
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /companies/{company_id}/products/{id} [get]
func (c *ProductController) Get(ctx *gin.Context) {
	p, err := c.productRepo.FindByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, c.logger, "product.get", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewEnvelope(http.StatusOK, dto.ToProductResponse(p)))
}

// List returns a page of active products
// @Summary List products
// @Tags products
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param company_id path string true "Company ID"
// @Param page query int false "Page"
// @Param page_size query int false "Page size"
// @Success 200 {object} dto.ListEnvelope{data=[]dto.ProductResponse}
// @Failure 500 {object} dto.ErrorResponse
// @Router /companies/{company_id}/products [get]
func (c *ProductController) List(ctx *gin.Context) {
	pagination := pageParams(ctx)

	products, err := c.productRepo.List(ctx.Request.Context(), pagination.PageSize, pagination.Offset())
	if err != nil {
		respondError(ctx, c.logger, "product.list", err)
		return
	}

	total, err := c.productRepo.Count(ctx.Request.Context())
	if err != nil {
		respondError(ctx, c.logger, "product.list", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewListEnvelope(http.StatusOK, dto.ToProductListResponse(products), pagination.PageSize, total))
}

// Update patches a product
// @Summary Update product
// @Tags products
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param company_id path string true "Company ID"
// @Param id path string true "Product ID"
// @Param product body dto.ProductUpdateRequest true "Fields to update"
// @Success 200 {object} dto.Envelope{data=dto.ProductResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /companies/{company_id}/products/{id} [patch]
func (c *ProductController) Update(ctx *gin.Context) {
	var req dto.ProductUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, err)
		return
	}

	if req.GSTRate != nil && req.GSTRate.IsNegative() {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("gst rate must not be negative"))
		return
	}

	p, err := c.productRepo.Update(ctx.Request.Context(), ctx.Param("id"), productdomain.Update{
		Name:       req.Name,
		Code:       req.Code,
		BrandID:    req.BrandID,
		CategoryID: req.CategoryID,
		GSTRate:    req.GSTRate,
		UOM:        req.UOM,
	})
	if err != nil {
		respondError(ctx, c.logger, "product.update", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewEnvelope(http.StatusOK, dto.ToProductResponse(p)))
}

// Delete soft-deletes a product
// @Summary Delete product
// @Tags products
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param company_id path string true "Company ID"
// @Param id path string true "Product ID"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /companies/{company_id}/products/{id} [delete]
func (c *ProductController) Delete(ctx *gin.Context) {
	if err := c.productRepo.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		respondError(ctx, c.logger, "product.delete", err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// UpsertPrice patches the (product, area) price row or inserts a new one
// @Summary Upsert product price
// @Tags products
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param company_id path string true "Company ID"
// @Param id path string true "Product ID"
// @Param price body dto.ProductPriceRequest true "Price payload"
// @Success 200 {object} dto.Envelope{data=dto.ProductPriceResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /companies/{company_id}/products/{id}/prices [put]
func (c *ProductController) UpsertPrice(ctx *gin.Context) {
	var req dto.ProductPriceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, err)
		return
	}

	set, err := req.Margins.ToMarginSet()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))
		return
	}

	price, err := c.productRepo.UpsertPrice(ctx.Request.Context(), ctx.Param("id"), req.AreaID, productdomain.PricePatch{
		MRP:              req.MRP,
		Margins:          set,
		MinOrderQuantity: req.MinOrderQuantity,
	})
	if err != nil {
		respondError(ctx, c.logger, "product.upsert_price", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewEnvelope(http.StatusOK, dto.ToProductPriceResponse(price)))
}

// RemovePrice deactivates the exact (product, area) price row
// @Summary Remove product price
// @Tags products
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param company_id path string true "Company ID"
// @Param id path string true "Product ID"
// @Param price body dto.BrandVisibilityRequest true "Area selector"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /companies/{company_id}/products/{id}/prices [delete]
func (c *ProductController) RemovePrice(ctx *gin.Context) {
	var req dto.BrandVisibilityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, err)
		return
	}

	if err := c.productRepo.RemovePrice(ctx.Request.Context(), ctx.Param("id"), req.AreaID); err != nil {
		respondError(ctx, c.logger, "product.remove_price", err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// ListPrices returns the active price rows of a product
// @Summary List product prices
// @Tags products
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param company_id path string true "Company ID"
// @Param id path string true "Product ID"
// @Success 200 {object} dto.Envelope{data=[]dto.ProductPriceResponse}
// @Failure 500 {object} dto.ErrorResponse
// @Router /companies/{company_id}/products/{id}/prices [get]
func (c *ProductController) ListPrices(ctx *gin.Context) {
	prices, err := c.productRepo.ListPrices(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, c.logger, "product.list_prices", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewEnvelope(http.StatusOK, dto.ToProductPriceListResponse(prices)))
}

// UpsertVisibility patches the (product, area) visibility row or inserts one
// @Summary Upsert product visibility
// @Tags products
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param company_id path string true "Company ID"
// @Param id path string true "Product ID"
// @Param visibility body dto.ProductVisibilityRequest true "Visibility payload"
// @Success 200 {object} dto.Envelope{data=dto.ProductVisibilityResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /companies/{company_id}/products/{id}/visibility [put]
func (c *ProductController) UpsertVisibility(ctx *gin.Context) {
	var req dto.ProductVisibilityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, err)
		return
	}

	v, err := c.productRepo.UpsertVisibility(ctx.Request.Context(), ctx.Param("id"), req.AreaID, productdomain.VisibilityPatch{
		ForGeneral: req.ForGeneral,
		ForModern:  req.ForModern,
		ForHoreca:  req.ForHoreca,
		ForTypeA:   req.ForTypeA,
		ForTypeB:   req.ForTypeB,
		ForTypeC:   req.ForTypeC,
	})
	if err != nil {
		respondError(ctx, c.logger, "product.upsert_visibility", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewEnvelope(http.StatusOK, dto.ToProductVisibilityResponse(v)))
}

// RemoveVisibility deactivates the exact (product, area) visibility row
// @Summary Remove product visibility
// @Tags products
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param company_id path string true "Company ID"
// @Param id path string true "Product ID"
// @Param visibility body dto.BrandVisibilityRequest true "Area selector"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /companies/{company_id}/products/{id}/visibility [delete]
func (c *ProductController) RemoveVisibility(ctx *gin.Context) {
	var req dto.BrandVisibilityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, err)
		return
	}

	if err := c.productRepo.RemoveVisibility(ctx.Request.Context(), ctx.Param("id"), req.AreaID); err != nil {
		respondError(ctx, c.logger, "product.remove_visibility", err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// ListVisibility returns the active visibility rows of a product
// @Summary List product visibility
// @Tags products
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param company_id path string true "Company ID"
// @Param id path string true "Product ID"
// @Success 200 {object} dto.Envelope{data=[]dto.ProductVisibilityResponse}
// @Failure 500 {object} dto.ErrorResponse
// @Router /companies/{company_id}/products/{id}/visibility [get]
func (c *ProductController) ListVisibility(ctx *gin.Context) {
	visibilities, err := c.productRepo.ListVisibility(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, c.logger, "product.list_visibility", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewEnvelope(http.StatusOK, dto.ToProductVisibilityListResponse(visibilities)))
}

// ResolvePrice returns the effective price of a product for one retailer,
// walking the retailer's area chain from the most specific level up and
// falling back to the global row.
// @Summary Resolve product price for a retailer
// @Tags products
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param company_id path string true "Company ID"
// @Param id path string true "Product ID"
// @Param retailer_id query string true "Retailer ID"
// @Success 200 {object} dto.Envelope{data=dto.ResolvedPriceResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /companies/{company_id}/products/{id}/resolve-price [get]
func (c *ProductController) ResolvePrice(ctx *gin.Context) {
	retailerID := ctx.Query("retailer_id")
	if retailerID == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("retailer_id is required"))
		return
	}

	chain, err := c.retailerRepo.AreaChain(ctx.Request.Context(), retailerID)
	if err != nil {
		respondError(ctx, c.logger, "product.resolve_price", err)
		return
	}

	resolved, err := c.productRepo.ResolvePrice(ctx.Request.Context(), ctx.Param("id"), chain)
	if err != nil {
		respondError(ctx, c.logger, "product.resolve_price", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewEnvelope(http.StatusOK, dto.ToResolvedPriceResponse(resolved)))
}
