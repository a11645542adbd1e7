package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/shah-dhwanil/gaatha-salesforce-sub000/internal/adapter/api/dto"
	orderdomain "github.com/shah-dhwanil/gaatha-salesforce-sub000/internal/domain/order"
	retailerdomain "github.com/shah-dhwanil/gaatha-salesforce-sub000/internal/domain/retailer"
	"github.com/shah-dhwanil/gaatha-salesforce-sub000/pkg/auth"
	"github.com/shah-dhwanil/gaatha-salesforce-sub000/pkg/logger"
)

// OrderController handles order endpoints. Every amount is computed
// server-side; clients only ever send products and quantities.
type OrderController struct {
	orderRepo    orderdomain.Repository
	retailerRepo retailerdomain.Repository
	calculator   *orderdomain.Calculator
	logger       logger.Logger
}

// NewOrderController creates a new OrderController
func NewOrderController(orderRepo orderdomain.Repository, retailerRepo retailerdomain.Repository, calculator *orderdomain.Calculator, logger logger.Logger) *OrderController {
	return &OrderController{
		orderRepo:    orderRepo,
		retailerRepo: retailerRepo,
		calculator:   calculator,
		logger:       logger,
	}
}

// Create places a draft order for a retailer
// @Summary Create order
// @Description Creates a DRAFT order; amounts are computed from the retailer's resolved prices
// @Tags orders
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param company_id path string true "Company ID"
// @Param order body dto.OrderRequest true "Order payload"
// @Success 201 {object} dto.Envelope{data=dto.OrderResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /companies/{company_id}/orders [post]
func (c *OrderController) Create(ctx *gin.Context) {
	var req dto.OrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, err)
		return
	}

	orderType := orderdomain.TypeSecondary
	if req.OrderType != "" {
		orderType = orderdomain.Type(req.OrderType)
		if orderType != orderdomain.TypePrimary && orderType != orderdomain.TypeSecondary {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("order_type must be PRIMARY or SECONDARY"))
			return
		}
	}

	if _, err := c.retailerRepo.FindByID(ctx.Request.Context(), req.RetailerID); err != nil {
		respondError(ctx, c.logger, "order.create", err)
		return
	}

	items := dto.ToItemRequests(req.Items)
	amounts, err := c.calculator.Calculate(ctx.Request.Context(), req.RetailerID, items)
	if err != nil {
		respondError(ctx, c.logger, "order.create", err)
		return
	}

	o := orderdomain.NewOrder(req.RetailerID, auth.MemberID(ctx), orderType, amounts, items)
	if err := c.orderRepo.Create(ctx.Request.Context(), o); err != nil {
		respondError(ctx, c.logger, "order.create", err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewEnvelope(http.StatusCreated, dto.ToOrderResponse(o)))
}

// Get returns one order with its items
// @Summary Get order
// @Tags orders
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param company_id path string true "Company ID"
// @Param id path string true "Order ID"
// @Success 200 {object} dto.Envelope{data=dto.OrderResponse}
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /companies/{company_id}/orders/{id} [get]
func (c *OrderController) Get(ctx *gin.Context) {
	o, err := c.orderRepo.FindByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, c.logger, "order.get", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewEnvelope(http.StatusOK, dto.ToOrderResponse(o)))
}

// GetDetail returns the joined retailer/member/product view of an order
// @Summary Get order detail
// @Tags orders
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param company_id path string true "Company ID"
// @Param id path string true "Order ID"
// @Success 200 {object} dto.Envelope{data=dto.OrderDetailResponse}
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /companies/{company_id}/orders/{id}/detail [get]
func (c *OrderController) GetDetail(ctx *gin.Context) {
	detail, err := c.orderRepo.FindDetail(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, c.logger, "order.detail", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewEnvelope(http.StatusOK, dto.ToOrderDetailResponse(detail)))
}

// List returns a page of orders matching the query filters
// @Summary List orders
// @Tags orders
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param company_id path string true "Company ID"
// @Param retailer_id query string false "Retailer filter"
// @Param member_id query string false "Member filter"
// @Param status query string false "Status filter"
// @Param from query string false "Created-after filter (RFC 3339)"
// @Param to query string false "Created-before filter (RFC 3339)"
// @Param page query int false "Page"
// @Param page_size query int false "Page size"
// @Success 200 {object} dto.ListEnvelope{data=[]dto.OrderResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /companies/{company_id}/orders [get]
func (c *OrderController) List(ctx *gin.Context) {
	pagination := pageParams(ctx)

	var filter orderdomain.Filter
	if v := ctx.Query("retailer_id"); v != "" {
		filter.RetailerID = &v
	}
	if v := ctx.Query("member_id"); v != "" {
		filter.MemberID = &v
	}
	if v := ctx.Query("status"); v != "" {
		status := orderdomain.Status(v)
		if !status.IsValid() {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("unknown order status "+v))
			return
		}
		filter.Status = &status
	}
	if v := ctx.Query("from"); v != "" {
		from, err := time.Parse(time.RFC3339, v)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("from must be an RFC 3339 timestamp"))
			return
		}
		filter.From = &from
	}
	if v := ctx.Query("to"); v != "" {
		to, err := time.Parse(time.RFC3339, v)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("to must be an RFC 3339 timestamp"))
			return
		}
		filter.To = &to
	}

	orders, err := c.orderRepo.List(ctx.Request.Context(), filter, pagination.PageSize, pagination.Offset())
	if err != nil {
		respondError(ctx, c.logger, "order.list", err)
		return
	}

	total, err := c.orderRepo.Count(ctx.Request.Context(), filter)
	if err != nil {
		respondError(ctx, c.logger, "order.list", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewListEnvelope(http.StatusOK, dto.ToOrderListResponse(orders), pagination.PageSize, total))
}

// UpsertItems updates or adds draft-order lines and recomputes every amount
// @Summary Upsert order items
// @Description Updates quantities of existing lines and adds new ones; amounts are recomputed from the full item set
// @Tags orders
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param company_id path string true "Company ID"
// @Param id path string true "Order ID"
// @Param items body dto.OrderItemsRequest true "Item payload"
// @Success 200 {object} dto.Envelope{data=dto.OrderResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /companies/{company_id}/orders/{id}/items [put]
func (c *OrderController) UpsertItems(ctx *gin.Context) {
	var req dto.OrderItemsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, err)
		return
	}

	items := dto.ToItemRequests(req.Items)
	if err := orderdomain.ValidateItems(items); err != nil {
		respondError(ctx, c.logger, "order.items", err)
		return
	}

	current, err := c.orderRepo.FindByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, c.logger, "order.items", err)
		return
	}

	chain, err := c.retailerRepo.AreaChain(ctx.Request.Context(), current.RetailerID)
	if err != nil {
		respondError(ctx, c.logger, "order.items", err)
		return
	}

	o, err := c.orderRepo.UpsertItems(ctx.Request.Context(), current.ID, items,
		func(all []orderdomain.ItemRequest) (orderdomain.Amounts, error) {
			return c.calculator.CalculateForChain(ctx.Request.Context(), chain, all)
		})
	if err != nil {
		respondError(ctx, c.logger, "order.items", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewEnvelope(http.StatusOK, dto.ToOrderResponse(o)))
}

// UpdateStatus moves an order through the status machine
// @Summary Update order status
// @Tags orders
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param company_id path string true "Company ID"
// @Param id path string true "Order ID"
// @Param status body dto.OrderStatusRequest true "Target status"
// @Success 200 {object} dto.Envelope{data=dto.OrderResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /companies/{company_id}/orders/{id}/status [patch]
func (c *OrderController) UpdateStatus(ctx *gin.Context) {
	var req dto.OrderStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, err)
		return
	}

	o, err := c.orderRepo.UpdateStatus(ctx.Request.Context(), ctx.Param("id"), orderdomain.Status(req.Status))
	if err != nil {
		respondError(ctx, c.logger, "order.status", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewEnvelope(http.StatusOK, dto.ToOrderResponse(o)))
}

// Delete soft-deletes an order
// @Summary Delete order
// @Tags orders
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param company_id path string true "Company ID"
// @Param id path string true "Order ID"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /companies/{company_id}/orders/{id} [delete]
func (c *OrderController) Delete(ctx *gin.Context) {
	if err := c.orderRepo.Deactivate(ctx.Request.Context(), ctx.Param("id")); err != nil {
		respondError(ctx, c.logger, "order.delete", err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
