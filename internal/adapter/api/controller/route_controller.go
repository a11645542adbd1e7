package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/shah-dhwanil/gaatha-salesforce-sub000/internal/adapter/api/dto"
	routedomain "github.com/shah-dhwanil/gaatha-salesforce-sub000/internal/domain/route"
	"github.com/shah-dhwanil/gaatha-salesforce-sub000/pkg/auth"
	"github.com/shah-dhwanil/gaatha-salesforce-sub000/pkg/logger"
)

// RouteController handles route, assignment and log endpoints
type RouteController struct {
	routeRepo routedomain.Repository
	logger    logger.Logger
}

// NewRouteController creates a new RouteController
func NewRouteController(routeRepo routedomain.Repository, logger logger.Logger) *RouteController {
	return &RouteController{
		routeRepo: routeRepo,
		logger:    logger,
	}
}

// Create registers a sales route
// @Summary Create route
// @Description Creates a route tied to an area and exactly one trade channel
// @Tags routes
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param company_id path string true "Company ID"
// @Param route body dto.RouteRequest true "Route payload"
// @Success 201 {object} dto.Envelope{data=dto.RouteResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /companies/{company_id}/routes [post]
func (c *RouteController) Create(ctx *gin.Context) {
	var req dto.RouteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, err)
		return
	}

	r, err := routedomain.NewRoute(req.Name, req.AreaID, req.IsGeneral, req.IsModern, req.IsHoreca)
	if err != nil {
		respondError(ctx, c.logger, "route.create", err)
		return
	}

	if err := c.routeRepo.Create(ctx.Request.Context(), r); err != nil {
		respondError(ctx, c.logger, "route.create", err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewEnvelope(http.StatusCreated, dto.ToRouteResponse(r)))
}

// Get returns one route by id
// @Summary Get route
// @Tags routes
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param company_id path string true "Company ID"
// @Param id path string true "Route ID"
// @Success 200 {object} dto.Envelope{data=dto.RouteResponse}
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /companies/{company_id}/routes/{id} [get]
func (c *RouteController) Get(ctx *gin.Context) {
	r, err := c.routeRepo.FindByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, c.logger, "route.get", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewEnvelope(http.StatusOK, dto.ToRouteResponse(r)))
}

// List returns a page of active routes, optionally narrowed to one area
// @Summary List routes
// @Tags routes
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param company_id path string true "Company ID"
// @Param area_id query string false "Area filter"
// @Param page query int false "Page"
// @Param page_size query int false "Page size"
// @Success 200 {object} dto.ListEnvelope{data=[]dto.RouteResponse}
// @Failure 500 {object} dto.ErrorResponse
// @Router /companies/{company_id}/routes [get]
func (c *RouteController) List(ctx *gin.Context) {
	pagination := pageParams(ctx)

	var (
		routes []*routedomain.Route
		err    error
	)
	if areaID := ctx.Query("area_id"); areaID != "" {
		routes, err = c.routeRepo.ListByArea(ctx.Request.Context(), areaID)
	} else {
		routes, err = c.routeRepo.List(ctx.Request.Context(), pagination.PageSize, pagination.Offset())
	}
	if err != nil {
		respondError(ctx, c.logger, "route.list", err)
		return
	}

	total, err := c.routeRepo.Count(ctx.Request.Context())
	if err != nil {
		respondError(ctx, c.logger, "route.list", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewListEnvelope(http.StatusOK, dto.ToRouteListResponse(routes), pagination.PageSize, total))
}

// Update patches a route. Channel changes must keep exactly one channel set.
// @Summary Update route
// @Tags routes
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param company_id path string true "Company ID"
// @Param id path string true "Route ID"
// @Param route body dto.RouteUpdateRequest true "Fields to update"
// @Success 200 {object} dto.Envelope{data=dto.RouteResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /companies/{company_id}/routes/{id} [patch]
func (c *RouteController) Update(ctx *gin.Context) {
	var req dto.RouteUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, err)
		return
	}

	// Patching any channel requires the full triple so exclusivity holds.
	if req.IsGeneral != nil || req.IsModern != nil || req.IsHoreca != nil {
		if req.IsGeneral == nil || req.IsModern == nil || req.IsHoreca == nil {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("trade channels must be updated together"))
			return
		}
		if err := routedomain.ValidateChannels(*req.IsGeneral, *req.IsModern, *req.IsHoreca); err != nil {
			respondError(ctx, c.logger, "route.update", err)
			return
		}
	}

	r, err := c.routeRepo.Update(ctx.Request.Context(), ctx.Param("id"), routedomain.Update{
		Name:      req.Name,
		AreaID:    req.AreaID,
		IsGeneral: req.IsGeneral,
		IsModern:  req.IsModern,
		IsHoreca:  req.IsHoreca,
	})
	if err != nil {
		respondError(ctx, c.logger, "route.update", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewEnvelope(http.StatusOK, dto.ToRouteResponse(r)))
}

// Delete deactivates a route
// @Summary Delete route
// @Tags routes
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param company_id path string true "Company ID"
// @Param id path string true "Route ID"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /companies/{company_id}/routes/{id} [delete]
func (c *RouteController) Delete(ctx *gin.Context) {
	if err := c.routeRepo.Deactivate(ctx.Request.Context(), ctx.Param("id")); err != nil {
		respondError(ctx, c.logger, "route.delete", err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// CreateAssignment links a route to a user for a day of week
// @Summary Assign route
// @Tags routes
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param company_id path string true "Company ID"
// @Param id path string true "Route ID"
// @Param assignment body dto.RouteAssignmentRequest true "Assignment payload"
// @Success 201 {object} dto.Envelope{data=dto.RouteAssignmentResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /companies/{company_id}/routes/{id}/assignments [post]
func (c *RouteController) CreateAssignment(ctx *gin.Context) {
	var req dto.RouteAssignmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, err)
		return
	}

	a, err := routedomain.NewAssignment(ctx.Param("id"), req.UserID, req.DayOfWeek, req.FromDate, req.ToDate)
	if err != nil {
		respondError(ctx, c.logger, "route.assign", err)
		return
	}

	if err := c.routeRepo.CreateAssignment(ctx.Request.Context(), a); err != nil {
		respondError(ctx, c.logger, "route.assign", err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewEnvelope(http.StatusCreated, dto.ToRouteAssignmentResponse(a)))
}

// ListAssignments returns the active assignments of a route
// @Summary List route assignments
// @Tags routes
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param company_id path string true "Company ID"
// @Param id path string true "Route ID"
// @Success 200 {object} dto.Envelope{data=[]dto.RouteAssignmentResponse}
// @Failure 500 {object} dto.ErrorResponse
// @Router /companies/{company_id}/routes/{id}/assignments [get]
func (c *RouteController) ListAssignments(ctx *gin.Context) {
	assignments, err := c.routeRepo.ListAssignments(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, c.logger, "route.list_assignments", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewEnvelope(http.StatusOK, dto.ToRouteAssignmentListResponse(assignments)))
}

// RemoveAssignment deactivates one assignment of a route
// @Summary Remove route assignment
// @Tags routes
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param company_id path string true "Company ID"
// @Param id path string true "Route ID"
// @Param assignment_id path string true "Assignment ID"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /companies/{company_id}/routes/{id}/assignments/{assignment_id} [delete]
func (c *RouteController) RemoveAssignment(ctx *gin.Context) {
	if err := c.routeRepo.RemoveAssignment(ctx.Request.Context(), ctx.Param("id"), ctx.Param("assignment_id")); err != nil {
		respondError(ctx, c.logger, "route.remove_assignment", err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// CreateLog appends one visit entry for the authenticated member
// @Summary Log route visit
// @Tags routes
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param company_id path string true "Company ID"
// @Param id path string true "Route ID"
// @Param log body dto.RouteLogRequest true "Log payload"
// @Success 201 {object} dto.Envelope{data=dto.RouteLogResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /companies/{company_id}/routes/{id}/logs [post]
func (c *RouteController) CreateLog(ctx *gin.Context) {
	var req dto.RouteLogRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, err)
		return
	}

	var loggedAt time.Time
	if req.LoggedAt != nil {
		loggedAt = *req.LoggedAt
	}

	l := routedomain.NewLog(ctx.Param("id"), auth.MemberID(ctx), req.RetailerID, req.Remarks, loggedAt)
	if err := c.routeRepo.CreateLog(ctx.Request.Context(), l); err != nil {
		respondError(ctx, c.logger, "route.log", err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewEnvelope(http.StatusCreated, dto.ToRouteLogResponse(l)))
}

// ListLogs returns a page of visit entries, most recent first
// @Summary List route logs
// @Tags routes
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param company_id path string true "Company ID"
// @Param id path string true "Route ID"
// @Param page query int false "Page"
// @Param page_size query int false "Page size"
// @Success 200 {object} dto.Envelope{data=[]dto.RouteLogResponse}
// @Failure 500 {object} dto.ErrorResponse
// @Router /companies/{company_id}/routes/{id}/logs [get]
func (c *RouteController) ListLogs(ctx *gin.Context) {
	pagination := pageParams(ctx)

	logs, err := c.routeRepo.ListLogs(ctx.Request.Context(), ctx.Param("id"), pagination.PageSize, pagination.Offset())
	if err != nil {
		respondError(ctx, c.logger, "route.list_logs", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewEnvelope(http.StatusOK, dto.ToRouteLogListResponse(logs)))
}
