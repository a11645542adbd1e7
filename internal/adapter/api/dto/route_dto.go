package dto

import (
	"time"

	"github.com/shah-dhwanil/gaatha-salesforce-sub000/internal/domain/route"
)

// RouteRequest carries the creation payload of a sales route
type RouteRequest struct {
	Name      string `json:"name" binding:"required"`
	AreaID    string `json:"area_id" binding:"required"`
	IsGeneral bool   `json:"is_general"`
	IsModern  bool   `json:"is_modern"`
	IsHoreca  bool   `json:"is_horeca"`
}

// RouteUpdateRequest carries the optional PATCH fields of a route
type RouteUpdateRequest struct {
	Name      *string `json:"name,omitempty"`
	AreaID    *string `json:"area_id,omitempty"`
	IsGeneral *bool   `json:"is_general,omitempty"`
	IsModern  *bool   `json:"is_modern,omitempty"`
	IsHoreca  *bool   `json:"is_horeca,omitempty"`
}

// RouteResponse is the read view of a route
type RouteResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	AreaID    string    `json:"area_id"`
	IsGeneral bool      `json:"is_general"`
	IsModern  bool      `json:"is_modern"`
	IsHoreca  bool      `json:"is_horeca"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RouteAssignmentRequest links a route to a user for a day of week
type RouteAssignmentRequest struct {
	UserID    string     `json:"user_id" binding:"required"`
	DayOfWeek int        `json:"day_of_week"`
	FromDate  *time.Time `json:"from_date,omitempty"`
	ToDate    *time.Time `json:"to_date,omitempty"`
}

// RouteAssignmentResponse is the read view of one assignment
type RouteAssignmentResponse struct {
	ID        string     `json:"id"`
	RouteID   string     `json:"route_id"`
	UserID    string     `json:"user_id"`
	DayOfWeek int        `json:"day_of_week"`
	FromDate  *time.Time `json:"from_date,omitempty"`
	ToDate    *time.Time `json:"to_date,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// RouteLogRequest appends one visit entry to a route
type RouteLogRequest struct {
	RetailerID *string    `json:"retailer_id,omitempty"`
	Remarks    string     `json:"remarks"`
	LoggedAt   *time.Time `json:"logged_at,omitempty"`
}

// RouteLogResponse is the read view of one visit entry
type RouteLogResponse struct {
	ID         string    `json:"id"`
	RouteID    string    `json:"route_id"`
	MemberID   string    `json:"member_id"`
	RetailerID *string   `json:"retailer_id,omitempty"`
	Remarks    string    `json:"remarks"`
	LoggedAt   time.Time `json:"logged_at"`
	CreatedAt  time.Time `json:"created_at"`
}

// ToRouteResponse converts a domain route into its response form
func ToRouteResponse(r *route.Route) RouteResponse {
	return RouteResponse{
		ID:        r.ID,
		Name:      r.Name,
		AreaID:    r.AreaID,
		IsGeneral: r.IsGeneral,
		IsModern:  r.IsModern,
		IsHoreca:  r.IsHoreca,
		IsActive:  r.IsActive,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// ToRouteListResponse converts a page of routes
func ToRouteListResponse(routes []*route.Route) []RouteResponse {
	response := make([]RouteResponse, len(routes))
	for i, r := range routes {
		response[i] = ToRouteResponse(r)
	}
	return response
}

// ToRouteAssignmentResponse converts an assignment
func ToRouteAssignmentResponse(a *route.Assignment) RouteAssignmentResponse {
	return RouteAssignmentResponse{
		ID:        a.ID,
		RouteID:   a.RouteID,
		UserID:    a.UserID,
		DayOfWeek: a.DayOfWeek,
		FromDate:  a.FromDate,
		ToDate:    a.ToDate,
		CreatedAt: a.CreatedAt,
	}
}

// ToRouteAssignmentListResponse converts the assignments of a route
func ToRouteAssignmentListResponse(assignments []*route.Assignment) []RouteAssignmentResponse {
	response := make([]RouteAssignmentResponse, len(assignments))
	for i, a := range assignments {
		response[i] = ToRouteAssignmentResponse(a)
	}
	return response
}

// ToRouteLogResponse converts one log entry
func ToRouteLogResponse(l *route.Log) RouteLogResponse {
	return RouteLogResponse{
		ID:         l.ID,
		RouteID:    l.RouteID,
		MemberID:   l.MemberID,
		RetailerID: l.RetailerID,
		Remarks:    l.Remarks,
		LoggedAt:   l.LoggedAt,
		CreatedAt:  l.CreatedAt,
	}
}

// ToRouteLogListResponse converts a page of log entries
func ToRouteLogListResponse(logs []*route.Log) []RouteLogResponse {
	response := make([]RouteLogResponse, len(logs))
	for i, l := range logs {
		response[i] = ToRouteLogResponse(l)
	}
	return response
}
