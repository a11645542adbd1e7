package route

import (
	"context"
)

// Update carries the optional fields of a route PATCH. Nil means untouched.
// Channels must be patched as a whole triple to preserve exclusivity.
type Update struct {
	Name      *string
	AreaID    *string
	IsGeneral *bool
	IsModern  *bool
	IsHoreca  *bool
}

// Repository defines persistence operations for routes, assignments and logs
type Repository interface {
	Create(ctx context.Context, r *Route) error
	FindByID(ctx context.Context, id string) (*Route, error)
	List(ctx context.Context, limit, offset int) ([]*Route, error)
	ListByArea(ctx context.Context, areaID string) ([]*Route, error)
	Count(ctx context.Context) (int, error)
	Update(ctx context.Context, id string, update Update) (*Route, error)
	Deactivate(ctx context.Context, id string) error

	// CreateAssignment inserts an assignment; a second active assignment for
	// the same (route, user) pair surfaces as AlreadyExists
	CreateAssignment(ctx context.Context, a *Assignment) error
	ListAssignments(ctx context.Context, routeID string) ([]*Assignment, error)
	RemoveAssignment(ctx context.Context, routeID, assignmentID string) error

	CreateLog(ctx context.Context, l *Log) error
	ListLogs(ctx context.Context, routeID string, limit, offset int) ([]*Log, error)
}
