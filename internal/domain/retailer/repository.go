package retailer

import (
	"context"

	"github.com/shah-dhwanil/gaatha-salesforce-sub000/internal/domain/area"
)

// Update carries the optional fields of a retailer PATCH. Nil means untouched.
type Update struct {
	Name          *string
	RouteID       *string
	ContactPerson *string
	Phone         *string
	Address       *string
	GSTIN         *string
	IsTypeA       *bool
	IsTypeB       *bool
	IsTypeC       *bool
}

// Repository defines persistence operations for retailers
type Repository interface {
	Create(ctx context.Context, r *Retailer) error
	FindByID(ctx context.Context, id string) (*Retailer, error)
	ListByRoute(ctx context.Context, routeID string, limit, offset int) ([]*Retailer, error)
	List(ctx context.Context, limit, offset int) ([]*Retailer, error)
	Count(ctx context.Context) (int, error)
	Update(ctx context.Context, id string, update Update) (*Retailer, error)
	Deactivate(ctx context.Context, id string) error

	// AreaChain resolves retailer -> route -> area into the ancestor chain
	// used for price fallback lookups
	AreaChain(ctx context.Context, retailerID string) (area.Chain, error)
}
