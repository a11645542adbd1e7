package member

import (
	"context"
)

// Repository defines persistence operations for members. The members table is
// shared identity data, not tenant-scoped.
type Repository interface {
	Create(ctx context.Context, m *Member) error
	FindByID(ctx context.Context, id string) (*Member, error)
	FindByEmail(ctx context.Context, email string) (*Member, error)
}
