package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/shah-dhwanil/gaatha-salesforce-sub000/internal/domain/area"
	"github.com/shah-dhwanil/gaatha-salesforce-sub000/internal/domain/domainerr"
	"github.com/shah-dhwanil/gaatha-salesforce-sub000/internal/domain/retailer"
	"github.com/shah-dhwanil/gaatha-salesforce-sub000/internal/infrastructure/database"
	"github.com/shah-dhwanil/gaatha-salesforce-sub000/pkg/sqlbuilder"
)

// PostgresRetailerRepository implements retailer.Repository on PostgreSQL
type PostgresRetailerRepository struct {
	db *database.PostgresDB
}

// NewPostgresRetailerRepository creates a new PostgresRetailerRepository
func NewPostgresRetailerRepository(db *database.PostgresDB) *PostgresRetailerRepository {
	return &PostgresRetailerRepository{db: db}
}

const retailerColumns = "id, name, route_id, contact_person, phone, address, gstin, is_type_a, is_type_b, is_type_c, is_active, created_at, updated_at"

func scanRetailer(row pgx.Row, id string) (*retailer.Retailer, error) {
	rt := &retailer.Retailer{}
	err := row.Scan(
		&rt.ID, &rt.Name, &rt.RouteID, &rt.ContactPerson, &rt.Phone, &rt.Address, &rt.GSTIN,
		&rt.IsTypeA, &rt.IsTypeB, &rt.IsTypeC, &rt.IsActive, &rt.CreatedAt, &rt.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainerr.NewNotFound("retailer", id)
		}
		return nil, domainerr.NewOperation("retailer.find", err)
	}
	return rt, nil
}

// Create implements retailer.Repository.Create
func (r *PostgresRetailerRepository) Create(ctx context.Context, rt *retailer.Retailer) error {
	conn, err := r.db.GetCompanyConnection(ctx)
	if err != nil {
		return fmt.Errorf("failed to get connection: %w", err)
	}
	defer conn.Release()

	_, err = conn.Exec(ctx,
		`INSERT INTO retailer (`+retailerColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		rt.ID, rt.Name, rt.RouteID, rt.ContactPerson, rt.Phone, rt.Address, rt.GSTIN,
		rt.IsTypeA, rt.IsTypeB, rt.IsTypeC, rt.IsActive, rt.CreatedAt, rt.UpdatedAt,
	)
	if err != nil {
		return translatePgError(err, "retailer.create", "retailer", "name", rt.Name)
	}

	return nil
}

// FindByID implements retailer.Repository.FindByID
func (r *PostgresRetailerRepository) FindByID(ctx context.Context, id string) (*retailer.Retailer, error) {
	conn, err := r.db.GetCompanyConnection(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get connection: %w", err)
	}
	defer conn.Release()

	return scanRetailer(conn.QueryRow(ctx,
		"SELECT "+retailerColumns+" FROM retailer WHERE id = $1", id), id)
}

// ListByRoute implements retailer.Repository.ListByRoute
func (r *PostgresRetailerRepository) ListByRoute(ctx context.Context, routeID string, limit, offset int) ([]*retailer.Retailer, error) {
	return r.list(ctx,
		"SELECT "+retailerColumns+" FROM retailer WHERE route_id = $1 AND is_active = true ORDER BY name ASC LIMIT $2 OFFSET $3",
		routeID, limit, offset)
}

// List implements retailer.Repository.List
func (r *PostgresRetailerRepository) List(ctx context.Context, limit, offset int) ([]*retailer.Retailer, error) {
	return r.list(ctx,
		"SELECT "+retailerColumns+" FROM retailer WHERE is_active = true ORDER BY name ASC LIMIT $1 OFFSET $2",
		limit, offset)
}

func (r *PostgresRetailerRepository) list(ctx context.Context, query string, args ...interface{}) ([]*retailer.Retailer, error) {
	conn, err := r.db.GetCompanyConnection(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get connection: %w", err)
	}
	defer conn.Release()

	rows, err := conn.Query(ctx, query, args...)
	if err != nil {
		return nil, domainerr.NewOperation("retailer.list", err)
	}
	defer rows.Close()

	var retailers []*retailer.Retailer
	for rows.Next() {
		rt := &retailer.Retailer{}
		if err := rows.Scan(
			&rt.ID, &rt.Name, &rt.RouteID, &rt.ContactPerson, &rt.Phone, &rt.Address, &rt.GSTIN,
			&rt.IsTypeA, &rt.IsTypeB, &rt.IsTypeC, &rt.IsActive, &rt.CreatedAt, &rt.UpdatedAt,
		); err != nil {
			return nil, domainerr.NewOperation("retailer.list", err)
		}
		retailers = append(retailers, rt)
	}
	if err := rows.Err(); err != nil {
		return nil, domainerr.NewOperation("retailer.list", err)
	}

	return retailers, nil
}

// Count implements retailer.Repository.Count
func (r *PostgresRetailerRepository) Count(ctx context.Context) (int, error) {
	conn, err := r.db.GetCompanyConnection(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get connection: %w", err)
	}
	defer conn.Release()

	var count int
	if err := conn.QueryRow(ctx,
		"SELECT COUNT(*) FROM retailer WHERE is_active = true").Scan(&count); err != nil {
		return 0, domainerr.NewOperation("retailer.count", err)
	}
	return count, nil
}

// Update implements retailer.Repository.Update
func (r *PostgresRetailerRepository) Update(ctx context.Context, id string, update retailer.Update) (*retailer.Retailer, error) {
	conn, err := r.db.GetCompanyConnection(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get connection: %w", err)
	}
	defer conn.Release()

	builder := sqlbuilder.NewUpdate("retailer").
		SetIfString("name", update.Name).
		SetIfString("route_id", update.RouteID).
		SetIfString("contact_person", update.ContactPerson).
		SetIfString("phone", update.Phone).
		SetIfString("address", update.Address).
		SetIfString("gstin", update.GSTIN).
		SetIfBool("is_type_a", update.IsTypeA).
		SetIfBool("is_type_b", update.IsTypeB).
		SetIfBool("is_type_c", update.IsTypeC)

	if builder.Empty() {
		return r.FindByID(ctx, id)
	}

	query, args, err := builder.
		Set("updated_at", time.Now()).
		Where("id = $1 AND is_active = true", id).
		Build()
	if err != nil {
		return nil, domainerr.NewOperation("retailer.update", err)
	}

	result, err := conn.Exec(ctx, query, args...)
	if err != nil {
		return nil, translatePgError(err, "retailer.update", "retailer", "name", derefOr(update.Name, id))
	}
	if result.RowsAffected() == 0 {
		return nil, domainerr.NewNotFound("retailer", id)
	}

	return r.FindByID(ctx, id)
}

// Deactivate implements retailer.Repository.Deactivate
func (r *PostgresRetailerRepository) Deactivate(ctx context.Context, id string) error {
	conn, err := r.db.GetCompanyConnection(ctx)
	if err != nil {
		return fmt.Errorf("failed to get connection: %w", err)
	}
	defer conn.Release()

	result, err := conn.Exec(ctx,
		"UPDATE retailer SET is_active = false, updated_at = $2 WHERE id = $1 AND is_active = true",
		id, time.Now())
	if err != nil {
		return domainerr.NewOperation("retailer.deactivate", err)
	}
	if result.RowsAffected() == 0 {
		return domainerr.NewNotFound("retailer", id)
	}

	return nil
}

// AreaChain implements retailer.Repository.AreaChain. The chain is built from
// the area of the retailer's route, walking the row's stored ancestor ids.
func (r *PostgresRetailerRepository) AreaChain(ctx context.Context, retailerID string) (area.Chain, error) {
	conn, err := r.db.GetCompanyConnection(ctx)
	if err != nil {
		return area.Chain{}, fmt.Errorf("failed to get connection: %w", err)
	}
	defer conn.Release()

	a := &area.Area{}
	err = conn.QueryRow(ctx,
		`SELECT a.id, a.type, a.nation_id, a.zone_id, a.region_id, a.area_id
		 FROM retailer rt
		 JOIN routes ro ON ro.id = rt.route_id
		 JOIN areas a ON a.id = ro.area_id
		 WHERE rt.id = $1`,
		retailerID).Scan(&a.ID, &a.Type, &a.NationID, &a.ZoneID, &a.RegionID, &a.AreaID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return area.Chain{}, domainerr.NewNotFound("retailer", retailerID)
		}
		return area.Chain{}, domainerr.NewOperation("retailer.area_chain", err)
	}

	return area.ChainOf(a), nil
}
