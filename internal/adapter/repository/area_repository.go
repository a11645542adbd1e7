package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shah-dhwanil/gaatha-salesforce-sub000/internal/domain/area"
	"github.com/shah-dhwanil/gaatha-salesforce-sub000/internal/domain/domainerr"
	"github.com/shah-dhwanil/gaatha-salesforce-sub000/internal/infrastructure/database"
	"github.com/shah-dhwanil/gaatha-salesforce-sub000/pkg/sqlbuilder"
)

// PostgresAreaRepository implements area.Repository on PostgreSQL
type PostgresAreaRepository struct {
	db *database.PostgresDB
}

// NewPostgresAreaRepository creates a new PostgresAreaRepository
func NewPostgresAreaRepository(db *database.PostgresDB) *PostgresAreaRepository {
	return &PostgresAreaRepository{db: db}
}

const areaColumns = "id, name, type, nation_id, zone_id, region_id, area_id, is_active, created_at, updated_at"

// Create implements area.Repository.Create
func (r *PostgresAreaRepository) Create(ctx context.Context, a *area.Area) error {
	conn, err := r.db.GetCompanyConnection(ctx)
	if err != nil {
		return fmt.Errorf("failed to get connection: %w", err)
	}
	defer conn.Release()

	query := `
		INSERT INTO areas (` + areaColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err = conn.Exec(ctx, query,
		a.ID, a.Name, string(a.Type),
		a.NationID, a.ZoneID, a.RegionID, a.AreaID,
		a.IsActive, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		return translatePgError(err, "area.create", "area", "name", a.Name)
	}

	return nil
}

// FindByID implements area.Repository.FindByID
func (r *PostgresAreaRepository) FindByID(ctx context.Context, id string) (*area.Area, error) {
	conn, err := r.db.GetCompanyConnection(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get connection: %w", err)
	}
	defer conn.Release()

	return r.findAreaByQuery(ctx, conn,
		"SELECT "+areaColumns+" FROM areas WHERE id = $1 AND is_active = true", id)
}

func (r *PostgresAreaRepository) findAreaByQuery(ctx context.Context, conn *pgxpool.Conn, query string, args ...interface{}) (*area.Area, error) {
	a := &area.Area{}
	var areaType string

	err := conn.QueryRow(ctx, query, args...).Scan(
		&a.ID, &a.Name, &areaType,
		&a.NationID, &a.ZoneID, &a.RegionID, &a.AreaID,
		&a.IsActive, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainerr.NewNotFound("area", fmt.Sprint(args[0]))
		}
		return nil, domainerr.NewOperation("area.find", err)
	}

	a.Type = area.Type(areaType)
	return a, nil
}

func (r *PostgresAreaRepository) scanAreas(rows pgx.Rows) ([]*area.Area, error) {
	defer rows.Close()

	var areas []*area.Area
	for rows.Next() {
		a := &area.Area{}
		var areaType string

		if err := rows.Scan(
			&a.ID, &a.Name, &areaType,
			&a.NationID, &a.ZoneID, &a.RegionID, &a.AreaID,
			&a.IsActive, &a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, domainerr.NewOperation("area.scan", err)
		}

		a.Type = area.Type(areaType)
		areas = append(areas, a)
	}

	if err := rows.Err(); err != nil {
		return nil, domainerr.NewOperation("area.scan", err)
	}
	return areas, nil
}

// List implements area.Repository.List
func (r *PostgresAreaRepository) List(ctx context.Context, filter area.Filter, limit, offset int) ([]*area.Area, error) {
	conn, err := r.db.GetCompanyConnection(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get connection: %w", err)
	}
	defer conn.Release()

	query := "SELECT " + areaColumns + " FROM areas WHERE 1=1"
	args := []interface{}{}

	if filter.Type != nil {
		args = append(args, string(*filter.Type))
		query += fmt.Sprintf(" AND type = $%d", len(args))
	}
	if filter.IsActive != nil {
		args = append(args, *filter.IsActive)
		query += fmt.Sprintf(" AND is_active = $%d", len(args))
	}

	args = append(args, limit, offset)
	query += fmt.Sprintf(" ORDER BY name ASC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := conn.Query(ctx, query, args...)
	if err != nil {
		return nil, domainerr.NewOperation("area.list", err)
	}

	return r.scanAreas(rows)
}

// Count implements area.Repository.Count
func (r *PostgresAreaRepository) Count(ctx context.Context, filter area.Filter) (int, error) {
	conn, err := r.db.GetCompanyConnection(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get connection: %w", err)
	}
	defer conn.Release()

	query := "SELECT COUNT(*) FROM areas WHERE 1=1"
	args := []interface{}{}

	if filter.Type != nil {
		args = append(args, string(*filter.Type))
		query += fmt.Sprintf(" AND type = $%d", len(args))
	}
	if filter.IsActive != nil {
		args = append(args, *filter.IsActive)
		query += fmt.Sprintf(" AND is_active = $%d", len(args))
	}

	var count int
	if err := conn.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, domainerr.NewOperation("area.count", err)
	}

	return count, nil
}

// ListChildren implements area.Repository.ListChildren
func (r *PostgresAreaRepository) ListChildren(ctx context.Context, parentField, parentID string, childType area.Type) ([]*area.Area, error) {
	conn, err := r.db.GetCompanyConnection(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get connection: %w", err)
	}
	defer conn.Release()

	// parentField comes from the hierarchy rules, never from request input.
	query := fmt.Sprintf(
		"SELECT "+areaColumns+" FROM areas WHERE %s = $1 AND type = $2 AND is_active = true ORDER BY name ASC",
		parentField,
	)

	rows, err := conn.Query(ctx, query, parentID, string(childType))
	if err != nil {
		return nil, domainerr.NewOperation("area.list_children", err)
	}

	return r.scanAreas(rows)
}

// Update implements area.Repository.Update
func (r *PostgresAreaRepository) Update(ctx context.Context, a *area.Area) error {
	conn, err := r.db.GetCompanyConnection(ctx)
	if err != nil {
		return fmt.Errorf("failed to get connection: %w", err)
	}
	defer conn.Release()

	query, args, err := sqlbuilder.NewUpdate("areas").
		Set("name", a.Name).
		Set("type", string(a.Type)).
		SetIf(true, "nation_id", a.NationID).
		SetIf(true, "zone_id", a.ZoneID).
		SetIf(true, "region_id", a.RegionID).
		SetIf(true, "area_id", a.AreaID).
		Set("updated_at", time.Now()).
		Where("id = $1 AND is_active = true", a.ID).
		Build()
	if err != nil {
		return domainerr.NewOperation("area.update", err)
	}

	result, err := conn.Exec(ctx, query, args...)
	if err != nil {
		return translatePgError(err, "area.update", "area", "name", a.Name)
	}

	if result.RowsAffected() == 0 {
		return domainerr.NewNotFound("area", a.ID)
	}

	return nil
}

// Deactivate implements area.Repository.Deactivate
func (r *PostgresAreaRepository) Deactivate(ctx context.Context, id string) error {
	conn, err := r.db.GetCompanyConnection(ctx)
	if err != nil {
		return fmt.Errorf("failed to get connection: %w", err)
	}
	defer conn.Release()

	result, err := conn.Exec(ctx,
		"UPDATE areas SET is_active = false, updated_at = $2 WHERE id = $1 AND is_active = true",
		id, time.Now())
	if err != nil {
		return domainerr.NewOperation("area.deactivate", err)
	}

	if result.RowsAffected() == 0 {
		return domainerr.NewNotFound("area", id)
	}

	return nil
}
