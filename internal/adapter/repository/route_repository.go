package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/shah-dhwanil/gaatha-salesforce-sub000/internal/domain/domainerr"
	"github.com/shah-dhwanil/gaatha-salesforce-sub000/internal/domain/route"
	"github.com/shah-dhwanil/gaatha-salesforce-sub000/internal/infrastructure/database"
	"github.com/shah-dhwanil/gaatha-salesforce-sub000/pkg/sqlbuilder"
)

// PostgresRouteRepository implements route.Repository on PostgreSQL
type PostgresRouteRepository struct {
	db *database.PostgresDB
}

// NewPostgresRouteRepository creates a new PostgresRouteRepository
func NewPostgresRouteRepository(db *database.PostgresDB) *PostgresRouteRepository {
	return &PostgresRouteRepository{db: db}
}

const routeColumns = "id, name, area_id, is_general, is_modern, is_horeca, is_active, created_at, updated_at"

func scanRoute(row pgx.Row, id string) (*route.Route, error) {
	rt := &route.Route{}
	err := row.Scan(
		&rt.ID, &rt.Name, &rt.AreaID,
		&rt.IsGeneral, &rt.IsModern, &rt.IsHoreca,
		&rt.IsActive, &rt.CreatedAt, &rt.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainerr.NewNotFound("route", id)
		}
		return nil, domainerr.NewOperation("route.find", err)
	}
	return rt, nil
}

// Create implements route.Repository.Create
func (r *PostgresRouteRepository) Create(ctx context.Context, rt *route.Route) error {
	conn, err := r.db.GetCompanyConnection(ctx)
	if err != nil {
		return fmt.Errorf("failed to get connection: %w", err)
	}
	defer conn.Release()

	_, err = conn.Exec(ctx,
		`INSERT INTO routes (`+routeColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		rt.ID, rt.Name, rt.AreaID,
		rt.IsGeneral, rt.IsModern, rt.IsHoreca,
		rt.IsActive, rt.CreatedAt, rt.UpdatedAt,
	)
	if err != nil {
		return translatePgError(err, "route.create", "route", "name", rt.Name)
	}

	return nil
}

// FindByID implements route.Repository.FindByID
func (r *PostgresRouteRepository) FindByID(ctx context.Context, id string) (*route.Route, error) {
	conn, err := r.db.GetCompanyConnection(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get connection: %w", err)
	}
	defer conn.Release()

	return scanRoute(conn.QueryRow(ctx,
		"SELECT "+routeColumns+" FROM routes WHERE id = $1", id), id)
}

// List implements route.Repository.List
func (r *PostgresRouteRepository) List(ctx context.Context, limit, offset int) ([]*route.Route, error) {
	return r.list(ctx,
		"SELECT "+routeColumns+" FROM routes WHERE is_active = true ORDER BY name ASC LIMIT $1 OFFSET $2",
		limit, offset)
}

// ListByArea implements route.Repository.ListByArea
func (r *PostgresRouteRepository) ListByArea(ctx context.Context, areaID string) ([]*route.Route, error) {
	return r.list(ctx,
		"SELECT "+routeColumns+" FROM routes WHERE area_id = $1 AND is_active = true ORDER BY name ASC",
		areaID)
}

func (r *PostgresRouteRepository) list(ctx context.Context, query string, args ...interface{}) ([]*route.Route, error) {
	conn, err := r.db.GetCompanyConnection(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get connection: %w", err)
	}
	defer conn.Release()

	rows, err := conn.Query(ctx, query, args...)
	if err != nil {
		return nil, domainerr.NewOperation("route.list", err)
	}
	defer rows.Close()

	var routes []*route.Route
	for rows.Next() {
		rt := &route.Route{}
		if err := rows.Scan(
			&rt.ID, &rt.Name, &rt.AreaID,
			&rt.IsGeneral, &rt.IsModern, &rt.IsHoreca,
			&rt.IsActive, &rt.CreatedAt, &rt.UpdatedAt,
		); err != nil {
			return nil, domainerr.NewOperation("route.list", err)
		}
		routes = append(routes, rt)
	}
	if err := rows.Err(); err != nil {
		return nil, domainerr.NewOperation("route.list", err)
	}

	return routes, nil
}

// Count implements route.Repository.Count
func (r *PostgresRouteRepository) Count(ctx context.Context) (int, error) {
	conn, err := r.db.GetCompanyConnection(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get connection: %w", err)
	}
	defer conn.Release()

	var count int
	if err := conn.QueryRow(ctx,
		"SELECT COUNT(*) FROM routes WHERE is_active = true").Scan(&count); err != nil {
		return 0, domainerr.NewOperation("route.count", err)
	}
	return count, nil
}

// Update implements route.Repository.Update
func (r *PostgresRouteRepository) Update(ctx context.Context, id string, update route.Update) (*route.Route, error) {
	conn, err := r.db.GetCompanyConnection(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get connection: %w", err)
	}
	defer conn.Release()

	builder := sqlbuilder.NewUpdate("routes").
		SetIfString("name", update.Name).
		SetIfString("area_id", update.AreaID).
		SetIfBool("is_general", update.IsGeneral).
		SetIfBool("is_modern", update.IsModern).
		SetIfBool("is_horeca", update.IsHoreca)

	if builder.Empty() {
		return r.FindByID(ctx, id)
	}

	query, args, err := builder.
		Set("updated_at", time.Now()).
		Where("id = $1 AND is_active = true", id).
		Build()
	if err != nil {
		return nil, domainerr.NewOperation("route.update", err)
	}

	result, err := conn.Exec(ctx, query, args...)
	if err != nil {
		return nil, translatePgError(err, "route.update", "route", "name", derefOr(update.Name, id))
	}
	if result.RowsAffected() == 0 {
		return nil, domainerr.NewNotFound("route", id)
	}

	return r.FindByID(ctx, id)
}

// Deactivate implements route.Repository.Deactivate
func (r *PostgresRouteRepository) Deactivate(ctx context.Context, id string) error {
	conn, err := r.db.GetCompanyConnection(ctx)
	if err != nil {
		return fmt.Errorf("failed to get connection: %w", err)
	}
	defer conn.Release()

	result, err := conn.Exec(ctx,
		"UPDATE routes SET is_active = false, updated_at = $2 WHERE id = $1 AND is_active = true",
		id, time.Now())
	if err != nil {
		return domainerr.NewOperation("route.deactivate", err)
	}
	if result.RowsAffected() == 0 {
		return domainerr.NewNotFound("route", id)
	}

	return nil
}

// CreateAssignment implements route.Repository.CreateAssignment
func (r *PostgresRouteRepository) CreateAssignment(ctx context.Context, a *route.Assignment) error {
	conn, err := r.db.GetCompanyConnection(ctx)
	if err != nil {
		return fmt.Errorf("failed to get connection: %w", err)
	}
	defer conn.Release()

	_, err = conn.Exec(ctx,
		`INSERT INTO route_assignment (id, route_id, user_id, day_of_week, from_date, to_date, is_active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		a.ID, a.RouteID, a.UserID, a.DayOfWeek, a.FromDate, a.ToDate,
		a.IsActive, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		return translatePgError(err, "route.assignment_create", "route assignment", "user_id", a.UserID)
	}

	return nil
}

// ListAssignments implements route.Repository.ListAssignments
func (r *PostgresRouteRepository) ListAssignments(ctx context.Context, routeID string) ([]*route.Assignment, error) {
	conn, err := r.db.GetCompanyConnection(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get connection: %w", err)
	}
	defer conn.Release()

	rows, err := conn.Query(ctx,
		`SELECT id, route_id, user_id, day_of_week, from_date, to_date, is_active, created_at, updated_at
		 FROM route_assignment WHERE route_id = $1 AND is_active = true ORDER BY day_of_week ASC`,
		routeID)
	if err != nil {
		return nil, domainerr.NewOperation("route.list_assignments", err)
	}
	defer rows.Close()

	var assignments []*route.Assignment
	for rows.Next() {
		a := &route.Assignment{}
		if err := rows.Scan(&a.ID, &a.RouteID, &a.UserID, &a.DayOfWeek, &a.FromDate, &a.ToDate, &a.IsActive, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, domainerr.NewOperation("route.list_assignments", err)
		}
		assignments = append(assignments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, domainerr.NewOperation("route.list_assignments", err)
	}

	return assignments, nil
}

// RemoveAssignment implements route.Repository.RemoveAssignment
func (r *PostgresRouteRepository) RemoveAssignment(ctx context.Context, routeID, assignmentID string) error {
	conn, err := r.db.GetCompanyConnection(ctx)
	if err != nil {
		return fmt.Errorf("failed to get connection: %w", err)
	}
	defer conn.Release()

	result, err := conn.Exec(ctx,
		"UPDATE route_assignment SET is_active = false, updated_at = $3 WHERE id = $1 AND route_id = $2 AND is_active = true",
		assignmentID, routeID, time.Now())
	if err != nil {
		return domainerr.NewOperation("route.assignment_remove", err)
	}
	if result.RowsAffected() == 0 {
		return domainerr.NewNotFound("route assignment", assignmentID)
	}

	return nil
}

// CreateLog implements route.Repository.CreateLog
func (r *PostgresRouteRepository) CreateLog(ctx context.Context, l *route.Log) error {
	conn, err := r.db.GetCompanyConnection(ctx)
	if err != nil {
		return fmt.Errorf("failed to get connection: %w", err)
	}
	defer conn.Release()

	_, err = conn.Exec(ctx,
		`INSERT INTO route_logs (id, route_id, member_id, retailer_id, remarks, logged_at, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		l.ID, l.RouteID, l.MemberID, l.RetailerID, l.Remarks, l.LoggedAt, l.CreatedAt,
	)
	if err != nil {
		return translatePgError(err, "route.log_create", "route log", "route_id", l.RouteID)
	}

	return nil
}

// ListLogs implements route.Repository.ListLogs
func (r *PostgresRouteRepository) ListLogs(ctx context.Context, routeID string, limit, offset int) ([]*route.Log, error) {
	conn, err := r.db.GetCompanyConnection(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get connection: %w", err)
	}
	defer conn.Release()

	rows, err := conn.Query(ctx,
		`SELECT id, route_id, member_id, retailer_id, remarks, logged_at, created_at
		 FROM route_logs WHERE route_id = $1 ORDER BY logged_at DESC LIMIT $2 OFFSET $3`,
		routeID, limit, offset)
	if err != nil {
		return nil, domainerr.NewOperation("route.list_logs", err)
	}
	defer rows.Close()

	var logs []*route.Log
	for rows.Next() {
		l := &route.Log{}
		if err := rows.Scan(&l.ID, &l.RouteID, &l.MemberID, &l.RetailerID, &l.Remarks, &l.LoggedAt, &l.CreatedAt); err != nil {
			return nil, domainerr.NewOperation("route.list_logs", err)
		}
		logs = append(logs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, domainerr.NewOperation("route.list_logs", err)
	}

	return logs, nil
}
