package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/shah-dhwanil/gaatha-salesforce-sub000/internal/domain/brand"
	"github.com/shah-dhwanil/gaatha-salesforce-sub000/internal/domain/domainerr"
	"github.com/shah-dhwanil/gaatha-salesforce-sub000/internal/domain/pricing"
	"github.com/shah-dhwanil/gaatha-salesforce-sub000/internal/infrastructure/database"
	"github.com/shah-dhwanil/gaatha-salesforce-sub000/pkg/sqlbuilder"
)

// PostgresBrandRepository implements brand.Repository on PostgreSQL
type PostgresBrandRepository struct {
	db *database.PostgresDB
}

// NewPostgresBrandRepository creates a new PostgresBrandRepository
func NewPostgresBrandRepository(db *database.PostgresDB) *PostgresBrandRepository {
	return &PostgresBrandRepository{db: db}
}

const brandColumns = "id, name, code, for_general, for_modern, for_horeca, logo, is_active, is_deleted, created_at, updated_at"

// marshalMargins serializes the typed margin set at the storage boundary
func marshalMargins(set pricing.MarginSet) ([]byte, error) {
	payload, err := json.Marshal(set)
	if err != nil {
		return nil, fmt.Errorf("failed to encode margins: %w", err)
	}
	return payload, nil
}

// unmarshalMargins decodes the stored payload back into the typed form
func unmarshalMargins(payload []byte, set *pricing.MarginSet) error {
	if len(payload) == 0 {
		return nil
	}
	if err := json.Unmarshal(payload, set); err != nil {
		return fmt.Errorf("failed to decode margins: %w", err)
	}
	return nil
}

// Create implements brand.Repository.Create. The brand and its initial
// visibility and margin rows commit or roll back together.
func (r *PostgresBrandRepository) Create(ctx context.Context, b *brand.Brand, visibilities []*brand.Visibility, margins []*brand.Margin) error {
	return r.db.Transaction(ctx, func(tx pgx.Tx) error {
		query := `
			INSERT INTO brand (` + brandColumns + `)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		`

		_, err := tx.Exec(ctx, query,
			b.ID, b.Name, b.Code,
			b.ForGeneral, b.ForModern, b.ForHoreca,
			b.Logo, b.IsActive, b.IsDeleted, b.CreatedAt, b.UpdatedAt,
		)
		if err != nil {
			return translatePgError(err, "brand.create", "brand", "name", b.Name)
		}

		for _, v := range visibilities {
			if _, err := tx.Exec(ctx,
				`INSERT INTO brand_visibility (id, brand_id, area_id, is_active, created_at, updated_at)
				 VALUES ($1, $2, $3, $4, $5, $6)`,
				v.ID, v.BrandID, v.AreaID, v.IsActive, v.CreatedAt, v.UpdatedAt,
			); err != nil {
				return translatePgError(err, "brand.create", "brand visibility", "area_id", strOrGlobal(v.AreaID))
			}
		}

		for _, m := range margins {
			payload, err := marshalMargins(m.Margins)
			if err != nil {
				return err
			}
			if _, err := tx.Exec(ctx,
				`INSERT INTO brand_margins (id, brand_id, area_id, name, margins, is_active, created_at, updated_at)
				 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
				m.ID, m.BrandID, m.AreaID, m.Name, payload, m.IsActive, m.CreatedAt, m.UpdatedAt,
			); err != nil {
				return translatePgError(err, "brand.create", "brand margin", "area_id", strOrGlobal(m.AreaID))
			}
		}

		return nil
	})
}

// strOrGlobal renders a nullable area id for error messages
func strOrGlobal(areaID *string) string {
	if areaID == nil {
		return "global"
	}
	return *areaID
}

// FindByID implements brand.Repository.FindByID
func (r *PostgresBrandRepository) FindByID(ctx context.Context, id string) (*brand.Brand, error) {
	conn, err := r.db.GetCompanyConnection(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get connection: %w", err)
	}
	defer conn.Release()

	return scanBrandRow(conn.QueryRow(ctx,
		"SELECT "+brandColumns+" FROM brand WHERE id = $1 AND is_deleted = false", id), id)
}

func scanBrandRow(row pgx.Row, id string) (*brand.Brand, error) {
	b := &brand.Brand{}
	err := row.Scan(
		&b.ID, &b.Name, &b.Code,
		&b.ForGeneral, &b.ForModern, &b.ForHoreca,
		&b.Logo, &b.IsActive, &b.IsDeleted, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainerr.NewNotFound("brand", id)
		}
		return nil, domainerr.NewOperation("brand.find", err)
	}
	return b, nil
}

// List implements brand.Repository.List
func (r *PostgresBrandRepository) List(ctx context.Context, limit, offset int) ([]*brand.Brand, error) {
	conn, err := r.db.GetCompanyConnection(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get connection: %w", err)
	}
	defer conn.Release()

	rows, err := conn.Query(ctx,
		"SELECT "+brandColumns+" FROM brand WHERE is_active = true AND is_deleted = false ORDER BY name ASC LIMIT $1 OFFSET $2",
		limit, offset)
	if err != nil {
		return nil, domainerr.NewOperation("brand.list", err)
	}
	defer rows.Close()

	var brands []*brand.Brand
	for rows.Next() {
		b := &brand.Brand{}
		if err := rows.Scan(
			&b.ID, &b.Name, &b.Code,
			&b.ForGeneral, &b.ForModern, &b.ForHoreca,
			&b.Logo, &b.IsActive, &b.IsDeleted, &b.CreatedAt, &b.UpdatedAt,
		); err != nil {
			return nil, domainerr.NewOperation("brand.list", err)
		}
		brands = append(brands, b)
	}
	if err := rows.Err(); err != nil {
		return nil, domainerr.NewOperation("brand.list", err)
	}

	return brands, nil
}

// Count implements brand.Repository.Count
func (r *PostgresBrandRepository) Count(ctx context.Context) (int, error) {
	conn, err := r.db.GetCompanyConnection(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get connection: %w", err)
	}
	defer conn.Release()

	var count int
	if err := conn.QueryRow(ctx,
		"SELECT COUNT(*) FROM brand WHERE is_active = true AND is_deleted = false").Scan(&count); err != nil {
		return 0, domainerr.NewOperation("brand.count", err)
	}
	return count, nil
}

// Update implements brand.Repository.Update
func (r *PostgresBrandRepository) Update(ctx context.Context, id string, update brand.Update) (*brand.Brand, error) {
	conn, err := r.db.GetCompanyConnection(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get connection: %w", err)
	}
	defer conn.Release()

	builder := sqlbuilder.NewUpdate("brand").
		SetIfString("name", update.Name).
		SetIfString("code", update.Code).
		SetIfBool("for_general", update.ForGeneral).
		SetIfBool("for_modern", update.ForModern).
		SetIfBool("for_horeca", update.ForHoreca).
		SetIfString("logo", update.Logo)

	if builder.Empty() {
		return r.FindByID(ctx, id)
	}

	query, args, err := builder.
		Set("updated_at", time.Now()).
		Where("id = $1 AND is_deleted = false", id).
		Build()
	if err != nil {
		return nil, domainerr.NewOperation("brand.update", err)
	}

	result, err := conn.Exec(ctx, query, args...)
	if err != nil {
		return nil, translatePgError(err, "brand.update", "brand", "name", derefOr(update.Name, id))
	}
	if result.RowsAffected() == 0 {
		return nil, domainerr.NewNotFound("brand", id)
	}

	return r.FindByID(ctx, id)
}

func derefOr(s *string, fallback string) string {
	if s != nil {
		return *s
	}
	return fallback
}

// Delete implements brand.Repository.Delete
func (r *PostgresBrandRepository) Delete(ctx context.Context, id string) error {
	conn, err := r.db.GetCompanyConnection(ctx)
	if err != nil {
		return fmt.Errorf("failed to get connection: %w", err)
	}
	defer conn.Release()

	result, err := conn.Exec(ctx,
		"UPDATE brand SET is_active = false, is_deleted = true, updated_at = $2 WHERE id = $1 AND is_deleted = false",
		id, time.Now())
	if err != nil {
		return domainerr.NewOperation("brand.delete", err)
	}
	if result.RowsAffected() == 0 {
		return domainerr.NewNotFound("brand", id)
	}

	return nil
}

// AddVisibility implements brand.Repository.AddVisibility. An inactive row for
// the same pair is reactivated; an active one surfaces as AlreadyExists.
func (r *PostgresBrandRepository) AddVisibility(ctx context.Context, v *brand.Visibility) error {
	conn, err := r.db.GetCompanyConnection(ctx)
	if err != nil {
		return fmt.Errorf("failed to get connection: %w", err)
	}
	defer conn.Release()

	return addVisibilityRow(ctx, conn, "brand_visibility", "brand_id", v.BrandID, v.AreaID, v.ID)
}

// execQuerier is the slice of a pgx connection the shared row helpers need;
// satisfied by pooled connections and transactions alike.
type execQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// addVisibilityRow holds the shared insert-or-reactivate logic for all
// visibility tables.
func addVisibilityRow(ctx context.Context, conn execQuerier, table, ownerColumn, ownerID string, areaID *string, newID string) error {
	var existingID string
	var isActive bool
	err := conn.QueryRow(ctx,
		fmt.Sprintf("SELECT id, is_active FROM %s WHERE %s = $1 AND area_id IS NOT DISTINCT FROM $2 ORDER BY created_at DESC LIMIT 1", table, ownerColumn),
		ownerID, areaID).Scan(&existingID, &isActive)

	switch {
	case err == nil && isActive:
		return domainerr.NewAlreadyExists("visibility", "area_id", strOrGlobal(areaID))
	case err == nil:
		_, err = conn.Exec(ctx,
			fmt.Sprintf("UPDATE %s SET is_active = true, updated_at = $2 WHERE id = $1", table),
			existingID, time.Now())
		if err != nil {
			return domainerr.NewOperation("visibility.reactivate", err)
		}
		return nil
	case errors.Is(err, pgx.ErrNoRows):
		now := time.Now()
		_, err = conn.Exec(ctx,
			fmt.Sprintf("INSERT INTO %s (id, %s, area_id, is_active, created_at, updated_at) VALUES ($1, $2, $3, true, $4, $5)", table, ownerColumn),
			newID, ownerID, areaID, now, now)
		if err != nil {
			return translatePgError(err, "visibility.add", "visibility", "area_id", strOrGlobal(areaID))
		}
		return nil
	default:
		return domainerr.NewOperation("visibility.add", err)
	}
}

// RemoveVisibility implements brand.Repository.RemoveVisibility
func (r *PostgresBrandRepository) RemoveVisibility(ctx context.Context, brandID string, areaID *string) error {
	conn, err := r.db.GetCompanyConnection(ctx)
	if err != nil {
		return fmt.Errorf("failed to get connection: %w", err)
	}
	defer conn.Release()

	return removeVisibilityRow(ctx, conn, "brand_visibility", "brand_id", brandID, areaID)
}

func removeVisibilityRow(ctx context.Context, conn execQuerier, table, ownerColumn, ownerID string, areaID *string) error {
	result, err := conn.Exec(ctx,
		fmt.Sprintf("UPDATE %s SET is_active = false, updated_at = $3 WHERE %s = $1 AND area_id IS NOT DISTINCT FROM $2 AND is_active = true", table, ownerColumn),
		ownerID, areaID, time.Now())
	if err != nil {
		return domainerr.NewOperation("visibility.remove", err)
	}
	if result.RowsAffected() == 0 {
		return domainerr.NewNotFound("visibility", strOrGlobal(areaID))
	}
	return nil
}

// ListVisibility implements brand.Repository.ListVisibility
func (r *PostgresBrandRepository) ListVisibility(ctx context.Context, brandID string) ([]*brand.Visibility, error) {
	conn, err := r.db.GetCompanyConnection(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get connection: %w", err)
	}
	defer conn.Release()

	rows, err := conn.Query(ctx,
		"SELECT id, brand_id, area_id, is_active, created_at, updated_at FROM brand_visibility WHERE brand_id = $1 AND is_active = true",
		brandID)
	if err != nil {
		return nil, domainerr.NewOperation("brand.list_visibility", err)
	}
	defer rows.Close()

	var visibilities []*brand.Visibility
	for rows.Next() {
		v := &brand.Visibility{}
		if err := rows.Scan(&v.ID, &v.BrandID, &v.AreaID, &v.IsActive, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, domainerr.NewOperation("brand.list_visibility", err)
		}
		visibilities = append(visibilities, v)
	}
	if err := rows.Err(); err != nil {
		return nil, domainerr.NewOperation("brand.list_visibility", err)
	}

	return visibilities, nil
}

// AddOrUpdateMargin implements brand.Repository.AddOrUpdateMargin. An existing
// active row for the exact pair is patched with only the supplied sub-fields;
// otherwise a new row is inserted.
func (r *PostgresBrandRepository) AddOrUpdateMargin(ctx context.Context, brandID string, areaID *string, patch brand.MarginPatch) (*brand.Margin, error) {
	conn, err := r.db.GetCompanyConnection(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get connection: %w", err)
	}
	defer conn.Release()

	existing := &brand.Margin{}
	var payload []byte
	err = conn.QueryRow(ctx,
		`SELECT id, brand_id, area_id, name, margins, is_active, created_at, updated_at
		 FROM brand_margins WHERE brand_id = $1 AND area_id IS NOT DISTINCT FROM $2 AND is_active = true`,
		brandID, areaID).Scan(
		&existing.ID, &existing.BrandID, &existing.AreaID, &existing.Name,
		&payload, &existing.IsActive, &existing.CreatedAt, &existing.UpdatedAt,
	)

	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			return nil, domainerr.NewOperation("brand.margin_lookup", err)
		}

		// No active row for the pair: insert a fresh one.
		m := brand.NewMargin(brandID, areaID, derefOr(patch.Name, ""), patch.Margins)
		marginsJSON, err := marshalMargins(m.Margins)
		if err != nil {
			return nil, err
		}
		if _, err := conn.Exec(ctx,
			`INSERT INTO brand_margins (id, brand_id, area_id, name, margins, is_active, created_at, updated_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			m.ID, m.BrandID, m.AreaID, m.Name, marginsJSON, m.IsActive, m.CreatedAt, m.UpdatedAt,
		); err != nil {
			return nil, translatePgError(err, "brand.margin_add", "brand margin", "area_id", strOrGlobal(areaID))
		}
		return m, nil
	}

	if err := unmarshalMargins(payload, &existing.Margins); err != nil {
		return nil, domainerr.NewOperation("brand.margin_decode", err)
	}

	// Patch only the supplied sub-fields.
	if patch.Name != nil {
		existing.Name = *patch.Name
	}
	existing.Margins.Patch(patch.Margins)
	existing.UpdatedAt = time.Now()

	marginsJSON, err := marshalMargins(existing.Margins)
	if err != nil {
		return nil, err
	}
	if _, err := conn.Exec(ctx,
		"UPDATE brand_margins SET name = $2, margins = $3, updated_at = $4 WHERE id = $1",
		existing.ID, existing.Name, marginsJSON, existing.UpdatedAt,
	); err != nil {
		return nil, domainerr.NewOperation("brand.margin_update", err)
	}

	return existing, nil
}

// RemoveMargin implements brand.Repository.RemoveMargin
func (r *PostgresBrandRepository) RemoveMargin(ctx context.Context, brandID string, areaID *string) error {
	conn, err := r.db.GetCompanyConnection(ctx)
	if err != nil {
		return fmt.Errorf("failed to get connection: %w", err)
	}
	defer conn.Release()

	result, err := conn.Exec(ctx,
		"UPDATE brand_margins SET is_active = false, updated_at = $3 WHERE brand_id = $1 AND area_id IS NOT DISTINCT FROM $2 AND is_active = true",
		brandID, areaID, time.Now())
	if err != nil {
		return domainerr.NewOperation("brand.margin_remove", err)
	}
	if result.RowsAffected() == 0 {
		return domainerr.NewNotFound("brand margin", strOrGlobal(areaID))
	}

	return nil
}

// ListMargins implements brand.Repository.ListMargins
func (r *PostgresBrandRepository) ListMargins(ctx context.Context, brandID string) ([]*brand.Margin, error) {
	conn, err := r.db.GetCompanyConnection(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get connection: %w", err)
	}
	defer conn.Release()

	rows, err := conn.Query(ctx,
		`SELECT id, brand_id, area_id, name, margins, is_active, created_at, updated_at
		 FROM brand_margins WHERE brand_id = $1 AND is_active = true`,
		brandID)
	if err != nil {
		return nil, domainerr.NewOperation("brand.list_margins", err)
	}
	defer rows.Close()

	var margins []*brand.Margin
	for rows.Next() {
		m := &brand.Margin{}
		var payload []byte
		if err := rows.Scan(&m.ID, &m.BrandID, &m.AreaID, &m.Name, &payload, &m.IsActive, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, domainerr.NewOperation("brand.list_margins", err)
		}
		if err := unmarshalMargins(payload, &m.Margins); err != nil {
			return nil, domainerr.NewOperation("brand.list_margins", err)
		}
		margins = append(margins, m)
	}
	if err := rows.Err(); err != nil {
		return nil, domainerr.NewOperation("brand.list_margins", err)
	}

	return margins, nil
}
