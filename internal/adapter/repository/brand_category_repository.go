package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/shah-dhwanil/gaatha-salesforce-sub000/internal/domain/brand"
	"github.com/shah-dhwanil/gaatha-salesforce-sub000/internal/domain/domainerr"
	"github.com/shah-dhwanil/gaatha-salesforce-sub000/internal/infrastructure/database"
	"github.com/shah-dhwanil/gaatha-salesforce-sub000/pkg/sqlbuilder"
)

// PostgresBrandCategoryRepository implements brand.CategoryRepository on PostgreSQL
type PostgresBrandCategoryRepository struct {
	db *database.PostgresDB
}

// NewPostgresBrandCategoryRepository creates a new PostgresBrandCategoryRepository
func NewPostgresBrandCategoryRepository(db *database.PostgresDB) *PostgresBrandCategoryRepository {
	return &PostgresBrandCategoryRepository{db: db}
}

const categoryColumns = "id, brand_id, parent_category_id, name, code, for_general, for_modern, for_horeca, logo, is_active, is_deleted, created_at, updated_at"

func scanCategory(row pgx.Row, id string) (*brand.Category, error) {
	c := &brand.Category{}
	err := row.Scan(
		&c.ID, &c.BrandID, &c.ParentCategoryID, &c.Name, &c.Code,
		&c.ForGeneral, &c.ForModern, &c.ForHoreca,
		&c.Logo, &c.IsActive, &c.IsDeleted, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainerr.NewNotFound("brand category", id)
		}
		return nil, domainerr.NewOperation("brand_category.find", err)
	}
	return c, nil
}

// Create implements brand.CategoryRepository.Create
func (r *PostgresBrandCategoryRepository) Create(ctx context.Context, c *brand.Category, visibilities []*brand.CategoryVisibility, margins []*brand.CategoryMargin) error {
	return r.db.Transaction(ctx, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx,
			`INSERT INTO brand_categories (`+categoryColumns+`)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
			c.ID, c.BrandID, c.ParentCategoryID, c.Name, c.Code,
			c.ForGeneral, c.ForModern, c.ForHoreca,
			c.Logo, c.IsActive, c.IsDeleted, c.CreatedAt, c.UpdatedAt,
		)
		if err != nil {
			return translatePgError(err, "brand_category.create", "brand category", "name", c.Name)
		}

		for _, v := range visibilities {
			if _, err := tx.Exec(ctx,
				`INSERT INTO brand_category_visibility (id, category_id, area_id, is_active, created_at, updated_at)
				 VALUES ($1, $2, $3, $4, $5, $6)`,
				v.ID, v.CategoryID, v.AreaID, v.IsActive, v.CreatedAt, v.UpdatedAt,
			); err != nil {
				return translatePgError(err, "brand_category.create", "category visibility", "area_id", strOrGlobal(v.AreaID))
			}
		}

		for _, m := range margins {
			payload, err := marshalMargins(m.Margins)
			if err != nil {
				return err
			}
			if _, err := tx.Exec(ctx,
				`INSERT INTO brand_category_margins (id, category_id, area_id, name, margins, is_active, created_at, updated_at)
				 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
				m.ID, m.CategoryID, m.AreaID, m.Name, payload, m.IsActive, m.CreatedAt, m.UpdatedAt,
			); err != nil {
				return translatePgError(err, "brand_category.create", "category margin", "area_id", strOrGlobal(m.AreaID))
			}
		}

		return nil
	})
}

// FindByID implements brand.CategoryRepository.FindByID
func (r *PostgresBrandCategoryRepository) FindByID(ctx context.Context, id string) (*brand.Category, error) {
	conn, err := r.db.GetCompanyConnection(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get connection: %w", err)
	}
	defer conn.Release()

	return scanCategory(conn.QueryRow(ctx,
		"SELECT "+categoryColumns+" FROM brand_categories WHERE id = $1 AND is_deleted = false", id), id)
}

// ListByBrand implements brand.CategoryRepository.ListByBrand
func (r *PostgresBrandCategoryRepository) ListByBrand(ctx context.Context, brandID string, limit, offset int) ([]*brand.Category, error) {
	conn, err := r.db.GetCompanyConnection(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get connection: %w", err)
	}
	defer conn.Release()

	rows, err := conn.Query(ctx,
		"SELECT "+categoryColumns+" FROM brand_categories WHERE brand_id = $1 AND is_active = true AND is_deleted = false ORDER BY name ASC LIMIT $2 OFFSET $3",
		brandID, limit, offset)
	if err != nil {
		return nil, domainerr.NewOperation("brand_category.list", err)
	}
	defer rows.Close()

	var categories []*brand.Category
	for rows.Next() {
		c := &brand.Category{}
		if err := rows.Scan(
			&c.ID, &c.BrandID, &c.ParentCategoryID, &c.Name, &c.Code,
			&c.ForGeneral, &c.ForModern, &c.ForHoreca,
			&c.Logo, &c.IsActive, &c.IsDeleted, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, domainerr.NewOperation("brand_category.list", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, domainerr.NewOperation("brand_category.list", err)
	}

	return categories, nil
}

// CountByBrand implements brand.CategoryRepository.CountByBrand
func (r *PostgresBrandCategoryRepository) CountByBrand(ctx context.Context, brandID string) (int, error) {
	conn, err := r.db.GetCompanyConnection(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get connection: %w", err)
	}
	defer conn.Release()

	var count int
	if err := conn.QueryRow(ctx,
		"SELECT COUNT(*) FROM brand_categories WHERE brand_id = $1 AND is_active = true AND is_deleted = false",
		brandID).Scan(&count); err != nil {
		return 0, domainerr.NewOperation("brand_category.count", err)
	}
	return count, nil
}

// Update implements brand.CategoryRepository.Update
func (r *PostgresBrandCategoryRepository) Update(ctx context.Context, id string, update brand.Update) (*brand.Category, error) {
	conn, err := r.db.GetCompanyConnection(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get connection: %w", err)
	}
	defer conn.Release()

	builder := sqlbuilder.NewUpdate("brand_categories").
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
		return nil, domainerr.NewOperation("brand_category.update", err)
	}

	result, err := conn.Exec(ctx, query, args...)
	if err != nil {
		return nil, translatePgError(err, "brand_category.update", "brand category", "name", derefOr(update.Name, id))
	}
	if result.RowsAffected() == 0 {
		return nil, domainerr.NewNotFound("brand category", id)
	}

	return r.FindByID(ctx, id)
}

// Delete implements brand.CategoryRepository.Delete
func (r *PostgresBrandCategoryRepository) Delete(ctx context.Context, id string) error {
	conn, err := r.db.GetCompanyConnection(ctx)
	if err != nil {
		return fmt.Errorf("failed to get connection: %w", err)
	}
	defer conn.Release()

	result, err := conn.Exec(ctx,
		"UPDATE brand_categories SET is_active = false, is_deleted = true, updated_at = $2 WHERE id = $1 AND is_deleted = false",
		id, time.Now())
	if err != nil {
		return domainerr.NewOperation("brand_category.delete", err)
	}
	if result.RowsAffected() == 0 {
		return domainerr.NewNotFound("brand category", id)
	}

	return nil
}

// AddVisibility implements brand.CategoryRepository.AddVisibility
func (r *PostgresBrandCategoryRepository) AddVisibility(ctx context.Context, v *brand.CategoryVisibility) error {
	conn, err := r.db.GetCompanyConnection(ctx)
	if err != nil {
		return fmt.Errorf("failed to get connection: %w", err)
	}
	defer conn.Release()

	return addVisibilityRow(ctx, conn, "brand_category_visibility", "category_id", v.CategoryID, v.AreaID, v.ID)
}

// RemoveVisibility implements brand.CategoryRepository.RemoveVisibility
func (r *PostgresBrandCategoryRepository) RemoveVisibility(ctx context.Context, categoryID string, areaID *string) error {
	conn, err := r.db.GetCompanyConnection(ctx)
	if err != nil {
		return fmt.Errorf("failed to get connection: %w", err)
	}
	defer conn.Release()

	return removeVisibilityRow(ctx, conn, "brand_category_visibility", "category_id", categoryID, areaID)
}

// ListVisibility implements brand.CategoryRepository.ListVisibility
func (r *PostgresBrandCategoryRepository) ListVisibility(ctx context.Context, categoryID string) ([]*brand.CategoryVisibility, error) {
	conn, err := r.db.GetCompanyConnection(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get connection: %w", err)
	}
	defer conn.Release()

	rows, err := conn.Query(ctx,
		"SELECT id, category_id, area_id, is_active, created_at, updated_at FROM brand_category_visibility WHERE category_id = $1 AND is_active = true",
		categoryID)
	if err != nil {
		return nil, domainerr.NewOperation("brand_category.list_visibility", err)
	}
	defer rows.Close()

	var visibilities []*brand.CategoryVisibility
	for rows.Next() {
		v := &brand.CategoryVisibility{}
		if err := rows.Scan(&v.ID, &v.CategoryID, &v.AreaID, &v.IsActive, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, domainerr.NewOperation("brand_category.list_visibility", err)
		}
		visibilities = append(visibilities, v)
	}
	if err := rows.Err(); err != nil {
		return nil, domainerr.NewOperation("brand_category.list_visibility", err)
	}

	return visibilities, nil
}

// AddOrUpdateMargin implements brand.CategoryRepository.AddOrUpdateMargin
func (r *PostgresBrandCategoryRepository) AddOrUpdateMargin(ctx context.Context, categoryID string, areaID *string, patch brand.MarginPatch) (*brand.CategoryMargin, error) {
	conn, err := r.db.GetCompanyConnection(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get connection: %w", err)
	}
	defer conn.Release()

	existing := &brand.CategoryMargin{}
	var payload []byte
	err = conn.QueryRow(ctx,
		`SELECT id, category_id, area_id, name, margins, is_active, created_at, updated_at
		 FROM brand_category_margins WHERE category_id = $1 AND area_id IS NOT DISTINCT FROM $2 AND is_active = true`,
		categoryID, areaID).Scan(
		&existing.ID, &existing.CategoryID, &existing.AreaID, &existing.Name,
		&payload, &existing.IsActive, &existing.CreatedAt, &existing.UpdatedAt,
	)

	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			return nil, domainerr.NewOperation("brand_category.margin_lookup", err)
		}

		m := brand.NewCategoryMargin(categoryID, areaID, derefOr(patch.Name, ""), patch.Margins)
		marginsJSON, err := marshalMargins(m.Margins)
		if err != nil {
			return nil, err
		}
		if _, err := conn.Exec(ctx,
			`INSERT INTO brand_category_margins (id, category_id, area_id, name, margins, is_active, created_at, updated_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			m.ID, m.CategoryID, m.AreaID, m.Name, marginsJSON, m.IsActive, m.CreatedAt, m.UpdatedAt,
		); err != nil {
			return nil, translatePgError(err, "brand_category.margin_add", "category margin", "area_id", strOrGlobal(areaID))
		}
		return m, nil
	}

	if err := unmarshalMargins(payload, &existing.Margins); err != nil {
		return nil, domainerr.NewOperation("brand_category.margin_decode", err)
	}

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
		"UPDATE brand_category_margins SET name = $2, margins = $3, updated_at = $4 WHERE id = $1",
		existing.ID, existing.Name, marginsJSON, existing.UpdatedAt,
	); err != nil {
		return nil, domainerr.NewOperation("brand_category.margin_update", err)
	}

	return existing, nil
}

// RemoveMargin implements brand.CategoryRepository.RemoveMargin
func (r *PostgresBrandCategoryRepository) RemoveMargin(ctx context.Context, categoryID string, areaID *string) error {
	conn, err := r.db.GetCompanyConnection(ctx)
	if err != nil {
		return fmt.Errorf("failed to get connection: %w", err)
	}
	defer conn.Release()

	result, err := conn.Exec(ctx,
		"UPDATE brand_category_margins SET is_active = false, updated_at = $3 WHERE category_id = $1 AND area_id IS NOT DISTINCT FROM $2 AND is_active = true",
		categoryID, areaID, time.Now())
	if err != nil {
		return domainerr.NewOperation("brand_category.margin_remove", err)
	}
	if result.RowsAffected() == 0 {
		return domainerr.NewNotFound("category margin", strOrGlobal(areaID))
	}

	return nil
}

// ListMargins implements brand.CategoryRepository.ListMargins
func (r *PostgresBrandCategoryRepository) ListMargins(ctx context.Context, categoryID string) ([]*brand.CategoryMargin, error) {
	conn, err := r.db.GetCompanyConnection(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get connection: %w", err)
	}
	defer conn.Release()

	rows, err := conn.Query(ctx,
		`SELECT id, category_id, area_id, name, margins, is_active, created_at, updated_at
		 FROM brand_category_margins WHERE category_id = $1 AND is_active = true`,
		categoryID)
	if err != nil {
		return nil, domainerr.NewOperation("brand_category.list_margins", err)
	}
	defer rows.Close()

	var margins []*brand.CategoryMargin
	for rows.Next() {
		m := &brand.CategoryMargin{}
		var payload []byte
		if err := rows.Scan(&m.ID, &m.CategoryID, &m.AreaID, &m.Name, &payload, &m.IsActive, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, domainerr.NewOperation("brand_category.list_margins", err)
		}
		if err := unmarshalMargins(payload, &m.Margins); err != nil {
			return nil, domainerr.NewOperation("brand_category.list_margins", err)
		}
		margins = append(margins, m)
	}
	if err := rows.Err(); err != nil {
		return nil, domainerr.NewOperation("brand_category.list_margins", err)
	}

	return margins, nil
}
