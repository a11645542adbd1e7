package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/shah-dhwanil/gaatha-salesforce-sub000/internal/domain/area"
	"github.com/shah-dhwanil/gaatha-salesforce-sub000/internal/domain/domainerr"
	"github.com/shah-dhwanil/gaatha-salesforce-sub000/internal/domain/product"
	"github.com/shah-dhwanil/gaatha-salesforce-sub000/internal/infrastructure/database"
	"github.com/shah-dhwanil/gaatha-salesforce-sub000/pkg/sqlbuilder"
)

// PostgresProductRepository implements product.Repository on PostgreSQL
type PostgresProductRepository struct {
	db *database.PostgresDB
}

// NewPostgresProductRepository creates a new PostgresProductRepository
func NewPostgresProductRepository(db *database.PostgresDB) *PostgresProductRepository {
	return &PostgresProductRepository{db: db}
}

const productColumns = "id, name, code, brand_id, category_id, gst_rate, uom, is_active, is_deleted, created_at, updated_at"

func scanProduct(row pgx.Row, id string) (*product.Product, error) {
	p := &product.Product{}
	err := row.Scan(
		&p.ID, &p.Name, &p.Code, &p.BrandID, &p.CategoryID,
		&p.GSTRate, &p.UOM, &p.IsActive, &p.IsDeleted, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainerr.NewNotFound("product", id)
		}
		return nil, domainerr.NewOperation("product.find", err)
	}
	return p, nil
}

// Create implements product.Repository.Create
func (r *PostgresProductRepository) Create(ctx context.Context, p *product.Product, prices []*product.Price, visibilities []*product.Visibility) error {
	return r.db.Transaction(ctx, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx,
			`INSERT INTO products (`+productColumns+`)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
			p.ID, p.Name, p.Code, p.BrandID, p.CategoryID,
			p.GSTRate, p.UOM, p.IsActive, p.IsDeleted, p.CreatedAt, p.UpdatedAt,
		)
		if err != nil {
			return translatePgError(err, "product.create", "product", "code", p.Code)
		}

		for _, price := range prices {
			marginsJSON, err := marshalMargins(price.Margins)
			if err != nil {
				return err
			}
			if _, err := tx.Exec(ctx,
				`INSERT INTO product_prices (id, product_id, area_id, mrp, margins, min_order_quantity, is_active, created_at, updated_at)
				 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
				price.ID, price.ProductID, price.AreaID, price.MRP, marginsJSON,
				price.MinOrderQuantity, price.IsActive, price.CreatedAt, price.UpdatedAt,
			); err != nil {
				return translatePgError(err, "product.create", "product price", "area_id", strOrGlobal(price.AreaID))
			}
		}

		for _, v := range visibilities {
			if _, err := tx.Exec(ctx,
				`INSERT INTO product_visibility (id, product_id, area_id, for_general, for_modern, for_horeca, for_type_a, for_type_b, for_type_c, is_active, created_at, updated_at)
				 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
				v.ID, v.ProductID, v.AreaID,
				v.ForGeneral, v.ForModern, v.ForHoreca, v.ForTypeA, v.ForTypeB, v.ForTypeC,
				v.IsActive, v.CreatedAt, v.UpdatedAt,
			); err != nil {
				return translatePgError(err, "product.create", "product visibility", "area_id", strOrGlobal(v.AreaID))
			}
		}

		return nil
	})
}

// FindByID implements product.Repository.FindByID
func (r *PostgresProductRepository) FindByID(ctx context.Context, id string) (*product.Product, error) {
	conn, err := r.db.GetCompanyConnection(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get connection: %w", err)
	}
	defer conn.Release()

	return scanProduct(conn.QueryRow(ctx,
		"SELECT "+productColumns+" FROM products WHERE id = $1 AND is_deleted = false", id), id)
}

// List implements product.Repository.List
func (r *PostgresProductRepository) List(ctx context.Context, limit, offset int) ([]*product.Product, error) {
	conn, err := r.db.GetCompanyConnection(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get connection: %w", err)
	}
	defer conn.Release()

	rows, err := conn.Query(ctx,
		"SELECT "+productColumns+" FROM products WHERE is_active = true AND is_deleted = false ORDER BY name ASC LIMIT $1 OFFSET $2",
		limit, offset)
	if err != nil {
		return nil, domainerr.NewOperation("product.list", err)
	}
	defer rows.Close()

	var products []*product.Product
	for rows.Next() {
		p := &product.Product{}
		if err := rows.Scan(
			&p.ID, &p.Name, &p.Code, &p.BrandID, &p.CategoryID,
			&p.GSTRate, &p.UOM, &p.IsActive, &p.IsDeleted, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, domainerr.NewOperation("product.list", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, domainerr.NewOperation("product.list", err)
	}

	return products, nil
}

// Count implements product.Repository.Count
func (r *PostgresProductRepository) Count(ctx context.Context) (int, error) {
	conn, err := r.db.GetCompanyConnection(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get connection: %w", err)
	}
	defer conn.Release()

	var count int
	if err := conn.QueryRow(ctx,
		"SELECT COUNT(*) FROM products WHERE is_active = true AND is_deleted = false").Scan(&count); err != nil {
		return 0, domainerr.NewOperation("product.count", err)
	}
	return count, nil
}

// Update implements product.Repository.Update
func (r *PostgresProductRepository) Update(ctx context.Context, id string, update product.Update) (*product.Product, error) {
	conn, err := r.db.GetCompanyConnection(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get connection: %w", err)
	}
	defer conn.Release()

	builder := sqlbuilder.NewUpdate("products").
		SetIfString("name", update.Name).
		SetIfString("code", update.Code).
		SetIfString("brand_id", update.BrandID).
		SetIfString("category_id", update.CategoryID).
		SetIfString("uom", update.UOM)
	if update.GSTRate != nil {
		builder = builder.Set("gst_rate", *update.GSTRate)
	}

	if builder.Empty() {
		return r.FindByID(ctx, id)
	}

	query, args, err := builder.
		Set("updated_at", time.Now()).
		Where("id = $1 AND is_deleted = false", id).
		Build()
	if err != nil {
		return nil, domainerr.NewOperation("product.update", err)
	}

	result, err := conn.Exec(ctx, query, args...)
	if err != nil {
		return nil, translatePgError(err, "product.update", "product", "code", derefOr(update.Code, id))
	}
	if result.RowsAffected() == 0 {
		return nil, domainerr.NewNotFound("product", id)
	}

	return r.FindByID(ctx, id)
}

// Delete implements product.Repository.Delete
func (r *PostgresProductRepository) Delete(ctx context.Context, id string) error {
	conn, err := r.db.GetCompanyConnection(ctx)
	if err != nil {
		return fmt.Errorf("failed to get connection: %w", err)
	}
	defer conn.Release()

	result, err := conn.Exec(ctx,
		"UPDATE products SET is_active = false, is_deleted = true, updated_at = $2 WHERE id = $1 AND is_deleted = false",
		id, time.Now())
	if err != nil {
		return domainerr.NewOperation("product.delete", err)
	}
	if result.RowsAffected() == 0 {
		return domainerr.NewNotFound("product", id)
	}

	return nil
}

// UpsertPrice implements product.Repository.UpsertPrice
func (r *PostgresProductRepository) UpsertPrice(ctx context.Context, productID string, areaID *string, patch product.PricePatch) (*product.Price, error) {
	conn, err := r.db.GetCompanyConnection(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get connection: %w", err)
	}
	defer conn.Release()

	existing := &product.Price{}
	var payload []byte
	err = conn.QueryRow(ctx,
		`SELECT id, product_id, area_id, mrp, margins, min_order_quantity, is_active, created_at, updated_at
		 FROM product_prices WHERE product_id = $1 AND area_id IS NOT DISTINCT FROM $2 AND is_active = true`,
		productID, areaID).Scan(
		&existing.ID, &existing.ProductID, &existing.AreaID, &existing.MRP,
		&payload, &existing.MinOrderQuantity, &existing.IsActive, &existing.CreatedAt, &existing.UpdatedAt,
	)

	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			return nil, domainerr.NewOperation("product.price_lookup", err)
		}

		if patch.MRP == nil {
			return nil, domainerr.NewValidation("mrp", "required when creating a price")
		}
		minQty := 1
		if patch.MinOrderQuantity != nil {
			minQty = *patch.MinOrderQuantity
		}
		price, err := product.NewPrice(productID, areaID, *patch.MRP, patch.Margins, minQty)
		if err != nil {
			return nil, domainerr.NewValidation("mrp", err.Error())
		}
		marginsJSON, err := marshalMargins(price.Margins)
		if err != nil {
			return nil, err
		}
		if _, err := conn.Exec(ctx,
			`INSERT INTO product_prices (id, product_id, area_id, mrp, margins, min_order_quantity, is_active, created_at, updated_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
			price.ID, price.ProductID, price.AreaID, price.MRP, marginsJSON,
			price.MinOrderQuantity, price.IsActive, price.CreatedAt, price.UpdatedAt,
		); err != nil {
			return nil, translatePgError(err, "product.price_add", "product price", "area_id", strOrGlobal(areaID))
		}
		return price, nil
	}

	if err := unmarshalMargins(payload, &existing.Margins); err != nil {
		return nil, domainerr.NewOperation("product.price_decode", err)
	}

	if patch.MRP != nil {
		if !patch.MRP.IsPositive() {
			return nil, domainerr.NewValidation("mrp", "must be positive")
		}
		existing.MRP = *patch.MRP
	}
	if patch.MinOrderQuantity != nil && *patch.MinOrderQuantity >= 1 {
		existing.MinOrderQuantity = *patch.MinOrderQuantity
	}
	existing.Margins.Patch(patch.Margins)
	existing.UpdatedAt = time.Now()

	marginsJSON, err := marshalMargins(existing.Margins)
	if err != nil {
		return nil, err
	}
	if _, err := conn.Exec(ctx,
		"UPDATE product_prices SET mrp = $2, margins = $3, min_order_quantity = $4, updated_at = $5 WHERE id = $1",
		existing.ID, existing.MRP, marginsJSON, existing.MinOrderQuantity, existing.UpdatedAt,
	); err != nil {
		return nil, domainerr.NewOperation("product.price_update", err)
	}

	return existing, nil
}

// RemovePrice implements product.Repository.RemovePrice
func (r *PostgresProductRepository) RemovePrice(ctx context.Context, productID string, areaID *string) error {
	conn, err := r.db.GetCompanyConnection(ctx)
	if err != nil {
		return fmt.Errorf("failed to get connection: %w", err)
	}
	defer conn.Release()

	result, err := conn.Exec(ctx,
		"UPDATE product_prices SET is_active = false, updated_at = $3 WHERE product_id = $1 AND area_id IS NOT DISTINCT FROM $2 AND is_active = true",
		productID, areaID, time.Now())
	if err != nil {
		return domainerr.NewOperation("product.price_remove", err)
	}
	if result.RowsAffected() == 0 {
		return domainerr.NewNotFound("product price", strOrGlobal(areaID))
	}

	return nil
}

// ListPrices implements product.Repository.ListPrices
func (r *PostgresProductRepository) ListPrices(ctx context.Context, productID string) ([]*product.Price, error) {
	conn, err := r.db.GetCompanyConnection(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get connection: %w", err)
	}
	defer conn.Release()

	rows, err := conn.Query(ctx,
		`SELECT id, product_id, area_id, mrp, margins, min_order_quantity, is_active, created_at, updated_at
		 FROM product_prices WHERE product_id = $1 AND is_active = true`,
		productID)
	if err != nil {
		return nil, domainerr.NewOperation("product.list_prices", err)
	}
	defer rows.Close()

	var prices []*product.Price
	for rows.Next() {
		p := &product.Price{}
		var payload []byte
		if err := rows.Scan(&p.ID, &p.ProductID, &p.AreaID, &p.MRP, &payload, &p.MinOrderQuantity, &p.IsActive, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, domainerr.NewOperation("product.list_prices", err)
		}
		if err := unmarshalMargins(payload, &p.Margins); err != nil {
			return nil, domainerr.NewOperation("product.list_prices", err)
		}
		prices = append(prices, p)
	}
	if err := rows.Err(); err != nil {
		return nil, domainerr.NewOperation("product.list_prices", err)
	}

	return prices, nil
}

// UpsertVisibility implements product.Repository.UpsertVisibility
func (r *PostgresProductRepository) UpsertVisibility(ctx context.Context, productID string, areaID *string, patch product.VisibilityPatch) (*product.Visibility, error) {
	conn, err := r.db.GetCompanyConnection(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get connection: %w", err)
	}
	defer conn.Release()

	existing := &product.Visibility{}
	err = conn.QueryRow(ctx,
		`SELECT id, product_id, area_id, for_general, for_modern, for_horeca, for_type_a, for_type_b, for_type_c, is_active, created_at, updated_at
		 FROM product_visibility WHERE product_id = $1 AND area_id IS NOT DISTINCT FROM $2 AND is_active = true`,
		productID, areaID).Scan(
		&existing.ID, &existing.ProductID, &existing.AreaID,
		&existing.ForGeneral, &existing.ForModern, &existing.ForHoreca,
		&existing.ForTypeA, &existing.ForTypeB, &existing.ForTypeC,
		&existing.IsActive, &existing.CreatedAt, &existing.UpdatedAt,
	)

	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			return nil, domainerr.NewOperation("product.visibility_lookup", err)
		}

		v := product.NewVisibility(productID, areaID,
			boolOr(patch.ForGeneral, false), boolOr(patch.ForModern, false), boolOr(patch.ForHoreca, false),
			boolOr(patch.ForTypeA, false), boolOr(patch.ForTypeB, false), boolOr(patch.ForTypeC, false))
		if _, err := conn.Exec(ctx,
			`INSERT INTO product_visibility (id, product_id, area_id, for_general, for_modern, for_horeca, for_type_a, for_type_b, for_type_c, is_active, created_at, updated_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
			v.ID, v.ProductID, v.AreaID,
			v.ForGeneral, v.ForModern, v.ForHoreca, v.ForTypeA, v.ForTypeB, v.ForTypeC,
			v.IsActive, v.CreatedAt, v.UpdatedAt,
		); err != nil {
			return nil, translatePgError(err, "product.visibility_add", "product visibility", "area_id", strOrGlobal(areaID))
		}
		return v, nil
	}

	if patch.ForGeneral != nil {
		existing.ForGeneral = *patch.ForGeneral
	}
	if patch.ForModern != nil {
		existing.ForModern = *patch.ForModern
	}
	if patch.ForHoreca != nil {
		existing.ForHoreca = *patch.ForHoreca
	}
	if patch.ForTypeA != nil {
		existing.ForTypeA = *patch.ForTypeA
	}
	if patch.ForTypeB != nil {
		existing.ForTypeB = *patch.ForTypeB
	}
	if patch.ForTypeC != nil {
		existing.ForTypeC = *patch.ForTypeC
	}
	existing.UpdatedAt = time.Now()

	if _, err := conn.Exec(ctx,
		`UPDATE product_visibility
		 SET for_general = $2, for_modern = $3, for_horeca = $4, for_type_a = $5, for_type_b = $6, for_type_c = $7, updated_at = $8
		 WHERE id = $1`,
		existing.ID,
		existing.ForGeneral, existing.ForModern, existing.ForHoreca,
		existing.ForTypeA, existing.ForTypeB, existing.ForTypeC,
		existing.UpdatedAt,
	); err != nil {
		return nil, domainerr.NewOperation("product.visibility_update", err)
	}

	return existing, nil
}

// RemoveVisibility implements product.Repository.RemoveVisibility
func (r *PostgresProductRepository) RemoveVisibility(ctx context.Context, productID string, areaID *string) error {
	conn, err := r.db.GetCompanyConnection(ctx)
	if err != nil {
		return fmt.Errorf("failed to get connection: %w", err)
	}
	defer conn.Release()

	return removeVisibilityRow(ctx, conn, "product_visibility", "product_id", productID, areaID)
}

// ListVisibility implements product.Repository.ListVisibility
func (r *PostgresProductRepository) ListVisibility(ctx context.Context, productID string) ([]*product.Visibility, error) {
	conn, err := r.db.GetCompanyConnection(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get connection: %w", err)
	}
	defer conn.Release()

	rows, err := conn.Query(ctx,
		`SELECT id, product_id, area_id, for_general, for_modern, for_horeca, for_type_a, for_type_b, for_type_c, is_active, created_at, updated_at
		 FROM product_visibility WHERE product_id = $1 AND is_active = true`,
		productID)
	if err != nil {
		return nil, domainerr.NewOperation("product.list_visibility", err)
	}
	defer rows.Close()

	var visibilities []*product.Visibility
	for rows.Next() {
		v := &product.Visibility{}
		if err := rows.Scan(
			&v.ID, &v.ProductID, &v.AreaID,
			&v.ForGeneral, &v.ForModern, &v.ForHoreca,
			&v.ForTypeA, &v.ForTypeB, &v.ForTypeC,
			&v.IsActive, &v.CreatedAt, &v.UpdatedAt,
		); err != nil {
			return nil, domainerr.NewOperation("product.list_visibility", err)
		}
		visibilities = append(visibilities, v)
	}
	if err := rows.Err(); err != nil {
		return nil, domainerr.NewOperation("product.list_visibility", err)
	}

	return visibilities, nil
}

// ResolvePrice implements product.Repository.ResolvePrice. Among the active
// price rows whose area appears in the shop's chain the most specific level
// wins; when none matches, the global (NULL area) row is the fallback.
func (r *PostgresProductRepository) ResolvePrice(ctx context.Context, productID string, chain area.Chain) (*product.ResolvedPrice, error) {
	conn, err := r.db.GetCompanyConnection(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get connection: %w", err)
	}
	defer conn.Release()

	return resolvePriceFrom(ctx, conn, productID, chain)
}

// resolvePriceFrom runs the two-step lookup: the chain query lets
// get_area_priority pick the most specific matching level, and only a full
// chain miss consults the global NULL-area row.
func resolvePriceFrom(ctx context.Context, conn execQuerier, productID string, chain area.Chain) (*product.ResolvedPrice, error) {
	resolved := &product.ResolvedPrice{}
	var payload []byte
	var err error

	chainIDs := chain.IDs()
	if len(chainIDs) > 0 {
		err = conn.QueryRow(ctx,
			`SELECT pp.product_id, pp.area_id, pp.mrp, p.gst_rate, pp.margins, pp.min_order_quantity
			 FROM product_prices pp
			 JOIN products p ON p.id = pp.product_id
			 JOIN areas a ON a.id = pp.area_id
			 WHERE pp.product_id = $1 AND pp.area_id = ANY($2) AND pp.is_active = true
			 ORDER BY get_area_priority(a.type) ASC
			 LIMIT 1`,
			productID, chainIDs).Scan(
			&resolved.ProductID, &resolved.AreaID, &resolved.MRP,
			&resolved.GSTRate, &payload, &resolved.MinOrderQuantity,
		)
		if err == nil {
			if err := unmarshalMargins(payload, &resolved.Margins); err != nil {
				return nil, domainerr.NewOperation("product.resolve_price", err)
			}
			return resolved, nil
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			return nil, domainerr.NewOperation("product.resolve_price", err)
		}
	}

	err = conn.QueryRow(ctx,
		`SELECT pp.product_id, pp.area_id, pp.mrp, p.gst_rate, pp.margins, pp.min_order_quantity
		 FROM product_prices pp
		 JOIN products p ON p.id = pp.product_id
		 WHERE pp.product_id = $1 AND pp.area_id IS NULL AND pp.is_active = true`,
		productID).Scan(
		&resolved.ProductID, &resolved.AreaID, &resolved.MRP,
		&resolved.GSTRate, &payload, &resolved.MinOrderQuantity,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainerr.NewNotFound("product price", productID)
		}
		return nil, domainerr.NewOperation("product.resolve_price", err)
	}

	if err := unmarshalMargins(payload, &resolved.Margins); err != nil {
		return nil, domainerr.NewOperation("product.resolve_price", err)
	}

	return resolved, nil
}

func boolOr(b *bool, fallback bool) bool {
	if b != nil {
		return *b
	}
	return fallback
}
