package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/shah-dhwanil/gaatha-salesforce-sub000/internal/domain/company"
	"github.com/shah-dhwanil/gaatha-salesforce-sub000/internal/domain/domainerr"
	"github.com/shah-dhwanil/gaatha-salesforce-sub000/internal/infrastructure/database"
	"github.com/shah-dhwanil/gaatha-salesforce-sub000/pkg/tenant"
)

// PostgresCompanyRepository implements company.Repository against the public
// schema and provisions tenant schemas on registration.
type PostgresCompanyRepository struct {
	db *database.PostgresDB
}

// NewPostgresCompanyRepository creates a new PostgresCompanyRepository
func NewPostgresCompanyRepository(db *database.PostgresDB) *PostgresCompanyRepository {
	return &PostgresCompanyRepository{db: db}
}

const companyColumns = "id, name, schema_name, is_active, created_at, updated_at"

// Create implements company.Repository.Create. The registry row, the schema
// and the tenant migrations succeed or fail together: a schema failure drops
// anything half-created and removes the row.
func (r *PostgresCompanyRepository) Create(ctx context.Context, c *company.Company) error {
	err := r.db.PublicTransaction(ctx, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx,
			`INSERT INTO companies (`+companyColumns+`)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			c.ID, c.Name, c.SchemaName, c.IsActive, c.CreatedAt, c.UpdatedAt,
		)
		if err != nil {
			return translatePgError(err, "company.create", "company", "name", c.Name)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if err := r.db.CreateCompanySchema(ctx, c.SchemaName); err != nil {
		r.rollbackRegistration(ctx, c)
		return domainerr.NewOperation("company.create_schema", err)
	}

	if err := database.RunTenantMigrations(r.db.Config().URL(), c.SchemaName); err != nil {
		_ = r.db.DropCompanySchema(ctx, c.SchemaName)
		r.rollbackRegistration(ctx, c)
		return domainerr.NewOperation("company.migrate_schema", err)
	}

	return nil
}

func (r *PostgresCompanyRepository) rollbackRegistration(ctx context.Context, c *company.Company) {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return
	}
	defer conn.Release()
	_, _ = conn.Exec(ctx, "DELETE FROM companies WHERE id = $1", c.ID)
}

// FindByID implements company.Repository.FindByID
func (r *PostgresCompanyRepository) FindByID(ctx context.Context, id string) (*company.Company, error) {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get connection: %w", err)
	}
	defer conn.Release()

	c := &company.Company{}
	err = conn.QueryRow(ctx,
		"SELECT "+companyColumns+" FROM companies WHERE id = $1", id).Scan(
		&c.ID, &c.Name, &c.SchemaName, &c.IsActive, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainerr.NewNotFound("company", id)
		}
		return nil, domainerr.NewOperation("company.find", err)
	}

	return c, nil
}

// List implements company.Repository.List
func (r *PostgresCompanyRepository) List(ctx context.Context, limit, offset int) ([]*company.Company, error) {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get connection: %w", err)
	}
	defer conn.Release()

	rows, err := conn.Query(ctx,
		"SELECT "+companyColumns+" FROM companies WHERE is_active = true ORDER BY name ASC LIMIT $1 OFFSET $2",
		limit, offset)
	if err != nil {
		return nil, domainerr.NewOperation("company.list", err)
	}
	defer rows.Close()

	var companies []*company.Company
	for rows.Next() {
		c := &company.Company{}
		if err := rows.Scan(&c.ID, &c.Name, &c.SchemaName, &c.IsActive, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, domainerr.NewOperation("company.list", err)
		}
		companies = append(companies, c)
	}
	if err := rows.Err(); err != nil {
		return nil, domainerr.NewOperation("company.list", err)
	}

	return companies, nil
}

// Count implements company.Repository.Count
func (r *PostgresCompanyRepository) Count(ctx context.Context) (int, error) {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get connection: %w", err)
	}
	defer conn.Release()

	var count int
	if err := conn.QueryRow(ctx,
		"SELECT COUNT(*) FROM companies WHERE is_active = true").Scan(&count); err != nil {
		return 0, domainerr.NewOperation("company.count", err)
	}
	return count, nil
}

// Deactivate implements company.Repository.Deactivate
func (r *PostgresCompanyRepository) Deactivate(ctx context.Context, id string) error {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return fmt.Errorf("failed to get connection: %w", err)
	}
	defer conn.Release()

	result, err := conn.Exec(ctx,
		"UPDATE companies SET is_active = false, updated_at = $2 WHERE id = $1 AND is_active = true",
		id, time.Now())
	if err != nil {
		return domainerr.NewOperation("company.deactivate", err)
	}
	if result.RowsAffected() == 0 {
		return domainerr.NewNotFound("company", id)
	}

	return nil
}

// ValidateCompany implements tenant.CompanyValidator for the request middleware
func (r *PostgresCompanyRepository) ValidateCompany(ctx context.Context, companyID string) error {
	c, err := r.FindByID(ctx, companyID)
	if err != nil {
		var nf *domainerr.NotFoundError
		if errors.As(err, &nf) {
			return tenant.ErrCompanyNotFound
		}
		return err
	}
	if !c.IsActive {
		return tenant.ErrCompanyNotActive
	}
	return nil
}
