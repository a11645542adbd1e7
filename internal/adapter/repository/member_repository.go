package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/shah-dhwanil/gaatha-salesforce-sub000/internal/domain/domainerr"
	"github.com/shah-dhwanil/gaatha-salesforce-sub000/internal/domain/member"
	"github.com/shah-dhwanil/gaatha-salesforce-sub000/internal/infrastructure/database"
)

// PostgresMemberRepository implements member.Repository against the public
// schema
type PostgresMemberRepository struct {
	db *database.PostgresDB
}

// NewPostgresMemberRepository creates a new PostgresMemberRepository
func NewPostgresMemberRepository(db *database.PostgresDB) *PostgresMemberRepository {
	return &PostgresMemberRepository{db: db}
}

const memberColumns = "id, name, email, password_hash, phone, is_active, created_at, updated_at"

func (r *PostgresMemberRepository) findByQuery(ctx context.Context, query, key string) (*member.Member, error) {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get connection: %w", err)
	}
	defer conn.Release()

	m := &member.Member{}
	err = conn.QueryRow(ctx, query, key).Scan(
		&m.ID, &m.Name, &m.Email, &m.PasswordHash, &m.Phone, &m.IsActive, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainerr.NewNotFound("member", key)
		}
		return nil, domainerr.NewOperation("member.find", err)
	}

	return m, nil
}

// Create implements member.Repository.Create
func (r *PostgresMemberRepository) Create(ctx context.Context, m *member.Member) error {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return fmt.Errorf("failed to get connection: %w", err)
	}
	defer conn.Release()

	_, err = conn.Exec(ctx,
		`INSERT INTO members (`+memberColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		m.ID, m.Name, m.Email, m.PasswordHash, m.Phone, m.IsActive, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		return translatePgError(err, "member.create", "member", "email", m.Email)
	}

	return nil
}

// FindByID implements member.Repository.FindByID
func (r *PostgresMemberRepository) FindByID(ctx context.Context, id string) (*member.Member, error) {
	return r.findByQuery(ctx,
		"SELECT "+memberColumns+" FROM members WHERE id = $1 AND is_active = true", id)
}

// FindByEmail implements member.Repository.FindByEmail
func (r *PostgresMemberRepository) FindByEmail(ctx context.Context, email string) (*member.Member, error) {
	return r.findByQuery(ctx,
		"SELECT "+memberColumns+" FROM members WHERE email = $1 AND is_active = true", email)
}
