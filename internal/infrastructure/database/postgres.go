package database

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shah-dhwanil/gaatha-salesforce-sub000/pkg/tenant"
)

// PostgresConfig holds the PostgreSQL connection settings
type PostgresConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	Database        string
	SSLMode         string
	MaxConnections  int32
	MinConnections  int32
	MaxConnLifetime time.Duration
	MaxConnIdleTime time.Duration
}

// NewPostgresConfigFromEnv builds a config from environment variables
func NewPostgresConfigFromEnv() *PostgresConfig {
	port, _ := strconv.Atoi(getEnv("DB_PORT", "5432"))
	maxConns, _ := strconv.Atoi(getEnv("DB_MAX_CONNECTIONS", "10"))
	minConns, _ := strconv.Atoi(getEnv("DB_MIN_CONNECTIONS", "2"))
	maxLifetime, _ := strconv.Atoi(getEnv("DB_MAX_LIFETIME", "3600"))
	maxIdle, _ := strconv.Atoi(getEnv("DB_MAX_IDLE_TIME", "1800"))

	return &PostgresConfig{
		Host:            getEnv("DB_HOST", "localhost"),
		Port:            port,
		User:            getEnv("DB_USER", "postgres"),
		Password:        getEnv("DB_PASSWORD", "postgres"),
		Database:        getEnv("DB_NAME", "gaatha_salesforce"),
		SSLMode:         getEnv("DB_SSL_MODE", "disable"),
		MaxConnections:  int32(maxConns),
		MinConnections:  int32(minConns),
		MaxConnLifetime: time.Duration(maxLifetime) * time.Second,
		MaxConnIdleTime: time.Duration(maxIdle) * time.Second,
	}
}

// ConnectionString renders the config as a pgx connection string
func (c *PostgresConfig) ConnectionString() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode,
	)
}

// URL renders the config as a database URL, used by the migration runner
func (c *PostgresConfig) URL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Database, c.SSLMode)
}

// PostgresDB manages the connection pool and per-company schema selection
type PostgresDB struct {
	pool   *pgxpool.Pool
	config *PostgresConfig
}

// NewPostgresDB creates the pool and verifies connectivity
func NewPostgresDB(cfg *PostgresConfig) (*PostgresDB, error) {
	connString := os.Getenv("DATABASE_URL")
	if connString == "" {
		connString = cfg.ConnectionString()
	}

	poolConfig, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("failed to parse pool config: %w", err)
	}

	poolConfig.MaxConns = cfg.MaxConnections
	poolConfig.MinConns = cfg.MinConnections
	poolConfig.MaxConnLifetime = cfg.MaxConnLifetime
	poolConfig.MaxConnIdleTime = cfg.MaxConnIdleTime
	poolConfig.HealthCheckPeriod = 1 * time.Minute

	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to verify database connection: %w", err)
	}

	return &PostgresDB{pool: pool, config: cfg}, nil
}

// GetConnection returns a pooled connection bound to the public schema
func (db *PostgresDB) GetConnection(ctx context.Context) (*pgxpool.Conn, error) {
	conn, err := db.pool.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire connection from pool: %w", err)
	}

	if _, err := conn.Exec(ctx, "SET search_path TO public"); err != nil {
		conn.Release()
		return nil, fmt.Errorf("failed to set public schema: %w", err)
	}

	return conn, nil
}

// GetCompanyConnection returns a connection with the search path set to the
// schema of the company bound to ctx. Pooled connections keep session state
// across check-in, so the path is re-asserted on every acquire rather than
// trusted from a previous use.
func (db *PostgresDB) GetCompanyConnection(ctx context.Context) (*pgxpool.Conn, error) {
	conn, err := db.pool.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire connection from pool: %w", err)
	}

	companyID := tenant.GetCompanyIDFromContext(ctx)
	if companyID == "" {
		conn.Release()
		return nil, tenant.ErrCompanyNotSpecified
	}

	var schema string
	err = conn.QueryRow(ctx,
		"SELECT schema_name FROM public.companies WHERE id = $1 AND is_active = true",
		companyID).Scan(&schema)
	if err != nil {
		conn.Release()
		if err == pgx.ErrNoRows {
			return nil, tenant.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("failed to resolve company schema: %w", err)
	}

	if _, err := conn.Exec(ctx, fmt.Sprintf("SET search_path TO %s, public", pgx.Identifier{schema}.Sanitize())); err != nil {
		conn.Release()
		return nil, fmt.Errorf("failed to set company schema: %w", err)
	}

	return conn, nil
}

// CreateCompanySchema creates the schema for a newly registered company
func (db *PostgresDB) CreateCompanySchema(ctx context.Context, schema string) error {
	conn, err := db.pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("failed to acquire connection from pool: %w", err)
	}
	defer conn.Release()

	if _, err := conn.Exec(ctx, fmt.Sprintf("CREATE SCHEMA IF NOT EXISTS %s", pgx.Identifier{schema}.Sanitize())); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// DropCompanySchema removes a schema, used to roll back failed onboarding
func (db *PostgresDB) DropCompanySchema(ctx context.Context, schema string) error {
	conn, err := db.pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("failed to acquire connection from pool: %w", err)
	}
	defer conn.Release()

	if _, err := conn.Exec(ctx, fmt.Sprintf("DROP SCHEMA IF EXISTS %s CASCADE", pgx.Identifier{schema}.Sanitize())); err != nil {
		return fmt.Errorf("failed to drop schema: %w", err)
	}

	return nil
}

// Config exposes the active configuration
func (db *PostgresDB) Config() *PostgresConfig {
	return db.config
}

// Close shuts the pool down
func (db *PostgresDB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// Transaction runs fn inside a transaction on a company-scoped connection.
// Any error from fn rolls the whole transaction back.
func (db *PostgresDB) Transaction(ctx context.Context, fn func(tx pgx.Tx) error) error {
	conn, err := db.GetCompanyConnection(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	tx, err := conn.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err := fn(tx); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// PublicTransaction runs fn inside a transaction on the public schema
func (db *PostgresDB) PublicTransaction(ctx context.Context, fn func(tx pgx.Tx) error) error {
	conn, err := db.GetConnection(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	tx, err := conn.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err := fn(tx); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// getEnv returns an environment variable value or a default
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
