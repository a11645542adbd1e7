package database

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// RunPublicMigrations applies the public-schema migrations (the company
// registry and shared identity tables).
func RunPublicMigrations(dbURL string) error {
	sourceURL := fmt.Sprintf("file://%s", filepath.Join("migrations", "public"))

	m, err := migrate.New(sourceURL, dbURL)
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("failed to apply public migrations: %w", err)
	}

	log.Printf("public migrations applied")
	return nil
}

// RunTenantMigrations applies the tenant table set to one company schema.
// Called on company onboarding and by the migration command for every
// registered schema.
func RunTenantMigrations(dbURL, schema string) error {
	sourceURL := fmt.Sprintf("file://%s", filepath.Join("migrations", "tenant"))

	// Scope the migration connection to the target schema. The schema table
	// for migrate itself also lands inside the tenant schema this way.
	url := fmt.Sprintf("%s&x-migrations-table=schema_migrations&search_path=%s", dbURL, schema)

	m, err := migrate.New(sourceURL, url)
	if err != nil {
		return fmt.Errorf("failed to create migrator for schema %s: %w", schema, err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("failed to apply tenant migrations to %s: %w", schema, err)
	}

	log.Printf("tenant migrations applied to schema %s", schema)
	return nil
}
