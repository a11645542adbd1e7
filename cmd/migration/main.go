package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"

	"github.com/shah-dhwanil/gaatha-salesforce-sub000/internal/infrastructure/database"
)

// Applies the public migrations and then brings every registered company
// schema up to date. Run after deploying a release that changes the tenant
// table set; onboarding migrates new schemas on its own.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file found: %v", err)
	}

	cfg := database.NewPostgresConfigFromEnv()
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := database.RunPublicMigrations(cfg.URL()); err != nil {
		log.Fatalf("failed to run public migrations: %v", err)
	}

	schemas, err := listCompanySchemas(db)
	if err != nil {
		log.Fatalf("failed to list company schemas: %v", err)
	}

	for _, schema := range schemas {
		if err := database.RunTenantMigrations(cfg.URL(), schema); err != nil {
			log.Fatalf("failed to migrate schema %s: %v", schema, err)
		}
	}

	log.Printf("migrated %d company schemas", len(schemas))
}

func listCompanySchemas(db *database.PostgresDB) ([]string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	conn, err := db.GetConnection(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	rows, err := conn.Query(ctx, `SELECT schema_name FROM companies WHERE is_active = true ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var schemas []string
	for rows.Next() {
		var schema string
		if err := rows.Scan(&schema); err != nil {
			return nil, err
		}
		schemas = append(schemas, schema)
	}
	return schemas, rows.Err()
}
