package db

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

func ConnectPostgres() *pgxpool.Pool {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Fatal(err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	db, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		log.Fatal(err)
	}

	if err := db.Ping(context.Background()); err != nil {
		log.Fatal("Postgres connection failed:", err)
	}

	log.Println("✅ Connected to PostgreSQL")

	// Initialize schema
	if err := initSchema(db); err != nil {
		log.Fatal("Failed to initialize schema:", err)
	}

	return db
}

// -------------------------------
// DOCUMENTS
// -------------------------------
// Every collection (catalog options, sessions, orders, users,
// settings) lives in one JSONB table keyed by collection + id.
const documentsTableSQL = `
	CREATE TABLE IF NOT EXISTS documents (
		collection VARCHAR(100) NOT NULL,
		id VARCHAR(100) NOT NULL,
		data JSONB NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (collection, id)
	)
`

const documentsIndexSQL = `
	CREATE INDEX IF NOT EXISTS documents_collection_created_idx
	ON documents (collection, created_at)
`

// initSchema creates or updates the database schema
func initSchema(db *pgxpool.Pool) error {
	ctx := context.Background()

	if _, err := db.Exec(ctx, documentsTableSQL); err != nil {
		return err
	}
	if _, err := db.Exec(ctx, documentsIndexSQL); err != nil {
		return err
	}

	log.Println("✅ Schema initialized successfully")
	return nil
}
