package database

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// Referential integrity lives in the schema: deleting a class removes its
// students and teacher through ON DELETE CASCADE, and the UNIQUE constraint
// on teachers.class_id keeps the class/teacher relationship one-to-one.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS classes (
		id BIGSERIAL PRIMARY KEY,
		name VARCHAR(130) NOT NULL,
		stage TEXT NOT NULL,
		year TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS students (
		id BIGSERIAL PRIMARY KEY,
		name VARCHAR(130) NOT NULL,
		guardian_email TEXT NOT NULL,
		guardian_phone TEXT NOT NULL,
		class_id BIGINT NOT NULL REFERENCES classes(id) ON DELETE CASCADE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS teachers (
		id BIGSERIAL PRIMARY KEY,
		name VARCHAR(130) NOT NULL,
		email TEXT NOT NULL,
		phone TEXT NOT NULL,
		class_id BIGINT NOT NULL UNIQUE REFERENCES classes(id) ON DELETE CASCADE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
}

// EnsureSchema creates the tables on startup when they do not exist yet.
func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
