package postgres

import (
	"database/sql"
	_ "embed"
	"fmt"
)

//go:embed schema/schema.sql
var schemaSQL string

// RunMigrations creates the games table when it does not exist yet.
func RunMigrations(db *sql.DB) error {
	if _, err := db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("failed to execute schema.sql: %w", err)
	}
	return nil
}
