package data

import (
	"context"
	"database/sql"

	"github.com/target/chat-portal/internal/migrate"
)

// RunMigrations applies the gateway schema by delegating to the migrate package.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	return migrate.Run(ctx, db)
}
