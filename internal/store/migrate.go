package store

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"sort"

	dbfs "parts-inventory/db"
)

// Migrate applies the embedded migration files in lexical order. Every
// statement uses IF NOT EXISTS, so running it repeatedly is safe; the server
// calls it at startup the same way the test helper does.
func Migrate(ctx context.Context, db *sql.DB) error {
	entries, err := fs.ReadDir(dbfs.Migrations, "migrations")
	if err != nil {
		return fmt.Errorf("read migrations: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	for _, name := range names {
		content, err := fs.ReadFile(dbfs.Migrations, "migrations/"+name)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", name, err)
		}
		if _, err := db.ExecContext(ctx, string(content)); err != nil {
			return fmt.Errorf("apply migration %s: %w", name, err)
		}
	}
	return nil
}
