package store

import (
	"context"
	"strings"

	"parts-inventory/internal/models"
)

// Ensure operations are idempotent insert-if-absent writes on the lookup
// tables. Empty (or whitespace-only) values are a silent no-op, so callers
// can pass optional form fields straight through.

func (s *Store) EnsureContainer(ctx context.Context, code string) error {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil
	}
	_, err := s.DB.ExecContext(ctx,
		"INSERT INTO containers (code, name) VALUES ($1, $1) ON CONFLICT (code) DO NOTHING", code)
	return err
}

func (s *Store) EnsureCategory(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}
	_, err := s.DB.ExecContext(ctx,
		"INSERT INTO categories (name) VALUES ($1) ON CONFLICT (name) DO NOTHING", name)
	return err
}

func (s *Store) EnsureSubcategory(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}
	_, err := s.DB.ExecContext(ctx,
		"INSERT INTO subcategories (name) VALUES ($1) ON CONFLICT (name) DO NOTHING", name)
	return err
}

// ListContainers returns every known container, including ones no part
// references anymore. The edit-cell dropdown uses this.
func (s *Store) ListContainers(ctx context.Context) ([]models.Container, error) {
	rows, err := s.DB.QueryContext(ctx, "SELECT code, name FROM containers ORDER BY code")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	containers := []models.Container{}
	for rows.Next() {
		var c models.Container
		if err := rows.Scan(&c.Code, &c.Name); err != nil {
			return nil, err
		}
		containers = append(containers, c)
	}
	return containers, rows.Err()
}

func (s *Store) ListCategories(ctx context.Context) ([]string, error) {
	return s.listNames(ctx, "SELECT name FROM categories ORDER BY name")
}

func (s *Store) ListSubcategories(ctx context.Context) ([]string, error) {
	return s.listNames(ctx, "SELECT name FROM subcategories ORDER BY name")
}

// CategoriesInUse returns the distinct categories that appear on at least
// one part. Search filters reflect real inventory, not the lookup tables.
func (s *Store) CategoriesInUse(ctx context.Context) ([]string, error) {
	return s.listNames(ctx, `
		SELECT DISTINCT btrim(category) AS name
		FROM parts
		WHERE btrim(category) <> ''
		ORDER BY name`)
}

// ContainersInUse returns the distinct container codes that appear on at
// least one part.
func (s *Store) ContainersInUse(ctx context.Context) ([]string, error) {
	return s.listNames(ctx, `
		SELECT DISTINCT btrim(container_id) AS code
		FROM parts
		WHERE btrim(container_id) <> ''
		ORDER BY code`)
}

func (s *Store) listNames(ctx context.Context, sqlStr string) ([]string, error) {
	rows, err := s.DB.QueryContext(ctx, sqlStr)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	names := []string{}
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, err
		}
		names = append(names, n)
	}
	return names, rows.Err()
}
