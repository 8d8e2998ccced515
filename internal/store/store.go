// Package store owns the relational schema and every read/write the
// application performs. Handlers never touch SQL directly.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"parts-inventory/internal/models"
)

var (
	// ErrNotFound is returned when an operation references a part id that
	// does not exist.
	ErrNotFound = errors.New("part not found")
	// ErrInvalidField is returned when an edit names a field outside the
	// allow-list.
	ErrInvalidField = errors.New("invalid field")
	// ErrEmptyRequired is returned when a create carries an empty category
	// or description after trimming.
	ErrEmptyRequired = errors.New("category and description are required")
)

// editableColumns is the fixed allow-list of inline-editable fields, mapped
// to their column names. Field names arrive from the URL, so nothing outside
// this map ever reaches a statement.
var editableColumns = map[string]string{
	"category":      "category",
	"subcategory":   "subcategory",
	"description":   "description",
	"package":       "package",
	"container_id":  "container_id",
	"quantity":      "quantity",
	"notes":         "notes",
	"datasheet_url": "datasheet_url",
	"pinout_url":    "pinout_url",
}

// EditableField reports whether field may be edited inline.
func EditableField(field string) bool {
	_, ok := editableColumns[field]
	return ok
}

// Filter narrows a part listing. Zero values mean "no filter"; string
// values are trimmed before use.
type Filter struct {
	Q           string
	Category    string
	ContainerID string
	Limit       int
}

type Store struct {
	DB *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{DB: db}
}

const partColumns = `id, category, subcategory, description, package, container_id,
	       quantity, notes, datasheet_url, pinout_url, updated_at`

func scanPart(row interface{ Scan(...any) error }) (models.Part, error) {
	var p models.Part
	err := row.Scan(&p.ID, &p.Category, &p.Subcategory, &p.Description, &p.Package,
		&p.ContainerID, &p.Quantity, &p.Notes, &p.DatasheetURL, &p.PinoutURL, &p.UpdatedAt)
	return p, err
}

// ListParts returns parts matching all provided filters, most recently
// updated first, ties broken by descending id. An unmatched filter yields an
// empty slice, never an error.
func (s *Store) ListParts(ctx context.Context, f Filter) ([]models.Part, error) {
	clauses := []string{}
	args := []interface{}{}
	arg := 1

	if q := strings.TrimSpace(f.Q); q != "" {
		clauses = append(clauses, fmt.Sprintf(
			"(description ILIKE $%d OR notes ILIKE $%d OR subcategory ILIKE $%d OR package ILIKE $%d)",
			arg, arg, arg, arg))
		args = append(args, "%"+q+"%")
		arg++
	}
	if c := strings.TrimSpace(f.Category); c != "" {
		clauses = append(clauses, fmt.Sprintf("category = $%d", arg))
		args = append(args, c)
		arg++
	}
	if c := strings.TrimSpace(f.ContainerID); c != "" {
		clauses = append(clauses, fmt.Sprintf("container_id = $%d", arg))
		args = append(args, c)
		arg++
	}

	sqlStr := "SELECT " + partColumns + " FROM parts"
	if len(clauses) > 0 {
		sqlStr += " WHERE " + strings.Join(clauses, " AND ")
	}
	limit := f.Limit
	if limit <= 0 {
		limit = 500
	}
	sqlStr += fmt.Sprintf(" ORDER BY updated_at DESC, id DESC LIMIT %d", limit)

	rows, err := s.DB.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	parts := []models.Part{}
	for rows.Next() {
		p, err := scanPart(rows)
		if err != nil {
			return nil, err
		}
		parts = append(parts, p)
	}
	return parts, rows.Err()
}

// GetPart fetches a single part by id.
func (s *Store) GetPart(ctx context.Context, id int64) (models.Part, error) {
	p, err := scanPart(s.DB.QueryRowContext(ctx,
		"SELECT "+partColumns+" FROM parts WHERE id = $1", id))
	if err == sql.ErrNoRows {
		return models.Part{}, ErrNotFound
	}
	return p, err
}

// CreatePart ensures the referenced lookup entries exist, then inserts the
// part. Quantity is clamped to zero; category and description must be
// non-empty after trimming (the schema enforces the same with CHECK
// constraints, so direct SQL cannot bypass it either).
//
// The ensure calls and the insert are separate statements: a crash in
// between leaves a lookup row with no referencing part, which is accepted.
func (s *Store) CreatePart(ctx context.Context, in models.PartCreate) (models.Part, error) {
	in.Category = strings.TrimSpace(in.Category)
	in.Description = strings.TrimSpace(in.Description)
	if in.Category == "" || in.Description == "" {
		return models.Part{}, ErrEmptyRequired
	}

	if err := s.EnsureCategory(ctx, in.Category); err != nil {
		return models.Part{}, err
	}
	if err := s.EnsureContainer(ctx, in.ContainerID); err != nil {
		return models.Part{}, err
	}
	if err := s.EnsureSubcategory(ctx, in.Subcategory); err != nil {
		return models.Part{}, err
	}

	qty := in.Quantity
	if qty < 0 {
		qty = 0
	}

	p, err := scanPart(s.DB.QueryRowContext(ctx, `
		INSERT INTO parts (category, subcategory, description, package, container_id,
		                   quantity, notes, datasheet_url, pinout_url, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,now())
		RETURNING `+partColumns,
		in.Category, strings.TrimSpace(in.Subcategory), in.Description,
		strings.TrimSpace(in.Package), strings.TrimSpace(in.ContainerID),
		qty, strings.TrimSpace(in.Notes), strings.TrimSpace(in.DatasheetURL),
		strings.TrimSpace(in.PinoutURL)))
	if err != nil {
		return models.Part{}, err
	}
	return p, nil
}

// UpdatePartField writes a single allow-listed field plus updated_at and
// returns the refreshed part. Values are trimmed; quantity is parsed and
// clamped (unparsable input stores zero); lookup-backed fields have their
// lookup entry ensured first.
func (s *Store) UpdatePartField(ctx context.Context, id int64, field, value string) (models.Part, error) {
	col, ok := editableColumns[field]
	if !ok {
		return models.Part{}, ErrInvalidField
	}

	value = strings.TrimSpace(value)

	var arg interface{} = value
	switch field {
	case "quantity":
		arg = NormalizeQuantity(value)
	case "container_id":
		if err := s.EnsureContainer(ctx, value); err != nil {
			return models.Part{}, err
		}
	case "category":
		if err := s.EnsureCategory(ctx, value); err != nil {
			return models.Part{}, err
		}
	case "subcategory":
		if err := s.EnsureSubcategory(ctx, value); err != nil {
			return models.Part{}, err
		}
	}

	p, err := scanPart(s.DB.QueryRowContext(ctx,
		"UPDATE parts SET "+col+" = $1, updated_at = now() WHERE id = $2 RETURNING "+partColumns,
		arg, id))
	if err == sql.ErrNoRows {
		return models.Part{}, ErrNotFound
	}
	if err != nil {
		return models.Part{}, err
	}
	return p, nil
}

// DeletePart deletes a part by id. Deletion is idempotent: a missing id is
// not an error.
func (s *Store) DeletePart(ctx context.Context, id int64) error {
	_, err := s.DB.ExecContext(ctx, "DELETE FROM parts WHERE id = $1", id)
	return err
}

// NormalizeQuantity parses a quantity value the way every write path does:
// empty or unparsable input becomes zero, negatives are clamped to zero.
func NormalizeQuantity(value string) int {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	if n < 0 {
		return 0
	}
	return n
}
