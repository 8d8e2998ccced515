// Package importer bulk-loads parts from CSV. It is used by the
// POST /imports/csv handler and the import_csv tool.
package importer

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"parts-inventory/internal/models"
	"parts-inventory/internal/store"
)

// Options configures a CSV import run.
type Options struct {
	DryRun    bool
	MaxErrors int // default 50
}

// RowError describes a rejected CSV row.
type RowError struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

// Summary contains the import statistics.
type Summary struct {
	Inserted int        `json:"inserted"`
	Skipped  int        `json:"skipped"`
	Errors   int        `json:"errors"`
	Samples  []RowError `json:"error_samples,omitempty"`
	DryRun   bool       `json:"dry_run"`
}

// expectedHeader is the required CSV column set, in order.
var expectedHeader = []string{
	"category", "subcategory", "description", "package", "container_id",
	"quantity", "notes", "datasheet_url", "pinout_url",
}

// Header returns the expected CSV header line.
func Header() []string {
	out := make([]string, len(expectedHeader))
	copy(out, expectedHeader)
	return out
}

// ImportCSV reads rows from r and inserts them in a single transaction.
// Row-level failures are counted and sampled rather than aborting, up to
// opts.MaxErrors; with DryRun the transaction is rolled back after the full
// pass, so the summary reflects what a real run would do.
func ImportCSV(ctx context.Context, pool *pgxpool.Pool, r io.Reader, opts Options) (*Summary, error) {
	maxErrors := opts.MaxErrors
	if maxErrors <= 0 {
		maxErrors = 50
	}

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read CSV header: %w", err)
	}
	if !headerMatches(header) {
		return nil, fmt.Errorf("CSV header mismatch: expected %v, got %v", expectedHeader, header)
	}

	tx, err := pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin import transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	sum := &Summary{DryRun: opts.DryRun}
	rowNum := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		rowNum++
		if err != nil {
			if recordError(sum, rowNum, err.Error()) >= maxErrors {
				return sum, fmt.Errorf("aborted after %d row errors", sum.Errors)
			}
			continue
		}

		in, perr := ParseRow(record)
		if perr != nil {
			if recordError(sum, rowNum, perr.Error()) >= maxErrors {
				return sum, fmt.Errorf("aborted after %d row errors", sum.Errors)
			}
			continue
		}

		// Nested Begin is a savepoint, so one bad row does not poison the
		// surrounding transaction.
		sub, err := tx.Begin(ctx)
		if err != nil {
			return sum, fmt.Errorf("savepoint: %w", err)
		}
		if err := insertPart(ctx, sub, in); err != nil {
			sub.Rollback(ctx)
			if recordError(sum, rowNum, err.Error()) >= maxErrors {
				return sum, fmt.Errorf("aborted after %d row errors", sum.Errors)
			}
			continue
		}
		if err := sub.Commit(ctx); err != nil {
			return sum, fmt.Errorf("release savepoint: %w", err)
		}
		sum.Inserted++
	}

	if opts.DryRun {
		return sum, nil
	}
	if err := tx.Commit(ctx); err != nil {
		return sum, fmt.Errorf("commit import: %w", err)
	}
	return sum, nil
}

// ParseRow converts one CSV record into a part, applying the same
// normalization as the add-part form: trimmed fields, required category and
// description, quantity coerced and clamped.
func ParseRow(record []string) (models.PartCreate, error) {
	if len(record) != len(expectedHeader) {
		return models.PartCreate{}, fmt.Errorf("expected %d columns, got %d", len(expectedHeader), len(record))
	}
	in := models.PartCreate{
		Category:     strings.TrimSpace(record[0]),
		Subcategory:  strings.TrimSpace(record[1]),
		Description:  strings.TrimSpace(record[2]),
		Package:      strings.TrimSpace(record[3]),
		ContainerID:  strings.TrimSpace(record[4]),
		Quantity:     store.NormalizeQuantity(record[5]),
		Notes:        strings.TrimSpace(record[6]),
		DatasheetURL: strings.TrimSpace(record[7]),
		PinoutURL:    strings.TrimSpace(record[8]),
	}
	if in.Category == "" || in.Description == "" {
		return models.PartCreate{}, fmt.Errorf("category and description are required")
	}
	return in, nil
}

func insertPart(ctx context.Context, tx pgx.Tx, in models.PartCreate) error {
	if in.Category != "" {
		if _, err := tx.Exec(ctx,
			"INSERT INTO categories (name) VALUES ($1) ON CONFLICT (name) DO NOTHING", in.Category); err != nil {
			return err
		}
	}
	if in.ContainerID != "" {
		if _, err := tx.Exec(ctx,
			"INSERT INTO containers (code, name) VALUES ($1, $1) ON CONFLICT (code) DO NOTHING", in.ContainerID); err != nil {
			return err
		}
	}
	if in.Subcategory != "" {
		if _, err := tx.Exec(ctx,
			"INSERT INTO subcategories (name) VALUES ($1) ON CONFLICT (name) DO NOTHING", in.Subcategory); err != nil {
			return err
		}
	}

	_, err := tx.Exec(ctx, `
		INSERT INTO parts (category, subcategory, description, package, container_id,
		                   quantity, notes, datasheet_url, pinout_url, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,now())`,
		in.Category, in.Subcategory, in.Description, in.Package, in.ContainerID,
		in.Quantity, in.Notes, in.DatasheetURL, in.PinoutURL)
	return err
}

func recordError(sum *Summary, row int, msg string) int {
	sum.Errors++
	sum.Skipped++
	if len(sum.Samples) < 10 {
		sum.Samples = append(sum.Samples, RowError{Row: row, Message: msg})
	}
	return sum.Errors
}

func headerMatches(header []string) bool {
	if len(header) != len(expectedHeader) {
		return false
	}
	for i, h := range header {
		if !strings.EqualFold(strings.TrimSpace(h), expectedHeader[i]) {
			return false
		}
	}
	return true
}
