package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"parts-inventory/pkg/importer"

	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	var filePath string
	dryRun := false
	maxErrors := 0

	for _, arg := range os.Args[1:] {
		if strings.HasPrefix(arg, "--file=") {
			filePath = strings.TrimPrefix(arg, "--file=")
		} else if strings.HasPrefix(arg, "--max-errors=") {
			if n, err := strconv.Atoi(strings.TrimPrefix(arg, "--max-errors=")); err == nil {
				maxErrors = n
			}
		} else if arg == "--dry-run" {
			dryRun = true
		}
	}

	if filePath == "" {
		fmt.Println("Usage: import_csv --file=parts.csv [--dry-run] [--max-errors=N]")
		fmt.Printf("Expected CSV header: %s\n", strings.Join(importer.Header(), ","))
		os.Exit(1)
	}

	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		log.Fatal("DB_DSN environment variable is required")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	f, err := os.Open(filePath)
	if err != nil {
		log.Fatalf("Failed to open %s: %v", filePath, err)
	}
	defer f.Close()

	sum, err := importer.ImportCSV(ctx, pool, f, importer.Options{
		DryRun:    dryRun,
		MaxErrors: maxErrors,
	})
	if err != nil {
		log.Fatalf("Import failed: %v", err)
	}

	fmt.Printf("Inserted: %d, Skipped: %d, Errors: %d (dry-run: %v)\n",
		sum.Inserted, sum.Skipped, sum.Errors, sum.DryRun)
	for _, e := range sum.Samples {
		fmt.Printf("  row %d: %s\n", e.Row, e.Message)
	}
}
