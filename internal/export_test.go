package internal

import (
	"testing"
	"time"

	"parts-inventory/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestExportRecordMatchesColumnOrder(t *testing.T) {
	p := models.Part{
		ID:          7,
		Category:    "Resistor",
		Subcategory: "Metal film",
		Description: "10k 1%",
		Package:     "0805",
		ContainerID: "B12",
		Quantity:    42,
		Notes:       "reel",
		// URLs are part of the row model but not of the export
		DatasheetURL: "https://example.com/ds.pdf",
		UpdatedAt:    time.Date(2025, 3, 1, 12, 30, 0, 0, time.UTC),
	}

	record := exportRecord(p)
	assert.Len(t, record, len(exportColumns))
	assert.Equal(t, []string{
		"7", "Resistor", "Metal film", "10k 1%", "0805", "B12", "42", "reel",
		"2025-03-01T12:30:00Z",
	}, record)
}

func TestExportColumns(t *testing.T) {
	assert.Equal(t, []string{
		"id", "category", "subcategory", "description", "package",
		"container_id", "quantity", "notes", "updated_at",
	}, exportColumns)
}
