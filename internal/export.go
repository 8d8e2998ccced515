package internal

import (
	"encoding/csv"
	"net/http"
	"strconv"
	"time"

	"github.com/tealeg/xlsx/v3"

	"parts-inventory/internal/models"
)

// exportColumns is the fixed export column set, in order. Datasheet and
// pinout URLs are deliberately not exported.
var exportColumns = []string{
	"id", "category", "subcategory", "description", "package",
	"container_id", "quantity", "notes", "updated_at",
}

func exportRecord(p models.Part) []string {
	return []string{
		strconv.FormatInt(p.ID, 10),
		p.Category,
		p.Subcategory,
		p.Description,
		p.Package,
		p.ContainerID,
		strconv.Itoa(p.Quantity),
		p.Notes,
		p.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

// exportCSV emits the filtered listing as a CSV attachment. Filters match
// the listing; the cap is the (effectively unbounded) export limit.
func (s *Server) exportCSV(w http.ResponseWriter, r *http.Request) {
	f := s.parseFilters(r)
	f.Limit = s.Cfg.ExportLimit

	parts, err := s.Store.ListParts(r.Context(), f)
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", "attachment; filename=inventory_export.csv")

	cw := csv.NewWriter(w)
	if err := cw.Write(exportColumns); err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	for _, p := range parts {
		if err := cw.Write(exportRecord(p)); err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		http.Error(w, err.Error(), 500)
	}
}

// exportXLSX emits the same rows as exportCSV as a single-sheet workbook.
func (s *Server) exportXLSX(w http.ResponseWriter, r *http.Request) {
	f := s.parseFilters(r)
	f.Limit = s.Cfg.ExportLimit

	parts, err := s.Store.ListParts(r.Context(), f)
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Inventory")
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}

	header := sheet.AddRow()
	for _, col := range exportColumns {
		header.AddCell().Value = col
	}
	for _, p := range parts {
		row := sheet.AddRow()
		for _, v := range exportRecord(p) {
			row.AddCell().Value = v
		}
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", "attachment; filename=inventory_export.xlsx")
	if err := file.Write(w); err != nil {
		http.Error(w, err.Error(), 500)
	}
}
