package internal

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"parts-inventory/internal/config"
	"parts-inventory/internal/models"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

// newEditRequest builds a request with the chi URL params the edit handlers
// read.
func newEditRequest(method, id, field string) *http.Request {
	req := httptest.NewRequest(method, "/parts/"+id+"/edit/"+field, nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	rctx.URLParams.Add("field", field)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestEditCellRejectsUnknownField(t *testing.T) {
	// The allow-list check runs before any storage access, so an empty
	// Server is enough.
	server := &Server{}

	w := httptest.NewRecorder()
	server.editCell(w, newEditRequest("GET", "1", "updated_at"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid field")
}

func TestSaveCellRejectsUnknownField(t *testing.T) {
	server := &Server{}

	w := httptest.NewRecorder()
	server.saveCell(w, newEditRequest("POST", "1", "id"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid field")
}

func TestSaveCellRejectsBadID(t *testing.T) {
	server := &Server{}

	w := httptest.NewRecorder()
	server.saveCell(w, newEditRequest("POST", "abc", "quantity"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestParseFilters(t *testing.T) {
	server := &Server{Cfg: &config.Config{ListLimit: 500}}

	req := httptest.NewRequest("GET", "/?q=+10k+&category=Resistor&container_id=++", nil)
	f := server.parseFilters(req)

	assert.Equal(t, "10k", f.Q)
	assert.Equal(t, "Resistor", f.Category)
	assert.Equal(t, "", f.ContainerID)
	assert.Equal(t, 500, f.Limit)
}

func TestFieldValue(t *testing.T) {
	p := models.Part{
		ID:           7,
		Category:     "Resistor",
		Subcategory:  "Metal film",
		Description:  "10k 1%",
		Package:      "0805",
		ContainerID:  "B12",
		Quantity:     42,
		Notes:        "reel",
		DatasheetURL: "https://example.com/ds.pdf",
		PinoutURL:    "https://example.com/po.pdf",
		UpdatedAt:    time.Now(),
	}

	tests := map[string]string{
		"category":      "Resistor",
		"subcategory":   "Metal film",
		"description":   "10k 1%",
		"package":       "0805",
		"container_id":  "B12",
		"quantity":      "42",
		"notes":         "reel",
		"datasheet_url": "https://example.com/ds.pdf",
		"pinout_url":    "https://example.com/po.pdf",
		"bogus":         "",
	}
	for field, want := range tests {
		assert.Equal(t, want, fieldValue(p, field), "field %s", field)
	}
}
