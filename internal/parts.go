package internal

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"parts-inventory/internal/models"
	"parts-inventory/internal/store"
	"parts-inventory/pkg/validator"

	"github.com/go-chi/chi/v5"
)

// parseFilters reads the listing filters shared by the index page, the table
// fragment and the exports. Empty or whitespace-only values mean no filter.
func (s *Server) parseFilters(r *http.Request) store.Filter {
	values := r.URL.Query()
	return store.Filter{
		Q:           strings.TrimSpace(values.Get("q")),
		Category:    strings.TrimSpace(values.Get("category")),
		ContainerID: strings.TrimSpace(values.Get("container_id")),
		Limit:       s.Cfg.ListLimit,
	}
}

type tableData struct {
	Parts []models.Part
}

// index renders the full page: filtered listing plus filter suggestions.
func (s *Server) index(w http.ResponseWriter, r *http.Request) {
	f := s.parseFilters(r)

	parts, err := s.Store.ListParts(r.Context(), f)
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}

	// Search filters must reflect real inventory, not the lookup tables
	categories, err := s.Store.CategoriesInUse(r.Context())
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	containers, err := s.Store.ContainersInUse(r.Context())
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	subcategories, err := s.Store.ListSubcategories(r.Context())
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}

	s.Renderer.Render(w, "index.html", map[string]interface{}{
		"Title":         appTitle,
		"Parts":         parts,
		"Q":             f.Q,
		"Category":      f.Category,
		"ContainerID":   f.ContainerID,
		"Categories":    categories,
		"Containers":    containers,
		"Subcategories": subcategories,
	})
}

// partialTable renders the listing fragment only.
func (s *Server) partialTable(w http.ResponseWriter, r *http.Request) {
	parts, err := s.Store.ListParts(r.Context(), s.parseFilters(r))
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	s.Renderer.Render(w, "_table.html", tableData{Parts: parts})
}

// createPart adds a part from the form and re-renders the unfiltered table.
func (s *Server) createPart(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form: "+err.Error(), 400)
		return
	}

	in := models.PartCreate{
		Category:     strings.TrimSpace(r.PostFormValue("category")),
		Subcategory:  strings.TrimSpace(r.PostFormValue("subcategory")),
		Description:  strings.TrimSpace(r.PostFormValue("description")),
		Package:      strings.TrimSpace(r.PostFormValue("package")),
		ContainerID:  strings.TrimSpace(r.PostFormValue("container_id")),
		Quantity:     store.NormalizeQuantity(r.PostFormValue("quantity")),
		Notes:        strings.TrimSpace(r.PostFormValue("notes")),
		DatasheetURL: strings.TrimSpace(r.PostFormValue("datasheet_url")),
		PinoutURL:    strings.TrimSpace(r.PostFormValue("pinout_url")),
	}
	if err := validator.ValidateStruct(in); err != nil {
		http.Error(w, err.Error(), 400)
		return
	}

	if _, err := s.Store.CreatePart(r.Context(), in); err != nil {
		if errors.Is(err, store.ErrEmptyRequired) {
			http.Error(w, err.Error(), 400)
			return
		}
		http.Error(w, err.Error(), 500)
		return
	}

	s.renderFullTable(w, r)
}

// deletePart deletes by id and re-renders the table. Deleting an absent id
// is a no-op, not an error.
func (s *Server) deletePart(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid part id", 400)
		return
	}
	if err := s.Store.DeletePart(r.Context(), id); err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	s.renderFullTable(w, r)
}

// editCell renders the editable-cell fragment for one field.
func (s *Server) editCell(w http.ResponseWriter, r *http.Request) {
	field := chi.URLParam(r, "field")
	if !store.EditableField(field) {
		http.Error(w, "Invalid field", 400)
		return
	}
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid part id", 400)
		return
	}

	part, err := s.Store.GetPart(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}

	containers, err := s.Store.ListContainers(r.Context())
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	categories, err := s.Store.ListCategories(r.Context())
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}

	s.Renderer.Render(w, "_edit_cell.html", map[string]interface{}{
		"Part":       part,
		"Field":      field,
		"Value":      fieldValue(part, field),
		"Containers": containers,
		"Categories": categories,
	})
}

// saveCell applies a single-field edit and renders the refreshed row.
func (s *Server) saveCell(w http.ResponseWriter, r *http.Request) {
	field := chi.URLParam(r, "field")
	if !store.EditableField(field) {
		http.Error(w, "Invalid field", 400)
		return
	}
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid part id", 400)
		return
	}

	part, err := s.Store.UpdatePartField(r.Context(), id, field, r.PostFormValue("value"))
	if errors.Is(err, store.ErrNotFound) {
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}

	s.Renderer.Render(w, "_row.html", part)
}

// renderFullTable re-renders the unfiltered listing after a mutation.
func (s *Server) renderFullTable(w http.ResponseWriter, r *http.Request) {
	parts, err := s.Store.ListParts(r.Context(), store.Filter{Limit: s.Cfg.ListLimit})
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	s.Renderer.Render(w, "_table.html", tableData{Parts: parts})
}

func fieldValue(p models.Part, field string) string {
	switch field {
	case "category":
		return p.Category
	case "subcategory":
		return p.Subcategory
	case "description":
		return p.Description
	case "package":
		return p.Package
	case "container_id":
		return p.ContainerID
	case "quantity":
		return strconv.Itoa(p.Quantity)
	case "notes":
		return p.Notes
	case "datasheet_url":
		return p.DatasheetURL
	case "pinout_url":
		return p.PinoutURL
	}
	return ""
}
