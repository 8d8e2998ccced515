package internal

import (
	"encoding/base64"
	"fmt"
	"html/template"
	"net/http"
	"net/url"
	"strings"

	qrcode "github.com/skip2/go-qrcode"

	"parts-inventory/internal/models"
	"parts-inventory/internal/store"

	"github.com/go-chi/chi/v5"
)

type labelMode struct {
	Value string
	Label string
}

var labelModes = []labelMode{
	{"asset", "Asset (QR)"},
	{"content", "Content (text)"},
	{"both", "Both"},
}

// labelView wraps a label with the data URI the print template embeds.
type labelView struct {
	models.Label
	DataURI template.URL
}

// labelsSelect renders the label-selection page: containers in use, the
// preset catalog, and the three modes.
func (s *Server) labelsSelect(w http.ResponseWriter, r *http.Request) {
	containers, err := s.Store.ContainersInUse(r.Context())
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	s.Renderer.Render(w, "labels_select.html", map[string]interface{}{
		"Title":      appTitle,
		"Containers": containers,
		"Presets":    s.Presets,
		"Modes":      labelModes,
	})
}

// printLabels renders the selected labels for printing. No selected codes is
// a client error.
func (s *Server) printLabels(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form: "+err.Error(), 400)
		return
	}
	codes := r.PostForm["code"]
	if len(codes) == 0 {
		http.Error(w, "No containers selected", 400)
		return
	}

	mode := r.PostFormValue("mode")
	if mode == "" {
		mode = "asset"
	}

	labels, err := buildLabels(s.Cfg.BaseURL, mode, codes, r.PostForm)
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}

	s.Renderer.Render(w, "labels_print.html", map[string]interface{}{
		"Title":  appTitle,
		"Labels": labels,
		"Preset": s.presetByID(r.PostFormValue("preset")),
	})
}

// buildLabels produces one label per requested type per container. Asset
// labels QR-encode the container URL; content labels carry the trimmed
// per-container text_<code> form value, empty when not supplied.
func buildLabels(baseURL, mode string, codes []string, form url.Values) ([]labelView, error) {
	labels := make([]labelView, 0, 2*len(codes))
	for _, code := range codes {
		if mode == "asset" || mode == "both" {
			png, err := qrcode.Encode(baseURL+"/containers/"+code, qrcode.Medium, 256)
			if err != nil {
				return nil, fmt.Errorf("qr encode for %s: %w", code, err)
			}
			b64 := base64.StdEncoding.EncodeToString(png)
			labels = append(labels, labelView{
				Label:   models.Label{Type: "asset", Code: code, QR: b64},
				DataURI: template.URL("data:image/png;base64," + b64),
			})
		}
		if mode == "content" || mode == "both" {
			labels = append(labels, labelView{
				Label: models.Label{
					Type: "content",
					Code: code,
					Text: strings.TrimSpace(form.Get("text_" + code)),
				},
			})
		}
	}
	return labels, nil
}

// presetByID resolves a preset id, falling back to the catalog's first entry.
func (s *Server) presetByID(id string) models.LabelPreset {
	for _, p := range s.Presets {
		if p.ID == id {
			return p
		}
	}
	return s.Presets[0]
}

// containerView renders the listing filtered to one container.
func (s *Server) containerView(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	parts, err := s.Store.ListParts(r.Context(), store.Filter{
		ContainerID: code,
		Limit:       s.Cfg.ListLimit,
	})
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	s.Renderer.Render(w, "container.html", map[string]interface{}{
		"Title": fmt.Sprintf("Container %s", code),
		"Code":  code,
		"Parts": parts,
	})
}

func (s *Server) helpPage(w http.ResponseWriter, r *http.Request) {
	s.Renderer.Render(w, "help.html", map[string]interface{}{"Title": appTitle})
}
