package internal

import (
	"context"
	"database/sql"
	"io/fs"
	"log"
	"net/http"
	"os"
	"time"

	"parts-inventory/internal/config"
	"parts-inventory/internal/handlers"
	"parts-inventory/internal/models"
	"parts-inventory/internal/store"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
)

const appTitle = "Electronics Inventory"

type Server struct {
	DB       *sql.DB
	Pool     *pgxpool.Pool
	Router   *chi.Mux
	Store    *store.Store
	Renderer *Renderer
	Metrics  *Metrics
	Cfg      *config.Config
	Presets  []models.LabelPreset
}

func NewServer(dsn string, cfg *config.Config) *Server {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		log.Fatal("Failed to open database connection:", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		log.Fatal("Database ping failed:", err)
	}

	if err := store.Migrate(ctx, db); err != nil {
		log.Fatal("Migrations failed:", err)
	}

	// Also create a pgxpool for the bulk importer
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		log.Fatal("Failed to create pgxpool:", err)
	}

	renderer, err := NewRenderer()
	if err != nil {
		log.Fatal("Template parsing failed:", err)
	}

	presets, err := config.LoadPresets(cfg.LabelPresets)
	if err != nil {
		log.Fatal("Label preset catalog failed to load:", err)
	}

	s := &Server{
		DB:       db,
		Pool:     pool,
		Router:   chi.NewRouter(),
		Store:    store.New(db),
		Renderer: renderer,
		Metrics:  NewMetrics(),
		Cfg:      cfg,
		Presets:  presets,
	}

	s.Router.Use(requestLogger)

	// Mount metrics if enabled
	if os.Getenv("ENABLE_METRICS") == "true" {
		s.Router.Use(s.Metrics.Middleware())
		s.Router.Get("/metrics", s.Metrics.Handler().ServeHTTP)
	}

	s.Router.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		if _, err := w.Write([]byte("ok")); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
	s.Router.Get("/dbping", func(w http.ResponseWriter, r *http.Request) {
		if err := s.DB.PingContext(r.Context()); err != nil {
			http.Error(w, "db: "+err.Error(), http.StatusServiceUnavailable)
			return
		}
		if _, err := w.Write([]byte("db: ok")); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})

	s.mountRoutes(s.Router)

	return s
}

// Close properly shuts down the server and cleans up resources
func (s *Server) Close(ctx context.Context) error {
	if s.Pool != nil {
		s.Pool.Close()
	}
	if s.DB != nil {
		return s.DB.Close()
	}
	return nil
}

func (s *Server) mountRoutes(r chi.Router) {
	// Listing and fragments
	r.Get("/", s.index)
	r.Get("/partials/table", s.partialTable)

	// Part CRUD; every response is an HTML fragment for the HTMX swap
	r.Post("/parts", s.createPart)
	r.Post("/parts/{id}/delete", s.deletePart)
	r.Get("/parts/{id}/edit/{field}", s.editCell)
	r.Post("/parts/{id}/edit/{field}", s.saveCell)

	// Export
	r.Get("/export.csv", s.exportCSV)
	r.Get("/export.xlsx", s.exportXLSX)

	// Containers and labels
	r.Get("/containers/labels", s.labelsSelect)
	r.Post("/print/labels", s.printLabels)
	r.Get("/containers/{code}", s.containerView)

	// Bulk CSV import
	importsHandler := handlers.NewImportsHandler(s.Pool)
	r.Post("/imports/csv", importsHandler.UploadCSV)

	r.Get("/help", s.helpPage)

	// Static assets
	staticSub, err := fs.Sub(staticFS, "web/static")
	if err != nil {
		log.Fatal("Static assets missing:", err)
	}
	fileServer := http.FileServer(http.FS(staticSub))
	r.Handle("/static/*", http.StripPrefix("/static/", fileServer))
	r.Get("/favicon.ico", func(w http.ResponseWriter, r *http.Request) {
		data, err := staticFS.ReadFile("web/static/favicon.ico")
		if err != nil {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "image/x-icon")
		w.Write(data)
	})
}
