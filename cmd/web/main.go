package main

import (
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"parts-inventory/internal"
	"parts-inventory/internal/config"
	"parts-inventory/pkg/logger"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.LoadAndValidate()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		log.Fatal("DB_DSN environment variable is required")
	}

	logger.Init(cfg.LogLevel, cfg.LogFile)

	srv := internal.NewServer(dsn, cfg)

	log.Println("Starting parts inventory server...")
	log.Printf("Base URL: %s", cfg.BaseURL)
	log.Printf("Listening on %s", cfg.Addr)

	log.Fatal(http.ListenAndServe(cfg.Addr, srv.Router))
}
