package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"scorekeeper/internal/autosave"
	"scorekeeper/internal/config"
	"scorekeeper/internal/db"
	"scorekeeper/internal/metrics"
	"scorekeeper/internal/server"

	"gorm.io/gorm"
)

func main() {
	if err := config.LoadDotEnv(".env"); err != nil {
		log.Printf("failed to load .env: %v", err)
	}
	cfg := config.Load()

	addr := ":8080"
	if env := os.Getenv("PORT"); env != "" {
		addr = ":" + env
	}

	conn := openDatabase(cfg)
	saves := openAutosave(cfg)
	if saves != nil {
		defer saves.Close()
	}

	srv := server.New(conn, saves, cfg, metrics.NewRecorder())
	log.Printf("scorekeeper server listening on %s", addr)
	if err := http.ListenAndServe(addr, srv.Handler()); err != nil {
		log.Fatal(err)
	}
}

// openDatabase connects to Postgres when DATABASE_URL is set. Without it the
// server runs memory-only: player registry and history endpoints degrade but
// live scoreboards keep working.
func openDatabase(cfg config.Config) *gorm.DB {
	conn, err := db.Open()
	if err != nil {
		log.Printf("running without database: %v", err)
		return nil
	}
	if err := db.Migrate(conn); err != nil {
		log.Printf("database migration failed: %v", err)
	}
	sqlDB, err := conn.DB()
	if err != nil {
		log.Printf("database pool setup failed: %v", err)
		return conn
	}
	sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.DBMaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.DBConnMaxLifetimeSeconds) * time.Second)
	sqlDB.SetConnMaxIdleTime(time.Duration(cfg.DBConnMaxIdleTimeSeconds) * time.Second)
	return conn
}

func openAutosave(cfg config.Config) *autosave.Store {
	saves, err := autosave.Open(cfg.AutosavePath)
	if err != nil {
		log.Printf("running without autosave: %v", err)
		return nil
	}
	return saves
}
