package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/lazharichir/pokerreview/domain/events"
)

const (
	StoreMemory   = "memory"
	StoreSQLite   = "sqlite"
	StorePostgres = "postgres"

	defaultPort       = "7777"
	defaultSQLitePath = "pokerreview.db"
)

// Config holds the server settings read from the environment
type Config struct {
	Port       string
	Store      string
	SQLitePath string
	DSN        string
}

// Load reads the configuration from environment variables
func Load() (Config, error) {
	cfg := Config{
		Port:       envOrDefault("POKERREVIEW_PORT", defaultPort),
		Store:      storeModeFromEnv(),
		SQLitePath: envOrDefault("POKERREVIEW_SQLITE_PATH", defaultSQLitePath),
		DSN:        envOrDefault("POKERREVIEW_DATABASE_DSN", strings.TrimSpace(os.Getenv("DATABASE_URL"))),
	}

	if n, err := strconv.Atoi(cfg.Port); err != nil || n <= 0 || n > 65535 {
		return Config{}, fmt.Errorf("invalid POKERREVIEW_PORT %q", cfg.Port)
	}

	switch cfg.Store {
	case StoreMemory, StoreSQLite:
	case StorePostgres:
		if cfg.DSN == "" {
			return Config{}, fmt.Errorf("POKERREVIEW_DATABASE_DSN or DATABASE_URL is required for the %s store", StorePostgres)
		}
	default:
		return Config{}, fmt.Errorf("invalid POKERREVIEW_STORE %q (supported: %s, %s, %s)", cfg.Store, StoreMemory, StoreSQLite, StorePostgres)
	}

	return cfg, nil
}

// OpenStore creates the event store selected by the configuration
func (c Config) OpenStore() (events.EventStore, error) {
	switch c.Store {
	case StoreSQLite:
		return events.NewSQLiteEventStore(c.SQLitePath)
	case StorePostgres:
		return events.NewPostgresEventStore(c.DSN)
	case StoreMemory, "":
		return events.NewInMemoryEventStore(), nil
	default:
		return nil, fmt.Errorf("invalid store %q", c.Store)
	}
}

func storeModeFromEnv() string {
	raw := strings.ToLower(strings.TrimSpace(os.Getenv("POKERREVIEW_STORE")))
	switch raw {
	case "", StoreMemory, "mem":
		return StoreMemory
	case StoreSQLite, "sqlite3":
		return StoreSQLite
	case StorePostgres, "postgresql", "pg":
		return StorePostgres
	default:
		return raw
	}
}

func envOrDefault(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
