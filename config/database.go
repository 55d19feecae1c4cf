package config

import (
	"fmt"

	"omex-backend/store"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the Postgres connection described by cfg. The handle is
// created once at startup and passed down explicitly; there is no
// package-level database state.
func Connect(cfg *Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		if cfg.UsingPlaceholders {
			return nil, fmt.Errorf("%w: %v",
				&store.AuthenticationError{Reason: "placeholder credentials rejected, set DB_URL"}, err)
		}
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}
	return db, nil
}
