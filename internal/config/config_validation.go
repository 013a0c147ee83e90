// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

const (
	// DriverPostgres is the database/sql driver name registered by pgx.
	DriverPostgres = "pgx"
	// DriverSQLite is the database/sql driver name registered by go-sqlite3.
	DriverSQLite = "sqlite3"

	// EnvDevelopment is the default environment name.
	EnvDevelopment = "development"

	minCookieSecretLen = 32
)

// Defaults returns the configuration used for every field no source set.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Environment: EnvDevelopment,
			LogLevel:    "info",
			CookieName:  "fortuna_session",
			SessionTTL:  30 * 24 * time.Hour,
			Version:     "dev",
		},
		Storage: Storage{
			DB: DB{
				Driver:          DriverPostgres,
				MaxOpenConns:    10,
				MaxIdleConns:    4,
				ConnMaxLifetime: 30 * time.Minute,
				AcquireTimeout:  5 * time.Second,
			},
		},
		Server: Server{
			HTTPAddress:     "localhost:8080",
			RequestTimeout:  30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			LoginRateLimit:  10,
			LoginRateBurst:  5,
		},
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	db := cfg.Storage.DB
	if db.DSN == "" {
		return fmt.Errorf("%w: empty DSN", ErrInvalidStorageConfigs)
	}
	if db.Driver != DriverPostgres && db.Driver != DriverSQLite {
		return fmt.Errorf("%w: unsupported driver %q", ErrInvalidStorageConfigs, db.Driver)
	}
	if db.MaxOpenConns < 1 || db.MaxIdleConns < 0 || db.MaxIdleConns > db.MaxOpenConns {
		return fmt.Errorf("%w: pool size", ErrInvalidStorageConfigs)
	}
	if db.AcquireTimeout <= 0 {
		return fmt.Errorf("%w: acquire timeout must be positive", ErrInvalidStorageConfigs)
	}

	if cfg.App.CookieName == "" {
		return fmt.Errorf("%w: empty cookie name", ErrInvalidAppConfigs)
	}
	if len(cfg.App.CookieSecret) < minCookieSecretLen {
		return fmt.Errorf("%w: cookie secret must be at least %d bytes", ErrInvalidAppConfigs, minCookieSecretLen)
	}
	if cfg.App.SessionTTL <= 0 {
		return fmt.Errorf("%w: session ttl must be positive", ErrInvalidAppConfigs)
	}

	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: empty HTTP address", ErrInvalidServerConfigs)
	}
	if cfg.Server.LoginRateLimit < 1 || cfg.Server.LoginRateBurst < 1 {
		return fmt.Errorf("%w: login rate limit", ErrInvalidServerConfigs)
	}

	return nil
}

// IsDevelopment reports whether the application runs in development mode.
func (cfg *StructuredConfig) IsDevelopment() bool {
	return cfg.App.Environment == EnvDevelopment
}
