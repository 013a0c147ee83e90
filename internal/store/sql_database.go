package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/fortuna/internal/config"
	"github.com/MKhiriev/fortuna/internal/logger"
)

// NewPool opens the database named by cfg, applies the pool limits and
// checks connectivity.
func NewPool(ctx context.Context, cfg config.DB, log *logger.Logger) (*Pool, error) {
	var (
		conn          *sql.DB
		classificator ErrorClassificator
		err           error
	)

	switch cfg.Driver {
	case config.DriverPostgres:
		conn, err = openPostgres(cfg.DSN)
		classificator = NewPostgresErrorClassifier()
	case config.DriverSQLite:
		conn, err = openSQLite(cfg.DSN)
		classificator = NewSQLiteErrorClassifier()
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}
	if err != nil {
		log.Err(err).Str("func", "NewPool").Str("driver", cfg.Driver).Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	// setup connections
	conn.SetMaxOpenConns(cfg.MaxOpenConns)
	conn.SetMaxIdleConns(cfg.MaxIdleConns)
	conn.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	// ping database
	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewPool").Msg("error connecting database (ping)")
		_ = conn.Close()
		return nil, fmt.Errorf("%w: %w", ErrConnection, err)
	}
	log.Info().Str("func", "NewPool").Str("driver", cfg.Driver).Msg("connected to database successfully")

	return newPool(conn, cfg.Driver, cfg.AcquireTimeout, classificator, log), nil
}
