package storage

import (
	"context"
	"fmt"
)

// Config holds database connection settings for both ClickHouse and PostgreSQL.
type Config struct {
	ClickHouse ClickHouseConfig
	Postgres   PostgresConfig
}

// DefaultConfig returns a configuration with default local development settings.
func DefaultConfig() Config {
	return Config{
		ClickHouse: ClickHouseConfig{
			Host:     "localhost",
			Port:     9000,
			Database: "notam",
			User:     "default",
			Password: "",
		},
		Postgres: PostgresConfig{
			Host:     "localhost",
			Port:     5432,
			Database: "notam_state",
			User:     "notam",
			Password: "notam",
		},
	}
}

// Store wraps both ClickHouse and PostgreSQL connections.
type Store struct {
	CH *ClickHouseDB // ClickHouse for the append only feed and analytics.
	PG *PostgresDB   // PostgreSQL for current state and mutable data.
}

// OpenStore opens connections to both ClickHouse and PostgreSQL.
func OpenStore(ctx context.Context, cfg Config) (*Store, error) {
	ch, err := OpenClickHouse(ctx, cfg.ClickHouse)
	if err != nil {
		return nil, fmt.Errorf("clickhouse: %w", err)
	}

	pg, err := OpenPostgres(ctx, cfg.Postgres)
	if err != nil {
		_ = ch.Close()
		return nil, fmt.Errorf("postgres: %w", err)
	}

	return &Store{CH: ch, PG: pg}, nil
}

// Close closes both database connections.
func (s *Store) Close() error {
	var errs []error
	if s.CH != nil {
		if err := s.CH.Close(); err != nil {
			errs = append(errs, fmt.Errorf("clickhouse: %w", err))
		}
	}
	if s.PG != nil {
		s.PG.Close()
	}
	if len(errs) > 0 {
		return errs[0]
	}
	return nil
}

// CreateSchemas creates the schemas in both databases.
func (s *Store) CreateSchemas(ctx context.Context) error {
	if err := s.CH.CreateSchema(ctx); err != nil {
		return fmt.Errorf("clickhouse schema: %w", err)
	}
	if err := s.PG.CreateSchema(ctx); err != nil {
		return fmt.Errorf("postgres schema: %w", err)
	}
	return nil
}

// Apply records one parsed NOTAM in both databases: an append to the
// ClickHouse feed and a current state update in PostgreSQL.
func (s *Store) Apply(ctx context.Context, r Record) error {
	if err := s.CH.Insert(ctx, r); err != nil {
		return err
	}
	return s.PG.Apply(ctx, r)
}
