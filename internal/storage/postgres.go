package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresConfig holds PostgreSQL connection settings.
type PostgresConfig struct {
	Host     string
	Port     int
	Database string
	User     string
	Password string
}

// PostgresDB wraps a PostgreSQL connection pool holding the current state of
// each NOTAM: one row per message ID, updated as replacements and
// cancellations arrive.
type PostgresDB struct {
	pool *pgxpool.Pool
}

// OpenPostgres opens a connection pool to PostgreSQL.
func OpenPostgres(ctx context.Context, cfg PostgresConfig) (*PostgresDB, error) {
	connStr := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Database)

	poolCfg, err := pgxpool.ParseConfig(connStr)
	if err != nil {
		return nil, fmt.Errorf("parse postgres config: %w", err)
	}

	poolCfg.MaxConns = 10
	poolCfg.MinConns = 2
	poolCfg.MaxConnLifetime = time.Hour
	poolCfg.MaxConnIdleTime = 30 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	// Test the connection.
	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	return &PostgresDB{pool: pool}, nil
}

// Close closes the PostgreSQL connection pool.
func (d *PostgresDB) Close() {
	d.pool.Close()
}

// Pool returns the underlying connection pool for advanced operations.
func (d *PostgresDB) Pool() *pgxpool.Pool {
	return d.pool
}

// CreateSchema creates the PostgreSQL tables.
func (d *PostgresDB) CreateSchema(ctx context.Context) error {
	schema := `
	-- Current state: one row per NOTAM message ID
	CREATE TABLE IF NOT EXISTS notams_current (
		notam_id        TEXT PRIMARY KEY,
		series          TEXT NOT NULL,
		number          INTEGER NOT NULL,
		year            INTEGER NOT NULL,
		fir             TEXT,
		subject         TEXT,
		condition       TEXT,
		traffic         TEXT,
		locations       TEXT,
		effective_at    TIMESTAMPTZ,
		expiration_at   TIMESTAMPTZ,
		no_expiration   BOOLEAN NOT NULL DEFAULT FALSE,
		cancelled       BOOLEAN NOT NULL DEFAULT FALSE,
		replaced_by     TEXT,
		raw_text        TEXT NOT NULL,
		payload         JSONB NOT NULL,
		first_seen      TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at      TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE INDEX IF NOT EXISTS idx_notams_current_fir ON notams_current(fir);
	CREATE INDEX IF NOT EXISTS idx_notams_current_subject ON notams_current(subject);
	CREATE INDEX IF NOT EXISTS idx_notams_current_expiration ON notams_current(expiration_at);
	`

	_, err := d.pool.Exec(ctx, schema)
	if err != nil {
		return fmt.Errorf("create schema: %w", err)
	}

	// Partial index over the live subset.
	_, _ = d.pool.Exec(ctx, `CREATE INDEX IF NOT EXISTS idx_notams_current_live ON notams_current(notam_id) WHERE NOT cancelled AND replaced_by IS NULL`)

	return nil
}

// Apply updates current state with one parsed NOTAM: new and replacing
// messages upsert their own row, replacements mark the old row superseded
// and cancellations mark the old row cancelled.
func (d *PostgresDB) Apply(ctx context.Context, r Record) error {
	if r.Operation == "cancel" {
		_, err := d.pool.Exec(ctx, `
			UPDATE notams_current SET cancelled = TRUE, updated_at = NOW()
			WHERE notam_id = $1
		`, r.ReplacedID)
		if err != nil {
			return fmt.Errorf("cancel %s: %w", r.ReplacedID, err)
		}
		return nil
	}

	if err := d.upsert(ctx, r); err != nil {
		return err
	}
	if r.Operation == "replace" {
		_, err := d.pool.Exec(ctx, `
			UPDATE notams_current SET replaced_by = $1, updated_at = NOW()
			WHERE notam_id = $2
		`, r.NotamID, r.ReplacedID)
		if err != nil {
			return fmt.Errorf("supersede %s: %w", r.ReplacedID, err)
		}
	}
	return nil
}

func (d *PostgresDB) upsert(ctx context.Context, r Record) error {
	_, err := d.pool.Exec(ctx, `
		INSERT INTO notams_current (notam_id, series, number, year, fir, subject, condition, traffic, locations, effective_at, expiration_at, no_expiration, raw_text, payload)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		ON CONFLICT (notam_id) DO UPDATE SET
			fir = EXCLUDED.fir,
			subject = EXCLUDED.subject,
			condition = EXCLUDED.condition,
			traffic = EXCLUDED.traffic,
			locations = EXCLUDED.locations,
			effective_at = EXCLUDED.effective_at,
			expiration_at = EXCLUDED.expiration_at,
			no_expiration = EXCLUDED.no_expiration,
			raw_text = EXCLUDED.raw_text,
			payload = EXCLUDED.payload,
			updated_at = NOW()
	`, r.NotamID, r.Series, r.Number, r.Year, r.FIR, r.Subject, r.Condition, r.Traffic,
		r.Locations, nullTime(r.EffectiveAt), nullTime(r.ExpirationAt), r.NoExpiration,
		r.RawText, r.PayloadJSON)
	if err != nil {
		return fmt.Errorf("upsert %s: %w", r.NotamID, err)
	}
	return nil
}

// CurrentNotam is one row of the current state table.
type CurrentNotam struct {
	NotamID      string
	Series       string
	Number       int
	Year         int
	FIR          string
	Subject      string
	Condition    string
	Traffic      string
	Locations    string
	EffectiveAt  *time.Time
	ExpirationAt *time.Time
	NoExpiration bool
	Cancelled    bool
	ReplacedBy   string
	RawText      string
	PayloadJSON  string
	FirstSeen    time.Time
	UpdatedAt    time.Time
}

const currentColumns = `notam_id, series, number, year, fir, subject, condition, traffic, locations, effective_at, expiration_at, no_expiration, cancelled, COALESCE(replaced_by, ''), raw_text, payload::text, first_seen, updated_at`

// GetCurrent retrieves the current state of a NOTAM by its message ID.
func (d *PostgresDB) GetCurrent(ctx context.Context, notamID string) (*CurrentNotam, error) {
	row := d.pool.QueryRow(ctx,
		`SELECT `+currentColumns+` FROM notams_current WHERE notam_id = $1`, notamID)
	n, err := scanCurrent(row)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// ListLive retrieves NOTAMs that are neither cancelled nor superseded and
// have not expired at the given instant, optionally limited to one FIR.
func (d *PostgresDB) ListLive(ctx context.Context, fir string, at time.Time) ([]CurrentNotam, error) {
	query := `SELECT ` + currentColumns + ` FROM notams_current
		WHERE NOT cancelled AND replaced_by IS NULL
		AND (no_expiration OR expiration_at IS NULL OR expiration_at >= $1)`
	args := []interface{}{at}
	if fir != "" {
		query += " AND fir = $2"
		args = append(args, fir)
	}
	query += " ORDER BY notam_id"

	rows, err := d.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notams []CurrentNotam
	for rows.Next() {
		n, err := scanCurrent(rows)
		if err != nil {
			return nil, err
		}
		notams = append(notams, n)
	}
	return notams, rows.Err()
}

func scanCurrent(row pgx.Row) (CurrentNotam, error) {
	var n CurrentNotam
	err := row.Scan(&n.NotamID, &n.Series, &n.Number, &n.Year, &n.FIR, &n.Subject,
		&n.Condition, &n.Traffic, &n.Locations, &n.EffectiveAt, &n.ExpirationAt,
		&n.NoExpiration, &n.Cancelled, &n.ReplacedBy, &n.RawText, &n.PayloadJSON,
		&n.FirstSeen, &n.UpdatedAt)
	return n, err
}

func nullTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
