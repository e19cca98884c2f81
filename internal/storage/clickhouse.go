package storage

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
)

// ClickHouseConfig holds ClickHouse connection settings.
type ClickHouseConfig struct {
	Host     string
	Port     int
	Database string
	User     string
	Password string
}

// ClickHouseDB wraps a ClickHouse connection for the append only feed of
// parsed NOTAMs, used for analytics over the full history.
type ClickHouseDB struct {
	conn driver.Conn
}

// Conn returns the underlying ClickHouse connection for direct queries.
func (d *ClickHouseDB) Conn() driver.Conn {
	return d.conn
}

// OpenClickHouse opens a connection to ClickHouse.
func OpenClickHouse(ctx context.Context, cfg ClickHouseConfig) (*ClickHouseDB, error) {
	conn, err := clickhouse.Open(&clickhouse.Options{
		Addr: []string{fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)},
		Auth: clickhouse.Auth{
			Database: cfg.Database,
			Username: cfg.User,
			Password: cfg.Password,
		},
		Settings: clickhouse.Settings{
			"max_execution_time": 60,
		},
		DialTimeout:     10 * time.Second,
		MaxOpenConns:    10,
		MaxIdleConns:    5,
		ConnMaxLifetime: time.Hour,
	})
	if err != nil {
		return nil, fmt.Errorf("open clickhouse: %w", err)
	}

	// Test the connection.
	if err := conn.Ping(ctx); err != nil {
		return nil, fmt.Errorf("ping clickhouse: %w", err)
	}

	return &ClickHouseDB{conn: conn}, nil
}

// Close closes the ClickHouse connection.
func (d *ClickHouseDB) Close() error {
	return d.conn.Close()
}

// CreateSchema creates the ClickHouse tables.
func (d *ClickHouseDB) CreateSchema(ctx context.Context) error {
	query := `CREATE TABLE IF NOT EXISTS notams (
		notam_id        String,
		series          LowCardinality(String),
		number          UInt32,
		year            UInt16,
		operation       LowCardinality(String),
		replaced_id     String,
		fir             LowCardinality(String),
		subject         LowCardinality(String),
		condition       LowCardinality(String),
		traffic         LowCardinality(String),
		locations       String,
		effective_at    Nullable(DateTime),
		expiration_at   Nullable(DateTime),
		no_expiration   UInt8,
		raw_text        String,
		payload_json    String,
		received_at     DateTime64(3) DEFAULT now64(3)
	)
	ENGINE = MergeTree()
	PARTITION BY year
	ORDER BY (fir, subject, notam_id)
	SETTINGS index_granularity = 8192`

	if err := d.conn.Exec(ctx, query); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}

	// Add bloom filter index for full-text search (ignore error if already exists).
	_ = d.conn.Exec(ctx, `ALTER TABLE notams ADD INDEX IF NOT EXISTS idx_raw_text_bloom raw_text TYPE tokenbf_v1(32768, 3, 0) GRANULARITY 1`)

	return nil
}

const chColumns = `notam_id, series, number, year, operation, replaced_id, fir, subject, condition, traffic, locations, effective_at, expiration_at, no_expiration, raw_text, payload_json`

// Insert appends a single parsed NOTAM to the feed.
func (d *ClickHouseDB) Insert(ctx context.Context, r Record) error {
	err := d.conn.Exec(ctx, `
		INSERT INTO notams (`+chColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, r.NotamID, r.Series, uint32(r.Number), uint16(r.Year), r.Operation, r.ReplacedID,
		r.FIR, r.Subject, r.Condition, r.Traffic, r.Locations,
		nullTime(r.EffectiveAt), nullTime(r.ExpirationAt), boolUint8(r.NoExpiration),
		r.RawText, r.PayloadJSON)
	if err != nil {
		return fmt.Errorf("insert notam: %w", err)
	}
	return nil
}

// InsertBatch appends multiple parsed NOTAMs to the feed efficiently.
func (d *ClickHouseDB) InsertBatch(ctx context.Context, records []Record) error {
	if len(records) == 0 {
		return nil
	}

	batch, err := d.conn.PrepareBatch(ctx, `INSERT INTO notams (`+chColumns+`)`)
	if err != nil {
		return fmt.Errorf("prepare batch: %w", err)
	}

	for _, r := range records {
		err := batch.Append(r.NotamID, r.Series, uint32(r.Number), uint16(r.Year),
			r.Operation, r.ReplacedID, r.FIR, r.Subject, r.Condition, r.Traffic,
			r.Locations, nullTime(r.EffectiveAt), nullTime(r.ExpirationAt),
			boolUint8(r.NoExpiration), r.RawText, r.PayloadJSON)
		if err != nil {
			return fmt.Errorf("append to batch: %w", err)
		}
	}

	if err := batch.Send(); err != nil {
		return fmt.Errorf("send batch: %w", err)
	}
	return nil
}

// CHStats contains aggregate statistics about the stored feed.
type CHStats struct {
	Total       uint64
	ByFIR       map[string]uint64
	BySubject   map[string]uint64
	ByOperation map[string]uint64
}

// GetStats returns statistics about the stored feed.
func (d *ClickHouseDB) GetStats(ctx context.Context) (*CHStats, error) {
	stats := &CHStats{
		ByFIR:       make(map[string]uint64),
		BySubject:   make(map[string]uint64),
		ByOperation: make(map[string]uint64),
	}

	row := d.conn.QueryRow(ctx, "SELECT count() FROM notams")
	if err := row.Scan(&stats.Total); err != nil {
		return nil, err
	}

	groups := []struct {
		column string
		into   map[string]uint64
	}{
		{"fir", stats.ByFIR},
		{"subject", stats.BySubject},
		{"operation", stats.ByOperation},
	}
	for _, g := range groups {
		query := fmt.Sprintf("SELECT %s, count() FROM notams WHERE %s != '' GROUP BY %s ORDER BY count() DESC LIMIT 50", g.column, g.column, g.column)
		rows, err := d.conn.Query(ctx, query)
		if err != nil {
			return nil, err
		}
		for rows.Next() {
			var key string
			var count uint64
			if err := rows.Scan(&key, &count); err != nil {
				rows.Close()
				return nil, fmt.Errorf("scan %s stats: %w", g.column, err)
			}
			g.into[key] = count
		}
		if err := rows.Err(); err != nil {
			rows.Close()
			return nil, fmt.Errorf("iterate %s stats: %w", g.column, err)
		}
		rows.Close()
	}

	return stats, nil
}

// Count returns the number of stored NOTAMs, optionally filtered by FIR.
func (d *ClickHouseDB) Count(ctx context.Context, fir string) (uint64, error) {
	var count uint64
	var err error
	if fir != "" {
		row := d.conn.QueryRow(ctx, "SELECT count() FROM notams WHERE fir = ?", fir)
		err = row.Scan(&count)
	} else {
		row := d.conn.QueryRow(ctx, "SELECT count() FROM notams")
		err = row.Scan(&count)
	}
	return count, err
}

// Search returns raw texts matching a LIKE pattern, newest first.
func (d *ClickHouseDB) Search(ctx context.Context, text string, limit int) ([]string, error) {
	if limit <= 0 {
		limit = 100
	}
	pattern := "%" + strings.ReplaceAll(text, "%", "") + "%"
	rows, err := d.conn.Query(ctx,
		fmt.Sprintf("SELECT raw_text FROM notams WHERE raw_text LIKE ? ORDER BY received_at DESC LIMIT %d", limit),
		pattern)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var texts []string
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return nil, fmt.Errorf("scan raw text: %w", err)
		}
		texts = append(texts, t)
	}
	return texts, rows.Err()
}

func boolUint8(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}
