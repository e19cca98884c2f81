package storage

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// DB wraps a SQLite database used as a local archive of parsed NOTAMs.
type DB struct {
	db *sql.DB
}

// Open opens or creates a SQLite database at the given path.
func Open(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Enable WAL mode for better concurrent access.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("enable WAL: %w", err)
	}

	if err := createSchema(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &DB{db: db}, nil
}

// Close closes the database connection.
func (d *DB) Close() error {
	return d.db.Close()
}

func createSchema(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS notams (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		notam_id TEXT NOT NULL,
		series TEXT NOT NULL,
		number INTEGER NOT NULL,
		year INTEGER NOT NULL,
		operation TEXT NOT NULL,
		replaced_id TEXT,
		fir TEXT,
		subject TEXT,
		condition TEXT,
		traffic TEXT,
		locations TEXT,
		effective_at TEXT,
		expiration_at TEXT,
		no_expiration INTEGER DEFAULT 0,
		raw_text TEXT NOT NULL,
		payload_json TEXT NOT NULL,
		created_at TEXT DEFAULT (datetime('now'))
	);

	CREATE INDEX IF NOT EXISTS idx_notams_notam_id ON notams(notam_id);
	CREATE INDEX IF NOT EXISTS idx_notams_fir ON notams(fir);
	CREATE INDEX IF NOT EXISTS idx_notams_subject ON notams(subject);
	CREATE INDEX IF NOT EXISTS idx_notams_effective ON notams(effective_at);

	-- FTS5 virtual table for full-text search on raw message text.
	CREATE VIRTUAL TABLE IF NOT EXISTS notams_fts USING fts5(
		raw_text,
		content='notams',
		content_rowid='id'
	);

	-- Triggers to keep FTS index in sync.
	CREATE TRIGGER IF NOT EXISTS notams_ai AFTER INSERT ON notams BEGIN
		INSERT INTO notams_fts(rowid, raw_text) VALUES (new.id, new.raw_text);
	END;

	CREATE TRIGGER IF NOT EXISTS notams_ad AFTER DELETE ON notams BEGIN
		INSERT INTO notams_fts(notams_fts, rowid, raw_text) VALUES('delete', old.id, old.raw_text);
	END;
	`

	_, err := db.Exec(schema)
	return err
}

// Insert stores a parsed NOTAM in the archive and returns its row ID.
func (d *DB) Insert(r Record) (int64, error) {
	result, err := d.db.Exec(`
		INSERT INTO notams (notam_id, series, number, year, operation, replaced_id, fir, subject, condition, traffic, locations, effective_at, expiration_at, no_expiration, raw_text, payload_json)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, r.NotamID, r.Series, r.Number, r.Year, r.Operation, r.ReplacedID, r.FIR, r.Subject,
		r.Condition, r.Traffic, r.Locations, timeText(r.EffectiveAt), timeText(r.ExpirationAt),
		boolInt(r.NoExpiration), r.RawText, r.PayloadJSON)
	if err != nil {
		return 0, fmt.Errorf("insert notam: %w", err)
	}
	return result.LastInsertId()
}

// QueryParams contains filtering options for querying archived NOTAMs.
type QueryParams struct {
	NotamID   string // exact match
	FIR       string // exact match
	Subject   string // exact match
	Location  string // LIKE match on the location list
	FullText  string // FTS5 full-text search on raw_text
	Limit     int    // max results (default 100)
	Offset    int    // pagination offset
	OrderDesc bool   // newest first
}

const recordColumns = `id, notam_id, series, number, year, operation, replaced_id, fir, subject, condition, traffic, locations, effective_at, expiration_at, no_expiration, raw_text, payload_json`

// Query retrieves archived NOTAMs matching the given parameters.
func (d *DB) Query(p QueryParams) ([]Record, error) {
	var conditions []string
	var args []interface{}

	if p.NotamID != "" {
		conditions = append(conditions, "notam_id = ?")
		args = append(args, p.NotamID)
	}
	if p.FIR != "" {
		conditions = append(conditions, "fir = ?")
		args = append(args, p.FIR)
	}
	if p.Subject != "" {
		conditions = append(conditions, "subject = ?")
		args = append(args, p.Subject)
	}
	if p.Location != "" {
		conditions = append(conditions, "locations LIKE ?")
		args = append(args, "%"+p.Location+"%")
	}

	var query string
	if p.FullText != "" {
		cols := "n." + strings.ReplaceAll(recordColumns, ", ", ", n.")
		query = `SELECT ` + cols + ` FROM notams n
			JOIN notams_fts fts ON n.id = fts.rowid
			WHERE notams_fts MATCH ?`
		args = append([]interface{}{p.FullText}, args...)
		if len(conditions) > 0 {
			query += " AND " + strings.Join(conditions, " AND ")
		}
	} else {
		query = `SELECT ` + recordColumns + ` FROM notams`
		if len(conditions) > 0 {
			query += " WHERE " + strings.Join(conditions, " AND ")
		}
	}

	direction := "ASC"
	if p.OrderDesc {
		direction = "DESC"
	}
	limit := 100
	if p.Limit > 0 {
		limit = p.Limit
	}
	query += fmt.Sprintf(" ORDER BY id %s LIMIT %d OFFSET %d", direction, limit, p.Offset)

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query notams: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var records []Record
	for rows.Next() {
		r, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// GetByNotamID retrieves the most recent archived copy of a NOTAM by its
// message ID, such as "A0135/20".
func (d *DB) GetByNotamID(notamID string) (*Record, error) {
	records, err := d.Query(QueryParams{NotamID: notamID, Limit: 1, OrderDesc: true})
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}
	return &records[0], nil
}

// Stats contains aggregate statistics about archived NOTAMs.
type Stats struct {
	Total       int
	ByFIR       map[string]int
	BySubject   map[string]int
	ByOperation map[string]int
}

// GetStats returns statistics about the archived NOTAMs.
func (d *DB) GetStats() (*Stats, error) {
	stats := &Stats{
		ByFIR:       make(map[string]int),
		BySubject:   make(map[string]int),
		ByOperation: make(map[string]int),
	}

	row := d.db.QueryRow("SELECT COUNT(*) FROM notams")
	if err := row.Scan(&stats.Total); err != nil {
		return nil, err
	}

	groups := []struct {
		column string
		into   map[string]int
	}{
		{"fir", stats.ByFIR},
		{"subject", stats.BySubject},
		{"operation", stats.ByOperation},
	}
	for _, g := range groups {
		query := fmt.Sprintf("SELECT %s, COUNT(*) FROM notams WHERE %s != '' GROUP BY %s ORDER BY COUNT(*) DESC", g.column, g.column, g.column)
		rows, err := d.db.Query(query)
		if err != nil {
			return nil, err
		}
		for rows.Next() {
			var key string
			var count int
			if err := rows.Scan(&key, &count); err != nil {
				_ = rows.Close()
				return nil, err
			}
			g.into[key] = count
		}
		if err := rows.Err(); err != nil {
			_ = rows.Close()
			return nil, err
		}
		_ = rows.Close()
	}

	return stats, nil
}

// Distinct returns distinct values for a given column.
func (d *DB) Distinct(column string) ([]string, error) {
	// Validate column name to prevent SQL injection.
	validColumns := map[string]bool{
		"fir":       true,
		"series":    true,
		"subject":   true,
		"condition": true,
		"operation": true,
	}
	if !validColumns[column] {
		return nil, fmt.Errorf("invalid column: %s", column)
	}

	query := fmt.Sprintf("SELECT DISTINCT %s FROM notams WHERE %s != '' ORDER BY %s", column, column, column)
	rows, err := d.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var values []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, rows.Err()
}

func scanRecord(rows *sql.Rows) (Record, error) {
	var r Record
	var rowID int64
	var replacedID, fir, subject, condition, traffic, locations sql.NullString
	var effectiveAt, expirationAt sql.NullString
	var noExpiration sql.NullInt64

	err := rows.Scan(&rowID, &r.NotamID, &r.Series, &r.Number, &r.Year, &r.Operation,
		&replacedID, &fir, &subject, &condition, &traffic, &locations,
		&effectiveAt, &expirationAt, &noExpiration, &r.RawText, &r.PayloadJSON)
	if err != nil {
		return Record{}, fmt.Errorf("scan row: %w", err)
	}
	r.ReplacedID = replacedID.String
	r.FIR = fir.String
	r.Subject = subject.String
	r.Condition = condition.String
	r.Traffic = traffic.String
	r.Locations = locations.String
	if effectiveAt.Valid {
		r.EffectiveAt, _ = time.Parse(time.RFC3339, effectiveAt.String)
	}
	if expirationAt.Valid {
		r.ExpirationAt, _ = time.Parse(time.RFC3339, expirationAt.String)
	}
	r.NoExpiration = noExpiration.Int64 == 1
	return r, nil
}

func timeText(t time.Time) interface{} {
	if t.IsZero() {
		return nil
	}
	return t.UTC().Format(time.RFC3339)
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
