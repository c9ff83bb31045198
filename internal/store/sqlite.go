package store

import (
	"context"
	"database/sql"
	"log"
	"time"

	"github.com/i474232898/weather-search-history/internal/search"

	_ "modernc.org/sqlite"
)

var sqliteSchema = []string{`CREATE TABLE IF NOT EXISTS historial (
	id TEXT PRIMARY KEY,
	city TEXT NOT NULL,
	country TEXT NOT NULL,
	temp TEXT,
	condition TEXT,
	condition_text TEXT,
	icon TEXT,
	date INTEGER NOT NULL
)`,
	`CREATE INDEX IF NOT EXISTS historial_date_idx ON historial(date DESC)`,
}

// SQLiteStore implements search.Store on an embedded SQLite database
// (pure Go driver modernc.org/sqlite). Dates are stored as unix nanoseconds
// so ordering is exact.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (or creates) the database at path and applies the schema.
func NewSQLiteStore(ctx context.Context, path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL;"); err != nil {
		log.Printf("WARN: could not set WAL mode: %v", err)
	}

	for _, stmt := range sqliteSchema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			db.Close()
			return nil, err
		}
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Insert(ctx context.Context, rec search.Record) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO historial(id, city, country, temp, condition, condition_text, icon, date) VALUES(?,?,?,?,?,?,?,?)`,
		rec.ID, rec.City, rec.Country, string(rec.Temp), rec.Condition, rec.ConditionText, rec.Icon, rec.Date.UTC().UnixNano())
	return err
}

func (s *SQLiteStore) List(ctx context.Context) ([]search.Record, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, city, country, temp, condition, condition_text, icon, date FROM historial ORDER BY date DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]search.Record, 0)
	for rows.Next() {
		var (
			rec  search.Record
			temp string
			ts   int64
		)
		if err := rows.Scan(&rec.ID, &rec.City, &rec.Country, &temp, &rec.Condition, &rec.ConditionText, &rec.Icon, &ts); err != nil {
			return nil, err
		}
		rec.Temp = search.Temperature(temp)
		rec.Date = time.Unix(0, ts).UTC()
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *SQLiteStore) Close(context.Context) error {
	return s.db.Close()
}
