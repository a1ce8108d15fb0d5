// Copyright 2025 GreenOpposite
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package tantalum

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
)

// RateStore caches exchange rate snapshots in a local sqlite database so
// repeated lookups within the freshness window avoid the network.
type RateStore struct {
	db  *sql.DB
	log *zap.Logger
}

const rateSchema = `
CREATE TABLE IF NOT EXISTS rates (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    base TEXT NOT NULL,
    code TEXT NOT NULL,
    rate TEXT NOT NULL,
    timestamp INTEGER NOT NULL,
    created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
    UNIQUE(base, code, timestamp)
);
CREATE INDEX IF NOT EXISTS idx_rates_base_ts ON rates(base, timestamp);
`

// OpenRateStore opens or creates the cache at path. Pass ":memory:" for an
// ephemeral store. A nil logger disables logging.
func OpenRateStore(path string, logger *zap.Logger) (*RateStore, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open rate store: %w", err)
	}
	if _, err := db.Exec(rateSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create rate schema: %w", err)
	}
	logger.Debug("rate store opened", zap.String("path", path))
	return &RateStore{db: db, log: logger}, nil
}

// Save stores a snapshot. Re-saving the same base and timestamp overwrites
// the previous rows.
func (s *RateStore) Save(rates *ExchangeRates) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("save rates: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
        INSERT OR REPLACE INTO rates (base, code, rate, timestamp)
        VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("save rates: %w", err)
	}
	defer stmt.Close()

	for code, rate := range rates.Rates {
		if _, err := stmt.Exec(rates.Base, code, rate, rates.Timestamp); err != nil {
			return fmt.Errorf("save rate %s: %w", code, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("save rates: %w", err)
	}
	s.log.Debug("rates saved",
		zap.String("base", rates.Base),
		zap.Int64("timestamp", rates.Timestamp),
		zap.Int("count", len(rates.Rates)))
	return nil
}

// Latest returns the most recent snapshot for base, or nil when the store
// has none.
func (s *RateStore) Latest(base string) (*ExchangeRates, error) {
	var ts sql.NullInt64
	err := s.db.QueryRow(
		`SELECT MAX(timestamp) FROM rates WHERE base = ?`, base).Scan(&ts)
	if err != nil {
		return nil, fmt.Errorf("load rates: %w", err)
	}
	if !ts.Valid {
		s.log.Debug("no cached rates", zap.String("base", base))
		return nil, nil
	}

	rows, err := s.db.Query(
		`SELECT code, rate FROM rates WHERE base = ? AND timestamp = ?`, base, ts.Int64)
	if err != nil {
		return nil, fmt.Errorf("load rates: %w", err)
	}
	defer rows.Close()

	rates := &ExchangeRates{Base: base, Timestamp: ts.Int64, Rates: map[string]string{}}
	for rows.Next() {
		var code, rate string
		if err := rows.Scan(&code, &rate); err != nil {
			return nil, fmt.Errorf("load rates: %w", err)
		}
		rates.Rates[code] = rate
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load rates: %w", err)
	}
	if len(rates.Rates) == 0 {
		return nil, nil
	}
	return rates, nil
}

// Close closes the underlying database.
func (s *RateStore) Close() error {
	return s.db.Close()
}
