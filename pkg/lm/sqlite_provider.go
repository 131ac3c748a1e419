package lm

import (
	"database/sql"
	"fmt"
	"sync"

	_ "github.com/ncruces/go-sqlite3/driver"
)

// schema defines the single count table a language-model provider needs
// (spec.md §4.3): one row per observed n-gram, including the empty string
// for the corpus token total. Grounded on internal/store/sqlite_store.go's
// schema-as-constant-string pattern, and on tm.schema's shape.
const schema = `
CREATE TABLE IF NOT EXISTS ngram_counts (
    ngram TEXT PRIMARY KEY,
    count INTEGER NOT NULL DEFAULT 0
);
`

// SQLiteProvider is a SQLite-backed Provider, for a decoder running
// against a pretrained n-gram count table rather than the in-memory
// reference table. Grounded on internal/store/sqlite_store.go and
// tm.SQLiteProvider: same driver, same schema-as-const-string +
// database/sql + sync.RWMutex shape.
type SQLiteProvider struct {
	mu sync.RWMutex
	db *sql.DB
}

// OpenSQLiteProvider opens (creating if absent) a SQLite-backed provider
// at dsn. Use ":memory:" for an ephemeral table.
func OpenSQLiteProvider(dsn string) (*SQLiteProvider, error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("lm: open %s: %w", dsn, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("lm: create schema: %w", err)
	}
	return &SQLiteProvider{db: db}, nil
}

// Close closes the underlying database handle.
func (p *SQLiteProvider) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.db.Close()
}

// Observe upserts a count contribution, the load-time counterpart of
// MemoryProvider.Observe.
func (p *SQLiteProvider) Observe(ngram string, delta int) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, err := p.db.Exec(`
		INSERT INTO ngram_counts (ngram, count) VALUES (?, ?)
		ON CONFLICT(ngram) DO UPDATE SET count = count + excluded.count
	`, ngram, delta); err != nil {
		return fmt.Errorf("lm: update ngram count: %w", err)
	}
	return nil
}

// Count implements Provider.
func (p *SQLiteProvider) Count(ngram string) int {
	p.mu.RLock()
	defer p.mu.RUnlock()

	var count int
	err := p.db.QueryRow(`SELECT count FROM ngram_counts WHERE ngram = ?`, ngram).Scan(&count)
	if err != nil {
		return 0
	}
	return count
}

var _ Provider = (*SQLiteProvider)(nil)
