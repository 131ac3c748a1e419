package tm

import (
	"database/sql"
	"fmt"
	"sync"

	_ "github.com/ncruces/go-sqlite3/driver"
)

// schema defines the two count tables a translation-model provider needs
// (spec.md §4.2): per-source-phrase counts, and per-(source,target) joint
// counts. Grounded on internal/store/sqlite_store.go's
// schema-as-constant-string pattern.
const schema = `
CREATE TABLE IF NOT EXISTS src_counts (
    src_phrase TEXT PRIMARY KEY,
    count INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS joint_counts (
    src_phrase TEXT NOT NULL,
    trg_phrase TEXT NOT NULL,
    count INTEGER NOT NULL DEFAULT 0,
    PRIMARY KEY (src_phrase, trg_phrase)
);

CREATE INDEX IF NOT EXISTS idx_joint_src ON joint_counts(src_phrase);
`

// SQLiteProvider is a SQLite-backed Provider, for a decoder running
// against a pretrained count table rather than the in-memory reference
// table. Grounded on internal/store/sqlite_store.go: same driver, same
// schema-as-const-string + database/sql + sync.RWMutex shape.
type SQLiteProvider struct {
	mu sync.RWMutex
	db *sql.DB
}

// OpenSQLiteProvider opens (creating if absent) a SQLite-backed provider
// at dsn. Use ":memory:" for an ephemeral table.
func OpenSQLiteProvider(dsn string) (*SQLiteProvider, error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("tm: open %s: %w", dsn, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("tm: create schema: %w", err)
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
// MemoryProvider.Observe. Training/estimation proper is out of scope
// (spec.md §1); this only persists counts a trainer already computed.
func (p *SQLiteProvider) Observe(srcPhrase, trgPhrase string, count int) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, err := p.db.Exec(`
		INSERT INTO src_counts (src_phrase, count) VALUES (?, ?)
		ON CONFLICT(src_phrase) DO UPDATE SET count = count + excluded.count
	`, srcPhrase, count); err != nil {
		return fmt.Errorf("tm: update src count: %w", err)
	}

	if _, err := p.db.Exec(`
		INSERT INTO joint_counts (src_phrase, trg_phrase, count) VALUES (?, ?, ?)
		ON CONFLICT(src_phrase, trg_phrase) DO UPDATE SET count = count + excluded.count
	`, srcPhrase, trgPhrase, count); err != nil {
		return fmt.Errorf("tm: update joint count: %w", err)
	}

	return nil
}

// Targets implements Provider.
func (p *SQLiteProvider) Targets(srcPhrase string) []string {
	p.mu.RLock()
	defer p.mu.RUnlock()

	rows, err := p.db.Query(`SELECT trg_phrase FROM joint_counts WHERE src_phrase = ?`, srcPhrase)
	if err != nil {
		return nil
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var trg string
		if rows.Scan(&trg) == nil {
			out = append(out, trg)
		}
	}
	return out
}

// SrcCount implements Provider.
func (p *SQLiteProvider) SrcCount(srcPhrase string) int {
	p.mu.RLock()
	defer p.mu.RUnlock()

	var count int
	err := p.db.QueryRow(`SELECT count FROM src_counts WHERE src_phrase = ?`, srcPhrase).Scan(&count)
	if err != nil {
		return 0
	}
	return count
}

// JointCount implements Provider.
func (p *SQLiteProvider) JointCount(srcPhrase, trgPhrase string) int {
	p.mu.RLock()
	defer p.mu.RUnlock()

	var count int
	err := p.db.QueryRow(`
		SELECT count FROM joint_counts WHERE src_phrase = ? AND trg_phrase = ?
	`, srcPhrase, trgPhrase).Scan(&count)
	if err != nil {
		return 0
	}
	return count
}

var _ Provider = (*SQLiteProvider)(nil)
