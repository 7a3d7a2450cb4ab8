// Package cache is a sqlite-backed cache of prior analysis results, keyed
// by source content hash, so cmd/odds can skip re-analyzing an unchanged
// file. Grounded on the teacher lineage's database/sql + blank-imported
// modernc.org/sqlite driver idiom (internal/evaluator/builtins_sql.go in
// the mcgru-funxy sibling snapshot), repurposed from an in-language SQL
// builtin to CLI-internal state.
package cache

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"time"

	_ "modernc.org/sqlite"
)

// Entry is one cached analysis outcome.
type Entry struct {
	OK             bool
	DiagnosticCode string
	RunID          string
	AnalyzedAt     time.Time
}

// Cache wraps a sqlite database holding one row per distinct source hash.
type Cache struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS analysis_cache (
	content_hash TEXT PRIMARY KEY,
	ok INTEGER NOT NULL,
	diagnostic_code TEXT NOT NULL DEFAULT '',
	run_id TEXT NOT NULL,
	analyzed_at TEXT NOT NULL
);
`

// Open opens (creating if necessary) the sqlite database at path and
// ensures its schema exists.
func Open(path string) (*Cache, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Cache{db: db}, nil
}

// Close releases the underlying database handle.
func (c *Cache) Close() error {
	return c.db.Close()
}

// HashSource returns the cache key for a file's contents.
func HashSource(source string) string {
	sum := sha256.Sum256([]byte(source))
	return hex.EncodeToString(sum[:])
}

// Lookup returns the cached entry for contentHash, if any.
func (c *Cache) Lookup(contentHash string) (Entry, bool, error) {
	row := c.db.QueryRow(
		`SELECT ok, diagnostic_code, run_id, analyzed_at FROM analysis_cache WHERE content_hash = ?`,
		contentHash,
	)
	var e Entry
	var ok int
	var analyzedAt string
	switch err := row.Scan(&ok, &e.DiagnosticCode, &e.RunID, &analyzedAt); err {
	case nil:
	case sql.ErrNoRows:
		return Entry{}, false, nil
	default:
		return Entry{}, false, err
	}
	e.OK = ok != 0
	parsed, err := time.Parse(time.RFC3339, analyzedAt)
	if err != nil {
		return Entry{}, false, err
	}
	e.AnalyzedAt = parsed
	return e, true, nil
}

// Put records (or replaces) the analysis outcome for contentHash.
func (c *Cache) Put(contentHash string, e Entry) error {
	okInt := 0
	if e.OK {
		okInt = 1
	}
	_, err := c.db.Exec(
		`INSERT INTO analysis_cache (content_hash, ok, diagnostic_code, run_id, analyzed_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(content_hash) DO UPDATE SET
		   ok = excluded.ok,
		   diagnostic_code = excluded.diagnostic_code,
		   run_id = excluded.run_id,
		   analyzed_at = excluded.analyzed_at`,
		contentHash, okInt, e.DiagnosticCode, e.RunID, e.AnalyzedAt.Format(time.RFC3339),
	)
	return err
}
