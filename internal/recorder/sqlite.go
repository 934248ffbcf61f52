package recorder

import (
	"database/sql"
	"fmt"
	"sync"

	_ "modernc.org/sqlite"

	"llm-stock-picker/internal/types"
)

// SQLiteRecorder persists analyses and picks to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so external readers don't block the poll loop's writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS analyses (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			captured_at INTEGER NOT NULL,
			symbol      TEXT NOT NULL,
			current     REAL,
			high        REAL,
			low         REAL,
			open        REAL,
			prev_close  REAL,
			quote_ts    INTEGER,
			analysis    TEXT,
			failed      INTEGER NOT NULL DEFAULT 0
		)`,
		`CREATE INDEX IF NOT EXISTS idx_analyses_captured ON analyses(captured_at)`,
		`CREATE INDEX IF NOT EXISTS idx_analyses_symbol ON analyses(symbol)`,

		`CREATE TABLE IF NOT EXISTS picks (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			flushed_at INTEGER NOT NULL,
			entries    INTEGER NOT NULL,
			text       TEXT,
			failed     INTEGER NOT NULL DEFAULT 0
		)`,
		`CREATE INDEX IF NOT EXISTS idx_picks_flushed ON picks(flushed_at)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordAnalysis(e *types.AnalyzedEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO analyses
		(captured_at, symbol, current, high, low, open, prev_close, quote_ts, analysis, failed)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.CapturedAt.Unix(), e.Symbol,
		e.Quote.Current, e.Quote.High, e.Quote.Low, e.Quote.Open, e.Quote.PrevClose, e.Quote.Timestamp,
		e.Analysis.Text, boolToInt(e.Analysis.Failed),
	)
	if err != nil {
		return fmt.Errorf("insert analysis: %w", err)
	}
	return nil
}

func (r *SQLiteRecorder) RecordPick(p *types.Pick) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO picks (flushed_at, entries, text, failed) VALUES (?, ?, ?, ?)`,
		p.FlushedAt.Unix(), p.Entries, p.Text, boolToInt(p.Failed),
	)
	if err != nil {
		return fmt.Errorf("insert pick: %w", err)
	}
	return nil
}

func (r *SQLiteRecorder) Close() error {
	return r.db.Close()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
