package db

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

const sqliteDriverName = "sqlite"

// InMemoryDSN keeps the activity log entirely in process memory; nothing
// survives a restart, which is exactly the lifetime the dashboard wants.
const InMemoryDSN = ":memory:"

const schemaLogEntries = `
CREATE TABLE IF NOT EXISTS log_entries (
    id TEXT PRIMARY KEY,
    occurred_at TIMESTAMP NOT NULL,
    source TEXT NOT NULL,
    message TEXT NOT NULL,
    level TEXT NOT NULL
);
`

// InitDB opens the SQLite database for the given DSN and ensures the schema
// exists. The pool is pinned to a single connection: an in-memory SQLite
// database is per-connection, so a second connection would see an empty one.
func InitDB(dsn string) (*sql.DB, error) {
	if dsn == "" {
		dsn = InMemoryDSN
	}
	db, err := sql.Open(sqliteDriverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite at %q: %w", dsn, err)
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if _, err := db.Exec("PRAGMA busy_timeout = 5000;"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set PRAGMA busy_timeout=5000: %w", err)
	}

	if _, err := db.Exec(schemaLogEntries); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	return db, nil
}
