// Package store provides SQLite-backed persistence for the planner's plan
// cache: a memoization layer over generateActionPlan keyed by a content
// hash of (model, initial state, goal), so repeated queries against an
// unchanged model skip re-search. This is a caller-side optimization on
// top of the core engine, not a core engine component; the planner itself
// remains pure and stateless.
package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// schemaV1 defines the plan cache schema.
const schemaV1 = `
CREATE TABLE IF NOT EXISTS plan_cache (
	cache_key      TEXT PRIMARY KEY,
	row_id         TEXT NOT NULL,
	status         TEXT NOT NULL,
	actions_json   TEXT NOT NULL DEFAULT '[]',
	transitions_json TEXT NOT NULL DEFAULT '[]',
	total_steps    INTEGER NOT NULL DEFAULT 0,
	total_cost     REAL NOT NULL DEFAULT 0.0,
	final_state_json TEXT NOT NULL DEFAULT '[]',
	created_at     INTEGER NOT NULL DEFAULT 0
);
`

// NewDB opens a SQLite database at the given path with recommended pragmas
// and runs the V1 schema migration.
func NewDB(path string) (*sql.DB, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)&_pragma=busy_timeout(5000)", path)

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Limit connections to 1 for SQLite (WAL allows concurrent reads but single writer).
	db.SetMaxOpenConns(1)

	if err := migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate schema: %w", err)
	}

	return db, nil
}

func migrate(db *sql.DB) error {
	_, err := db.ExecContext(context.Background(), schemaV1)
	return err
}
