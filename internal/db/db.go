package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// Open opens the single database file and returns the shared handle used for
// the process lifetime. The pool is capped at one connection: every operation
// is synchronous and the file is never shared between processes.
func Open(ctx context.Context, file string) (*sql.DB, error) {
	conn, err := sql.Open("sqlite", file)
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w", file, err)
	}
	conn.SetMaxOpenConns(1)

	if err := conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("ping database %s: %w", file, err)
	}

	if _, err := conn.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}

	return conn, nil
}
