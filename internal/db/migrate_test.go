package db

import (
	"context"
	"path/filepath"
	"testing"
)

func TestMigrateIsIdempotent(t *testing.T) {
	ctx := context.Background()
	conn, err := Open(ctx, filepath.Join(t.TempDir(), "masar.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer conn.Close()

	if err := Migrate(ctx, conn); err != nil {
		t.Fatalf("first migrate: %v", err)
	}
	// Startup runs Migrate unconditionally, so a second run against a current
	// database must be a no-op.
	if err := Migrate(ctx, conn); err != nil {
		t.Fatalf("second migrate: %v", err)
	}

	var versions int
	if err := conn.QueryRowContext(ctx, "SELECT COUNT(1) FROM schema_migrations").Scan(&versions); err != nil {
		t.Fatalf("count versions: %v", err)
	}
	if versions != 2 {
		t.Fatalf("expected 2 applied migrations, got %d", versions)
	}

	for _, table := range []string{"employees", "attachments"} {
		var count int
		if err := conn.QueryRowContext(ctx, "SELECT COUNT(1) FROM "+table).Scan(&count); err != nil {
			t.Fatalf("table %s missing: %v", table, err)
		}
	}

	// The later-version columns exist after migration 0002.
	if _, err := conn.ExecContext(ctx, "SELECT content_type, uploaded_at FROM attachments LIMIT 1"); err != nil {
		t.Fatalf("attachment metadata columns missing: %v", err)
	}
}
