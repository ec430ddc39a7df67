package database

import (
	"context"
	"path/filepath"
	"testing"
)

// Values written through one connection survive closing and reopening the file
func TestKVPersistsAcrossReopen(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "tasks.db")

	db, err := InitDB(ctx, path)
	if err != nil {
		t.Fatalf("InitDB failed: %v", err)
	}
	if err := NewRepository(db).Set(ctx, "doneTasks", `[{"id":1}]`); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := db.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	reopened, err := InitDB(ctx, path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer reopened.Close()

	value, ok, err := NewRepository(reopened).Get(ctx, "doneTasks")
	if err != nil || !ok {
		t.Fatalf("Get after reopen: ok=%v err=%v", ok, err)
	}
	if value != `[{"id":1}]` {
		t.Errorf("Get after reopen = %q", value)
	}
}

// Migrations are idempotent
func TestInitDBTwiceOnSameFile(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "tasks.db")

	for i := 0; i < 2; i++ {
		db, err := InitDB(ctx, path)
		if err != nil {
			t.Fatalf("InitDB #%d failed: %v", i+1, err)
		}
		_ = db.Close()
	}
}
