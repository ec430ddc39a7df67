package database

import (
	"context"
	"database/sql"
	"errors"
	"testing"
)

// ============================================================================
// Transaction Helper Tests
// ============================================================================

func countKeys(t *testing.T, db *sql.DB, key string) int {
	t.Helper()
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM kv WHERE key = ?", key).Scan(&count); err != nil {
		t.Fatalf("Failed to count keys: %v", err)
	}
	return count
}

func TestWithTx_Success_Commit(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	err := withTx(ctx, db, func(tx *sql.Tx) error {
		_, err := tx.Exec("INSERT INTO kv (key, value) VALUES (?, ?)", "todoTasks", "[]")
		return err
	})
	if err != nil {
		t.Fatalf("Expected transaction to succeed, got error: %v", err)
	}

	if count := countKeys(t, db, "todoTasks"); count != 1 {
		t.Errorf("Expected 1 row, got %d", count)
	}
}

func TestWithTx_Error_Rollback(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	expectedErr := errors.New("intentional error")
	err := withTx(ctx, db, func(tx *sql.Tx) error {
		if _, err := tx.Exec("INSERT INTO kv (key, value) VALUES (?, ?)", "doneTasks", "[]"); err != nil {
			return err
		}
		// Return error to trigger rollback
		return expectedErr
	})
	if !errors.Is(err, expectedErr) {
		t.Fatalf("Expected error %v, got %v", expectedErr, err)
	}

	if count := countKeys(t, db, "doneTasks"); count != 0 {
		t.Errorf("Expected 0 rows (rollback), got %d", count)
	}
}

func TestWithTx_Error_BeginFails(t *testing.T) {
	// A closed database makes BeginTx fail
	db, err := InitDB(context.Background(), MemoryPath)
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	_ = db.Close()

	err = withTx(context.Background(), db, func(tx *sql.Tx) error {
		return nil
	})
	if err == nil {
		t.Fatal("Expected error when beginning transaction on closed DB, got nil")
	}
}
