// Package sqlite_test contains integration tests for SQLite repositories.
//
// Tests build in-memory databases from db.GetSchemaSQL() so they always run
// against the authoritative schema. Do not hardcode CREATE TABLE statements
// in test files.
package sqlite_test

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/example/kosha/internal/db"
)

// setupTestDB creates an in-memory database with the authoritative schema.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	_, err = testDB.Exec(db.GetSchemaSQL())
	if err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

// seedDhatuForm inserts a test form to code pair.
func seedDhatuForm(t *testing.T, db *sql.DB, form, code string) {
	t.Helper()
	_, err := db.Exec("INSERT INTO dhatu_forms (form, code) VALUES (?, ?)", form, code)
	if err != nil {
		t.Fatalf("failed to seed dhatu form: %v", err)
	}
}
