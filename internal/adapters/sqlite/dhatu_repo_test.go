package sqlite_test

import (
	"context"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/example/kosha/internal/adapters/sqlite"
)

func TestDhatuRepositoryAddAndCodes(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewDhatuRepository(db)
	ctx := context.Background()

	if err := repo.Add(ctx, "भू", "01.0001"); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := repo.Add(ctx, "भू", "10.0277"); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	codes, err := repo.Codes(ctx, "भू")
	if err != nil {
		t.Fatalf("Codes failed: %v", err)
	}
	if len(codes) != 2 || codes[0] != "01.0001" || codes[1] != "10.0277" {
		t.Errorf("expected [01.0001 10.0277], got %v", codes)
	}
}

func TestDhatuRepositoryAddIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewDhatuRepository(db)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if err := repo.Add(ctx, "गम्", "01.1137"); err != nil {
			t.Fatalf("Add failed: %v", err)
		}
	}

	count, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 row after repeated adds, got %d", count)
	}
}

func TestDhatuRepositoryCodesUnknownForm(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewDhatuRepository(db)

	codes, err := repo.Codes(context.Background(), "नास्ति")
	if err != nil {
		t.Fatalf("Codes failed: %v", err)
	}
	if len(codes) != 0 {
		t.Errorf("expected no codes for unknown form, got %v", codes)
	}
}

func TestDhatuRepositoryHasCode(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewDhatuRepository(db)
	ctx := context.Background()

	seedDhatuForm(t, db, "भू", "01.0001")

	tests := []struct {
		name string
		code string
		want bool
	}{
		{"known code", "01.0001", true},
		{"unknown code", "99.9999", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.HasCode(ctx, tt.code)
			if err != nil {
				t.Fatalf("HasCode failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("HasCode(%q) = %v, want %v", tt.code, got, tt.want)
			}
		})
	}
}

func TestDhatuRepositoryCount(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewDhatuRepository(db)

	seedDhatuForm(t, db, "भू", "01.0001")
	seedDhatuForm(t, db, "गम्", "01.1137")

	count, err := repo.Count(context.Background())
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if count != 2 {
		t.Errorf("expected 2, got %d", count)
	}
}
