package migrate

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCreateSQLMigration(t *testing.T) {
	dir := t.TempDir()

	path, err := CreateSQLMigration(dir, "Add Index On Names!")
	if err != nil {
		t.Fatalf("CreateSQLMigration returned error: %v", err)
	}

	base := filepath.Base(path)
	if !strings.HasSuffix(base, "_add_index_on_names.sql") {
		t.Fatalf("unexpected sanitized filename %q", base)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read created migration: %v", err)
	}
	if !strings.Contains(string(content), "-- +goose Up") ||
		!strings.Contains(string(content), "-- +goose Down") {
		t.Fatalf("expected goose markers in template, got %s", content)
	}
}

func TestCreateSQLMigrationRejectsEmptyName(t *testing.T) {
	if _, err := CreateSQLMigration(t.TempDir(), ""); err == nil {
		t.Fatal("expected empty name to fail")
	}
	if _, err := CreateSQLMigration(t.TempDir(), "!!!"); err == nil {
		t.Fatal("expected fully sanitized-away name to fail")
	}
}

func TestValidateDirAcceptsShippedMigrations(t *testing.T) {
	if err := ValidateDir("migrations"); err != nil {
		t.Fatalf("shipped migrations failed validation: %v", err)
	}
}

func TestValidateDirRejectsBadFilename(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "001_short_version.sql")
	if err := os.WriteFile(bad, []byte("-- +goose Up\n-- +goose Down\n"), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	if err := ValidateDir(dir); err == nil {
		t.Fatal("expected short version prefix to fail validation")
	}
}

func TestValidateDirRejectsMissingMarkers(t *testing.T) {
	dir := t.TempDir()
	missing := filepath.Join(dir, "20260101000000_no_down.sql")
	if err := os.WriteFile(missing, []byte("-- +goose Up\nCREATE TABLE t (id INTEGER);\n"), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	if err := ValidateDir(dir); err == nil {
		t.Fatal("expected missing Down marker to fail validation")
	}
}
