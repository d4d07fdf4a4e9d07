package migration

import (
	"database/sql"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	_ "modernc.org/sqlite"
)

func openDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestReadMigrationFiles(t *testing.T) {
	tests := []struct {
		name    string
		files   fstest.MapFS
		want    []int
		wantErr string
	}{
		{
			name: "sorted by version",
			files: fstest.MapFS{
				"002_second.sql": {Data: []byte("SELECT 2;")},
				"001_first.sql":  {Data: []byte("SELECT 1;")},
				"README.md":      {Data: []byte("ignored")},
			},
			want: []int{1, 2},
		},
		{
			name:    "bad name",
			files:   fstest.MapFS{"init.sql": {Data: []byte("")}},
			wantErr: "invalid migration filename",
		},
		{
			name:    "zero version",
			files:   fstest.MapFS{"000_zero.sql": {Data: []byte("")}},
			wantErr: "at least 1",
		},
		{
			name: "duplicate version",
			files: fstest.MapFS{
				"001_a.sql":  {Data: []byte("")},
				"0001_b.sql": {Data: []byte("")},
			},
			wantErr: "duplicate migration version 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRunner(nil, tt.files)
			got, err := r.ReadMigrationFiles()
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("ReadMigrationFiles() error = %v, want %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ReadMigrationFiles() error = %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %d migrations, want %d", len(got), len(tt.want))
			}
			for i, v := range tt.want {
				if got[i].Version != v {
					t.Errorf("migration %d version = %d, want %d", i, got[i].Version, v)
				}
			}
		})
	}
}

func TestApplyMigrations(t *testing.T) {
	db := openDB(t)
	files := fstest.MapFS{
		"001_init.sql": {Data: []byte("CREATE TABLE a (id INTEGER PRIMARY KEY);")},
		"002_more.sql": {Data: []byte("CREATE TABLE b (id INTEGER PRIMARY KEY); INSERT INTO b (id) VALUES (1);")},
	}
	r := NewRunner(db, files)

	var logs []string
	n, err := r.ApplyMigrations(func(s string) { logs = append(logs, s) })
	if err != nil {
		t.Fatalf("ApplyMigrations() error = %v", err)
	}
	if n != 2 {
		t.Errorf("applied %d migrations, want 2", n)
	}
	if len(logs) == 0 {
		t.Error("expected progress messages")
	}

	v, err := r.GetCurrentVersion()
	if err != nil || v != 2 {
		t.Errorf("GetCurrentVersion() = %d, %v; want 2", v, err)
	}

	n, err = r.ApplyMigrations(nil)
	if err != nil || n != 0 {
		t.Errorf("second ApplyMigrations() = %d, %v; want 0, nil", n, err)
	}
}

func TestApplyMigrationsRollsBackFailure(t *testing.T) {
	db := openDB(t)
	files := fstest.MapFS{
		"001_init.sql":   {Data: []byte("CREATE TABLE a (id INTEGER PRIMARY KEY);")},
		"002_broken.sql": {Data: []byte("CREATE TABLE nope (")},
	}
	r := NewRunner(db, files)

	n, err := r.ApplyMigrations(nil)
	if err == nil {
		t.Fatal("expected an error from the broken migration")
	}
	if n != 1 {
		t.Errorf("applied %d migrations, want 1", n)
	}
	if v, _ := r.GetCurrentVersion(); v != 1 {
		t.Errorf("GetCurrentVersion() = %d, want 1", v)
	}
}

func TestValidateVersionRejectsNewerSchema(t *testing.T) {
	db := openDB(t)
	files := fstest.MapFS{"001_init.sql": {Data: []byte("SELECT 1;")}}
	r := NewRunner(db, files)

	if err := r.EnsureSchemaVersionTable(); err != nil {
		t.Fatal(err)
	}
	if _, err := db.Exec("INSERT INTO schema_version (version) VALUES (5)"); err != nil {
		t.Fatal(err)
	}

	if err := r.ValidateVersion(); !errors.Is(err, ErrSchemaTooNew) {
		t.Errorf("ValidateVersion() error = %v, want ErrSchemaTooNew", err)
	}
	if _, err := r.ApplyMigrations(nil); !errors.Is(err, ErrSchemaTooNew) {
		t.Errorf("ApplyMigrations() error = %v, want ErrSchemaTooNew", err)
	}
}
