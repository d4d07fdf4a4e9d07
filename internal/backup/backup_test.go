package backup

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"
	"time"

	_ "modernc.org/sqlite"
)

func setupTestDB(t *testing.T) string {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "habitkit.db")

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	defer db.Close()

	if _, err := db.Exec(`CREATE TABLE habits (id TEXT PRIMARY KEY, name TEXT)`); err != nil {
		t.Fatalf("failed to create test table: %v", err)
	}
	if _, err := db.Exec(`INSERT INTO habits (id, name) VALUES ('a', 'Read'), ('b', 'Run')`); err != nil {
		t.Fatalf("failed to insert test data: %v", err)
	}
	return dbPath
}

func countHabits(t *testing.T, path string) int {
	t.Helper()
	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM habits").Scan(&count); err != nil {
		t.Fatalf("failed to query database: %v", err)
	}
	return count
}

// tickingClock returns a clock advancing one second per call.
func tickingClock() func() time.Time {
	t := time.Date(2024, 1, 10, 12, 0, 0, 0, time.Local)
	return func() time.Time {
		t = t.Add(time.Second)
		return t
	}
}

func TestCreateBackup(t *testing.T) {
	dbPath := setupTestDB(t)
	mgr := NewManager(dbPath)

	backupPath, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup() error = %v", err)
	}
	if filepath.Dir(backupPath) != mgr.BackupDir() {
		t.Errorf("backup written to %s, want %s", filepath.Dir(backupPath), mgr.BackupDir())
	}
	if got := countHabits(t, backupPath); got != 2 {
		t.Errorf("expected 2 rows in backup, got %d", got)
	}
}

func TestCreateBackupMissingDatabase(t *testing.T) {
	mgr := NewManager(filepath.Join(t.TempDir(), "missing.db"))
	if _, err := mgr.CreateBackup(); err == nil {
		t.Error("expected an error for a missing database")
	}
}

func TestBackupRotation(t *testing.T) {
	dbPath := setupTestDB(t)
	mgr := NewManager(dbPath)
	mgr.now = tickingClock()

	for i := 0; i < mgr.Keep()+3; i++ {
		if _, err := mgr.CreateBackup(); err != nil {
			t.Fatalf("CreateBackup #%d error = %v", i, err)
		}
	}

	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups() error = %v", err)
	}
	if len(backups) != mgr.Keep() {
		t.Errorf("expected %d backups after rotation, got %d", mgr.Keep(), len(backups))
	}
	for i := 1; i < len(backups); i++ {
		if !backups[i].Timestamp.Before(backups[i-1].Timestamp) {
			t.Errorf("backup %d is not older than backup %d", i, i-1)
		}
	}
}

func TestSameSecondBackupsGetCounter(t *testing.T) {
	dbPath := setupTestDB(t)
	mgr := NewManager(dbPath)
	fixed := time.Date(2024, 1, 10, 12, 0, 0, 0, time.Local)
	mgr.now = func() time.Time { return fixed }

	first, err := mgr.CreateBackup()
	if err != nil {
		t.Fatal(err)
	}
	second, err := mgr.CreateBackup()
	if err != nil {
		t.Fatal(err)
	}
	if first == second {
		t.Fatal("expected distinct backup paths")
	}
	if filepath.Base(second) != "habitkit-20240110-120000-1.db" {
		t.Errorf("second backup = %s", filepath.Base(second))
	}

	backups, err := mgr.ListBackups()
	if err != nil || len(backups) != 2 {
		t.Fatalf("ListBackups() = %d, %v; want 2", len(backups), err)
	}
}

func TestListBackupsIgnoresForeignFiles(t *testing.T) {
	dbPath := setupTestDB(t)
	mgr := NewManager(dbPath)

	if err := os.MkdirAll(mgr.BackupDir(), 0700); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"notes.txt", "habitkit-latest.db", "other-20240110-1200.db"} {
		if err := os.WriteFile(filepath.Join(mgr.BackupDir(), name), []byte("x"), 0600); err != nil {
			t.Fatal(err)
		}
	}

	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups() error = %v", err)
	}
	if len(backups) != 0 {
		t.Errorf("expected no backups, got %d", len(backups))
	}
}

func TestRestoreBackup(t *testing.T) {
	dbPath := setupTestDB(t)
	mgr := NewManager(dbPath)
	mgr.now = tickingClock()

	backupPath, err := mgr.CreateBackup()
	if err != nil {
		t.Fatal(err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := db.Exec("DELETE FROM habits"); err != nil {
		t.Fatal(err)
	}
	db.Close()

	resolved, err := mgr.ResolvePath(filepath.Base(backupPath))
	if err != nil || resolved != backupPath {
		t.Fatalf("ResolvePath() = %q, %v; want %q", resolved, err, backupPath)
	}

	safety, err := mgr.RestoreBackup(resolved)
	if err != nil {
		t.Fatalf("RestoreBackup() error = %v", err)
	}
	if got := countHabits(t, dbPath); got != 2 {
		t.Errorf("expected 2 rows after restore, got %d", got)
	}
	if got := countHabits(t, safety); got != 0 {
		t.Errorf("expected the safety backup to hold the emptied database, got %d rows", got)
	}
}

func TestRestoreRejectsInvalidFile(t *testing.T) {
	dbPath := setupTestDB(t)
	mgr := NewManager(dbPath)

	bogus := filepath.Join(t.TempDir(), "habitkit-20240110-1200.db")
	if err := os.WriteFile(bogus, []byte("definitely not sqlite, just text padding the header out"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := mgr.RestoreBackup(bogus); err == nil {
		t.Error("expected an error for an invalid backup")
	}
	if got := countHabits(t, dbPath); got != 2 {
		t.Errorf("database changed after failed restore: %d rows", got)
	}
}

func TestResolvePathMissing(t *testing.T) {
	mgr := NewManager(setupTestDB(t))
	if _, err := mgr.ResolvePath("habitkit-19990101-0000.db"); err == nil {
		t.Error("expected an error for a missing backup")
	}
}
