package storage

import "testing"

func TestDialectRebind(t *testing.T) {
	query := "UPDATE habits SET name = ? WHERE id = ?"

	if got := SQLiteDialect.Rebind(query); got != query {
		t.Errorf("sqlite Rebind() = %q", got)
	}
	want := "UPDATE habits SET name = $1 WHERE id = $2"
	if got := PostgresDialect.Rebind(query); got != want {
		t.Errorf("postgres Rebind() = %q, want %q", got, want)
	}
}

func TestUninitializedStore(t *testing.T) {
	var s SQLStore
	if _, err := s.GetAllHabits(false, false); err != ErrNotInitialized {
		t.Errorf("GetAllHabits() error = %v, want ErrNotInitialized", err)
	}
	if err := s.ArchiveHabit("x"); err != ErrNotInitialized {
		t.Errorf("ArchiveHabit() error = %v, want ErrNotInitialized", err)
	}
}
