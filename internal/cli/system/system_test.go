package system

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"

	"github.com/julianstephens/habitkit/internal/cli"
	"github.com/julianstephens/habitkit/internal/storage/sqlite"
)

var testNow = time.Date(2024, 1, 10, 15, 0, 0, 0, time.UTC)

// setupTestDB returns a context over an uninitialized SQLite store.
func setupTestDB(t *testing.T) (*cli.Context, *bytes.Buffer, string) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store := sqlite.NewStore(dbPath)
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("failed to close store: %v", err)
		}
	})

	out := &bytes.Buffer{}
	return &cli.Context{
		Store:    store,
		Timezone: "UTC",
		Now:      func() time.Time { return testNow },
		Out:      out,
	}, out, dbPath
}

func setupInitializedDB(t *testing.T) (*cli.Context, *bytes.Buffer, string) {
	t.Helper()
	ctx, out, dbPath := setupTestDB(t)
	if err := ctx.Store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	return ctx, out, dbPath
}
