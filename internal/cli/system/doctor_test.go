package system

import (
	"strings"
	"testing"
	"time"

	"github.com/julianstephens/habitkit/internal/backup"
	"github.com/julianstephens/habitkit/internal/models"
	"github.com/julianstephens/habitkit/internal/storage/sqlite"
)

func TestDoctorCmd_HealthyDB(t *testing.T) {
	ctx, out, _ := setupInitializedDB(t)

	if err := (&DoctorCmd{}).Run(ctx); err != nil {
		t.Fatalf("doctor command failed on healthy database: %v\n%s", err, out.String())
	}
	for _, want := range []string{"✓ Database reachable: OK", "✓ Schema version: OK", "✓ Migrations complete: OK", "All diagnostics passed!"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}
}

func TestDoctorCmd_MissingBackups(t *testing.T) {
	ctx, out, _ := setupInitializedDB(t)

	if err := (&DoctorCmd{}).Run(ctx); err != nil {
		t.Errorf("doctor command should not fail on missing backups: %v", err)
	}
	if !strings.Contains(out.String(), "⚠ Backups present: WARNING") {
		t.Errorf("expected backup warning:\n%s", out.String())
	}

	out.Reset()
	if _, err := backup.NewManager(ctx.Store.GetConfigPath()).CreateBackup(); err != nil {
		t.Fatalf("CreateBackup() error = %v", err)
	}
	if err := (&DoctorCmd{}).Run(ctx); err != nil {
		t.Fatalf("doctor failed: %v", err)
	}
	if !strings.Contains(out.String(), "✓ Backups present: OK") {
		t.Errorf("expected backups OK:\n%s", out.String())
	}
}

func TestDoctorCmd_UnreachableDB(t *testing.T) {
	ctx, out, _ := setupTestDB(t)

	if err := (&DoctorCmd{}).Run(ctx); err == nil {
		t.Fatal("expected doctor to fail without a database")
	}
	if !strings.Contains(out.String(), "⊘ Schema version: SKIPPED") {
		t.Errorf("expected skipped checks:\n%s", out.String())
	}
}

func TestDoctorCmd_FutureCompletions(t *testing.T) {
	ctx, out, _ := setupInitializedDB(t)
	h := models.Habit{ID: "h1", Name: "Read", CreatedAt: testNow, CompletionDates: []time.Time{testNow.AddDate(0, 0, 2)}}
	if err := ctx.Store.AddHabit(h); err != nil {
		t.Fatalf("failed to add habit: %v", err)
	}

	if err := (&DoctorCmd{}).Run(ctx); err == nil {
		t.Fatal("expected doctor to fail on future completions")
	}
	if !strings.Contains(out.String(), "found 1 completions dated after today") {
		t.Errorf("unexpected output:\n%s", out.String())
	}
}

func TestDoctorCmd_SameDayDuplicates(t *testing.T) {
	ctx, out, _ := setupInitializedDB(t)
	morning := time.Date(2024, 1, 9, 8, 0, 0, 0, time.UTC)
	h := models.Habit{
		ID:              "h1",
		Name:            "Read",
		CreatedAt:       morning,
		CompletionDates: []time.Time{morning, morning.Add(time.Hour), testNow},
	}
	if err := ctx.Store.AddHabit(h); err != nil {
		t.Fatalf("failed to add habit: %v", err)
	}

	if err := (&DoctorCmd{}).Run(ctx); err != nil {
		t.Fatalf("duplicates should only warn: %v", err)
	}
	if !strings.Contains(out.String(), "⚠ Same-day duplicates: WARNING") {
		t.Errorf("expected duplicate warning:\n%s", out.String())
	}

	out.Reset()
	if err := (&DoctorCmd{Fix: true}).Run(ctx); err != nil {
		t.Fatalf("doctor --fix failed: %v", err)
	}
	if !strings.Contains(out.String(), "Collapsed 1 extra completions across 1 habits") {
		t.Errorf("unexpected fix output:\n%s", out.String())
	}

	got, err := ctx.Store.GetHabit("h1")
	if err != nil {
		t.Fatalf("GetHabit() error = %v", err)
	}
	if len(got.CompletionDates) != 2 || !got.CompletionDates[0].Equal(morning) {
		t.Errorf("completions after fix = %v", got.CompletionDates)
	}
}

func TestDoctorCmd_OrphanedCompletions(t *testing.T) {
	ctx, out, _ := setupInitializedDB(t)
	store := ctx.Store.(*sqlite.Store)

	// Foreign keys are not enforced by default in SQLite.
	_, err := store.DB().Exec(`INSERT INTO habit_completions (id, habit_id, position, completed_at) VALUES ('c1', 'nope', 0, '2024-01-09T08:00:00.000000000Z')`)
	if err != nil {
		t.Fatalf("failed to insert orphan: %v", err)
	}

	if err := (&DoctorCmd{}).Run(ctx); err == nil {
		t.Fatal("expected doctor to fail on orphaned completions")
	}
	if !strings.Contains(out.String(), "found 1 orphaned completions") {
		t.Errorf("unexpected output:\n%s", out.String())
	}
}
