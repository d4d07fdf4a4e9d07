package system

import (
	"database/sql"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/julianstephens/habitkit/internal/backup"
	"github.com/julianstephens/habitkit/internal/calendar"
	"github.com/julianstephens/habitkit/internal/cli"
	"github.com/julianstephens/habitkit/internal/stats"
)

type DoctorCmd struct {
	Fix bool `help:"Collapse same-day duplicate completions into one."`
}

type dbHolder interface {
	DB() *sql.DB
}

type schemaVersioner interface {
	SchemaVersion() (current, latest int, err error)
}

type check struct {
	name    string
	run     func(*cli.Context) error
	needsDB bool
	warning bool
}

func (cmd *DoctorCmd) checks() []check {
	return []check{
		{name: "Schema version", run: checkSchemaVersion, needsDB: true},
		{name: "Migrations complete", run: checkMigrationsComplete, needsDB: true},
		{name: "Backups present", run: checkBackupsPresent, warning: true},
		{name: "Settings", run: checkSettings, needsDB: true},
		{name: "Clock/timezone", run: checkClockTimezone},
		{name: "Habit integrity", run: checkHabitsIntegrity, needsDB: true},
		{name: "Completion dates", run: checkCompletionDates, needsDB: true},
		{name: "Same-day duplicates", run: cmd.checkDuplicates, needsDB: true, warning: !cmd.Fix},
	}
}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	ctx.Println("Running diagnostics...")
	ctx.Println()

	hasError := false
	dbReachable := false

	if err := checkDBReachable(ctx); err != nil {
		ctx.Printf("❌ Database reachable: FAIL\n")
		ctx.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		ctx.Printf("✓ Database reachable: OK\n")
		dbReachable = true
	}

	for _, c := range cmd.checks() {
		if c.needsDB && !dbReachable {
			ctx.Printf("⊘ %s: SKIPPED (database not reachable)\n", c.name)
			continue
		}
		err := c.run(ctx)
		switch {
		case err == nil:
			ctx.Printf("✓ %s: OK\n", c.name)
		case c.warning:
			ctx.Printf("⚠ %s: WARNING\n", c.name)
			ctx.Printf("   %v\n", err)
		default:
			ctx.Printf("❌ %s: FAIL\n", c.name)
			ctx.Printf("   Error: %v\n", err)
			hasError = true
		}
	}

	ctx.Println()
	if hasError {
		ctx.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	ctx.Println("All diagnostics passed!")
	return nil
}

func checkDBReachable(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load database: %w", err)
	}

	if h, ok := ctx.Store.(dbHolder); ok {
		db := h.DB()
		if db == nil {
			return fmt.Errorf("database connection is nil")
		}
		var result int
		if err := db.QueryRow("SELECT 1").Scan(&result); err != nil {
			return fmt.Errorf("failed to query database: %w", err)
		}
	}
	return nil
}

func schemaVersions(ctx *cli.Context) (int, int, bool, error) {
	v, ok := ctx.Store.(schemaVersioner)
	if !ok {
		return 0, 0, false, nil
	}
	current, latest, err := v.SchemaVersion()
	if err != nil {
		return 0, 0, true, fmt.Errorf("failed to get schema version: %w", err)
	}
	return current, latest, true, nil
}

func checkSchemaVersion(ctx *cli.Context) error {
	current, latest, ok, err := schemaVersions(ctx)
	if !ok || err != nil {
		return err
	}
	if current > latest {
		return fmt.Errorf("database schema version (%d) is newer than supported version (%d)", current, latest)
	}
	return nil
}

func checkMigrationsComplete(ctx *cli.Context) error {
	current, latest, ok, err := schemaVersions(ctx)
	if !ok || err != nil {
		return err
	}
	if current < latest {
		return fmt.Errorf("migrations incomplete: current version %d, latest version %d (run 'habitkit migrate')", current, latest)
	}
	return nil
}

func checkBackupsPresent(ctx *cli.Context) error {
	path := ctx.Store.GetConfigPath()
	if _, err := os.Stat(path); err != nil {
		// Not a file-backed database.
		return nil
	}
	backups, err := backup.NewManager(path).ListBackups()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}
	if len(backups) == 0 {
		return fmt.Errorf("no backups found - consider creating one with 'habitkit backup create'")
	}
	return nil
}

func checkSettings(ctx *cli.Context) error {
	settings, err := ctx.Settings()
	if err != nil {
		return err
	}
	if _, err := calendar.FromSettings(settings.Timezone, settings.WeekStart); err != nil {
		return err
	}
	if _, err := stats.ParseRangePolicy(settings.DefaultRange); err != nil {
		return err
	}
	return nil
}

func checkClockTimezone(ctx *cli.Context) error {
	now := ctx.Clock()
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}
	return nil
}

func checkHabitsIntegrity(ctx *cli.Context) error {
	habits, err := ctx.Store.GetAllHabits(true, false)
	if err != nil {
		return fmt.Errorf("failed to load habits: %w", err)
	}

	names := make(map[string]string, len(habits))
	for _, h := range habits {
		if strings.TrimSpace(h.Name) == "" {
			return fmt.Errorf("habit %s has an empty name", h.ID)
		}
		if h.CreatedAt.IsZero() {
			return fmt.Errorf("habit %s has no creation date", h.ID)
		}
		key := strings.ToLower(h.Name)
		if other, dup := names[key]; dup {
			return fmt.Errorf("habits %s and %s share the name %q", other, h.ID, h.Name)
		}
		names[key] = h.ID
	}

	holder, ok := ctx.Store.(dbHolder)
	if !ok {
		return nil
	}
	var orphaned int
	err = holder.DB().QueryRow(`
		SELECT COUNT(*)
		FROM habit_completions c
		LEFT JOIN habits h ON c.habit_id = h.id
		WHERE h.id IS NULL
	`).Scan(&orphaned)
	if err != nil {
		return fmt.Errorf("failed to check orphaned completions: %w", err)
	}
	if orphaned > 0 {
		return fmt.Errorf("found %d orphaned completions (referencing non-existent habits)", orphaned)
	}
	return nil
}

func checkCompletionDates(ctx *cli.Context) error {
	cal, _, err := ctx.Calendar()
	if err != nil {
		return err
	}
	habits, err := ctx.Store.GetAllHabits(true, false)
	if err != nil {
		return fmt.Errorf("failed to load habits: %w", err)
	}

	now := ctx.Clock()
	future := 0
	for _, h := range habits {
		for _, d := range h.CompletionDates {
			if cal.DayDifference(now, d) > 0 {
				future++
			}
		}
	}
	if future > 0 {
		return fmt.Errorf("found %d completions dated after today", future)
	}
	return nil
}

func (cmd *DoctorCmd) checkDuplicates(ctx *cli.Context) error {
	cal, _, err := ctx.Calendar()
	if err != nil {
		return err
	}
	habits, err := ctx.Store.GetAllHabits(true, false)
	if err != nil {
		return fmt.Errorf("failed to load habits: %w", err)
	}

	affected, removed := 0, 0
	for _, h := range habits {
		n := h.Normalize(cal)
		if n == 0 {
			continue
		}
		affected++
		removed += n
		if cmd.Fix {
			if err := ctx.Store.UpdateHabit(h); err != nil {
				return fmt.Errorf("failed to save habit %s: %w", h.ID, err)
			}
		}
	}

	if removed > 0 && !cmd.Fix {
		return fmt.Errorf("%d habits have %d extra same-day completions (run 'habitkit doctor --fix' to collapse them)", affected, removed)
	}
	if removed > 0 {
		ctx.Printf("   Collapsed %d extra completions across %d habits\n", removed, affected)
	}
	return nil
}
