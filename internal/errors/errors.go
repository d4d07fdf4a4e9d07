package errors

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/julianstephens/habitkit/internal/calendar"
	"github.com/julianstephens/habitkit/internal/logger"
	"github.com/julianstephens/habitkit/internal/models"
	"github.com/julianstephens/habitkit/internal/storage"
	"github.com/julianstephens/habitkit/internal/tracker"
)

var hints = []struct {
	target error
	hint   string
}{
	{storage.ErrNotInitialized, "run 'habitkit init' to create the database"},
	{storage.ErrSchemaTooNew, "upgrade habitkit to open this database"},
	{storage.ErrNotFound, "use 'habitkit habit list --all' to see every habit"},
	{tracker.ErrHabitNotFound, "use 'habitkit habit list --all' to see every habit"},
	{tracker.ErrDuplicateHabit, "pick a different name or edit the existing habit"},
	{models.ErrInvalidColor, fmt.Sprintf("choose one of %v", models.Palette)},
	{calendar.ErrNonAdvancingStep, "this is a bug, please report it with the output of 'habitkit doctor'"},
}

// Hint returns a remediation hint for known errors, or "" if none applies.
func Hint(err error) string {
	for _, h := range hints {
		if stderrors.Is(err, h.target) {
			return h.hint
		}
	}
	return ""
}

// Format formats an error message with a consistent "Error: " prefix
// followed by a hint line when one is known.
func Format(err error) string {
	if err == nil {
		return ""
	}
	if hint := Hint(err); hint != "" {
		return fmt.Sprintf("Error: %v\nHint: %s", err, hint)
	}
	return fmt.Sprintf("Error: %v", err)
}

// Formatf formats an error message with a consistent "Error: " prefix using a format string
func Formatf(format string, args ...interface{}) string {
	return fmt.Sprintf("Error: "+format, args...)
}

// Fatal logs an error and exits the program with exit code 1
func Fatal(err error) {
	if err != nil {
		logger.Error("Command execution failed", "error", err)
		fmt.Fprintf(os.Stderr, "%s\n", Format(err))
		os.Exit(1)
	}
}

// Fatalf logs and formats an error message, then exits the program with exit code 1
func Fatalf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	logger.Error("Command execution failed", "error", msg)
	fmt.Fprintf(os.Stderr, "%s\n", Formatf(format, args...))
	os.Exit(1)
}
