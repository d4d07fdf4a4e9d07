package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/habitkit/internal/constants"
	"github.com/julianstephens/habitkit/internal/logger"
	"github.com/julianstephens/habitkit/internal/models"
)

// Dialect adapts the shared queries to a driver.
type Dialect struct {
	Name string
	// Numbered rewrites ? placeholders to $1, $2, ...
	Numbered bool
}

var (
	SQLiteDialect   = Dialect{Name: "sqlite"}
	PostgresDialect = Dialect{Name: "postgres", Numbered: true}
)

// Rebind rewrites the ? placeholders of query for the dialect.
func (d Dialect) Rebind(query string) string {
	if !d.Numbered {
		return query
	}
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// SQLStore implements the settings and habit operations of Provider on top
// of database/sql. Backends embed it and own the connection lifecycle.
type SQLStore struct {
	db      *sql.DB
	dialect Dialect
}

// NewSQLStore wraps an open database.
func NewSQLStore(db *sql.DB, dialect Dialect) SQLStore {
	return SQLStore{db: db, dialect: dialect}
}

// DB returns the underlying connection, nil before Init or Load.
func (s *SQLStore) DB() *sql.DB {
	return s.db
}

const habitColumns = "id, name, icon, color, target_count, created_at, archived_at, deleted_at"

func (s *SQLStore) ready() error {
	if s.db == nil {
		return ErrNotInitialized
	}
	return nil
}

func (s *SQLStore) exec(query string, args ...any) (sql.Result, error) {
	return s.db.Exec(s.dialect.Rebind(query), args...)
}

func (s *SQLStore) GetSettings() (models.Settings, error) {
	if err := s.ready(); err != nil {
		return models.Settings{}, err
	}
	rows, err := s.db.Query("SELECT key, value FROM settings")
	if err != nil {
		return models.Settings{}, err
	}
	defer rows.Close()

	data := map[string]string{}
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return models.Settings{}, err
		}
		data[key] = value
	}
	if err := rows.Err(); err != nil {
		return models.Settings{}, err
	}
	if len(data) == 0 {
		return models.Settings{}, fmt.Errorf("settings: %w", ErrNotFound)
	}
	return models.MapToSettings(data)
}

func (s *SQLStore) SaveSettings(settings models.Settings) error {
	if err := s.ready(); err != nil {
		return err
	}
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.Prepare(s.dialect.Rebind(
		"INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT (key) DO UPDATE SET value = excluded.value"))
	if err != nil {
		return err
	}
	defer stmt.Close()

	for key, value := range models.SettingsToMap(settings) {
		if _, err := stmt.Exec(key, value); err != nil {
			return fmt.Errorf("saving setting %s: %w", key, err)
		}
	}
	return tx.Commit()
}

func (s *SQLStore) AddHabit(habit models.Habit) error {
	return s.UpdateHabit(habit)
}

func (s *SQLStore) GetHabit(id string) (models.Habit, error) {
	return s.getHabitWhere("id = ?", id)
}

// GetHabitByName returns the oldest live habit with name.
func (s *SQLStore) GetHabitByName(name string) (models.Habit, error) {
	return s.getHabitWhere("name = ?", name)
}

func (s *SQLStore) getHabitWhere(cond string, arg any) (models.Habit, error) {
	if err := s.ready(); err != nil {
		return models.Habit{}, err
	}
	query := "SELECT " + habitColumns + " FROM habits WHERE " + cond +
		" AND deleted_at IS NULL ORDER BY created_at, id LIMIT 1"
	row := s.db.QueryRow(s.dialect.Rebind(query), arg)

	h, err := scanHabit(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Habit{}, fmt.Errorf("habit %q: %w", arg, ErrNotFound)
		}
		return models.Habit{}, err
	}

	completions, err := s.completionsFor([]string{h.ID})
	if err != nil {
		return models.Habit{}, err
	}
	h.CompletionDates = completions[h.ID]
	return h, nil
}

func (s *SQLStore) GetAllHabits(includeArchived, includeDeleted bool) ([]models.Habit, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	query := "SELECT " + habitColumns + " FROM habits WHERE 1=1"
	if !includeDeleted {
		query += " AND deleted_at IS NULL"
	}
	if !includeArchived {
		query += " AND archived_at IS NULL"
	}
	query += " ORDER BY created_at, id"

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	habits := []models.Habit{}
	var ids []string
	for rows.Next() {
		h, err := scanHabit(rows)
		if err != nil {
			return nil, err
		}
		habits = append(habits, h)
		ids = append(ids, h.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	completions, err := s.completionsFor(ids)
	if err != nil {
		return nil, err
	}
	for i := range habits {
		habits[i].CompletionDates = completions[habits[i].ID]
	}

	logger.Debug("Loaded habits", "count", len(habits), "archived", includeArchived, "deleted", includeDeleted)
	return habits, nil
}

func (s *SQLStore) completionsFor(ids []string) (map[string][]time.Time, error) {
	out := make(map[string][]time.Time, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(ids)), ", ")
	query := "SELECT habit_id, completed_at FROM habit_completions WHERE habit_id IN (" +
		placeholders + ") ORDER BY habit_id, position"
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}

	rows, err := s.db.Query(s.dialect.Rebind(query), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var habitID, completedAt string
		if err := rows.Scan(&habitID, &completedAt); err != nil {
			return nil, err
		}
		t, err := parseTime(completedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse completed_at: %w", err)
		}
		out[habitID] = append(out[habitID], t)
	}
	return out, rows.Err()
}

func (s *SQLStore) UpdateHabit(habit models.Habit) error {
	if err := s.ready(); err != nil {
		return err
	}
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	var target sql.NullInt64
	if habit.TargetCount != nil {
		target = sql.NullInt64{Int64: int64(*habit.TargetCount), Valid: true}
	}

	_, err = tx.Exec(s.dialect.Rebind(`
		INSERT INTO habits (`+habitColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			name = excluded.name,
			icon = excluded.icon,
			color = excluded.color,
			target_count = excluded.target_count,
			created_at = excluded.created_at,
			archived_at = excluded.archived_at,
			deleted_at = excluded.deleted_at`),
		habit.ID, habit.Name, string(habit.Icon.OrDefault()), string(habit.Color.OrDefault()), target,
		formatTime(habit.CreatedAt), formatNullTime(habit.ArchivedAt), formatNullTime(habit.DeletedAt))
	if err != nil {
		return fmt.Errorf("failed to save habit: %w", err)
	}

	if _, err := tx.Exec(s.dialect.Rebind("DELETE FROM habit_completions WHERE habit_id = ?"), habit.ID); err != nil {
		return fmt.Errorf("failed to clear completions: %w", err)
	}

	if len(habit.CompletionDates) > 0 {
		stmt, err := tx.Prepare(s.dialect.Rebind(
			"INSERT INTO habit_completions (id, habit_id, position, completed_at) VALUES (?, ?, ?, ?)"))
		if err != nil {
			return err
		}
		defer stmt.Close()

		for i, t := range habit.CompletionDates {
			if _, err := stmt.Exec(uuid.New().String(), habit.ID, i, formatTime(t)); err != nil {
				return fmt.Errorf("failed to save completion: %w", err)
			}
		}
	}

	return tx.Commit()
}

func (s *SQLStore) ArchiveHabit(id string) error {
	return s.setTimestamp("archived_at", id, now())
}

func (s *SQLStore) UnarchiveHabit(id string) error {
	return s.setTimestamp("archived_at", id, nil)
}

func (s *SQLStore) DeleteHabit(id string) error {
	return s.setTimestamp("deleted_at", id, now())
}

func (s *SQLStore) RestoreHabit(id string) error {
	return s.setTimestamp("deleted_at", id, nil)
}

func (s *SQLStore) setTimestamp(column, id string, at *time.Time) error {
	if err := s.ready(); err != nil {
		return err
	}
	res, err := s.exec("UPDATE habits SET "+column+" = ? WHERE id = ?", formatNullTime(at), id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("habit %q: %w", id, ErrNotFound)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanHabit(row scanner) (models.Habit, error) {
	var h models.Habit
	var icon, color, createdAt string
	var target sql.NullInt64
	var archivedAt, deletedAt sql.NullString

	if err := row.Scan(&h.ID, &h.Name, &icon, &color, &target, &createdAt, &archivedAt, &deletedAt); err != nil {
		return models.Habit{}, err
	}

	var err error
	h.Icon = models.Icon(icon)
	h.Color = models.Color(color)
	if target.Valid {
		v := int(target.Int64)
		h.TargetCount = &v
	}
	if h.CreatedAt, err = parseTime(createdAt); err != nil {
		return models.Habit{}, fmt.Errorf("failed to parse created_at: %w", err)
	}
	if h.ArchivedAt, err = parseNullTime(archivedAt); err != nil {
		return models.Habit{}, fmt.Errorf("failed to parse archived_at: %w", err)
	}
	if h.DeletedAt, err = parseNullTime(deletedAt); err != nil {
		return models.Habit{}, fmt.Errorf("failed to parse deleted_at: %w", err)
	}
	return h, nil
}

func now() *time.Time {
	t := time.Now()
	return &t
}

func formatTime(t time.Time) string {
	return t.UTC().Format(constants.TimestampFormat)
}

func formatNullTime(t *time.Time) sql.NullString {
	if t == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: formatTime(*t), Valid: true}
}

func parseTime(s string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, s)
}

func parseNullTime(s sql.NullString) (*time.Time, error) {
	if !s.Valid {
		return nil, nil
	}
	t, err := parseTime(s.String)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
