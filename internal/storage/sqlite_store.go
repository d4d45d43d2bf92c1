package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/dowk233/steelMaster/internal/model"
)

const sqliteTimeLayout = time.RFC3339Nano

type SQLiteStore struct {
	db     *sql.DB
	logger *slog.Logger
	now    func() time.Time
}

func NewSQLiteStore(db *sql.DB, logger *slog.Logger) (*SQLiteStore, error) {
	if db == nil {
		return nil, errors.New("storage: nil db")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &SQLiteStore{db: db, logger: logger, now: func() time.Time { return time.Now().UTC() }}, nil
}

// OpenSQLite opens the database at path and brings the schema up to date.
func OpenSQLite(path string, logger *slog.Logger) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := MigrateUp(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	store, err := NewSQLiteStore(db, logger)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Load reads the snapshot under StateKey. An absent row or a document that
// fails to parse yields the default state; nothing is written back in
// either case. Parsable legacy documents get the additive migration pass.
func (s *SQLiteStore) Load(ctx context.Context) (model.YearState, error) {
	var raw string
	row := s.db.QueryRowContext(ctx, `SELECT value FROM year_state WHERE key = ?`, StateKey)
	if err := row.Scan(&raw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.DefaultYearState(), nil
		}
		return model.YearState{}, fmt.Errorf("read snapshot: %w", err)
	}

	var doc yearDocument
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		s.logger.Warn("stored snapshot unparsable, starting from default state",
			"key", StateKey, "error", err)
		return model.DefaultYearState(), nil
	}
	return documentToState(migrateDocument(doc)), nil
}

// Save serializes the whole state and overwrites the snapshot row. Write
// failures are returned unwrapped in meaning: the caller must see them.
func (s *SQLiteStore) Save(ctx context.Context, state model.YearState) error {
	payload, err := json.Marshal(stateToDocument(state))
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO year_state (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		StateKey, string(payload), s.now().Format(sqliteTimeLayout),
	)
	if err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}

// migrateDocument repairs a legacy document to the current shape. The pass
// is additive only (missing fields gain defaults, nothing is removed or
// renamed) and idempotent.
func migrateDocument(doc yearDocument) yearDocument {
	if doc.Habits == nil {
		doc.Habits = []habitDocument{{ID: "h1", Title: "Daily Review", Active: true}}
	}
	if doc.Theme == "" {
		doc.Theme = string(model.ThemeLight)
	}
	if doc.Language == "" {
		doc.Language = string(model.LanguageEN)
	}
	return doc
}

func documentToState(doc yearDocument) model.YearState {
	state := model.YearState{
		Days:     make([]model.Day, len(doc.Days)),
		Habits:   make([]model.Habit, len(doc.Habits)),
		Goal:     doc.Goal,
		Theme:    model.Theme(doc.Theme),
		Language: model.Language(doc.Language),
	}
	for i, d := range doc.Days {
		day := model.Day{DayID: d.DayID, Completed: d.Completed}
		if len(d.Tasks) > 0 {
			day.Tasks = make([]model.Task, len(d.Tasks))
			for j, t := range d.Tasks {
				task := model.Task{ID: t.ID, Title: t.Title, Completed: t.Completed}
				if len(t.SubTasks) > 0 {
					task.SubTasks = make([]model.SubTask, len(t.SubTasks))
					for k, st := range t.SubTasks {
						task.SubTasks[k] = model.SubTask(st)
					}
				}
				day.Tasks[j] = task
			}
		}
		state.Days[i] = day
	}
	for i, h := range doc.Habits {
		state.Habits[i] = model.Habit(h)
	}
	return state
}

func stateToDocument(state model.YearState) yearDocument {
	doc := yearDocument{
		Days:     make([]dayDocument, len(state.Days)),
		Habits:   make([]habitDocument, len(state.Habits)),
		Goal:     state.Goal,
		Theme:    string(state.Theme),
		Language: string(state.Language),
	}
	for i, d := range state.Days {
		day := dayDocument{DayID: d.DayID, Completed: d.Completed}
		if len(d.Tasks) > 0 {
			day.Tasks = make([]taskDocument, len(d.Tasks))
			for j, t := range d.Tasks {
				task := taskDocument{ID: t.ID, Title: t.Title, Completed: t.Completed}
				if len(t.SubTasks) > 0 {
					task.SubTasks = make([]subTaskDocument, len(t.SubTasks))
					for k, st := range t.SubTasks {
						task.SubTasks[k] = subTaskDocument(st)
					}
				}
				day.Tasks[j] = task
			}
		}
		doc.Days[i] = day
	}
	for i, h := range state.Habits {
		doc.Habits[i] = habitDocument(h)
	}
	return doc
}
