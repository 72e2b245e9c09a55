package characters

import (
	"context"
	"database/sql"
	"encoding/json"
	stderrors "errors"
	"path/filepath"
	"strings"
	"time"

	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"

	"github.com/coldtimes/MapFantasai/internal/entities/character"
	"github.com/coldtimes/MapFantasai/internal/errors"
)

const sqliteSchema = `CREATE TABLE IF NOT EXISTS characters (
	id           TEXT PRIMARY KEY,
	character    TEXT NOT NULL,
	submitted_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS characters_submitted_at ON characters (submitted_at DESC);`

// SQLiteRepository persists submitted characters in a SQLite file
type SQLiteRepository struct {
	db *sql.DB
}

// OpenSQLite opens the database at path and creates the schema if needed
func OpenSQLite(path string) (*SQLiteRepository, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.InvalidArgument("sqlite path is required")
	}

	dsn := filepath.Clean(path) + "?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open sqlite db")
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to ping sqlite db")
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "failed to create schema")
	}

	return &SQLiteRepository{db: db}, nil
}

// Close closes the database handle
func (r *SQLiteRepository) Close() error {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.Close()
}

// Create implements Repository
func (r *SQLiteRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validateRecord(input.Record); err != nil {
		return nil, err
	}

	data, err := json.Marshal(input.Record.Character)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal character")
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO characters (id, character, submitted_at) VALUES (?, ?, ?)`,
		input.Record.ID, string(data), input.Record.SubmittedAt.UTC().UnixMilli(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, errors.AlreadyExistsf("record with ID %s already exists", input.Record.ID)
		}
		return nil, errors.Wrapf(err, "failed to insert record")
	}

	return &CreateOutput{Record: input.Record}, nil
}

// Get implements Repository
func (r *SQLiteRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errRecordIDEmpty)
	}

	row := r.db.QueryRowContext(ctx,
		`SELECT id, character, submitted_at FROM characters WHERE id = ?`, input.ID)
	record, err := scanRecord(row)
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, errors.NotFoundf("record with ID %s not found", input.ID)
		}
		return nil, err
	}

	return &GetOutput{Record: record}, nil
}

// List implements Repository
func (r *SQLiteRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, character, submitted_at FROM characters
		 ORDER BY submitted_at DESC, id DESC LIMIT ?`, listLimit(input.Limit))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list records")
	}
	defer func() { _ = rows.Close() }()

	records := []*Record{}
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to iterate records")
	}

	return &ListOutput{Records: records}, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (*Record, error) {
	var (
		id          string
		data        string
		submittedAt int64
	)
	if err := row.Scan(&id, &data, &submittedAt); err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, errors.Wrapf(err, "failed to scan record")
	}

	var finalized character.Finalized
	if err := json.Unmarshal([]byte(data), &finalized); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal character %s", id)
	}

	return &Record{
		ID:          id,
		Character:   &finalized,
		SubmittedAt: time.UnixMilli(submittedAt).UTC(),
	}, nil
}

func isUniqueViolation(err error) bool {
	var sqliteErr *msqlite.Error
	if stderrors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return true
		}
	}
	return strings.Contains(strings.ToLower(err.Error()), "unique constraint failed")
}

var _ Repository = (*SQLiteRepository)(nil)
