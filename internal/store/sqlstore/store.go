package sqlstore

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/mattn/go-sqlite3"
	"github.com/pliu/seniorsched/internal/store"
)

type SQLStore struct {
	db         *sqlx.DB
	driverName string
}

var _ store.Store = (*SQLStore)(nil)

// New opens the database and creates the schema if it does not exist yet.
// driverName is either "sqlite3" or "postgres".
func New(driverName, dataSourceName string) (*SQLStore, error) {
	db, err := sqlx.Connect(driverName, dataSourceName)
	if err != nil {
		return nil, err
	}

	if driverName == "sqlite3" {
		// A ":memory:" database lives and dies with its connection.
		db.SetMaxOpenConns(1)
		if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
			db.Close()
			return nil, err
		}
	}

	s := &SQLStore{db: db, driverName: driverName}
	if err := s.createTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("create tables: %w", err)
	}
	return s, nil
}

func (s *SQLStore) Close() error {
	return s.db.Close()
}

func (s *SQLStore) createTables() error {
	// No migrations, the schema is only ever created.
	query := `
	CREATE TABLE IF NOT EXISTS users (
		id TEXT PRIMARY KEY,
		email TEXT UNIQUE NOT NULL,
		name TEXT NOT NULL,
		age INTEGER NOT NULL DEFAULT 0,
		password TEXT NOT NULL,
		is_caregiver BOOLEAN NOT NULL DEFAULT FALSE,
		caregiver_id TEXT REFERENCES users(id)
	);
	CREATE INDEX IF NOT EXISTS idx_users_caregiver_id ON users (caregiver_id);

	CREATE TABLE IF NOT EXISTS medications (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL REFERENCES users(id),
		name TEXT NOT NULL,
		amount DOUBLE PRECISION NOT NULL,
		unit TEXT NOT NULL,
		schedule_time TEXT NOT NULL,
		days TEXT,
		taken BOOLEAN NOT NULL DEFAULT FALSE
	);
	CREATE INDEX IF NOT EXISTS idx_medications_user_id ON medications (user_id);

	CREATE TABLE IF NOT EXISTS messages (
		seq INTEGER PRIMARY KEY AUTOINCREMENT,
		id TEXT UNIQUE NOT NULL,
		medication_id TEXT NOT NULL REFERENCES medications(id),
		sender_id TEXT NOT NULL REFERENCES users(id),
		content VARCHAR(500) NOT NULL,
		created_at DATETIME NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_messages_medication_created ON messages (medication_id, created_at);
	`

	if s.driverName == "postgres" {
		query = strings.ReplaceAll(query, "INTEGER PRIMARY KEY AUTOINCREMENT", "SERIAL PRIMARY KEY")
		query = strings.ReplaceAll(query, "DATETIME", "TIMESTAMP")
	}

	_, err := s.db.Exec(query)
	return err
}

// translate maps driver errors onto the store sentinels.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return store.ErrNotFound
	}
	if isUniqueViolation(err) {
		return fmt.Errorf("%w: %v", store.ErrConflict, err)
	}
	if isForeignKeyViolation(err) {
		return fmt.Errorf("%w: %v", store.ErrBadReference, err)
	}
	return err
}

func isForeignKeyViolation(err error) bool {
	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		return liteErr.ExtendedCode == sqlite3.ErrConstraintForeignKey
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code.Name() == "foreign_key_violation"
	}
	return false
}

func isUniqueViolation(err error) bool {
	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		return liteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			liteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code.Name() == "unique_violation"
	}
	return false
}

func expectAffected(res sql.Result) error {
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return store.ErrNotFound
	}
	return nil
}
