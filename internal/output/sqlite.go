package output

import (
	"database/sql"
	"fmt"
	"os"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/gyeh/schedh/internal/model"
)

// SQLiteTable is the table the SQLite sink writes to.
const SQLiteTable = "filings"

// SQLiteSink writes records into a fresh SQLite database, one TEXT column
// per catalog abbreviation. All rows go in a single transaction committed
// on Close.
type SQLiteSink struct {
	db    *sql.DB
	tx    *sql.Tx
	stmt  *sql.Stmt
	count int64
}

// NewSQLite creates the database at path, replacing any existing file.
func NewSQLite(path string) (*SQLiteSink, error) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("remove existing database: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if _, err := db.Exec(createTableSQL()); err != nil {
		db.Close()
		return nil, fmt.Errorf("create table: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("begin: %w", err)
	}
	stmt, err := tx.Prepare(insertSQL())
	if err != nil {
		tx.Rollback()
		db.Close()
		return nil, fmt.Errorf("prepare insert: %w", err)
	}
	return &SQLiteSink{db: db, tx: tx, stmt: stmt}, nil
}

func createTableSQL() string {
	cols := make([]string, len(model.Catalog))
	for i, f := range model.Catalog {
		cols[i] = fmt.Sprintf("%q TEXT", f.Column)
	}
	return fmt.Sprintf("CREATE TABLE %s (\n  %s\n)", SQLiteTable, strings.Join(cols, ",\n  "))
}

func insertSQL() string {
	cols := make([]string, len(model.Catalog))
	for i, f := range model.Catalog {
		cols[i] = fmt.Sprintf("%q", f.Column)
	}
	marks := strings.TrimSuffix(strings.Repeat("?, ", len(cols)), ", ")
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", SQLiteTable, strings.Join(cols, ", "), marks)
}

// Write inserts records inside the open transaction.
func (s *SQLiteSink) Write(records []model.Record) error {
	for _, rec := range records {
		if _, err := s.stmt.Exec(rec.Values()...); err != nil {
			return fmt.Errorf("insert row %d: %w", s.count+1, err)
		}
		s.count++
	}
	return nil
}

// Count returns the number of records written.
func (s *SQLiteSink) Count() int64 {
	return s.count
}

// Close commits the transaction and closes the database.
func (s *SQLiteSink) Close() error {
	s.stmt.Close()
	if err := s.tx.Commit(); err != nil {
		s.db.Close()
		return fmt.Errorf("commit: %w", err)
	}
	return s.db.Close()
}
