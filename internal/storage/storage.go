package storage

import (
	"database/sql"
	"fmt"

	"github.com/misterclayt0n/ironlog/internal/config"
	"github.com/sirupsen/logrus"
	_ "github.com/tursodatabase/libsql-client-go/libsql"
	_ "modernc.org/sqlite"
)

// Storage keeps one row per profile; the profile document is written whole.
type Storage struct {
	DB *sql.DB
}

// DriverFor picks the database/sql driver for a connection string: libsql for
// remote Turso URLs, the embedded sqlite driver for local files.
func DriverFor(dsn string) string {
	if config.IsRemote(dsn) {
		return "libsql"
	}
	return "sqlite"
}

// Open connects to dsn and makes sure the schema exists.
func Open(dsn string) (*Storage, error) {
	driver := DriverFor(dsn)
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open db: %w", err)
	}
	if driver == "sqlite" {
		// A single connection serializes writers on the local file.
		db.SetMaxOpenConns(1)
	}

	st, err := New(db)
	if err != nil {
		db.Close()
		return nil, err
	}
	logrus.WithField("driver", driver).Debug("storage opened")
	return st, nil
}

// New wraps an already opened database.
func New(db *sql.DB) (*Storage, error) {
	if err := initializeDB(db); err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	return &Storage{DB: db}, nil
}

func initializeDB(db *sql.DB) error {
	_, err := db.Exec(`
        CREATE TABLE IF NOT EXISTS profiles (
            id TEXT PRIMARY KEY,
            name TEXT NOT NULL,
            data TEXT NOT NULL,
            updated_at TEXT NOT NULL
        )
    `)
	return err
}

func (s *Storage) Close() error {
	return s.DB.Close()
}
