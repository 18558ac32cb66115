package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/chris-regnier/moodctl/internal/mood"
	"github.com/chris-regnier/moodctl/internal/storage"
	_ "github.com/tursodatabase/go-libsql"
	_ "modernc.org/sqlite"
)

// Supported database/sql driver names.
const (
	DriverLibSQL = "libsql" // Turso/libSQL, requires cgo
	DriverPureGo = "sqlite" // modernc.org/sqlite
)

// Store implements storage.Storage on a single SQLite table.
type Store struct {
	db     *sql.DB
	driver string
	mu     sync.Mutex // serializes insert+retention
}

// New opens (or creates) moodctl.db in dataDir using the given driver.
// An empty driver selects libSQL.
func New(dataDir, driver string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("%w: creating data directory: %v", storage.ErrStorage, err)
	}
	dbPath := filepath.Join(dataDir, "moodctl.db")

	var dsn string
	switch driver {
	case "", DriverLibSQL:
		driver = DriverLibSQL
		dsn = "file:" + dbPath
	case DriverPureGo:
		dsn = dbPath
	default:
		return nil, fmt.Errorf("%w: unknown sqlite driver %q", storage.ErrStorage, driver)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: opening database: %v", storage.ErrStorage, err)
	}

	// Enable WAL mode. The pragma returns the resulting mode as a row.
	var mode string
	if err := db.QueryRow("PRAGMA journal_mode=WAL").Scan(&mode); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: enabling WAL mode: %v", storage.ErrStorage, err)
	}

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db, driver: driver}, nil
}

// OpenMemory opens a private in-memory database with the pure-Go driver.
func OpenMemory() (*Store, error) {
	db, err := sql.Open(DriverPureGo, ":memory:")
	if err != nil {
		return nil, fmt.Errorf("%w: opening in-memory database: %v", storage.ErrStorage, err)
	}
	// Every pooled connection would otherwise get its own empty database.
	db.SetMaxOpenConns(1)

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db, driver: DriverPureGo}, nil
}

func createSchema(db *sql.DB) error {
	schema := `
		CREATE TABLE IF NOT EXISTS mood_entries (
			date          TEXT NOT NULL,
			mood          TEXT NOT NULL,
			stress_level  INTEGER NOT NULL CHECK(stress_level BETWEEN 0 AND 10),
			journal_entry TEXT NOT NULL DEFAULT '',
			contact       TEXT NOT NULL DEFAULT ''
		);
		CREATE INDEX IF NOT EXISTS idx_mood_entries_date ON mood_entries(date);
	`
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("%w: creating schema: %v", storage.ErrStorage, err)
	}
	return nil
}

// Driver returns the database/sql driver name in use.
func (s *Store) Driver() string {
	return s.driver
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Insert persists e and evicts oldest-dated rows beyond the retention cap,
// all in one transaction.
func (s *Store) Insert(e mood.Entry) error {
	if err := storage.Validate(e); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("%w: beginning transaction: %v", storage.ErrStorage, err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(
		"INSERT INTO mood_entries (date, mood, stress_level, journal_entry, contact) VALUES (?, ?, ?, ?, ?)",
		mood.Day(e.Date).Format(mood.DateLayout),
		string(e.Mood),
		e.StressLevel,
		e.Journal,
		e.Contact,
	); err != nil {
		return fmt.Errorf("%w: inserting entry: %v", storage.ErrStorage, err)
	}

	for {
		var n int
		if err := tx.QueryRow("SELECT COUNT(*) FROM mood_entries").Scan(&n); err != nil {
			return fmt.Errorf("%w: counting entries: %v", storage.ErrStorage, err)
		}
		if n <= storage.MaxEntries {
			break
		}
		// Exactly one row per pass; among equal dates the lowest rowid goes.
		if _, err := tx.Exec(`
			DELETE FROM mood_entries WHERE rowid = (
				SELECT rowid FROM mood_entries ORDER BY date ASC, rowid ASC LIMIT 1
			)`); err != nil {
			return fmt.Errorf("%w: evicting oldest entry: %v", storage.ErrStorage, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: committing: %v", storage.ErrStorage, err)
	}
	return nil
}

// Recent returns up to limit entries ordered by date descending.
func (s *Store) Recent(limit int) ([]mood.Entry, error) {
	entries := []mood.Entry{}
	if limit <= 0 {
		return entries, nil
	}

	rows, err := s.db.Query(
		`SELECT date, mood, stress_level, journal_entry, contact
		 FROM mood_entries ORDER BY date DESC, rowid DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: listing entries: %v", storage.ErrStorage, err)
	}
	defer rows.Close()

	for rows.Next() {
		var e mood.Entry
		var dateStr, moodStr string
		if err := rows.Scan(&dateStr, &moodStr, &e.StressLevel, &e.Journal, &e.Contact); err != nil {
			return nil, fmt.Errorf("%w: scanning row: %v", storage.ErrStorage, err)
		}
		e.Date, err = mood.ParseDate(dateStr)
		if err != nil {
			return nil, fmt.Errorf("%w: parsing date %q: %v", storage.ErrStorage, dateStr, err)
		}
		e.Mood = mood.Mood(moodStr)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating rows: %v", storage.ErrStorage, err)
	}
	return entries, nil
}

// ClearAll deletes every row.
func (s *Store) ClearAll() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.Exec("DELETE FROM mood_entries"); err != nil {
		return fmt.Errorf("%w: clearing entries: %v", storage.ErrStorage, err)
	}
	return nil
}

// Count returns the number of stored rows.
func (s *Store) Count() (int, error) {
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM mood_entries").Scan(&n); err != nil {
		return 0, fmt.Errorf("%w: counting entries: %v", storage.ErrStorage, err)
	}
	return n, nil
}
