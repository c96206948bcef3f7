// Package logbook persists computed loadsheets to a local SQLite
// database so earlier evaluations can be reviewed. It is a read-only
// consumer of finished computations; a failed save never affects the
// evaluation itself.
package logbook

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)
)

// Entry is one recorded loadsheet evaluation.
type Entry struct {
	ID               int64
	CreatedAt        time.Time
	AircraftID       string
	Callsign         string
	TotalMassKg      float64
	TotalMomentKgM   float64
	CGMeters         float64
	WithinLimits     bool
	LandingMassKg    float64
	LandingMomentKgM float64
}

// Book is a logbook handle. Writes are serialized across processes with a
// file lock next to the database, since several CLI invocations may save
// at once.
type Book struct {
	db   *sql.DB
	lock *flock.Flock
}

// DefaultPath returns the default logbook location.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".loadsheet", "logbook.db")
}

// Open opens (creating if needed) the logbook at path. An empty path
// opens an in-memory logbook, used in tests.
func Open(path string) (*Book, error) {
	dsn := ":memory:"
	var lock *flock.Flock
	if path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("create logbook directory: %w", err)
		}
		dsn = path
		lock = flock.New(path + ".lock")
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open logbook: %w", err)
	}
	if path != "" {
		if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
			db.Close()
			return nil, fmt.Errorf("enable wal: %w", err)
		}
	}
	if err := initSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Book{db: db, lock: lock}, nil
}

func initSchema(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS entries (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		created_at TEXT NOT NULL,
		aircraft_id TEXT NOT NULL,
		callsign TEXT NOT NULL,
		total_mass_kg REAL NOT NULL,
		total_moment_kgm REAL NOT NULL,
		cg_m REAL NOT NULL,
		within_limits INTEGER NOT NULL,
		landing_mass_kg REAL NOT NULL,
		landing_moment_kgm REAL NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_entries_created ON entries(created_at DESC);
	`
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("create logbook schema: %w", err)
	}
	return nil
}

// Save appends an entry and returns its id. A zero CreatedAt is stamped
// with the current time.
func (b *Book) Save(e Entry) (int64, error) {
	if b.lock != nil {
		if err := b.lock.Lock(); err != nil {
			return 0, fmt.Errorf("lock logbook: %w", err)
		}
		defer func() { _ = b.lock.Unlock() }()
	}

	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}

	res, err := b.db.Exec(`
		INSERT INTO entries (created_at, aircraft_id, callsign, total_mass_kg,
			total_moment_kgm, cg_m, within_limits, landing_mass_kg, landing_moment_kgm)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.CreatedAt.Format(time.RFC3339), e.AircraftID, e.Callsign,
		e.TotalMassKg, e.TotalMomentKgM, e.CGMeters, e.WithinLimits,
		e.LandingMassKg, e.LandingMomentKgM)
	if err != nil {
		return 0, fmt.Errorf("save entry: %w", err)
	}
	return res.LastInsertId()
}

// Recent returns the most recent entries, newest first.
func (b *Book) Recent(limit int) ([]Entry, error) {
	rows, err := b.db.Query(`
		SELECT id, created_at, aircraft_id, callsign, total_mass_kg,
			total_moment_kgm, cg_m, within_limits, landing_mass_kg, landing_moment_kgm
		FROM entries ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query entries: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var created string
		if err := rows.Scan(&e.ID, &created, &e.AircraftID, &e.Callsign,
			&e.TotalMassKg, &e.TotalMomentKgM, &e.CGMeters, &e.WithinLimits,
			&e.LandingMassKg, &e.LandingMomentKgM); err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		if t, err := time.Parse(time.RFC3339, created); err == nil {
			e.CreatedAt = t
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Close releases the database handle.
func (b *Book) Close() error {
	return b.db.Close()
}
