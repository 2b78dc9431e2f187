package store

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/marts9182/Rooster-AI-Project-Management/internal/store/postgres"
	"github.com/marts9182/Rooster-AI-Project-Management/internal/store/sqlite"
)

// Drivers accepted by OpenWithOptions.
const (
	DriverJSON     = "json"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Store is the typed view over a Backend. Every mutation is a whole-collection
// read-modify-write; there is no locking, so concurrent writers race (last writer wins).
type Store struct {
	Backend Backend
	// Now stamps updated_at and message timestamps. Defaults to time.Now in UTC.
	Now func() time.Time
}

// New wraps a backend.
func New(b Backend) *Store {
	return &Store{Backend: b}
}

// OpenOptions configures how to open the store (driver and location).
type OpenOptions struct {
	Driver string // "json" (default), "sqlite" or "postgres"
	Home   string // json: collections in <home>/data; sqlite: <home>/protected/db.sqlite
	DSN    string // postgres connection string (or env DATABASE_URL); sqlite: optional file path
}

// Open opens the default JSON file store under home/data.
func Open(home string) (*Store, error) {
	return OpenWithOptions(OpenOptions{Driver: DriverJSON, Home: home})
}

// OpenWithOptions opens a store for the configured driver.
func OpenWithOptions(opts OpenOptions) (*Store, error) {
	var (
		b   Backend
		err error
	)
	switch opts.Driver {
	case "", DriverJSON:
		if opts.Home == "" {
			return nil, errors.New("home required for json store")
		}
		b, err = OpenFileBackend(DataDir(opts.Home))
	case DriverSQLite:
		path := opts.DSN
		if path == "" {
			if opts.Home == "" {
				return nil, errors.New("home or dsn required for sqlite store")
			}
			path = filepath.Join(opts.Home, "protected", "db.sqlite")
		}
		b, err = sqlite.Open(path)
	case DriverPostgres:
		b, err = postgres.Open(opts.DSN)
	default:
		return nil, fmt.Errorf("unknown store driver %q", opts.Driver)
	}
	if err != nil {
		return nil, err
	}
	return New(b), nil
}

// DataDir returns <home>/data, where the JSON collections live.
func DataDir(home string) string {
	return filepath.Join(home, "data")
}

// Close releases the backend.
func (s *Store) Close() error {
	if s == nil || s.Backend == nil {
		return nil
	}
	return s.Backend.Close()
}

// Clock returns the current time per Now.
func (s *Store) Clock() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now().UTC()
}
