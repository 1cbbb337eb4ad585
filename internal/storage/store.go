// Package storage persists the address book between runs.
//
// A Store loads the whole book at startup and overwrites it on save. Three
// backends are available: a YAML file (default), a JSON file and a SQLite
// database whose schema is managed by goose migrations.
package storage

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/leapstack-labs/contactbook/internal/contacts"
)

// Store loads and saves a complete address book snapshot.
type Store interface {
	// Load returns the persisted book, or an empty book when nothing has
	// been saved yet.
	Load(ctx context.Context) (*contacts.AddressBook, error)
	// Save replaces the persisted snapshot with book.
	Save(ctx context.Context, book *contacts.AddressBook) error
	// Path returns the file backing the store.
	Path() string
	Close() error
}

// Backend names a storage implementation.
type Backend string

// Supported backends.
const (
	BackendAuto   Backend = "auto"
	BackendYAML   Backend = "yaml"
	BackendJSON   Backend = "json"
	BackendSQLite Backend = "sqlite"
)

// Backends lists the accepted backend names.
func Backends() []string {
	return []string{string(BackendAuto), string(BackendYAML), string(BackendJSON), string(BackendSQLite)}
}

// Options configures Open.
type Options struct {
	Path    string
	Backend Backend
	Logger  *slog.Logger
}

// ResolveBackend turns BackendAuto into a concrete backend based on the
// file extension. Unknown extensions fall back to YAML.
func ResolveBackend(backend Backend, path string) (Backend, error) {
	switch Backend(strings.ToLower(string(backend))) {
	case BackendYAML:
		return BackendYAML, nil
	case BackendJSON:
		return BackendJSON, nil
	case BackendSQLite:
		return BackendSQLite, nil
	case BackendAuto, "":
		switch strings.ToLower(filepath.Ext(path)) {
		case ".json":
			return BackendJSON, nil
		case ".db", ".sqlite", ".sqlite3":
			return BackendSQLite, nil
		default:
			return BackendYAML, nil
		}
	default:
		return "", fmt.Errorf("unknown storage backend %q (valid: %s)", backend, strings.Join(Backends(), ", "))
	}
}

// Open creates the store described by opts.
func Open(opts Options) (Store, error) {
	if opts.Path == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	backend, err := ResolveBackend(opts.Backend, opts.Path)
	if err != nil {
		return nil, err
	}
	logger = logger.With("backend", string(backend), "path", opts.Path)

	switch backend {
	case BackendSQLite:
		return OpenSQLite(opts.Path, logger)
	case BackendJSON:
		return NewJSONStore(opts.Path, logger), nil
	default:
		return NewYAMLStore(opts.Path, logger), nil
	}
}
