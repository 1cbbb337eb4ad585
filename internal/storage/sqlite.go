package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/leapstack-labs/contactbook/internal/contacts"

	// sqlite driver for the database backend.
	_ "modernc.org/sqlite"
)

// SQLiteStore keeps the book in a SQLite database. Save replaces every
// row inside one transaction.
type SQLiteStore struct {
	db     *sql.DB
	path   string
	logger *slog.Logger
}

var _ Store = (*SQLiteStore)(nil)

// OpenSQLite opens (creating if needed) the database at path and applies
// migrations. Use ":memory:" for an in-memory database.
func OpenSQLite(path string, logger *slog.Logger) (*SQLiteStore, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	dsn := path
	if path != ":memory:" {
		if dir := filepath.Dir(path); dir != "." && dir != "" {
			if err := os.MkdirAll(dir, 0750); err != nil {
				return nil, fmt.Errorf("failed to create directory %s: %w", dir, err)
			}
		}
		dsn = path + "?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)"
	} else {
		dsn = ":memory:?_pragma=foreign_keys(1)"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	// A single connection keeps ":memory:" databases alive across calls.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping sqlite database: %w", err)
	}

	s := newSQLiteStore(db, path, logger)
	if err := s.Migrate(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	logger.Debug("sqlite store opened")
	return s, nil
}

func newSQLiteStore(db *sql.DB, path string, logger *slog.Logger) *SQLiteStore {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &SQLiteStore{db: db, path: path, logger: logger}
}

// Path returns the database file.
func (s *SQLiteStore) Path() string { return s.path }

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Load reads every contact with its phones in stored order.
func (s *SQLiteStore) Load(ctx context.Context) (*contacts.AddressBook, error) {
	if s.db == nil {
		return nil, fmt.Errorf("database not opened")
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, birthday FROM contacts ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to query contacts: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var ids []string
	byID := make(map[string]*contactData)
	for rows.Next() {
		var id string
		var c contactData
		var birthday sql.NullString
		if err := rows.Scan(&id, &c.Name, &birthday); err != nil {
			return nil, fmt.Errorf("failed to scan contact: %w", err)
		}
		if birthday.Valid {
			c.Birthday = birthday.String
		}
		ids = append(ids, id)
		byID[id] = &c
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read contacts: %w", err)
	}

	if err := s.loadPhones(ctx, byID); err != nil {
		return nil, err
	}

	book := contacts.NewAddressBook()
	for _, id := range ids {
		r, err := dataToRecord(*byID[id])
		if err != nil {
			return nil, fmt.Errorf("invalid data in %s: %w", s.path, err)
		}
		book.Add(r)
	}
	s.logger.Debug("address book loaded", "contacts", book.Len())
	return book, nil
}

func (s *SQLiteStore) loadPhones(ctx context.Context, byID map[string]*contactData) error {
	rows, err := s.db.QueryContext(ctx,
		`SELECT contact_id, number FROM phones ORDER BY contact_id, position`)
	if err != nil {
		return fmt.Errorf("failed to query phones: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var id, number string
		if err := rows.Scan(&id, &number); err != nil {
			return fmt.Errorf("failed to scan phone: %w", err)
		}
		c, ok := byID[id]
		if !ok {
			continue
		}
		c.Phones = append(c.Phones, number)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to read phones: %w", err)
	}
	return nil
}

// Save replaces the stored book with book.
func (s *SQLiteStore) Save(ctx context.Context, book *contacts.AddressBook) (err error) {
	if s.db == nil {
		return fmt.Errorf("database not opened")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, `DELETE FROM phones`); err != nil {
		return fmt.Errorf("failed to clear phones: %w", err)
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM contacts`); err != nil {
		return fmt.Errorf("failed to clear contacts: %w", err)
	}

	for pos, r := range book.Records() {
		c := recordToData(r)
		id := uuid.New().String()

		var birthday *string
		if c.Birthday != "" {
			birthday = &c.Birthday
		}
		if _, err = tx.ExecContext(ctx,
			`INSERT INTO contacts (id, name, position, birthday) VALUES (?, ?, ?, ?)`,
			id, c.Name, pos, birthday,
		); err != nil {
			return fmt.Errorf("failed to insert contact %q: %w", c.Name, err)
		}

		for i, number := range c.Phones {
			if _, err = tx.ExecContext(ctx,
				`INSERT INTO phones (contact_id, position, number) VALUES (?, ?, ?)`,
				id, i, number,
			); err != nil {
				return fmt.Errorf("failed to insert phone for %q: %w", c.Name, err)
			}
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	s.logger.Debug("address book saved", "contacts", book.Len())
	return nil
}
