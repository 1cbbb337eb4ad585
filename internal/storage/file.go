package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/leapstack-labs/contactbook/internal/contacts"
	"gopkg.in/yaml.v3"
)

// codec converts a snapshot to and from bytes.
type codec interface {
	marshal(s snapshot) ([]byte, error)
	unmarshal(data []byte, s *snapshot) error
}

type yamlCodec struct{}

func (yamlCodec) marshal(s snapshot) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (yamlCodec) unmarshal(data []byte, s *snapshot) error {
	return yaml.Unmarshal(data, s)
}

type jsonCodec struct{}

func (jsonCodec) marshal(s snapshot) ([]byte, error) {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

func (jsonCodec) unmarshal(data []byte, s *snapshot) error {
	return json.Unmarshal(data, s)
}

// FileStore keeps the book in a single serialized file.
type FileStore struct {
	path   string
	codec  codec
	logger *slog.Logger
}

var _ Store = (*FileStore)(nil)

func newFileStore(path string, c codec, logger *slog.Logger) *FileStore {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &FileStore{path: path, codec: c, logger: logger}
}

// NewYAMLStore returns a YAML file store.
func NewYAMLStore(path string, logger *slog.Logger) *FileStore {
	return newFileStore(path, yamlCodec{}, logger)
}

// NewJSONStore returns a JSON file store.
func NewJSONStore(path string, logger *slog.Logger) *FileStore {
	return newFileStore(path, jsonCodec{}, logger)
}

// Path returns the backing file.
func (s *FileStore) Path() string { return s.path }

// Close is a no-op; the file is only open during Load and Save.
func (s *FileStore) Close() error { return nil }

// Load reads the file. A missing file yields an empty book.
func (s *FileStore) Load(_ context.Context) (*contacts.AddressBook, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		s.logger.Debug("no saved address book, starting empty")
		return contacts.NewAddressBook(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", s.path, err)
	}

	var snap snapshot
	if err := s.codec.unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", s.path, err)
	}
	book, err := fromSnapshot(snap)
	if err != nil {
		return nil, fmt.Errorf("invalid data in %s: %w", s.path, err)
	}
	s.logger.Debug("address book loaded", "contacts", book.Len())
	return book, nil
}

// Save overwrites the file with the whole book.
func (s *FileStore) Save(_ context.Context, book *contacts.AddressBook) error {
	data, err := s.codec.marshal(toSnapshot(book))
	if err != nil {
		return fmt.Errorf("failed to encode address book: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", s.path, err)
	}
	s.logger.Debug("address book saved", "contacts", book.Len())
	return nil
}
