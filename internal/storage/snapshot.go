package storage

import (
	"fmt"

	"github.com/leapstack-labs/contactbook/internal/contacts"
)

const snapshotVersion = 1

// snapshot is the serialized form used by the file backends.
type snapshot struct {
	Version  int           `yaml:"version" json:"version"`
	Contacts []contactData `yaml:"contacts" json:"contacts"`
}

type contactData struct {
	Name     string   `yaml:"name" json:"name"`
	Phones   []string `yaml:"phones,omitempty" json:"phones,omitempty"`
	Birthday string   `yaml:"birthday,omitempty" json:"birthday,omitempty"`
}

func toSnapshot(book *contacts.AddressBook) snapshot {
	s := snapshot{Version: snapshotVersion, Contacts: make([]contactData, 0, book.Len())}
	for _, r := range book.Records() {
		s.Contacts = append(s.Contacts, recordToData(r))
	}
	return s
}

func recordToData(r *contacts.Record) contactData {
	c := contactData{Name: r.Name().String()}
	for _, p := range r.Phones() {
		c.Phones = append(c.Phones, p.String())
	}
	if b, ok := r.Birthday(); ok {
		c.Birthday = b.String()
	}
	return c
}

// fromSnapshot rebuilds a book, revalidating every field.
func fromSnapshot(s snapshot) (*contacts.AddressBook, error) {
	if s.Version > snapshotVersion {
		return nil, fmt.Errorf("unsupported snapshot version %d", s.Version)
	}
	book := contacts.NewAddressBook()
	for _, c := range s.Contacts {
		r, err := dataToRecord(c)
		if err != nil {
			return nil, err
		}
		book.Add(r)
	}
	return book, nil
}

func dataToRecord(c contactData) (*contacts.Record, error) {
	r := contacts.NewRecord(c.Name)
	for _, p := range c.Phones {
		if err := r.AddPhone(p); err != nil {
			return nil, fmt.Errorf("contact %q: phone %q: %w", c.Name, p, err)
		}
	}
	if c.Birthday != "" {
		if err := r.SetBirthday(c.Birthday); err != nil {
			return nil, fmt.Errorf("contact %q: birthday %q: %w", c.Name, c.Birthday, err)
		}
	}
	return r, nil
}
