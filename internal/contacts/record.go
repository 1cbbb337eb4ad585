package contacts

import (
	"fmt"
	"slices"
	"strings"
)

// Record is one contact: a name, its phones in insertion order and an
// optional birthday.
type Record struct {
	name     Name
	phones   []Phone
	birthday *Birthday
}

// NewRecord creates an empty record for name.
func NewRecord(name string) *Record {
	return &Record{name: NewName(name)}
}

// Name returns the contact name.
func (r *Record) Name() Name { return r.name }

// Phones returns a copy of the phone list.
func (r *Record) Phones() []Phone {
	return slices.Clone(r.phones)
}

// AddPhone validates value and appends it. Duplicates are allowed.
// On a validation error the phone list is left unchanged.
func (r *Record) AddPhone(value string) error {
	p, err := NewPhone(value)
	if err != nil {
		return err
	}
	r.phones = append(r.phones, p)
	return nil
}

// EditPhone replaces the first phone equal to oldValue with newValue.
func (r *Record) EditPhone(oldValue, newValue string) error {
	i := r.indexOf(oldValue)
	if i < 0 {
		return notFound("phone", oldValue)
	}
	p, err := NewPhone(newValue)
	if err != nil {
		return err
	}
	r.phones[i] = p
	return nil
}

// FindPhone returns the first phone equal to value.
func (r *Record) FindPhone(value string) (Phone, bool) {
	i := r.indexOf(value)
	if i < 0 {
		return "", false
	}
	return r.phones[i], true
}

// DeletePhone removes the first phone equal to value.
func (r *Record) DeletePhone(value string) error {
	i := r.indexOf(value)
	if i < 0 {
		return notFound("phone", value)
	}
	r.phones = slices.Delete(r.phones, i, i+1)
	return nil
}

func (r *Record) indexOf(value string) int {
	return slices.Index(r.phones, Phone(value))
}

// SetBirthday parses value and stores it, replacing any previous birthday.
func (r *Record) SetBirthday(value string) error {
	b, err := NewBirthday(value)
	if err != nil {
		return err
	}
	r.birthday = &b
	return nil
}

// Birthday returns the birthday and whether one is set.
func (r *Record) Birthday() (Birthday, bool) {
	if r.birthday == nil {
		return Birthday{}, false
	}
	return *r.birthday, true
}

// ShowBirthday returns the formatted birthday or "No birthday set".
func (r *Record) ShowBirthday() string {
	if b, ok := r.Birthday(); ok {
		return b.String()
	}
	return "No birthday set"
}

func (r *Record) String() string {
	phones := "No phones"
	if len(r.phones) > 0 {
		parts := make([]string, len(r.phones))
		for i, p := range r.phones {
			parts[i] = p.String()
		}
		phones = strings.Join(parts, "; ")
	}
	return fmt.Sprintf("Contact name: %s, phones: %s", r.name, phones)
}
