package contacts

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

// DefaultUpcomingWindow is the look-ahead used by the birthdays command.
const DefaultUpcomingWindow = 7 * 24 * time.Hour

// AddressBook maps contact names to records. Iteration follows insertion
// order; replacing a record keeps its original position.
type AddressBook struct {
	records map[string]*Record
	order   []string
}

// NewAddressBook returns an empty book.
func NewAddressBook() *AddressBook {
	return &AddressBook{records: make(map[string]*Record)}
}

// Add inserts r, overwriting any record with the same name.
func (b *AddressBook) Add(r *Record) {
	key := r.Name().String()
	if _, ok := b.records[key]; !ok {
		b.order = append(b.order, key)
	}
	b.records[key] = r
}

// Find returns the record stored under name, or nil.
func (b *AddressBook) Find(name string) *Record {
	return b.records[name]
}

// Delete removes the record stored under name.
func (b *AddressBook) Delete(name string) error {
	if _, ok := b.records[name]; !ok {
		return notFound("contact", name)
	}
	delete(b.records, name)
	b.order = slices.DeleteFunc(b.order, func(k string) bool { return k == name })
	return nil
}

// Len returns the number of records.
func (b *AddressBook) Len() int { return len(b.order) }

// Names returns contact names in iteration order.
func (b *AddressBook) Names() []string {
	return slices.Clone(b.order)
}

// Records returns the records in iteration order.
func (b *AddressBook) Records() []*Record {
	out := make([]*Record, 0, len(b.order))
	for _, k := range b.order {
		out = append(out, b.records[k])
	}
	return out
}

func (b *AddressBook) String() string {
	lines := make([]string, 0, len(b.order))
	for _, r := range b.Records() {
		lines = append(lines, r.String())
	}
	return strings.Join(lines, "\n")
}

// Upcoming is a contact whose birthday falls inside the look-ahead window.
// Date is the birthday in the current year.
type Upcoming struct {
	Name     Name
	Birthday Birthday
	Date     time.Time
}

func (u Upcoming) String() string {
	return fmt.Sprintf("%s: %s", u.Name, u.Birthday)
}

// UpcomingBirthdays returns contacts whose birthday, moved into today's
// year, lies in [today, today+window]. Only the calendar date of today is
// used. Birthdays that would need next year's date are not reported.
func (b *AddressBook) UpcomingBirthdays(today time.Time, window time.Duration) []Upcoming {
	start := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	end := start.Add(window)

	var out []Upcoming
	for _, r := range b.Records() {
		bday, ok := r.Birthday()
		if !ok {
			continue
		}
		projected := bday.projectOnto(start.Year())
		if projected.Before(start) || projected.After(end) {
			continue
		}
		out = append(out, Upcoming{Name: r.Name(), Birthday: bday, Date: projected})
	}
	return out
}
