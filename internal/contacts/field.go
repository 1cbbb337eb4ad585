// Package contacts holds the address book model: validated field values,
// contact records and the name-keyed book that owns them.
package contacts

import (
	"strings"
	"time"
)

// BirthdayLayout is the only accepted birthday format (DD.MM.YYYY).
const BirthdayLayout = "02.01.2006"

const phoneLength = 10

// Validation reasons shown to the user.
const (
	reasonPhone    = "Phone number must contain exactly 10 digits"
	reasonBirthday = "Invalid date format. Use DD.MM.YYYY"
)

// Name identifies a contact. It is the key of the address book.
type Name string

// NewName trims surrounding whitespace.
func NewName(value string) Name {
	return Name(strings.TrimSpace(value))
}

func (n Name) String() string { return string(n) }

// Phone is a ten digit phone number.
type Phone string

// NewPhone validates value and returns it as a Phone.
func NewPhone(value string) (Phone, error) {
	if len(value) != phoneLength || !allDigits(value) {
		return "", newValidationError("phone", value, reasonPhone)
	}
	return Phone(value), nil
}

func (p Phone) String() string { return string(p) }

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Birthday is a calendar date.
type Birthday struct {
	date time.Time
}

// NewBirthday parses value in DD.MM.YYYY form.
func NewBirthday(value string) (Birthday, error) {
	t, err := time.Parse(BirthdayLayout, value)
	if err != nil {
		return Birthday{}, newValidationError("birthday", value, reasonBirthday)
	}
	return Birthday{date: t}, nil
}

// String renders the birthday back in DD.MM.YYYY form.
func (b Birthday) String() string {
	return b.date.Format(BirthdayLayout)
}

// projectOnto returns the birthday's month and day in the given year.
// 29 February falls back to 28 February in non-leap years.
func (b Birthday) projectOnto(year int) time.Time {
	month, day := b.date.Month(), b.date.Day()
	if month == time.February && day == 29 && !isLeap(year) {
		day = 28
	}
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}
