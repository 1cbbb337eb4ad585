package contacts

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestAddressBook_AddFind(t *testing.T) {
	book := NewAddressBook()
	r := NewRecord("Alice")
	require.NoError(t, r.AddPhone("1234567890"))
	book.Add(r)

	got := book.Find("Alice")
	require.NotNil(t, got)
	assert.Equal(t, []Phone{"1234567890"}, got.Phones())
	assert.Nil(t, book.Find("alice"))
	assert.Equal(t, 1, book.Len())
}

func TestAddressBook_AddOverwritesKeepingPosition(t *testing.T) {
	book := NewAddressBook()
	book.Add(NewRecord("Alice"))
	book.Add(NewRecord("Bob"))

	replacement := NewRecord("Alice")
	require.NoError(t, replacement.AddPhone("5555555555"))
	book.Add(replacement)

	assert.Equal(t, 2, book.Len())
	assert.Equal(t, []string{"Alice", "Bob"}, book.Names())
	assert.Same(t, replacement, book.Find("Alice"))
}

func TestAddressBook_Delete(t *testing.T) {
	book := NewAddressBook()
	book.Add(NewRecord("Alice"))
	book.Add(NewRecord("Carol"))

	require.NoError(t, book.Delete("Alice"))
	assert.Nil(t, book.Find("Alice"))
	assert.Equal(t, []string{"Carol"}, book.Names())

	err := book.Delete("Bob")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 1, book.Len())
}

func TestAddressBook_String(t *testing.T) {
	book := NewAddressBook()
	assert.Empty(t, book.String())

	alice := NewRecord("Alice")
	require.NoError(t, alice.AddPhone("1234567890"))
	book.Add(alice)
	book.Add(NewRecord("Bob"))

	want := "Contact name: Alice, phones: 1234567890\nContact name: Bob, phones: No phones"
	assert.Equal(t, want, book.String())
}

func TestAddressBook_UpcomingBirthdays(t *testing.T) {
	tests := []struct {
		name      string
		today     time.Time
		birthdays map[string]string
		want      []string
	}{
		{
			name:      "inside and outside the week",
			today:     date(2024, time.June, 1),
			birthdays: map[string]string{"Alice": "05.06.1990", "Bob": "10.06.1990"},
			want:      []string{"Alice: 05.06.1990"},
		},
		{
			name:      "window edges are inclusive",
			today:     date(2024, time.June, 1),
			birthdays: map[string]string{"Alice": "01.06.1985", "Bob": "08.06.1970", "Carol": "09.06.1970"},
			want:      []string{"Alice: 01.06.1985", "Bob: 08.06.1970"},
		},
		{
			name:      "already passed this year",
			today:     date(2024, time.June, 1),
			birthdays: map[string]string{"Alice": "31.05.1990"},
		},
		{
			name:      "late december inside the year",
			today:     date(2024, time.December, 28),
			birthdays: map[string]string{"Alice": "30.12.1990"},
			want:      []string{"Alice: 30.12.1990"},
		},
		{
			name:      "no wrap into next year",
			today:     date(2024, time.December, 28),
			birthdays: map[string]string{"Alice": "02.01.1990"},
		},
		{
			name:      "leap day in common year",
			today:     date(2023, time.February, 25),
			birthdays: map[string]string{"Alice": "29.02.2000"},
			want:      []string{"Alice: 29.02.2000"},
		},
		{
			name:      "year one birthday",
			today:     date(2024, time.January, 1),
			birthdays: map[string]string{"Alice": "01.01.0001"},
			want:      []string{"Alice: 01.01.0001"},
		},
		{
			name:      "time of day is ignored",
			today:     time.Date(2024, time.June, 5, 23, 59, 0, 0, time.UTC),
			birthdays: map[string]string{"Alice": "05.06.1990"},
			want:      []string{"Alice: 05.06.1990"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			book := NewAddressBook()
			for _, name := range []string{"Alice", "Bob", "Carol"} {
				value, ok := tt.birthdays[name]
				if !ok {
					continue
				}
				r := NewRecord(name)
				require.NoError(t, r.SetBirthday(value))
				book.Add(r)
			}
			book.Add(NewRecord("Dave"))

			var got []string
			for _, u := range book.UpcomingBirthdays(tt.today, DefaultUpcomingWindow) {
				got = append(got, u.String())
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAddressBook_UpcomingBirthdaysDate(t *testing.T) {
	book := NewAddressBook()
	r := NewRecord("Leap")
	require.NoError(t, r.SetBirthday("29.02.2000"))
	book.Add(r)

	today := time.Date(2023, time.February, 25, 0, 0, 0, 0, time.UTC)
	got := book.UpcomingBirthdays(today, DefaultUpcomingWindow)
	require.Len(t, got, 1)
	assert.Equal(t, time.Date(2023, time.February, 28, 0, 0, 0, 0, time.UTC), got[0].Date)
	assert.Equal(t, "29.02.2000", got[0].Birthday.String())
}
