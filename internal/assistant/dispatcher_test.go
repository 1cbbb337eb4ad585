package assistant

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/leapstack-labs/contactbook/internal/contacts"
	"github.com/leapstack-labs/contactbook/internal/storage"
	"github.com/leapstack-labs/contactbook/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memStore records saves in memory.
type memStore struct {
	saved   *contacts.AddressBook
	saves   int
	saveErr error
}

func (m *memStore) Load(context.Context) (*contacts.AddressBook, error) {
	if m.saved == nil {
		return contacts.NewAddressBook(), nil
	}
	return m.saved, nil
}

func (m *memStore) Save(_ context.Context, b *contacts.AddressBook) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saves++
	m.saved = b
	return nil
}

func (m *memStore) Path() string { return "memory" }
func (m *memStore) Close() error { return nil }

var fixedToday = time.Date(2024, time.June, 1, 10, 30, 0, 0, time.UTC)

func newTestDispatcher(t *testing.T, store storage.Store) *Dispatcher {
	t.Helper()
	if store == nil {
		store = &memStore{}
	}
	d, err := New(Options{
		Book:   contacts.NewAddressBook(),
		Store:  store,
		Logger: testutil.NewTestLogger(t),
		Now:    func() time.Time { return fixedToday },
	})
	require.NoError(t, err)
	return d
}

func run(t *testing.T, d *Dispatcher, lines ...string) []string {
	t.Helper()
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		reply, err := d.Execute(context.Background(), line)
		require.NoError(t, err, "line %q", line)
		out = append(out, reply.Text)
	}
	return out
}

func TestNew_RequiresBookAndStore(t *testing.T) {
	_, err := New(Options{Store: &memStore{}})
	assert.Error(t, err)

	_, err = New(Options{Book: contacts.NewAddressBook()})
	assert.Error(t, err)

	d, err := New(Options{Book: contacts.NewAddressBook(), Store: &memStore{}})
	require.NoError(t, err)
	assert.Equal(t, contacts.DefaultUpcomingWindow, d.window)
}

func TestDispatcher_Commands(t *testing.T) {
	tests := []struct {
		name  string
		setup []string
		line  string
		want  string
	}{
		{name: "hello", line: "hello", want: "How can I help you?"},
		{name: "hello is case-insensitive", line: "  HeLLo  ", want: "How can I help you?"},
		{name: "unknown command", line: "dance", want: "Invalid command."},
		{name: "blank line", line: "   ", want: "Invalid command."},

		{name: "add new contact", line: "add Alice 1234567890", want: "Contact added."},
		{name: "add to existing", setup: []string{"add Alice 1234567890"}, line: "add Alice 5555555555", want: "Contact updated."},
		{name: "add missing phone", line: "add Alice", want: "Please provide name and phone number."},
		{name: "add no args", line: "add", want: "Please provide name and phone number."},
		{
			name: "add invalid phone",
			line: "add Alice 12345",
			want: "Failed to add phone number: '12345'. Phone number must contain exactly 10 digits\nContact added.",
		},

		{name: "change phone", setup: []string{"add Alice 1234567890"}, line: "change Alice 1234567890 9999999999", want: "Phone number changed."},
		{name: "change unknown contact", line: "change Bob 1234567890 9999999999", want: "Contact not found."},
		{name: "change too few args", line: "change Alice 1234567890", want: "Please provide name and phone number."},
		{name: "change too many args", line: "change Alice 1 2 3", want: "Please provide name and phone number."},
		{
			name:  "change unknown phone",
			setup: []string{"add Alice 1234567890"},
			line:  "change Alice 0000000000 9999999999",
			want:  "Phone '0000000000' not found in contact Alice",
		},
		{
			name:  "change to invalid phone",
			setup: []string{"add Alice 1234567890"},
			line:  "change Alice 1234567890 99",
			want:  "Phone number must contain exactly 10 digits",
		},

		{
			name:  "phone lists numbers",
			setup: []string{"add Alice 1234567890", "add Alice 5555555555"},
			line:  "phone Alice",
			want:  "Alice's phone numbers: 1234567890, 5555555555",
		},
		{name: "phone without phones", setup: []string{"add Alice 12"}, line: "phone Alice", want: "Alice's phone numbers: No phones"},
		{name: "phone no name", line: "phone", want: "Please enter a name."},
		{name: "phone unknown", line: "phone Bob", want: "Contact not found."},

		{name: "all empty", line: "all", want: "The contact list is empty."},
		{
			name:  "all renders every record",
			setup: []string{"add Alice 1234567890", "add Bob 12"},
			line:  "all",
			want:  "Contact name: Alice, phones: 1234567890\nContact name: Bob, phones: No phones",
		},

		{name: "add birthday", setup: []string{"add Alice 1234567890"}, line: "add-birthday Alice 05.06.1990", want: "Birthday added for 'Alice'."},
		{name: "add birthday invalid", setup: []string{"add Alice 1234567890"}, line: "add-birthday Alice 1990-06-05", want: "Invalid date format. Use DD.MM.YYYY"},
		{name: "add birthday unknown", line: "add-birthday Bob 05.06.1990", want: "Contact not found."},
		{name: "add birthday missing date", line: "add-birthday Alice", want: "Please provide name and phone number."},

		{
			name:  "show birthday",
			setup: []string{"add Alice 1234567890", "add-birthday Alice 05.06.1990"},
			line:  "show-birthday Alice",
			want:  "Alice's birthday is: 05.06.1990",
		},
		{name: "show birthday unset", setup: []string{"add Alice 1234567890"}, line: "show-birthday Alice", want: "Alice's birthday is: No birthday set"},
		{name: "show birthday no name", line: "show-birthday", want: "Please enter a name."},
		{name: "show birthday unknown", line: "show-birthday Bob", want: "Contact not found."},

		{
			name: "birthdays upcoming",
			setup: []string{
				"add Alice 1234567890", "add-birthday Alice 05.06.1990",
				"add Bob 1234567890", "add-birthday Bob 10.06.1990",
				"add Carol 1234567890", "add-birthday Carol 01.06.2000",
			},
			line: "birthdays",
			want: "Birthdays in the upcoming week:\nAlice: 05.06.1990\nCarol: 01.06.2000",
		},
		{
			name:  "birthdays none",
			setup: []string{"add Bob 1234567890", "add-birthday Bob 10.06.1990"},
			line:  "birthdays",
			want:  "No birthdays this week.",
		},

		{name: "delete contact", setup: []string{"add Alice 1234567890"}, line: "delete Alice", want: "Contact 'Alice' deleted."},
		{name: "delete unknown", line: "delete Bob", want: "Contact 'Bob' not found."},
		{name: "delete no name", line: "delete", want: "Please enter a name."},

		{name: "remove phone", setup: []string{"add Alice 1234567890"}, line: "remove-phone Alice 1234567890", want: "Phone '1234567890' deleted."},
		{name: "remove unknown phone", setup: []string{"add Alice 1234567890"}, line: "remove-phone Alice 5555555555", want: "Phone '5555555555' not found."},
		{name: "remove phone unknown contact", line: "remove-phone Bob 5555555555", want: "Contact not found."},
		{name: "remove phone missing args", line: "remove-phone Bob", want: "Please provide name and phone number."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newTestDispatcher(t, nil)
			run(t, d, tt.setup...)

			got := run(t, d, tt.line)
			assert.Equal(t, tt.want, got[0])
		})
	}
}

func TestDispatcher_AddTwiceKeepsOneRecord(t *testing.T) {
	d := newTestDispatcher(t, nil)
	run(t, d, "add Alice 1234567890", "add Alice 5555555555")

	book := d.Book()
	assert.Equal(t, 1, book.Len())
	assert.Equal(t, []contacts.Phone{"1234567890", "5555555555"}, book.Find("Alice").Phones())
}

func TestDispatcher_ChangeReplacesPhone(t *testing.T) {
	d := newTestDispatcher(t, nil)
	run(t, d, "add Alice 1234567890", "change Alice 1234567890 9999999999")

	r := d.Book().Find("Alice")
	require.NotNil(t, r)
	_, ok := r.FindPhone("1234567890")
	assert.False(t, ok)
	_, ok = r.FindPhone("9999999999")
	assert.True(t, ok)
}

func TestDispatcher_ChangedFlag(t *testing.T) {
	d := newTestDispatcher(t, nil)
	ctx := context.Background()

	steps := []struct {
		line string
		want bool
	}{
		{"add Alice 1234567890", true},
		{"add Alice 123", false},
		{"add Bob 123", true},
		{"phone Alice", false},
		{"all", false},
		{"add-birthday Alice 05.06.1990", true},
		{"add-birthday Alice bad", false},
		{"hello", false},
		{"delete Nobody", false},
		{"delete Alice", true},
	}
	for _, step := range steps {
		reply, err := d.Execute(ctx, step.line)
		require.NoError(t, err)
		assert.Equal(t, step.want, reply.Changed, step.line)
	}
}

func TestDispatcher_ExitSaves(t *testing.T) {
	for _, word := range []string{"exit", "close", "EXIT"} {
		t.Run(word, func(t *testing.T) {
			store := &memStore{}
			d := newTestDispatcher(t, store)
			run(t, d, "add Alice 1234567890")

			reply, err := d.Execute(context.Background(), word)
			require.NoError(t, err)
			assert.True(t, reply.Exit)
			assert.Equal(t, "Good bye!", reply.Text)
			assert.Equal(t, 1, store.saves)
			assert.Equal(t, []string{"Alice"}, store.saved.Names())
		})
	}
}

func TestDispatcher_ExitSaveFailure(t *testing.T) {
	store := &memStore{saveErr: assert.AnError}
	d := newTestDispatcher(t, store)

	reply, err := d.Execute(context.Background(), "exit")
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
	assert.True(t, reply.Exit)
	assert.True(t, strings.HasPrefix(reply.Text, "Error: failed to save address book"))
}

func TestDispatcher_SaveLogs(t *testing.T) {
	logger, buf := testutil.NewCaptureLogger()
	d, err := New(Options{Book: contacts.NewAddressBook(), Store: &memStore{}, Logger: logger})
	require.NoError(t, err)

	run(t, d, "add Alice 1234567890", "bogus")
	require.NoError(t, d.Save(context.Background()))

	logs := buf.String()
	assert.Contains(t, logs, "command executed")
	assert.Contains(t, logs, "unknown command")
	assert.Contains(t, logs, "address book saved")
	assert.Contains(t, logs, "path=memory")
	assert.Contains(t, logs, "contacts=1")
}

func TestDispatcher_Help(t *testing.T) {
	d := newTestDispatcher(t, nil)
	got := run(t, d, "help")[0]

	for _, c := range d.Commands() {
		assert.Contains(t, got, c.Name)
	}
	assert.Contains(t, got, "add-birthday <name> <DD.MM.YYYY>")
}

func TestDispatcher_UpcomingWindowOption(t *testing.T) {
	d, err := New(Options{
		Book:           contacts.NewAddressBook(),
		Store:          &memStore{},
		Now:            func() time.Time { return fixedToday },
		UpcomingWindow: 10 * 24 * time.Hour,
	})
	require.NoError(t, err)

	got := run(t, d, "add Bob 1234567890", "add-birthday Bob 10.06.1990", "birthdays")
	assert.Equal(t, "Birthdays in the upcoming week:\nBob: 10.06.1990", got[2])
}

func TestDispatcher_PersistsAcrossSessions(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "addressbook.yaml")

	store := storage.NewYAMLStore(path, nil)
	book, err := store.Load(ctx)
	require.NoError(t, err)
	d, err := New(Options{Book: book, Store: store})
	require.NoError(t, err)
	run(t, d, "add Alice 1234567890", "add-birthday Alice 05.06.1990", "exit")

	reloaded, err := storage.NewYAMLStore(path, nil).Load(ctx)
	require.NoError(t, err)
	d2, err := New(Options{Book: reloaded, Store: store})
	require.NoError(t, err)

	got := run(t, d2, "phone Alice", "show-birthday Alice")
	assert.Equal(t, []string{"Alice's phone numbers: 1234567890", "Alice's birthday is: 05.06.1990"}, got)
}
