// Package assistant turns command lines into address book operations.
//
// A Dispatcher owns the book and its store for the whole session. Each
// command handler returns either a reply or one of the error kinds in
// errors.go; the dispatcher maps those kinds to fixed replies, so a bad
// command never ends the session. Only close/exit ends it, after saving.
package assistant

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/leapstack-labs/contactbook/internal/contacts"
	"github.com/leapstack-labs/contactbook/internal/storage"
)

// Fixed session messages.
const (
	Welcome        = "Welcome to the assistant bot!"
	Goodbye        = "Good bye!"
	InvalidCommand = "Invalid command."
)

// CommandInfo describes one command for help output and completion.
type CommandInfo struct {
	Name    string
	Usage   string
	Summary string
}

type command struct {
	CommandInfo
	run handlerFunc
}

var commandTable = []command{
	{CommandInfo{"hello", "", "Greet the assistant"}, handleHello},
	{CommandInfo{"add", "<name> <phone>", "Add a contact or a phone to an existing contact"}, handleAdd},
	{CommandInfo{"change", "<name> <old-phone> <new-phone>", "Replace a contact's phone"}, handleChange},
	{CommandInfo{"phone", "<name>", "Show a contact's phones"}, handlePhone},
	{CommandInfo{"all", "", "Show all contacts"}, handleAll},
	{CommandInfo{"add-birthday", "<name> <DD.MM.YYYY>", "Set a contact's birthday"}, handleAddBirthday},
	{CommandInfo{"show-birthday", "<name>", "Show a contact's birthday"}, handleShowBirthday},
	{CommandInfo{"birthdays", "", "List birthdays in the coming week"}, handleBirthdays},
	{CommandInfo{"delete", "<name>", "Delete a contact"}, handleDelete},
	{CommandInfo{"remove-phone", "<name> <phone>", "Delete one phone from a contact"}, handleRemovePhone},
	{CommandInfo{"help", "", "Show this help"}, handleHelp},
}

var exitCommands = map[string]bool{"close": true, "exit": true}

// Options configures a Dispatcher.
type Options struct {
	Book   *contacts.AddressBook
	Store  storage.Store
	Logger *slog.Logger
	// Now returns the current time; defaults to time.Now.
	Now func() time.Time
	// UpcomingWindow is the birthdays look-ahead; defaults to seven days.
	UpcomingWindow time.Duration
}

// Dispatcher routes command lines to handlers.
type Dispatcher struct {
	book     *contacts.AddressBook
	store    storage.Store
	logger   *slog.Logger
	now      func() time.Time
	window   time.Duration
	handlers map[string]handlerFunc
	infos    []CommandInfo
}

// New creates a dispatcher. Book and Store are required.
func New(opts Options) (*Dispatcher, error) {
	if opts.Book == nil {
		return nil, fmt.Errorf("address book is required")
	}
	if opts.Store == nil {
		return nil, fmt.Errorf("store is required")
	}

	d := &Dispatcher{
		book:     opts.Book,
		store:    opts.Store,
		logger:   opts.Logger,
		now:      opts.Now,
		window:   opts.UpcomingWindow,
		handlers: make(map[string]handlerFunc, len(commandTable)),
	}
	if d.logger == nil {
		d.logger = slog.New(slog.DiscardHandler)
	}
	if d.now == nil {
		d.now = time.Now
	}
	if d.window <= 0 {
		d.window = contacts.DefaultUpcomingWindow
	}
	for _, c := range commandTable {
		d.handlers[c.Name] = c.run
		d.infos = append(d.infos, c.CommandInfo)
	}
	d.infos = append(d.infos,
		CommandInfo{Name: "close", Summary: "Save and quit"},
		CommandInfo{Name: "exit", Summary: "Save and quit"},
	)
	return d, nil
}

// Book returns the address book owned by the dispatcher.
func (d *Dispatcher) Book() *contacts.AddressBook { return d.book }

// Commands lists the routed commands, including close and exit.
func (d *Dispatcher) Commands() []CommandInfo {
	return slices.Clone(d.infos)
}

// Reply is the outcome of one command line.
type Reply struct {
	Text string
	// Exit is set after close/exit; the book has been saved.
	Exit bool
	// Changed is set when the command modified the book.
	Changed bool
}

// Execute runs one command line. The returned error is non-nil only when
// saving on exit fails; every command error becomes reply text.
func (d *Dispatcher) Execute(ctx context.Context, line string) (Reply, error) {
	cmd, args := ParseInput(line)

	if exitCommands[cmd] {
		if err := d.Save(ctx); err != nil {
			return Reply{Text: "Error: " + err.Error(), Exit: true}, err
		}
		return Reply{Text: Goodbye, Exit: true}, nil
	}

	handler, ok := d.handlers[cmd]
	if !ok {
		d.logger.Debug("unknown command", "command", cmd)
		return Reply{Text: InvalidCommand}, nil
	}

	res, err := handler(d, args)
	if err != nil {
		d.logger.Debug("command failed", "command", cmd, "error", err)
		return Reply{Text: replyForError(err)}, nil
	}
	d.logger.Debug("command executed", "command", cmd, "changed", res.changed)
	return Reply{Text: res.text, Changed: res.changed}, nil
}

// Save writes the book to the store.
func (d *Dispatcher) Save(ctx context.Context) error {
	if err := d.store.Save(ctx, d.book); err != nil {
		return fmt.Errorf("failed to save address book: %w", err)
	}
	d.logger.Info("address book saved", "path", d.store.Path(), "contacts", d.book.Len())
	return nil
}
