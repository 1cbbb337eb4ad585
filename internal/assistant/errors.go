package assistant

import (
	"errors"
	"fmt"

	"github.com/leapstack-labs/contactbook/internal/contacts"
)

// Argument errors returned by handlers. Each maps to a fixed reply.
var (
	// ErrMissingArgs means the command got fewer arguments than it needs.
	ErrMissingArgs = errors.New("missing arguments")
	// ErrNoName means a command that takes a contact name got none.
	ErrNoName = errors.New("missing contact name")
)

// Fixed replies for each error kind.
const (
	replyMissingArgs = "Please provide name and phone number."
	replyNotFound    = "Contact not found."
	replyNoName      = "Please enter a name."
)

func contactNotFound(name string) error {
	return fmt.Errorf("contact %q: %w", name, contacts.ErrNotFound)
}

// replyForError translates a handler error into the message shown to the
// user. Unknown errors keep their text.
func replyForError(err error) string {
	var verr *contacts.ValidationError
	switch {
	case errors.As(err, &verr):
		return verr.Reason
	case errors.Is(err, ErrMissingArgs):
		return replyMissingArgs
	case errors.Is(err, ErrNoName):
		return replyNoName
	case errors.Is(err, contacts.ErrNotFound):
		return replyNotFound
	default:
		return "Error: " + err.Error()
	}
}
