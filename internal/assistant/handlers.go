package assistant

import (
	"errors"
	"fmt"
	"strings"

	"github.com/leapstack-labs/contactbook/internal/contacts"
)

// result is what a handler produces on success.
type result struct {
	text    string
	changed bool
}

type handlerFunc func(d *Dispatcher, args []string) (result, error)

func handleHello(_ *Dispatcher, _ []string) (result, error) {
	return result{text: "How can I help you?"}, nil
}

func handleAdd(d *Dispatcher, args []string) (result, error) {
	if len(args) < 2 {
		return result{}, ErrMissingArgs
	}
	name, phone := args[0], args[1]

	msg := "Contact updated."
	created := false
	record := d.book.Find(name)
	if record == nil {
		record = contacts.NewRecord(name)
		d.book.Add(record)
		msg = "Contact added."
		created = true
	}

	if err := record.AddPhone(phone); err != nil {
		msg = fmt.Sprintf("Failed to add phone number: '%s'. %s\n%s", phone, replyForError(err), msg)
		return result{text: msg, changed: created}, nil
	}
	return result{text: msg, changed: true}, nil
}

func handleChange(d *Dispatcher, args []string) (result, error) {
	if len(args) != 3 {
		return result{}, ErrMissingArgs
	}
	name, oldPhone, newPhone := args[0], args[1], args[2]

	record := d.book.Find(name)
	if record == nil {
		return result{}, contactNotFound(name)
	}

	err := record.EditPhone(oldPhone, newPhone)
	switch {
	case errors.Is(err, contacts.ErrNotFound):
		return result{text: fmt.Sprintf("Phone '%s' not found in contact %s", oldPhone, name)}, nil
	case err != nil:
		return result{}, err
	}
	return result{text: "Phone number changed.", changed: true}, nil
}

func handlePhone(d *Dispatcher, args []string) (result, error) {
	if len(args) == 0 {
		return result{}, ErrNoName
	}
	name := args[0]

	record := d.book.Find(name)
	if record == nil {
		return result{}, contactNotFound(name)
	}

	phones := record.Phones()
	if len(phones) == 0 {
		return result{text: fmt.Sprintf("%s's phone numbers: No phones", name)}, nil
	}
	values := make([]string, len(phones))
	for i, p := range phones {
		values[i] = p.String()
	}
	return result{text: fmt.Sprintf("%s's phone numbers: %s", name, strings.Join(values, ", "))}, nil
}

func handleAll(d *Dispatcher, _ []string) (result, error) {
	if d.book.Len() == 0 {
		return result{text: "The contact list is empty."}, nil
	}
	return result{text: d.book.String()}, nil
}

func handleAddBirthday(d *Dispatcher, args []string) (result, error) {
	if len(args) < 2 {
		return result{}, ErrMissingArgs
	}
	name, value := args[0], args[1]

	record := d.book.Find(name)
	if record == nil {
		return result{}, contactNotFound(name)
	}
	if err := record.SetBirthday(value); err != nil {
		return result{}, err
	}
	return result{text: fmt.Sprintf("Birthday added for '%s'.", name), changed: true}, nil
}

func handleShowBirthday(d *Dispatcher, args []string) (result, error) {
	if len(args) == 0 {
		return result{}, ErrNoName
	}
	name := args[0]

	record := d.book.Find(name)
	if record == nil {
		return result{}, contactNotFound(name)
	}
	return result{text: fmt.Sprintf("%s's birthday is: %s", name, record.ShowBirthday())}, nil
}

func handleBirthdays(d *Dispatcher, _ []string) (result, error) {
	upcoming := d.book.UpcomingBirthdays(d.now(), d.window)
	if len(upcoming) == 0 {
		return result{text: "No birthdays this week."}, nil
	}
	lines := make([]string, 0, len(upcoming)+1)
	lines = append(lines, "Birthdays in the upcoming week:")
	for _, u := range upcoming {
		lines = append(lines, u.String())
	}
	return result{text: strings.Join(lines, "\n")}, nil
}

func handleDelete(d *Dispatcher, args []string) (result, error) {
	if len(args) == 0 {
		return result{}, ErrNoName
	}
	name := args[0]

	if err := d.book.Delete(name); err != nil {
		if errors.Is(err, contacts.ErrNotFound) {
			return result{text: fmt.Sprintf("Contact '%s' not found.", name)}, nil
		}
		return result{}, err
	}
	return result{text: fmt.Sprintf("Contact '%s' deleted.", name), changed: true}, nil
}

func handleRemovePhone(d *Dispatcher, args []string) (result, error) {
	if len(args) < 2 {
		return result{}, ErrMissingArgs
	}
	name, phone := args[0], args[1]

	record := d.book.Find(name)
	if record == nil {
		return result{}, contactNotFound(name)
	}
	if err := record.DeletePhone(phone); err != nil {
		if errors.Is(err, contacts.ErrNotFound) {
			return result{text: fmt.Sprintf("Phone '%s' not found.", phone)}, nil
		}
		return result{}, err
	}
	return result{text: fmt.Sprintf("Phone '%s' deleted.", phone), changed: true}, nil
}

func handleHelp(d *Dispatcher, _ []string) (result, error) {
	var b strings.Builder
	b.WriteString("Commands:")
	for _, c := range d.infos {
		fmt.Fprintf(&b, "\n  %-34s %s", strings.TrimSpace(c.Name+" "+c.Usage), c.Summary)
	}
	return result{text: b.String()}, nil
}
