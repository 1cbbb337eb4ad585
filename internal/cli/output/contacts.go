package output

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/leapstack-labs/contactbook/internal/contacts"
)

const (
	emptyContacts  = "The contact list is empty."
	emptyBirthdays = "No birthdays this week."
	dateLayout     = "02.01.2006"
)

// ContactInfo is the rendered form of a record.
type ContactInfo struct {
	Name     string   `json:"name"`
	Phones   []string `json:"phones"`
	Birthday string   `json:"birthday,omitempty"`
}

// BirthdayInfo is one upcoming birthday.
type BirthdayInfo struct {
	Name     string `json:"name"`
	Birthday string `json:"birthday"`
	Date     string `json:"date"`
	Weekday  string `json:"weekday"`
}

// ContactsFromBook converts the book's records in insertion order.
func ContactsFromBook(book *contacts.AddressBook) []ContactInfo {
	records := book.Records()
	out := make([]ContactInfo, 0, len(records))
	for _, rec := range records {
		info := ContactInfo{Name: rec.Name().String(), Phones: []string{}}
		for _, p := range rec.Phones() {
			info.Phones = append(info.Phones, p.String())
		}
		if b, ok := rec.Birthday(); ok {
			info.Birthday = b.String()
		}
		out = append(out, info)
	}
	return out
}

// BirthdaysFromUpcoming converts upcoming birthdays for rendering.
func BirthdaysFromUpcoming(list []contacts.Upcoming) []BirthdayInfo {
	out := make([]BirthdayInfo, 0, len(list))
	for _, u := range list {
		out = append(out, BirthdayInfo{
			Name:     u.Name.String(),
			Birthday: u.Birthday.String(),
			Date:     u.Date.Format(dateLayout),
			Weekday:  u.Date.Weekday().String(),
		})
	}
	return out
}

// Contacts renders a contact list in the effective mode.
func (r *Renderer) Contacts(list []ContactInfo) error {
	mode := r.EffectiveMode()
	if mode == ModeJSON {
		return r.JSON(list)
	}
	if len(list) == 0 {
		r.Muted(emptyContacts)
		return nil
	}

	switch mode {
	case ModeTable, ModeMarkdown:
		if mode == ModeMarkdown {
			r.Println(FormatHeader(1, fmt.Sprintf("Contacts (%d)", len(list))))
			r.Println("")
		}
		t := r.newTable()
		t.AppendHeader(table.Row{"Name", "Phones", "Birthday"})
		for _, c := range list {
			t.AppendRow(table.Row{c.Name, strings.Join(c.Phones, ", "), c.Birthday})
		}
		r.renderTable(t, mode)
	default:
		r.Header(1, fmt.Sprintf("Contacts (%d)", len(list)))
		for _, c := range list {
			r.contactLine(c)
		}
	}
	return nil
}

func (r *Renderer) contactLine(c ContactInfo) {
	phones := r.styles.Muted.Render("no phones")
	if len(c.Phones) > 0 {
		styled := make([]string, len(c.Phones))
		for i, p := range c.Phones {
			styled[i] = r.styles.Phone.Render(p)
		}
		phones = strings.Join(styled, ", ")
	}

	line := fmt.Sprintf("  %s  %s", r.styles.Name.Render(c.Name), phones)
	if c.Birthday != "" {
		line += "  " + r.styles.Date.Render(c.Birthday)
	}
	r.Println(line)
}

// Birthdays renders upcoming birthdays in the effective mode.
func (r *Renderer) Birthdays(list []BirthdayInfo) error {
	mode := r.EffectiveMode()
	if mode == ModeJSON {
		return r.JSON(list)
	}
	if len(list) == 0 {
		r.Muted(emptyBirthdays)
		return nil
	}

	switch mode {
	case ModeTable, ModeMarkdown:
		if mode == ModeMarkdown {
			r.Println(FormatHeader(1, "Upcoming birthdays"))
			r.Println("")
		}
		t := r.newTable()
		t.AppendHeader(table.Row{"Name", "Birthday", "Date", "Weekday"})
		for _, b := range list {
			t.AppendRow(table.Row{b.Name, b.Birthday, b.Date, b.Weekday})
		}
		r.renderTable(t, mode)
	default:
		r.Header(1, "Upcoming birthdays")
		for _, b := range list {
			r.Printf("  %s  %s  %s\n",
				r.styles.Name.Render(b.Name),
				r.styles.Date.Render(b.Date),
				r.styles.Muted.Render(b.Weekday))
		}
	}
	return nil
}

func (r *Renderer) newTable() table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetStyle(table.StyleLight)
	return t
}

func (r *Renderer) renderTable(t table.Writer, mode Mode) {
	if mode == ModeMarkdown {
		t.RenderMarkdown()
		return
	}
	t.Render()
}
