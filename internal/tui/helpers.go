package tui

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/mreyes/rolodex/internal/store"
)

// Dispatch-layer input checks. The store takes whatever it is given;
// rejecting junk before it gets there is this layer's job.

// ValidateName requires a non-empty name.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("name must not be empty")
	}
	return nil
}

// ValidatePhone requires at least one digit somewhere in the value.
// Everything else (spaces, +, punctuation) is stored verbatim.
func ValidatePhone(phone string) error {
	for _, r := range phone {
		if unicode.IsDigit(r) {
			return nil
		}
	}
	return fmt.Errorf("phone must contain at least one digit")
}

// ParseID turns raw user input into a contact id.
func ParseID(raw string) (int, error) {
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%q is not a numeric id", raw)
	}
	return id, nil
}

// FormatContact renders one contact as an aligned row.
func FormatContact(c store.Contact) string {
	return RowIDStyle.Render(fmt.Sprintf("#%-5d", c.ID)) + RowStyle.Render(fmt.Sprintf(" %-28s %s", c.Name, c.Phone))
}

// FormatContacts renders a result set, one row per line.
func FormatContacts(contacts []store.Contact) string {
	if len(contacts) == 0 {
		return HelpStyle.Render("  (nothing here)")
	}

	var b strings.Builder
	for _, c := range contacts {
		b.WriteString("  " + FormatContact(c) + "\n")
	}
	return b.String()
}
