package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mreyes/rolodex/internal/store"
)

func testModel(t *testing.T) Model {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "contacts.txt"), store.PipeCodec{})
	require.NoError(t, err)
	return NewModel(st, nil)
}

func key(t tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: t} }

func TestValidateName(t *testing.T) {
	assert.NoError(t, ValidateName("Alice"))
	assert.Error(t, ValidateName(""))
	assert.Error(t, ValidateName("   "), "whitespace-only name is empty")
}

func TestValidatePhone(t *testing.T) {
	assert.NoError(t, ValidatePhone("5551234"))
	assert.NoError(t, ValidatePhone("+44 (0)20"))
	assert.Error(t, ValidatePhone(""))
	assert.Error(t, ValidatePhone("call me maybe"))
}

func TestParseID(t *testing.T) {
	id, err := ParseID("42")
	require.NoError(t, err)
	assert.Equal(t, 42, id)

	_, err = ParseID("abc")
	assert.Error(t, err)
	_, err = ParseID("")
	assert.Error(t, err)
}

func TestMenu_EnterOpensAddForm(t *testing.T) {
	m := testModel(t)

	// Default selection is the first item: Add contact.
	next, _ := m.Update(key(tea.KeyEnter))
	assert.Equal(t, modeAdd, next.(Model).mode)

	// Esc backs out to the menu.
	next, _ = next.Update(key(tea.KeyEsc))
	assert.Equal(t, modeMenu, next.(Model).mode)
}

func TestSearch_RejectsEmptyQuery(t *testing.T) {
	m := testModel(t)
	m.mode = modeSearch

	next, _ := m.Update(key(tea.KeyEnter))
	got := next.(Model)
	assert.Equal(t, modeSearch, got.mode, "stay on the prompt")
	assert.Equal(t, statusErr, got.statusKind)
}

func TestDelete_UnknownIDReportsError(t *testing.T) {
	m := testModel(t)
	m.mode = modeDelete
	m.idInput.SetValue("99")

	next, _ := m.Update(key(tea.KeyEnter))
	got := next.(Model)
	assert.Equal(t, modeMenu, got.mode)
	assert.Contains(t, got.status, "no contact with id 99")
}

func TestConfirm_DeclineKeepsContact(t *testing.T) {
	m := testModel(t)
	c, err := m.st.Add("Alice", "111")
	require.NoError(t, err)

	m.mode = modeConfirm
	m.pending = c

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")})
	got := next.(Model)
	assert.Equal(t, modeMenu, got.mode)
	assert.Len(t, got.st.List(), 1)
}

func TestConfirm_AcceptDeletes(t *testing.T) {
	m := testModel(t)
	c, err := m.st.Add("Alice", "111")
	require.NoError(t, err)

	m.mode = modeConfirm
	m.pending = c

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")})
	got := next.(Model)
	assert.Equal(t, modeMenu, got.mode)
	assert.Empty(t, got.st.List())
	assert.Contains(t, got.status, "removed #1")
}

func TestView_ShowsResults(t *testing.T) {
	m := testModel(t)
	m.st.Add("Alice", "555")
	m.results = m.st.List()
	m.resultsTitle = "All contacts (1)"
	m.mode = modeResults

	out := m.View()
	assert.True(t, strings.Contains(out, "Alice"), "result rows render in the view")
	assert.True(t, strings.Contains(out, "All contacts (1)"))
}
