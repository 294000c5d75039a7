package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mreyes/rolodex/internal/store"
)

type mode int

const (
	modeMenu mode = iota
	modeAdd
	modeSearch
	modeDelete
	modeConfirm // waiting for y/n on a pending delete
	modeResults
)

type statusKind int

const (
	statusNone statusKind = iota
	statusOK
	statusWarn
	statusErr
)

type Model struct {
	width, height int
	mode          mode
	menu          MenuModel

	nameInput  textinput.Model
	phoneInput textinput.Model
	queryInput textinput.Model
	idInput    textinput.Model
	focusPhone bool // which add-form field has focus

	st           *store.Store
	results      []store.Contact
	resultsTitle string
	pending      store.Contact // delete candidate awaiting confirmation

	status     string
	statusKind statusKind
}

// NewModel builds the interactive menu UI over an already-opened
// store. A non-nil loadErr (store opened but the backing file could
// not be read) becomes a startup warning in the status line; per the
// store's contract it never aborts the session.
func NewModel(st *store.Store, loadErr error) Model {
	name := textinput.New()
	name.Placeholder = "Ada Lovelace"
	name.CharLimit = 0

	phone := textinput.New()
	phone.Placeholder = "+44 20 5550 1815"
	phone.CharLimit = 0

	query := textinput.New()
	query.Placeholder = "name or phone fragment"

	id := textinput.New()
	id.Placeholder = "contact id"

	m := Model{
		mode:       modeMenu,
		menu:       NewMenuModel(),
		nameInput:  name,
		phoneInput: phone,
		queryInput: query,
		idInput:    id,
		st:         st,
	}

	if loadErr != nil {
		m.setStatus(statusWarn, fmt.Sprintf("started with empty directory: %v", loadErr))
	}
	return m
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}

		switch m.mode {
		case modeMenu:
			return m.updateMenu(msg)
		case modeAdd:
			return m.updateAdd(msg)
		case modeSearch:
			return m.updateSearch(msg)
		case modeDelete:
			return m.updateDelete(msg)
		case modeConfirm:
			return m.updateConfirm(msg)
		case modeResults:
			// Any of the usual "back" keys returns to the menu.
			switch msg.String() {
			case "esc", "enter", "q":
				m.mode = modeMenu
			}
			return m, nil
		}
	}

	// Forward everything else (cursor blink ticks etc.) to whichever
	// input is active.
	var cmd tea.Cmd
	switch m.mode {
	case modeAdd:
		if m.focusPhone {
			m.phoneInput, cmd = m.phoneInput.Update(msg)
		} else {
			m.nameInput, cmd = m.nameInput.Update(msg)
		}
	case modeSearch:
		m.queryInput, cmd = m.queryInput.Update(msg)
	case modeDelete:
		m.idInput, cmd = m.idInput.Update(msg)
	}
	return m, cmd
}

func (m Model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "q" || msg.Type == tea.KeyEsc {
		return m, tea.Quit
	}

	if msg.Type == tea.KeyEnter {
		m.clearStatus()
		switch m.menu.Selected() {
		case actionAdd:
			m.mode = modeAdd
			m.focusPhone = false
			m.nameInput.Reset()
			m.phoneInput.Reset()
			m.phoneInput.Blur()
			return m, m.nameInput.Focus()
		case actionList:
			m.results = m.st.List()
			m.resultsTitle = fmt.Sprintf("All contacts (%d)", len(m.results))
			m.mode = modeResults
			return m, nil
		case actionSearch:
			m.mode = modeSearch
			m.queryInput.Reset()
			return m, m.queryInput.Focus()
		case actionDelete:
			m.mode = modeDelete
			m.idInput.Reset()
			return m, m.idInput.Focus()
		case actionQuit:
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.menu, cmd = m.menu.Update(msg)
	return m, cmd
}

func (m Model) updateAdd(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.mode = modeMenu
		return m, nil

	case tea.KeyTab, tea.KeyShiftTab, tea.KeyDown, tea.KeyUp:
		m.focusPhone = !m.focusPhone
		if m.focusPhone {
			m.nameInput.Blur()
			return m, m.phoneInput.Focus()
		}
		m.phoneInput.Blur()
		return m, m.nameInput.Focus()

	case tea.KeyEnter:
		// Enter on the name field moves on; enter on the phone field
		// submits.
		if !m.focusPhone {
			m.focusPhone = true
			m.nameInput.Blur()
			return m, m.phoneInput.Focus()
		}
		return m.submitAdd()
	}

	var cmd tea.Cmd
	if m.focusPhone {
		m.phoneInput, cmd = m.phoneInput.Update(msg)
	} else {
		m.nameInput, cmd = m.nameInput.Update(msg)
	}
	return m, cmd
}

// submitAdd runs the dispatch-layer validation and, if it passes,
// hands the raw values to the store.
func (m Model) submitAdd() (tea.Model, tea.Cmd) {
	name := strings.TrimSpace(m.nameInput.Value())
	phone := strings.TrimSpace(m.phoneInput.Value())

	if err := ValidateName(name); err != nil {
		m.setStatus(statusErr, err.Error())
		m.focusPhone = false
		m.phoneInput.Blur()
		return m, m.nameInput.Focus()
	}
	if err := ValidatePhone(phone); err != nil {
		m.setStatus(statusErr, err.Error())
		return m, nil
	}

	c, err := m.st.Add(name, phone)
	if err != nil {
		// Contact is kept in memory; only the write failed.
		m.setStatus(statusWarn, fmt.Sprintf("added #%d but saving failed: %v", c.ID, err))
	} else {
		m.setStatus(statusOK, fmt.Sprintf("added #%d %s", c.ID, c.Name))
	}
	m.mode = modeMenu
	return m, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.mode = modeMenu
		return m, nil

	case tea.KeyEnter:
		query := strings.TrimSpace(m.queryInput.Value())
		if query == "" {
			m.setStatus(statusErr, "search needs a non-empty query")
			return m, nil
		}
		m.results = m.st.Search(query)
		m.resultsTitle = fmt.Sprintf("Matches for %q (%d)", query, len(m.results))
		m.mode = modeResults
		return m, nil
	}

	var cmd tea.Cmd
	m.queryInput, cmd = m.queryInput.Update(msg)
	return m, cmd
}

func (m Model) updateDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.mode = modeMenu
		return m, nil

	case tea.KeyEnter:
		id, err := ParseID(strings.TrimSpace(m.idInput.Value()))
		if err != nil {
			m.setStatus(statusErr, err.Error())
			return m, nil
		}

		for _, c := range m.st.List() {
			if c.ID == id {
				m.pending = c
				m.mode = modeConfirm
				return m, nil
			}
		}
		m.setStatus(statusErr, fmt.Sprintf("no contact with id %d", id))
		m.mode = modeMenu
		return m, nil
	}

	var cmd tea.Cmd
	m.idInput, cmd = m.idInput.Update(msg)
	return m, cmd
}

func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y", "enter":
		ok, err := m.st.Delete(m.pending.ID)
		switch {
		case err != nil:
			m.setStatus(statusWarn, fmt.Sprintf("removed #%d but saving failed: %v", m.pending.ID, err))
		case ok:
			m.setStatus(statusOK, fmt.Sprintf("removed #%d %s", m.pending.ID, m.pending.Name))
		default:
			m.setStatus(statusErr, fmt.Sprintf("contact #%d was already gone", m.pending.ID))
		}
		m.mode = modeMenu
		return m, nil
	case "n", "N", "esc":
		m.setStatus(statusNone, "")
		m.mode = modeMenu
		return m, nil
	}
	return m, nil
}

func (m *Model) setStatus(kind statusKind, text string) {
	m.statusKind = kind
	m.status = text
}

func (m *Model) clearStatus() {
	m.statusKind = statusNone
	m.status = ""
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(BannerStyle.Render(Banner))
	b.WriteString("\n")
	b.WriteString(StatusStyle.Render(" rolodex "))
	b.WriteString(StatusBarInfo.Render(fmt.Sprintf("  %d contacts · %s", len(m.st.List()), m.st.Path())))
	b.WriteString("\n\n")

	switch m.mode {
	case modeMenu:
		b.WriteString(m.menu.View())
		b.WriteString("\n" + HelpStyle.Render("  ↑/↓ move · enter select · q quit"))

	case modeAdd:
		b.WriteString(TitleStyle.Render("  New contact") + "\n\n")
		b.WriteString(LabelStyle.Render("  Name  ") + InputStyle.Render(m.nameInput.View()) + "\n")
		b.WriteString(LabelStyle.Render("  Phone ") + InputStyle.Render(m.phoneInput.View()) + "\n")
		b.WriteString("\n" + HelpStyle.Render("  tab switch field · enter submit · esc cancel"))

	case modeSearch:
		b.WriteString(TitleStyle.Render("  Search contacts") + "\n\n")
		b.WriteString("  " + InputStyle.Render(m.queryInput.View()) + "\n")
		b.WriteString("\n" + HelpStyle.Render("  enter search · esc cancel"))

	case modeDelete:
		b.WriteString(TitleStyle.Render("  Delete contact") + "\n\n")
		b.WriteString("  " + InputStyle.Render(m.idInput.View()) + "\n")
		b.WriteString("\n" + HelpStyle.Render("  enter continue · esc cancel"))

	case modeConfirm:
		b.WriteString(TitleStyle.Render("  Delete contact") + "\n\n")
		b.WriteString("  " + FormatContact(m.pending) + "\n\n")
		b.WriteString(ConfirmStyle.Render("  Really delete? [y/n]"))

	case modeResults:
		b.WriteString(TitleStyle.Render("  "+m.resultsTitle) + "\n\n")
		b.WriteString(FormatContacts(m.results))
		b.WriteString("\n" + HelpStyle.Render("  enter/esc back to menu"))
	}

	if m.status != "" {
		style := OKStyle
		switch m.statusKind {
		case statusWarn:
			style = WarnStyle
		case statusErr:
			style = ErrorStyle
		}
		b.WriteString("\n\n" + style.Render("  "+m.status))
	}

	return b.String()
}
