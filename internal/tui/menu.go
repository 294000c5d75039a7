package tui

import (
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Menu actions, in display order.
const (
	actionAdd    = "Add contact"
	actionList   = "List contacts"
	actionSearch = "Search"
	actionDelete = "Delete contact"
	actionQuit   = "Quit"
)

type item struct {
	title, desc string
}

func (i item) Title() string       { return i.title }
func (i item) Description() string { return i.desc }
func (i item) FilterValue() string { return i.title }

type MenuModel struct {
	list list.Model
}

func NewMenuModel() MenuModel {
	items := []list.Item{
		item{title: actionAdd, desc: "Create a new entry (name + phone)"},
		item{title: actionList, desc: "Show the whole directory"},
		item{title: actionSearch, desc: "Find by name or phone fragment"},
		item{title: actionDelete, desc: "Remove an entry by id"},
		item{title: actionQuit, desc: "Save nothing extra, just exit"},
	}

	d := list.NewDefaultDelegate()
	d.Styles.SelectedTitle = lipgloss.NewStyle().Foreground(Accent).Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(Accent).PaddingLeft(1)
	d.Styles.SelectedDesc = d.Styles.SelectedTitle.Foreground(DarkAccent)

	l := list.New(items, d, 44, 16)
	l.Title = "What next?"
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.Styles.Title = lipgloss.NewStyle().Foreground(Accent).Bold(true).MarginLeft(2)

	return MenuModel{list: l}
}

func (m MenuModel) Update(msg tea.Msg) (MenuModel, tea.Cmd) {
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// Selected returns the title of the highlighted action.
func (m MenuModel) Selected() string {
	it := m.list.SelectedItem()
	if it == nil {
		return ""
	}
	return it.(item).Title()
}

func (m MenuModel) View() string {
	return m.list.View()
}
