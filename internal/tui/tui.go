// Package tui is the interactive presentation layer. It owns no item
// state: every key press maps to a service operation, and the list is
// re-read through GetAll whenever the service signals a change.
package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"todolist/internal/model"
	"todolist/internal/service"
)

// listItem adapts a model.Item to bubbles/list.Item.
type listItem struct {
	item model.Item
}

func (i listItem) Title() string       { return i.item.Title }
func (i listItem) Description() string { return "" }
func (i listItem) FilterValue() string { return i.item.Title }

// changeMsg arrives whenever the service emitted a data change.
type changeMsg struct{}

// clearErrMsg takes the error banner down again.
type clearErrMsg struct{}

const bannerDuration = 4 * time.Second

// Custom delegate to control how items render (single line)
type itemDelegate struct{}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, _ := item.(listItem)

	id := mutedStyle.Render(fmt.Sprintf("%3d.", it.item.ID))
	line := fmt.Sprintf("%s %s %s", id, accentStyle.Render(bullet), it.item.Title)
	if it.item.IsDraft() {
		line = fmt.Sprintf("%s %s", id, draftStyle.Render("(draft — press e to fill in)"))
	}

	prefix := "  "
	if index == m.Index() {
		prefix = selectedStyle.Render("> ")
	}
	fmt.Fprintln(w, prefix+line)
}

// Model is the Bubble Tea model for the interactive list.
type Model struct {
	svc  *service.Service
	list list.Model

	// Inline edit (also used right after adding a draft)
	editing bool
	editID  int
	ti      textinput.Model
	editErr string

	// Error banner for failed operations
	errMsg string

	// changes bridges the service's synchronous notifier into the
	// Bubble Tea message loop.
	changes chan struct{}

	width, height int
}

// New builds the model and subscribes it to the service's change
// notifications.
func New(svc *service.Service) Model {
	l := list.New(toListItems(svc.GetAll()), itemDelegate{}, 0, 0)
	l.Title = titleStyle.Render("Todos")
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = titleStyle
	l.Styles.HelpStyle = helpStyle
	l.Styles.PaginationStyle = helpStyle
	l.FilterInput.Prompt = "/ "
	l.SetStatusBarItemName("item", "items")

	addBind := key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add draft"))
	editBind := key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit"))
	delBind := key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete"))
	sortBind := key.NewBinding(key.WithKeys("s", "S"), key.WithHelp("s/S", "sort (drops drafts)"))
	binds := func() []key.Binding { return []key.Binding{addBind, editBind, delBind, sortBind} }
	l.AdditionalShortHelpKeys = binds
	l.AdditionalFullHelpKeys = binds

	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Item title..."
	ti.CharLimit = 200

	changes := make(chan struct{}, 1)
	svc.DataChanged.Subscribe(func(any) {
		select {
		case changes <- struct{}{}:
		default:
		}
	})

	return Model{
		svc:     svc,
		list:    l,
		ti:      ti,
		changes: changes,
	}
}

// Run starts the interactive list over the given service.
func Run(svc *service.Service) error {
	p := tea.NewProgram(New(svc), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func toListItems(items []model.Item) []list.Item {
	li := make([]list.Item, 0, len(items))
	for _, it := range items {
		li = append(li, listItem{item: it})
	}
	return li
}

func (m Model) Init() tea.Cmd { return m.waitForChange() }

func (m Model) waitForChange() tea.Cmd {
	return func() tea.Msg {
		<-m.changes
		return changeMsg{}
	}
}

func clearErrAfter() tea.Cmd {
	return tea.Tick(bannerDuration, func(time.Time) tea.Msg { return clearErrMsg{} })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resizeList()
		return m, nil

	case changeMsg:
		// Re-read the authoritative collection and keep listening.
		cmd := m.list.SetItems(toListItems(m.svc.GetAll()))
		if idx := m.list.Index(); idx >= len(m.list.Items()) && len(m.list.Items()) > 0 {
			m.list.Select(len(m.list.Items()) - 1)
		}
		return m, tea.Batch(cmd, m.waitForChange())

	case clearErrMsg:
		m.errMsg = ""
		return m, nil
	}

	if m.editing {
		return m.updateEditing(msg)
	}
	return m.updateBrowsing(msg)
}

func (m Model) updateEditing(msg tea.Msg) (tea.Model, tea.Cmd) {
	if x, isKey := msg.(tea.KeyMsg); isKey {
		switch x.String() {
		case "enter":
			if err := m.svc.Edit(m.editID, m.ti.Value()); err != nil {
				m.editErr = err.Error()
				return m, nil
			}
			m.stopEditing()
			return m, nil
		case "esc":
			// Cancelling after `a` leaves the draft row in place.
			m.stopEditing()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

func (m *Model) stopEditing() {
	m.editing = false
	m.editErr = ""
	m.ti.SetValue("")
	m.ti.Blur()
	m.resizeList()
}

func (m *Model) startEditing(id int, value string) {
	m.editing = true
	m.editID = id
	m.editErr = ""
	m.ti.SetValue(value)
	m.ti.CursorEnd()
	m.ti.Focus()
	m.resizeList()
}

func (m Model) updateBrowsing(msg tea.Msg) (tea.Model, tea.Cmd) {
	if x, isKey := msg.(tea.KeyMsg); isKey && !m.list.SettingFilter() {
		switch x.String() {
		case "q", "esc":
			return m, tea.Quit

		case "a":
			item, err := m.svc.Add("")
			if err != nil {
				m.errMsg = err.Error()
				return m, clearErrAfter()
			}
			m.startEditing(item.ID, "")
			return m, nil

		case "e":
			if it, selected := m.selected(); selected {
				m.startEditing(it.ID, it.Title)
			}
			return m, nil

		case "d":
			if it, selected := m.selected(); selected {
				if err := m.svc.Delete(it.ID); err != nil {
					m.errMsg = err.Error()
					return m, clearErrAfter()
				}
			}
			return m, nil

		case "s", "S":
			if err := m.svc.Sort(x.String() == "s"); err != nil {
				m.errMsg = err.Error()
				return m, clearErrAfter()
			}
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) selected() (model.Item, bool) {
	it, selected := m.list.SelectedItem().(listItem)
	if !selected {
		return model.Item{}, false
	}
	return it.item, true
}

func (m *Model) resizeList() {
	w, h := m.width, m.height
	if w == 0 {
		w, h = 80, 24
	}
	listHeight := h - 4
	if m.editing {
		listHeight = h - 7
	}
	if m.errMsg != "" {
		listHeight--
	}
	m.list.SetSize(w-4, listHeight)
}

func (m Model) View() string {
	content := m.list.View()

	if m.editing {
		title := "Edit item"
		if m.editErr != "" {
			title += " — " + errorStyle.Render(m.editErr)
		}
		content += "\n" + panelStyle().Render(title+"\n"+m.ti.View())
	}
	if m.errMsg != "" {
		content += "\n" + errorStyle.Render("✖ "+m.errMsg)
	}
	return panelStyle().Render(content)
}
