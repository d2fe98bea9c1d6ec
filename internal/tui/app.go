// Package tui is the full-screen front end for the client directory.
package tui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeanpaul/rolodex/internal/client"
	"github.com/jeanpaul/rolodex/internal/logging"
	"github.com/jeanpaul/rolodex/internal/store"
	"github.com/jeanpaul/rolodex/internal/theme"
)

type viewState int

const (
	stateList viewState = iota
	stateDetail
	statePickField
	stateEditField
	stateRegister
	stateConfirmRemove
)

type Model struct {
	width, height int
	state         viewState

	dir           store.Directory
	th            theme.Theme
	log           *slog.Logger
	confirmRemove bool

	clients  list.Model
	fields   list.Model
	input    textinput.Model
	form     *huh.Form
	draft    *client.Fields
	selected *client.Client
	editing  client.Field

	// back is where esc returns to from the edit and remove views.
	back      viewState
	status    string
	statusErr bool
}

type Option func(*Model)

func WithTheme(t theme.Theme) Option {
	return func(m *Model) { m.th = t }
}

func WithLogger(l *slog.Logger) Option {
	return func(m *Model) {
		if l != nil {
			m.log = l
		}
	}
}

// WithConfirmRemove controls whether removal asks for y/n first.
func WithConfirmRemove(on bool) Option {
	return func(m *Model) { m.confirmRemove = on }
}

func NewModel(dir store.Directory, opts ...Option) Model {
	m := Model{
		dir:           dir,
		th:            theme.Named("green"),
		log:           logging.Nop(),
		confirmRemove: true,
	}
	for _, opt := range opts {
		opt(&m)
	}

	ti := textinput.New()
	ti.Prompt = "> "
	ti.PromptStyle = lipgloss.NewStyle().Foreground(m.th.Accent).Bold(true)

	m.input = ti
	m.clients = newClientList(m.th)
	m.fields = newFieldPicker(m.th)
	m.refresh()
	return m
}

// Run drives the model until the user quits or ctx is cancelled.
func Run(ctx context.Context, m Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = size.Width, size.Height
		listH := max(size.Height-4, 5)
		m.clients.SetSize(size.Width, listH)
		m.fields.SetSize(size.Width, listH)
		m.input.Width = max(size.Width-6, 10)
		if m.form != nil {
			m.form = m.form.WithWidth(size.Width)
		}
		return m, nil
	}

	if key, ok := msg.(tea.KeyMsg); ok && key.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	switch m.state {
	case stateRegister:
		return m.updateRegister(msg)
	case stateDetail:
		return m.updateDetail(msg)
	case statePickField:
		return m.updatePickField(msg)
	case stateEditField:
		return m.updateEditField(msg)
	case stateConfirmRemove:
		return m.updateConfirmRemove(msg)
	default:
		return m.updateList(msg)
	}
}

func (m Model) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok || m.clients.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.clients, cmd = m.clients.Update(msg)
		return m, cmd
	}

	switch key.String() {
	case "q":
		return m, tea.Quit
	case "a":
		return m.startRegister()
	case "enter":
		if m.pick() {
			m.state = stateDetail
		}
		return m, nil
	case "e":
		if m.pick() {
			return m.startEdit(stateList)
		}
		return m, nil
	case "d":
		if m.pick() {
			return m.startRemove(stateList)
		}
		return m, nil
	case "esc":
		if m.clients.FilterState() == list.Unfiltered {
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.clients, cmd = m.clients.Update(msg)
	return m, cmd
}

// pick makes the highlighted record the subject of the next action.
func (m *Model) pick() bool {
	m.selected = selectedClient(m.clients)
	if m.selected == nil {
		m.setStatus("There are no clients in the system.", true)
		return false
	}
	return true
}

func (m Model) updateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "q":
		return m, tea.Quit
	case "esc", "backspace":
		m.state = stateList
	case "e":
		return m.startEdit(stateDetail)
	case "d":
		return m.startRemove(stateDetail)
	}
	return m, nil
}

func (m Model) startEdit(from viewState) (tea.Model, tea.Cmd) {
	m.back = from
	m.fields.SetItems(fieldItems(m.selected))
	m.fields.Select(0)
	m.state = statePickField
	return m, nil
}

func (m Model) updatePickField(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			m.state = m.back
			return m, nil
		case "enter":
			it, ok := m.fields.SelectedItem().(fieldItem)
			if !ok {
				return m, nil
			}
			m.editing = it.field
			m.input.Placeholder = it.field.String()
			m.input.SetValue(m.selected.Get(it.field))
			m.input.CursorEnd()
			m.state = stateEditField
			return m, m.input.Focus()
		}
	}

	var cmd tea.Cmd
	m.fields, cmd = m.fields.Update(msg)
	return m, cmd
}

func (m Model) updateEditField(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEsc:
			m.input.Blur()
			m.state = statePickField
			return m, nil
		case tea.KeyEnter:
			// Edits are trimmed but creation rules do not apply here.
			m.selected.Set(m.editing, strings.TrimSpace(m.input.Value()))
			m.log.Info("client field updated", "id", m.selected.ID(), "field", m.editing.Key())
			m.setStatus(fmt.Sprintf("Updated %s for client %d.", m.editing, m.selected.ID()), false)
			m.input.Blur()
			m.refresh()
			selectID(&m.clients, m.selected.ID())
			m.fields.SetItems(fieldItems(m.selected))
			m.state = statePickField
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) startRegister() (tea.Model, tea.Cmd) {
	m.draft = &client.Fields{}
	m.form = newRegisterForm(m.th, m.draft, m.width)
	m.state = stateRegister
	return m, m.form.Init()
}

func (m Model) updateRegister(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.Type == tea.KeyEsc {
		return m.abortRegister(), nil
	}

	next, cmd := m.form.Update(msg)
	if f, ok := next.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		return m.finishRegister(), nil
	case huh.StateAborted:
		return m.abortRegister(), nil
	}
	return m, cmd
}

func (m Model) abortRegister() Model {
	m.form, m.draft = nil, nil
	m.state = stateList
	m.setStatus("Registration canceled.", false)
	return m
}

// finishRegister hands the collected answers to the directory.
func (m Model) finishRegister() Model {
	created, err := m.dir.Register(*m.draft)
	m.form, m.draft = nil, nil
	m.state = stateList
	if err != nil {
		m.setStatus(err.Error(), true)
		return m
	}
	m.refresh()
	selectID(&m.clients, created.ID())
	m.setStatus(fmt.Sprintf("%s was added to the system successfully! ID: %d", created.FullName(), created.ID()), false)
	return m
}

func (m Model) startRemove(from viewState) (tea.Model, tea.Cmd) {
	m.back = from
	if !m.confirmRemove {
		return m.removeSelected(), nil
	}
	m.state = stateConfirmRemove
	return m, nil
}

func (m Model) updateConfirmRemove(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "y", "Y":
		return m.removeSelected(), nil
	case "n", "N", "esc":
		m.state = m.back
		m.setStatus("Removal canceled.", false)
	}
	return m, nil
}

func (m Model) removeSelected() Model {
	id := m.selected.ID()
	m.state = stateList
	if !m.dir.RemoveByID(id) {
		m.log.Info("client lookup missed", "id", id)
		m.setStatus(fmt.Sprintf("No client found with ID: %d", id), true)
		m.refresh()
		return m
	}
	m.selected = nil
	m.refresh()
	m.setStatus(fmt.Sprintf("Client removed from system. ID: %d", id), false)
	return m
}

// refresh reloads the list from the directory, keeping the cursor in range.
func (m *Model) refresh() {
	idx := m.clients.Index()
	m.clients.SetItems(clientItems(m.dir.List()))
	if n := len(m.clients.Items()); idx >= n && n > 0 {
		idx = n - 1
	}
	m.clients.Select(idx)
}

func (m *Model) setStatus(s string, isErr bool) {
	m.status, m.statusErr = s, isErr
}

func (m Model) View() string {
	var body string
	switch m.state {
	case stateRegister:
		body = m.form.View()
	case stateDetail:
		body = renderCard(m.selected, glamourStyle(m.th), m.width)
	case statePickField:
		body = m.fields.View()
	case stateEditField:
		body = lipgloss.JoinVertical(lipgloss.Left,
			m.th.Title.Render(fmt.Sprintf("Editing client: %s", m.selected.FullName())),
			m.th.Label.Render("New "+m.editing.String()+":"),
			m.th.Box.Render(m.input.View()),
		)
	case stateConfirmRemove:
		body = m.th.Box.Render(lipgloss.JoinVertical(lipgloss.Left,
			m.selected.Summary(),
			m.th.Warn.Render("Remove this client? [y/n]"),
		))
	default:
		if len(m.clients.Items()) == 0 {
			body = m.th.Help.Render("  There are no clients in the system. Press a to add one.")
		} else {
			body = m.clients.View()
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		body,
		m.statusLine(),
		lipgloss.NewStyle().PaddingLeft(2).Render(m.th.Help.Render(m.helpText())),
	)
}

func (m Model) statusLine() string {
	label := m.th.StatusBar.Render("ROLODEX")
	count := m.th.Help.Render(fmt.Sprintf(" %d clients ", m.dir.Len()))
	if m.status == "" {
		return label + count
	}
	style := m.th.Success
	if m.statusErr {
		style = m.th.Error
	}
	msg := m.status
	if m.width > 0 {
		msg = truncate(msg, m.width-lipgloss.Width(label+count)-1)
	}
	return label + count + style.Render(msg)
}

func (m Model) helpText() string {
	switch m.state {
	case stateRegister:
		return "esc: cancel"
	case stateDetail:
		return "e: edit  •  d: remove  •  esc: back  •  q: quit"
	case statePickField:
		return "enter: edit field  •  esc: back"
	case stateEditField:
		return "enter: save  •  esc: cancel"
	case stateConfirmRemove:
		return "y: remove  •  n: keep"
	default:
		return strings.Join([]string{
			"enter: details", "a: add", "e: edit", "d: remove", "/: filter", "q: quit",
		}, "  •  ")
	}
}
