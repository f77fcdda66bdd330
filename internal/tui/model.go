package tui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"todo-api/internal/client"
)

// Fallback messages shown when an operation fails without a usable server
// message. Only Add surfaces the server's own error body.
const (
	errLoadTodos   = "failed to load todos"
	errAddTodo     = "failed to add todo"
	errDeleteTodo  = "failed to delete todo"
	errUpdateTodo  = "failed to update todo"
	errUpdateTitle = "failed to update title"
)

// Filter selects the displayed subset of todos.
type Filter int

const (
	FilterAll Filter = iota
	FilterActive
	FilterDone
)

func (f Filter) String() string {
	switch f {
	case FilterActive:
		return "active"
	case FilterDone:
		return "done"
	default:
		return "all"
	}
}

func (f Filter) next() Filter {
	switch f {
	case FilterAll:
		return FilterActive
	case FilterActive:
		return FilterDone
	default:
		return FilterAll
	}
}

// updateOp tags which operation a PATCH response belongs to, since toggle
// and title edit surface different fallback messages.
type updateOp int

const (
	opToggle updateOp = iota
	opEditTitle
)

type todosLoadedMsg struct {
	todos []client.Todo
	err   error
}

type todoCreatedMsg struct {
	todo *client.Todo
	err  error
}

type todoUpdatedMsg struct {
	todo *client.Todo
	op   updateOp
	err  error
}

type todoDeletedMsg struct {
	id  string
	err error
}

// todoAPI is the slice of the HTTP client the state machine needs.
type todoAPI interface {
	List() ([]client.Todo, error)
	Create(title string) (*client.Todo, error)
	Update(id string, patch client.UpdatePatch) (*client.Todo, error)
	Delete(id string) error
}

type keyMap struct {
	Add    key.Binding
	Toggle key.Binding
	Delete key.Binding
	Edit   key.Binding
	Filter key.Binding
	Up     key.Binding
	Down   key.Binding
	Quit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Add:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add")),
		Toggle: key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "toggle")),
		Delete: key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "delete")),
		Edit:   key.NewBinding(key.WithKeys("ctrl+e"), key.WithHelp("ctrl+e", "edit title")),
		Filter: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "filter")),
		Up:     key.NewBinding(key.WithKeys("up", "ctrl+p"), key.WithHelp("↑", "cursor up")),
		Down:   key.NewBinding(key.WithKeys("down", "ctrl+n"), key.WithHelp("↓", "cursor down")),
		Quit:   key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("ctrl+c", "quit")),
	}
}

// editBindings keeps the form value on the heap so huh's pointer stays valid
// across model copies.
type editBindings struct {
	title string
}

// Model holds the session state: the server-ordered todo list, the draft
// input, the active filter and the transient loading/error flags. The list
// is a cache of the server's state, updated from responses only.
type Model struct {
	api todoAPI

	todos   []client.Todo
	input   textinput.Model
	filter  Filter
	loading bool
	errMsg  string

	cursor int
	spin   spinner.Model
	keys   keyMap

	editForm   *huh.Form
	editFB     *editBindings
	editTarget client.Todo

	width  int
	height int
}

func New(api todoAPI) Model {
	input := textinput.New()
	input.Placeholder = "What needs to be done?"
	input.Focus()

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	return Model{
		api:     api,
		todos:   []client.Todo{},
		input:   input,
		filter:  FilterAll,
		loading: true,
		spin:    spin,
		keys:    defaultKeyMap(),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, textinput.Blink, m.loadTodos())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case todosLoadedMsg:
		// loading is cleared on success and failure alike
		m.loading = false
		if msg.err != nil {
			m.errMsg = errLoadTodos
			return m, nil
		}
		m.todos = msg.todos
		m.clampCursor()
		return m, nil

	case todoCreatedMsg:
		if msg.err != nil {
			var serverErr *client.ServerError
			if errors.As(msg.err, &serverErr) {
				m.errMsg = serverErr.Message
			} else {
				m.errMsg = errAddTodo
			}
			return m, nil
		}
		// newest first, consistent with server ordering
		m.todos = append([]client.Todo{*msg.todo}, m.todos...)
		m.input.Reset()
		return m, nil

	case todoUpdatedMsg:
		if msg.err != nil {
			if msg.op == opEditTitle {
				m.errMsg = errUpdateTitle
			} else {
				m.errMsg = errUpdateTodo
			}
			return m, nil
		}
		for i := range m.todos {
			if m.todos[i].ID == msg.todo.ID {
				m.todos[i] = *msg.todo
				break
			}
		}
		return m, nil

	case todoDeletedMsg:
		if msg.err != nil {
			m.errMsg = errDeleteTodo
			return m, nil
		}
		kept := m.todos[:0]
		for _, t := range m.todos {
			if t.ID != msg.id {
				kept = append(kept, t)
			}
		}
		m.todos = kept
		m.clampCursor()
		return m, nil
	}

	if m.editForm != nil {
		return m.updateEditForm(msg)
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		return m.handleKey(keyMsg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Add):
		trimmed := strings.TrimSpace(m.input.Value())
		if trimmed == "" {
			return m, nil
		}
		m.errMsg = ""
		return m, m.addTodo(trimmed)

	case key.Matches(msg, m.keys.Toggle):
		todo, ok := m.selected()
		if !ok {
			return m, nil
		}
		m.errMsg = ""
		return m, m.toggleTodo(todo)

	case key.Matches(msg, m.keys.Delete):
		todo, ok := m.selected()
		if !ok {
			return m, nil
		}
		m.errMsg = ""
		return m, m.deleteTodo(todo.ID)

	case key.Matches(msg, m.keys.Edit):
		return m.startEdit()

	case key.Matches(msg, m.keys.Filter):
		m.filter = m.filter.next()
		m.clampCursor()
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.visible())-1 {
			m.cursor++
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) startEdit() (tea.Model, tea.Cmd) {
	todo, ok := m.selected()
	if !ok {
		return m, nil
	}

	m.editTarget = todo
	m.editFB = &editBindings{title: todo.Title}
	m.editForm = huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Edit title").
			Value(&m.editFB.title),
	))
	return m, m.editForm.Init()
}

func (m Model) updateEditForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	mdl, cmd := m.editForm.Update(msg)
	if form, ok := mdl.(*huh.Form); ok {
		m.editForm = form
	}

	switch m.editForm.State {
	case huh.StateCompleted:
		target := m.editTarget
		entered := m.editFB.title
		m.editForm = nil
		m.editFB = nil

		title, ok := normalizeEditedTitle(target.Title, entered)
		if !ok {
			return m, nil
		}
		m.errMsg = ""
		return m, m.updateTitle(target.ID, title)

	case huh.StateAborted:
		m.editForm = nil
		m.editFB = nil
		return m, nil
	}

	return m, cmd
}

// normalizeEditedTitle trims the entered title and reports whether an update
// should be issued: an empty or unchanged result is a no-op, like a
// cancelled prompt.
func normalizeEditedTitle(current, entered string) (string, bool) {
	trimmed := strings.TrimSpace(entered)
	if trimmed == "" || trimmed == current {
		return "", false
	}
	return trimmed, true
}

func (m Model) loadTodos() tea.Cmd {
	api := m.api
	return func() tea.Msg {
		todos, err := api.List()
		return todosLoadedMsg{todos: todos, err: err}
	}
}

func (m Model) addTodo(title string) tea.Cmd {
	api := m.api
	return func() tea.Msg {
		todo, err := api.Create(title)
		return todoCreatedMsg{todo: todo, err: err}
	}
}

func (m Model) toggleTodo(todo client.Todo) tea.Cmd {
	api := m.api
	inverse := !todo.IsDone
	return func() tea.Msg {
		updated, err := api.Update(todo.ID, client.UpdatePatch{IsDone: &inverse})
		return todoUpdatedMsg{todo: updated, op: opToggle, err: err}
	}
}

func (m Model) updateTitle(id, title string) tea.Cmd {
	api := m.api
	return func() tea.Msg {
		updated, err := api.Update(id, client.UpdatePatch{Title: &title})
		return todoUpdatedMsg{todo: updated, op: opEditTitle, err: err}
	}
}

func (m Model) deleteTodo(id string) tea.Cmd {
	api := m.api
	return func() tea.Msg {
		err := api.Delete(id)
		return todoDeletedMsg{id: id, err: err}
	}
}

// visible derives the displayed subset from the active filter.
func (m Model) visible() []client.Todo {
	if m.filter == FilterAll {
		return m.todos
	}
	filtered := make([]client.Todo, 0, len(m.todos))
	for _, t := range m.todos {
		switch m.filter {
		case FilterActive:
			if !t.IsDone {
				filtered = append(filtered, t)
			}
		case FilterDone:
			if t.IsDone {
				filtered = append(filtered, t)
			}
		}
	}
	return filtered
}

// remaining counts open todos over the unfiltered list, independent of the
// active filter.
func (m Model) remaining() int {
	count := 0
	for _, t := range m.todos {
		if !t.IsDone {
			count++
		}
	}
	return count
}

func (m Model) selected() (client.Todo, bool) {
	visible := m.visible()
	if m.cursor < 0 || m.cursor >= len(visible) {
		return client.Todo{}, false
	}
	return visible[m.cursor], true
}

func (m *Model) clampCursor() {
	if max := len(m.visible()) - 1; m.cursor > max {
		m.cursor = max
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}
