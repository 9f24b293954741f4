package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/todolist/core/internal/client"
	"github.com/todolist/core/internal/domain/entities"
)

// mode is the input state of the UI
type mode int

const (
	modeList mode = iota
	modeAdd
	modeEdit
)

// Messages produced by API commands
type (
	todosLoadedMsg struct{ todos []*entities.Todo }
	loadFailedMsg  struct{ err error }

	// A settled mutation: on success the list cache was invalidated and the
	// view must re-fetch; on failure the triggering input is kept intact.
	mutationDoneMsg   struct{}
	mutationFailedMsg struct{ err error }
)

// Model is the bubbletea model for the todo client
type Model struct {
	api *client.Client

	todos  []*entities.Todo
	cursor int

	mode     mode
	editID   int64
	input    textinput.Model
	spin     spinner.Model
	inFlight bool // a mutation is pending; submit controls are disabled
	loading  bool
	errMsg   string
}

// New creates the initial model
func New(api *client.Client) Model {
	ti := textinput.New()
	ti.Placeholder = "What needs doing?"
	ti.CharLimit = 256

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = spinnerStyle

	return Model{
		api:     api,
		input:   ti,
		spin:    sp,
		loading: true,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadTodos(), m.spin.Tick)
}

func (m Model) loadTodos() tea.Cmd {
	return func() tea.Msg {
		todos, err := m.api.ListTodos(context.Background())
		if err != nil {
			return loadFailedMsg{err: err}
		}
		return todosLoadedMsg{todos: todos}
	}
}

func (m Model) createTodo(text string) tea.Cmd {
	return func() tea.Msg {
		if _, err := m.api.CreateTodo(context.Background(), text); err != nil {
			return mutationFailedMsg{err: err}
		}
		return mutationDoneMsg{}
	}
}

func (m Model) editTodo(id int64, text string) tea.Cmd {
	return func() tea.Msg {
		if _, err := m.api.SetText(context.Background(), id, text); err != nil {
			return mutationFailedMsg{err: err}
		}
		return mutationDoneMsg{}
	}
}

func (m Model) toggleTodo(todo *entities.Todo) tea.Cmd {
	return func() tea.Msg {
		if _, err := m.api.SetCompleted(context.Background(), todo.ID, !todo.IsCompleted()); err != nil {
			return mutationFailedMsg{err: err}
		}
		return mutationDoneMsg{}
	}
}

func (m Model) deleteTodo(id int64) tea.Cmd {
	return func() tea.Msg {
		if err := m.api.DeleteTodo(context.Background(), id); err != nil {
			return mutationFailedMsg{err: err}
		}
		return mutationDoneMsg{}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case todosLoadedMsg:
		m.todos = msg.todos
		m.loading = false
		if m.cursor >= len(m.todos) {
			m.cursor = max(0, len(m.todos)-1)
		}
		return m, nil

	case loadFailedMsg:
		m.loading = false
		m.errMsg = msg.err.Error()
		return m, nil

	case mutationDoneMsg:
		m.inFlight = false
		m.errMsg = ""
		// A successful create clears the input; edit just leaves the form.
		if m.mode == modeAdd || m.mode == modeEdit {
			m.input.Reset()
			m.input.Blur()
			m.mode = modeList
		}
		m.loading = true
		return m, m.loadTodos()

	case mutationFailedMsg:
		// The input that produced the failure stays as typed for a retry.
		m.inFlight = false
		m.errMsg = msg.err.Error()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.mode == modeAdd || m.mode == modeEdit {
		switch msg.Type {
		case tea.KeyEsc:
			if !m.inFlight {
				m.input.Reset()
				m.input.Blur()
				m.mode = modeList
				m.errMsg = ""
			}
			return m, nil
		case tea.KeyEnter:
			if m.inFlight {
				// Submit is disabled until the pending request settles.
				return m, nil
			}
			text := strings.TrimSpace(m.input.Value())
			if text == "" {
				m.errMsg = entities.ErrTextRequired.Message
				return m, nil
			}
			m.inFlight = true
			if m.mode == modeEdit {
				return m, m.editTodo(m.editID, text)
			}
			return m, m.createTodo(text)
		}

		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.todos)-1 {
			m.cursor++
		}
	case "a":
		m.mode = modeAdd
		m.errMsg = ""
		m.input.Reset()
		m.input.Focus()
		return m, textinput.Blink
	case "e":
		if todo := m.selected(); todo != nil && !m.inFlight {
			m.mode = modeEdit
			m.editID = todo.ID
			m.errMsg = ""
			m.input.SetValue(todo.Text)
			m.input.CursorEnd()
			m.input.Focus()
			return m, textinput.Blink
		}
	case " ", "enter":
		if todo := m.selected(); todo != nil && !m.inFlight {
			m.inFlight = true
			return m, m.toggleTodo(todo)
		}
	case "d":
		if todo := m.selected(); todo != nil && !m.inFlight {
			m.inFlight = true
			return m, m.deleteTodo(todo.ID)
		}
	case "r":
		m.loading = true
		return m, m.loadTodos()
	}

	return m, nil
}

func (m Model) selected() *entities.Todo {
	if m.cursor < 0 || m.cursor >= len(m.todos) {
		return nil
	}
	return m.todos[m.cursor]
}

func (m Model) View() string {
	var b strings.Builder

	done := 0
	for _, t := range m.todos {
		if t.IsCompleted() {
			done++
		}
	}

	b.WriteString(titleStyle.Render("Todos"))
	b.WriteString(mutedStyle.Render(fmt.Sprintf("  %s %d  %s %d", boxChecked, done, boxUnchecked, len(m.todos)-done)))
	b.WriteString("\n\n")

	switch {
	case m.loading:
		b.WriteString(m.spin.View() + " loading…\n")
	case len(m.todos) == 0:
		b.WriteString(mutedStyle.Render("Nothing to do. Press a to add a todo.") + "\n")
	default:
		for i, todo := range m.todos {
			box := boxUnchecked
			text := todo.Text
			if todo.IsCompleted() {
				box = successStyle.Render(boxChecked)
				text = doneStyle.Render(text)
			}

			prefix := "  "
			if i == m.cursor && m.mode == modeList {
				prefix = selectedStyle.Render("> ")
			}
			b.WriteString(fmt.Sprintf("%s%s %s\n", prefix, box, text))
		}
	}

	if m.mode == modeAdd || m.mode == modeEdit {
		label := "Add"
		if m.mode == modeEdit {
			label = "Edit"
		}
		b.WriteString("\n" + label + ": " + m.input.View() + "\n")
	}

	if m.inFlight {
		b.WriteString("\n" + m.spin.View() + " saving…\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render(m.errMsg) + "\n")
	}

	b.WriteString("\n" + helpStyle.Render("a add • e edit • space toggle • d delete • r refresh • q quit") + "\n")

	return b.String()
}
