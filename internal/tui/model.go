// Package tui implements the interactive terminal front end for a task list.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"go.uber.org/zap"

	"todoapp/internal/output"
	"todoapp/internal/service"
	"todoapp/internal/tasklist"
)

const (
	// Title is shown in the title bar.
	Title = "TODO App"

	// InputPlaceholder is shown in the empty task input.
	InputPlaceholder = "add a new Task here"

	eventBuffer = 16
	defaultWrap = 80
)

type focus int

const (
	focusInput focus = iota
	focusList
)

// eventMsg carries a store event into the update loop.
type eventMsg tasklist.Event

// Model is the bubbletea model for the task screen.
type Model struct {
	store  *tasklist.Store
	events chan tasklist.Event
	cancel func()
	logger *zap.Logger

	input    textinput.Model
	focus    focus
	cursor   int
	status   string
	showHelp bool
	help     string
	styles   Styles
	width    int
}

// New creates a model bound to store. The model subscribes to the store's
// events; call Close once the program has exited. A nil logger disables logging.
func New(store *tasklist.Store, logger *zap.Logger) Model {
	if logger == nil {
		logger = zap.NewNop()
	}
	styles := DefaultStyles()

	ti := textinput.New()
	ti.Placeholder = InputPlaceholder
	ti.Prompt = "│ "
	ti.CharLimit = 256
	ti.Width = defaultWrap - 12
	ti.Focus()

	events := make(chan tasklist.Event, eventBuffer)
	cancel := store.Subscribe(func(e tasklist.Event) {
		select {
		case events <- e:
		default:
			logger.Debug("dropped task event for full view queue", zap.String("kind", string(e.Kind)))
		}
	})

	return Model{
		store:  store,
		events: events,
		cancel: cancel,
		logger: logger,
		input:  ti,
		styles: styles,
		help:   renderHelp(defaultWrap),
		width:  defaultWrap,
	}
}

// Close removes the store subscription and releases the event queue.
func (m Model) Close() {
	m.cancel()
	close(m.events)
}

// waitForEvent delivers the next store event as a message.
func waitForEvent(events <-chan tasklist.Event) tea.Cmd {
	return func() tea.Msg {
		e, ok := <-events
		if !ok {
			return nil
		}
		return eventMsg(e)
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, waitForEvent(m.events))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case eventMsg:
		m.status = describeEvent(tasklist.Event(msg))
		m.clampCursor()
		return m, waitForEvent(m.events)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		if msg.Width > 12 {
			m.input.Width = msg.Width - 12
		}
		m.help = renderHelp(msg.Width)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.showHelp {
				m.showHelp = false
				return m, nil
			}
			return m, tea.Quit
		case "tab", "shift+tab":
			return m.switchFocus(), nil
		}
		if m.focus == focusInput {
			return m.updateInput(msg)
		}
		return m.updateList(msg), nil
	}

	if m.focus == focusInput {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) switchFocus() Model {
	if m.focus == focusInput {
		m.focus = focusList
		m.input.Blur()
	} else {
		m.focus = focusInput
		m.input.Focus()
	}
	m.clampCursor()
	return m
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyEnter {
		if !m.canAdd() {
			return m, nil
		}
		if _, ok := m.store.Add(m.input.Value()); ok {
			m.input.Reset()
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateList(msg tea.KeyMsg) Model {
	rows := m.rows()
	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(rows)-1 {
			m.cursor++
		}
	case " ", "enter", "x":
		if len(rows) == 0 {
			break
		}
		id := rows[m.cursor].ID
		if m.store.Toggle(id) {
			m.followTask(id)
		}
	case "d", "delete", "backspace":
		if len(rows) == 0 {
			break
		}
		m.store.Delete(rows[m.cursor].ID)
		m.clampCursor()
	case "a", "i":
		return m.switchFocus()
	case "?":
		m.showHelp = !m.showHelp
	}
	return m
}

// canAdd reports whether the add affordance is enabled.
func (m Model) canAdd() bool {
	return strings.TrimSpace(m.input.Value()) != ""
}

// rows returns the selectable tasks: active first, then completed.
func (m Model) rows() []service.Task {
	return append(m.store.ActiveTasks(), m.store.CompletedTasks()...)
}

// followTask moves the cursor to the row now holding id.
func (m *Model) followTask(id int) {
	for i, t := range m.rows() {
		if t.ID == id {
			m.cursor = i
			return
		}
	}
	m.clampCursor()
}

func (m *Model) clampCursor() {
	n := len(m.rows())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render(Title))
	b.WriteString("\n")

	button := m.styles.ButtonDisabled.Render("[ Add ]")
	if m.canAdd() {
		button = m.styles.Button.Render("[ Add ]")
	}
	b.WriteString(m.input.View())
	b.WriteString("  ")
	b.WriteString(button)
	b.WriteString("\n")

	if m.showHelp {
		b.WriteString(m.help)
		b.WriteString("\n")
		b.WriteString(m.styles.Footer.Render("esc or ? to close help"))
		return b.String()
	}

	active, completed := m.store.ActiveTasks(), m.store.CompletedTasks()
	m.renderSection(&b, output.ActiveHeader, output.NoActiveTasks, active, 0)
	m.renderSection(&b, output.CompletedHeader, output.NoCompletedTasks, completed, len(active))

	if m.status != "" {
		b.WriteString(m.styles.Status.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(m.styles.Footer.Render("tab focus • ↑/↓ move • space toggle • d delete • ? help • esc quit"))
	return b.String()
}

func (m Model) renderSection(b *strings.Builder, header, placeholder string, tasks []service.Task, offset int) {
	b.WriteString(m.styles.Header.Render(header))
	b.WriteString("\n")
	if len(tasks) == 0 {
		b.WriteString(m.styles.Placeholder.Render(placeholder))
		b.WriteString("\n")
		return
	}
	for i, t := range tasks {
		b.WriteString(m.renderRow(t, m.focus == focusList && m.cursor == offset+i))
		b.WriteString("\n")
	}
}

func (m Model) renderRow(t service.Task, selected bool) string {
	description := output.NormalizeDescription(t.Description)
	if t.IsCompleted {
		description = m.styles.CompletedText.Render(description)
	}
	line := fmt.Sprintf("%s %s  %s", output.Checkbox(t.IsCompleted), description, m.styles.Delete.Render("✕"))
	if selected {
		return m.styles.SelectedRow.Render("> " + line)
	}
	return m.styles.Row.Render(line)
}

func describeEvent(e tasklist.Event) string {
	switch e.Kind {
	case tasklist.EventAdded:
		return fmt.Sprintf("Added #%d: %s", e.Task.ID, output.NormalizeDescription(e.Task.Description))
	case tasklist.EventToggled:
		if e.Task.IsCompleted {
			return fmt.Sprintf("Completed #%d", e.Task.ID)
		}
		return fmt.Sprintf("Reopened #%d", e.Task.ID)
	case tasklist.EventDeleted:
		return fmt.Sprintf("Deleted #%d", e.Task.ID)
	}
	return ""
}

const helpMarkdown = `# Keys

| Key | Action |
| --- | --- |
| tab | switch between the input and the list |
| enter | add the typed task (input) or toggle the selected task (list) |
| ↑/↓, k/j | move the selection |
| space, x | toggle the selected task |
| d, delete | delete the selected task |
| a, i | jump to the input |
| ? | show or hide this help |
| esc, ctrl+c | quit |

Tasks live only for this session.
`

// renderHelp renders the key reference, falling back to the raw markdown
// if the renderer cannot be built.
func renderHelp(width int) string {
	if width <= 0 {
		width = defaultWrap
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return helpMarkdown
	}
	out, err := r.Render(helpMarkdown)
	if err != nil {
		return helpMarkdown
	}
	return out
}

// Run starts the program on the terminal and blocks until the user quits or
// ctx is cancelled.
func Run(ctx context.Context, store *tasklist.Store, logger *zap.Logger) error {
	m := New(store, logger)
	defer m.Close()

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("failed to run terminal UI: %w", err)
	}
	return nil
}
