package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/colonyops/tracker/internal/core/task"
	"github.com/colonyops/tracker/internal/tracker"
)

// Run starts the interactive task list and blocks until the user quits.
func Run(ctx context.Context, svc *tracker.Service, accent string) error {
	program := tea.NewProgram(NewModel(svc, accent), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := program.Run()
	return err
}

// Model is the Bubble Tea model for the task list.
//
// It is a pure presentation adapter: every user action becomes an intent
// dispatched to the tracker service, and the view re-renders from a fresh
// snapshot afterwards. The model never mutates tasks itself.
type Model struct {
	svc    *tracker.Service
	styles Styles
	keys   keyMap

	tasks    []task.Task
	selected map[task.Ref]struct{}
	cursor   int
	scroll   int // first visible row index

	input    textinput.Model
	entering bool

	width  int
	height int
}

// NewModel creates the task list model over the given service.
func NewModel(svc *tracker.Service, accent string) *Model {
	ti := textinput.New()
	ti.Placeholder = "Add a new task..."
	ti.Prompt = "> "
	ti.CharLimit = 512

	m := &Model{
		svc:      svc,
		styles:   DefaultStyles(accent),
		keys:     defaultKeyMap(),
		selected: map[task.Ref]struct{}{},
		input:    ti,
		width:    80,
		height:   24,
	}
	m.refresh()
	return m
}

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = max(msg.Width-4, 20)
		m.ensureVisible()
		return m, nil
	case tea.KeyMsg:
		if m.entering {
			return m.updateEntry(msg)
		}
		return m.updateList(msg)
	}
	return m, nil
}

func (m *Model) updateEntry(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m.quit()
	case "esc":
		m.entering = false
		m.input.Blur()
		m.input.Reset()
		return m, nil
	case "enter":
		m.svc.Apply(tracker.AddTask{Text: m.input.Value()})
		m.input.Reset()
		m.refresh()
		// Keep the entry focused so several tasks can be typed in a row,
		// and follow the freshly added task with the cursor.
		if len(m.tasks) > 0 {
			m.cursor = len(m.tasks) - 1
			m.ensureVisible()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
			m.ensureVisible()
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.tasks)-1 {
			m.cursor++
			m.ensureVisible()
		}

	case key.Matches(msg, m.keys.Add):
		m.entering = true
		return m, m.input.Focus()

	case key.Matches(msg, m.keys.Toggle):
		if t, ok := m.cursorTask(); ok {
			m.svc.Apply(tracker.ToggleTask{Ref: t.Ref})
			m.refresh()
		}

	case key.Matches(msg, m.keys.Select):
		if t, ok := m.cursorTask(); ok {
			if _, sel := m.selected[t.Ref]; sel {
				delete(m.selected, t.Ref)
			} else {
				m.selected[t.Ref] = struct{}{}
			}
		}

	case key.Matches(msg, m.keys.Remove):
		refs := m.removalSet()
		if len(refs) > 0 {
			m.svc.Apply(tracker.RemoveTasks{Refs: refs})
			m.refresh()
		}
	}

	return m, nil
}

func (m *Model) quit() (tea.Model, tea.Cmd) {
	m.svc.Apply(tracker.Shutdown{})
	return m, tea.Quit
}

// removalSet returns the selected refs, or the cursor task when nothing is
// selected.
func (m *Model) removalSet() []task.Ref {
	if len(m.selected) > 0 {
		refs := make([]task.Ref, 0, len(m.selected))
		for ref := range m.selected {
			refs = append(refs, ref)
		}
		return refs
	}
	if t, ok := m.cursorTask(); ok {
		return []task.Ref{t.Ref}
	}
	return nil
}

func (m *Model) cursorTask() (task.Task, bool) {
	if m.cursor < 0 || m.cursor >= len(m.tasks) {
		return task.Task{}, false
	}
	return m.tasks[m.cursor], true
}

// refresh re-reads the snapshot and reconciles cursor and selection with it.
func (m *Model) refresh() {
	m.tasks = m.svc.Tasks()

	live := make(map[task.Ref]struct{}, len(m.tasks))
	for _, t := range m.tasks {
		live[t.Ref] = struct{}{}
	}
	for ref := range m.selected {
		if _, ok := live[ref]; !ok {
			delete(m.selected, ref)
		}
	}

	if m.cursor >= len(m.tasks) {
		m.cursor = len(m.tasks) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.ensureVisible()
}

func (m *Model) listHeight() int {
	return max(m.height-6, 3)
}

func (m *Model) ensureVisible() {
	h := m.listHeight()
	if m.cursor < m.scroll {
		m.scroll = m.cursor
	}
	if m.cursor >= m.scroll+h {
		m.scroll = m.cursor - h + 1
	}
	if m.scroll < 0 {
		m.scroll = 0
	}
}

func (m *Model) View() string {
	var b strings.Builder

	done := 0
	for _, t := range m.tasks {
		if t.Done {
			done++
		}
	}
	b.WriteString(m.styles.Title.Render("Tracker"))
	b.WriteString(m.styles.Muted.Render(fmt.Sprintf("  %d/%d done", done, len(m.tasks))))
	b.WriteString("\n\n")

	if len(m.tasks) == 0 {
		b.WriteString(m.styles.Muted.Render("No tasks yet. Press a to add one."))
		b.WriteString("\n")
	} else {
		end := min(m.scroll+m.listHeight(), len(m.tasks))
		for i := m.scroll; i < end; i++ {
			b.WriteString(m.renderRow(i))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	if m.entering {
		b.WriteString(m.input.View())
	} else {
		b.WriteString(m.styles.Help.Render("a add • enter toggle • space select • d remove • q quit"))
	}

	if err := m.svc.LastSaveErr(); err != nil {
		b.WriteString("\n")
		b.WriteString(m.styles.Warning.Render("could not save task file: " + err.Error()))
	}

	return b.String()
}

func (m *Model) renderRow(i int) string {
	t := m.tasks[i]

	cursor := "  "
	if i == m.cursor {
		cursor = m.styles.Cursor.Render("> ")
	}

	marker := " "
	if _, sel := m.selected[t.Ref]; sel {
		marker = m.styles.Selected.Render("*")
	}

	text := m.styles.Text.Render(t.Text)
	if t.Done {
		text = m.styles.Done.Render(t.Text)
	}

	return fmt.Sprintf("%s%s%s %s", cursor, marker, checkbox(t.Done), text)
}

func checkbox(done bool) string {
	if done {
		return "[x]"
	}
	return "[ ]"
}
