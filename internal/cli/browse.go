package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/trailmap/internal/cli/formatter"
	"github.com/alexanderramin/trailmap/internal/roadmap"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

type roadmapLoadedMsg struct {
	roadmap *roadmap.Roadmap
	err     error
}

// taskChangedMsg reports a completion or rename; filename is the task's
// name afterwards.
type taskChangedMsg struct {
	filename string
	status   string
	err      error
}

type browseKeys struct {
	Up       key.Binding
	Down     key.Binding
	Complete key.Binding
	Rename   key.Binding
	Refresh  key.Binding
	Quit     key.Binding
	Confirm  key.Binding
	Cancel   key.Binding
}

func defaultBrowseKeys() browseKeys {
	return browseKeys{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Complete: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "complete")),
		Rename:   key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "rename")),
		Refresh:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Confirm:  key.NewBinding(key.WithKeys("enter")),
		Cancel:   key.NewBinding(key.WithKeys("esc")),
	}
}

func (k browseKeys) help() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Complete, k.Rename, k.Refresh, k.Quit}
}

// browseModel shows one roadmap and lets the user walk it, complete the
// selected task and rename it in place.
type browseModel struct {
	ctx     context.Context
	app     *App
	project string

	roadmap  *roadmap.Roadmap
	cursor   int
	selected string
	status   string
	err      error

	renaming bool
	input    textinput.Model
	bar      progress.Model
	view     viewport.Model
	keys     browseKeys
}

func newBrowseModel(ctx context.Context, app *App, project string) *browseModel {
	input := textinput.New()
	input.Prompt = "new name: "
	input.CharLimit = 255

	return &browseModel{
		ctx:     ctx,
		app:     app,
		project: project,
		input:   input,
		bar:     progress.New(progress.WithSolidFill(string(formatter.ColorGreen)), progress.WithWidth(30)),
		view:    viewport.New(80, 20),
		keys:    defaultBrowseKeys(),
	}
}

func (m *browseModel) Init() tea.Cmd {
	return m.load()
}

func (m *browseModel) load() tea.Cmd {
	planner, project, selected, ctx := m.app.Planner, m.project, m.selected, m.ctx
	return func() tea.Msg {
		rm, err := planner.Roadmap(ctx, project, selected)
		return roadmapLoadedMsg{roadmap: rm, err: err}
	}
}

func (m *browseModel) complete(filename string) tea.Cmd {
	planner, project, ctx := m.app.Planner, m.project, m.ctx
	return func() tea.Msg {
		newName, err := planner.CompleteTask(ctx, project, filename)
		return taskChangedMsg{filename: newName, status: "Done: " + newName, err: err}
	}
}

func (m *browseModel) rename(oldName, newName string) tea.Cmd {
	planner, project, ctx := m.app.Planner, m.project, m.ctx
	return func() tea.Msg {
		err := planner.RenameTask(ctx, project, oldName, newName)
		return taskChangedMsg{filename: newName, status: "Renamed to " + newName, err: err}
	}
}

func (m *browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.view.Width = msg.Width
		m.view.Height = max(3, msg.Height-8)
		m.refreshView()
		return m, nil

	case roadmapLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.roadmap = msg.roadmap
		m.cursor = m.cursorFor(m.selected)
		m.refreshView()
		return m, nil

	case taskChangedMsg:
		if msg.err != nil {
			m.status = "Error: " + msg.err.Error()
			return m, nil
		}
		m.status = msg.status
		m.selected = msg.filename
		return m, m.load()

	case tea.KeyMsg:
		if m.renaming {
			return m.updateRename(msg)
		}
		return m.updateNormal(msg)
	}
	return m, nil
}

func (m *browseModel) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Refresh):
		return m, m.load()
	}

	if m.roadmap == nil || len(m.roadmap.Nodes) == 0 {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.moveTo(m.cursor - 1)
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.roadmap.Nodes)-1 {
			m.moveTo(m.cursor + 1)
		}
	case key.Matches(msg, m.keys.Complete):
		return m, m.complete(m.roadmap.Nodes[m.cursor].Filename)
	case key.Matches(msg, m.keys.Rename):
		m.renaming = true
		m.input.SetValue(m.roadmap.Nodes[m.cursor].Filename)
		m.input.CursorEnd()
		return m, m.input.Focus()
	}
	return m, nil
}

func (m *browseModel) updateRename(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.renaming = false
		m.input.Blur()
		return m, nil
	case key.Matches(msg, m.keys.Confirm):
		m.renaming = false
		m.input.Blur()
		oldName := m.roadmap.Nodes[m.cursor].Filename
		newName := strings.TrimSpace(m.input.Value())
		if newName == "" || newName == oldName {
			return m, nil
		}
		return m, m.rename(oldName, newName)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *browseModel) moveTo(i int) {
	m.cursor = i
	m.selected = m.roadmap.Nodes[i].Filename
	for j := range m.roadmap.Nodes {
		m.roadmap.Nodes[j].Selected = j == i
	}
	m.refreshView()
}

// cursorFor returns the index of filename, or 0 when absent.
func (m *browseModel) cursorFor(filename string) int {
	if m.roadmap == nil {
		return 0
	}
	for i, n := range m.roadmap.Nodes {
		if n.Filename == filename {
			return i
		}
	}
	if len(m.roadmap.Nodes) > 0 {
		m.roadmap.Nodes[0].Selected = true
		m.selected = m.roadmap.Nodes[0].Filename
	}
	return 0
}

// refreshView re-renders the trail and keeps the cursor line visible.
// Each node takes two lines: the node and its connector.
func (m *browseModel) refreshView() {
	if m.roadmap == nil {
		return
	}
	trail := formatter.FormatTrail(m.roadmap, m.app.Schedule.Stages(), m.app.today())
	m.view.SetContent(trail)

	line := m.cursor * 2
	if line < m.view.YOffset {
		m.view.SetYOffset(line)
	} else if line >= m.view.YOffset+m.view.Height {
		m.view.SetYOffset(line - m.view.Height + 1)
	}
}

func (m *browseModel) View() string {
	if m.err != nil {
		return formatter.StyleRed.Render("Error: "+m.err.Error()) + "\n"
	}
	if m.roadmap == nil {
		return formatter.Dim("Loading...") + "\n"
	}

	var b strings.Builder
	b.WriteString(formatter.Header(m.roadmap.Name) + "\n" + formatter.KindBadge(m.roadmap.Kind) + "\n")
	b.WriteString(m.bar.ViewAs(float64(m.roadmap.Percent)/100) + "\n\n")

	if len(m.roadmap.Nodes) == 0 {
		b.WriteString(formatter.Dim("No tasks yet.") + "\n")
	} else {
		b.WriteString(m.view.View() + "\n")
	}

	b.WriteString("\n")
	if m.renaming {
		b.WriteString(m.input.View() + "\n")
	} else if m.status != "" {
		b.WriteString(m.status + "\n")
	}
	b.WriteString(formatter.Dim(helpLine(m.keys.help())) + "\n")
	return b.String()
}

func helpLine(bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, fmt.Sprintf("%s %s", h.Key, h.Desc))
	}
	return strings.Join(parts, " · ")
}

func (m *browseModel) selectedNode() (roadmap.Node, bool) {
	if m.roadmap == nil || m.cursor >= len(m.roadmap.Nodes) {
		return roadmap.Node{}, false
	}
	return m.roadmap.Nodes[m.cursor], true
}
