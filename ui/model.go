// Package ui is the terminal front end: a table of mixer outputs whose left
// and right sources are picked from the input port catalog.
package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/d1nch8g/pmxout/assign"
	"github.com/d1nch8g/pmxout/engine"
)

// Controller is the part of engine.Controller the UI drives.
type Controller interface {
	Select(ctx context.Context, id assign.OutputID, side assign.Side, path string) (assign.MixerOutputState, error)
	Retry(ctx context.Context, id assign.OutputID) error
	Reload(ctx context.Context) error
}

var _ Controller = (*engine.Controller)(nil)

// EventMsg carries a controller event into the program.
type EventMsg engine.Event

type errMsg struct{ err error }

const maxPickerRows = 10

type Model struct {
	ctx  context.Context
	ctl  Controller
	keys keyMap

	snap   engine.Snapshot
	cursor int
	side   assign.Side
	notice string
	failed bool

	picking    bool
	filter     textinput.Model
	pickCursor int
}

// NewModel returns a model waiting for the first load.
func NewModel(ctx context.Context, ctl Controller) Model {
	ti := textinput.New()
	ti.Placeholder = "filter ports"
	ti.Prompt = "/ "
	ti.CharLimit = 128
	return Model{
		ctx:    ctx,
		ctl:    ctl,
		keys:   defaultKeys(),
		snap:   engine.Snapshot{Phase: engine.PhaseLoading},
		filter: ti,
	}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case EventMsg:
		m.applyEvent(engine.Event(msg))
		return m, nil

	case errMsg:
		m.notice, m.failed = msg.err.Error(), true
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Abort) {
			return m, tea.Quit
		}
		if m.picking {
			return m.updatePicker(msg)
		}
		return m.updateTable(msg)
	}
	return m, nil
}

func (m *Model) applyEvent(ev engine.Event) {
	m.snap = ev.Snapshot
	if m.cursor >= len(m.snap.Outputs) {
		m.cursor = max(len(m.snap.Outputs)-1, 0)
	}
	if m.snap.Phase != engine.PhaseReady {
		m.picking = false
	}

	switch ev.Kind {
	case engine.EventLoaded:
		m.notice, m.failed = fmt.Sprintf("loaded %d outputs", len(m.snap.Outputs)), false
	case engine.EventLoadFailed:
		m.notice, m.failed = ev.Err.Error(), true
	case engine.EventCommitted:
		m.notice, m.failed = fmt.Sprintf("%s saved", m.outputName(ev.ID)), false
	case engine.EventCommitFailed:
		m.notice, m.failed = fmt.Sprintf("%s: %v", m.outputName(ev.ID), ev.Err), true
	}
}

func (m Model) outputName(id assign.OutputID) string {
	if o, ok := m.snap.Output(id); ok && o.Name != "" {
		return o.Name
	}
	return fmt.Sprintf("output %d", id)
}

func (m Model) current() (assign.MixerOutputState, bool) {
	if m.snap.Phase != engine.PhaseReady || m.cursor >= len(m.snap.Outputs) {
		return assign.MixerOutputState{}, false
	}
	return m.snap.Outputs[m.cursor], true
}

func (m Model) updateTable(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.snap.Outputs)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Left):
		m.side = assign.SideLeft
	case key.Matches(msg, m.keys.Right):
		m.side = assign.SideRight
	case key.Matches(msg, m.keys.Reload):
		m.notice, m.failed = "reloading", false
		return m, m.reloadCmd()
	case key.Matches(msg, m.keys.Pick):
		if _, ok := m.current(); !ok {
			return m, nil
		}
		m.picking = true
		m.pickCursor = 0
		m.filter.Reset()
		return m, m.filter.Focus()
	case key.Matches(msg, m.keys.Clear):
		if out, ok := m.current(); ok {
			return m, m.selectCmd(out.ID, m.side, "")
		}
	case key.Matches(msg, m.keys.Retry):
		if out, ok := m.current(); ok {
			return m, m.retryCmd(out.ID)
		}
	}
	return m, nil
}

func (m Model) updatePicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	matches := m.matches()
	switch {
	case key.Matches(msg, m.keys.PickCancel):
		m.picking = false
		m.filter.Blur()
		return m, nil
	case key.Matches(msg, m.keys.PickUp):
		if m.pickCursor > 0 {
			m.pickCursor--
		}
		return m, nil
	case key.Matches(msg, m.keys.PickDown):
		if m.pickCursor < len(matches)-1 {
			m.pickCursor++
		}
		return m, nil
	case key.Matches(msg, m.keys.PickAccept):
		out, ok := m.current()
		if !ok || len(matches) == 0 {
			return m, nil
		}
		m.picking = false
		m.filter.Blur()
		return m, m.selectCmd(out.ID, m.side, matches[m.pickCursor])
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	if n := len(m.matches()); m.pickCursor >= n {
		m.pickCursor = max(n-1, 0)
	}
	return m, cmd
}

// matches returns the input ports containing the filter text. Both sides of
// an output choose from the same input catalog.
func (m Model) matches() []string {
	q := strings.ToLower(strings.TrimSpace(m.filter.Value()))
	if q == "" {
		return m.snap.Catalog.In
	}
	var out []string
	for _, p := range m.snap.Catalog.In {
		if strings.Contains(strings.ToLower(p), q) {
			out = append(out, p)
		}
	}
	return out
}

func (m Model) selectCmd(id assign.OutputID, side assign.Side, path string) tea.Cmd {
	return func() tea.Msg {
		if _, err := m.ctl.Select(m.ctx, id, side, path); err != nil {
			return errMsg{err}
		}
		return nil
	}
}

func (m Model) retryCmd(id assign.OutputID) tea.Cmd {
	return func() tea.Msg {
		if err := m.ctl.Retry(m.ctx, id); err != nil {
			return errMsg{err}
		}
		return nil
	}
}

func (m Model) reloadCmd() tea.Cmd {
	return func() tea.Msg {
		if err := m.ctl.Reload(m.ctx); err != nil {
			return errMsg{err}
		}
		return nil
	}
}

func (m Model) View() string {
	b := &strings.Builder{}
	fmt.Fprintln(b, titleStyle.Render("pmx outputs"))

	switch m.snap.Phase {
	case engine.PhaseLoading:
		fmt.Fprintln(b, dimStyle.Render("loading registries..."))
	case engine.PhaseLoadFailed:
		fmt.Fprintln(b, errorStyle.Render("load failed: "+errString(m.snap.LoadErr)))
		fmt.Fprintln(b, helpStyle.Render("R reload  q quit"))
		return b.String()
	case engine.PhaseReady:
		m.renderTable(b)
	}

	if m.picking {
		fmt.Fprintln(b, m.renderPicker())
	}
	if m.notice != "" {
		style := syncedStyle
		if m.failed {
			style = errorStyle
		}
		fmt.Fprintln(b, style.Render(m.notice))
	}
	fmt.Fprintln(b, helpStyle.Render(helpLine(m.keys.help())))
	return b.String()
}

func (m Model) renderTable(b *strings.Builder) {
	if len(m.snap.Outputs) == 0 {
		fmt.Fprintln(b, dimStyle.Render("no outputs"))
		return
	}
	nameW, pathW := len("OUTPUT"), len("RIGHT")
	for _, o := range m.snap.Outputs {
		nameW = max(nameW, lipgloss.Width(o.Name))
		pathW = max(pathW, lipgloss.Width(portLabel(o.Left)), lipgloss.Width(portLabel(o.Right)))
	}

	fmt.Fprintln(b, headerStyle.Render(fmt.Sprintf("  %-*s  %-*s  %-*s  %s", nameW, "OUTPUT", pathW, "LEFT", pathW, "RIGHT", "STATUS")))
	for i, o := range m.snap.Outputs {
		selected := i == m.cursor
		marker := "  "
		if selected {
			marker = focusStyle.Render("> ")
		}
		left := cell(portLabel(o.Left), pathW, selected && m.side == assign.SideLeft)
		right := cell(portLabel(o.Right), pathW, selected && m.side == assign.SideRight)
		name := textStyle.Render(fmt.Sprintf("%-*s", nameW, o.Name))
		fmt.Fprintf(b, "%s%s  %s  %s  %s\n", marker, name, left, right, statusLabel(o))
	}
}

func (m Model) renderPicker() string {
	out, _ := m.current()
	lines := []string{
		headerStyle.Render(fmt.Sprintf("%s %s source", out.Name, m.side)),
		m.filter.View(),
	}
	matches := m.matches()
	if len(matches) == 0 {
		lines = append(lines, dimStyle.Render("no matching ports"))
	}
	first := 0
	if m.pickCursor >= maxPickerRows {
		first = m.pickCursor - maxPickerRows + 1
	}
	for i := first; i < len(matches) && i < first+maxPickerRows; i++ {
		if i == m.pickCursor {
			lines = append(lines, focusStyle.Render("> "+matches[i]))
		} else {
			lines = append(lines, textStyle.Render("  "+matches[i]))
		}
	}
	return pickerStyle.Render(strings.Join(lines, "\n"))
}

func cell(s string, width int, focused bool) string {
	padded := fmt.Sprintf("%-*s", width, s)
	if focused {
		return focusStyle.Render(padded)
	}
	if s == portLabel("") {
		return dimStyle.Render(padded)
	}
	return textStyle.Render(padded)
}

func portLabel(path string) string {
	if path == "" {
		return "(none)"
	}
	return path
}

func statusLabel(o assign.MixerOutputState) string {
	switch {
	case o.Status == assign.StatusOutOfSync:
		return errorStyle.Render("out of sync: " + o.LastError)
	case o.Status == assign.StatusCommitting || !o.Saved:
		return pendingStyle.Render("saving")
	default:
		return syncedStyle.Render("saved")
	}
}

func helpLine(bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, kb := range bindings {
		h := kb.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, "  ")
}

func errString(err error) string {
	if err == nil {
		return "unknown error"
	}
	return err.Error()
}
