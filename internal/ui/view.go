package ui

import (
	"fmt"
	"strings"

	"github.com/atomicstack/lcdmenu/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/truncate"
)

const headerSeparator = " · "

// View implements tea.Model.
func (m *Model) View() string {
	parts := make([]string, 0, 4)
	if header := m.header(); header != "" {
		parts = append(parts, styles.Title.Render(m.fit(header)))
	}
	parts = append(parts, m.panelView())
	parts = append(parts, m.statusLine())
	if m.showFooter {
		parts = append(parts, styles.Footer.Render(m.help.View(m.keys)))
	}
	view := lipgloss.JoinVertical(lipgloss.Left, parts...)
	if m.width > 0 {
		view = lipgloss.PlaceHorizontal(m.width, lipgloss.Left, view)
	}
	return view
}

// header is the title followed by the label of the list on the panel.
func (m *Model) header() string {
	segments := make([]string, 0, 2)
	if m.title != "" {
		segments = append(segments, m.title)
	}
	if m.host.Mode() == ModeMenu {
		tree := m.eng.Tree()
		segments = append(segments, tree.Node(m.eng.Parent()).Label)
	}
	return strings.Join(segments, headerSeparator)
}

// panelView draws the panel rows inside the bezel, coloured for the
// current owner of the panel.
func (m *Model) panelView() string {
	style := styles.Cells
	switch {
	case m.host.Mode() == ModeIdle:
		style = styles.Idle
	case m.host.Mode() == ModeScreen:
		style = styles.Screen
	case m.host.Panel().Kind() == PanelOLED:
		style = styles.Pixels
	}
	rows := m.host.Panel().Rows()
	out := make([]string, len(rows))
	for i, row := range rows {
		out[i] = style.Render(row)
	}
	return styles.Bezel.Render(strings.Join(out, "\n"))
}

func (m *Model) statusLine() string {
	if m.errMsg != "" {
		return styles.Error.Render(m.fit(m.errMsg))
	}
	status := fmt.Sprintf("%s%s%s%sdepth %d",
		m.host.Mode(), headerSeparator,
		m.host.Panel().Kind(), headerSeparator,
		m.eng.Depth())
	if m.eng.Editing() {
		status += headerSeparator + "editing"
	}
	if m.infoMsg != "" {
		status += headerSeparator + m.infoMsg
	}
	return styles.Status.Render(m.fit(status))
}

// fit truncates plain text to the terminal width.
func (m *Model) fit(text string) string {
	if m.width <= 0 || ansi.StringWidth(text) <= m.width {
		return text
	}
	if m.width == 1 {
		return "…"
	}
	return truncate.StringWithTail(text, uint(m.width-1), "…")
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	events.UI.Resize(resize.Width, resize.Height)
	if !m.fixedWidth {
		m.width = resize.Width
		m.help.Width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	return nil
}
