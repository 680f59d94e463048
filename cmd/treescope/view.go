package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/joshuapare/arenakit/scene"
)

// View renders the entire UI
func (m Model) View() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err))
	}

	// If help overlay is showing, render it
	if m.showHelp {
		return m.renderHelpOverlay()
	}

	header := m.renderHeader()
	content := m.renderContent()
	status := m.renderStatus()

	return lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		content,
		status,
	)
}

// renderHeader renders the header with the scene name and current path
func (m Model) renderHeader() string {
	header := lipgloss.JoinHorizontal(
		lipgloss.Top,
		headerStyle.Render("Scene Browser"),
		lipgloss.NewStyle().Render("  "),
		pathStyle.Render(fmt.Sprintf("Scene: %s", m.scenePath)),
	)

	if r, ok := m.currentRow(); ok {
		header = lipgloss.JoinVertical(
			lipgloss.Left,
			header,
			pathStyle.Render(fmt.Sprintf("Path: %s", m.nodePath(r.index))),
		)
	}

	return header
}

// renderContent renders the split-pane content
func (m Model) renderContent() string {
	treeWidth := m.width * 3 / 5
	if treeWidth < 24 {
		treeWidth = 24
	}
	detailWidth := m.width - treeWidth
	if detailWidth < 24 {
		detailWidth = 24
	}
	height := m.treeHeight()

	// Border and padding eat four columns of each pane
	tree := m.renderTreePane(treeWidth-4, height)
	detail := m.renderDetailPane(detailWidth - 4)

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		activePaneStyle.Width(treeWidth-2).Height(height).Render(tree),
		paneStyle.Width(detailWidth-2).Height(height).Render(detail),
	)
}

// renderTreePane renders the visible window of tree rows
func (m Model) renderTreePane(width, height int) string {
	if len(m.rows) == 0 {
		return detailValueStyle.Render("empty scene")
	}

	end := m.offset + height
	if end > len(m.rows) {
		end = len(m.rows)
	}

	var b strings.Builder
	for i := m.offset; i < end; i++ {
		r := m.rows[i]

		expander := "  "
		if r.hasChildren {
			if m.collapsed[r.index] {
				expander = "▸ "
			} else {
				expander = "▾ "
			}
		}

		line := truncate(strings.Repeat("  ", r.level)+expander+r.name, width)
		if i == m.cursor {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line)
		if i < end-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// renderDetailPane renders structure and pose info for the selected node
func (m Model) renderDetailPane(width int) string {
	r, ok := m.currentRow()
	if !ok {
		return detailValueStyle.Render("no selection")
	}

	tr := m.graph.Tree()
	meta := tr.NodeAt(r.index)
	n := tr.PayloadAt(r.index)

	parent := "(root)"
	if p, ok := tr.Parent(*n); ok {
		parent = p.Name
	}

	lines := []string{
		detailLabelStyle.Render("Node"),
		detailValueStyle.Render("  " + truncate(n.Name, width-2)),
		detailValueStyle.Render("  " + truncate(m.nodePath(r.index), width-2)),
		"",
		detailLabelStyle.Render("Structure"),
		detailValueStyle.Render(fmt.Sprintf("  children  %d", meta.NbrChildren)),
		detailValueStyle.Render(fmt.Sprintf("  branch    %d nodes", meta.BranchStride)),
		detailValueStyle.Render("  parent    " + truncate(parent, width-12)),
		"",
		detailLabelStyle.Render("Local Pose"),
	}
	lines = append(lines, formatPose(n.Local)...)
	lines = append(lines, "", detailLabelStyle.Render("World Pose"))
	lines = append(lines, formatPose(n.World)...)

	return strings.Join(lines, "\n")
}

func formatPose(p scene.Pose) []string {
	return []string{
		detailValueStyle.Render(fmt.Sprintf("  pos    (%.2f, %.2f, %.2f)", p.X, p.Y, p.Z)),
		detailValueStyle.Render(fmt.Sprintf("  yaw    %.3f rad", p.Yaw)),
		detailValueStyle.Render(fmt.Sprintf("  scale  %.2f", p.Scale)),
	}
}

// renderStatus renders the bottom status bar
func (m Model) renderStatus() string {
	count := statusCountStyle.Render(fmt.Sprintf("%d nodes", m.graph.Len()))

	middle := m.statusMessage
	if middle == "" {
		middle = helpStyle.Render("? help")
	}

	line := fmt.Sprintf("%s  %s  %s", count, middle, helpStyle.Render("q quit"))
	return statusStyle.Width(m.width).Render(line)
}

// renderHelpOverlay renders the full-screen help view
func (m Model) renderHelpOverlay() string {
	var b strings.Builder
	b.WriteString(helpTitleStyle.Render("Keyboard Shortcuts"))
	b.WriteString("\n")

	for _, group := range m.keys.FullHelp() {
		for _, binding := range group {
			h := binding.Help()
			b.WriteString(helpKeyStyle.Render(h.Key))
			b.WriteString(helpDescStyle.Render(h.Desc))
			b.WriteByte('\n')
		}
		b.WriteByte('\n')
	}

	b.WriteString(helpStyle.Render("Press ? or esc to close"))
	return b.String()
}
