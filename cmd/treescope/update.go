package main

import (
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/joshuapare/arenakit/scene"
)

// clearStatusMsg clears the transient status line
type clearStatusMsg struct{}

func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

// Update handles all messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ensureCursorVisible()
		return m, nil

	case clearStatusMsg:
		m.statusMessage = ""
		return m, nil

	case tea.KeyMsg:
		// Quit works everywhere, even on a failed load
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		if m.err != nil {
			return m, nil
		}

		// If help is showing, any dismiss key closes it
		if m.showHelp {
			if key.Matches(msg, m.keys.Esc) || key.Matches(msg, m.keys.Help) {
				m.showHelp = false
			}
			return m, nil
		}

		return m.handleNormalKey(msg)
	}

	return m, nil
}

func (m Model) handleNormalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)

	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)

	case key.Matches(msg, m.keys.PageUp):
		m.moveCursor(-m.treeHeight())

	case key.Matches(msg, m.keys.PageDown):
		m.moveCursor(m.treeHeight())

	case key.Matches(msg, m.keys.Home):
		m.cursor = 0
		m.ensureCursorVisible()

	case key.Matches(msg, m.keys.End):
		m.cursor = len(m.rows) - 1
		m.ensureCursorVisible()

	case key.Matches(msg, m.keys.Enter):
		if r, ok := m.currentRow(); ok && r.hasChildren {
			m.collapsed[r.index] = !m.collapsed[r.index]
			m.rebuildRows()
		}

	case key.Matches(msg, m.keys.Right):
		if r, ok := m.currentRow(); ok && r.hasChildren && m.collapsed[r.index] {
			delete(m.collapsed, r.index)
			m.rebuildRows()
		}

	case key.Matches(msg, m.keys.Left):
		return m.handleCollapseOrParent()

	case key.Matches(msg, m.keys.ExpandAll):
		clear(m.collapsed)
		m.rebuildRows()

	case key.Matches(msg, m.keys.CollapseAll):
		for _, r := range m.allRows() {
			if r.hasChildren {
				m.collapsed[r.index] = true
			}
		}
		m.cursor = 0
		m.offset = 0
		m.rebuildRows()

	case key.Matches(msg, m.keys.Copy):
		return m.handleCopyPath()

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
	}

	return m, nil
}

// handleCollapseOrParent collapses an expanded branch, otherwise jumps to
// the parent row.
func (m Model) handleCollapseOrParent() (tea.Model, tea.Cmd) {
	r, ok := m.currentRow()
	if !ok {
		return m, nil
	}

	if r.hasChildren && !m.collapsed[r.index] {
		m.collapsed[r.index] = true
		m.rebuildRows()
		return m, nil
	}

	meta := m.graph.Tree().NodeAt(r.index)
	if meta.ParentOfs == 0 {
		return m, nil
	}
	parentIndex := r.index - int(meta.ParentOfs)
	for i, vr := range m.rows {
		if vr.index == parentIndex {
			m.cursor = i
			m.ensureCursorVisible()
			break
		}
	}
	return m, nil
}

func (m Model) handleCopyPath() (tea.Model, tea.Cmd) {
	r, ok := m.currentRow()
	if !ok {
		return m, nil
	}

	path := m.nodePath(r.index)
	if err := clipboard.WriteAll(path); err != nil {
		m.statusMessage = fmt.Sprintf("Copy failed: %v", err)
	} else {
		m.statusMessage = fmt.Sprintf("Copied: %s", path)
	}
	return m, clearStatusAfter(2 * time.Second)
}

// allRows walks every node regardless of collapse state.
func (m Model) allRows() []row {
	tr := m.graph.Tree()
	out := make([]row, 0, tr.Len())
	tr.DepthFirstLevel(func(n *scene.Node, index, level int) {
		out = append(out, row{
			index:       index,
			level:       level,
			name:        n.Name,
			hasChildren: tr.NodeAt(index).NbrChildren > 0,
		})
	})
	return out
}
