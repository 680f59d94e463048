package main

import (
	"fmt"
	"os"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/joshuapare/arenakit/scene"
)

// row is one visible line of the tree pane, pinned to a forest index. The
// browser never mutates the scene, so indices are stable for its lifetime.
type row struct {
	index       int
	level       int
	name        string
	hasChildren bool
}

// Model is the main application model
type Model struct {
	scenePath string
	graph     *scene.Graph
	keys      KeyMap

	rows      []row        // visible rows, rebuilt on expand/collapse
	cursor    int          // index into rows
	offset    int          // first row shown in the tree pane
	collapsed map[int]bool // forest indices whose children are hidden

	width  int
	height int

	// Help overlay
	showHelp bool

	// Status message for temporary feedback
	statusMessage string

	err error
}

// NewModel creates a new TUI model. A load failure is stored on the model
// and rendered by View rather than aborting, so the program can still shut
// the terminal down cleanly.
func NewModel(scenePath string) Model {
	m := Model{
		scenePath: scenePath,
		keys:      DefaultKeyMap(),
		collapsed: make(map[int]bool),
	}

	f, err := os.Open(scenePath)
	if err != nil {
		m.err = fmt.Errorf("failed to open scene: %w", err)
		return m
	}
	defer f.Close()

	g, err := scene.Load(f)
	if err != nil {
		m.err = fmt.Errorf("failed to load scene: %w", err)
		return m
	}

	m.graph = g
	m.rebuildRows()
	return m
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// rebuildRows flattens the forest into the visible row list, skipping the
// descendants of collapsed nodes.
func (m *Model) rebuildRows() {
	tr := m.graph.Tree()
	m.rows = m.rows[:0]

	var walk func(index, level int)
	walk = func(index, level int) {
		meta := tr.NodeAt(index)
		m.rows = append(m.rows, row{
			index:       index,
			level:       level,
			name:        tr.PayloadAt(index).Name,
			hasChildren: meta.NbrChildren > 0,
		})
		if m.collapsed[index] {
			return
		}
		child := index + 1
		for c := uint32(0); c < meta.NbrChildren; c++ {
			walk(child, level+1)
			child += int(tr.NodeAt(child).BranchStride)
		}
	}

	for i := 0; i < tr.Len(); i += int(tr.NodeAt(i).BranchStride) {
		walk(i, 0)
	}

	if m.cursor > len(m.rows)-1 {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.ensureCursorVisible()
}

// currentRow returns the row under the cursor.
func (m Model) currentRow() (row, bool) {
	if len(m.rows) == 0 || m.cursor >= len(m.rows) {
		return row{}, false
	}
	return m.rows[m.cursor], true
}

// nodePath builds the slash-separated path from the root to the node.
func (m Model) nodePath(index int) string {
	var parts []string
	m.graph.Tree().AscendAt(index, func(n *scene.Node, _ int) {
		parts = append(parts, n.Name)
	})
	slices.Reverse(parts)
	return strings.Join(parts, "/")
}

func (m *Model) moveCursor(delta int) {
	if len(m.rows) == 0 {
		m.cursor = 0
		return
	}
	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor > len(m.rows)-1 {
		m.cursor = len(m.rows) - 1
	}
	m.ensureCursorVisible()
}

func (m *Model) ensureCursorVisible() {
	vis := m.treeHeight()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+vis {
		m.offset = m.cursor - vis + 1
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

// treeHeight is the number of tree rows that fit between the header and the
// status bar, pane border included.
func (m Model) treeHeight() int {
	h := m.height - 7
	if h < 5 {
		h = 5
	}
	return h
}
