package main

import (
	tea "github.com/charmbracelet/bubbletea"
)

// TestHelper provides utilities for testing the TUI model
type TestHelper struct {
	model Model
}

// NewTestHelper creates a test helper with a model
func NewTestHelper(scenePath string) *TestHelper {
	return &TestHelper{
		model: NewModel(scenePath),
	}
}

// SendKey simulates a key press
func (h *TestHelper) SendKey(keyType tea.KeyType) *TestHelper {
	msg := tea.KeyMsg{Type: keyType}
	updated, _ := h.model.Update(msg)
	h.model = updated.(Model)
	return h
}

// SendKeyRune simulates a character key press
func (h *TestHelper) SendKeyRune(r rune) *TestHelper {
	msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
	updated, _ := h.model.Update(msg)
	h.model = updated.(Model)
	return h
}

// SendWindowSize simulates a window resize
func (h *TestHelper) SendWindowSize(width, height int) *TestHelper {
	msg := tea.WindowSizeMsg{Width: width, Height: height}
	updated, _ := h.model.Update(msg)
	h.model = updated.(Model)
	return h
}

// GetModel returns the current model
func (h *TestHelper) GetModel() Model {
	return h.model
}

// GetView returns the rendered view
func (h *TestHelper) GetView() string {
	return h.model.View()
}

// VisibleNames returns the names of the visible tree rows in order
func (h *TestHelper) VisibleNames() []string {
	names := make([]string, 0, len(h.model.rows))
	for _, r := range h.model.rows {
		names = append(names, r.name)
	}
	return names
}

// CurrentName returns the name of the row under the cursor
func (h *TestHelper) CurrentName() string {
	r, ok := h.model.currentRow()
	if !ok {
		return ""
	}
	return r.name
}
