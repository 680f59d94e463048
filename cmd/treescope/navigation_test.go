package main

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestCursorNavigation(t *testing.T) {
	helper := NewTestHelper(writeSceneFixture(t))
	helper.SendWindowSize(100, 30)

	// Vim keys move down
	helper.SendKeyRune('j').SendKeyRune('j')
	if got := helper.CurrentName(); got != "crate.1" {
		t.Fatalf("expected cursor on crate.1, got %q", got)
	}

	// Arrow key moves back up
	helper.SendKey(tea.KeyUp)
	if got := helper.CurrentName(); got != "props" {
		t.Fatalf("expected cursor on props, got %q", got)
	}

	// Up at the top clamps
	helper.SendKeyRune('k').SendKeyRune('k').SendKeyRune('k')
	if got := helper.CurrentName(); got != "level" {
		t.Fatalf("expected cursor clamped at level, got %q", got)
	}

	// End and Home
	helper.SendKeyRune('G')
	if got := helper.CurrentName(); got != "hud" {
		t.Fatalf("expected cursor on hud, got %q", got)
	}
	helper.SendKeyRune('g')
	if got := helper.CurrentName(); got != "level" {
		t.Fatalf("expected cursor on level, got %q", got)
	}

	t.Log("✓ Cursor navigation and clamping work")
}

func TestEnterCollapsesAndExpands(t *testing.T) {
	helper := NewTestHelper(writeSceneFixture(t))
	helper.SendWindowSize(100, 30)

	// Collapse the first root
	helper.SendKey(tea.KeyEnter)
	names := helper.VisibleNames()
	want := []string{"level", "ui", "hud"}
	if len(names) != len(want) {
		t.Fatalf("expected rows %v, got %v", want, names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("expected rows %v, got %v", want, names)
		}
	}

	// Expand it again
	helper.SendKey(tea.KeyEnter)
	if got := len(helper.VisibleNames()); got != 8 {
		t.Fatalf("expected 8 rows after re-expand, got %d", got)
	}

	t.Log("✓ Enter toggles branch visibility")
}

func TestCollapseBranchKeepsSiblings(t *testing.T) {
	helper := NewTestHelper(writeSceneFixture(t))
	helper.SendWindowSize(100, 30)

	// Move to props and collapse it
	helper.SendKeyRune('j')
	helper.SendKey(tea.KeyEnter)

	names := helper.VisibleNames()
	want := []string{"level", "props", "player", "camera", "ui", "hud"}
	if len(names) != len(want) {
		t.Fatalf("expected rows %v, got %v", want, names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("expected rows %v, got %v", want, names)
		}
	}

	t.Log("✓ Collapsing a branch hides only its descendants")
}

func TestLeftCollapsesThenJumpsToParent(t *testing.T) {
	helper := NewTestHelper(writeSceneFixture(t))
	helper.SendWindowSize(100, 30)

	// On an expanded branch, left collapses
	helper.SendKeyRune('j') // props
	helper.SendKeyRune('h')
	model := helper.GetModel()
	if !model.collapsed[model.rows[model.cursor].index] {
		t.Fatal("expected props to be collapsed")
	}
	if got := helper.CurrentName(); got != "props" {
		t.Fatalf("cursor should stay on props, got %q", got)
	}

	// On a collapsed branch, left jumps to the parent
	helper.SendKeyRune('h')
	if got := helper.CurrentName(); got != "level" {
		t.Fatalf("expected cursor on level, got %q", got)
	}

	// Left now collapses the root, and a collapsed root has no parent to
	// jump to, so the cursor stays put
	helper.SendKeyRune('h')
	helper.SendKeyRune('h')
	if got := helper.CurrentName(); got != "level" {
		t.Fatalf("expected cursor to stay on level, got %q", got)
	}

	t.Log("✓ Left collapses, then walks toward the root")
}

func TestRightExpandsCollapsedBranch(t *testing.T) {
	helper := NewTestHelper(writeSceneFixture(t))
	helper.SendWindowSize(100, 30)

	helper.SendKeyRune('j') // props
	helper.SendKey(tea.KeyEnter)
	if got := len(helper.VisibleNames()); got != 6 {
		t.Fatalf("expected 6 rows after collapse, got %d", got)
	}

	helper.SendKeyRune('l')
	if got := len(helper.VisibleNames()); got != 8 {
		t.Fatalf("expected 8 rows after expand, got %d", got)
	}

	// Right on a leaf is a no-op
	helper.SendKeyRune('G')
	helper.SendKeyRune('l')
	if got := helper.CurrentName(); got != "hud" {
		t.Fatalf("expected cursor to stay on hud, got %q", got)
	}

	t.Log("✓ Right expands collapsed branches")
}

func TestExpandAllCollapseAll(t *testing.T) {
	helper := NewTestHelper(writeSceneFixture(t))
	helper.SendWindowSize(100, 30)

	helper.SendKeyRune('C')
	names := helper.VisibleNames()
	if len(names) != 2 || names[0] != "level" || names[1] != "ui" {
		t.Fatalf("expected only roots after collapse all, got %v", names)
	}

	helper.SendKeyRune('E')
	if got := len(helper.VisibleNames()); got != 8 {
		t.Fatalf("expected 8 rows after expand all, got %d", got)
	}

	t.Log("✓ Expand all and collapse all rebuild the row list")
}
