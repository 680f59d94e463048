package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/joshuapare/arenakit/scene"
)

// writeSceneFixture saves a two-root forest and returns the file path.
// Inserts prepend, so siblings store in reverse order:
//
//	level
//	  props
//	    crate.1
//	    crate.0
//	  player
//	    camera
//	ui
//	  hud
func writeSceneFixture(t *testing.T) string {
	t.Helper()

	g := scene.NewGraph()
	build := func(err error) {
		t.Helper()
		if err != nil {
			t.Fatalf("failed to build fixture: %v", err)
		}
	}
	build(g.AddRoot("level"))
	build(g.Add("player", "level"))
	build(g.Add("camera", "player"))
	build(g.Add("props", "level"))
	build(g.Add("crate.0", "props"))
	build(g.Add("crate.1", "props"))
	build(g.AddRoot("ui"))
	build(g.Add("hud", "ui"))
	build(g.SetLocal("player", scene.Pose{X: 4, Z: -2, Yaw: 0.5, Scale: 1}))
	g.UpdateWorld()

	path := filepath.Join(t.TempDir(), "scene.json")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create fixture file: %v", err)
	}
	defer f.Close()
	if err := g.Save(f); err != nil {
		t.Fatalf("failed to save fixture: %v", err)
	}
	return path
}

func TestModelLoadsScene(t *testing.T) {
	helper := NewTestHelper(writeSceneFixture(t))
	helper.SendWindowSize(100, 30)

	model := helper.GetModel()
	if model.err != nil {
		t.Fatalf("unexpected load error: %v", model.err)
	}

	names := helper.VisibleNames()
	want := []string{"level", "props", "crate.1", "crate.0", "player", "camera", "ui", "hud"}
	if len(names) != len(want) {
		t.Fatalf("expected %d rows, got %d: %v", len(want), len(names), names)
	}
	for i, name := range want {
		if names[i] != name {
			t.Errorf("row %d: expected %q, got %q", i, name, names[i])
		}
	}

	if got := helper.CurrentName(); got != "level" {
		t.Errorf("cursor should start on the first root, got %q", got)
	}

	t.Log("✓ Scene loaded with all rows expanded")
}

func TestModelReportsLoadError(t *testing.T) {
	helper := NewTestHelper(filepath.Join(t.TempDir(), "no-such.json"))

	model := helper.GetModel()
	if model.err == nil {
		t.Fatal("expected a load error for a missing file")
	}

	t.Log("✓ Missing scene surfaces as a model error")
}

func TestNodePathBuildsFullPath(t *testing.T) {
	helper := NewTestHelper(writeSceneFixture(t))

	model := helper.GetModel()
	for _, tc := range []struct {
		rowIdx int
		want   string
	}{
		{0, "level"},
		{3, "level/props/crate.0"},
		{5, "level/player/camera"},
		{7, "ui/hud"},
	} {
		r := model.rows[tc.rowIdx]
		if got := model.nodePath(r.index); got != tc.want {
			t.Errorf("row %d: expected path %q, got %q", tc.rowIdx, tc.want, got)
		}
	}

	t.Log("✓ Node paths assemble root to leaf")
}
