package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/joshuapare/arenakit/scene"
)

// writeTestScene builds a small rig, saves it under a temp dir, and returns
// the file path. Because inserts prepend, siblings store in reverse order:
//
//	level
//	  props
//	    crate.1
//	    crate.0
//	  player
//	    camera
func writeTestScene(t *testing.T) string {
	t.Helper()

	g := scene.NewGraph()
	build := func(err error) {
		t.Helper()
		if err != nil {
			t.Fatalf("failed to build test scene: %v", err)
		}
	}
	build(g.AddRoot("level"))
	build(g.Add("player", "level"))
	build(g.Add("camera", "player"))
	build(g.Add("props", "level"))
	build(g.Add("crate.0", "props"))
	build(g.Add("crate.1", "props"))
	build(g.SetLocal("player", scene.Pose{X: 4, Z: -2, Scale: 1}))
	g.UpdateWorld()

	path := filepath.Join(t.TempDir(), "scene.json")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create scene file: %v", err)
	}
	defer f.Close()
	if err := g.Save(f); err != nil {
		t.Fatalf("failed to save scene file: %v", err)
	}
	return path
}

// captureOutput captures stdout while running a function
func captureOutput(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	// Save original stdout
	origStdout := os.Stdout

	// Create a pipe to capture output
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}

	// Redirect stdout to pipe
	os.Stdout = w

	// Run function
	fnErr := fn()

	// Close write end and restore stdout
	w.Close()
	os.Stdout = origStdout

	// Read captured output
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		t.Fatalf("failed to read output: %v", err)
	}

	return buf.String(), fnErr
}

// assertJSON checks that output is valid JSON
func assertJSON(t *testing.T, output string) {
	t.Helper()
	var result interface{}
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Errorf("invalid JSON output: %v\nOutput: %s", err, output)
	}
}

// assertContains checks that output contains all expected strings
func assertContains(t *testing.T, output string, expected []string) {
	t.Helper()
	for _, want := range expected {
		if !strings.Contains(output, want) {
			t.Errorf("output missing expected string %q\nGot: %s", want, output)
		}
	}
}

// assertNotContains checks that output doesn't contain unwanted strings
func assertNotContains(t *testing.T, output string, unwanted []string) {
	t.Helper()
	for _, dont := range unwanted {
		if strings.Contains(output, dont) {
			t.Errorf("output contains unwanted string %q\nGot: %s", dont, output)
		}
	}
}
