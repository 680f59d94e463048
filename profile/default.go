package profile

import "io"

var def = NewProfiler()

// Default returns the shared package-level profiler.
func Default() *Profiler { return def }

// Start opens an interval for category on the default profiler.
func Start(category string) { def.Start(category) }

// StartTask opens a subtask interval on the default profiler.
func StartTask(category, subtask string) { def.StartTask(category, subtask) }

// Stop closes a category interval on the default profiler.
func Stop(category string) { def.Stop(category) }

// StopTask closes a subtask interval on the default profiler.
func StopTask(category, subtask string) { def.StopTask(category, subtask) }

// Report writes the category's report from the default profiler.
func Report(w io.Writer, category string) error { return def.Report(w, category) }

// Reset drops the category from the default profiler.
func Reset(category string) { def.Reset(category) }
