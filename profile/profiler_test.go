package profile

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock advances only when told to, making interval math exact.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestProfiler() (*Profiler, *fakeClock) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	p := NewProfiler()
	p.now = clock.now
	return p, clock
}

func Test_StartStop_AccumulatesIntervals(t *testing.T) {
	p, clock := newTestProfiler()

	p.Start("frame")
	clock.advance(16 * time.Millisecond)
	p.Stop("frame")

	p.Start("frame")
	clock.advance(18 * time.Millisecond)
	p.Stop("frame")

	a, ok := p.Total("frame")
	require.True(t, ok)
	assert.InDelta(t, 34.0, a.TotalMS, 1e-9)
	assert.Equal(t, 2, a.Count)
	assert.InDelta(t, 17.0, a.AvgMS(), 1e-9)
}

func Test_Subtasks_TrackedSeparately(t *testing.T) {
	p, clock := newTestProfiler()

	p.Start("frame")
	p.StartTask("frame", "update")
	clock.advance(4 * time.Millisecond)
	p.StopTask("frame", "update")
	p.StartTask("frame", "render")
	clock.advance(12 * time.Millisecond)
	p.StopTask("frame", "render")
	p.Stop("frame")

	total, ok := p.Total("frame")
	require.True(t, ok)
	assert.InDelta(t, 16.0, total.TotalMS, 1e-9)

	update, ok := p.Task("frame", "update")
	require.True(t, ok)
	assert.InDelta(t, 4.0, update.TotalMS, 1e-9)
	assert.Equal(t, 1, update.Count)

	render, ok := p.Task("frame", "render")
	require.True(t, ok)
	assert.InDelta(t, 12.0, render.TotalMS, 1e-9)
}

func Test_Stop_WithoutStart_IsNoOp(t *testing.T) {
	p, _ := newTestProfiler()

	p.Stop("never")
	_, ok := p.Total("never")
	assert.False(t, ok)
}

func Test_Start_Twice_RestartsInterval(t *testing.T) {
	p, clock := newTestProfiler()

	p.Start("op")
	clock.advance(100 * time.Millisecond)
	p.Start("op") // discard the first start
	clock.advance(5 * time.Millisecond)
	p.Stop("op")

	a, ok := p.Total("op")
	require.True(t, ok)
	assert.InDelta(t, 5.0, a.TotalMS, 1e-9)
	assert.Equal(t, 1, a.Count)
}

func Test_Reset_DropsCategoryAndSubtasks(t *testing.T) {
	p, clock := newTestProfiler()

	p.Start("frame")
	p.StartTask("frame", "update")
	clock.advance(time.Millisecond)
	p.StopTask("frame", "update")
	p.Stop("frame")

	p.Start("other")
	clock.advance(time.Millisecond)
	p.Stop("other")

	p.Reset("frame")

	_, ok := p.Total("frame")
	assert.False(t, ok)
	_, ok = p.Task("frame", "update")
	assert.False(t, ok)
	_, ok = p.Total("other")
	assert.True(t, ok, "reset is scoped to one category")
}

func Test_Report_Layout(t *testing.T) {
	p, clock := newTestProfiler()

	p.Start("frame")
	p.StartTask("frame", "update")
	clock.advance(12 * time.Millisecond)
	p.StopTask("frame", "update")
	p.StartTask("frame", "render")
	clock.advance(21600 * time.Microsecond)
	p.StopTask("frame", "render")
	p.Stop("frame")

	var sb strings.Builder
	require.NoError(t, p.Report(&sb, "frame"))
	out := sb.String()

	assert.Contains(t, out, "frame: 33.60 ms over 1 runs (avg 33.60 ms)")
	assert.Contains(t, out, "  render: 21.60 ms, 1 runs, avg 21.60 ms, 64.3%")
	assert.Contains(t, out, "  update: 12.00 ms, 1 runs, avg 12.00 ms, 35.7%")

	// Sorted by subtask name.
	assert.Less(t, strings.Index(out, "render"), strings.Index(out, "update"))
}

func Test_Report_SubtasksWithoutCategoryTotal(t *testing.T) {
	p, clock := newTestProfiler()

	p.StartTask("io", "read")
	clock.advance(3 * time.Millisecond)
	p.StopTask("io", "read")

	var sb strings.Builder
	require.NoError(t, p.Report(&sb, "io"))
	assert.Contains(t, sb.String(), "io: 3.00 ms (subtask sum)")
	assert.Contains(t, sb.String(), "read: 3.00 ms, 1 runs, avg 3.00 ms, 100.0%")
}

func Test_Report_NoSamples(t *testing.T) {
	p, _ := newTestProfiler()

	var sb strings.Builder
	require.NoError(t, p.Report(&sb, "empty"))
	assert.Equal(t, "empty: no samples\n", sb.String())
}

func Test_DefaultProfiler_PackageFuncs(t *testing.T) {
	Reset("pkgtest")

	Start("pkgtest")
	StartTask("pkgtest", "step")
	StopTask("pkgtest", "step")
	Stop("pkgtest")

	a, ok := Default().Total("pkgtest")
	require.True(t, ok)
	assert.Equal(t, 1, a.Count)

	var sb strings.Builder
	require.NoError(t, Report(&sb, "pkgtest"))
	assert.Contains(t, sb.String(), "pkgtest:")

	Reset("pkgtest")
}
