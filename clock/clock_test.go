package clock

import (
	"math"
	"strings"
	"testing"
	"time"
)

type fakeTime struct{ now time.Time }

func (f *fakeTime) Now() time.Time          { return f.now }
func (f *fakeTime) advance(d time.Duration) { f.now = f.now.Add(d) }

func TestTickSamplesOnlyAfterInterval(t *testing.T) {
	ft := &fakeTime{now: time.Unix(100, 0)}
	c := New(ft.Now)

	for i := 0; i < 3; i++ {
		ft.advance(10 * time.Millisecond)
		if c.Tick() {
			t.Fatalf("Tick() sampled after %d short frames", i+1)
		}
	}
	if got := c.Timing().FPS; got != 0 {
		t.Fatalf("FPS = %v before first sample, want 0", got)
	}

	ft.advance(10 * time.Millisecond) // 40ms total
	if !c.Tick() {
		t.Fatal("Tick() did not sample after 40ms")
	}

	tm := c.Timing()
	if tm.Delta != 40*time.Millisecond {
		t.Fatalf("Delta = %v, want 40ms", tm.Delta)
	}
	if math.Abs(tm.FPS-100) > 1e-9 {
		t.Fatalf("FPS = %v, want 100", tm.FPS)
	}
	if math.Abs(tm.AvgFrameMs-10) > 1e-9 {
		t.Fatalf("AvgFrameMs = %v, want 10", tm.AvgFrameMs)
	}
	if tm.Frames != 0 {
		t.Fatalf("Frames = %d after sample, want 0", tm.Frames)
	}
	if !tm.LastSample.Equal(ft.now) {
		t.Fatalf("LastSample = %v, want %v", tm.LastSample, ft.now)
	}
}

func TestTickExactIntervalSamples(t *testing.T) {
	ft := &fakeTime{now: time.Unix(0, 0)}
	c := New(ft.Now)

	ft.advance(SampleInterval)
	if !c.Tick() {
		t.Fatal("Tick() at exactly SampleInterval did not sample")
	}
	ft.advance(SampleInterval - time.Nanosecond)
	if c.Tick() {
		t.Fatal("Tick() sampled before a full interval elapsed")
	}
}

func TestTickNeverSamplesTwicePerInterval(t *testing.T) {
	ft := &fakeTime{now: time.Unix(0, 0)}
	c := New(ft.Now)

	samples := 0
	for i := 0; i < 1000; i++ {
		ft.advance(time.Millisecond)
		if c.Tick() {
			samples++
		}
	}
	// One second of 1ms frames: at most 30 samples.
	if samples > 30 || samples < 29 {
		t.Fatalf("samples = %d over 1s, want ~30", samples)
	}
}

func TestTitle(t *testing.T) {
	ft := &fakeTime{now: time.Unix(0, 0)}
	c := New(ft.Now)
	ft.advance(50 * time.Millisecond)
	c.Tick()

	title := c.Title()
	if !strings.HasPrefix(title, "Goxel2 - 20.000000 fps | 50.000000 ms") {
		t.Fatalf("Title() = %q", title)
	}
}
