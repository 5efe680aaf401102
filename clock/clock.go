package clock

import (
	"fmt"
	"time"

	"goxel/internal/buildinfo"
)

// SampleInterval is the minimum time between two FPS samples.
const SampleInterval = time.Second / 30

// Timing is the last window-averaged sample.
type Timing struct {
	LastSample time.Time
	Frames     int
	Delta      time.Duration
	AvgFrameMs float64
	FPS        float64
}

// Clock counts loop iterations and derives a stable FPS figure from them.
// It does not pace the loop.
type Clock struct {
	now func() time.Time
	t   Timing
}

// New returns a clock reading time from now, or time.Now when nil.
func New(now func() time.Time) *Clock {
	if now == nil {
		now = time.Now
	}
	return &Clock{now: now, t: Timing{LastSample: now()}}
}

// Tick counts one iteration and reports whether a new sample was taken.
func (c *Clock) Tick() bool {
	now := c.now()
	c.t.Frames++

	elapsed := now.Sub(c.t.LastSample)
	if elapsed < SampleInterval {
		return false
	}

	secs := elapsed.Seconds()
	c.t.Delta = elapsed
	c.t.FPS = float64(c.t.Frames) / secs
	c.t.AvgFrameMs = secs / float64(c.t.Frames) * 1000
	c.t.LastSample = now
	c.t.Frames = 0
	return true
}

// Timing returns the current state.
func (c *Clock) Timing() Timing { return c.t }

// Title formats the diagnostic window title for the last sample.
func (c *Clock) Title() string {
	return fmt.Sprintf("%s - %f fps | %f ms", buildinfo.Product, c.t.FPS, c.t.AvgFrameMs)
}
