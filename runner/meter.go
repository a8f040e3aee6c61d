package runner

import "time"

// Meter measures the wall-clock duration of single inference calls and
// reports the instantaneous frame rate 1/duration. It mirrors the tick
// meter pattern: Start/Stop around the timed call, Reset between frames.
type Meter struct {
	started time.Time
	last    time.Duration
}

// NewMeter returns a zeroed meter.
func NewMeter() *Meter { return &Meter{} }

// Start marks the beginning of a timed section.
func (m *Meter) Start() { m.started = time.Now() }

// Stop records the elapsed time since Start.
func (m *Meter) Stop() { m.last = time.Since(m.started) }

// FPS returns 1 over the last recorded duration, or 0 when nothing has
// been measured yet.
func (m *Meter) FPS() float64 {
	if m.last <= 0 {
		return 0
	}
	return 1 / m.last.Seconds()
}

// Reset clears the last measurement.
func (m *Meter) Reset() { m.last = 0 }
