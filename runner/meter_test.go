package runner

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMeterReportsInverseDuration(t *testing.T) {
	m := NewMeter()
	assert.Zero(t, m.FPS(), "no measurement yet")

	m.Start()
	time.Sleep(20 * time.Millisecond)
	m.Stop()

	fps := m.FPS()
	assert.Greater(t, fps, 0.0)
	assert.Less(t, fps, 50.0, "a 20ms+ inference cannot exceed 50 FPS")
}

func TestMeterReset(t *testing.T) {
	m := NewMeter()
	m.Start()
	m.Stop()
	m.Reset()

	assert.Zero(t, m.FPS())
}
