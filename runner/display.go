package runner

import (
	"time"

	"gocv.io/x/gocv"
)

// pollInterval is how long stream mode waits for a key before processing
// the next frame.
const pollInterval = time.Millisecond

// Display shows rendered frames and polls for key presses. Stream mode
// polls cooperatively with a short timeout; image mode blocks until a key
// arrives.
type Display interface {
	Show(img gocv.Mat)
	// Wait blocks until a key is pressed.
	Wait()
	// Poll waits up to the given duration and returns the pressed key
	// code, or a negative value when none arrived.
	Poll(timeout time.Duration) int
	Close() error
}

// DisplayFactory opens a named display window.
type DisplayFactory func(title string) Display

type windowDisplay struct {
	win *gocv.Window
}

// NewWindow opens a gocv window display.
func NewWindow(title string) Display {
	return &windowDisplay{win: gocv.NewWindow(title)}
}

func (d *windowDisplay) Show(img gocv.Mat) {
	d.win.IMShow(img)
}

func (d *windowDisplay) Wait() {
	d.win.WaitKey(0)
}

func (d *windowDisplay) Poll(timeout time.Duration) int {
	ms := int(timeout / time.Millisecond)
	if ms < 1 {
		ms = 1
	}
	return d.win.WaitKey(ms)
}

func (d *windowDisplay) Close() error {
	return d.win.Close()
}
