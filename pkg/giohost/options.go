package giohost

import (
	"fmt"
	"image/color"
	"time"
)

// Option is a functional option for configuring a Host.
type Option func(*Host) error

// WithBackground fills the window with c before each draw. Default is
// opaque white.
func WithBackground(c color.NRGBA) Option {
	return func(h *Host) error {
		h.background = c
		return nil
	}
}

// WithClock sets the clock used before the first frame arrives.
// Default is time.Now.
func WithClock(now func() time.Time) Option {
	return func(h *Host) error {
		if now == nil {
			return fmt.Errorf("clock must not be nil")
		}
		h.clock = now
		return nil
	}
}

// WithEllipseSegments sets the number of line segments used to approximate
// an ellipse. Default is 48. Must be at least 8.
func WithEllipseSegments(n int) Option {
	return func(h *Host) error {
		if n < 8 {
			return fmt.Errorf("ellipse segments must be at least 8")
		}
		h.canvas.ellipseSegments = n
		return nil
	}
}
