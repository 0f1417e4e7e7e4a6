package bridge

import (
	"fmt"
	"image/color"
)

// RootOption is a functional option for configuring a RootLayout.
type RootOption func(*RootLayout) error

// WithScheduler sets the scheduler that runs layout, draw and timer
// callbacks. Required.
func WithScheduler(s Scheduler) RootOption {
	return func(r *RootLayout) error {
		if s == nil {
			return fmt.Errorf("scheduler must not be nil")
		}
		r.ctx.scheduler = s
		return nil
	}
}

// WithViewport sets the initial viewport in logical pixels.
func WithViewport(vp LayoutBox) RootOption {
	return func(r *RootLayout) error {
		if vp.Width < 0 || vp.Height < 0 {
			return fmt.Errorf("viewport size %vx%v must not be negative", vp.Width, vp.Height)
		}
		r.ctx.viewport = vp
		return nil
	}
}

// WithDevicePixelRatio sets the number of device pixels per logical pixel.
// Default is 1.
func WithDevicePixelRatio(dpr float32) RootOption {
	return func(r *RootLayout) error {
		if dpr <= 0 {
			return fmt.Errorf("device pixel ratio must be positive, got %v", dpr)
		}
		r.ctx.dpr = dpr
		return nil
	}
}

// WithClearColor fills the viewport with c before each draw instead of
// clearing it to transparent.
func WithClearColor(c color.NRGBA) RootOption {
	return func(r *RootLayout) error {
		r.ctx.clear = &c
		return nil
	}
}
