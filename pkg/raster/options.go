package raster

import "fmt"

// Option is a functional option for configuring a Surface.
type Option func(*Surface) error

// WithSize sets the initial image size in device pixels. Default is 0x0;
// RootLayout.Resize sets the size of a surface used as a backing store.
func WithSize(width, height int) Option {
	return func(s *Surface) error {
		if width < 0 || height < 0 {
			return fmt.Errorf("surface size %dx%d must not be negative", width, height)
		}
		s.width, s.height = width, height
		return nil
	}
}

// WithEllipseSegments sets the number of line segments used to approximate an
// ellipse. Default is 48. Must be at least 8.
func WithEllipseSegments(n int) Option {
	return func(s *Surface) error {
		if n < 8 {
			return fmt.Errorf("ellipse segments must be at least 8")
		}
		s.ellipseSegments = n
		return nil
	}
}
