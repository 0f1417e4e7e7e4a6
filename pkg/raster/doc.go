// Package raster implements bridge.Canvas on an in-memory RGBA image.
//
// A Surface rasterizes paths with golang.org/x/image/vector and can be
// resized to track a RootLayout's backing store. It is useful for headless
// rendering, snapshots and golden-image tests:
//
//	s, _ := raster.New(raster.WithSize(200, 100))
//	root, _ := bridge.NewRootLayout(s, tree, bridge.WithScheduler(sched))
//	root.Resize(200, 100, 1)
//	sched.Flush()
//	_ = s.SavePNG("frame.png")
//
// Clipping is rectangular: Clip intersects the clip region with the device
// space bounding box of the current path.
package raster
