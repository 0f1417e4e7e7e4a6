// Package giohost runs a bridge layout tree in a Gio window.
//
// A Host is the tree's Scheduler, Canvas and touch source. Deferred work runs
// after each window event; frame callbacks run at the next FrameEvent. Draw
// passes are recorded into an operation list that is replayed every frame,
// and pointer events are converted to touch events in logical pixels.
//
//	w := app.NewWindow(app.Title("bridge"))
//	h, err := giohost.New(w, tree, giohost.WithBackground(white))
//	if err != nil {
//		return err
//	}
//	return h.Run(w)
package giohost
