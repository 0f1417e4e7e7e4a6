package main

import (
	"fmt"
	"os"

	"gioui.org/app"

	"github.com/perigean/bridge-sub001/internal/debug"
	"github.com/perigean/bridge-sub001/pkg/giohost"
)

// runWindow opens the demo window. app.Main takes over the main goroutine
// and never returns.
func runWindow() {
	go func() {
		w := app.NewWindow(app.Title("bridge demo"))
		h, err := giohost.New(w, demoTree(0), giohost.WithBackground(white))
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		if err := h.Run(w); err != nil {
			debug.Log("demo: window closed: %v", err)
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		os.Exit(0)
	}()
	app.Main()
}
