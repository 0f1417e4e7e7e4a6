// Package main is a demo of the bridge layout tree.
//
// Usage:
//
//	bridge-demo run                  Open an interactive window
//	bridge-demo render [options]     Render every page to PNG files
//	bridge-demo help                 Show help
package main

import (
	"fmt"
	"os"

	"github.com/perigean/bridge-sub001/internal/debug"
)

const version = "0.1.0"

const usage = `bridge-demo - touch layout tree demo

Usage:
  bridge-demo <command> [options]

Commands:
  run         Open an interactive window
  render      Render every demo page to PNG files
  version     Print version information
  help        Show this help message

Render options:
  -o prefix   Output file prefix (default "page")
  -w width    Width in logical pixels (default 360)
  -h height   Height in logical pixels (default 640)
  -dpr ratio  Device pixel ratio (default 2)

Set BRIDGE_DEBUG=/path/to/log to write debug logs.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Print(usage)
		os.Exit(1)
	}
	defer debug.Close()

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "run":
		runWindow()
	case "render":
		if err := runRender(args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "version":
		fmt.Printf("bridge-demo %s\n", version)
	case "help", "-h", "--help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", command)
		fmt.Print(usage)
		os.Exit(1)
	}
}
