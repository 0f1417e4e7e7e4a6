package main

import (
	"context"
	"flag"
	"fmt"

	"golang.org/x/sync/errgroup"

	bridge "github.com/perigean/bridge-sub001"
	"github.com/perigean/bridge-sub001/internal/debug"
	"github.com/perigean/bridge-sub001/pkg/raster"
)

type renderConfig struct {
	prefix string
	width  float64
	height float64
	dpr    float64
}

func parseRenderFlags(args []string) (renderConfig, error) {
	var cfg renderConfig
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	fs.StringVar(&cfg.prefix, "o", "page", "output file prefix")
	fs.Float64Var(&cfg.width, "w", 360, "width in logical pixels")
	fs.Float64Var(&cfg.height, "h", 640, "height in logical pixels")
	fs.Float64Var(&cfg.dpr, "dpr", 2, "device pixel ratio")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if cfg.width <= 0 || cfg.height <= 0 {
		return cfg, fmt.Errorf("size %vx%v must be positive", cfg.width, cfg.height)
	}
	if cfg.dpr <= 0 {
		return cfg, fmt.Errorf("device pixel ratio must be positive, got %v", cfg.dpr)
	}
	return cfg, nil
}

// runRender renders every page concurrently, one tree per page.
func runRender(args []string) error {
	cfg, err := parseRenderFlags(args)
	if err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(context.Background())
	for page := 0; page < pageCount; page++ {
		g.Go(func() error {
			path := fmt.Sprintf("%s-%d.png", cfg.prefix, page)
			if err := renderPage(ctx, page, cfg, path); err != nil {
				return fmt.Errorf("page %d: %w", page, err)
			}
			fmt.Printf("wrote %s\n", path)
			return nil
		})
	}
	return g.Wait()
}

// renderPage runs one tree on its own Loop: the resize pass, then the save,
// then the loop stops.
func renderPage(ctx context.Context, page int, cfg renderConfig, path string) error {
	surface, err := raster.New()
	if err != nil {
		return err
	}
	loop, err := bridge.NewLoop()
	if err != nil {
		return err
	}
	root, err := bridge.NewRootLayout(surface, demoTree(page),
		bridge.WithScheduler(loop),
		bridge.WithClearColor(white),
	)
	if err != nil {
		return err
	}

	var saveErr error
	loop.QueueUpdate(func() {
		root.Resize(float32(cfg.width), float32(cfg.height), float32(cfg.dpr))
	})
	loop.QueueUpdate(func() {
		saveErr = surface.SavePNG(path)
		debug.Log("demo: rendered page %d", page)
		loop.Stop()
	})
	if err := loop.Run(ctx); err != nil {
		return err
	}
	return saveErr
}
