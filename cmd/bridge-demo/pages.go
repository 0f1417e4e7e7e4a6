package main

import (
	"image/color"

	bridge "github.com/perigean/bridge-sub001"
)

var (
	white     = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	paper     = color.NRGBA{R: 0xf4, G: 0xf1, B: 0xe8, A: 0xff}
	ink       = color.NRGBA{R: 0x22, G: 0x22, B: 0x2a, A: 0xff}
	accent    = color.NRGBA{R: 0x2f, G: 0x6f, B: 0xd0, A: 0xff}
	highlight = color.NRGBA{R: 0xe8, G: 0x5d, B: 0x3f, A: 0xff}
	tabColors = []color.NRGBA{
		{R: 0xd9, G: 0xe4, B: 0xf5, A: 0xff},
		{R: 0xdc, G: 0xef, B: 0xdc, A: 0xff},
		{R: 0xf5, G: 0xe3, B: 0xd6, A: 0xff},
	}
)

const pageCount = 3

// demoTree returns the demo root: a tab bar along the bottom switching
// between the pages above it.
func demoTree(page int) bridge.WPHPLayout {
	pages := make([]bridge.WPHPLayout, pageCount)
	pages[0] = scrollPage()
	pages[1] = dragPage()
	pages[2] = bridge.Border(4, ink, bridge.Center(bridge.DebugTouch(240, 240, white, highlight)))
	sw := bridge.Switch(page, pages...)

	tabs := make([]*bridge.FlexLayout, pageCount)
	for i := range tabs {
		tabs[i] = bridge.FlexWithChild(0, 1, tab(i, sw))
	}
	return bridge.Bottom(
		bridge.FlexWithChild(56, 0, bridge.Left(tabs...)),
		bridge.FlexWithChild(0, 1, sw),
	)
}

type tabState struct {
	index int
	sw    *bridge.SwitchLayout
}

func tab(i int, sw *bridge.SwitchLayout) bridge.WPHPLayout {
	f := bridge.Fill()
	f.State = &tabState{index: i, sw: sw}
	f.OnDraw(drawTab)
	f.OnTap(func(_ bridge.Point, ec bridge.ElementContext, state any) {
		s := state.(*tabState)
		s.sw.Set(s.index, ec)
	})
	return bridge.Border(1, ink, f)
}

func drawTab(ctx bridge.Canvas, box bridge.LayoutBox, _ bridge.ElementContext, _ bridge.LayoutBox, state any) {
	s := state.(*tabState)
	ctx.SetFillColor(tabColors[s.index%len(tabColors)])
	ctx.FillRect(box.Left, box.Top, box.Width, box.Height)
	if s.sw.Current() == s.index {
		ctx.SetFillColor(accent)
		ctx.FillRect(box.Left, box.Top, box.Width, 4)
	}
}

// dragPage is a field of draggable tiles.
func dragPage() bridge.WPHPLayout {
	tiles := make([]bridge.PositionedLayout, 0, 6)
	for i := 0; i < 6; i++ {
		body := bridge.Fill()
		body.State = tabColors[i%len(tabColors)]
		body.OnDraw(func(ctx bridge.Canvas, box bridge.LayoutBox, _ bridge.ElementContext, _ bridge.LayoutBox, state any) {
			ctx.SetFillColor(state.(color.NRGBA))
			ctx.FillRect(box.Left, box.Top, box.Width, box.Height)
		})
		left := float32(24 + (i%2)*160)
		top := float32(24 + (i/2)*140)
		tiles = append(tiles, bridge.DraggableWithChild(left, top, 120, 100, bridge.Border(2, ink, body)))
	}
	return bridge.Layer(bridge.Fill(), bridge.Relative(tiles...))
}

// scrollPage is a large grid with touch pads on it, in a pannable,
// zoomable viewport. Touches between the pads scroll.
func scrollPage() bridge.WPHPLayout {
	grid := bridge.Fill()
	grid.OnDraw(drawGrid)
	pads := bridge.Relative(
		bridge.PositionWithChild(100, 100, 300, 300, bridge.Center(bridge.DebugTouch(300, 300, white, accent))),
		bridge.PositionWithChild(600, 900, 400, 300, bridge.Center(bridge.DebugTouch(400, 300, white, highlight))),
	)
	content := bridge.BoxWithChild(1200, 1600, bridge.Layer(grid, pads))
	return bridge.Scroll(content, bridge.WithZoomMax(4))
}

const gridStep = 100

// drawGrid draws the grid lines that fall inside the visible window.
func drawGrid(ctx bridge.Canvas, box bridge.LayoutBox, _ bridge.ElementContext, vp bridge.LayoutBox, _ any) {
	ctx.SetFillColor(paper)
	ctx.FillRect(box.Left, box.Top, box.Width, box.Height)
	ctx.SetStrokeColor(ink)
	ctx.SetLineWidth(1)
	ctx.BeginPath()
	first := func(v float32) float32 {
		return float32(int(max(v, 0)/gridStep)) * gridStep
	}
	for x := first(vp.Left); x <= min(vp.Right(), box.Right()); x += gridStep {
		ctx.MoveTo(x, max(vp.Top, box.Top))
		ctx.LineTo(x, min(vp.Bottom(), box.Bottom()))
	}
	for y := first(vp.Top); y <= min(vp.Bottom(), box.Bottom()); y += gridStep {
		ctx.MoveTo(max(vp.Left, box.Left), y)
		ctx.LineTo(min(vp.Right(), box.Right()), y)
	}
	ctx.Stroke()
}
