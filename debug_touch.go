package bridge

import "image/color"

// DebugTouchState records the gestures a DebugTouch node has seen.
type DebugTouchState struct {
	Fill   color.NRGBA
	Stroke color.NRGBA
	Taps   []Point
	Pans   [][]PanPoint
}

// DebugTouch returns a WSHS box that draws every tap as a circle and every pan
// batch as line segments from previous to current positions.
func DebugTouch(width, height float32, fill, stroke color.NRGBA) *BoxLayout {
	b := Box(width, height)
	b.State = &DebugTouchState{Fill: fill, Stroke: stroke}
	b.OnDraw(drawDebugTouch)
	b.OnTap(func(p Point, ec ElementContext, state any) {
		s := state.(*DebugTouchState)
		s.Taps = append(s.Taps, p)
		ec.RequestDraw()
	})
	b.OnPan(func(ps []PanPoint, ec ElementContext, state any) {
		s := state.(*DebugTouchState)
		s.Pans = append(s.Pans, ps)
		ec.RequestDraw()
	})
	return b
}

func drawDebugTouch(ctx Canvas, box LayoutBox, _ ElementContext, _ LayoutBox, state any) {
	s := state.(*DebugTouchState)
	ctx.SetFillColor(s.Fill)
	ctx.FillRect(box.Left, box.Top, box.Width, box.Height)

	ctx.SetStrokeColor(s.Stroke)
	ctx.SetLineWidth(2)
	ctx.BeginPath()
	for _, ps := range s.Pans {
		for _, p := range ps {
			ctx.MoveTo(p.Prev.X, p.Prev.Y)
			ctx.LineTo(p.Curr.X, p.Curr.Y)
		}
	}
	for _, t := range s.Taps {
		ctx.MoveTo(t.X+16, t.Y)
		ctx.Ellipse(t.X, t.Y, 16, 16)
	}
	ctx.Stroke()
}
