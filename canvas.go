package bridge

import "image/color"

// Canvas is the immediate-mode 2D drawing surface the tree paints into.
// Coordinates are transformed by the current Translate/Scale state, which is
// saved and restored with Save/Restore along with the clip and styles.
type Canvas interface {
	SetFillColor(c color.NRGBA)
	SetStrokeColor(c color.NRGBA)
	SetLineWidth(w float32)

	FillRect(x, y, w, h float32)
	StrokeRect(x, y, w, h float32)
	ClearRect(x, y, w, h float32)

	BeginPath()
	MoveTo(x, y float32)
	LineTo(x, y float32)
	Rect(x, y, w, h float32)
	Ellipse(cx, cy, rx, ry float32)
	ClosePath()
	Fill()
	Stroke()
	Clip()

	Save()
	Restore()
	Translate(x, y float32)
	Scale(x, y float32)
}

// BackingStore is implemented by canvases whose pixel storage must track the
// logical viewport size and device pixel ratio.
type BackingStore interface {
	// SetBackingSize resizes the pixel storage to width x height device pixels.
	SetBackingSize(width, height int)
}
