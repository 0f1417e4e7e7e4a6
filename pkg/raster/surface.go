package raster

import (
	"image"
	"image/color"
	"image/draw"
	"io"
	"math"

	"gioui.org/f32"
	"github.com/disintegration/imaging"
	"golang.org/x/image/vector"

	bridge "github.com/perigean/bridge-sub001"
	"github.com/perigean/bridge-sub001/internal/debug"
)

type state struct {
	transform f32.Affine2D
	clip      image.Rectangle
	fill      color.NRGBA
	stroke    color.NRGBA
	lineWidth float32
}

// subpath is a polyline in device space.
type subpath struct {
	pts    []f32.Point
	closed bool
}

// Surface is a bridge.Canvas drawing into an *image.RGBA.
type Surface struct {
	width, height   int
	ellipseSegments int

	img   *image.RGBA
	cur   state
	stack []state
	path  []subpath
	z     vector.Rasterizer
}

var (
	_ bridge.Canvas       = (*Surface)(nil)
	_ bridge.BackingStore = (*Surface)(nil)
)

// New returns a transparent surface.
func New(opts ...Option) (*Surface, error) {
	s := &Surface{ellipseSegments: 48}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}
	s.SetBackingSize(s.width, s.height)
	return s, nil
}

// Image returns the backing image. It is replaced by SetBackingSize.
func (s *Surface) Image() *image.RGBA {
	return s.img
}

// SetBackingSize replaces the image with a transparent one of the given size
// and resets the drawing state.
func (s *Surface) SetBackingSize(width, height int) {
	debug.Log("raster: backing size %dx%d", width, height)
	s.width, s.height = width, height
	s.img = image.NewRGBA(image.Rect(0, 0, width, height))
	s.cur = state{
		clip:      s.img.Bounds(),
		fill:      color.NRGBA{A: 0xff},
		stroke:    color.NRGBA{A: 0xff},
		lineWidth: 1,
	}
	s.stack = s.stack[:0]
	s.path = nil
}

func (s *Surface) SetFillColor(c color.NRGBA)   { s.cur.fill = c }
func (s *Surface) SetStrokeColor(c color.NRGBA) { s.cur.stroke = c }
func (s *Surface) SetLineWidth(w float32)       { s.cur.lineWidth = w }

func (s *Surface) Save() {
	s.stack = append(s.stack, s.cur)
}

// Restore pops the state pushed by the matching Save. Unbalanced calls are
// ignored.
func (s *Surface) Restore() {
	if len(s.stack) == 0 {
		return
	}
	s.cur = s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
}

func (s *Surface) Translate(x, y float32) {
	s.cur.transform = s.cur.transform.Mul(f32.Affine2D{}.Offset(f32.Pt(x, y)))
}

func (s *Surface) Scale(x, y float32) {
	s.cur.transform = s.cur.transform.Mul(f32.Affine2D{}.Scale(f32.Point{}, f32.Pt(x, y)))
}

func (s *Surface) BeginPath() {
	s.path = s.path[:0]
}

func (s *Surface) MoveTo(x, y float32) {
	s.path = append(s.path, subpath{pts: []f32.Point{s.device(x, y)}})
}

func (s *Surface) LineTo(x, y float32) {
	if len(s.path) == 0 || s.path[len(s.path)-1].closed {
		s.MoveTo(x, y)
		return
	}
	sp := &s.path[len(s.path)-1]
	sp.pts = append(sp.pts, s.device(x, y))
}

func (s *Surface) ClosePath() {
	if len(s.path) > 0 {
		s.path[len(s.path)-1].closed = true
	}
}

func (s *Surface) Rect(x, y, w, h float32) {
	s.path = append(s.path, s.rectPath(x, y, w, h))
}

// Ellipse adds a closed subpath approximating the axis-aligned ellipse.
func (s *Surface) Ellipse(cx, cy, rx, ry float32) {
	n := s.ellipseSegments
	pts := make([]f32.Point, n)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = s.device(cx+rx*float32(math.Cos(a)), cy+ry*float32(math.Sin(a)))
	}
	s.path = append(s.path, subpath{pts: pts, closed: true})
}

func (s *Surface) Fill() {
	s.fillPath(s.path, s.cur.fill)
}

func (s *Surface) Stroke() {
	s.strokePath(s.path, s.cur.stroke)
}

// Clip intersects the clip region with the bounding box of the current path.
func (s *Surface) Clip() {
	s.cur.clip = s.cur.clip.Intersect(pathBounds(s.path))
}

func (s *Surface) FillRect(x, y, w, h float32) {
	s.fillPath([]subpath{s.rectPath(x, y, w, h)}, s.cur.fill)
}

func (s *Surface) StrokeRect(x, y, w, h float32) {
	s.strokePath([]subpath{s.rectPath(x, y, w, h)}, s.cur.stroke)
}

// ClearRect sets the pixels under the rectangle's bounding box to
// transparent.
func (s *Surface) ClearRect(x, y, w, h float32) {
	r := pathBounds([]subpath{s.rectPath(x, y, w, h)}).Intersect(s.cur.clip)
	draw.Draw(s.img, r, image.Transparent, image.Point{}, draw.Src)
}

// Snapshot returns a copy of the image scaled to width x height. A zero
// dimension preserves the aspect ratio.
func (s *Surface) Snapshot(width, height int) *image.NRGBA {
	return imaging.Resize(s.img, width, height, imaging.Lanczos)
}

// SavePNG writes the image to path. The format is taken from the extension.
func (s *Surface) SavePNG(path string) error {
	return imaging.Save(s.img, path)
}

// EncodePNG writes the image to w as a PNG.
func (s *Surface) EncodePNG(w io.Writer) error {
	return imaging.Encode(w, s.img, imaging.PNG)
}

func (s *Surface) device(x, y float32) f32.Point {
	return s.cur.transform.Transform(f32.Pt(x, y))
}

func (s *Surface) rectPath(x, y, w, h float32) subpath {
	return subpath{
		pts: []f32.Point{
			s.device(x, y),
			s.device(x+w, y),
			s.device(x+w, y+h),
			s.device(x, y+h),
		},
		closed: true,
	}
}

// lineScale is the factor the current transform applies to lengths.
func (s *Surface) lineScale() float32 {
	o := s.cur.transform.Transform(f32.Point{})
	ux := s.cur.transform.Transform(f32.Pt(1, 0)).Sub(o)
	uy := s.cur.transform.Transform(f32.Pt(0, 1)).Sub(o)
	det := ux.X*uy.Y - ux.Y*uy.X
	return float32(math.Sqrt(math.Abs(float64(det))))
}

func (s *Surface) fillPath(path []subpath, c color.NRGBA) {
	clip := s.cur.clip
	if clip.Empty() || c.A == 0 {
		return
	}
	off := f32.Pt(float32(clip.Min.X), float32(clip.Min.Y))
	s.z.Reset(clip.Dx(), clip.Dy())
	s.z.DrawOp = draw.Over
	drawn := false
	for _, sp := range path {
		if len(sp.pts) < 3 {
			continue
		}
		p := sp.pts[0].Sub(off)
		s.z.MoveTo(p.X, p.Y)
		for _, q := range sp.pts[1:] {
			q = q.Sub(off)
			s.z.LineTo(q.X, q.Y)
		}
		s.z.ClosePath()
		drawn = true
	}
	if drawn {
		s.z.Draw(s.img, clip, image.NewUniform(c), image.Point{})
	}
}

// strokePath fills one quad per segment, each as wide as the scaled line
// width.
func (s *Surface) strokePath(path []subpath, c color.NRGBA) {
	half := s.cur.lineWidth * s.lineScale() / 2
	if half <= 0 {
		return
	}
	var quads []subpath
	for _, sp := range path {
		pts := sp.pts
		if sp.closed && len(pts) > 1 {
			pts = append(pts[:len(pts):len(pts)], pts[0])
		}
		for i := 1; i < len(pts); i++ {
			if q, ok := segmentQuad(pts[i-1], pts[i], half); ok {
				quads = append(quads, q)
			}
		}
	}
	s.fillPath(quads, c)
}

// segmentQuad returns the rectangle of half-width half around a-b, extended
// by half past each end so joins are covered.
func segmentQuad(a, b f32.Point, half float32) (subpath, bool) {
	d := b.Sub(a)
	l := float32(math.Hypot(float64(d.X), float64(d.Y)))
	if l == 0 {
		return subpath{}, false
	}
	d = d.Mul(half / l)
	n := f32.Pt(-d.Y, d.X)
	a, b = a.Sub(d), b.Add(d)
	return subpath{
		pts:    []f32.Point{a.Add(n), b.Add(n), b.Sub(n), a.Sub(n)},
		closed: true,
	}, true
}

// pathBounds returns the smallest pixel rectangle covering path.
func pathBounds(path []subpath) image.Rectangle {
	first := true
	var minX, minY, maxX, maxY float32
	for _, sp := range path {
		for _, p := range sp.pts {
			if first {
				minX, minY, maxX, maxY = p.X, p.Y, p.X, p.Y
				first = false
				continue
			}
			minX = min(minX, p.X)
			minY = min(minY, p.Y)
			maxX = max(maxX, p.X)
			maxY = max(maxY, p.Y)
		}
	}
	if first {
		return image.Rectangle{}
	}
	return image.Rect(
		int(math.Floor(float64(minX))),
		int(math.Floor(float64(minY))),
		int(math.Ceil(float64(maxX))),
		int(math.Ceil(float64(maxY))),
	)
}
