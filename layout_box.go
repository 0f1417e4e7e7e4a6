package bridge

import "image/color"

// BoxLayout is a fixed-size WSHS node, optionally forwarding its box to a
// WPHP child.
type BoxLayout struct {
	Element
	child WPHPLayout
}

var _ WSHSLayout = (*BoxLayout)(nil)

// Box returns a leaf of the given size.
func Box(width, height float32) *BoxLayout {
	b := &BoxLayout{Element: newElement(ContractWSHS, NoChild())}
	b.Width = width
	b.Height = height
	return b
}

// BoxWithChild returns a fixed-size node whose child fills it.
func BoxWithChild(width, height float32, child WPHPLayout) *BoxLayout {
	b := &BoxLayout{
		Element: newElement(ContractWSHS, OneChild(child)),
		child:   child,
	}
	b.Width = width
	b.Height = height
	return b
}

func (b *BoxLayout) Layout(left, top float32) {
	b.Left = left
	b.Top = top
	if b.child != nil {
		b.child.Layout(left, top, b.Width, b.Height)
	}
}

// FillLayout is a WPHP leaf that occupies the box it is given.
type FillLayout struct {
	Element
}

var _ WPHPLayout = (*FillLayout)(nil)

// Fill returns a WPHP leaf.
func Fill() *FillLayout {
	return &FillLayout{Element: newElement(ContractWPHP, NoChild())}
}

func (f *FillLayout) Layout(left, top, width, height float32) {
	f.Left = left
	f.Top = top
	f.Width = width
	f.Height = height
}

// BorderStyle is the state of a BorderLayout.
type BorderStyle struct {
	Width float32
	Color color.NRGBA
}

// BorderLayout insets its child by the border width and strokes a border in
// the inset area.
type BorderLayout struct {
	Element
	child WPHPLayout
}

var _ WPHPLayout = (*BorderLayout)(nil)

// Border wraps child in a border of the given width and color.
func Border(width float32, style color.NRGBA, child WPHPLayout) *BorderLayout {
	b := &BorderLayout{
		Element: newElement(ContractWPHP, OneChild(child)),
		child:   child,
	}
	b.State = &BorderStyle{Width: width, Color: style}
	b.OnDraw(drawBorder)
	return b
}

func drawBorder(ctx Canvas, box LayoutBox, _ ElementContext, _ LayoutBox, state any) {
	s := state.(*BorderStyle)
	half := s.Width * 0.5
	ctx.SetLineWidth(s.Width)
	ctx.SetStrokeColor(s.Color)
	ctx.StrokeRect(box.Left+half, box.Top+half, box.Width-s.Width, box.Height-s.Width)
}

func (b *BorderLayout) Layout(left, top, width, height float32) {
	b.Left = left
	b.Top = top
	b.Width = width
	b.Height = height
	bw := b.State.(*BorderStyle).Width
	b.child.Layout(left+bw, top+bw, max(0, width-2*bw), max(0, height-2*bw))
}
