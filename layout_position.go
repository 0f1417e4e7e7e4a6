package bridge

// PositionedLayout is a node Relative can place.
type PositionedLayout interface {
	Node
	layoutIn(parent LayoutBox)
}

// PositionLayout is an absolutely positioned box inside a Relative parent.
// The requested box is kept inside the parent box at layout time.
type PositionLayout struct {
	Element
	RequestLeft   float32
	RequestTop    float32
	RequestWidth  float32
	RequestHeight float32
	child         WPHPLayout
}

var _ PositionedLayout = (*PositionLayout)(nil)

// Position returns a positioned leaf at the requested box.
func Position(left, top, width, height float32) *PositionLayout {
	return newPosition(left, top, width, height, nil)
}

// PositionWithChild returns a positioned node whose child fills its box.
func PositionWithChild(left, top, width, height float32, child WPHPLayout) *PositionLayout {
	return newPosition(left, top, width, height, child)
}

func newPosition(left, top, width, height float32, child WPHPLayout) *PositionLayout {
	c := NoChild()
	if child != nil {
		c = OneChild(child)
	}
	return &PositionLayout{
		Element:       newElement(ContractPos, c),
		RequestLeft:   left,
		RequestTop:    top,
		RequestWidth:  width,
		RequestHeight: height,
		child:         child,
	}
}

func (p *PositionLayout) layoutIn(parent LayoutBox) {
	p.Width = min(p.RequestWidth, parent.Width)
	p.Height = min(p.RequestHeight, parent.Height)
	p.Left = clamp(p.RequestLeft, parent.Left, parent.Right()-p.Width)
	p.Top = clamp(p.RequestTop, parent.Top, parent.Bottom()-p.Height)
	if p.child != nil {
		p.child.Layout(p.Left, p.Top, p.Width, p.Height)
	}
}

// RelativeLayout places positioned children inside its box.
type RelativeLayout struct {
	Element
	children []PositionedLayout
}

var _ WPHPLayout = (*RelativeLayout)(nil)

// Relative returns a WPHP container of positioned children.
func Relative(children ...PositionedLayout) *RelativeLayout {
	ns := make([]Node, len(children))
	for i, c := range children {
		ns[i] = c
	}
	return &RelativeLayout{
		Element:  newElement(ContractWPHP, Children(ns...)),
		children: children,
	}
}

func (r *RelativeLayout) Layout(left, top, width, height float32) {
	r.Left = left
	r.Top = top
	r.Width = width
	r.Height = height
	for _, c := range r.children {
		c.layoutIn(r.LayoutBox)
	}
}

// DraggableLayout is a PositionLayout that follows panning fingers.
type DraggableLayout struct {
	PositionLayout
}

// Draggable returns a positioned leaf that can be dragged with one or more
// fingers.
func Draggable(left, top, width, height float32) *DraggableLayout {
	return newDraggable(newPosition(left, top, width, height, nil))
}

// DraggableWithChild returns a draggable node whose child fills its box.
func DraggableWithChild(left, top, width, height float32, child WPHPLayout) *DraggableLayout {
	return newDraggable(newPosition(left, top, width, height, child))
}

func newDraggable(p *PositionLayout) *DraggableLayout {
	d := &DraggableLayout{PositionLayout: *p}
	d.OnPan(d.pan)
	d.OnPanEnd(d.panEnd)
	return d
}

// pan moves the requested position by the mean finger delta.
func (d *DraggableLayout) pan(ps []PanPoint, ec ElementContext, _ any) {
	var delta Point
	for _, p := range ps {
		delta = delta.Add(p.Delta())
	}
	delta = delta.Div(float32(len(ps)))
	d.RequestLeft += delta.X
	d.RequestTop += delta.Y
	ec.RequestLayout()
}

// panEnd snaps the request to where the box actually ended up, so a drag
// released out of bounds does not jump on the next layout.
func (d *DraggableLayout) panEnd(ec ElementContext, _ any) {
	d.RequestLeft = d.Left
	d.RequestTop = d.Top
}
