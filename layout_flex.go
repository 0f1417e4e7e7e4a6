package bridge

// FlexLayout is a sizing hint for Left and Bottom: size is the base extent
// along the container axis and grow is the share of the leftover space.
type FlexLayout struct {
	Element
	size  float32
	grow  float32
	child WPHPLayout
}

// Flex returns a flex hint with no content.
func Flex(size, grow float32) *FlexLayout {
	return &FlexLayout{
		Element: newElement(ContractFlex, NoChild()),
		size:    size,
		grow:    grow,
	}
}

// FlexWithChild returns a flex hint whose child fills the allotted extent.
func FlexWithChild(size, grow float32, child WPHPLayout) *FlexLayout {
	return &FlexLayout{
		Element: newElement(ContractFlex, OneChild(child)),
		size:    size,
		grow:    grow,
		child:   child,
	}
}

// Size returns the base extent.
func (f *FlexLayout) Size() float32 {
	return f.size
}

// Grow returns the share of leftover space.
func (f *FlexLayout) Grow() float32 {
	return f.grow
}

func (f *FlexLayout) layout(left, top, width, height float32) {
	f.Left = left
	f.Top = top
	f.Width = width
	f.Height = height
	if f.child != nil {
		f.child.Layout(left, top, width, height)
	}
}

// flexExtents splits available among children. When no child grows the slack
// is left undistributed.
func flexExtents(children []*FlexLayout, available float32) []float32 {
	var sumSize, sumGrow float32
	for _, c := range children {
		sumSize += c.size
		sumGrow += c.grow
	}
	extra := available - sumSize
	extents := make([]float32, len(children))
	for i, c := range children {
		extents[i] = c.size
		if sumGrow != 0 {
			extents[i] += c.grow * extra / sumGrow
		}
	}
	return extents
}

func flexNodes(children []*FlexLayout) []Node {
	ns := make([]Node, len(children))
	for i, c := range children {
		ns[i] = c
	}
	return ns
}

// LeftFlexLayout lays flex children out left to right.
type LeftFlexLayout struct {
	Element
	children []*FlexLayout
}

var _ WPHPLayout = (*LeftFlexLayout)(nil)

// Left returns a WPHP container laying children end to end from its left
// edge. Each child spans the full height.
func Left(children ...*FlexLayout) *LeftFlexLayout {
	return &LeftFlexLayout{
		Element:  newElement(ContractWPHP, Children(flexNodes(children)...)),
		children: children,
	}
}

func (l *LeftFlexLayout) Layout(left, top, width, height float32) {
	l.Left = left
	l.Top = top
	l.Width = width
	l.Height = height
	childLeft := left
	for i, w := range flexExtents(l.children, width) {
		l.children[i].layout(childLeft, top, w, height)
		childLeft += w
	}
}

// BottomFlexLayout lays flex children out bottom to top.
type BottomFlexLayout struct {
	Element
	children []*FlexLayout
}

var _ WPHPLayout = (*BottomFlexLayout)(nil)

// Bottom returns a WPHP container stacking children from its bottom edge
// upwards. Each child spans the full width.
func Bottom(children ...*FlexLayout) *BottomFlexLayout {
	return &BottomFlexLayout{
		Element:  newElement(ContractWPHP, Children(flexNodes(children)...)),
		children: children,
	}
}

func (b *BottomFlexLayout) Layout(left, top, width, height float32) {
	b.Left = left
	b.Top = top
	b.Width = width
	b.Height = height
	childTop := top + height
	for i, h := range flexExtents(b.children, height) {
		childTop -= h
		b.children[i].layout(left, childTop, width, h)
	}
}
