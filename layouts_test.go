package bridge

import "testing"

func boxOf(n Node) LayoutBox {
	return n.Base().LayoutBox
}

func TestLeft_FlexDistribution(t *testing.T) {
	type tc struct {
		flex     []*FlexLayout
		width    float32
		expected []LayoutBox
	}

	tests := map[string]tc{
		"equal grow splits the slack": {
			flex:  []*FlexLayout{Flex(30, 1), Flex(70, 1)},
			width: 200,
			expected: []LayoutBox{
				{Left: 0, Top: 0, Width: 80, Height: 10},
				{Left: 80, Top: 0, Width: 120, Height: 10},
			},
		},
		"weighted grow": {
			flex:  []*FlexLayout{Flex(0, 1), Flex(0, 3)},
			width: 100,
			expected: []LayoutBox{
				{Left: 0, Top: 0, Width: 25, Height: 10},
				{Left: 25, Top: 0, Width: 75, Height: 10},
			},
		},
		"no grow leaves the slack": {
			flex:  []*FlexLayout{Flex(30, 0), Flex(20, 0)},
			width: 100,
			expected: []LayoutBox{
				{Left: 0, Top: 0, Width: 30, Height: 10},
				{Left: 30, Top: 0, Width: 20, Height: 10},
			},
		},
		"overflow shrinks growing children": {
			flex:  []*FlexLayout{Flex(60, 1), Flex(60, 1)},
			width: 100,
			expected: []LayoutBox{
				{Left: 0, Top: 0, Width: 50, Height: 10},
				{Left: 50, Top: 0, Width: 50, Height: 10},
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			l := Left(tt.flex...)
			l.Layout(0, 0, tt.width, 10)
			for i, f := range tt.flex {
				if got := boxOf(f); got != tt.expected[i] {
					t.Errorf("child %d box = %+v, want %+v", i, got, tt.expected[i])
				}
			}
		})
	}
}

func TestBottom_StacksUpward(t *testing.T) {
	a := Fill()
	first := FlexWithChild(20, 0, a)
	second := Flex(10, 1)
	b := Bottom(first, second)
	b.Layout(5, 10, 50, 100)

	if got := boxOf(first); got != (LayoutBox{Left: 5, Top: 90, Width: 50, Height: 20}) {
		t.Errorf("first = %+v, want bottom 20px", got)
	}
	if got := boxOf(a); got != boxOf(first) {
		t.Errorf("flex child = %+v, want %+v", got, boxOf(first))
	}
	if got := boxOf(second); got != (LayoutBox{Left: 5, Top: 10, Width: 50, Height: 80}) {
		t.Errorf("second = %+v, want the remaining 80px", got)
	}
}

func TestCenter(t *testing.T) {
	child := Box(10, 20)
	c := Center(child)
	c.Layout(0, 0, 100, 100)
	if got := boxOf(child); got != (LayoutBox{Left: 45, Top: 40, Width: 10, Height: 20}) {
		t.Errorf("child = %+v", got)
	}
}

// rowLayout is a WSHP test node that is as wide as it is tall.
type rowLayout struct {
	Element
	layouts int
}

func newRow() *rowLayout {
	return &rowLayout{Element: newElement(ContractWSHP, NoChild())}
}

func (r *rowLayout) Layout(left, top, height float32) {
	r.layouts++
	r.Left, r.Top, r.Height = left, top, height
	r.Width = height
}

// columnLayout is a WPHS test node half as tall as it is wide.
type columnLayout struct {
	Element
}

func newColumn() *columnLayout {
	return &columnLayout{Element: newElement(ContractWPHS, NoChild())}
}

func (c *columnLayout) Layout(left, top, width float32) {
	c.Left, c.Top, c.Width = left, top, width
	c.Height = width / 2
}

func TestHCenterAndVCenter(t *testing.T) {
	t.Run("HCenter of WSHS is WPHS", func(t *testing.T) {
		child := Box(10, 20)
		n := HCenter(child)
		h, ok := n.(WPHSLayout)
		if !ok || n.Base().Contract() != ContractWPHS {
			t.Fatalf("HCenter(WSHS) = %T", n)
		}
		h.Layout(0, 5, 50)
		if got := boxOf(child); got != (LayoutBox{Left: 20, Top: 5, Width: 10, Height: 20}) {
			t.Errorf("child = %+v", got)
		}
		if got := boxOf(h); got != (LayoutBox{Left: 0, Top: 5, Width: 50, Height: 20}) {
			t.Errorf("container = %+v, want child's height", got)
		}
	})

	t.Run("HCenter of WSHP is WPHP", func(t *testing.T) {
		child := newRow()
		n := HCenter(child)
		h, ok := n.(WPHPLayout)
		if !ok {
			t.Fatalf("HCenter(WSHP) = %T", n)
		}
		h.Layout(0, 0, 100, 40)
		if got := boxOf(child); got != (LayoutBox{Left: 30, Top: 0, Width: 40, Height: 40}) {
			t.Errorf("child = %+v", got)
		}
	})

	t.Run("VCenter of WSHS is WSHP", func(t *testing.T) {
		child := Box(10, 20)
		n := VCenter(child)
		v, ok := n.(WSHPLayout)
		if !ok {
			t.Fatalf("VCenter(WSHS) = %T", n)
		}
		v.Layout(0, 0, 100)
		if got := boxOf(child); got != (LayoutBox{Left: 0, Top: 40, Width: 10, Height: 20}) {
			t.Errorf("child = %+v", got)
		}
		if got := boxOf(v).Width; got != 10 {
			t.Errorf("container width = %v, want child's width", got)
		}
	})

	t.Run("VCenter of WPHS is WPHP", func(t *testing.T) {
		child := newColumn()
		n := VCenter(child)
		v, ok := n.(WPHPLayout)
		if !ok {
			t.Fatalf("VCenter(WPHS) = %T", n)
		}
		v.Layout(0, 0, 40, 100)
		if got := boxOf(child); got != (LayoutBox{Left: 0, Top: 40, Width: 40, Height: 20}) {
			t.Errorf("child = %+v", got)
		}
	})

	t.Run("invalid contracts panic", func(t *testing.T) {
		expectPanic(t, ErrInvalidChild, func() { HCenter(Fill()) })
		expectPanic(t, ErrInvalidChild, func() { VCenter(Fill()) })
		expectPanic(t, ErrInvalidChild, func() { HCenter(newColumn()) })
		expectPanic(t, ErrInvalidChild, func() { VCenter(newRow()) })
	})
}

func TestBorder_InsetsChild(t *testing.T) {
	type tc struct {
		width, height float32
		expected      LayoutBox
	}

	tests := map[string]tc{
		"normal": {
			width:    50,
			height:   30,
			expected: LayoutBox{Left: 4, Top: 4, Width: 46, Height: 26},
		},
		"too small": {
			width:    2,
			height:   30,
			expected: LayoutBox{Left: 4, Top: 4, Width: 0, Height: 26},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			child := Fill()
			b := Border(2, testRed, child)
			b.Layout(2, 2, tt.width, tt.height)
			if got := boxOf(child); got != tt.expected {
				t.Errorf("child = %+v, want %+v", got, tt.expected)
			}
		})
	}
}

func TestBorder_Draws(t *testing.T) {
	b := Border(2, testRed, Fill())
	b.Layout(0, 0, 20, 10)
	canvas := NewMockCanvas()
	drawElementTree(canvas, b, newFakeContext(), boxOf(b))
	rects := canvas.Find("StrokeRect")
	if len(rects) != 1 {
		t.Fatalf("StrokeRect calls = %d, want 1\n%s", len(rects), canvas.Trace())
	}
	if got := rects[0].String(); got != "StrokeRect(1,1,18,8)" {
		t.Errorf("got %s", got)
	}
}

func TestBoxWithChild(t *testing.T) {
	child := Fill()
	b := BoxWithChild(30, 40, child)
	b.Layout(5, 6)
	if got := boxOf(child); got != (LayoutBox{Left: 5, Top: 6, Width: 30, Height: 40}) {
		t.Errorf("child = %+v", got)
	}
}

func TestLayer_SharesBox(t *testing.T) {
	a, b := Fill(), Fill()
	l := Layer(a, b)
	l.Layout(1, 2, 3, 4)
	want := LayoutBox{Left: 1, Top: 2, Width: 3, Height: 4}
	if boxOf(a) != want || boxOf(b) != want {
		t.Errorf("children = %+v %+v, want %+v", boxOf(a), boxOf(b), want)
	}
}

func TestSwitch(t *testing.T) {
	a, b := Fill(), Fill()
	detached := 0
	a.OnDetach(func(*Element, any) { detached++ })
	s := Switch(0, a, b)
	ec := newFakeContext()

	s.Set(0, ec)
	if ec.layouts != 0 || detached != 0 {
		t.Error("setting the current child should do nothing")
	}

	s.Set(1, ec)
	if s.Current() != 1 {
		t.Errorf("Current() = %d, want 1", s.Current())
	}
	if detached != 1 {
		t.Errorf("outgoing child detached %d times, want 1", detached)
	}
	if ec.layouts != 1 {
		t.Errorf("layouts requested = %d, want 1", ec.layouts)
	}
	nodes := s.Child().Nodes()
	if len(nodes) != 1 || nodes[0] != Node(b) {
		t.Error("child slot should hold the new child")
	}

	s.Layout(0, 0, 10, 10)
	if !boxOf(b).Valid() {
		t.Error("active child was not laid out")
	}

	expectPanic(t, ErrInvalidChild, func() { s.Set(2, ec) })
	expectPanic(t, ErrInvalidChild, func() { Switch(-1, a) })
}

func TestMux(t *testing.T) {
	a, b, c := Fill(), Fill(), Fill()
	detached := map[string]int{}
	a.OnDetach(func(*Element, any) { detached["a"]++ })
	b.OnDetach(func(*Element, any) { detached["b"]++ })
	c.OnDetach(func(*Element, any) { detached["c"]++ })

	m := Mux([]string{"c", "a"},
		MuxChild("a", a),
		MuxChild("b", b),
		MuxChild("c", c),
	)
	nodes := m.Child().Nodes()
	if len(nodes) != 2 || nodes[0] != Node(a) || nodes[1] != Node(c) {
		t.Fatalf("enabled children should be in declaration order, got %d nodes", len(nodes))
	}

	ec := newFakeContext()
	m.Set(ec, "b", "c")
	if detached["a"] != 1 || detached["b"] != 0 || detached["c"] != 0 {
		t.Errorf("detached = %v, want only a", detached)
	}
	if !m.Enabled("b") || m.Enabled("a") {
		t.Error("enabled set not updated")
	}
	if ec.layouts != 1 {
		t.Errorf("layouts requested = %d, want 1", ec.layouts)
	}

	m.Layout(0, 0, 10, 10)
	if boxOf(a).Valid() {
		t.Error("disabled child should not be laid out")
	}

	expectPanic(t, ErrInvalidChild, func() { m.Set(ec, "z") })
	expectPanic(t, ErrInvalidChild, func() {
		Mux([]string{"a"}, MuxChild("a", Fill()), MuxChild("a", Fill()))
	})
}

func TestRelative_KeepsChildrenInside(t *testing.T) {
	type tc struct {
		request  LayoutBox
		expected LayoutBox
	}

	tests := map[string]tc{
		"inside": {
			request:  LayoutBox{Left: 10, Top: 10, Width: 20, Height: 20},
			expected: LayoutBox{Left: 10, Top: 10, Width: 20, Height: 20},
		},
		"past bottom right": {
			request:  LayoutBox{Left: 90, Top: 95, Width: 20, Height: 20},
			expected: LayoutBox{Left: 80, Top: 80, Width: 20, Height: 20},
		},
		"negative": {
			request:  LayoutBox{Left: -5, Top: -50, Width: 20, Height: 20},
			expected: LayoutBox{Left: 0, Top: 0, Width: 20, Height: 20},
		},
		"larger than parent": {
			request:  LayoutBox{Left: 30, Top: 0, Width: 200, Height: 50},
			expected: LayoutBox{Left: 0, Top: 0, Width: 100, Height: 50},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			r := tt.request
			child := Fill()
			p := PositionWithChild(r.Left, r.Top, r.Width, r.Height, child)
			rel := Relative(p)
			rel.Layout(0, 0, 100, 100)
			if got := boxOf(p); got != tt.expected {
				t.Errorf("box = %+v, want %+v", got, tt.expected)
			}
			if boxOf(child) != boxOf(p) {
				t.Errorf("child = %+v, want %+v", boxOf(child), boxOf(p))
			}
		})
	}
}

func TestDraggable(t *testing.T) {
	d := Draggable(10, 10, 20, 20)
	rel := Relative(d)
	rel.Layout(0, 0, 100, 100)
	ec := newFakeContext()

	d.touch.begin(1, Pt(15, 15), ec, nil)
	d.touch.begin(2, Pt(25, 25), ec, nil)
	d.touch.move([]TouchMove{{ID: 1, P: Pt(35, 15)}, {ID: 2, P: Pt(45, 35)}}, ec, nil)

	// Mean of (20,0) and (20,10).
	if d.RequestLeft != 30 || d.RequestTop != 15 {
		t.Errorf("request = (%v,%v), want (30,15)", d.RequestLeft, d.RequestTop)
	}
	if ec.layouts != 1 {
		t.Errorf("layouts requested = %d, want 1", ec.layouts)
	}

	d.touch.move([]TouchMove{{ID: 1, P: Pt(200, 15)}, {ID: 2, P: Pt(210, 35)}}, ec, nil)
	rel.Layout(0, 0, 100, 100)
	if d.Left != 80 {
		t.Fatalf("Left = %v, want clamped to 80", d.Left)
	}
	d.touch.end(1, ec, nil)
	d.touch.end(2, ec, nil)
	if d.RequestLeft != 80 || d.RequestTop != d.Top {
		t.Errorf("request after pan end = (%v,%v), want snapped to (80,%v)", d.RequestLeft, d.RequestTop, d.Top)
	}
}

func TestLayout_Idempotent(t *testing.T) {
	type tc struct {
		// build returns a layout call and the nodes whose geometry it sets.
		build func() (func(), []Node)
	}

	tests := map[string]tc{
		"left": {build: func() (func(), []Node) {
			a, b := Flex(30, 1), FlexWithChild(70, 2, Fill())
			l := Left(a, b, Flex(10, 0))
			return func() { l.Layout(5, 5, 200, 50) }, []Node{l, a, b, b.child}
		}},
		"bottom": {build: func() (func(), []Node) {
			a, b := Flex(20, 0), Flex(10, 1)
			l := Bottom(a, b)
			return func() { l.Layout(0, 0, 80, 120) }, []Node{l, a, b}
		}},
		"center": {build: func() (func(), []Node) {
			child := Box(10, 20)
			c := Center(child)
			return func() { c.Layout(3, 4, 100, 100) }, []Node{c, child}
		}},
		"hcenter wshs": {build: func() (func(), []Node) {
			child := Box(10, 20)
			c := HCenterWSHS(child)
			return func() { c.Layout(0, 7, 90) }, []Node{c, child}
		}},
		"hcenter wshp": {build: func() (func(), []Node) {
			child := newRow()
			c := HCenterWSHP(child)
			return func() { c.Layout(0, 0, 100, 30) }, []Node{c, child}
		}},
		"vcenter wshs": {build: func() (func(), []Node) {
			child := Box(10, 20)
			c := VCenterWSHS(child)
			return func() { c.Layout(2, 0, 60) }, []Node{c, child}
		}},
		"vcenter wphs": {build: func() (func(), []Node) {
			child := newColumn()
			c := VCenterWPHS(child)
			return func() { c.Layout(0, 0, 40, 100) }, []Node{c, child}
		}},
		"border": {build: func() (func(), []Node) {
			child := Fill()
			b := Border(3, testRed, child)
			return func() { b.Layout(1, 1, 50, 40) }, []Node{b, child}
		}},
		"relative": {build: func() (func(), []Node) {
			inside := Position(10, 10, 20, 20)
			outside := PositionWithChild(500, -50, 300, 30, Fill())
			r := Relative(inside, outside)
			return func() { r.Layout(0, 0, 100, 100) }, []Node{r, inside, outside, outside.child}
		}},
		"scroll": {build: func() (func(), []Node) {
			s := Scroll(Box(50, 400), WithZoom(50), WithScroll(Pt(90, 900)))
			return func() { s.Layout(0, 0, 100, 100) }, []Node{s, s.Scroller()}
		}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			layout, nodes := tt.build()
			layout()
			first := make([]LayoutBox, len(nodes))
			for i, n := range nodes {
				first[i] = boxOf(n)
			}
			layout()
			for i, n := range nodes {
				if got := boxOf(n); got != first[i] {
					t.Errorf("node %d: second layout %+v, first %+v", i, got, first[i])
				}
			}
		})
	}
}

func TestScroll_LayoutIdempotent(t *testing.T) {
	s := Scroll(Box(50, 400), WithZoom(50), WithScroll(Pt(90, 900)))
	s.Layout(0, 0, 100, 100)
	zoom, scroll := s.Zoom(), s.ScrollOffset()
	s.Layout(0, 0, 100, 100)
	if s.Zoom() != zoom || s.ScrollOffset() != scroll {
		t.Errorf("second layout zoom %v scroll %v, first zoom %v scroll %v",
			s.Zoom(), s.ScrollOffset(), zoom, scroll)
	}
}
