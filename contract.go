package bridge

// WPHPLayout nodes are given their whole rectangle by the parent.
type WPHPLayout interface {
	Node
	Layout(left, top, width, height float32)
}

// WPHSLayout nodes are given width and position, and set their own Height.
type WPHSLayout interface {
	Node
	Layout(left, top, width float32)
}

// WSHPLayout nodes are given height and position, and set their own Width.
type WSHPLayout interface {
	Node
	Layout(left, top, height float32)
}

// WSHSLayout nodes are given a position. Their Width and Height are known
// before layout.
type WSHSLayout interface {
	Node
	Layout(left, top float32)
}
