package bridge

import "fmt"

// Contract identifies how a node negotiates its size with its parent.
type Contract uint8

const (
	// ContractWPHP nodes take width and height from the parent.
	ContractWPHP Contract = iota
	// ContractWPHS nodes take width from the parent and compute height.
	ContractWPHS
	// ContractWSHP nodes take height from the parent and compute width.
	ContractWSHP
	// ContractWSHS nodes compute both width and height.
	ContractWSHS
	// ContractFlex nodes are sizing hints consumed by Left and Bottom.
	ContractFlex
	// ContractPos nodes are absolutely positioned children of Relative.
	ContractPos
)

func (c Contract) String() string {
	switch c {
	case ContractWPHP:
		return "wphp"
	case ContractWPHS:
		return "wphs"
	case ContractWSHP:
		return "wshp"
	case ContractWSHS:
		return "wshs"
	case ContractFlex:
		return "flex"
	case ContractPos:
		return "pos"
	}
	return fmt.Sprintf("Contract(%d)", uint8(c))
}

// Arity is the number of children a node holds.
type Arity uint8

const (
	Leaf      = Arity(0) // Leaf nodes have no children.
	Shell     = Arity(1) // Shell nodes have exactly one child.
	Container = Arity(2) // Container nodes have a fixed ordered list of children.
)

// Child is the child slot of an Element: absent, one node, or a list.
type Child struct {
	arity Arity
	one   Node
	many  []Node
}

// NoChild returns the child slot of a leaf.
func NoChild() Child {
	return Child{arity: Leaf}
}

// OneChild returns a child slot holding n.
func OneChild(n Node) Child {
	return Child{arity: Shell, one: n}
}

// Children returns a child slot holding ns in paint order.
func Children(ns ...Node) Child {
	return Child{arity: Container, many: ns}
}

// Arity returns the shape of the slot.
func (c Child) Arity() Arity {
	return c.arity
}

// Nodes returns the children in paint order.
func (c Child) Nodes() []Node {
	switch c.arity {
	case Shell:
		return []Node{c.one}
	case Container:
		return c.many
	}
	return nil
}

// Node is any member of a layout tree.
type Node interface {
	// Base returns the Element embedded in the node.
	Base() *Element
}

// Handler signatures. Every handler receives the node's State.
type (
	OnDrawHandler     func(ctx Canvas, box LayoutBox, ec ElementContext, vp LayoutBox, state any)
	OnTapHandler      func(p Point, ec ElementContext, state any)
	OnPanHandler      func(ps []PanPoint, ec ElementContext, state any)
	OnPanBeginHandler func(ec ElementContext, state any)
	OnPanEndHandler   func(ec ElementContext, state any)
	OnDetachHandler   func(e *Element, state any)

	OnTouchBeginHandler func(id TouchID, p Point, ec ElementContext, state any)
	OnTouchMoveHandler  func(ts []TouchMove, ec ElementContext, state any)
	OnTouchEndHandler   func(id TouchID, ec ElementContext, state any)
)

// touchHandlers is the interactive capability of an Element. It is installed
// whole or not at all.
type touchHandlers struct {
	begin OnTouchBeginHandler
	move  OnTouchMoveHandler
	end   OnTouchEndHandler
}

// DetachListener is a registration handle for a detach callback.
type DetachListener struct {
	fn OnDetachHandler
}

// NewDetachListener wraps fn in a handle that can be added to and removed from
// any number of elements.
func NewDetachListener(fn OnDetachHandler) *DetachListener {
	return &DetachListener{fn: fn}
}

// Element is the retained node every layout embeds.
type Element struct {
	LayoutBox

	// State is the opaque payload passed to this node's handlers.
	State any

	contract Contract
	child    Child

	onDraw  OnDrawHandler
	touch   *touchHandlers
	gesture *TouchGesture
	detach  []*DetachListener
}

func newElement(contract Contract, child Child) Element {
	return Element{
		LayoutBox: unsetBox(),
		contract:  contract,
		child:     child,
	}
}

// Base returns e.
func (e *Element) Base() *Element {
	return e
}

// Contract returns the sizing contract the node honors.
func (e *Element) Contract() Contract {
	return e.contract
}

// Child returns the child slot walked by drawing, hit testing and detach
// notification.
func (e *Element) Child() Child {
	return e.child
}

// Box returns the node's resolved geometry.
func (e *Element) Box() LayoutBox {
	return e.LayoutBox
}

// Interactive reports whether the node accepts touches.
func (e *Element) Interactive() bool {
	return e.touch != nil
}

// OnDraw installs the node's draw handler.
// Panics if one is already installed.
func (e *Element) OnDraw(h OnDrawHandler) {
	if e.onDraw != nil {
		panic(fmt.Errorf("bridge: onDraw: %w", ErrDoubleRegistration))
	}
	e.onDraw = h
}

// onTouch installs the full touch handler set.
func (e *Element) onTouch(begin OnTouchBeginHandler, move OnTouchMoveHandler, end OnTouchEndHandler) {
	if e.touch != nil {
		panic(fmt.Errorf("bridge: touch handlers: %w", ErrDoubleRegistration))
	}
	e.touch = &touchHandlers{begin: begin, move: move, end: end}
}

// OnDetach registers fn to run when the node leaves the tree and returns the
// handle that removes it.
func (e *Element) OnDetach(fn OnDetachHandler) *DetachListener {
	l := NewDetachListener(fn)
	e.AddDetachListener(l)
	return l
}

// AddDetachListener registers l. Adding a handle that is already registered
// has no effect.
func (e *Element) AddDetachListener(l *DetachListener) {
	for _, d := range e.detach {
		if d == l {
			return
		}
	}
	e.detach = append(e.detach, l)
}

// RemoveDetachListener unregisters l. Listeners may be removed while detach
// notification is running.
func (e *Element) RemoveDetachListener(l *DetachListener) {
	for i, d := range e.detach {
		if d == l {
			next := make([]*DetachListener, 0, len(e.detach)-1)
			next = append(next, e.detach[:i]...)
			e.detach = append(next, e.detach[i+1:]...)
			return
		}
	}
}

// notifyDetach calls every detach listener registered at the time of the call.
func (e *Element) notifyDetach() {
	snapshot := e.detach
	for _, l := range snapshot {
		l.fn(e, e.State)
	}
}
