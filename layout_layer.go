package bridge

import "fmt"

// LayerLayout gives every child the same box. Later children paint on top.
type LayerLayout struct {
	Element
	children []WPHPLayout
}

var _ WPHPLayout = (*LayerLayout)(nil)

// Layer returns a WPHP container overlapping children.
func Layer(children ...WPHPLayout) *LayerLayout {
	return &LayerLayout{
		Element:  newElement(ContractWPHP, Children(wphpNodes(children)...)),
		children: children,
	}
}

func (l *LayerLayout) Layout(left, top, width, height float32) {
	l.Left = left
	l.Top = top
	l.Width = width
	l.Height = height
	for _, c := range l.children {
		c.Layout(left, top, width, height)
	}
}

func wphpNodes(children []WPHPLayout) []Node {
	ns := make([]Node, len(children))
	for i, c := range children {
		ns[i] = c
	}
	return ns
}

// SwitchLayout shows exactly one of a fixed set of children.
type SwitchLayout struct {
	Element
	children []WPHPLayout
	current  int
}

var _ WPHPLayout = (*SwitchLayout)(nil)

// Switch returns a WPHP node showing children[i].
func Switch(i int, children ...WPHPLayout) *SwitchLayout {
	if i < 0 || i >= len(children) {
		panic(fmt.Errorf("bridge: Switch index %d of %d children: %w", i, len(children), ErrInvalidChild))
	}
	return &SwitchLayout{
		Element:  newElement(ContractWPHP, OneChild(children[i])),
		children: children,
		current:  i,
	}
}

// Current returns the index of the active child.
func (s *SwitchLayout) Current() int {
	return s.current
}

// Set makes children[i] the active child. The outgoing subtree is notified
// that it has been detached and a layout is requested.
func (s *SwitchLayout) Set(i int, ec ElementContext) {
	if i < 0 || i >= len(s.children) {
		panic(fmt.Errorf("bridge: Switch.Set index %d of %d children: %w", i, len(s.children), ErrInvalidChild))
	}
	if i == s.current {
		return
	}
	callDetachListeners(s.children[s.current])
	s.current = i
	s.child = OneChild(s.children[i])
	ec.RequestLayout()
}

func (s *SwitchLayout) Layout(left, top, width, height float32) {
	s.Left = left
	s.Top = top
	s.Width = width
	s.Height = height
	s.children[s.current].Layout(left, top, width, height)
}

// MuxEntry is a keyed child of a MuxLayout.
type MuxEntry[K comparable] struct {
	Key   K
	Child WPHPLayout
}

// MuxChild pairs key with child.
func MuxChild[K comparable](key K, child WPHPLayout) MuxEntry[K] {
	return MuxEntry[K]{Key: key, Child: child}
}

// MuxLayout shows any subset of a keyed set of children, overlapped in
// declaration order.
type MuxLayout[K comparable] struct {
	Element
	entries []MuxEntry[K]
	enabled map[K]bool
}

// Mux returns a WPHP node with the children whose keys are in enabled active.
func Mux[K comparable](enabled []K, entries ...MuxEntry[K]) *MuxLayout[K] {
	seen := make(map[K]bool, len(entries))
	for _, e := range entries {
		if seen[e.Key] {
			panic(fmt.Errorf("bridge: Mux duplicate key %v: %w", e.Key, ErrInvalidChild))
		}
		seen[e.Key] = true
	}
	m := &MuxLayout[K]{
		Element: newElement(ContractWPHP, NoChild()),
		entries: entries,
	}
	m.enabled = m.keySet(enabled)
	m.child = m.activeChildren()
	return m
}

func (m *MuxLayout[K]) keySet(keys []K) map[K]bool {
	set := make(map[K]bool, len(keys))
	for _, k := range keys {
		found := false
		for _, e := range m.entries {
			if e.Key == k {
				found = true
				break
			}
		}
		if !found {
			panic(fmt.Errorf("bridge: Mux unknown key %v: %w", k, ErrInvalidChild))
		}
		set[k] = true
	}
	return set
}

func (m *MuxLayout[K]) activeChildren() Child {
	var ns []Node
	for _, e := range m.entries {
		if m.enabled[e.Key] {
			ns = append(ns, e.Child)
		}
	}
	return Children(ns...)
}

// Enabled reports whether the child for key is active.
func (m *MuxLayout[K]) Enabled(key K) bool {
	return m.enabled[key]
}

// Set replaces the active set with keys. Children leaving the set are
// notified that they have been detached and a layout is requested.
func (m *MuxLayout[K]) Set(ec ElementContext, keys ...K) {
	next := m.keySet(keys)
	for _, e := range m.entries {
		if m.enabled[e.Key] && !next[e.Key] {
			callDetachListeners(e.Child)
		}
	}
	m.enabled = next
	m.child = m.activeChildren()
	ec.RequestLayout()
}

func (m *MuxLayout[K]) Layout(left, top, width, height float32) {
	m.Left = left
	m.Top = top
	m.Width = width
	m.Height = height
	for _, e := range m.entries {
		if m.enabled[e.Key] {
			e.Child.Layout(left, top, width, height)
		}
	}
}
