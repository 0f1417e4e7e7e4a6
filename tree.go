package bridge

// drawElementTree paints root and its descendants in pre-order, children in
// order, so later siblings paint over earlier ones.
func drawElementTree(ctx Canvas, root Node, ec ElementContext, vp LayoutBox) {
	stack := []*Element{root.Base()}
	for len(stack) > 0 {
		e := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if e.onDraw != nil {
			e.onDraw(ctx, e.LayoutBox, ec, vp, e.State)
		}
		switch e.child.arity {
		case Leaf:
		case Shell:
			stack = append(stack, e.child.one.Base())
		case Container:
			for i := len(e.child.many) - 1; i >= 0; i-- {
				stack = append(stack, e.child.many[i].Base())
			}
		}
	}
}

// findTouchTarget returns the first interactive node containing p, visiting
// later siblings first so the topmost painted node wins. Subtrees whose root
// does not contain p are pruned. Returns nil if nothing claims p.
func findTouchTarget(root Node, p Point) *Element {
	stack := []*Element{root.Base()}
	for len(stack) > 0 {
		e := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !e.LayoutBox.Contains(p) {
			continue
		}
		if e.touch != nil {
			return e
		}
		switch e.child.arity {
		case Leaf:
		case Shell:
			stack = append(stack, e.child.one.Base())
		case Container:
			stack = appendBases(stack, e.child.many)
		}
	}
	return nil
}

// callDetachListeners notifies every node of the subtree at root that it is
// leaving the tree.
func callDetachListeners(root Node) {
	stack := []*Element{root.Base()}
	for len(stack) > 0 {
		e := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		e.notifyDetach()
		switch e.child.arity {
		case Leaf:
		case Shell:
			stack = append(stack, e.child.one.Base())
		case Container:
			stack = appendBases(stack, e.child.many)
		}
	}
}

func appendBases(stack []*Element, ns []Node) []*Element {
	for _, n := range ns {
		stack = append(stack, n.Base())
	}
	return stack
}
