package bridge

import "fmt"

// CenterLayout centers a self-sized child in the box it is given.
type CenterLayout struct {
	Element
	child WSHSLayout
}

var _ WPHPLayout = (*CenterLayout)(nil)

// Center returns a WPHP node centering child on both axes.
func Center(child WSHSLayout) *CenterLayout {
	return &CenterLayout{
		Element: newElement(ContractWPHP, OneChild(child)),
		child:   child,
	}
}

func (c *CenterLayout) Layout(left, top, width, height float32) {
	c.Left = left
	c.Top = top
	c.Width = width
	c.Height = height
	cb := c.child.Base()
	c.child.Layout(left+(width-cb.Width)*0.5, top+(height-cb.Height)*0.5)
}

// HCenterWSHSLayout centers a self-sized child horizontally and takes the
// child's height.
type HCenterWSHSLayout struct {
	Element
	child WSHSLayout
}

var _ WPHSLayout = (*HCenterWSHSLayout)(nil)

// HCenterWSHS returns a WPHS node centering child horizontally.
func HCenterWSHS(child WSHSLayout) *HCenterWSHSLayout {
	return &HCenterWSHSLayout{
		Element: newElement(ContractWPHS, OneChild(child)),
		child:   child,
	}
}

func (c *HCenterWSHSLayout) Layout(left, top, width float32) {
	c.Left = left
	c.Top = top
	c.Width = width
	cb := c.child.Base()
	c.child.Layout(left+(width-cb.Width)*0.5, top)
	c.Height = cb.Height
}

// HCenterWSHPLayout centers a height-driven child horizontally.
type HCenterWSHPLayout struct {
	Element
	child WSHPLayout
}

var _ WPHPLayout = (*HCenterWSHPLayout)(nil)

// HCenterWSHP returns a WPHP node centering child horizontally.
func HCenterWSHP(child WSHPLayout) *HCenterWSHPLayout {
	return &HCenterWSHPLayout{
		Element: newElement(ContractWPHP, OneChild(child)),
		child:   child,
	}
}

func (c *HCenterWSHPLayout) Layout(left, top, width, height float32) {
	c.Left = left
	c.Top = top
	c.Width = width
	c.Height = height
	// The child's width is only known after it is laid out at this height.
	c.child.Layout(left, top, height)
	if cl := left + (width-c.child.Base().Width)*0.5; cl != left {
		c.child.Layout(cl, top, height)
	}
}

// VCenterWSHSLayout centers a self-sized child vertically and takes the
// child's width.
type VCenterWSHSLayout struct {
	Element
	child WSHSLayout
}

var _ WSHPLayout = (*VCenterWSHSLayout)(nil)

// VCenterWSHS returns a WSHP node centering child vertically.
func VCenterWSHS(child WSHSLayout) *VCenterWSHSLayout {
	return &VCenterWSHSLayout{
		Element: newElement(ContractWSHP, OneChild(child)),
		child:   child,
	}
}

func (c *VCenterWSHSLayout) Layout(left, top, height float32) {
	c.Left = left
	c.Top = top
	c.Height = height
	cb := c.child.Base()
	c.child.Layout(left, top+(height-cb.Height)*0.5)
	c.Width = cb.Width
}

// VCenterWPHSLayout centers a width-driven child vertically.
type VCenterWPHSLayout struct {
	Element
	child WPHSLayout
}

var _ WPHPLayout = (*VCenterWPHSLayout)(nil)

// VCenterWPHS returns a WPHP node centering child vertically.
func VCenterWPHS(child WPHSLayout) *VCenterWPHSLayout {
	return &VCenterWPHSLayout{
		Element: newElement(ContractWPHP, OneChild(child)),
		child:   child,
	}
}

func (c *VCenterWPHSLayout) Layout(left, top, width, height float32) {
	c.Left = left
	c.Top = top
	c.Width = width
	c.Height = height
	c.child.Layout(left, top, width)
	if ct := top + (height-c.child.Base().Height)*0.5; ct != top {
		c.child.Layout(left, ct, width)
	}
}

// HCenter centers child horizontally. A WSHS child yields a WPHS node and a
// WSHP child yields a WPHP node; any other contract panics.
func HCenter(child Node) Node {
	switch c := child.Base().Contract(); c {
	case ContractWSHS:
		return HCenterWSHS(child.(WSHSLayout))
	case ContractWSHP:
		return HCenterWSHP(child.(WSHPLayout))
	default:
		panic(fmt.Errorf("bridge: HCenter of %s node: %w", c, ErrInvalidChild))
	}
}

// VCenter centers child vertically. A WSHS child yields a WSHP node and a
// WPHS child yields a WPHP node; any other contract panics.
func VCenter(child Node) Node {
	switch c := child.Base().Contract(); c {
	case ContractWSHS:
		return VCenterWSHS(child.(WSHSLayout))
	case ContractWPHS:
		return VCenterWPHS(child.(WPHSLayout))
	default:
		panic(fmt.Errorf("bridge: VCenter of %s node: %w", c, ErrInvalidChild))
	}
}
