// Package bridge is a retained-mode layout and touch gesture toolkit for a 2D
// drawing surface.
//
// Users import this single package for the complete public API: layout
// construction (Box, Border, Fill, Center, HCenter, VCenter, Flex/Left/Bottom,
// Layer, Switch, Mux, Position/Relative, Draggable, Scroll, DebugTouch),
// handler registration (OnDraw, OnTap, OnPan, OnPanBegin, OnPanEnd, OnDetach)
// and the RootLayout that connects a tree to a Canvas, a Scheduler and a touch
// event source.
//
// Every node honors one of four sizing contracts. WPHP nodes take their whole
// rectangle from the parent, WPHS nodes take width and compute height, WSHP
// nodes take height and compute width, and WSHS nodes size themselves.
package bridge
