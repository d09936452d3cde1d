// Package vdom provides the virtual node model rendered by package render
// and inspected by package adapter.
//
// # Core Types
//
// VNode is the fundamental building block: an element, a text node or a
// component. Props holds attributes and event handlers. Attr and
// EventHandler are used to build Props.
//
// # Element API
//
// Elements are created using variadic factory functions:
//
//	Div(ClassName("card"), ID("main"),
//	    Span(Text("Title")),
//	    OnClick(handler),
//	)
//
// Components are created with H:
//
//	H(Counter, Prop("start", 1))
//
// where Counter is a *Class or a function component.
//
// # Hooks
//
// SetVNodeHook installs a process-wide callback invoked for every VNode
// created by H and the element builders, before the node is returned to
// the caller. Hooks may rewrite the node in place.
package vdom
