// Package adapter lets an HTML-like assertion library walk trees mounted by
// package render.
//
// Rendered trees contain two kinds of things the library wants to see:
// host nodes and the components that produced them. WrapRootNode and
// WrapNode turn a rendered host node into an Element, a closed sum of
// ComponentElement and NodeElement. An Adapter then answers three questions
// about any Element: its name, its normalized attributes and its children.
//
//	root, _ := render.New(render.Config{}).Render(vdom.H(App), container)
//	a := adapter.New()
//	el := adapter.WrapRootNode(root)
//	name, _ := a.GetName(el)
//	attrs, err := a.GetAttributes(el)
//	children, err := a.GetChildren(el)
//
// Component chains are unwrapped one level per GetChildren call, ending at
// the shared host node.
package adapter
