package adapter

import (
	"github.com/vango-dev/vango-inspect/pkg/dom"
	"github.com/vango-dev/vango-inspect/pkg/render"
)

// ElementType is the variant tag of an Element.
type ElementType int

const (
	// NodeType tags a NodeElement.
	NodeType ElementType = iota + 1
	// ComponentType tags a ComponentElement.
	ComponentType
)

// String returns the variant name.
func (t ElementType) String() string {
	switch t {
	case NodeType:
		return "VDOMNode"
	case ComponentType:
		return "VDOMComponentInstance"
	default:
		return "Unknown"
	}
}

// Child is an entry returned by GetChildren: a Text or an Element.
type Child interface {
	isChild()
}

// Text is a text child.
type Text string

func (Text) isChild() {}

// Element is a wrapped rendered node. Its variants are ComponentElement and
// NodeElement.
type Element interface {
	Child
	Type() ElementType
	isElement()
}

// ComponentElement is a rendered component paired with its host node.
type ComponentElement struct {
	Component *render.Instance
	Node      *dom.Node
}

// Type implements Element.
func (ComponentElement) Type() ElementType { return ComponentType }

func (ComponentElement) isChild()   {}
func (ComponentElement) isElement() {}

// NodeElement is a host node.
type NodeElement struct {
	Node *dom.Node
}

// Type implements Element.
func (NodeElement) Type() ElementType { return NodeType }

func (NodeElement) isChild()   {}
func (NodeElement) isElement() {}

// WrapRootNode wraps the root node returned by a render. If the rendered
// root component itself rendered a component, that nested component is
// wrapped; otherwise the host node is.
func WrapRootNode(node *dom.Node) Element {
	if c := render.ComponentOf(node); c != nil && c.Child != nil {
		return ComponentElement{Component: c.Child, Node: node}
	}
	return NodeElement{Node: node}
}

// WrapNode wraps node as a ComponentElement when a component owns it, and
// as a NodeElement otherwise.
func WrapNode(node *dom.Node) Element {
	if c := render.ComponentOf(node); c != nil {
		return ComponentElement{Component: c, Node: node}
	}
	return NodeElement{Node: node}
}
