package dom

import "strings"

// NodeType mirrors the DOM nodeType constants.
type NodeType int

const (
	ElementNode NodeType = 1
	TextNode    NodeType = 3
)

// Attribute is a string attribute as set on a host element.
type Attribute struct {
	Name  string
	Value string
}

// Symbol is a unique expando key. Two symbols never collide, even with the
// same description.
type Symbol struct {
	desc string
}

// NewSymbol returns a new unique Symbol.
func NewSymbol(desc string) *Symbol {
	return &Symbol{desc: desc}
}

// String returns "Symbol(desc)".
func (s *Symbol) String() string {
	return "Symbol(" + s.desc + ")"
}

// Node is a host node.
type Node struct {
	NodeType   NodeType
	TagName    string // upper-case, elements only
	Data       string // text nodes only
	ChildNodes []*Node
	ParentNode *Node

	attrs   []Attribute
	expando map[any]any
}

// CreateElement creates an element node.
func CreateElement(tag string) *Node {
	return &Node{NodeType: ElementNode, TagName: strings.ToUpper(tag)}
}

// CreateTextNode creates a text node.
func CreateTextNode(data string) *Node {
	return &Node{NodeType: TextNode, Data: data}
}

// AppendChild appends c to n, detaching it from any previous parent.
func (n *Node) AppendChild(c *Node) *Node {
	if c.ParentNode != nil {
		c.ParentNode.RemoveChild(c)
	}
	c.ParentNode = n
	n.ChildNodes = append(n.ChildNodes, c)
	return c
}

// RemoveChild removes c from n's children.
func (n *Node) RemoveChild(c *Node) {
	for i, child := range n.ChildNodes {
		if child == c {
			n.ChildNodes = append(n.ChildNodes[:i:i], n.ChildNodes[i+1:]...)
			c.ParentNode = nil
			return
		}
	}
}

// FirstChild returns the first child node, or nil.
func (n *Node) FirstChild() *Node {
	if len(n.ChildNodes) == 0 {
		return nil
	}
	return n.ChildNodes[0]
}

// TextContent returns the node's text, concatenating descendant text for
// elements.
func (n *Node) TextContent() string {
	if n == nil {
		return ""
	}
	if n.NodeType == TextNode {
		return n.Data
	}
	var b strings.Builder
	n.collectText(&b)
	return b.String()
}

func (n *Node) collectText(b *strings.Builder) {
	for _, c := range n.ChildNodes {
		if c.NodeType == TextNode {
			b.WriteString(c.Data)
		} else {
			c.collectText(b)
		}
	}
}

// SetAttribute sets a string attribute, replacing any existing value.
func (n *Node) SetAttribute(name, value string) {
	for i := range n.attrs {
		if n.attrs[i].Name == name {
			n.attrs[i].Value = value
			return
		}
	}
	n.attrs = append(n.attrs, Attribute{Name: name, Value: value})
}

// GetAttribute returns a string attribute.
func (n *Node) GetAttribute(name string) (string, bool) {
	for _, a := range n.attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// Attributes returns the node's attributes in insertion order.
func (n *Node) Attributes() []Attribute {
	out := make([]Attribute, len(n.attrs))
	copy(out, n.attrs)
	return out
}

// Get reads an expando property. key is a string or a *Symbol.
func (n *Node) Get(key any) (any, bool) {
	if n == nil || n.expando == nil {
		return nil, false
	}
	v, ok := n.expando[key]
	return v, ok
}

// Set writes an expando property. key is a string or a *Symbol.
func (n *Node) Set(key, value any) {
	if n.expando == nil {
		n.expando = make(map[any]any)
	}
	n.expando[key] = value
}

// Delete removes an expando property.
func (n *Node) Delete(key any) {
	delete(n.expando, key)
}
