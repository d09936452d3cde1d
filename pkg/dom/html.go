package dom

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ParseFragment parses an HTML fragment in a <div> context and returns the
// top-level host nodes. Comments and doctypes are dropped.
func ParseFragment(src string) ([]*Node, error) {
	context := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
	parsed, err := html.ParseFragment(strings.NewReader(src), context)
	if err != nil {
		return nil, err
	}
	out := make([]*Node, 0, len(parsed))
	for _, p := range parsed {
		if n := convert(p); n != nil {
			out = append(out, n)
		}
	}
	return out, nil
}

func convert(p *html.Node) *Node {
	switch p.Type {
	case html.TextNode:
		return CreateTextNode(p.Data)
	case html.ElementNode:
		n := CreateElement(p.Data)
		for _, a := range p.Attr {
			name := a.Key
			if a.Namespace != "" {
				name = a.Namespace + ":" + a.Key
			}
			n.SetAttribute(name, a.Val)
		}
		for c := p.FirstChild; c != nil; c = c.NextSibling {
			if child := convert(c); child != nil {
				n.AppendChild(child)
			}
		}
		return n
	default:
		return nil
	}
}

// SetInnerHTML replaces n's children with the parsed fragment and returns
// the new children.
func (n *Node) SetInnerHTML(src string) ([]*Node, error) {
	nodes, err := ParseFragment(src)
	if err != nil {
		return nil, err
	}
	for _, c := range n.ChildNodes {
		c.ParentNode = nil
	}
	n.ChildNodes = nil
	for _, c := range nodes {
		n.AppendChild(c)
	}
	return nodes, nil
}

// OuterHTML serializes n and its descendants.
func (n *Node) OuterHTML() string {
	var b strings.Builder
	n.writeHTML(&b)
	return b.String()
}

// InnerHTML serializes n's descendants.
func (n *Node) InnerHTML() string {
	var b strings.Builder
	for _, c := range n.ChildNodes {
		c.writeHTML(&b)
	}
	return b.String()
}

func (n *Node) writeHTML(b *strings.Builder) {
	if n.NodeType == TextNode {
		if p := n.ParentNode; p != nil && rawTextElements[strings.ToLower(p.TagName)] {
			b.WriteString(n.Data)
		} else {
			b.WriteString(escapeText(n.Data))
		}
		return
	}
	tag := strings.ToLower(n.TagName)
	b.WriteByte('<')
	b.WriteString(tag)
	for _, a := range n.attrs {
		b.WriteByte(' ')
		b.WriteString(a.Name)
		b.WriteString(`="`)
		b.WriteString(escapeAttr(a.Value))
		b.WriteByte('"')
	}
	b.WriteByte('>')
	if IsVoidElement(tag) {
		return
	}
	for _, c := range n.ChildNodes {
		c.writeHTML(b)
	}
	b.WriteString("</")
	b.WriteString(tag)
	b.WriteByte('>')
}
