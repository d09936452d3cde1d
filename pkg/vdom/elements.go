package vdom

// H creates a VNode for typ, which is a tag name, a *Class or a function
// component. Arguments can be: nil, Attr, []Attr, Props, EventHandler,
// *VNode, []*VNode, string.
//
// A typed nil *VNode child becomes an empty text node, the same
// placeholder a component rendering nil produces.
func H(typ any, args ...any) *VNode {
	node := &VNode{
		Type:     typ,
		Props:    make(Props),
		Children: make([]*VNode, 0),
	}
	if _, ok := typ.(string); ok {
		node.Kind = KindElement
	} else {
		node.Kind = KindComponent
		node.Origin = typ
	}

	for _, arg := range args {
		switch v := arg.(type) {
		case nil:
			// Ignore nil (allows conditional attributes)
			continue

		case Attr:
			node.setAttr(v)

		case []Attr:
			for _, attr := range v {
				node.setAttr(attr)
			}

		case Props:
			for key, value := range v {
				node.setAttr(Attr{Key: key, Value: value})
			}

		case EventHandler:
			if v.Event != "" {
				node.Props[v.Event] = v.Handler
			}

		case *VNode:
			if v == nil {
				node.Children = append(node.Children, Text(""))
			} else {
				node.Children = append(node.Children, v)
			}

		case []*VNode:
			for _, child := range v {
				if child != nil {
					node.Children = append(node.Children, child)
				}
			}

		case string:
			node.Children = append(node.Children, Text(v))
		}
	}

	return created(node)
}

func (v *VNode) setAttr(a Attr) {
	if a.IsEmpty() {
		return
	}
	switch a.Key {
	case "key":
		v.Key = a.Value
	case "ref":
		v.Ref = a.Value
	}
	v.Props[a.Key] = a.Value
}

// Element creates an element with an arbitrary tag.
func Element(tag string, args ...any) *VNode { return H(tag, args...) }

// Div creates a <div> element.
func Div(args ...any) *VNode { return H("div", args...) }

// Span creates a <span> element.
func Span(args ...any) *VNode { return H("span", args...) }

// P creates a <p> element.
func P(args ...any) *VNode { return H("p", args...) }

// A creates an <a> element.
func A(args ...any) *VNode { return H("a", args...) }

// Button creates a <button> element.
func Button(args ...any) *VNode { return H("button", args...) }

// Ul creates a <ul> element.
func Ul(args ...any) *VNode { return H("ul", args...) }

// Li creates an <li> element.
func Li(args ...any) *VNode { return H("li", args...) }

// Input creates an <input> element.
func Input(args ...any) *VNode { return H("input", args...) }
