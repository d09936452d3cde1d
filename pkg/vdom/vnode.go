package vdom

// VKind is the node type discriminator.
type VKind uint8

const (
	KindElement   VKind = iota // <div>, <button>, etc.
	KindText                   // Plain text node
	KindComponent              // Class or function component
)

// String returns the string representation of the VKind.
func (k VKind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	case KindComponent:
		return "Component"
	default:
		return "Unknown"
	}
}

// VNode is the virtual DOM node.
type VNode struct {
	Kind VKind // Node type

	// Type is the tag name for elements, and a *Class, FuncComponent or
	// func(Props, Context) *VNode for components. Hooks may replace it.
	Type any

	// Origin is the component type H was called with. Hooks never touch it.
	Origin any

	Props    Props    // Attributes and event handlers, including key and ref
	Children []*VNode // Child nodes
	Key      any      // Reconciliation key
	Ref      any      // Ref callback or handle
	Text     string   // For KindText
}

// Tag returns the element tag name, or "" for non-elements.
func (v *VNode) Tag() string {
	if v == nil || v.Kind != KindElement {
		return ""
	}
	s, _ := v.Type.(string)
	return s
}

// Props holds attributes and event handlers.
type Props map[string]any

// Clone returns a shallow copy of p. A nil Props clones to an empty map.
func (p Props) Clone() Props {
	out := make(Props, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// Attr represents a single attribute.
type Attr struct {
	Key   string
	Value any
}

// IsEmpty returns true if this is an empty/nil attribute.
func (a Attr) IsEmpty() bool {
	return a.Key == ""
}

// EventHandler represents an event handler.
type EventHandler struct {
	Event   string // "onClick", "onInput", etc.
	Handler any    // Function to call
}
