package render

import (
	"github.com/vango-dev/vango-inspect/pkg/dom"
	"github.com/vango-dev/vango-inspect/pkg/vdom"
)

// componentKey is the expando slot holding a host node's owning Instance.
const componentKey = "_component"

// Instance is a mounted component.
type Instance struct {
	Class     *vdom.Class
	Component vdom.Component

	// Props excludes key and ref; children are under "children".
	Props   vdom.Props
	State   vdom.State
	Context vdom.Context
	Key     any
	Ref     any

	// Base is the host node the component rendered to.
	Base *dom.Node

	// Child is the component this component rendered, if it rendered a
	// component rather than an element.
	Child *Instance

	// Parent is the component that rendered this one, if any.
	Parent *Instance
}

// ComponentOf returns the outermost component whose base is n, or nil.
func ComponentOf(n *dom.Node) *Instance {
	v, ok := n.Get(componentKey)
	if !ok {
		return nil
	}
	inst, _ := v.(*Instance)
	return inst
}
