package render

import (
	"github.com/vango-dev/vango-inspect/pkg/dom"
	"github.com/vango-dev/vango-inspect/pkg/vdom"
)

// AttrKey is the expando property holding a host element's attribute bag.
const AttrKey = "__vdomattr_"

// AttrSymbol is the expando key used instead of AttrKey under StashSymbol.
var AttrSymbol = dom.NewSymbol("vdomattr")

// StashMode selects where attribute bags are stashed.
type StashMode int

const (
	// StashProperty stores bags under the AttrKey string property.
	StashProperty StashMode = iota
	// StashSymbol stores bags under AttrSymbol.
	StashSymbol
)

// String returns the config spelling of the mode.
func (m StashMode) String() string {
	switch m {
	case StashProperty:
		return "property"
	case StashSymbol:
		return "symbol"
	default:
		return "unknown"
	}
}

// ParseStashMode parses "property" or "symbol". The empty string is
// StashProperty.
func ParseStashMode(s string) (StashMode, bool) {
	switch s {
	case "", "property":
		return StashProperty, true
	case "symbol":
		return StashSymbol, true
	}
	return StashProperty, false
}

// Stash stores attrs as n's attribute bag.
func Stash(n *dom.Node, attrs vdom.Props, mode StashMode) {
	if mode == StashSymbol {
		n.Set(AttrSymbol, attrs)
		return
	}
	n.Set(AttrKey, attrs)
}

// stashParsed gives every element in nodes, recursively, a bag built from
// its string attributes.
func stashParsed(nodes []*dom.Node, mode StashMode) {
	for _, n := range nodes {
		if n.NodeType != dom.ElementNode {
			continue
		}
		attrs := make(vdom.Props)
		for _, a := range n.Attributes() {
			attrs[a.Name] = a.Value
		}
		Stash(n, attrs, mode)
		stashParsed(n.ChildNodes, mode)
	}
}
