package adapter

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/vango-dev/vango-inspect/internal/errors"
	"github.com/vango-dev/vango-inspect/pkg/dom"
	"github.com/vango-dev/vango-inspect/pkg/render"
	"github.com/vango-dev/vango-inspect/pkg/vdom"
)

// noDisplayName is the name of host nodes without a tag.
const noDisplayName = "no-display-name"

// Options controls which props GetAttributes reports.
type Options struct {
	IncludeKeyProp bool
	IncludeRefProp bool
}

// Option patches Options.
type Option func(*Options)

// WithIncludeKeyProp sets IncludeKeyProp.
func WithIncludeKeyProp(v bool) Option {
	return func(o *Options) { o.IncludeKeyProp = v }
}

// WithIncludeRefProp sets IncludeRefProp.
func WithIncludeRefProp(v bool) Option {
	return func(o *Options) { o.IncludeRefProp = v }
}

// Adapter exposes rendered trees to an HTML-like assertion library.
type Adapter struct {
	options Options
}

// New creates an Adapter. Both key and ref are excluded by default.
func New(opts ...Option) *Adapter {
	a := &Adapter{}
	a.SetOptions(opts...)
	return a
}

// SetOptions applies opts on top of the current options.
func (a *Adapter) SetOptions(opts ...Option) {
	for _, opt := range opts {
		opt(&a.options)
	}
}

// Options returns the current options.
func (a *Adapter) Options() Options {
	return a.options
}

// ClassAttributeName is the attribute the adapter reports CSS classes under.
func (a *Adapter) ClassAttributeName() string {
	return "class"
}

// GetName returns the display name of el. The second result is false when
// el is not a recognized element.
func (a *Adapter) GetName(el Element) (string, bool) {
	switch e := el.(type) {
	case NodeElement:
		if e.Node == nil {
			return "", false
		}
		if e.Node.TagName != "" {
			return strings.ToLower(e.Node.TagName), true
		}
		return noDisplayName, true
	case ComponentElement:
		if e.Component == nil {
			return "", false
		}
		return componentName(e.Component), true
	default:
		return "", false
	}
}

func componentName(inst *render.Instance) string {
	if c := inst.Class; c != nil {
		if c.DisplayName != "" {
			return c.DisplayName
		}
		return c.Name
	}
	t := reflect.TypeOf(inst.Component)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil {
		return ""
	}
	return t.Name()
}

// GetAttributes returns el's props normalized for comparison: children are
// dropped, className is reported as class, and key and ref follow Options.
func (a *Adapter) GetAttributes(el Element) (map[string]any, error) {
	switch e := el.(type) {
	case ComponentElement:
		if e.Component == nil {
			break
		}
		inst := e.Component
		props := map[string]any(inst.Props.Clone())
		delete(props, "children")
		normalizeClassName(props)

		delete(props, "key")
		if a.options.IncludeKeyProp && inst.Key != nil {
			props["key"] = inst.Key
		}
		delete(props, "ref")
		if a.options.IncludeRefProp && inst.Ref != nil {
			props["ref"] = inst.Ref
		}
		return props, nil

	case NodeElement:
		bag, ok := attributeBag(e.Node)
		if !ok {
			break
		}
		props := map[string]any(bag.Clone())
		delete(props, "children")
		normalizeClassName(props)
		if !a.options.IncludeKeyProp {
			delete(props, "key")
		}
		if !a.options.IncludeRefProp {
			delete(props, "ref")
		}
		return props, nil
	}

	return nil, errors.New("A001").WithDetail(describe(el))
}

// attributeBag finds the attribute bag the renderer stashed on n.
func attributeBag(n *dom.Node) (vdom.Props, bool) {
	if n == nil {
		return nil, false
	}
	for _, key := range []any{render.AttrKey, render.AttrSymbol} {
		if v, ok := n.Get(key); ok {
			if bag, ok := v.(vdom.Props); ok && bag != nil {
				return bag, true
			}
		}
	}
	return nil, false
}

func normalizeClassName(props map[string]any) {
	cn, ok := props["className"].(string)
	if !ok {
		return
	}
	if _, has := props["class"]; has {
		return
	}
	props["class"] = cn
	delete(props, "className")
}

// GetChildren returns el's children. A component yields its nested
// component or, at the end of the chain, its host node. A text node yields
// its text. An element yields its text children, minus empty ones, and its
// element children wrapped with WrapNode.
func (a *Adapter) GetChildren(el Element) ([]Child, error) {
	switch e := el.(type) {
	case ComponentElement:
		if e.Component == nil {
			break
		}
		if nested := e.Component.Child; nested != nil {
			return []Child{ComponentElement{Component: nested, Node: e.Node}}, nil
		}
		return []Child{NodeElement{Node: e.Node}}, nil

	case NodeElement:
		if e.Node == nil {
			break
		}
		if e.Node.NodeType == dom.TextNode {
			return []Child{Text(e.Node.TextContent())}, nil
		}
		children := make([]Child, 0, len(e.Node.ChildNodes))
		for _, item := range e.Node.ChildNodes {
			if item.NodeType == dom.TextNode {
				if text := item.TextContent(); text != "" {
					children = append(children, Text(text))
				}
				continue
			}
			children = append(children, WrapNode(item))
		}
		return children, nil
	}

	return nil, errors.New("A002").WithDetail(describe(el))
}

func describe(el Element) string {
	if el == nil {
		return "element is nil"
	}
	return fmt.Sprintf("element of type %T", el)
}
