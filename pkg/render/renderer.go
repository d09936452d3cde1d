package render

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/vango-dev/vango-inspect/internal/errors"
	"github.com/vango-dev/vango-inspect/pkg/dom"
	"github.com/vango-dev/vango-inspect/pkg/vdom"
)

// Config configures the renderer.
type Config struct {
	// Stash selects where host elements keep their attribute bag.
	Stash StashMode

	// SanitizeRawHTML runs DangerouslySetInnerHTML content through a
	// bluemonday UGC policy before parsing it.
	SanitizeRawHTML bool

	// Logger receives debug output. If nil, slog.Default() is used.
	Logger *slog.Logger
}

// Renderer mounts VNode trees into host nodes.
type Renderer struct {
	config Config
	logger *slog.Logger
	policy *bluemonday.Policy
}

// New creates a new Renderer with the given configuration.
func New(config Config) *Renderer {
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	r := &Renderer{
		config: config,
		logger: logger,
	}
	if config.SanitizeRawHTML {
		r.policy = bluemonday.UGCPolicy()
	}
	return r
}

// Render mounts node, appends the resulting host node to container (when
// non-nil) and returns it.
func (r *Renderer) Render(node *vdom.VNode, container *dom.Node) (*dom.Node, error) {
	base, err := r.build(node, nil, nil)
	if err != nil {
		return nil, err
	}
	if container != nil {
		container.AppendChild(base)
	}
	return base, nil
}

// RenderHTML parses src as an HTML fragment, stashes an attribute bag on
// every element, appends the nodes to container (when non-nil) and returns
// the first top-level element, or the first node when there is no element.
func (r *Renderer) RenderHTML(src string, container *dom.Node) (*dom.Node, error) {
	nodes, err := dom.ParseFragment(r.sanitize(src))
	if err != nil {
		return nil, errors.New("R002").Wrap(err)
	}
	if len(nodes) == 0 {
		return nil, errors.New("R002").WithDetail("fragment contains no nodes")
	}
	stashParsed(nodes, r.config.Stash)
	if container != nil {
		for _, n := range nodes {
			container.AppendChild(n)
		}
	}
	for _, n := range nodes {
		if n.NodeType == dom.ElementNode {
			return n, nil
		}
	}
	return nodes[0], nil
}

// build dispatches on node kind. A nil node renders as an empty text node.
func (r *Renderer) build(node *vdom.VNode, ctx vdom.Context, parent *Instance) (*dom.Node, error) {
	if node == nil {
		return dom.CreateTextNode(""), nil
	}

	switch node.Kind {
	case vdom.KindText:
		return dom.CreateTextNode(node.Text), nil
	case vdom.KindElement:
		return r.buildElement(node, ctx)
	case vdom.KindComponent:
		_, base, err := r.buildComponent(node, ctx, parent)
		return base, err
	default:
		return nil, errors.New("R001").WithDetailf("unknown node kind: %d", node.Kind)
	}
}

// buildElement creates a host element, stashes its attribute bag and
// renders its children.
func (r *Renderer) buildElement(node *vdom.VNode, ctx vdom.Context) (*dom.Node, error) {
	tag := node.Tag()
	if tag == "" {
		return nil, errors.New("R001").WithDetailf("element with type %T", node.Type)
	}

	el := dom.CreateElement(tag)
	Stash(el, node.Props.Clone(), r.config.Stash)
	setAttributes(el, node.Props)

	if rawHTML, ok := node.Props["dangerouslySetInnerHTML"].(string); ok {
		nodes, err := el.SetInnerHTML(r.sanitize(rawHTML))
		if err != nil {
			return nil, errors.New("R002").Wrap(err)
		}
		stashParsed(nodes, r.config.Stash)
	} else if !dom.IsVoidElement(tag) {
		for _, child := range node.Children {
			c, err := r.build(child, ctx, nil)
			if err != nil {
				return nil, err
			}
			el.AppendChild(c)
		}
	}

	if ref, ok := node.Ref.(func(*dom.Node)); ok {
		ref(el)
	}
	return el, nil
}

// buildComponent instantiates and renders a component. When the component
// renders another component the two are linked through Instance.Child and
// share the same base node. As the recursion unwinds each level overwrites
// the base's owner, leaving the outermost component.
func (r *Renderer) buildComponent(node *vdom.VNode, ctx vdom.Context, parent *Instance) (*Instance, *dom.Node, error) {
	class, err := resolveClass(node.Type)
	if err != nil {
		return nil, nil, err
	}

	props := node.Props.Clone()
	delete(props, "key")
	delete(props, "ref")
	if len(node.Children) > 0 {
		props["children"] = node.Children
	}

	comp := class.New()
	if b, ok := comp.(vdom.Binder); ok {
		b.Bind(node.Origin)
	}

	var state vdom.State
	if si, ok := comp.(vdom.StateInitializer); ok {
		state = si.InitialState(props)
	}

	inst := &Instance{
		Class:     class,
		Component: comp,
		Props:     props,
		State:     state,
		Context:   ctx,
		Key:       node.Key,
		Ref:       node.Ref,
		Parent:    parent,
	}

	childCtx := ctx
	if cp, ok := comp.(vdom.ContextProvider); ok {
		childCtx = mergeContext(ctx, cp.ChildContext())
	}

	rendered := comp.Render(props, state, ctx)

	var base *dom.Node
	if rendered != nil && rendered.Kind == vdom.KindComponent {
		child, b, err := r.buildComponent(rendered, childCtx, inst)
		if err != nil {
			return nil, nil, err
		}
		inst.Child = child
		base = b
	} else {
		base, err = r.build(rendered, childCtx, inst)
		if err != nil {
			return nil, nil, err
		}
	}

	inst.Base = base
	base.Set(componentKey, inst)

	r.logger.Debug("mounted component", "class", class.Name, "base", base.TagName)
	return inst, base, nil
}

// resolveClass returns the class to instantiate for a component type.
// Function components that were not replaced by a node hook get a
// throwaway class named after the function.
func resolveClass(typ any) (*vdom.Class, error) {
	if c, ok := typ.(*vdom.Class); ok {
		if c == nil || c.New == nil {
			return nil, errors.New("R001").WithDetail("class without constructor")
		}
		return c, nil
	}
	if fn, ok := vdom.AsFuncComponent(typ); ok {
		return &vdom.Class{
			Name: vdom.FuncName(typ),
			New: func() vdom.Component {
				return funcInstance(fn)
			},
		}, nil
	}
	return nil, errors.New("R001").WithDetailf("component type %T", typ)
}

type funcInstance vdom.FuncComponent

func (f funcInstance) Render(props vdom.Props, _ vdom.State, ctx vdom.Context) *vdom.VNode {
	return f(props, ctx)
}

func mergeContext(parent, extra vdom.Context) vdom.Context {
	if len(extra) == 0 {
		return parent
	}
	out := make(vdom.Context, len(parent)+len(extra))
	for k, v := range parent {
		out[k] = v
	}
	for k, v := range extra {
		out[k] = v
	}
	return out
}

func (r *Renderer) sanitize(src string) string {
	if r.policy == nil {
		return src
	}
	return r.policy.Sanitize(src)
}

// setAttributes writes the DOM-visible attributes of props onto el.
func setAttributes(el *dom.Node, props vdom.Props) {
	keys := make([]string, 0, len(props))
	for key := range props {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := props[key]

		// Skip event handlers (they stay in the attribute bag only)
		if strings.HasPrefix(key, "on") && isEventHandler(value) {
			continue
		}

		switch key {
		case "key", "ref", "children", "dangerouslySetInnerHTML":
			continue
		case "className":
			key = "class"
		case "htmlFor":
			key = "for"
		}

		if b, ok := value.(bool); ok {
			if b {
				el.SetAttribute(key, "")
			}
			continue
		}

		if s := attrToString(value); s != "" {
			el.SetAttribute(key, s)
		}
	}
}

// isEventHandler returns true if the value looks like an event handler.
func isEventHandler(value any) bool {
	if value == nil {
		return false
	}
	switch value.(type) {
	case func():
		return true
	case func(any):
		return true
	default:
		return strings.HasPrefix(fmt.Sprintf("%T", value), "func")
	}
}

// attrToString converts an attribute value to a string.
func attrToString(value any) string {
	if value == nil {
		return ""
	}
	switch v := value.(type) {
	case string:
		return v
	case int:
		return fmt.Sprintf("%d", v)
	case int64:
		return fmt.Sprintf("%d", v)
	case float64:
		return fmt.Sprintf("%g", v)
	default:
		return fmt.Sprintf("%v", v)
	}
}
