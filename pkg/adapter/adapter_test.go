package adapter_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vango-dev/vango-inspect/internal/errors"
	"github.com/vango-dev/vango-inspect/pkg/adapter"
	"github.com/vango-dev/vango-inspect/pkg/dom"
	"github.com/vango-dev/vango-inspect/pkg/funcwrap"
	"github.com/vango-dev/vango-inspect/pkg/render"
	"github.com/vango-dev/vango-inspect/pkg/vdom"
	"github.com/vango-dev/vango-inspect/pkg/vtest"
)

// stashModes runs each suite against both attribute-bag locations.
var stashModes = []struct {
	name   string
	config render.Config
}{
	{"property", render.Config{Stash: render.StashProperty}},
	{"symbol", render.Config{Stash: render.StashSymbol}},
}

func forEachStashMode(t *testing.T, fn func(t *testing.T, mount func(*testing.T, *vdom.VNode) adapter.Element)) {
	for _, mode := range stashModes {
		t.Run(mode.name, func(t *testing.T) {
			fn(t, func(t *testing.T, node *vdom.VNode) adapter.Element {
				return vtest.MountRoot(t, node, mode.config)
			})
		})
	}
}

func TestGetName(t *testing.T) {
	forEachStashMode(t, func(t *testing.T, mount func(*testing.T, *vdom.VNode) adapter.Element) {
		a := adapter.New()

		t.Run("returns the name of a class component", func(t *testing.T) {
			vtest.ExpectName(t, a, mount(t, vdom.H(RenderES6)), "ES6Comp")
		})

		t.Run("returns the name of the HTML node rendered as a direct child", func(t *testing.T) {
			vtest.ExpectName(t, a, mount(t, vdom.H(DeepComponent)), "div")
		})

		t.Run("returns the name of a stateless component", func(t *testing.T) {
			vtest.ExpectName(t, a, mount(t, vdom.H(RenderStateless2)), "StatelessComponent")
		})

		t.Run("returns the name of a rendered class node when using WrapNode", func(t *testing.T) {
			el := adapter.WrapNode(vtest.Mount(t, vdom.H(RenderES6)))
			vtest.ExpectName(t, a, el, "RenderES6")
		})

		t.Run("returns the name of a rendered stateless node when using WrapNode", func(t *testing.T) {
			el := adapter.WrapNode(vtest.Mount(t, vdom.H(RenderStateless)))
			vtest.ExpectName(t, a, el, "RenderStateless")
		})

		t.Run("returns the name of a plain HTML element when using WrapNode", func(t *testing.T) {
			el := adapter.WrapNode(vtest.Mount(t, vdom.Div()))
			vtest.ExpectName(t, a, el, "div")
		})
	})
}

func TestGetNameFallbacks(t *testing.T) {
	a := adapter.New()

	anonymous := func(vdom.Props, vdom.Context) *vdom.VNode {
		return vdom.H(func(vdom.Props, vdom.Context) *vdom.VNode { return vdom.Span() })
	}
	vtest.ExpectName(t, a, vtest.MountRoot(t, vdom.H(anonymous)), funcwrap.FallbackName)

	vtest.ExpectName(t, a, adapter.NodeElement{Node: &dom.Node{NodeType: dom.ElementNode}}, "no-display-name")

	_, ok := a.GetName(nil)
	assert.False(t, ok)
	_, ok = a.GetName(adapter.NodeElement{})
	assert.False(t, ok)
	_, ok = a.GetName(adapter.ComponentElement{})
	assert.False(t, ok)
}

func TestGetNamePrefersDisplayName(t *testing.T) {
	c := vdom.NewClass("inner", func(vdom.Props, vdom.State, vdom.Context) *vdom.VNode { return vdom.Span() })
	c.DisplayName = "Pretty"
	el := adapter.WrapNode(vtest.Mount(t, vdom.H(c)))

	vtest.ExpectName(t, adapter.New(), el, "Pretty")
}

func TestGetChildren(t *testing.T) {
	forEachStashMode(t, func(t *testing.T, mount func(*testing.T, *vdom.VNode) adapter.Element) {
		a := adapter.New()

		t.Run("returns a single string child of a rendered component", func(t *testing.T) {
			children := vtest.Children(t, a, mount(t, vdom.H(ES6Comp)))
			assert.Equal(t, []adapter.Child{adapter.Text("es6 component")}, children)
		})

		t.Run("returns a single stateless component child", func(t *testing.T) {
			children := vtest.Children(t, a, mount(t, vdom.H(RenderStateless3)))
			assert.Equal(t, []string{"StatelessComponent"}, vtest.Names(t, a, children))
		})

		t.Run("returns a single stateless component grandchild", func(t *testing.T) {
			children := vtest.Children(t, a, mount(t, vdom.H(RenderStateless3)))
			grandchildren := vtest.Children(t, a, vtest.Element(t, children, 0))
			assert.Equal(t, []string{"span"}, vtest.Names(t, a, grandchildren))
		})

		t.Run("returns a single stateless component great-grandchild text", func(t *testing.T) {
			children := vtest.Children(t, a, mount(t, vdom.H(RenderStateless3)))
			grandchildren := vtest.Children(t, a, vtest.Element(t, children, 0))
			greatGrandchildren := vtest.Children(t, a, vtest.Element(t, grandchildren, 0))
			assert.Equal(t, []adapter.Child{adapter.Text("stateless")}, greatGrandchildren)
		})

		t.Run("returns multiple custom components", func(t *testing.T) {
			root := mount(t, vdom.H(DeepComponent))
			vtest.ExpectName(t, a, root, "div")
			children := vtest.Children(t, a, root)
			grandchildren := vtest.Children(t, a, vtest.Element(t, children, 0))
			assert.Equal(t, []string{"ES6Comp", "ES6Comp"}, vtest.Names(t, a, grandchildren))
		})

		t.Run("returns multiple HTML elements", func(t *testing.T) {
			children := vtest.Children(t, a, mount(t, vdom.H(DeepComponent)))
			assert.Equal(t, []string{"span", "span"}, vtest.Names(t, a, children))

			second := vtest.Children(t, a, vtest.Element(t, children, 1))
			assert.Equal(t, []adapter.Child{adapter.Text("second")}, second)
		})

		t.Run("returns empty children when a node has no content", func(t *testing.T) {
			renderEmptyDiv := func(vdom.Props, vdom.Context) *vdom.VNode { return vdom.Div(vdom.Nothing()) }
			children := vtest.Children(t, a, mount(t, vdom.H(renderEmptyDiv)))
			assert.Empty(t, children)
		})

		t.Run("returns children from a node set with DangerouslySetInnerHTML", func(t *testing.T) {
			children := vtest.Children(t, a, mount(t, vdom.H(DangerouslySetHTML)))
			assert.Equal(t, []string{`"Here is a "`, "a"}, vtest.Names(t, a, children))
		})
	})
}

func TestGetChildrenOfTextNode(t *testing.T) {
	a := adapter.New()
	el := adapter.NodeElement{Node: dom.CreateTextNode("just text")}

	children, err := a.GetChildren(el)
	require.NoError(t, err)
	assert.Equal(t, []adapter.Child{adapter.Text("just text")}, children)
}

func TestGetChildrenUnwrapsOneComponentPerCall(t *testing.T) {
	a := adapter.New()
	node := vtest.Mount(t, vdom.H(RenderStateless3))

	var names []string
	var el adapter.Element = adapter.WrapNode(node)
	for el.Type() == adapter.ComponentType {
		name, _ := a.GetName(el)
		names = append(names, name)
		children := vtest.Children(t, a, el)
		require.Len(t, children, 1)
		el = vtest.Element(t, children, 0)
		switch e := el.(type) {
		case adapter.ComponentElement:
			assert.Same(t, node, e.Node, "the chain shares one host node")
		case adapter.NodeElement:
			assert.Same(t, node, e.Node)
		}
	}

	assert.Equal(t, []string{"RenderStateless3", "RenderStateless2", "StatelessComponent"}, names)
	vtest.ExpectName(t, a, el, "span")
}

func TestGetAttributes(t *testing.T) {
	forEachStashMode(t, func(t *testing.T, mount func(*testing.T, *vdom.VNode) adapter.Element) {
		t.Run("returns simple props from a class component", func(t *testing.T) {
			el := mount(t, vdom.H(RenderES6, vdom.ClassName("passed-through")))
			vtest.ExpectAttributes(t, adapter.New(), el, map[string]any{"class": "passed-through"})
		})

		t.Run("returns simple props from an HTML element", func(t *testing.T) {
			el := mount(t, vdom.H(ES6Comp, vdom.ClassName("passed-through"), vdom.Data("foo", "bar")))
			vtest.ExpectAttributes(t, adapter.New(), el, map[string]any{"class": "passed-through", "data-foo": "bar"})
		})

		t.Run("returns an event handler", func(t *testing.T) {
			attrs, err := adapter.New().GetAttributes(mount(t, vdom.H(WithEvents)))
			require.NoError(t, err)
			require.Contains(t, attrs, "onClick")
			assert.Equal(t, reflect.Func, reflect.TypeOf(attrs["onClick"]).Kind())
		})

		t.Run("gets attributes for a deep nested result", func(t *testing.T) {
			deep := func(vdom.Props, vdom.Context) *vdom.VNode {
				return vdom.Div(vdom.Data("foo", "bar"), vdom.Span(vdom.Data("deep", "baz"), "Hi"))
			}
			a := adapter.New()
			children := vtest.Children(t, a, mount(t, vdom.H(deep)))
			vtest.ExpectAttributes(t, a, vtest.Element(t, children, 0), map[string]any{"data-deep": "baz"})
		})

		t.Run("gets attributes for a node created with DangerouslySetInnerHTML", func(t *testing.T) {
			a := adapter.New()
			children := vtest.Children(t, a, mount(t, vdom.H(DangerouslySetHTML)))
			vtest.ExpectAttributes(t, a, vtest.Element(t, children, 1), map[string]any{"class": "inner", "href": "/foo"})
		})

		t.Run("normalizes className to class for a custom component", func(t *testing.T) {
			classTest := func(p vdom.Props, _ vdom.Context) *vdom.VNode {
				return vdom.H(ES6Comp, passClassName(p))
			}
			el := mount(t, vdom.H(classTest, vdom.ClassName("foo")))
			vtest.ExpectAttributes(t, adapter.New(), el, map[string]any{"class": "foo"})
		})

		t.Run("normalizes className to class for an HTML element", func(t *testing.T) {
			classTest := func(p vdom.Props, _ vdom.Context) *vdom.VNode {
				return vdom.Div(passClassName(p))
			}
			el := mount(t, vdom.H(classTest, vdom.ClassName("foo")))
			vtest.ExpectAttributes(t, adapter.New(), el, map[string]any{"class": "foo"})
		})

		t.Run("keeps className when class is also set", func(t *testing.T) {
			el := mount(t, vdom.Div(vdom.ClassName("a"), vdom.ClassAttr("b")))
			vtest.ExpectAttributes(t, adapter.New(), el, map[string]any{"class": "b", "className": "a"})
		})

		keyOnHTML := func(vdom.Props, vdom.Context) *vdom.VNode {
			return vdom.Div(vdom.Key(42), vdom.ClassAttr("one two"))
		}
		keyOnCustom := func(vdom.Props, vdom.Context) *vdom.VNode {
			return vdom.H(RenderES6, vdom.Key(42), vdom.ClassAttr("one two"))
		}

		t.Run("with standard options does not return the key on an HTML node", func(t *testing.T) {
			vtest.ExpectAttributes(t, adapter.New(), mount(t, vdom.H(keyOnHTML)), map[string]any{"class": "one two"})
		})

		t.Run("with IncludeKeyProp returns the key on an HTML node", func(t *testing.T) {
			a := adapter.New()
			el := mount(t, vdom.H(keyOnHTML))
			a.SetOptions(adapter.WithIncludeKeyProp(true))
			vtest.ExpectAttributes(t, a, el, map[string]any{"key": 42, "class": "one two"})
		})

		t.Run("with standard options does not return the key on a custom node", func(t *testing.T) {
			vtest.ExpectAttributes(t, adapter.New(), mount(t, vdom.H(keyOnCustom)), map[string]any{"class": "one two"})
		})

		t.Run("with IncludeKeyProp returns the key on a custom node", func(t *testing.T) {
			a := adapter.New()
			el := mount(t, vdom.H(keyOnCustom))
			a.SetOptions(adapter.WithIncludeKeyProp(true))
			vtest.ExpectAttributes(t, a, el, map[string]any{"key": 42, "class": "one two"})
		})

		refFn := func() {}
		refOnHTML := func(vdom.Props, vdom.Context) *vdom.VNode {
			return vdom.Div(vdom.Ref(refFn), vdom.ClassAttr("one two"))
		}
		refOnCustom := func(vdom.Props, vdom.Context) *vdom.VNode {
			return vdom.H(RenderES6, vdom.Ref(refFn), vdom.ClassAttr("one two"))
		}

		t.Run("with standard options does not return the ref on an HTML node", func(t *testing.T) {
			vtest.ExpectAttributes(t, adapter.New(), mount(t, vdom.H(refOnHTML)), map[string]any{"class": "one two"})
		})

		t.Run("with IncludeRefProp returns the ref on an HTML node", func(t *testing.T) {
			a := adapter.New()
			el := mount(t, vdom.H(refOnHTML))
			a.SetOptions(adapter.WithIncludeRefProp(true))
			vtest.ExpectAttributes(t, a, el, map[string]any{"ref": refFn, "class": "one two"})
		})

		t.Run("with standard options does not return the ref on a custom node", func(t *testing.T) {
			vtest.ExpectAttributes(t, adapter.New(), mount(t, vdom.H(refOnCustom)), map[string]any{"class": "one two"})
		})

		t.Run("with IncludeRefProp returns the ref on a custom node", func(t *testing.T) {
			a := adapter.New()
			el := mount(t, vdom.H(refOnCustom))
			a.SetOptions(adapter.WithIncludeRefProp(true))
			vtest.ExpectAttributes(t, a, el, map[string]any{"ref": refFn, "class": "one two"})
		})
	})
}

func TestGetAttributesDropsChildren(t *testing.T) {
	wrapper := vdom.NewClass("Wrapper", func(p vdom.Props, _ vdom.State, _ vdom.Context) *vdom.VNode {
		return vdom.H(ES6Comp, vdom.Prop("title", p["title"]), vdom.Span("inner"))
	})
	outer := func(vdom.Props, vdom.Context) *vdom.VNode {
		return vdom.H(wrapper, vdom.Prop("title", "t"))
	}

	a := adapter.New()
	el := vtest.MountRoot(t, vdom.H(outer))
	vtest.ExpectName(t, a, el, "Wrapper")

	nested := vtest.Element(t, vtest.Children(t, a, el), 0)
	vtest.ExpectName(t, a, nested, "ES6Comp")
	vtest.ExpectAttributes(t, a, nested, map[string]any{"title": "t"})
}

func TestGetAttributesErrors(t *testing.T) {
	a := adapter.New()

	tests := []struct {
		name string
		el   adapter.Element
	}{
		{"nil element", nil},
		{"host node without attribute bag", adapter.NodeElement{Node: dom.CreateElement("div")}},
		{"text node", adapter.NodeElement{Node: dom.CreateTextNode("x")}},
		{"nil host node", adapter.NodeElement{}},
		{"component without instance", adapter.ComponentElement{Node: dom.CreateElement("div")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := a.GetAttributes(tt.el)
			require.Error(t, err)
			assert.True(t, errors.IsCode(err, "A001"), "err = %v", err)
		})
	}
}

func TestGetChildrenErrors(t *testing.T) {
	a := adapter.New()

	for _, el := range []adapter.Element{nil, adapter.NodeElement{}, adapter.ComponentElement{}} {
		_, err := a.GetChildren(el)
		require.Error(t, err)
		assert.True(t, errors.IsCode(err, "A002"), "err = %v", err)
	}
}

func TestOptions(t *testing.T) {
	a := adapter.New()
	assert.Equal(t, adapter.Options{}, a.Options())

	a.SetOptions(adapter.WithIncludeKeyProp(true))
	a.SetOptions(adapter.WithIncludeRefProp(true))
	assert.Equal(t, adapter.Options{IncludeKeyProp: true, IncludeRefProp: true}, a.Options())

	a.SetOptions(adapter.WithIncludeKeyProp(false))
	assert.Equal(t, adapter.Options{IncludeRefProp: true}, a.Options(), "patch only overrides what it sets")

	b := adapter.New(adapter.WithIncludeRefProp(true))
	assert.True(t, b.Options().IncludeRefProp)
	assert.Equal(t, "class", b.ClassAttributeName())
}

func TestFunctionWrapperReusedAcrossRenders(t *testing.T) {
	first := render.ComponentOf(vtest.Mount(t, vdom.H(StatelessComponent)))
	second := render.ComponentOf(vtest.Mount(t, vdom.H(StatelessComponent)))

	require.NotNil(t, first)
	require.NotNil(t, second)
	assert.NotSame(t, first, second, "instances are per render")
	assert.Same(t, first.Class, second.Class, "the wrapper class is shared")
}

func TestWrapRootNode(t *testing.T) {
	node := vtest.Mount(t, vdom.H(RenderES6))
	el, ok := adapter.WrapRootNode(node).(adapter.ComponentElement)
	require.True(t, ok)
	assert.Equal(t, "ES6Comp", el.Component.Class.Name)
	assert.Same(t, node, el.Node)

	plain := vtest.Mount(t, vdom.Span())
	assert.Equal(t, adapter.NodeElement{Node: plain}, adapter.WrapRootNode(plain))

	single := vtest.Mount(t, vdom.H(ES6Comp))
	assert.Equal(t, adapter.NodeType, adapter.WrapRootNode(single).Type(),
		"a component that rendered an element wraps the node")
}

func TestElementTypeString(t *testing.T) {
	assert.Equal(t, "VDOMNode", adapter.NodeType.String())
	assert.Equal(t, "VDOMComponentInstance", adapter.ComponentType.String())
	assert.Equal(t, "Unknown", adapter.ElementType(0).String())
}

func TestRenderedAndParsedLinksAgree(t *testing.T) {
	forEachStashMode(t, func(t *testing.T, mount func(*testing.T, *vdom.VNode) adapter.Element) {
		a := adapter.New()
		built := mount(t, vdom.A(vdom.ClassName("inner"), vdom.Href("/foo"), "link"))
		parsed := vtest.Element(t, vtest.Children(t, a, mount(t, vdom.H(DangerouslySetHTML))), 1)

		builtAttrs, err := a.GetAttributes(built)
		require.NoError(t, err)
		parsedAttrs, err := a.GetAttributes(parsed)
		require.NoError(t, err)
		assert.Equal(t, parsedAttrs, builtAttrs)
		assert.Equal(t, vtest.Children(t, a, parsed), vtest.Children(t, a, built))
	})
}
