package vtest

import (
	"reflect"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/vango-dev/vango-inspect/pkg/adapter"
	"github.com/vango-dev/vango-inspect/pkg/dom"
	"github.com/vango-dev/vango-inspect/pkg/render"
	"github.com/vango-dev/vango-inspect/pkg/vdom"
)

// Mount renders node into a fresh <div> container with config and returns
// the rendered root host node.
func Mount(t testing.TB, node *vdom.VNode, config ...render.Config) *dom.Node {
	t.Helper()
	var cfg render.Config
	if len(config) > 0 {
		cfg = config[0]
	}
	root, err := render.New(cfg).Render(node, dom.CreateElement("div"))
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	return root
}

// MountRoot mounts node and wraps the result with adapter.WrapRootNode.
func MountRoot(t testing.TB, node *vdom.VNode, config ...render.Config) adapter.Element {
	t.Helper()
	return adapter.WrapRootNode(Mount(t, node, config...))
}

// Children returns a.GetChildren(el), failing the test on error.
func Children(t testing.TB, a *adapter.Adapter, el adapter.Element) []adapter.Child {
	t.Helper()
	children, err := a.GetChildren(el)
	if err != nil {
		t.Fatalf("GetChildren: %v", err)
	}
	return children
}

// Element returns children[i] as an Element, failing the test if it is
// out of range or a text child.
func Element(t testing.TB, children []adapter.Child, i int) adapter.Element {
	t.Helper()
	if i >= len(children) {
		t.Fatalf("child %d requested, only %d children", i, len(children))
	}
	el, ok := children[i].(adapter.Element)
	if !ok {
		t.Fatalf("child %d is %T, not an element", i, children[i])
	}
	return el
}

// Names describes children: element names as-is, text children quoted.
func Names(t testing.TB, a *adapter.Adapter, children []adapter.Child) []string {
	t.Helper()
	out := make([]string, 0, len(children))
	for _, c := range children {
		switch c := c.(type) {
		case adapter.Text:
			out = append(out, strconv.Quote(string(c)))
		case adapter.Element:
			name, ok := a.GetName(c)
			if !ok {
				t.Fatalf("GetName(%T) not recognized", c)
			}
			out = append(out, name)
		}
	}
	return out
}

// ExpectName asserts the adapter name of el.
func ExpectName(t testing.TB, a *adapter.Adapter, el adapter.Element, want string) {
	t.Helper()
	got, ok := a.GetName(el)
	if !ok {
		t.Errorf("GetName(%T) not recognized, want %q", el, want)
		return
	}
	if got != want {
		t.Errorf("GetName() = %q, want %q", got, want)
	}
}

// ExpectAttributes asserts that a.GetAttributes(el) equals want exactly.
// Function values compare equal when they share a code pointer.
func ExpectAttributes(t testing.TB, a *adapter.Adapter, el adapter.Element, want map[string]any, opts ...cmp.Option) {
	t.Helper()
	got, err := a.GetAttributes(el)
	if err != nil {
		t.Fatalf("GetAttributes: %v", err)
	}
	opts = append(opts, funcComparer)
	if diff := cmp.Diff(want, got, opts...); diff != "" {
		t.Errorf("GetAttributes() mismatch (-want +got):\n%s", diff)
	}
}

// funcComparer treats two func values of the same type as equal when they
// share a code pointer.
var funcComparer = cmp.FilterValues(func(x, y any) bool {
	return x != nil && y != nil &&
		reflect.TypeOf(x).Kind() == reflect.Func &&
		reflect.TypeOf(x) == reflect.TypeOf(y)
}, cmp.Comparer(func(x, y any) bool {
	return reflect.ValueOf(x).Pointer() == reflect.ValueOf(y).Pointer()
}))

// RenderToString mounts node and returns its serialized HTML.
func RenderToString(t testing.TB, node *vdom.VNode) string {
	t.Helper()
	return Mount(t, node).OuterHTML()
}

// ExpectContains asserts that rendered output contains expected substring.
func ExpectContains(t testing.TB, node *vdom.VNode, expected string) {
	t.Helper()
	html := RenderToString(t, node)
	if !strings.Contains(html, expected) {
		t.Errorf("expected rendered output to contain %q, got:\n%s", expected, truncate(html, 500))
	}
}

// truncate truncates a string to max length with ellipsis.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
