package adapter

import (
	"fmt"
	"io"
	"reflect"
	"sort"
	"strings"

	"github.com/vango-dev/vango-inspect/pkg/dom"
)

// Tree is a snapshot of the adapter's view of a rendered tree.
type Tree struct {
	Name       string         `yaml:"name,omitempty" json:"name,omitempty"`
	Attributes map[string]any `yaml:"attributes,omitempty" json:"attributes,omitempty"`
	Text       string         `yaml:"text,omitempty" json:"text,omitempty"`
	Children   []*Tree        `yaml:"children,omitempty" json:"children,omitempty"`
}

// Snapshot walks el with GetName, GetAttributes and GetChildren and records
// the result. Function-valued attributes are recorded as "[Function]".
func (a *Adapter) Snapshot(el Element) (*Tree, error) {
	if n, ok := el.(NodeElement); ok && n.Node != nil && n.Node.NodeType == dom.TextNode {
		return &Tree{Text: n.Node.Data}, nil
	}
	name, _ := a.GetName(el)
	attrs, err := a.GetAttributes(el)
	if err != nil {
		return nil, fmt.Errorf("attributes of <%s>: %w", name, err)
	}
	children, err := a.GetChildren(el)
	if err != nil {
		return nil, fmt.Errorf("children of <%s>: %w", name, err)
	}

	t := &Tree{Name: name}
	if len(attrs) > 0 {
		t.Attributes = make(map[string]any, len(attrs))
		for k, v := range attrs {
			t.Attributes[k] = printable(v)
		}
	}
	for _, c := range children {
		switch c := c.(type) {
		case Text:
			t.Children = append(t.Children, &Tree{Text: string(c)})
		case Element:
			sub, err := a.Snapshot(c)
			if err != nil {
				return nil, err
			}
			t.Children = append(t.Children, sub)
		}
	}
	return t, nil
}

func printable(v any) any {
	if v == nil {
		return nil
	}
	switch reflect.TypeOf(v).Kind() {
	case reflect.Func:
		return "[Function]"
	case reflect.Chan, reflect.UnsafePointer:
		return fmt.Sprintf("%T", v)
	}
	return v
}

// WriteText writes t as an indented outline, one node per line:
//
//	<div class="foo">
//	  <span>
//	    "second"
func (t *Tree) WriteText(w io.Writer) error {
	return t.writeText(w, 0)
}

func (t *Tree) writeText(w io.Writer, depth int) error {
	indent := strings.Repeat("  ", depth)
	if t.Name == "" {
		_, err := fmt.Fprintf(w, "%s%q\n", indent, t.Text)
		return err
	}

	var b strings.Builder
	b.WriteString(indent)
	b.WriteByte('<')
	b.WriteString(t.Name)
	keys := make([]string, 0, len(t.Attributes))
	for k := range t.Attributes {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, formatValue(t.Attributes[k]))
	}
	b.WriteString(">\n")
	if _, err := io.WriteString(w, b.String()); err != nil {
		return err
	}

	for _, c := range t.Children {
		if err := c.writeText(w, depth+1); err != nil {
			return err
		}
	}
	return nil
}

func formatValue(v any) string {
	if s, ok := v.(string); ok {
		return fmt.Sprintf("%q", s)
	}
	return fmt.Sprintf("{%v}", v)
}
