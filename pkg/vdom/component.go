package vdom

import (
	"reflect"
	"regexp"
	"runtime"
	"strings"
)

// State is a component's local state.
type State map[string]any

// Context is the render context passed down the component tree.
type Context map[string]any

// Component is a class-like component instance.
type Component interface {
	Render(props Props, state State, ctx Context) *VNode
}

// StateInitializer is implemented by components with initial state.
type StateInitializer interface {
	InitialState(props Props) State
}

// ContextProvider is implemented by components that extend the context
// seen by their descendants.
type ContextProvider interface {
	ChildContext() Context
}

// Binder is implemented by components whose behavior depends on the
// component type their vnode was created with (VNode.Origin).
type Binder interface {
	Bind(origin any)
}

// Class is the constructor of a class-like component. Name plays the role
// of the constructor's own name; DisplayName, when set, overrides it for
// tooling.
type Class struct {
	Name        string
	DisplayName string
	New         func() Component
}

// NewClass creates a Class whose instances render with fn.
func NewClass(name string, fn func(props Props, state State, ctx Context) *VNode) *Class {
	return &Class{
		Name: name,
		New: func() Component {
			return renderFunc(fn)
		},
	}
}

type renderFunc func(props Props, state State, ctx Context) *VNode

func (f renderFunc) Render(props Props, state State, ctx Context) *VNode {
	return f(props, state, ctx)
}

// FuncComponent is a plain function component.
type FuncComponent func(props Props, ctx Context) *VNode

// AsFuncComponent converts v to a FuncComponent if it is one, either
// named or as a bare func(Props, Context) *VNode.
func AsFuncComponent(v any) (FuncComponent, bool) {
	switch fn := v.(type) {
	case FuncComponent:
		return fn, fn != nil
	case func(Props, Context) *VNode:
		return fn, fn != nil
	}
	return nil, false
}

var anonymousFunc = regexp.MustCompile(`(^|\.)func\d+(\.\d+)*$`)

// FuncName returns the name of a function value as written in its
// declaration: no package path, no method receiver, no type arguments.
// Function literals have no name and yield "".
func FuncName(fn any) string {
	rv := reflect.ValueOf(fn)
	if rv.Kind() != reflect.Func || rv.IsNil() {
		return ""
	}
	f := runtime.FuncForPC(rv.Pointer())
	if f == nil {
		return ""
	}
	// Method values end in -fm; instantiations carry a [...] marker.
	name := strings.TrimSuffix(f.Name(), "-fm")
	name = strings.ReplaceAll(name, "[...]", "")
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	if anonymousFunc.MatchString(name) {
		return ""
	}
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}
	return name
}
