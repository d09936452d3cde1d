// Package errors provides structured, coded errors for vango-inspect.
//
// Every failure the inspection packages can report has a registered code
// (e.g. "A001") that maps to a short message, a longer explanation and a hint.
// Callers match on codes with IsCode rather than on message text.
//
// # Error Categories
//
//   - adapter: a value that was not produced by WrapRootNode/WrapNode reached the adapter
//   - render: the renderer was handed a vnode it cannot mount
//   - config: vinspect.yaml could not be read or failed validation
//
// # Usage
//
//	err := errors.New("A001").WithDetail("element type adapter.NodeElement")
//	fmt.Println(err.Format())
//	// Output:
//	// ERROR A001: Non-wrapped or non-vdom element passed to GetAttributes
//	//
//	//   element type adapter.NodeElement
//	//
//	//   Hint: Wrap rendered nodes with adapter.WrapRootNode or adapter.WrapNode
package errors
