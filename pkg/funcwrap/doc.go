// Package funcwrap replaces plain function components with cached
// class-like wrappers so that every rendered component instance has a
// constructor with a discoverable display name.
//
// Install chains a hook onto vdom's node-creation hook:
//
//	dispose := funcwrap.Install()
//	defer dispose()
//
// Wrappers are kept in a Registry keyed by function identity (the function's
// code pointer). A Registry grows monotonically and is safe for concurrent
// use; it also implements prometheus.Collector.
package funcwrap
