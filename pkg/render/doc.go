// Package render mounts vdom trees into dom host nodes.
//
// Rendering produces, in addition to the host tree, the bookkeeping that
// inspection tools read back:
//
//   - every host element carries its vnode attribute bag (including key,
//     ref and className as written) in an expando slot, under AttrKey or,
//     with StashSymbol, under AttrSymbol
//   - every host node that is the base of a component carries that
//     component's outermost Instance, see ComponentOf
//   - a component that rendered another component links to it through
//     Instance.Child
//
// # Basic Usage
//
//	container := dom.CreateElement("div")
//	root, err := render.New(render.Config{}).Render(vdom.H(App), container)
//
// Raw HTML set with vdom.DangerouslySetInnerHTML is parsed into host nodes,
// optionally sanitized first (Config.SanitizeRawHTML).
package render
