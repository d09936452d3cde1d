// Package dom is a minimal DOM-like host tree that package render mounts
// virtual nodes into.
//
// Nodes expose the browser-shaped surface the inspection adapter relies on:
// NodeType, TagName (upper-case for elements), ChildNodes, TextContent and
// string attributes. Each node also carries an expando side-channel, keyed
// by string or by *Symbol, where the renderer stashes data such as the
// original attribute bag and the component that owns the node.
package dom
