// Package vtest provides testing helpers for mounting vdom trees and
// inspecting them through package adapter.
//
// # Quick Start
//
//	func TestCard(t *testing.T) {
//	    a := adapter.New()
//	    el := vtest.MountRoot(t, vdom.H(Card, vdom.ClassName("wide")))
//	    vtest.ExpectName(t, a, el, "div")
//	    vtest.ExpectAttributes(t, a, el, map[string]any{"class": "wide"})
//	}
//
// # Children
//
// Names renders a GetChildren result as a slice of strings (element names,
// and text children quoted) for compact assertions:
//
//	got := vtest.Names(t, a, vtest.Children(t, a, el))
//	// []string{"span", `"second"`}
//
// # Render Assertions
//
// Assert on serialized output:
//
//	vtest.ExpectContains(t, vdom.H(Card), `<div class="card">`)
package vtest
