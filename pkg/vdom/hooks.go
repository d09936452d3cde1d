package vdom

import "sync/atomic"

var vnodeHook atomic.Pointer[func(*VNode)]

// VNodeHook returns the installed node-creation hook, or nil.
func VNodeHook() func(*VNode) {
	if p := vnodeHook.Load(); p != nil {
		return *p
	}
	return nil
}

// SetVNodeHook installs h as the node-creation hook and returns the hook it
// replaced. A nil h removes the hook.
func SetVNodeHook(h func(*VNode)) (prev func(*VNode)) {
	var p *func(*VNode)
	if h != nil {
		p = &h
	}
	if old := vnodeHook.Swap(p); old != nil {
		return *old
	}
	return nil
}

// created runs the node-creation hook on v.
func created(v *VNode) *VNode {
	if h := VNodeHook(); h != nil {
		h(v)
	}
	return v
}
