package vdom

// event creates an EventHandler with the given name and handler.
// The name is prefixed with "on" (e.g., "Click" becomes "onClick").
func event(name string, handler any) EventHandler {
	return EventHandler{Event: "on" + name, Handler: handler}
}

// OnClick handles click events.
func OnClick(handler any) EventHandler { return event("Click", handler) }
