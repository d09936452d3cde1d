package vdom

import "strings"

// attr creates an Attr with the given key and value.
func attr(key string, value any) Attr {
	return Attr{Key: key, Value: value}
}

// Prop sets an arbitrary attribute or component prop.
func Prop(key string, value any) Attr { return attr(key, value) }

// ID sets the id attribute.
func ID(id string) Attr { return attr("id", id) }

// ClassAttr sets the class attribute, joining multiple classes with spaces.
func ClassAttr(classes ...string) Attr { return attr("class", strings.Join(classes, " ")) }

// ClassName sets the className attribute. Renderers write it to the DOM as
// class; the stashed attribute bag keeps the original key.
func ClassName(classes ...string) Attr { return attr("className", strings.Join(classes, " ")) }

// Data creates a data-* attribute.
// Example: Data("id", "123") → data-id="123"
func Data(key, value string) Attr { return attr("data-"+key, value) }

// Href sets the href attribute.
func Href(url string) Attr { return attr("href", url) }

// Disabled sets the disabled attribute.
func Disabled(disabled bool) Attr { return attr("disabled", disabled) }

// Key sets the reconciliation key. The value is kept as given.
func Key(key any) Attr { return attr("key", key) }

// Ref sets the ref. Elements call a func(*dom.Node) ref with their host node.
func Ref(ref any) Attr { return attr("ref", ref) }

// DangerouslySetInnerHTML sets the element's content from raw HTML.
// Use with caution - can lead to XSS if content is user-provided.
func DangerouslySetInnerHTML(html string) Attr {
	return attr("dangerouslySetInnerHTML", html)
}
