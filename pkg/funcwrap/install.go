package funcwrap

import (
	"log/slog"
	"sync"

	"github.com/vango-dev/vango-inspect/pkg/vdom"
)

type options struct {
	registry *Registry
	logger   *slog.Logger
}

// Option configures Install.
type Option func(*options)

// WithRegistry makes Install use r instead of Default.
func WithRegistry(r *Registry) Option {
	return func(o *options) { o.registry = r }
}

// WithLogger sets the logger for wrapper substitution. If unset,
// slog.Default() is used.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// IsFunctionalComponent reports whether v is a component vnode whose type
// is a plain function rather than a class.
func IsFunctionalComponent(v *vdom.VNode) bool {
	if v == nil || v.Kind != vdom.KindComponent {
		return false
	}
	_, ok := vdom.AsFuncComponent(v.Type)
	return ok
}

// Install chains a node-creation hook that swaps function component types
// for their wrapper classes, then calls the previously installed hook. The
// returned function restores the previous hook; calling it again is a no-op.
func Install(opts ...Option) (dispose func()) {
	o := options{registry: Default}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}

	var prev func(*vdom.VNode)
	hook := func(v *vdom.VNode) {
		if IsFunctionalComponent(v) {
			c := o.registry.Lookup(v.Type)
			o.logger.Debug("wrapped function component", "name", c.DisplayName)
			v.Type = c
		}
		if prev != nil {
			prev(v)
		}
	}
	prev = vdom.SetVNodeHook(hook)

	var once sync.Once
	return func() {
		once.Do(func() {
			vdom.SetVNodeHook(prev)
		})
	}
}
