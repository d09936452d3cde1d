package funcwrap

import (
	"reflect"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/vango-dev/vango-inspect/pkg/vdom"
)

// FallbackName is the display name of wrappers around function literals.
const FallbackName = "(Function.name missing)"

// Registry maps function components to their wrapper classes.
type Registry struct {
	mu       sync.RWMutex
	wrappers map[uintptr]*vdom.Class

	created prometheus.Gauge
	lookups *prometheus.CounterVec
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		wrappers: make(map[uintptr]*vdom.Class),
		created: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "vinspect",
			Subsystem: "funcwrap",
			Name:      "wrappers",
			Help:      "Number of function component wrappers created.",
		}),
		lookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "vinspect",
			Subsystem: "funcwrap",
			Name:      "lookups_total",
			Help:      "Wrapper lookups by result.",
		}, []string{"result"}),
	}
}

// Default is the registry Install uses unless WithRegistry is given.
var Default = NewRegistry()

// Lookup returns the wrapper class for fn, creating it on first use.
// It returns nil when fn is not a function component.
func (r *Registry) Lookup(fn any) *vdom.Class {
	if _, ok := vdom.AsFuncComponent(fn); !ok {
		return nil
	}
	id := reflect.ValueOf(fn).Pointer()

	r.mu.RLock()
	c, ok := r.wrappers[id]
	r.mu.RUnlock()
	if ok {
		r.lookups.WithLabelValues("hit").Inc()
		return c
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if c, ok := r.wrappers[id]; ok {
		r.lookups.WithLabelValues("hit").Inc()
		return c
	}
	c = newWrapper(fn)
	r.wrappers[id] = c
	r.created.Inc()
	r.lookups.WithLabelValues("miss").Inc()
	return c
}

// Len returns the number of wrappers created.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.wrappers)
}

// Describe implements prometheus.Collector.
func (r *Registry) Describe(ch chan<- *prometheus.Desc) {
	r.created.Describe(ch)
	r.lookups.Describe(ch)
}

// Collect implements prometheus.Collector.
func (r *Registry) Collect(ch chan<- prometheus.Metric) {
	r.created.Collect(ch)
	r.lookups.Collect(ch)
}

// newWrapper builds the class for fn. Instances render by calling the
// function their vnode was created with (VNode.Origin), not fn itself,
// since one code pointer can stand for closures with different captures.
func newWrapper(fn any) *vdom.Class {
	original, _ := vdom.AsFuncComponent(fn)
	name := vdom.FuncName(fn)
	if name == "" {
		name = FallbackName
	}
	return &vdom.Class{
		Name:        "wrapper",
		DisplayName: name,
		New: func() vdom.Component {
			return &wrapper{render: original}
		},
	}
}

type wrapper struct {
	render vdom.FuncComponent
}

// Bind implements vdom.Binder.
func (w *wrapper) Bind(origin any) {
	if fn, ok := vdom.AsFuncComponent(origin); ok {
		w.render = fn
	}
}

// Render implements vdom.Component.
func (w *wrapper) Render(props vdom.Props, _ vdom.State, ctx vdom.Context) *vdom.VNode {
	return w.render(props, ctx)
}
