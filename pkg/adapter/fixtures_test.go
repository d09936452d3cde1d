package adapter_test

import (
	"github.com/vango-dev/vango-inspect/pkg/vdom"
)

func StatelessComponent(vdom.Props, vdom.Context) *vdom.VNode {
	return vdom.Span("stateless")
}

func RenderStateless2(vdom.Props, vdom.Context) *vdom.VNode {
	return vdom.H(StatelessComponent)
}

func RenderStateless3(vdom.Props, vdom.Context) *vdom.VNode {
	return vdom.H(RenderStateless2)
}

var ES6Comp = vdom.NewClass("ES6Comp", func(p vdom.Props, _ vdom.State, _ vdom.Context) *vdom.VNode {
	return vdom.Div(p, "es6 component")
})

var RenderES6 = vdom.NewClass("RenderES6", func(p vdom.Props, _ vdom.State, _ vdom.Context) *vdom.VNode {
	return vdom.H(ES6Comp, passClassName(p))
})

var RenderStateless = vdom.NewClass("RenderStateless", func(p vdom.Props, _ vdom.State, _ vdom.Context) *vdom.VNode {
	return vdom.H(StatelessComponent, passClassName(p))
})

var DeepComponent = vdom.NewClass("DeepComponent", func(vdom.Props, vdom.State, vdom.Context) *vdom.VNode {
	return vdom.Div(vdom.ClassName("foo"),
		vdom.Span(vdom.ClassName("bar"),
			vdom.H(ES6Comp, vdom.ClassName("one")),
			vdom.H(ES6Comp, vdom.ClassName("two")),
		),
		vdom.Span("second"),
	)
})

var DangerouslySetHTML = vdom.NewClass("DangerouslySetHTML", func(vdom.Props, vdom.State, vdom.Context) *vdom.VNode {
	return vdom.Div(vdom.ClassName("set-inner"),
		vdom.DangerouslySetInnerHTML(`Here is a <a class="inner" href="/foo">link</a>`),
	)
})

// withEvents is a stateful component with a click handler.
type withEvents struct{}

func (withEvents) InitialState(vdom.Props) vdom.State { return vdom.State{"count": 0} }

func (c withEvents) Render(_ vdom.Props, s vdom.State, _ vdom.Context) *vdom.VNode {
	return vdom.Button(vdom.OnClick(c.onClick), "Click ", vdom.Textf("%d", s["count"]))
}

func (withEvents) onClick() {}

var WithEvents = &vdom.Class{Name: "WithEvents", New: func() vdom.Component { return withEvents{} }}

// passClassName forwards a string className prop, as JSX does with
// className={this.props.className}.
func passClassName(p vdom.Props) any {
	if cn, ok := p["className"].(string); ok {
		return vdom.ClassName(cn)
	}
	return nil
}
