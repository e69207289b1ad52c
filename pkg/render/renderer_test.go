package render

import (
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vango-dev/reflow/pkg/host"
	"github.com/vango-dev/reflow/pkg/host/memhost"
	"github.com/vango-dev/reflow/pkg/index"
	"github.com/vango-dev/reflow/pkg/reactive"
	"github.com/vango-dev/reflow/pkg/vdom"
)

func TestRenderPrimitives(t *testing.T) {
	tree, body, m := mount(t, vdom.Fragment("a", 1, true, 2.5, vdom.Primitive(nil), vdom.Text("<b>")))

	assert.Equal(t, "a1true2.5&lt;b&gt;", tree.InnerHTML(body))
	assert.Equal(t, 6, tree.ChildCount(body))
	assert.Equal(t, 6, m.Next().NextIndex())
}

func TestRenderValue(t *testing.T) {
	count := reactive.NewInput(1)
	tree, body, _ := mount(t, vdom.P("count: ", count))

	assert.Equal(t, "<p>count: 1</p>", tree.InnerHTML(body))

	count.Change(42)
	assert.Equal(t, "<p>count: 42</p>", tree.InnerHTML(body))
}

func TestRenderFragmentThreadsCursor(t *testing.T) {
	tree, body, m := mount(t, vdom.Fragment(
		"a",
		vdom.Fragment("b", vdom.Fragment(), "c"),
		vdom.Span("d"),
		"e",
	))

	assert.Equal(t, "abc<span>d</span>e", tree.InnerHTML(body))
	assert.Equal(t, 5, m.Next().NextIndex())
}

func TestRenderElementAttributes(t *testing.T) {
	class := reactive.NewInput("on")
	disabled := reactive.NewInput(true)
	expanded := reactive.NewInput(false)
	title := reactive.NewInput[any]("tip")
	value := reactive.NewInput("typed")

	tree, body, _ := mount(t, vdom.Button(
		vdom.ID("b"),
		vdom.Class(class),
		vdom.Disabled(disabled),
		vdom.AriaExpanded(expanded),
		vdom.TitleAttr(title),
		vdom.Value(value),
		vdom.Data("static", false),
		vdom.Readonly(false),
	))
	btn := tree.ChildAt(body, 0)

	assert.Equal(t,
		`<button aria-expanded="false" class="on" data-static="false" disabled id="b" title="tip"></button>`,
		tree.InnerHTML(body))
	assert.Equal(t, "typed", tree.GetProperty(btn, "value"))

	class.Change("off")
	disabled.Change(false)
	expanded.Change(true)
	title.Change(nil)
	value.Change("edited")

	assert.Equal(t,
		`<button aria-expanded="true" class="off" data-static="false" id="b"></button>`,
		tree.InnerHTML(body))
	assert.Equal(t, "edited", tree.GetProperty(btn, "value"))
}

func TestRenderEvents(t *testing.T) {
	clicks := 0
	tree, body, m := mount(t, vdom.Div(
		vdom.Button(vdom.OnClick(func(e host.Event) { clicks++ }), "+"),
	))
	btn := tree.ChildAt(tree.ChildAt(body, 0), 0)

	tree.Dispatch(btn, "click", nil)
	tree.Dispatch(btn, "click", nil)
	assert.Equal(t, 2, clicks)

	m.Unmount()
	assert.Zero(t, tree.ListenerCount(btn))
	tree.Dispatch(btn, "click", nil)
	assert.Equal(t, 2, clicks)
}

func TestRenderUnmount(t *testing.T) {
	count := reactive.NewInput(0)
	class := reactive.NewInput("x")
	tree, body, m := mount(t, vdom.Fragment(
		"head",
		vdom.Div(vdom.Class(class), vdom.Span(count), count),
		"tail",
	))
	require.Equal(t, 3, tree.ChildCount(body))
	assert.Equal(t, 2, count.UpdateListenerCount())

	m.Unmount()
	m.Unmount()

	assert.Zero(t, tree.ChildCount(body))
	assert.Zero(t, m.Next().NextIndex())
	assert.Zero(t, count.UpdateListenerCount())
	assert.Zero(t, class.UpdateListenerCount())
}

func TestRenderMountsAfterExistingPositions(t *testing.T) {
	tree := memhost.New()
	body := tree.CreateElement("body")
	r := New(tree)

	cursor := index.New(0)
	scope := reactive.NewDeriveListener(nil, nil)
	defer scope.Close()

	_, next := r.Render(vdom.Fragment("a", "b"), body, cursor, scope)
	assert.Same(t, cursor, next)

	_, next = r.Render(vdom.Span("c"), body, next, scope)
	assert.Equal(t, "ab<span>c</span>", tree.InnerHTML(body))
	assert.Equal(t, 3, next.NextIndex())

	u, same := r.Render(nil, body, next, scope)
	u()
	assert.Same(t, next, same)
}

func TestRenderUnknownKind(t *testing.T) {
	tree := memhost.New()
	r := New(tree)
	code := panicCode(t, func() {
		r.Render(&vdom.Node{Kind: vdom.Kind(42)}, tree.CreateElement("div"), index.New(0), nil)
	})
	assert.Equal(t, "R003", code)
}

func TestRenderCondition(t *testing.T) {
	flag := reactive.NewInput(1)
	tree, body, m := mount(t, vdom.Fragment(
		"[",
		vdom.Condition(flag, vdom.Span("yes"), func() *vdom.Node { return vdom.Fragment(vdom.Em("no"), "!") }),
		"]",
	))

	assert.Equal(t, "[<span>yes</span>]", tree.InnerHTML(body))
	tree.ResetStats()

	flag.Change(2)
	assert.Zero(t, tree.Stats().Creates, "same truthiness must not re-render")

	flag.Change(0)
	assert.Equal(t, "[<em>no</em>!]", tree.InnerHTML(body))
	assert.Equal(t, 4, m.Next().NextIndex())

	flag.Change(3)
	assert.Equal(t, "[<span>yes</span>]", tree.InnerHTML(body))
	assert.Equal(t, 3, m.Next().NextIndex())
}

func TestRenderConditionMissingBranch(t *testing.T) {
	shown := reactive.NewInput(false)
	tree, body, _ := mount(t, vdom.Div("a", vdom.Condition(shown, "b", nil), "c"))

	assert.Equal(t, "<div>ac</div>", tree.InnerHTML(body))
	shown.Change(true)
	assert.Equal(t, "<div>abc</div>", tree.InnerHTML(body))
	shown.Change(false)
	assert.Equal(t, "<div>ac</div>", tree.InnerHTML(body))
}

func TestRenderNestedConditions(t *testing.T) {
	outer := reactive.NewInput(true)
	inner := reactive.NewInput(false)
	tree, body, _ := mount(t, vdom.Fragment(
		"<",
		vdom.Condition(outer,
			func() *vdom.Node {
				return vdom.Fragment("o", vdom.Condition(inner, "i", "x"), "O")
			},
			"-"),
		">",
	))

	assert.Equal(t, "&lt;oxO&gt;", tree.InnerHTML(body))

	inner.Change(true)
	assert.Equal(t, "&lt;oiO&gt;", tree.InnerHTML(body))

	outer.Change(false)
	assert.Equal(t, "&lt;-&gt;", tree.InnerHTML(body))
	assert.Zero(t, inner.UpdateListenerCount())

	inner.Change(false)
	outer.Change(true)
	assert.Equal(t, "&lt;oxO&gt;", tree.InnerHTML(body))
}

func TestRenderComponent(t *testing.T) {
	type props struct {
		Label string
		Start int
	}
	counter := func(p props, l *reactive.Locals) *vdom.Node {
		n := reactive.CreateState(l, p.Start)
		return vdom.Button(vdom.OnClick(func(host.Event) { n.ChangeWith(inc) }), p.Label, n)
	}

	tree, body, _ := mount(t, vdom.Div(vdom.Comp(counter, props{"n=", 5}), vdom.Comp(counter, props{"m=", 0})))
	first := tree.ChildAt(tree.ChildAt(body, 0), 0)

	tree.Dispatch(first, "click", nil)
	tree.Dispatch(first, "click", nil)
	assert.Equal(t, "<div><button>n=7</button><button>m=0</button></div>", tree.InnerHTML(body))
}

func TestComponentScopeReleasesDerivations(t *testing.T) {
	items := reactive.NewInput([]int{1, 2, 3})
	app := func(data reactive.Value[[]int], l *reactive.Locals) *vdom.Node {
		size := reactive.Computed(data, func(v []int) int { return len(v) })
		hidden := reactive.CreateState(l, false)
		return vdom.Div(
			vdom.P("size ", size),
			vdom.Condition(hidden, nil, func() *vdom.Node {
				return vdom.List(data, nil, func(p reactive.Projection[int]) *vdom.Node {
					odd := reactive.Computed[int, bool](p, func(v int) bool { return v%2 == 1 })
					return vdom.Li(p, vdom.Condition(odd, "*", nil))
				})
			}),
		)
	}

	tree := memhost.New()
	body := tree.CreateElement("body")
	m := New(tree).Mount(vdom.Comp(app, reactive.Value[[]int](items)), body, items)

	assert.Equal(t, "<div><p>size 3</p><li>1*</li><li>2</li><li>3*</li></div>", tree.InnerHTML(body))
	assert.Equal(t, 1, items.DerivedCount())
	assert.Equal(t, 3, items.PropertyCount())

	items.Change([]int{2, 4})
	assert.Equal(t, "<div><p>size 2</p><li>2</li><li>4</li></div>", tree.InnerHTML(body))
	assert.Equal(t, 2, items.PropertyCount())

	m.Unmount()
	assert.Zero(t, tree.ChildCount(body))
	assert.Zero(t, items.DerivedCount())
	assert.Zero(t, items.PropertyCount())
	assert.Zero(t, items.UpdateListenerCount())
	assert.Zero(t, items.DeriveListenerCount())
	assert.Zero(t, m.Scope().Children())
}

func TestBind(t *testing.T) {
	query := reactive.NewInput("")
	tree, body, _ := mount(t, vdom.Input(vdom.Value(query), vdom.OnInput(Bind[string](query, "value", nil))))
	input := tree.ChildAt(body, 0)

	tree.SetProperty(input, "value", "go")
	tree.Dispatch(input, "input", nil)
	assert.Equal(t, "go", query.Extract())

	tree.SetProperty(input, "value", nil)
	tree.Dispatch(input, "input", map[string]any{"value": "from event"})
	assert.Equal(t, "from event", query.Extract())

	tree.SetProperty(input, "value", 7)
	code := panicCode(t, func() { tree.Dispatch(input, "input", nil) })
	assert.Equal(t, "R012", code)
}

func TestBindTransform(t *testing.T) {
	n := reactive.NewInput(0)
	handler := Bind[int](n, "value", func(v any) int { return len(v.(string)) })
	handler(host.Event{Data: map[string]any{"value": "four"}})
	assert.Equal(t, 4, n.Extract())

	handler = Bind[int](n, "missing", nil)
	handler(host.Event{})
	assert.Zero(t, n.Extract())
}

func TestWithLogger(t *testing.T) {
	var b strings.Builder
	logger := slog.New(slog.NewTextHandler(&b, &slog.HandlerOptions{Level: slog.LevelDebug}))

	flag := reactive.NewInput(true, reactive.WithName[bool]("flag"))
	tree := memhost.New()
	m := New(tree, WithLogger(logger)).Mount(vdom.Condition(flag, "a", "b"), tree.CreateElement("body"))
	flag.Change(false)
	m.Unmount()

	out := b.String()
	assert.Contains(t, out, "msg=mounted")
	assert.Contains(t, out, `msg="condition swap" value=flag truthy=false`)
	assert.Contains(t, out, "msg=unmounted")
}

func TestRenderConditionSwapInsideComponentBody(t *testing.T) {
	type shared struct {
		src  *reactive.InputValue[int]
		flag *reactive.InputValue[bool]
	}
	child := func(s shared, _ *reactive.Locals) *vdom.Node {
		scaled := reactive.Computed(s.src, func(x int) int { return x * 10 })
		s.flag.Change(true)
		return vdom.Span(scaled)
	}

	var s shared
	app := func(_ struct{}, l *reactive.Locals) *vdom.Node {
		s = shared{src: reactive.CreateState(l, 1), flag: reactive.CreateState(l, false)}
		return vdom.Fragment(
			vdom.Condition(s.flag, func() *vdom.Node { return vdom.B("on") }, nil),
			vdom.Comp(child, s),
		)
	}

	tree, body, _ := mount(t, vdom.Comp(app, struct{}{}))
	assert.Equal(t, "<b>on</b><span>10</span>", tree.InnerHTML(body))

	s.flag.Change(false)
	assert.Equal(t, "<span>10</span>", tree.InnerHTML(body))

	s.src.Change(2)
	assert.Equal(t, "<span>20</span>", tree.InnerHTML(body))
	assert.Equal(t, 1, s.src.DerivedCount())
}
