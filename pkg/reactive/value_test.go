package reactive

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInputListenerFiresImmediately(t *testing.T) {
	in := NewInput(1)
	var got []int
	in.AddUpdateListener(func(v int) { got = append(got, v) })

	in.Change(2)
	in.Change(2)
	in.Change(3)

	assert.Equal(t, []int{1, 2, 3}, got)
}

func TestInputEqualityShortCircuit(t *testing.T) {
	in := NewInput("a")
	var listener, derived counter
	in.AddUpdateListener(func(string) { listener.hit() })
	Computed(in, func(s string) string {
		derived.hit()
		return s
	})

	in.Change("a")

	assert.Equal(t, 1, listener.calls)
	assert.Equal(t, 1, derived.calls)
}

func TestRemoveUpdateListenerIsIdempotent(t *testing.T) {
	in := NewInput(0)
	var c counter
	id := in.AddUpdateListener(func(int) { c.hit() })
	in.RemoveUpdateListener(id)
	in.RemoveUpdateListener(id)
	in.Change(1)

	assert.Equal(t, 1, c.calls)
	assert.Zero(t, in.UpdateListenerCount())
}

func TestListenerMayUnsubscribeDuringNotify(t *testing.T) {
	in := NewInput(0)
	var first, second counter
	var id ListenerID
	id = in.AddUpdateListener(func(v int) {
		first.hit()
		if v == 1 {
			in.RemoveUpdateListener(id)
		}
	})
	in.AddUpdateListener(func(int) { second.hit() })

	in.Change(1)
	in.Change(2)

	assert.Equal(t, 2, first.calls)
	assert.Equal(t, 3, second.calls)
}

func TestComputedChainPropagation(t *testing.T) {
	a := NewInput(4)
	var bc, cc counter
	b := Computed(a, func(v int) int {
		bc.hit()
		return v + 3
	})
	c := Computed(b, func(v int) int {
		cc.hit()
		return v + 3
	})

	assert.Equal(t, 7, b.Extract())
	assert.Equal(t, 10, c.Extract())
	assert.Equal(t, 1, bc.calls)
	assert.Equal(t, 1, cc.calls)

	a.Change(5)
	assert.Equal(t, 8, b.Extract())
	assert.Equal(t, 11, c.Extract())
	assert.Equal(t, 2, bc.calls)
	assert.Equal(t, 2, cc.calls)
}

func TestComputedEqualResultStops(t *testing.T) {
	a := NewInput(1)
	parity := Computed(a, func(v int) bool { return v%2 == 0 })
	var c counter
	Computed(parity, func(bool) int {
		c.hit()
		return 0
	})

	a.Change(3)
	assert.Equal(t, 1, c.calls)

	a.Change(4)
	assert.Equal(t, 2, c.calls)
}

func TestCombine(t *testing.T) {
	first := NewInput("Ada")
	last := NewInput("Lovelace")

	full := Combine2(first, last, func(f, l string) string { return f + " " + l })
	initials := Combine([]Node{first, last}, func() string {
		return first.Extract()[:1] + last.Extract()[:1]
	})

	first.Change("Grace")
	last.Change("Hopper")

	assert.Equal(t, "Grace Hopper", full.Extract())
	assert.Equal(t, "GH", initials.Extract())
	assert.Equal(t, 2, first.DerivedCount())
}

func TestComputedGet(t *testing.T) {
	in := NewInput("bar")
	c := Computed(in, func(s string) map[string]string {
		return map[string]string{"foo": strings.ToUpper(s)}
	})
	foo := c.Get("foo")
	assert.Equal(t, "BAR", foo.Extract())

	in.Change("baz")
	assert.Equal(t, "BAZ", foo.Extract())
}

func TestCustomEquality(t *testing.T) {
	in := NewInput(1, WithEquals(func(a, b int) bool { return a%2 == b%2 }))
	var c counter
	in.AddUpdateListener(func(int) { c.hit() })

	in.Change(3)
	assert.Equal(t, 1, c.calls)
	assert.Equal(t, 1, in.Extract())

	in.Change(4)
	assert.Equal(t, 2, c.calls)
}

func TestFunctionValuesCanChange(t *testing.T) {
	in := NewInput(func() int { return 1 })
	var c counter
	in.AddUpdateListener(func(func() int) { c.hit() })

	in.ChangeWith(func(func() int) func() int {
		return func() int { return 2 }
	})

	assert.Equal(t, 2, c.calls)
	assert.Equal(t, 2, in.Extract()())
}

func TestProxyFollowsTarget(t *testing.T) {
	a := NewInput(1)
	b := NewInput(2)
	p := NewProxy[int](a)
	var got []int
	p.AddUpdateListener(func(v int) { got = append(got, v) })
	doubled := Computed(p, func(v int) int { return v * 2 })

	p.SetTarget(b)
	a.Change(5)
	b.Change(3)

	assert.Equal(t, []int{1, 2, 3}, got)
	assert.Equal(t, 6, doubled.Extract())
	assert.Zero(t, a.DerivedCount())
	assert.Same(t, b, p.Target())

	p.Deactivate()
	b.Change(4)
	assert.Equal(t, []int{1, 2, 3}, got)
}

func TestProxyGet(t *testing.T) {
	in := NewInput(map[string]int{"n": 1})
	n := NewProxy[map[string]int](in).Get("n")
	assert.Equal(t, 1, n.Extract())

	in.Change(map[string]int{"n": 2})
	assert.Equal(t, 2, n.Extract())
}

func TestReentrantChange(t *testing.T) {
	a := NewInput(0)
	b := NewInput(0)
	a.AddUpdateListener(func(v int) { b.Change(v * 10) })
	sum := Combine2(a, b, func(x, y int) int { return x + y })

	a.Change(2)

	assert.Equal(t, 20, b.Extract())
	assert.Equal(t, 22, sum.Extract())
}

func TestDeepChain(t *testing.T) {
	root := NewInput(0)
	var v Value[int] = root
	for i := 0; i < 10000; i++ {
		v = Computed(v, func(x int) int { return x + 1 })
	}
	require.Equal(t, 10000, v.Extract())

	root.Change(1)
	assert.Equal(t, 10001, v.Extract())
}

func TestNames(t *testing.T) {
	named := NewInput(0, WithName[int]("count"))
	assert.Equal(t, "count", named.Name())

	anon := NewInput(0)
	assert.True(t, strings.HasPrefix(anon.Name(), "value#"))

	anon.SetName("other")
	assert.Equal(t, "other", anon.Name())
}

func TestAddAnyListener(t *testing.T) {
	in := NewInput("x")
	var got []any
	in.AddAnyListener(func(v any) { got = append(got, v) })
	in.Change("y")

	assert.Equal(t, []any{"x", "y"}, got)
}
