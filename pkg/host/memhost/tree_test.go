package memhost

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vango-dev/reflow/internal/errors"
	"github.com/vango-dev/reflow/pkg/host"
)

func texts(t *Tree, parent host.Node) []string {
	var out []string
	for i := 0; i < t.ChildCount(parent); i++ {
		out = append(out, t.ChildAt(parent, i).(*Node).TextContent())
	}
	return out
}

func TestInsertAt(t *testing.T) {
	tree := New()
	root := tree.CreateElement("ul")
	a, b, c := tree.CreateTextNode("a"), tree.CreateTextNode("b"), tree.CreateTextNode("c")

	tree.InsertAt(root, 0, b)
	tree.InsertAt(root, 0, a)
	tree.InsertAt(root, 5, c)

	assert.Equal(t, []string{"a", "b", "c"}, texts(tree, root))
	assert.Equal(t, 3, tree.Stats().Inserts)
}

func TestInsertAtMovesAttachedNode(t *testing.T) {
	tree := New()
	root := tree.CreateElement("ul")
	var nodes []host.Node
	for _, s := range []string{"a", "b", "c", "d"} {
		n := tree.CreateTextNode(s)
		tree.AppendChild(root, n)
		nodes = append(nodes, n)
	}

	// Forward: a goes before d.
	tree.InsertAt(root, 3, nodes[0])
	assert.Equal(t, []string{"b", "c", "a", "d"}, texts(tree, root))

	// Backward: d goes to the front.
	tree.InsertAt(root, 0, nodes[3])
	assert.Equal(t, []string{"d", "b", "c", "a"}, texts(tree, root))

	// Before itself.
	tree.InsertAt(root, 1, nodes[1])
	assert.Equal(t, []string{"d", "b", "c", "a"}, texts(tree, root))
	assert.Equal(t, 2, tree.Stats().Moves)
}

func TestInsertAtReparents(t *testing.T) {
	tree := New()
	left, right := tree.CreateElement("div"), tree.CreateElement("div")
	n := tree.CreateTextNode("x")
	tree.AppendChild(left, n)

	tree.AppendChild(right, n)

	assert.Zero(t, tree.ChildCount(left))
	assert.Same(t, right, n.(*Node).Parent())
}

func TestInsertAtNegativeIndex(t *testing.T) {
	tree := New()
	root := tree.CreateElement("div")

	defer func() {
		var e *errors.Error
		require.True(t, stderrors.As(recover().(error), &e))
		assert.Equal(t, "R001", e.Code)
	}()
	tree.InsertAt(root, -1, tree.CreateTextNode("x"))
}

func TestRemove(t *testing.T) {
	tree := New()
	root := tree.CreateElement("div")
	n := tree.CreateTextNode("x")
	tree.AppendChild(root, n)

	tree.Remove(n)
	tree.Remove(n)

	assert.Zero(t, tree.ChildCount(root))
	assert.Nil(t, n.(*Node).Parent())
	assert.Equal(t, 1, tree.Stats().Removes)
}

func TestRemoveCorruptParent(t *testing.T) {
	tree := New()
	root := tree.CreateElement("div")
	n := tree.CreateTextNode("x")
	n.(*Node).parent = root.(*Node)

	defer func() {
		var e *errors.Error
		require.True(t, stderrors.As(recover().(error), &e))
		assert.Equal(t, "R002", e.Code)
	}()
	tree.Remove(n)
}

func TestChildAtOutOfRange(t *testing.T) {
	tree := New()
	root := tree.CreateElement("div")

	assert.Nil(t, tree.ChildAt(root, 0))
	assert.Nil(t, tree.ChildAt(root, -1))
}

func TestAttributesAndProperties(t *testing.T) {
	tree := New()
	n := tree.CreateElement("input")

	tree.SetAttribute(n, "type", "text")
	tree.SetProperty(n, "value", "hi")

	v, ok := n.(*Node).Attr("type")
	assert.True(t, ok)
	assert.Equal(t, "text", v)
	assert.Equal(t, "hi", tree.GetProperty(n, "value"))

	tree.RemoveAttribute(n, "type")
	_, ok = n.(*Node).Attr("type")
	assert.False(t, ok)
}

func TestDispatchBubbles(t *testing.T) {
	tree := New()
	outer := tree.CreateElement("div")
	button := tree.CreateElement("button")
	tree.AppendChild(outer, button)

	var order []string
	tree.AddEventListener(outer, "click", func(e host.Event) {
		order = append(order, "outer")
		assert.Same(t, button, e.Target)
	})
	remove := tree.AddEventListener(button, "click", func(host.Event) { order = append(order, "button") })

	tree.Dispatch(button, "click", nil)
	assert.Equal(t, []string{"button", "outer"}, order)
	assert.Equal(t, 1, tree.ListenerCount(button))

	remove()
	remove()
	tree.Dispatch(button, "click", nil)
	assert.Equal(t, []string{"button", "outer", "outer"}, order)
	assert.Zero(t, tree.ListenerCount(button))
}

func TestSetText(t *testing.T) {
	tree := New()
	n := tree.CreateTextNode("a")
	tree.SetText(n, "b")

	assert.Equal(t, "b", n.(*Node).TextContent())
	assert.True(t, n.(*Node).IsText())
}
