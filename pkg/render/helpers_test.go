package render

import (
	stderrors "errors"
	"strings"
	"testing"

	"github.com/vango-dev/reflow/internal/errors"
	"github.com/vango-dev/reflow/pkg/host"
	"github.com/vango-dev/reflow/pkg/host/memhost"
	"github.com/vango-dev/reflow/pkg/reactive"
	"github.com/vango-dev/reflow/pkg/vdom"
)

// mount renders node into a fresh <body> and unmounts it when the test
// ends.
func mount(t testing.TB, node *vdom.Node, watch ...reactive.Node) (*memhost.Tree, host.Node, *Mounted) {
	t.Helper()
	tree := memhost.New()
	body := tree.CreateElement("body")
	m := New(tree).Mount(node, body, watch...)
	t.Cleanup(m.Unmount)
	return tree, body, m
}

// panicCode runs fn and returns the code of the *errors.Error it panics
// with, or "" if it returns normally.
func panicCode(t *testing.T, fn func()) (code string) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		var e *errors.Error
		if err, ok := r.(error); ok && stderrors.As(err, &e) {
			code = e.Code
			return
		}
		code = "non-coded panic"
	}()
	fn()
	return ""
}

// joined renders ints the way the list fixtures print them.
func joined(items []int, each func(int) string) string {
	var b strings.Builder
	for _, v := range items {
		b.WriteString(each(v))
	}
	return b.String()
}

func inc(v int) int { return v + 1 }
