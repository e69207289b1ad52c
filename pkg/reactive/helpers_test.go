package reactive

import (
	stderrors "errors"
	"testing"

	"github.com/vango-dev/reflow/internal/errors"
)

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

type counter struct {
	calls int
}

func (c *counter) hit() {
	c.calls++
}
