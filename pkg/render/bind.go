package render

import (
	"fmt"

	"github.com/vango-dev/reflow/internal/errors"
	"github.com/vango-dev/reflow/pkg/host"
)

// Bind returns an event handler that writes the event target's property
// prop into v. With a nil transform the property must already be a T; a
// missing property writes T's zero value.
//
//	query := reactive.NewInput("")
//	vdom.Input(vdom.Value(query), vdom.OnInput(render.Bind(query, "value", nil)))
func Bind[T any](v interface{ Change(T) }, prop string, transform func(any) T) func(host.Event) {
	return func(e host.Event) {
		raw := e.Property(prop)
		if transform != nil {
			v.Change(transform(raw))
			return
		}
		if raw == nil {
			var zero T
			v.Change(zero)
			return
		}
		t, ok := raw.(T)
		if !ok {
			var zero T
			panic(errors.New("R012").
				WithField("property", prop).
				WithField("got", fmt.Sprintf("%T", raw)).
				WithField("want", fmt.Sprintf("%T", zero)).
				WithSuggestion("Pass a transform that converts the property"))
		}
		v.Change(t)
	}
}
