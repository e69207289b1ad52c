package listdiff

import (
	"slices"

	"github.com/vango-dev/reflow/internal/errors"
)

// Apply replays actions over a copy of current, taking replaced and added
// items from next. An action pointing outside the list is an R001 error.
func Apply[T any](current, next []T, actions []Action) ([]T, error) {
	out := make([]T, len(current), len(current)+len(next))
	copy(out, current)

	for n, a := range actions {
		bad := func(i, length int) error {
			return errors.New("R001").
				WithField("action", n).
				WithField("op", a.String()).
				WithField("index", i).
				WithField("length", length)
		}
		switch a.Kind {
		case Remove:
			if a.A < 0 || a.A >= len(out) {
				return nil, bad(a.A, len(out))
			}
			out = slices.Delete(out, a.A, a.A+1)
		case Replace:
			if a.A < 0 || a.A >= len(out) {
				return nil, bad(a.A, len(out))
			}
			if a.B < 0 || a.B >= len(next) {
				return nil, bad(a.B, len(next))
			}
			out[a.A] = next[a.B]
		case Move:
			if a.A < 0 || a.A >= len(out) {
				return nil, bad(a.A, len(out))
			}
			if a.B < 0 || a.B >= len(out) {
				return nil, bad(a.B, len(out))
			}
			item := out[a.A]
			out = slices.Insert(slices.Delete(out, a.A, a.A+1), a.B, item)
		case Add:
			if a.A < 0 || a.A > len(out) || a.A >= len(next) {
				return nil, bad(a.A, len(out))
			}
			out = slices.Insert(out, a.A, next[a.A])
		default:
			return nil, errors.New("R111").WithField("kind", int(a.Kind))
		}
	}
	return out, nil
}
