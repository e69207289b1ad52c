package bench

import (
	"math/rand/v2"
	"slices"

	"github.com/vango-dev/reflow/internal/errors"
)

// Scenario turns the base list of a case into the list it is changed to.
// fresh returns item keys that are not in any list yet.
type Scenario struct {
	Name string
	Next func(base []int, rng *rand.Rand, fresh func() int) []int
}

var scenarios = []Scenario{
	{"append", func(base []int, _ *rand.Rand, fresh func() int) []int {
		out := slices.Clone(base)
		for range growth(len(base)) {
			out = append(out, fresh())
		}
		return out
	}},
	{"prepend", func(base []int, _ *rand.Rand, fresh func() int) []int {
		out := make([]int, 0, len(base)+growth(len(base)))
		for range growth(len(base)) {
			out = append(out, fresh())
		}
		return append(out, base...)
	}},
	{"reverse", func(base []int, _ *rand.Rand, _ func() int) []int {
		out := slices.Clone(base)
		slices.Reverse(out)
		return out
	}},
	{"shuffle", func(base []int, rng *rand.Rand, _ func() int) []int {
		out := slices.Clone(base)
		rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
		return out
	}},
	{"swap", func(base []int, _ *rand.Rand, _ func() int) []int {
		out := slices.Clone(base)
		if n := len(out); n >= 2 {
			out[1], out[n-2] = out[n-2], out[1]
		}
		return out
	}},
	{"remove-every-other", func(base []int, _ *rand.Rand, _ func() int) []int {
		out := make([]int, 0, (len(base)+1)/2)
		for i := 0; i < len(base); i += 2 {
			out = append(out, base[i])
		}
		return out
	}},
	{"clear", func([]int, *rand.Rand, func() int) []int {
		return nil
	}},
}

// growth is the number of items append and prepend add.
func growth(n int) int {
	return max(1, n/10)
}

// Lookup returns the named scenario. An unknown name is an R110 error.
func Lookup(name string) (Scenario, error) {
	for _, s := range scenarios {
		if s.Name == name {
			return s, nil
		}
	}
	return Scenario{}, errors.New("R110").
		WithField("scenario", name).
		WithSuggestion("Run 'reflow bench --help' to list the scenarios")
}

// Names returns every scenario name in run order.
func Names() []string {
	out := make([]string, len(scenarios))
	for i, s := range scenarios {
		out[i] = s.Name
	}
	return out
}
