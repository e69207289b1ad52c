// Package bench times keyed list reconciles against the in-memory host.
package bench

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/jamiealquiza/tachymeter"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/vango-dev/reflow/pkg/host/memhost"
	"github.com/vango-dev/reflow/pkg/listdiff"
	"github.com/vango-dev/reflow/pkg/reactive"
	"github.com/vango-dev/reflow/pkg/render"
	"github.com/vango-dev/reflow/pkg/vdom"
)

// Runner runs every scenario at every size.
type Runner struct {
	Sizes      []int
	Iterations int
	Scenarios  []string
	Seed       uint64

	// Namespace prefixes the metrics registered on Registry.
	Namespace string
	Registry  *prometheus.Registry
	Logger    *slog.Logger
}

// Result is the outcome of one scenario at one size.
type Result struct {
	Scenario string
	Size     int

	// Times holds the reconcile timings of every iteration.
	Times *tachymeter.Metrics

	// Actions counts the edits of one reconcile.
	Actions map[listdiff.Kind]int

	// Items is the number of rendered items after the last iteration.
	Items int

	// Fingerprint hashes the host tree after the last iteration.
	Fingerprint uint64
}

// Run executes the cases in order. It stops early when ctx is done.
func (r *Runner) Run(ctx context.Context) ([]Result, error) {
	cases := make([]Scenario, 0, len(r.Scenarios))
	for _, name := range r.Scenarios {
		s, err := Lookup(name)
		if err != nil {
			return nil, err
		}
		cases = append(cases, s)
	}

	logger := r.Logger
	if logger == nil {
		logger = slog.Default()
	}
	opts := []render.Option{render.WithLogger(logger), render.WithTracing("reflow/bench")}
	if r.Registry != nil {
		opts = append(opts, render.WithMetrics(
			render.WithRegistry(r.Registry),
			render.WithNamespace(r.Namespace),
		))
	}

	tree := memhost.New()
	renderer := render.New(tree, opts...)
	rng := rand.New(rand.NewPCG(r.Seed, r.Seed))

	var results []Result
	for _, s := range cases {
		for _, size := range r.Sizes {
			if err := ctx.Err(); err != nil {
				return results, err
			}
			res := r.runCase(ctx, renderer, tree, s, size, rng)
			logger.Debug("bench case",
				slog.String("scenario", s.Name),
				slog.Int("size", size),
				slog.Duration("avg", res.Times.Time.Avg))
			results = append(results, res)
		}
	}
	return results, nil
}

func (r *Runner) runCase(ctx context.Context, renderer *render.Renderer, tree *memhost.Tree, s Scenario, size int, rng *rand.Rand) Result {
	base := make([]int, size)
	for i := range base {
		base[i] = i
	}
	nextID := size
	fresh := func() int {
		nextID++
		return nextID
	}

	data := reactive.NewInput(slices.Clone(base))
	body := tree.CreateElement("body")
	m := renderer.MountContext(ctx, itemList(data), body, data)
	defer m.Unmount()

	iterations := max(1, r.Iterations)
	tach := tachymeter.New(&tachymeter.Config{Size: iterations})

	var next []int
	for range iterations {
		data.Change(slices.Clone(base))
		next = s.Next(base, rng, fresh)

		start := time.Now()
		data.Change(next)
		tach.AddTime(time.Since(start))
	}

	ul := tree.ChildAt(body, 0)
	return Result{
		Scenario:    s.Name,
		Size:        size,
		Times:       tach.Calc(),
		Actions:     listdiff.Count(listdiff.Diff(base, next, nil)),
		Items:       tree.ChildCount(ul),
		Fingerprint: tree.Fingerprint(body),
	}
}

func itemList(data reactive.Value[[]int]) *vdom.Node {
	return vdom.Ul(vdom.List(data, nil, func(p reactive.Projection[int]) *vdom.Node {
		return vdom.Li(vdom.Data("id", p), p)
	}))
}

// Label names a case in reports.
func (res Result) Label() string {
	return fmt.Sprintf("%s/%d", res.Scenario, res.Size)
}
