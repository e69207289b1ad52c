package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/vango-dev/reflow/internal/bench"
	"github.com/vango-dev/reflow/pkg/listdiff"
	"github.com/vango-dev/reflow/pkg/reactive"
)

func benchCmd(load loader) *cobra.Command {
	var (
		sizes      []int
		iterations int
		scenarios  []string
		seed       uint64
		showStats  bool
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time keyed list reconciles",
		Long: `Time keyed list reconciles against the in-memory host.

Each scenario changes a list of the configured size and times the
reconcile. Flags override the bench section of reflow.json.

Scenarios:
  ` + strings.Join(bench.Names(), ", ") + `

Examples:
  reflow bench
  reflow bench --size 1000 --iterations 200
  reflow bench --scenario reverse --scenario shuffle --metrics`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := load(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			if flags.Changed("size") {
				cfg.Bench.Sizes = sizes
			}
			if flags.Changed("iterations") {
				cfg.Bench.Iterations = iterations
			}
			if flags.Changed("scenario") {
				for _, name := range scenarios {
					if _, err := bench.Lookup(name); err != nil {
						logger.Debug("bench failed", slog.Any("error", err))
						return err
					}
				}
				cfg.Bench.Scenarios = scenarios
			}
			if flags.Changed("seed") {
				cfg.Bench.Seed = seed
			}

			if err := cfg.Validate(); err != nil {
				return err
			}

			reactive.SetDiagnostics(cfg.Render.Diagnostics)
			defer reactive.SetDiagnostics(false)

			reg := prometheus.NewRegistry()
			runner := &bench.Runner{
				Sizes:      cfg.Bench.Sizes,
				Iterations: cfg.Bench.Iterations,
				Scenarios:  cfg.Bench.Scenarios,
				Seed:       cfg.Bench.Seed,
				Namespace:  cfg.Metrics.Namespace,
				Registry:   reg,
				Logger:     logger,
			}

			results, err := runner.Run(cmd.Context())
			if err != nil {
				logger.Debug("bench failed", slog.Any("error", err))
				return err
			}

			out := cmd.OutOrStdout()
			renderResults(out, results, cfg.Bench.Iterations)

			if showStats {
				samples, err := bench.Gather(reg)
				if err != nil {
					return err
				}
				renderSamples(out, samples)
			}
			return nil
		},
	}

	cmd.Flags().IntSliceVarP(&sizes, "size", "n", nil, "List sizes to bench")
	cmd.Flags().IntVarP(&iterations, "iterations", "i", 0, "Timed runs per case")
	cmd.Flags().StringSliceVarP(&scenarios, "scenario", "s", nil, "Scenarios to run (default: all)")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Shuffle seed")
	cmd.Flags().BoolVarP(&showStats, "metrics", "m", false, "Print the gathered Prometheus metrics")

	return cmd
}

func renderResults(out io.Writer, results []bench.Result, iterations int) {
	tbl := table.NewWriter()
	tbl.SetTitle(fmt.Sprintf("List reconcile (%s iterations)", humanize.Comma(int64(iterations))))
	tbl.SetOutputMirror(out)
	tbl.AppendHeader(table.Row{"scenario", "size", "edits", "avg", "min", "p75", "p99", "max", "rate", "fingerprint"})

	for _, res := range results {
		t := res.Times.Time
		rate := "-"
		if t.Avg > 0 {
			rate = humanize.SIWithDigits(1/t.Avg.Seconds(), 1, "/s")
		}
		tbl.AppendRow(table.Row{
			res.Scenario,
			humanize.Comma(int64(res.Size)),
			edits(res.Actions),
			t.Avg, t.Min, t.P75, t.P99, t.Max,
			rate,
			fmt.Sprintf("%016x", res.Fingerprint),
		})
	}
	tbl.Render()
}

func renderSamples(out io.Writer, samples []bench.Sample) {
	tbl := table.NewWriter()
	tbl.SetTitle("Metrics")
	tbl.SetOutputMirror(out)
	tbl.AppendHeader(table.Row{"metric", "value"})
	for _, s := range samples {
		tbl.AppendRow(table.Row{s.Name, humanize.Commaf(s.Value)})
	}
	tbl.Render()
}

// edits formats action counts as "move=3 add=1".
func edits(counts map[listdiff.Kind]int) string {
	var parts []string
	for _, k := range []listdiff.Kind{listdiff.Remove, listdiff.Replace, listdiff.Move, listdiff.Add} {
		if n := counts[k]; n > 0 {
			parts = append(parts, fmt.Sprintf("%s=%s", k, humanize.Comma(int64(n))))
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, " ")
}
