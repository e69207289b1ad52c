package main

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/vango-dev/reflow/internal/errors"
	"github.com/vango-dev/reflow/pkg/listdiff"
)

func diffCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diff CURRENT NEXT",
		Short: "Print the edits between two lists",
		Long: `Print the keyed edits that turn CURRENT into NEXT.

Lists are comma-separated items keyed by their text. An empty
argument is an empty list. The edits are replayed over CURRENT
to check that they produce NEXT.

Examples:
  reflow diff 1,2,3,4,5 5,2,1,4,3
  reflow diff a,b,c c,d
  reflow diff "" x,y`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			current, err := parseList(args[0])
			if err != nil {
				return err
			}
			next, err := parseList(args[1])
			if err != nil {
				return err
			}

			actions := listdiff.Diff(current, next, nil)

			out := cmd.OutOrStdout()
			table := tablewriter.NewWriter(out)
			table.SetHeader([]string{"#", "action", "a", "b", "item"})
			for i, a := range actions {
				table.Append(actionRow(i, a, current, next))
			}
			table.Render()

			got, err := listdiff.Apply(current, next, actions)
			if err != nil {
				return err
			}
			if !slices.Equal(got, next) {
				return errors.Newf(errors.CategoryInvariant, "replay produced %v, want %v", got, next)
			}
			fmt.Fprintf(out, "%d edits, replay ok\n", len(actions))
			return nil
		},
	}
	return cmd
}

func actionRow(i int, a listdiff.Action, current, next []string) []string {
	b := ""
	item := ""
	switch a.Kind {
	case listdiff.Remove:
		item = current[a.A]
	case listdiff.Add:
		item = next[a.A]
	case listdiff.Replace:
		b = strconv.Itoa(a.B)
		item = current[a.A] + " -> " + next[a.B]
	case listdiff.Move:
		b = strconv.Itoa(a.B)
	}
	return []string{strconv.Itoa(i), a.Kind.String(), strconv.Itoa(a.A), b, item}
}

// parseList splits a comma-separated list. Items are trimmed and must not
// be empty.
func parseList(s string) ([]string, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	for i, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			return nil, errors.New("R111").
				WithField("list", s).
				WithField("position", i).
				WithDetail("Item " + strconv.Itoa(i) + " is empty")
		}
		parts[i] = p
	}
	return parts, nil
}
