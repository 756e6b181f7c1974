package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/helixml/xact/domain/sequence"
)

var selectors = map[string]func(int) int{
	"identity": func(i int) int { return i },
	"double":   func(i int) int { return 2 * i },
	"square":   func(i int) int { return i * i },
}

func seqCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seq",
		Short: "Sequence queries over integer ranges",
	}
	cmd.AddCommand(seqRangeCmd())
	return cmd
}

func seqRangeCmd() *cobra.Command {
	var (
		selector string
		desc     bool
		even     bool
	)

	cmd := &cobra.Command{
		Use:   "range START STOP",
		Short: "Print START up to but excluding STOP",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("start: %w", err)
			}
			stop, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("stop: %w", err)
			}
			fn, ok := selectors[selector]
			if !ok {
				return fmt.Errorf("unknown selector %q", selector)
			}

			q := sequence.Range(start, stop)
			if even {
				q = q.Where(func(i int) bool { return i%2 == 0 })
			}
			q = sequence.Select(q, fn)
			if desc {
				q = sequence.OrderByDescending(q, func(i int) int { return i })
			}

			out := cmd.OutOrStdout()
			for v := range q.Values() {
				if _, err := fmt.Fprintln(out, v); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&selector, "select", "identity", "Projection: identity, double or square")
	cmd.Flags().BoolVar(&desc, "desc", false, "Order the results descending")
	cmd.Flags().BoolVar(&even, "even", false, "Keep only even inputs")

	return cmd
}
