package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/helixml/xact/domain/timespan"
)

func spanCmd(flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "span",
		Short: "Parse, format and compute time intervals",
		Long: `Parse, format and compute time intervals with 100ns tick precision.

Intervals are written as [-][d.]h:m:s[.fffffff]. Pass "--" before a
negative interval so it is not read as a flag.`,
	}

	cmd.AddCommand(spanParseCmd(flags))
	cmd.AddCommand(spanFormatCmd(flags))
	cmd.AddCommand(spanBinaryCmd(flags, "add", "Add two intervals", timespan.Timespan.Add))
	cmd.AddCommand(spanBinaryCmd(flags, "sub", "Subtract the second interval from the first", timespan.Timespan.Sub))
	cmd.AddCommand(spanScalarCmd(flags, "mul", "Multiply an interval by a factor", timespan.Timespan.Mul))
	cmd.AddCommand(spanScalarCmd(flags, "div", "Divide an interval by a divisor", timespan.Timespan.Div))

	return cmd
}

func spanParseCmd(flags *globalFlags) *cobra.Command {
	var ticks bool

	cmd := &cobra.Command{
		Use:   "parse TEXT",
		Short: "Parse an interval and print it in the configured layout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := timespan.Parse(args[0])
			if err != nil {
				return err
			}
			if ticks {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), t.Ticks())
				return err
			}
			return printSpan(cmd, flags, t)
		},
	}

	cmd.Flags().BoolVar(&ticks, "ticks", false, "Print the tick count instead of text")
	return cmd
}

func spanFormatCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "format TICKS",
		Short: "Format a tick count",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ticks, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("ticks: %w", err)
			}
			return printSpan(cmd, flags, timespan.FromTicks(ticks))
		},
	}
}

func spanBinaryCmd(flags *globalFlags, name, short string, op func(timespan.Timespan, timespan.Timespan) (timespan.Timespan, error)) *cobra.Command {
	return &cobra.Command{
		Use:   name + " A B",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := timespan.Parse(args[0])
			if err != nil {
				return err
			}
			b, err := timespan.Parse(args[1])
			if err != nil {
				return err
			}
			result, err := op(a, b)
			if err != nil {
				return err
			}
			return printSpan(cmd, flags, result)
		},
	}
}

func spanScalarCmd(flags *globalFlags, name, short string, op func(timespan.Timespan, float64) (timespan.Timespan, error)) *cobra.Command {
	return &cobra.Command{
		Use:   name + " A SCALAR",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := timespan.Parse(args[0])
			if err != nil {
				return err
			}
			scalar, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("scalar: %w", err)
			}
			result, err := op(a, scalar)
			if err != nil {
				return err
			}
			return printSpan(cmd, flags, result)
		},
	}
}

func printSpan(cmd *cobra.Command, flags *globalFlags, t timespan.Timespan) error {
	cfg, err := loadConfig(flags)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), t.Format(cfg.Layout()))
	return err
}
