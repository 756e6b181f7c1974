package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/helixml/xact/domain/textbuilder"
)

func textCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "text",
		Short: "Assemble text from fragments",
	}
	cmd.AddCommand(textRenderCmd())
	return cmd
}

func textRenderCmd() *cobra.Command {
	var (
		lines []string
		parts []string
		raw   bool
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render lines followed by plain fragments",
		Long: `Render a text builder. Every --line is appended as a line, then every
--part as a plain fragment. By default the lines are joined with a single
newline; --raw prints the fragments exactly as stored.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			b := textbuilder.New()
			for _, l := range lines {
				b.AppendLine(l)
			}
			for _, p := range parts {
				b.Append(p)
			}

			out := b.String()
			if raw {
				out = b.Raw()
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}

	cmd.Flags().StringArrayVar(&lines, "line", nil, "Fragment appended as a line (repeatable)")
	cmd.Flags().StringArrayVar(&parts, "part", nil, "Plain fragment appended after the lines (repeatable)")
	cmd.Flags().BoolVar(&raw, "raw", false, "Print the raw concatenation")

	return cmd
}
