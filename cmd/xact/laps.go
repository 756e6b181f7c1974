package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/helixml/xact"
	"github.com/helixml/xact/domain/lap"
	"github.com/helixml/xact/domain/repository"
	"github.com/helixml/xact/internal/config"
)

func lapsCmd(flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "laps",
		Short: "Record and report laps",
	}

	cmd.AddCommand(lapsAddCmd(flags))
	cmd.AddCommand(lapsListCmd(flags))
	cmd.AddCommand(lapsReportCmd(flags))
	cmd.AddCommand(lapsRmCmd(flags))
	cmd.AddCommand(lapsExportCmd(flags))
	cmd.AddCommand(lapsImportCmd(flags))

	return cmd
}

// withClient opens a Client for the duration of fn.
func withClient(flags *globalFlags, fn func(*xact.Client, config.AppConfig) error) (err error) {
	client, cfg, err := openClient(flags)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := client.Close(); err == nil {
			err = closeErr
		}
	}()
	return fn(client, cfg)
}

func lapsAddCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "add LABEL SPAN",
		Short: "Record a lap",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(flags, func(client *xact.Client, cfg config.AppConfig) error {
				l, err := client.Laps.Record(cmd.Context(), args[0], args[1])
				if err != nil {
					return err
				}
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\n", l.ID(), l.Label(), l.Span().Format(cfg.Layout()))
				return err
			})
		},
	}
}

type lapFilterFlags struct {
	label     string
	labelLike string
	newest    bool
	limit     int
}

func (f *lapFilterFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.label, "label", "", "Only laps with this exact label")
	cmd.Flags().StringVar(&f.labelLike, "like", "", "Only laps whose label matches this SQL LIKE pattern")
}

func (f *lapFilterFlags) options() []repository.Option {
	var opts []repository.Option
	if f.label != "" {
		opts = append(opts, lap.WithLabel(f.label))
	}
	if f.labelLike != "" {
		opts = append(opts, lap.WithLabelLike(f.labelLike))
	}
	if f.newest {
		opts = append(opts, lap.WithNewestFirst(), repository.WithOrderDesc("id"))
	}
	if f.limit > 0 {
		opts = append(opts, repository.WithLimit(f.limit))
	}
	return opts
}

func lapsListCmd(flags *globalFlags) *cobra.Command {
	filters := &lapFilterFlags{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recorded laps",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withClient(flags, func(client *xact.Client, cfg config.AppConfig) error {
				laps, err := client.Laps.List(cmd.Context(), filters.options()...)
				if err != nil {
					return err
				}
				return writeLaps(cmd.OutOrStdout(), laps, cfg.Layout())
			})
		},
	}

	filters.register(cmd)
	cmd.Flags().BoolVar(&filters.newest, "newest", false, "Newest laps first")
	cmd.Flags().IntVar(&filters.limit, "limit", 0, "Maximum number of laps (0 for all)")

	return cmd
}

func writeLaps(w io.Writer, laps []lap.Lap, layout string) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "ID\tLABEL\tSPAN\tRECORDED")
	for _, l := range laps {
		_, _ = fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", l.ID(), l.Label(), l.Span().Format(layout), l.CreatedAt().Format("2006-01-02 15:04:05"))
	}
	return tw.Flush()
}

func lapsReportCmd(flags *globalFlags) *cobra.Command {
	filters := &lapFilterFlags{}

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print laps with their total",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withClient(flags, func(client *xact.Client, cfg config.AppConfig) error {
				report, err := client.Laps.Report(cmd.Context(), cfg.Layout(), filters.options()...)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), report)
				return err
			})
		},
	}

	filters.register(cmd)
	return cmd
}

func lapsRmCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "rm ID...",
		Short: "Delete laps",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids := make([]int64, 0, len(args))
			for _, arg := range args {
				id, err := strconv.ParseInt(arg, 10, 64)
				if err != nil {
					return fmt.Errorf("lap id %q: %w", arg, err)
				}
				ids = append(ids, id)
			}

			return withClient(flags, func(client *xact.Client, _ config.AppConfig) error {
				for _, id := range ids {
					if err := client.Laps.Delete(cmd.Context(), id); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
}

func lapsExportCmd(flags *globalFlags) *cobra.Command {
	var (
		format string
		output string
	)
	filters := &lapFilterFlags{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export laps as json, yaml, toml or cbor",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withClient(flags, func(client *xact.Client, _ config.AppConfig) error {
				data, err := client.Laps.Export(cmd.Context(), format, filters.options()...)
				if err != nil {
					return err
				}
				if output == "" || output == "-" {
					_, err = cmd.OutOrStdout().Write(data)
					return err
				}
				if err := os.WriteFile(output, data, 0o644); err != nil {
					return fmt.Errorf("write %s: %w", output, err)
				}
				return nil
			})
		},
	}

	filters.register(cmd)
	cmd.Flags().StringVar(&format, "format", "json", "Archive format: json, yaml, toml or cbor")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default: stdout)")

	return cmd
}

func lapsImportCmd(flags *globalFlags) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Import laps from an archive; FILE may be - for stdin",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}

			return withClient(flags, func(client *xact.Client, _ config.AppConfig) error {
				laps, err := client.Laps.Import(cmd.Context(), format, data)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "imported %d laps\n", len(laps))
				return err
			})
		},
	}

	cmd.Flags().StringVar(&format, "format", "json", "Archive format: json, yaml, toml or cbor")
	return cmd
}

func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}
