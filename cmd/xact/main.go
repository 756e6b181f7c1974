// Package main is the entry point for the xact CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/helixml/xact/internal/config"
	"github.com/helixml/xact/internal/log"
)

// Version information set via ldflags during build.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// globalFlags are shared by every subcommand.
type globalFlags struct {
	envFile string
	dbURL   string
	layout  string
}

func rootCmd() *cobra.Command {
	flags := &globalFlags{}

	cmd := &cobra.Command{
		Use:           "xact",
		Short:         "Exact time intervals, text building and lap tracking",
		Long:          `xact parses, formats and does checked arithmetic on tick-precision time intervals, assembles text from fragments and records laps in a database.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&flags.envFile, "env-file", "", "Path to .env file (default: .env in current directory)")
	cmd.PersistentFlags().StringVar(&flags.dbURL, "db-url", "", "Database URL (default: sqlite:///{data_dir}/xact.db)")
	cmd.PersistentFlags().StringVar(&flags.layout, "layout", "", "Timespan layout: c, g, G or a custom layout (default: c)")

	cmd.AddCommand(spanCmd(flags))
	cmd.AddCommand(textCmd())
	cmd.AddCommand(seqCmd())
	cmd.AddCommand(lapsCmd(flags))
	cmd.AddCommand(serveCmd(flags))
	cmd.AddCommand(versionCmd())

	return cmd
}

// loadConfig loads configuration from the .env file and environment
// variables, then applies the global flag overrides.
func loadConfig(flags *globalFlags) (config.AppConfig, error) {
	cfg, err := config.LoadConfig(flags.envFile)
	if err != nil {
		return config.AppConfig{}, fmt.Errorf("load config: %w", err)
	}

	var opts []config.AppConfigOption
	if flags.dbURL != "" {
		opts = append(opts, config.WithDBURL(flags.dbURL))
	}
	if flags.layout != "" {
		opts = append(opts, config.WithLayout(flags.layout))
	}
	cfg = cfg.Apply(opts...)

	log.Configure(cfg)
	return cfg, nil
}
