package main

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tsawler/lattice/internal/config"
)

// app carries the state shared by every subcommand of one invocation.
type app struct {
	cfgFile string
	v       *viper.Viper
	cfg     *config.Config
	logger  *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	rootCmd := &cobra.Command{
		Use:   "lattice",
		Short: "Reconstruct ruled tables from grid proposals and line segments",
		Long: `lattice rebuilds the cell structure of ruled tables from a proposed grid
and the line segments detected on a page, then exports the result.

Each job is described by a YAML or JSON manifest listing, per table:
  - the column and row intervals, or the segments to propose them from
  - the vertical and horizontal ruling segments
  - the text to place, by cell or by position`,
		Version:       versionString(),
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default: ./lattice.yaml or ~/.lattice/lattice.yaml)")
	flags.String("log-level", "info", "log level: debug, info, warn or error")
	flags.String("log-format", "text", "log format: text or json")
	flags.Float64("tolerance", 2, "joint tolerance for matching segments to the grid")
	flags.String("flavor", "lattice", "reconstruction flavor: lattice or stream")

	_ = a.v.BindPFlag("log_level", flags.Lookup("log-level"))
	_ = a.v.BindPFlag("log_format", flags.Lookup("log-format"))
	_ = a.v.BindPFlag("tolerance", flags.Lookup("tolerance"))
	_ = a.v.BindPFlag("flavor", flags.Lookup("flavor"))

	rootCmd.AddCommand(
		newExportCmd(a),
		newReportCmd(a),
		newConfigCmd(),
		newVersionCmd(),
	)
	return rootCmd
}

// load resolves the configuration and builds the logger.
func (a *app) load(cmd *cobra.Command) error {
	cfg, err := config.Load(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	a.cfg = cfg

	level, _ := cfg.SlogLevel()
	a.logger = newLogger(cmd.ErrOrStderr(), cfg.LogFormat, level)
	return nil
}

func newLogger(w io.Writer, format string, level slog.Level) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
