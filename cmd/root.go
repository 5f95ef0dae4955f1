package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/notaneet/ttmerge/config"
	"github.com/notaneet/ttmerge/logger"
)

// app holds state shared by all commands of one invocation.
type app struct {
	cfgPath   string
	logLevel  string
	logFormat string

	cfg *config.Config
	log zerolog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	rootCmd := &cobra.Command{
		Use:   "ttmerge",
		Short: "Merge, filter and export class timetables",
		Long: `ttmerge combines timetable documents (day -> time slot -> classes)
into one, appending the classes of slots that appear in several inputs.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	rootCmd.PersistentFlags().StringVarP(&a.cfgPath, "config", "c", "", "configuration file (.yaml, .yml or .json)")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&a.logFormat, "log-format", "", "log format (pretty or json)")

	mergeCmd := newMergeCmd(a)
	rootCmd.AddCommand(mergeCmd, newFilterCmd(a), newCoursesCmd(a))
	// Bare "ttmerge" merges the configured inputs.
	rootCmd.RunE = mergeCmd.RunE
	return rootCmd
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if a.logFormat != "" {
		cfg.Log.Format = a.logFormat
	}
	if err := cfg.Log.Validate(); err != nil {
		return err
	}

	a.cfg = cfg
	logger.Setup(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Format)
	a.log = logger.New(cmd.Name())
	return nil
}

// Execute runs the CLI and exits non-zero on failure.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
