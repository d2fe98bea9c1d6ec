package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jeanpaul/rolodex/internal/config"
	"github.com/jeanpaul/rolodex/internal/console"
	"github.com/jeanpaul/rolodex/internal/logging"
	"github.com/jeanpaul/rolodex/internal/store"
	"github.com/jeanpaul/rolodex/internal/theme"
	"github.com/jeanpaul/rolodex/internal/tui"
	"github.com/jeanpaul/rolodex/pkg/version"
)

type rootOptions struct {
	configPath string
	plain      bool
	logLevel   string
	logFormat  string
	logFile    string
	theme      string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "rolodex",
		Short: "Keep a directory of client contacts for the length of a session",
		Long: `rolodex is an in-memory client directory for the terminal.

Records live only as long as the session. Configuration is read from
config.yaml in the working directory or ~/.config/rolodex, then from
ROLODEX_* environment variables, then from flags.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSession(cmd, opts)
		},
	}

	f := cmd.PersistentFlags()
	f.StringVar(&opts.configPath, "config", "", "Path to a config file")
	f.StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	f.StringVar(&opts.logFormat, "log-format", "", "Log format (text, json)")
	f.StringVar(&opts.logFile, "log-file", "", "Append logs to this file")
	f.StringVar(&opts.theme, "theme", "", "Color theme (green, amber, mono)")
	cmd.Flags().BoolVar(&opts.plain, "plain", false, "Use the line console even on a terminal")

	cmd.AddCommand(newVersionCmd(), newConfigCmd(opts))
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}

func newConfigCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveConfig(opts)
			if err != nil {
				return err
			}
			out, err := cfg.YAML()
			if err != nil {
				return fmt.Errorf("render config: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
}

// resolveConfig loads the config file and environment, then applies flags.
func resolveConfig(opts *rootOptions) (*config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}
	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
	}
	if opts.logFormat != "" {
		cfg.Log.Format = opts.logFormat
	}
	if opts.logFile != "" {
		cfg.Log.File = opts.logFile
	}
	if opts.theme != "" {
		cfg.UI.Theme = opts.theme
	}
	if opts.plain {
		cfg.UI.Mode = config.ModeLine
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runSession(cmd *cobra.Command, opts *rootOptions) error {
	cfg, err := resolveConfig(opts)
	if err != nil {
		return err
	}
	if cfg.UI.Mode == config.ModeTUI && !isTerminal() {
		cfg.UI.Mode = config.ModeLine
	}

	logger, closeLog, err := buildLogger(cfg, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer closeLog()
	logger.Debug("session started", "mode", cfg.UI.Mode, "theme", cfg.UI.Theme, "version", version.Version)

	dir := store.New(store.WithLogger(logger))
	th := theme.Named(cfg.UI.Theme)
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if cfg.UI.Mode == config.ModeTUI {
		m := tui.NewModel(dir,
			tui.WithTheme(th),
			tui.WithLogger(logger),
			tui.WithConfirmRemove(cfg.UI.ConfirmRemove),
		)
		err = tui.Run(ctx, m)
	} else {
		c := console.New(dir, cmd.InOrStdin(), cmd.OutOrStdout(),
			console.WithTheme(th),
			console.WithLogger(logger),
		)
		err = c.Run(ctx)
	}

	logger.Debug("session ended", "clients", dir.Len())
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// buildLogger writes to log.file when set. Without a file the line console
// logs to stderr and the full-screen UI stays silent so it does not tear
// the screen.
func buildLogger(cfg *config.Config, stderr io.Writer) (*slog.Logger, func(), error) {
	closeFn := func() {}
	var out io.Writer
	switch {
	case cfg.Log.File != "":
		f, err := logging.Open(cfg.Log.File)
		if err != nil {
			return nil, closeFn, err
		}
		out, closeFn = f, func() { _ = f.Close() }
	case cfg.UI.Mode == config.ModeLine:
		out = stderr
	default:
		return logging.Nop(), closeFn, nil
	}

	logger := logging.New(logging.Config{
		Level:  logging.ParseLevel(cfg.Log.Level),
		Format: logging.ParseFormat(cfg.Log.Format),
		Output: out,
	})
	return logger.With("session", uuid.NewString()), closeFn, nil
}
