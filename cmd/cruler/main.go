package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/pevans/cruler/config"
	"github.com/pevans/cruler/logging"
	"github.com/spf13/cobra"
)

// app carries state shared by the subcommands of a single invocation.
type app struct {
	logLevel   string
	logFormat  string
	configFile string

	cfg    config.Config
	helper *config.Helper
	logger *slog.Logger
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	a := &app{helper: config.NewHelper()}

	cmd := &cobra.Command{
		Use:   "cruler",
		Short: "Build extraction rules for the cruler scraping engine",
		Long: `cruler renders [[extraction]] rule fragments.

Environment Variables:
  CRULER_LOG_LEVEL   Log level (default: info)
  CRULER_LOG_FORMAT  Log format: text, logfmt or json (default: text)
  CRULER_RULES       Rules file used by "render" when no path is given`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.logLevel, "log-level", "", "Log level: error, warn, info or debug")
	flags.StringVar(&a.logFormat, "log-format", "", "Log format: text, logfmt or json")
	flags.StringVar(&a.configFile, "config", "", "Config file (default: ~/.cruler/config.yaml)")

	cmd.AddCommand(
		newBuildCommand(a),
		newRenderCommand(a),
	)

	return cmd
}

// setup resolves configuration and installs the logger. Flags override the
// environment, which overrides the config file.
func (a *app) setup(cmd *cobra.Command) error {
	file, err := loadConfigFile(a.configFile)
	if err != nil {
		return err
	}

	a.cfg = config.Resolve(file, os.Getenv)
	if cmd.Flags().Changed("log-level") {
		a.cfg.LogLevel = a.logLevel
	}
	if cmd.Flags().Changed("log-format") {
		a.cfg.LogFormat = a.logFormat
	}

	handler, err := logging.NewHandler(cmd.ErrOrStderr(), a.cfg.LogLevel, a.cfg.LogFormat)
	if err != nil {
		return fmt.Errorf("failed to create log handler: %w", err)
	}
	a.logger = slog.New(handler)
	a.logger.Debug("configuration resolved",
		slog.String("log_level", a.cfg.LogLevel),
		slog.String("log_format", a.cfg.LogFormat),
		slog.String("rules", a.cfg.RulesPath),
	)

	return nil
}
