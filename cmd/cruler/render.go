package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/pevans/cruler/rulespec"
	"github.com/spf13/cobra"
)

var errNoRulesFile = errors.New("no rules file given and CRULER_RULES is not set")

func newRenderCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "render [rules.yaml]",
		Short: "Render every rule in a YAML rules file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := a.cfg.RulesPath
			if len(args) == 1 {
				path = args[0]
			}
			if path == "" {
				return errNoRulesFile
			}
			a.helper.SetConfigPath(path)

			f, err := rulespec.Load(path)
			if err != nil {
				return err
			}

			out, err := f.Render()
			if err != nil {
				a.logger.Error("rules not rendered", slog.String("path", path), slog.Any("err", err))
				return fmt.Errorf("failed to render %s: %w", path, err)
			}

			if _, err := io.WriteString(cmd.OutOrStdout(), out); err != nil {
				return fmt.Errorf("failed to write rules: %w", err)
			}

			a.logger.Info("rules rendered", slog.String("path", path), slog.Int("count", len(f.Rules)))
			return nil
		},
	}
}
