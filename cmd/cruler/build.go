package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/pevans/cruler/rule"
	"github.com/spf13/cobra"
)

func newBuildCommand(a *app) *cobra.Command {
	var (
		name          string
		links         []string
		localPath     string
		parts         []string
		extract       string
		postProcedure string
	)

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build a single extraction rule from flags",
		Example: `  cruler build --name foo --link http://a --local-path /tmp/foo \
    --extract '#sel' --post-procedure naver-webtoon`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			procedure, err := rule.ParseProcedure(postProcedure)
			if err != nil {
				return err
			}

			// Only flags that were passed set a field, so an explicit empty
			// value still counts as present.
			b := rule.NewBuilder().SetPostProcedure(procedure)
			if cmd.Flags().Changed("name") {
				b.SetName(name)
			}
			for _, link := range links {
				b.AddLink(link)
			}
			if cmd.Flags().Changed("local-path") {
				b.SetLocalPath(localPath)
			}
			for _, part := range parts {
				b.AddPart(part)
			}
			if cmd.Flags().Changed("extract") {
				b.SetExtract(extract)
			}

			return a.writeFragment(cmd.OutOrStdout(), b)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&name, "name", "", "Rule name (required)")
	flags.StringArrayVar(&links, "link", nil, "Source link; repeat for more")
	flags.StringVar(&localPath, "local-path", "", "Local storage path (required)")
	flags.StringArrayVar(&parts, "part", nil, "Part expression; repeat for more")
	flags.StringVar(&extract, "extract", "", "Extraction expression (required)")
	flags.StringVar(&postProcedure, "post-procedure", "none", "Post procedure: none or naver-webtoon")

	return cmd
}

// writeFragment builds b and writes the fragment to w.
func (a *app) writeFragment(w io.Writer, b *rule.Builder) error {
	fragment := b.Build()
	if fragment == "" {
		err := b.Validate()
		a.logger.Error("rule not built", slog.Any("err", err))
		return fmt.Errorf("failed to build rule: %w", err)
	}

	if _, err := io.WriteString(w, fragment); err != nil {
		return fmt.Errorf("failed to write rule: %w", err)
	}

	a.logger.Debug("rule built", slog.Int("bytes", len(fragment)))
	return nil
}
