package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/joestump/promptsmith/internal/config"
	"github.com/joestump/promptsmith/internal/llm"
)

func newGenerateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "generate <persona-id> <task...>",
		Short: "Rewrite a task for a persona with the configured model",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			catalog, err := loadCatalog(cfg)
			if err != nil {
				return err
			}
			p, err := catalog.Get(args[0])
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}

			gen, err := llm.New(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			g, err := llm.NewOptimizer(gen, cfg.LLM.Provider).Optimize(cmd.Context(), p, strings.Join(args[1:], " "))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), g.Prompt)
			return nil
		},
	}
}
