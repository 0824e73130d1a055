package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/joestump/promptsmith/internal/config"
	"github.com/joestump/promptsmith/internal/llm"
)

func newComposeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compose <persona-id> <task...>",
		Short: "Print the meta-prompt that would be sent to the model",
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

			out, err := llm.Compose(p, strings.Join(args[1:], " "))
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}
}
