package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/joestump/promptsmith/internal/config"
)

func newPersonasCmd() *cobra.Command {
	var showPrompt bool
	cmd := &cobra.Command{
		Use:   "personas",
		Short: "List the personas in the catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			catalog, err := loadCatalog(cfg)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if showPrompt {
				for _, p := range catalog.All() {
					fmt.Fprintf(out, "== %s (%s) ==\n%s\n\n", p.Name, p.ID, p.Prompt)
				}
				return nil
			}
			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tTITLE")
			for _, p := range catalog.All() {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", p.ID, p.Name, p.Title)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().BoolVar(&showPrompt, "prompts", false, "print each persona's full prompt template")
	return cmd
}
