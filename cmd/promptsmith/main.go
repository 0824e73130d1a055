package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	_ "go.uber.org/automaxprocs"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "promptsmith",
		Short: "A persona-based prompt optimizer",
		Long:  "promptsmith rewrites a rough task into a prompt tailored to a target AI persona.",
	}

	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newMigrateCmd())
	rootCmd.AddCommand(newPersonasCmd())
	rootCmd.AddCommand(newComposeCmd())
	rootCmd.AddCommand(newGenerateCmd())
	rootCmd.AddCommand(newVersionCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
