package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/econpulse/bookmarkd/internal/build"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "bookmarkd",
		Short:   "Bookmark list service for the EconPulse dashboard",
		Long:    "bookmarkd — per-user bookmark lists and article memberships for the EconPulse economic-news dashboard.",
		Version: build.Version,
	}

	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newMigrateCmd())
	rootCmd.AddCommand(newQuickCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
