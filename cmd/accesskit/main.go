package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/accesskit/accesskit/internal/interfaces/cli/migrate"
	"github.com/accesskit/accesskit/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "accesskit",
		Short: "AccessKit - RBAC administration service",
		Long:  `AccessKit is an administrative service for managing permissions, roles, and their assignments, with built-in server and migration tools.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
