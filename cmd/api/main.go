package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/taskloop/core/cmd/api/commands"
)

// @title TaskLoop API
// @version 1.0
// @description Multi-user task tracking API with soft-delete, due-date filtering and title search

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	rootCmd := &cobra.Command{
		Use:   "taskloop",
		Short: "TaskLoop API Server",
		Long:  `TaskLoop is a multi-user task tracking API: register, authenticate, and manage personal tasks with filtering and search.`,
	}

	rootCmd.AddCommand(commands.NewServeCommand())
	rootCmd.AddCommand(commands.NewMigrateCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	if err := rootCmd.Execute(); err != nil {
		log.Printf("Command execution failed: %v", err)
		os.Exit(1)
	}
}
