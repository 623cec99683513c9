package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/serdarsalim/timespent-sub000/cmd/api/commands"
)

// @title timespent API
// @version 1.0
// @description Personal productivity and goal tracking service
// @BasePath /api/v1
// @schemes http

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	rootCmd := &cobra.Command{
		Use:   "timespent",
		Short: "timespent API server",
		Long:  "timespent is a personal productivity service: schedules with recurring entries, ratings, journal notes, goals and exports.",
	}

	rootCmd.AddCommand(commands.NewServeCommand())
	rootCmd.AddCommand(commands.NewMigrateCommand())
	rootCmd.AddCommand(commands.NewRetentionCommand())

	if err := rootCmd.Execute(); err != nil {
		log.Printf("command execution failed: %v", err)
		os.Exit(1)
	}
}
