package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/tasklight/core/cmd/api/commands"
)

// @title Tasklight API
// @version 1.0
// @description Personal task management API

// @host localhost:3001
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	rootCmd := &cobra.Command{
		Use:   "tasklight",
		Short: "Tasklight API Server",
		Long:  `Tasklight is a personal task management backend: users organize tasks into colored lists, track due and planned dates and review their statistics.`,
	}

	rootCmd.AddCommand(commands.NewServeCommand())
	rootCmd.AddCommand(commands.NewMigrateCommand())
	rootCmd.AddCommand(commands.NewUserCommand())

	if err := rootCmd.Execute(); err != nil {
		log.Printf("Command execution failed: %v", err)
		os.Exit(1)
	}
}
