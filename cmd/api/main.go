package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/todolist/core/cmd/api/commands"
)

// @title Todo API
// @version 1.0
// @description Minimal task-tracking API backing the todo client

// @host localhost:8080
// @BasePath /api

func main() {
	rootCmd := &cobra.Command{
		Use:   "todo-api",
		Short: "Todo API Server",
		Long:  `Todo API is a minimal task-tracking service: create, list, edit, complete and delete short text items over an HTTP/JSON API backed by a relational store.`,
	}

	rootCmd.AddCommand(commands.NewServeCommand())
	rootCmd.AddCommand(commands.NewMigrateCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	if err := rootCmd.Execute(); err != nil {
		log.Printf("Command execution failed: %v", err)
		os.Exit(1)
	}
}
