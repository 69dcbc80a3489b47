// Package cmd implements goapctl, the CLI entry point over the four
// query-surface operations plus the HTTP server. The pure-function core
// has no operational entry point of its own; this package is it.
package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

var modelPath string

var rootCmd = &cobra.Command{
	Use:   "goapctl",
	Short: "Goal-oriented action planner CLI",
	Long: `goapctl loads a declarative planning model (variables and
transitions) from a JSON file and runs one of the engine's query-surface
operations against it: checking a goal, firing a single transition,
listing enabled transitions, or generating a full action plan.`,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext runs the root command with a cancellation context, so
// plan can stop a search on an interrupt. serve does not read this
// context; it installs its own signal handler for graceful shutdown.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&modelPath, "model", "", "path to the declarative model JSON file (required by goals, step, enabled, plan)")
}
