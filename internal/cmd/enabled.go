package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/anthropics/goap-engine/internal/operators"
	"github.com/anthropics/goap-engine/internal/query"
)

var enabledStatePath string

var enabledCmd = &cobra.Command{
	Use:   "enabled",
	Short: "List transitions enabled against a world-state (enabledTransitions)",
	RunE:  runEnabled,
}

func init() {
	enabledCmd.Flags().StringVar(&enabledStatePath, "state", "", "path to the world-state JSON file (required)")
	rootCmd.AddCommand(enabledCmd)
}

func runEnabled(cmd *cobra.Command, args []string) error {
	variables, transitions, err := loadModel()
	if err != nil {
		return err
	}
	state, err := loadStateFile(enabledStatePath)
	if err != nil {
		return err
	}

	reg := operators.NewRegistry()
	ids, err := query.EnabledTransitions(reg, variables, state, transitions)
	if err != nil {
		return err
	}
	if ids == nil {
		ids = []string{}
	}

	data, _ := json.MarshalIndent(ids, "", "  ")
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
