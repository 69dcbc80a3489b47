package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/anthropics/goap-engine/internal/operators"
	"github.com/anthropics/goap-engine/internal/query"
)

var (
	stepStatePath  string
	stepTransition string
)

var stepCmd = &cobra.Command{
	Use:   "step",
	Short: "Fire a single transition against a world-state (singleStep)",
	RunE:  runStep,
}

func init() {
	stepCmd.Flags().StringVar(&stepStatePath, "state", "", "path to the world-state JSON file (required)")
	stepCmd.Flags().StringVar(&stepTransition, "transition", "", "id of the transition to fire (required)")
	rootCmd.AddCommand(stepCmd)
}

func runStep(cmd *cobra.Command, args []string) error {
	variables, transitions, err := loadModel()
	if err != nil {
		return err
	}
	state, err := loadStateFile(stepStatePath)
	if err != nil {
		return err
	}
	t, err := findTransition(transitions, stepTransition)
	if err != nil {
		return err
	}

	reg := operators.NewRegistry()
	out, err := query.SingleStep(reg, variables, state, t)
	if err != nil {
		return err
	}
	if out == nil {
		fmt.Fprintln(cmd.OutOrStdout(), "null")
		return nil
	}

	data, _ := json.MarshalIndent(out, "", "  ")
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
