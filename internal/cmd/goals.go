package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/anthropics/goap-engine/internal/operators"
	"github.com/anthropics/goap-engine/internal/query"
)

var (
	goalsStatePath string
	goalsGoalPath  string
)

var goalsCmd = &cobra.Command{
	Use:   "goals",
	Short: "Check whether a world-state satisfies a goal (areGoalsSatisfied)",
	RunE:  runGoals,
}

func init() {
	goalsCmd.Flags().StringVar(&goalsStatePath, "state", "", "path to the world-state JSON file (required)")
	goalsCmd.Flags().StringVar(&goalsGoalPath, "goal", "", "path to the goal condition list JSON file (required)")
	rootCmd.AddCommand(goalsCmd)
}

func runGoals(cmd *cobra.Command, args []string) error {
	variables, _, err := loadModel()
	if err != nil {
		return err
	}
	state, err := loadStateFile(goalsStatePath)
	if err != nil {
		return err
	}
	goal, err := loadGoalFile(goalsGoalPath)
	if err != nil {
		return err
	}

	reg := operators.NewRegistry()
	ok, err := query.AreGoalsSatisfied(reg, variables, state, goal)
	if err != nil {
		return err
	}

	out, _ := json.MarshalIndent(map[string]bool{"satisfied": ok}, "", "  ")
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}
