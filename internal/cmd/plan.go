package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/anthropics/goap-engine/internal/domain"
	"github.com/anthropics/goap-engine/internal/operators"
	"github.com/anthropics/goap-engine/internal/planner"
	"github.com/anthropics/goap-engine/internal/query"
	"github.com/anthropics/goap-engine/internal/store"
	"github.com/anthropics/goap-engine/internal/worldstate"
)

var (
	planInitialPath   string
	planGoalPath      string
	planMaxExpansions int
	planCacheDBPath   string
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Generate a minimum-cost action plan (generateActionPlan)",
	RunE:  runPlan,
}

func init() {
	planCmd.Flags().StringVar(&planInitialPath, "initial", "", "path to the initial world-state JSON file (required)")
	planCmd.Flags().StringVar(&planGoalPath, "goal", "", "path to the goal condition list JSON file (required)")
	planCmd.Flags().IntVar(&planMaxExpansions, "max-expansions", 0, "A* expansion bound (0 uses the planner default)")
	planCmd.Flags().StringVar(&planCacheDBPath, "cache", "", "optional plan cache SQLite path; empty disables caching")
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	variables, transitions, err := loadModel()
	if err != nil {
		return err
	}
	initial, err := loadStateFile(planInitialPath)
	if err != nil {
		return err
	}
	goal, err := loadGoalFile(planGoalPath)
	if err != nil {
		return err
	}

	reg := operators.NewRegistry()
	opts := planner.Options{MaxExpansions: planMaxExpansions}

	if planCacheDBPath == "" {
		plan, err := query.GenerateActionPlan(cmd.Context(), reg, variables, transitions, initial, goal, opts)
		if err != nil {
			return err
		}
		return printPlan(cmd, plan)
	}

	db, err := store.NewDB(planCacheDBPath)
	if err != nil {
		return err
	}
	defer db.Close()

	initialState, err := worldstate.Build(variables, initial)
	if err != nil {
		return err
	}
	key := store.CacheKey(variables, transitions, initialState, goal)

	var repo store.PlanCacheRepo
	if cached, hit, err := repo.Get(cmd.Context(), db, key); err != nil {
		return err
	} else if hit {
		cached.InitialState = initialState.CanonicalValues()
		return printPlan(cmd, *cached)
	}

	plan, err := query.GenerateActionPlan(cmd.Context(), reg, variables, transitions, initial, goal, opts)
	if err != nil {
		return err
	}
	if err := repo.Put(cmd.Context(), db, key, plan); err != nil {
		return err
	}
	return printPlan(cmd, plan)
}

func printPlan(cmd *cobra.Command, plan domain.ActionPlan) error {
	data, err := json.MarshalIndent(plan, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
