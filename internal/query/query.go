// Package query implements the four thin query-surface operations:
// areGoalsSatisfied, singleStep, enabledTransitions, and
// generateActionPlan. These are the pure-function entry points a schema
// layer would call; they do no parsing or persistence of their own, only
// assembling a WorldState and delegating to internal/transition and
// internal/planner.
package query

import (
	"context"

	"github.com/anthropics/goap-engine/internal/domain"
	"github.com/anthropics/goap-engine/internal/operators"
	"github.com/anthropics/goap-engine/internal/planner"
	"github.com/anthropics/goap-engine/internal/transition"
	"github.com/anthropics/goap-engine/internal/worldstate"
)

// AreGoalsSatisfied builds a world-state from variables/values and tests
// it against goals.
func AreGoalsSatisfied(reg *operators.Registry, variables []domain.Variable, values []domain.VariableValue, goals []domain.Condition) (bool, error) {
	state, err := worldstate.Build(variables, values)
	if err != nil {
		return false, err
	}
	return transition.GoalsSatisfied(reg, goals, state)
}

// SingleStep builds a world-state, and if t is enabled against it, fires
// t and returns the resulting state's values in canonical order. If t is
// not enabled it returns (nil, nil). The result is the full state, not a
// diff of changed variables.
func SingleStep(reg *operators.Registry, variables []domain.Variable, values []domain.VariableValue, t domain.Transition) ([]domain.VariableValue, error) {
	state, err := worldstate.Build(variables, values)
	if err != nil {
		return nil, err
	}
	enabled, err := transition.IsEnabled(reg, t.Conditions, state)
	if err != nil {
		return nil, err
	}
	if !enabled {
		return nil, nil
	}
	next, err := transition.Fire(reg, t, state)
	if err != nil {
		return nil, err
	}
	return next.CanonicalValues(), nil
}

// EnabledTransitions builds a world-state and returns the ids of every
// transition enabled against it, preserving the input order.
func EnabledTransitions(reg *operators.Registry, variables []domain.Variable, values []domain.VariableValue, transitions []domain.Transition) ([]string, error) {
	state, err := worldstate.Build(variables, values)
	if err != nil {
		return nil, err
	}
	var ids []string
	for _, t := range transitions {
		enabled, err := transition.IsEnabled(reg, t.Conditions, state)
		if err != nil {
			return nil, err
		}
		if enabled {
			ids = append(ids, t.ID)
		}
	}
	return ids, nil
}

// GenerateActionPlan builds the initial world-state and runs the A*
// planner to produce an ActionPlan.
func GenerateActionPlan(
	ctx context.Context,
	reg *operators.Registry,
	variables []domain.Variable,
	transitions []domain.Transition,
	initialValues []domain.VariableValue,
	goal []domain.Condition,
	opts planner.Options,
) (domain.ActionPlan, error) {
	initial, err := worldstate.Build(variables, initialValues)
	if err != nil {
		return domain.ActionPlan{}, err
	}
	return planner.Plan(ctx, reg, variables, transitions, initial, goal, opts)
}
