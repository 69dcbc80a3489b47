// Package transition implements the engine's transition semantics:
// resolving operands against a world-state, evaluating conditions,
// testing enablement, firing a transition's effects in order, and testing
// a goal condition list.
package transition

import (
	"github.com/anthropics/goap-engine/internal/domain"
	"github.com/anthropics/goap-engine/internal/operators"
	"github.com/anthropics/goap-engine/internal/worldstate"
)

// ResolveOperand resolves a normalized Operand against a world-state: a
// literal resolves to itself, a reference resolves via WorldState.Get.
func ResolveOperand(op domain.Operand, state worldstate.WorldState) (domain.Value, error) {
	if op.IsRef {
		return state.Get(op.RefVarID)
	}
	return op.Literal, nil
}

// EvalCondition evaluates a single condition against a world-state:
// resolve lhs, resolve rhs, require matching types, dispatch the
// comparison operator.
func EvalCondition(reg *operators.Registry, c domain.Condition, state worldstate.WorldState) (bool, error) {
	lhs, err := state.Get(c.VariableID)
	if err != nil {
		return false, err
	}
	rhs, err := ResolveOperand(c.Argument, state)
	if err != nil {
		return false, err
	}
	if domain.TypeOf(lhs) != domain.TypeOf(rhs) {
		return false, domain.WrapEngineError(domain.ErrTypeMismatch.Code, domain.ErrTypeMismatch.Message, nil)
	}
	fn, err := reg.Comparisons.Lookup(c.Op, domain.TypeOf(lhs))
	if err != nil {
		return false, err
	}
	return fn(lhs, rhs)
}

// IsEnabled reports whether every condition in conds holds against state.
// An empty condition list is trivially enabled.
func IsEnabled(reg *operators.Registry, conds []domain.Condition, state worldstate.WorldState) (bool, error) {
	for _, c := range conds {
		ok, err := EvalCondition(reg, c, state)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

// GoalsSatisfied reports whether every goal condition holds against state.
// An empty goal list is trivially satisfied.
func GoalsSatisfied(reg *operators.Registry, goals []domain.Condition, state worldstate.WorldState) (bool, error) {
	return IsEnabled(reg, goals, state)
}

// Fire applies a transition's effects in list order against state,
// returning the successor world-state. Effects resolve their arguments
// against the working copy, so a later effect observes the earlier
// effects of the same transition. Fire does not itself check enablement;
// callers check IsEnabled first: the planner adds no edge for a disabled
// transition, and singleStep returns nil for it.
//
// An ArithmeticError return means an effect could not be evaluated
// (e.g. division by zero). The planner treats it as pruning that edge for
// this state and continues the search; singleStep returns it as an error.
func Fire(reg *operators.Registry, t domain.Transition, state worldstate.WorldState) (worldstate.WorldState, error) {
	working := state
	for _, e := range t.Effects {
		next, err := applyEffect(reg, e, working)
		if err != nil {
			return worldstate.WorldState{}, err
		}
		working = next
	}
	return working, nil
}

func applyEffect(reg *operators.Registry, e domain.Effect, working worldstate.WorldState) (worldstate.WorldState, error) {
	lhs, err := working.Get(e.VariableID)
	if err != nil {
		return worldstate.WorldState{}, err
	}
	rhs, err := ResolveOperand(e.Argument, working)
	if err != nil {
		return worldstate.WorldState{}, err
	}
	if domain.TypeOf(lhs) != domain.TypeOf(rhs) {
		return worldstate.WorldState{}, domain.WrapEngineError(domain.ErrTypeMismatch.Code, domain.ErrTypeMismatch.Message, nil)
	}
	fn, err := reg.Assignments.Lookup(e.Op, domain.TypeOf(lhs))
	if err != nil {
		return worldstate.WorldState{}, err
	}
	newVal, err := fn(lhs, rhs)
	if err != nil {
		return worldstate.WorldState{}, err
	}
	return working.With(e.VariableID, newVal)
}
