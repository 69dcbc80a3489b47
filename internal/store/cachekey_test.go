package store

import (
	"testing"

	"github.com/anthropics/goap-engine/internal/domain"
	"github.com/anthropics/goap-engine/internal/worldstate"
)

func cacheKeyFixture(t *testing.T) ([]domain.Variable, []domain.Transition, worldstate.WorldState, []domain.Condition) {
	t.Helper()
	vars := []domain.Variable{{ID: "x", TypeOf: domain.TypeInt, Weight: 1.0}}
	trs := []domain.Transition{{
		ID:         "t1",
		Conditions: []domain.Condition{{VariableID: "x", Op: domain.OpLT, Argument: domain.LiteralOperand(domain.Int64(10))}},
		Effects:    []domain.Effect{{VariableID: "x", Op: domain.OpSET, Argument: domain.LiteralOperand(domain.Int64(10))}},
		Action:     "A",
		Cost:       1.0,
	}}
	initial, err := worldstate.Build(vars, []domain.VariableValue{{VariableID: "x", Value: domain.Int64(5)}})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	goal := []domain.Condition{{VariableID: "x", Op: domain.OpEQ, Argument: domain.LiteralOperand(domain.Int64(10))}}
	return vars, trs, initial, goal
}

func TestCacheKey_StableForIdenticalQuery(t *testing.T) {
	vars, trs, initial, goal := cacheKeyFixture(t)

	a := CacheKey(vars, trs, initial, goal)
	b := CacheKey(vars, trs, initial, goal)
	if a != b {
		t.Errorf("keys differ for identical query: %s vs %s", a, b)
	}
}

func TestCacheKey_SensitiveToTransitionSet(t *testing.T) {
	vars, trs, initial, goal := cacheKeyFixture(t)
	base := CacheKey(vars, trs, initial, goal)

	// Same variable table, same initial state, same goal, cheaper cost:
	// a different model must never share the cached plan.
	cheaper := make([]domain.Transition, len(trs))
	copy(cheaper, trs)
	cheaper[0].Cost = 0.5
	if got := CacheKey(vars, cheaper, initial, goal); got == base {
		t.Error("key unchanged after transition cost change")
	}

	extra := append(append([]domain.Transition{}, trs...), domain.Transition{ID: "t2", Cost: 2.0})
	if got := CacheKey(vars, extra, initial, goal); got == base {
		t.Error("key unchanged after adding a transition")
	}
}

func TestCacheKey_SensitiveToVariableWeights(t *testing.T) {
	vars, trs, initial, goal := cacheKeyFixture(t)
	base := CacheKey(vars, trs, initial, goal)

	reweighted := []domain.Variable{{ID: "x", TypeOf: domain.TypeInt, Weight: 2.0}}
	if got := CacheKey(reweighted, trs, initial, goal); got == base {
		t.Error("key unchanged after variable weight change")
	}
}

func TestCacheKey_SensitiveToInitialStateAndGoal(t *testing.T) {
	vars, trs, initial, goal := cacheKeyFixture(t)
	base := CacheKey(vars, trs, initial, goal)

	other, err := worldstate.Build(vars, []domain.VariableValue{{VariableID: "x", Value: domain.Int64(6)}})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if got := CacheKey(vars, trs, other, goal); got == base {
		t.Error("key unchanged after initial state change")
	}

	otherGoal := []domain.Condition{{VariableID: "x", Op: domain.OpEQ, Argument: domain.LiteralOperand(domain.Int64(11))}}
	if got := CacheKey(vars, trs, initial, otherGoal); got == base {
		t.Error("key unchanged after goal change")
	}
}

func TestCacheKey_GoalOrderInsensitive(t *testing.T) {
	vars := []domain.Variable{
		{ID: "x", TypeOf: domain.TypeInt, Weight: 1.0},
		{ID: "y", TypeOf: domain.TypeInt, Weight: 1.0},
	}
	initial, err := worldstate.Build(vars, nil)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	gx := domain.Condition{VariableID: "x", Op: domain.OpEQ, Argument: domain.LiteralOperand(domain.Int64(1))}
	gy := domain.Condition{VariableID: "y", Op: domain.OpEQ, Argument: domain.LiteralOperand(domain.Int64(2))}

	a := CacheKey(vars, nil, initial, []domain.Condition{gx, gy})
	b := CacheKey(vars, nil, initial, []domain.Condition{gy, gx})
	if a != b {
		t.Errorf("goal order changed the key: %s vs %s", a, b)
	}
}
