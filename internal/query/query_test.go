package query

import (
	"context"
	"testing"

	"github.com/anthropics/goap-engine/internal/domain"
	"github.com/anthropics/goap-engine/internal/operators"
	"github.com/anthropics/goap-engine/internal/planner"
)

func TestAreGoalsSatisfied(t *testing.T) {
	reg := operators.NewRegistry()
	vars := []domain.Variable{{ID: "x", TypeOf: domain.TypeInt}}
	values := []domain.VariableValue{{VariableID: "x", Value: domain.Int64(5)}}
	goals := []domain.Condition{{VariableID: "x", Op: domain.OpEQ, Argument: domain.LiteralOperand(domain.Int64(5))}}

	ok, err := AreGoalsSatisfied(reg, vars, values, goals)
	if err != nil || !ok {
		t.Fatalf("ok=%v err=%v, want true, nil", ok, err)
	}
}

func TestSingleStep_EnabledAndDisabled(t *testing.T) {
	reg := operators.NewRegistry()
	vars := []domain.Variable{{ID: "x", TypeOf: domain.TypeInt}}
	values := []domain.VariableValue{{VariableID: "x", Value: domain.Int64(5)}}
	tr := domain.Transition{
		ID:         "t1",
		Conditions: []domain.Condition{{VariableID: "x", Op: domain.OpLT, Argument: domain.LiteralOperand(domain.Int64(10))}},
		Effects:    []domain.Effect{{VariableID: "x", Op: domain.OpSET, Argument: domain.LiteralOperand(domain.Int64(10))}},
	}

	out, err := SingleStep(reg, vars, values, tr)
	if err != nil {
		t.Fatalf("SingleStep: %v", err)
	}
	if len(out) != 1 || out[0].Value.Int != 10 {
		t.Errorf("out = %+v, want x=10", out)
	}

	trDisabled := domain.Transition{
		ID:         "t2",
		Conditions: []domain.Condition{{VariableID: "x", Op: domain.OpGT, Argument: domain.LiteralOperand(domain.Int64(100))}},
	}
	out2, err := SingleStep(reg, vars, values, trDisabled)
	if err != nil {
		t.Fatalf("SingleStep disabled: %v", err)
	}
	if out2 != nil {
		t.Errorf("out2 = %+v, want nil", out2)
	}
}

func TestEnabledTransitions_PreservesOrder(t *testing.T) {
	reg := operators.NewRegistry()
	vars := []domain.Variable{{ID: "x", TypeOf: domain.TypeInt}}
	values := []domain.VariableValue{{VariableID: "x", Value: domain.Int64(5)}}
	ts := []domain.Transition{
		{ID: "t_disabled", Conditions: []domain.Condition{{VariableID: "x", Op: domain.OpGT, Argument: domain.LiteralOperand(domain.Int64(100))}}},
		{ID: "t_a"},
		{ID: "t_b"},
	}

	ids, err := EnabledTransitions(reg, vars, values, ts)
	if err != nil {
		t.Fatalf("EnabledTransitions: %v", err)
	}
	if len(ids) != 2 || ids[0] != "t_a" || ids[1] != "t_b" {
		t.Errorf("ids = %v, want [t_a t_b]", ids)
	}
}

func TestGenerateActionPlan(t *testing.T) {
	reg := operators.NewRegistry()
	vars := []domain.Variable{{ID: "x", TypeOf: domain.TypeInt, Weight: 1.0}}
	values := []domain.VariableValue{{VariableID: "x", Value: domain.Int64(5)}}
	goal := []domain.Condition{{VariableID: "x", Op: domain.OpEQ, Argument: domain.LiteralOperand(domain.Int64(10))}}
	ts := []domain.Transition{{
		ID:         "t1",
		Conditions: []domain.Condition{{VariableID: "x", Op: domain.OpLT, Argument: domain.LiteralOperand(domain.Int64(10))}},
		Effects:    []domain.Effect{{VariableID: "x", Op: domain.OpSET, Argument: domain.LiteralOperand(domain.Int64(10))}},
		Action:     "A",
		Cost:       1.0,
	}}

	plan, err := GenerateActionPlan(context.Background(), reg, vars, ts, values, goal, planner.Options{})
	if err != nil {
		t.Fatalf("GenerateActionPlan: %v", err)
	}
	if plan.Status != domain.StatusFound {
		t.Fatalf("Status = %v, want FOUND", plan.Status)
	}
}
