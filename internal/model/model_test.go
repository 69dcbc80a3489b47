package model

import (
	"testing"

	"github.com/anthropics/goap-engine/internal/domain"
)

func TestParseModel_Valid(t *testing.T) {
	data := []byte(`{
		"variables": [{"id": "x", "typeOf": "INT", "weight": 1.0}],
		"transitions": [{
			"id": "t1",
			"conditions": [{"variableId": "x", "comparisonOperator": "LT", "argument": {"INT": 10}}],
			"effects": [{"variableId": "x", "assignmentOperator": "SET", "argument": {"INT": 10}}],
			"action": "A",
			"cost": 1.0
		}]
	}`)

	vars, trs, err := ParseModel(data)
	if err != nil {
		t.Fatalf("ParseModel: %v", err)
	}
	if len(vars) != 1 || vars[0].ID != "x" || vars[0].TypeOf != domain.TypeInt {
		t.Errorf("vars = %+v", vars)
	}
	if len(trs) != 1 || trs[0].ID != "t1" || trs[0].Cost != 1.0 {
		t.Errorf("trs = %+v", trs)
	}
	if trs[0].Conditions[0].Argument.IsRef || trs[0].Conditions[0].Argument.Literal.Int != 10 {
		t.Errorf("condition argument = %+v", trs[0].Conditions[0].Argument)
	}
}

func TestParseModel_MissingRequiredField(t *testing.T) {
	data := []byte(`{"variables": [{"id": "x"}], "transitions": []}`)
	_, _, err := ParseModel(data)
	if err == nil {
		t.Fatal("expected SchemaError for missing typeOf, got nil")
	}
	engErr, ok := err.(*domain.EngineError)
	if !ok || engErr.Code != domain.ErrSchemaError.Code {
		t.Fatalf("got %v, want SchemaError", err)
	}
}

func TestParseModel_ReferenceArgument(t *testing.T) {
	data := []byte(`{
		"variables": [{"id": "x", "typeOf": "INT"}, {"id": "y", "typeOf": "INT"}],
		"transitions": [{
			"id": "t1",
			"conditions": [{"variableId": "x", "comparisonOperator": "EQ", "argument": {"variableId": "y"}}],
			"cost": 0.5
		}]
	}`)
	_, trs, err := ParseModel(data)
	if err != nil {
		t.Fatalf("ParseModel: %v", err)
	}
	arg := trs[0].Conditions[0].Argument
	if !arg.IsRef || arg.RefVarID != "y" {
		t.Errorf("argument = %+v, want ref to y", arg)
	}
}

func TestParseInitialState_MalformedValue_NoFieldSet(t *testing.T) {
	data := []byte(`[{"variableId": "x"}]`)
	_, err := ParseInitialState(data)
	if err == nil {
		t.Fatal("expected MalformedValue error, got nil")
	}
	engErr, ok := err.(*domain.EngineError)
	if !ok || engErr.Code != domain.ErrMalformedValue.Code {
		t.Fatalf("got %v, want MalformedValue", err)
	}
}

func TestParseInitialState_MalformedValue_MultipleFieldsSet(t *testing.T) {
	data := []byte(`[{"variableId": "x", "INT": 5, "STRING": "a"}]`)
	_, err := ParseInitialState(data)
	if err == nil {
		t.Fatal("expected MalformedValue error, got nil")
	}
	engErr, ok := err.(*domain.EngineError)
	if !ok || engErr.Code != domain.ErrMalformedValue.Code {
		t.Fatalf("got %v, want MalformedValue", err)
	}
}

func TestParseInitialState_Valid(t *testing.T) {
	data := []byte(`[{"variableId": "x", "INT": 5}, {"variableId": "y", "BOOLEAN": true}]`)
	vvs, err := ParseInitialState(data)
	if err != nil {
		t.Fatalf("ParseInitialState: %v", err)
	}
	if len(vvs) != 2 {
		t.Fatalf("len = %d, want 2", len(vvs))
	}
	if vvs[0].Value.Int != 5 {
		t.Errorf("vvs[0] = %+v", vvs[0])
	}
	if vvs[1].Value.Bool != true {
		t.Errorf("vvs[1] = %+v", vvs[1])
	}
}

func TestParseGoal_MalformedArgument_BothSet(t *testing.T) {
	data := []byte(`[{"variableId": "x", "comparisonOperator": "EQ", "argument": {"variableId": "y", "INT": 5}}]`)
	_, err := ParseGoal(data)
	if err == nil {
		t.Fatal("expected MalformedArgument error, got nil")
	}
}

func TestParseGoal_MalformedArgument_NeitherSet(t *testing.T) {
	data := []byte(`[{"variableId": "x", "comparisonOperator": "EQ", "argument": {}}]`)
	_, err := ParseGoal(data)
	if err == nil {
		t.Fatal("expected MalformedArgument error, got nil")
	}
}

func TestParseGoal_Valid(t *testing.T) {
	data := []byte(`[{"variableId": "x", "comparisonOperator": "EQ", "argument": {"INT": 5}}]`)
	goals, err := ParseGoal(data)
	if err != nil {
		t.Fatalf("ParseGoal: %v", err)
	}
	if len(goals) != 1 || goals[0].VariableID != "x" || goals[0].Op != domain.OpEQ {
		t.Errorf("goals = %+v", goals)
	}
}
