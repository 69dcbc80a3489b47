package planner

import (
	"math"

	"github.com/anthropics/goap-engine/internal/domain"
	"github.com/anthropics/goap-engine/internal/operators"
)

// Validate performs the model-level static checks that run once, up
// front, before the first node is expanded: every variable-id referenced
// anywhere resolves in the variable table, every typeOf tag is one of the
// four recognized types, every condition/effect type-checks against the
// operator tables, and every transition cost is finite and non-negative.
func Validate(reg *operators.Registry, variables []domain.Variable, transitions []domain.Transition, goal []domain.Condition) error {
	types := make(map[string]domain.Type, len(variables))
	for _, v := range variables {
		if !domain.ValidType(v.TypeOf) {
			return domain.WrapEngineError(domain.ErrInvalidTypeTag.Code, domain.ErrInvalidTypeTag.Message, varIDErr(v.ID))
		}
		if v.Weight < 0 {
			return domain.WrapEngineError(domain.ErrConfigInvalid.Code, "variable weight must be non-negative", varIDErr(v.ID))
		}
		types[v.ID] = v.TypeOf
	}

	for _, t := range transitions {
		if t.Cost < 0 || math.IsInf(t.Cost, 0) || math.IsNaN(t.Cost) {
			return domain.WrapEngineError(domain.ErrInvalidCost.Code, domain.ErrInvalidCost.Message, varIDErr(t.ID))
		}
		for _, c := range t.Conditions {
			if err := checkCondition(reg, types, c); err != nil {
				return err
			}
		}
		for _, e := range t.Effects {
			if err := checkEffect(reg, types, e); err != nil {
				return err
			}
		}
	}

	for _, c := range goal {
		if err := checkCondition(reg, types, c); err != nil {
			return err
		}
	}

	return nil
}

func operandType(types map[string]domain.Type, op domain.Operand) (domain.Type, error) {
	if op.IsRef {
		t, ok := types[op.RefVarID]
		if !ok {
			return "", domain.WrapEngineError(domain.ErrUnknownVariable.Code, domain.ErrUnknownVariable.Message, varIDErr(op.RefVarID))
		}
		return t, nil
	}
	return domain.TypeOf(op.Literal), nil
}

func checkCondition(reg *operators.Registry, types map[string]domain.Type, c domain.Condition) error {
	lhsType, ok := types[c.VariableID]
	if !ok {
		return domain.WrapEngineError(domain.ErrUnknownVariable.Code, domain.ErrUnknownVariable.Message, varIDErr(c.VariableID))
	}
	rhsType, err := operandType(types, c.Argument)
	if err != nil {
		return err
	}
	if lhsType != rhsType {
		return domain.WrapEngineError(domain.ErrTypeMismatch.Code, domain.ErrTypeMismatch.Message, varIDErr(c.VariableID))
	}
	if _, err := reg.Comparisons.Lookup(c.Op, lhsType); err != nil {
		return err
	}
	return nil
}

func checkEffect(reg *operators.Registry, types map[string]domain.Type, e domain.Effect) error {
	lhsType, ok := types[e.VariableID]
	if !ok {
		return domain.WrapEngineError(domain.ErrUnknownVariable.Code, domain.ErrUnknownVariable.Message, varIDErr(e.VariableID))
	}
	rhsType, err := operandType(types, e.Argument)
	if err != nil {
		return err
	}
	if lhsType != rhsType {
		return domain.WrapEngineError(domain.ErrTypeMismatch.Code, domain.ErrTypeMismatch.Message, varIDErr(e.VariableID))
	}
	if _, err := reg.Assignments.Lookup(e.Op, lhsType); err != nil {
		return err
	}
	return nil
}

type variableIDErr string

func (e variableIDErr) Error() string { return "variable id: " + string(e) }

func varIDErr(id string) error { return variableIDErr(id) }
