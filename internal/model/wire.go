// Package model handles input parsing and validation of the declarative
// planning model: the JSON wire format, converted at the boundary into
// the core engine's domain types. The core engine packages (domain,
// operators, worldstate, transition, planner) never import this package,
// only the reverse.
package model

import "github.com/anthropics/goap-engine/internal/domain"

// ValueWire is the four-nullable-field wire form of a scalar Value:
// exactly one of STRING/INT/FLOAT/BOOLEAN must be set.
type ValueWire struct {
	String  *string  `json:"STRING,omitempty"`
	Int     *int64   `json:"INT,omitempty"`
	Float   *float64 `json:"FLOAT,omitempty"`
	Boolean *bool    `json:"BOOLEAN,omitempty"`
}

func (w ValueWire) setCount() int {
	n := 0
	if w.String != nil {
		n++
	}
	if w.Int != nil {
		n++
	}
	if w.Float != nil {
		n++
	}
	if w.Boolean != nil {
		n++
	}
	return n
}

// toValue converts a ValueWire to a domain.Value, requiring exactly one
// field set; zero or multiple populated fields is MalformedValue.
func (w ValueWire) toValue() (domain.Value, error) {
	switch {
	case w.setCount() != 1:
		return domain.Value{}, domain.ErrMalformedValue
	case w.String != nil:
		return domain.String(*w.String), nil
	case w.Int != nil:
		return domain.Int64(*w.Int), nil
	case w.Float != nil:
		return domain.Float64(*w.Float), nil
	default:
		return domain.Bool(*w.Boolean), nil
	}
}

// VariableOrValueWire is the wire form of a VariableOrValue: either a
// literal (one ValueWire field) or a reference (VariableID), never both,
// never neither.
type VariableOrValueWire struct {
	VariableID *string `json:"variableId,omitempty"`
	ValueWire
}

func (w VariableOrValueWire) toOperand() (domain.Operand, error) {
	litCount := w.setCount()
	switch {
	case w.VariableID != nil && litCount > 0:
		return domain.Operand{}, domain.ErrMalformedArgument
	case w.VariableID == nil && litCount == 0:
		return domain.Operand{}, domain.ErrMalformedArgument
	case w.VariableID != nil:
		return domain.RefOperand(*w.VariableID), nil
	default:
		v, err := w.ValueWire.toValue()
		if err != nil {
			return domain.Operand{}, err
		}
		return domain.LiteralOperand(v), nil
	}
}

// VariableWire is the wire form of a Variable.
type VariableWire struct {
	ID          string  `json:"id"`
	TypeOf      string  `json:"typeOf"`
	Weight      float64 `json:"weight"`
	Description string  `json:"description,omitempty"`
}

func (w VariableWire) toVariable() (domain.Variable, error) {
	if w.ID == "" || w.TypeOf == "" {
		return domain.Variable{}, domain.ErrSchemaError
	}
	t := domain.Type(w.TypeOf)
	if !domain.ValidType(t) {
		return domain.Variable{}, domain.ErrInvalidTypeTag
	}
	return domain.Variable{ID: w.ID, TypeOf: t, Weight: w.Weight, Description: w.Description}, nil
}

// VariableValueWire is the wire form of a VariableValue: a variableId
// plus the same four-nullable-field literal shape as ValueWire.
type VariableValueWire struct {
	VariableID string `json:"variableId"`
	ValueWire
}

func (w VariableValueWire) toVariableValue() (domain.VariableValue, error) {
	if w.VariableID == "" {
		return domain.VariableValue{}, domain.ErrSchemaError
	}
	v, err := w.ValueWire.toValue()
	if err != nil {
		return domain.VariableValue{}, err
	}
	return domain.VariableValue{VariableID: w.VariableID, Value: v}, nil
}

// ConditionWire is the wire form of a Condition.
type ConditionWire struct {
	VariableID         string              `json:"variableId"`
	ComparisonOperator string              `json:"comparisonOperator"`
	Argument           VariableOrValueWire `json:"argument"`
}

func (w ConditionWire) toCondition() (domain.Condition, error) {
	if w.VariableID == "" || w.ComparisonOperator == "" {
		return domain.Condition{}, domain.ErrSchemaError
	}
	arg, err := w.Argument.toOperand()
	if err != nil {
		return domain.Condition{}, err
	}
	return domain.Condition{
		VariableID: w.VariableID,
		Op:         domain.ComparisonOp(w.ComparisonOperator),
		Argument:   arg,
	}, nil
}

// EffectWire is the wire form of an Effect.
type EffectWire struct {
	VariableID         string              `json:"variableId"`
	AssignmentOperator string              `json:"assignmentOperator"`
	Argument           VariableOrValueWire `json:"argument"`
}

func (w EffectWire) toEffect() (domain.Effect, error) {
	if w.VariableID == "" || w.AssignmentOperator == "" {
		return domain.Effect{}, domain.ErrSchemaError
	}
	arg, err := w.Argument.toOperand()
	if err != nil {
		return domain.Effect{}, err
	}
	return domain.Effect{
		VariableID: w.VariableID,
		Op:         domain.AssignmentOp(w.AssignmentOperator),
		Argument:   arg,
	}, nil
}

// TransitionWire is the wire form of a Transition.
type TransitionWire struct {
	ID          string          `json:"id"`
	Conditions  []ConditionWire `json:"conditions,omitempty"`
	Effects     []EffectWire    `json:"effects,omitempty"`
	Action      string          `json:"action,omitempty"`
	Cost        *float64        `json:"cost"`
	Description string          `json:"description,omitempty"`
}

func (w TransitionWire) toTransition() (domain.Transition, error) {
	if w.ID == "" || w.Cost == nil {
		return domain.Transition{}, domain.ErrSchemaError
	}
	conds := make([]domain.Condition, len(w.Conditions))
	for i, c := range w.Conditions {
		dc, err := c.toCondition()
		if err != nil {
			return domain.Transition{}, err
		}
		conds[i] = dc
	}
	effs := make([]domain.Effect, len(w.Effects))
	for i, e := range w.Effects {
		de, err := e.toEffect()
		if err != nil {
			return domain.Transition{}, err
		}
		effs[i] = de
	}
	return domain.Transition{
		ID:          w.ID,
		Conditions:  conds,
		Effects:     effs,
		Action:      w.Action,
		Cost:        *w.Cost,
		Description: w.Description,
	}, nil
}

// ModelWire is the wire form of the whole declarative model: the
// variable table and the transition set.
type ModelWire struct {
	Variables   []VariableWire   `json:"variables"`
	Transitions []TransitionWire `json:"transitions"`
}
