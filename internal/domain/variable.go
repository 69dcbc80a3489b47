package domain

// Variable declares one dimension of the world-state.
//
// Weight is reserved for distance weighting; the planner's heuristic
// multiplies a condition's indicator distance by its variable's Weight.
type Variable struct {
	ID          string
	TypeOf      Type
	Weight      float64
	Description string
}

// VariableValue pairs a variable id with a concrete, typed value.
// Its Value.Tag must equal the referenced variable's TypeOf.
type VariableValue struct {
	VariableID string
	Value      Value
}

// Operand is the normalized, query-time form of a VariableOrValue: either
// a Literal scalar or a Ref to another variable, normalized once at the
// start of a query rather than re-parsed on every condition/effect
// evaluation.
type Operand struct {
	IsRef    bool
	Literal  Value
	RefVarID string
}

// LiteralOperand constructs a literal Operand.
func LiteralOperand(v Value) Operand { return Operand{Literal: v} }

// RefOperand constructs a variable-reference Operand.
func RefOperand(variableID string) Operand { return Operand{IsRef: true, RefVarID: variableID} }

// Resolution of an Operand against a world-state requires the WorldState
// type, which lives in internal/worldstate (kept out of this package so
// domain has no dependency on the state/hashing machinery); see
// internal/transition.ResolveOperand.
