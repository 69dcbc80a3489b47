// Package operators implements the engine's two fixed operator tables:
// comparison operators, used by conditions, and assignment operators,
// used by effects. Each table is a two-level lookup keyed by
// (operator-id, value-type), which keeps dispatch a map hit instead of a
// giant conditional and leaves the tables open as an extension point.
package operators

import "github.com/anthropics/goap-engine/internal/domain"

// ComparisonFunc evaluates a comparison operator against two same-typed
// operands, returning the boolean result.
type ComparisonFunc func(a, b domain.Value) (bool, error)

// comparisonKey identifies one (operator, type) dispatch cell.
type comparisonKey struct {
	op domain.ComparisonOp
	t  domain.Type
}

// ComparisonTable is the fixed registry of comparison operators.
type ComparisonTable struct {
	fns map[comparisonKey]ComparisonFunc
}

// NewComparisonTable builds the standard comparison operator table:
// EQ/NE over all types, LT/LE/GT/GE over INT/FLOAT/STRING, AND/OR over
// BOOLEAN.
func NewComparisonTable() *ComparisonTable {
	t := &ComparisonTable{fns: make(map[comparisonKey]ComparisonFunc)}

	for _, typ := range []domain.Type{domain.TypeString, domain.TypeInt, domain.TypeFloat, domain.TypeBoolean} {
		t.register(domain.OpEQ, typ, func(a, b domain.Value) (bool, error) { return domain.Equal(a, b), nil })
		t.register(domain.OpNE, typ, func(a, b domain.Value) (bool, error) { return !domain.Equal(a, b), nil })
	}

	for _, typ := range []domain.Type{domain.TypeInt, domain.TypeFloat, domain.TypeString} {
		t.register(domain.OpLT, typ, orderedCmp(func(c int) bool { return c < 0 }))
		t.register(domain.OpLE, typ, orderedCmp(func(c int) bool { return c <= 0 }))
		t.register(domain.OpGT, typ, orderedCmp(func(c int) bool { return c > 0 }))
		t.register(domain.OpGE, typ, orderedCmp(func(c int) bool { return c >= 0 }))
	}

	t.register(domain.OpAND, domain.TypeBoolean, func(a, b domain.Value) (bool, error) { return a.Bool && b.Bool, nil })
	t.register(domain.OpOR, domain.TypeBoolean, func(a, b domain.Value) (bool, error) { return a.Bool || b.Bool, nil })

	return t
}

func orderedCmp(accept func(int) bool) ComparisonFunc {
	return func(a, b domain.Value) (bool, error) {
		c, ok := domain.Compare(a, b)
		if !ok {
			return false, domain.WrapEngineError(domain.ErrTypeMismatch.Code, domain.ErrTypeMismatch.Message, nil)
		}
		return accept(c), nil
	}
}

func (t *ComparisonTable) register(op domain.ComparisonOp, typ domain.Type, fn ComparisonFunc) {
	t.fns[comparisonKey{op, typ}] = fn
}

// Lookup returns the dispatch function for (op, typ), or
// ErrUnsupportedOperator if the pair is unregistered.
func (t *ComparisonTable) Lookup(op domain.ComparisonOp, typ domain.Type) (ComparisonFunc, error) {
	fn, ok := t.fns[comparisonKey{op, typ}]
	if !ok {
		return nil, domain.WrapEngineError(
			domain.ErrUnsupportedOperator.Code,
			domain.ErrUnsupportedOperator.Message,
			errUnsupported(op, typ),
		)
	}
	return fn, nil
}

func errUnsupported(op domain.ComparisonOp, typ domain.Type) error {
	return &unsupportedPairError{op: string(op), typ: string(typ)}
}

type unsupportedPairError struct {
	op, typ string
}

func (e *unsupportedPairError) Error() string {
	return "operator " + e.op + " is not defined for type " + e.typ
}
