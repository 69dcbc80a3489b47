package operators

import "github.com/anthropics/goap-engine/internal/domain"

// AssignmentFunc computes a new value from the prior value (old) and the
// resolved effect argument (arg). A non-nil error (ArithmeticError)
// aborts just the transition firing.
type AssignmentFunc func(old, arg domain.Value) (domain.Value, error)

type assignmentKey struct {
	op domain.AssignmentOp
	t  domain.Type
}

// AssignmentTable is the fixed registry of assignment operators.
type AssignmentTable struct {
	fns map[assignmentKey]AssignmentFunc
}

// NewAssignmentTable builds the standard assignment operator table:
// SET over all types, ADD/SUB/MUL/DIV over INT/FLOAT, AND/OR/XOR over
// BOOLEAN, CONCAT over STRING.
func NewAssignmentTable() *AssignmentTable {
	t := &AssignmentTable{fns: make(map[assignmentKey]AssignmentFunc)}

	for _, typ := range []domain.Type{domain.TypeString, domain.TypeInt, domain.TypeFloat, domain.TypeBoolean} {
		t.register(domain.OpSET, typ, func(old, arg domain.Value) (domain.Value, error) { return arg, nil })
	}

	t.register(domain.OpADD, domain.TypeInt, intArith(func(a, b int64) int64 { return a + b }))
	t.register(domain.OpSUB, domain.TypeInt, intArith(func(a, b int64) int64 { return a - b }))
	t.register(domain.OpMUL, domain.TypeInt, intArith(func(a, b int64) int64 { return a * b }))
	t.register(domain.OpDIV, domain.TypeInt, intDiv)

	t.register(domain.OpADD, domain.TypeFloat, floatArith(func(a, b float64) float64 { return a + b }))
	t.register(domain.OpSUB, domain.TypeFloat, floatArith(func(a, b float64) float64 { return a - b }))
	t.register(domain.OpMUL, domain.TypeFloat, floatArith(func(a, b float64) float64 { return a * b }))
	t.register(domain.OpDIV, domain.TypeFloat, floatDiv)

	t.register(domain.OpAndAsn, domain.TypeBoolean, func(old, arg domain.Value) (domain.Value, error) {
		return domain.Bool(old.Bool && arg.Bool), nil
	})
	t.register(domain.OpOrAsn, domain.TypeBoolean, func(old, arg domain.Value) (domain.Value, error) {
		return domain.Bool(old.Bool || arg.Bool), nil
	})
	t.register(domain.OpXOR, domain.TypeBoolean, func(old, arg domain.Value) (domain.Value, error) {
		return domain.Bool(old.Bool != arg.Bool), nil
	})

	t.register(domain.OpCONCAT, domain.TypeString, func(old, arg domain.Value) (domain.Value, error) {
		return domain.String(old.Str + arg.Str), nil
	})

	return t
}

func intArith(f func(a, b int64) int64) AssignmentFunc {
	return func(old, arg domain.Value) (domain.Value, error) {
		return domain.Int64(f(old.Int, arg.Int)), nil
	}
}

func intDiv(old, arg domain.Value) (domain.Value, error) {
	if arg.Int == 0 {
		return domain.Value{}, domain.WrapEngineError(domain.ErrArithmeticError.Code, domain.ErrArithmeticError.Message, errDivByZero)
	}
	return domain.Int64(old.Int / arg.Int), nil
}

func floatArith(f func(a, b float64) float64) AssignmentFunc {
	return func(old, arg domain.Value) (domain.Value, error) {
		return domain.Float64(f(old.Float, arg.Float)), nil
	}
}

func floatDiv(old, arg domain.Value) (domain.Value, error) {
	if arg.Float == 0 {
		return domain.Value{}, domain.WrapEngineError(domain.ErrArithmeticError.Code, domain.ErrArithmeticError.Message, errDivByZero)
	}
	return domain.Float64(old.Float / arg.Float), nil
}

var errDivByZero = divByZeroError{}

type divByZeroError struct{}

func (divByZeroError) Error() string { return "division by zero" }

func (t *AssignmentTable) register(op domain.AssignmentOp, typ domain.Type, fn AssignmentFunc) {
	t.fns[assignmentKey{op, typ}] = fn
}

// Lookup returns the dispatch function for (op, typ), or
// ErrUnsupportedOperator if the pair is unregistered.
func (t *AssignmentTable) Lookup(op domain.AssignmentOp, typ domain.Type) (AssignmentFunc, error) {
	fn, ok := t.fns[assignmentKey{op, typ}]
	if !ok {
		return nil, domain.WrapEngineError(
			domain.ErrUnsupportedOperator.Code,
			domain.ErrUnsupportedOperator.Message,
			&unsupportedAssignmentError{op: string(op), typ: string(typ)},
		)
	}
	return fn, nil
}

type unsupportedAssignmentError struct {
	op, typ string
}

func (e *unsupportedAssignmentError) Error() string {
	return "assignment operator " + e.op + " is not defined for type " + e.typ
}
