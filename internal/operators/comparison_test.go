package operators

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/anthropics/goap-engine/internal/domain"
)

func TestComparisonTable_EqualityAcrossTypes(t *testing.T) {
	table := NewComparisonTable()

	cases := []struct {
		name string
		a, b domain.Value
	}{
		{"string", domain.String("a"), domain.String("a")},
		{"int", domain.Int64(3), domain.Int64(3)},
		{"float", domain.Float64(1.5), domain.Float64(1.5)},
		{"bool", domain.Bool(true), domain.Bool(true)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fn, err := table.Lookup(domain.OpEQ, domain.TypeOf(tc.a))
			require.NoError(t, err)
			ok, err := fn(tc.a, tc.b)
			require.NoError(t, err)
			require.True(t, ok)
		})
	}
}

func TestComparisonTable_Ordering(t *testing.T) {
	table := NewComparisonTable()

	fn, err := table.Lookup(domain.OpLT, domain.TypeInt)
	require.NoError(t, err)

	ok, err := fn(domain.Int64(3), domain.Int64(5))
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = fn(domain.Int64(5), domain.Int64(3))
	require.NoError(t, err)
	require.False(t, ok)
}

func TestComparisonTable_StringOrdering(t *testing.T) {
	table := NewComparisonTable()

	fn, err := table.Lookup(domain.OpLE, domain.TypeString)
	require.NoError(t, err)

	ok, err := fn(domain.String("abc"), domain.String("abd"))
	require.NoError(t, err)
	require.True(t, ok)
}

func TestComparisonTable_BooleanLogic(t *testing.T) {
	table := NewComparisonTable()

	and, err := table.Lookup(domain.OpAND, domain.TypeBoolean)
	require.NoError(t, err)
	ok, err := and(domain.Bool(true), domain.Bool(false))
	require.NoError(t, err)
	require.False(t, ok)

	or, err := table.Lookup(domain.OpOR, domain.TypeBoolean)
	require.NoError(t, err)
	ok, err = or(domain.Bool(true), domain.Bool(false))
	require.NoError(t, err)
	require.True(t, ok)
}

func TestComparisonTable_UnsupportedPair(t *testing.T) {
	table := NewComparisonTable()

	_, err := table.Lookup(domain.OpLT, domain.TypeBoolean)
	require.Error(t, err)

	engineErr, ok := err.(*domain.EngineError)
	require.True(t, ok)
	require.Equal(t, domain.ErrUnsupportedOperator.Code, engineErr.Code)
}
