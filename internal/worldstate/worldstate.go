// Package worldstate implements the engine's world-state representation:
// a total, typed assignment from variable-id to Value, with a canonical
// sorted form and a stable content-hash identity.
//
// Successor states are built by copy-on-write over a slice indexed by a
// slot table precomputed once per model, which keeps derivation cheap for
// models with a modest variable count.
package worldstate

import (
	"sort"
	"strconv"

	"github.com/cespare/xxhash/v2"

	"github.com/anthropics/goap-engine/internal/domain"
)

// SlotIndex maps a variable id to its position in the canonical
// (sorted-by-id) slot array, shared read-only by every WorldState derived
// from one model.
type SlotIndex struct {
	order []string
	pos   map[string]int
	types []domain.Type
}

// NewSlotIndex builds the canonical slot layout for a variable table.
func NewSlotIndex(variables []domain.Variable) *SlotIndex {
	order := make([]string, len(variables))
	types := make(map[string]domain.Type, len(variables))
	for i, v := range variables {
		order[i] = v.ID
		types[v.ID] = v.TypeOf
	}
	sort.Strings(order)

	pos := make(map[string]int, len(order))
	typeSlice := make([]domain.Type, len(order))
	for i, id := range order {
		pos[id] = i
		typeSlice[i] = types[id]
	}

	return &SlotIndex{order: order, pos: pos, types: typeSlice}
}

// Len returns the number of variables in the model.
func (s *SlotIndex) Len() int { return len(s.order) }

// VariableIDs returns the canonical (sorted) variable id order.
func (s *SlotIndex) VariableIDs() []string { return s.order }

// TypeOf returns the declared type of a variable, or false if unknown.
func (s *SlotIndex) TypeOf(id string) (domain.Type, bool) {
	i, ok := s.pos[id]
	if !ok {
		return "", false
	}
	return s.types[i], true
}

func (s *SlotIndex) slot(id string) (int, bool) {
	i, ok := s.pos[id]
	return i, ok
}

// WorldState is a total, immutable assignment of values to every variable
// in the model it was built from.
type WorldState struct {
	slots  *SlotIndex
	values []domain.Value
}

// Build constructs a WorldState from the given assignments, defaulting any
// variable absent from values to its type's zero value. Duplicate
// assignments for the same variable, and assignments whose Value.Tag
// disagrees with the variable's declared type, are rejected.
func Build(variables []domain.Variable, values []domain.VariableValue) (WorldState, error) {
	slots := NewSlotIndex(variables)

	assigned := make([]bool, slots.Len())
	out := make([]domain.Value, slots.Len())
	for i := range slots.order {
		out[i] = domain.Zero(slots.types[i])
	}

	for _, vv := range values {
		i, ok := slots.slot(vv.VariableID)
		if !ok {
			return WorldState{}, domain.WrapEngineError(
				domain.ErrUnknownVariable.Code, domain.ErrUnknownVariable.Message, idError(vv.VariableID))
		}
		if assigned[i] {
			return WorldState{}, domain.WrapEngineError(
				domain.ErrDuplicateAssignment.Code, domain.ErrDuplicateAssignment.Message, idError(vv.VariableID))
		}
		if vv.Value.Tag != slots.types[i] {
			return WorldState{}, domain.WrapEngineError(
				domain.ErrTypeMismatch.Code, domain.ErrTypeMismatch.Message, idError(vv.VariableID))
		}
		out[i] = vv.Value
		assigned[i] = true
	}

	return WorldState{slots: slots, values: out}, nil
}

// Get returns the value bound to variableId. Absent keys cannot occur for
// any WorldState built via Build against the same model, since Build is
// total; they are surfaced as ErrUnknownVariable rather than a panic, so
// malformed references in a hand-built Condition/Effect fail as a query
// error instead of crashing the process.
func (s WorldState) Get(variableID string) (domain.Value, error) {
	i, ok := s.slots.slot(variableID)
	if !ok {
		return domain.Value{}, domain.WrapEngineError(
			domain.ErrUnknownVariable.Code, domain.ErrUnknownVariable.Message, idError(variableID))
	}
	return s.values[i], nil
}

// With returns a new WorldState with variableId rebound to newValue. The
// receiver is unchanged; the returned state shares the SlotIndex and
// copies only the values slice (one cell rewritten).
func (s WorldState) With(variableID string, newValue domain.Value) (WorldState, error) {
	i, ok := s.slots.slot(variableID)
	if !ok {
		return WorldState{}, domain.WrapEngineError(
			domain.ErrUnknownVariable.Code, domain.ErrUnknownVariable.Message, idError(variableID))
	}
	next := make([]domain.Value, len(s.values))
	copy(next, s.values)
	next[i] = newValue
	return WorldState{slots: s.slots, values: next}, nil
}

// CanonicalValues returns every variable's value in canonical
// (sorted-by-id) order.
func (s WorldState) CanonicalValues() []domain.VariableValue {
	out := make([]domain.VariableValue, len(s.values))
	for i, id := range s.slots.order {
		out[i] = domain.VariableValue{VariableID: id, Value: s.values[i]}
	}
	return out
}

// Identity returns a content hash of the canonical form. Two world-states
// with equal Identity are behaviorally indistinguishable under every
// transition: the hash input is exactly the ordered
// sequence of (tag, value-bytes) for each slot in canonical order;
// position already encodes variable-id, since the slot layout is shared
// and fixed per model.
func (s WorldState) Identity() uint64 {
	h := xxhash.New()
	for _, v := range s.values {
		writeValue(h, v)
	}
	return h.Sum64()
}

// Equal reports whether two world-states agree field-wise in canonical
// form (equivalently, have equal Identity).
func Equal(a, b WorldState) bool {
	if len(a.values) != len(b.values) {
		return false
	}
	for i := range a.values {
		if !domain.Equal(a.values[i], b.values[i]) {
			return false
		}
	}
	return true
}

func writeValue(h *xxhash.Digest, v domain.Value) {
	h.WriteString(string(v.Tag))
	h.Write([]byte{0})
	switch v.Tag {
	case domain.TypeString:
		h.WriteString(v.Str)
	case domain.TypeInt:
		h.WriteString(strconv.FormatInt(v.Int, 10))
	case domain.TypeFloat:
		h.WriteString(strconv.FormatFloat(v.Float, 'g', -1, 64))
	case domain.TypeBoolean:
		if v.Bool {
			h.Write([]byte{1})
		} else {
			h.Write([]byte{0})
		}
	}
	h.Write([]byte{0})
}

type variableIDError string

func (e variableIDError) Error() string { return "variable id: " + string(e) }

func idError(id string) error { return variableIDError(id) }
