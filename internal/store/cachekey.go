package store

import (
	"sort"
	"strconv"

	"github.com/cespare/xxhash/v2"

	"github.com/anthropics/goap-engine/internal/domain"
	"github.com/anthropics/goap-engine/internal/worldstate"
)

// CacheKey derives a stable plan-cache key from the full planning query:
// the model (variable table and transition set), the initial world-state,
// and the goal condition list. Two queries produce the same key only when
// all four agree, so a cache hit means the planner would have retraced
// identical ground. The variable table is hashed sorted by id (its input
// order never reaches the planner); the transition list is hashed in
// input order, since that order feeds plan tie-breaking.
func CacheKey(variables []domain.Variable, transitions []domain.Transition, initial worldstate.WorldState, goal []domain.Condition) string {
	h := xxhash.New()

	var idBuf [8]byte
	putUint64(idBuf[:], initial.Identity())
	h.Write(idBuf[:])

	sortedVars := make([]domain.Variable, len(variables))
	copy(sortedVars, variables)
	sort.Slice(sortedVars, func(i, j int) bool { return sortedVars[i].ID < sortedVars[j].ID })
	for _, v := range sortedVars {
		h.WriteString(v.ID)
		h.Write([]byte{0})
		h.WriteString(string(v.TypeOf))
		h.Write([]byte{0})
		h.WriteString(strconv.FormatFloat(v.Weight, 'g', -1, 64))
		h.Write([]byte{0})
	}

	for _, t := range transitions {
		h.WriteString(t.ID)
		h.Write([]byte{0})
		h.WriteString(t.Action)
		h.Write([]byte{0})
		h.WriteString(strconv.FormatFloat(t.Cost, 'g', -1, 64))
		h.Write([]byte{0})
		for _, c := range t.Conditions {
			writeCondition(h, c)
		}
		h.Write([]byte{0})
		for _, e := range t.Effects {
			h.WriteString(e.VariableID)
			h.Write([]byte{0})
			h.WriteString(string(e.Op))
			h.Write([]byte{0})
			writeOperand(h, e.Argument)
		}
		h.Write([]byte{0})
	}

	sortedGoal := make([]domain.Condition, len(goal))
	copy(sortedGoal, goal)
	sort.Slice(sortedGoal, func(i, j int) bool {
		if sortedGoal[i].VariableID != sortedGoal[j].VariableID {
			return sortedGoal[i].VariableID < sortedGoal[j].VariableID
		}
		return sortedGoal[i].Op < sortedGoal[j].Op
	})
	for _, c := range sortedGoal {
		writeCondition(h, c)
	}

	return itoaHex(h.Sum64())
}

func writeCondition(h *xxhash.Digest, c domain.Condition) {
	h.WriteString(c.VariableID)
	h.Write([]byte{0})
	h.WriteString(string(c.Op))
	h.Write([]byte{0})
	writeOperand(h, c.Argument)
}

func writeOperand(h *xxhash.Digest, op domain.Operand) {
	if op.IsRef {
		h.Write([]byte{1})
		h.WriteString(op.RefVarID)
		h.Write([]byte{0})
		return
	}
	h.Write([]byte{0})
	v := op.Literal
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

func putUint64(b []byte, v uint64) {
	for i := 0; i < 8; i++ {
		b[i] = byte(v >> (8 * i))
	}
}

const hexDigits = "0123456789abcdef"

func itoaHex(v uint64) string {
	buf := make([]byte, 16)
	for i := 15; i >= 0; i-- {
		buf[i] = hexDigits[v&0xf]
		v >>= 4
	}
	return string(buf)
}
