package planner

import (
	"github.com/anthropics/goap-engine/internal/domain"
	"github.com/anthropics/goap-engine/internal/operators"
	"github.com/anthropics/goap-engine/internal/transition"
	"github.com/anthropics/goap-engine/internal/worldstate"
)

// heuristic computes h(state): the sum, over each unsatisfied goal
// condition, of the indicator distance (0 if satisfied, 1 otherwise)
// multiplied by that condition's variable's weight. The estimate is
// admissible when every transition costs at least the total weight of the
// goal conditions it can turn from unsatisfied to satisfied in one firing
// (for example, all weights 0, or weight 1 with unit costs and one goal
// condition per variable); for larger weights it can overestimate. The
// weighted indicator form is used unconditionally; no tighter,
// cost-model-specific bound is attempted.
type heuristic struct {
	reg     *operators.Registry
	goal    []domain.Condition
	weights map[string]float64
}

func newHeuristic(reg *operators.Registry, variables []domain.Variable, goal []domain.Condition) *heuristic {
	weights := make(map[string]float64, len(variables))
	for _, v := range variables {
		weights[v.ID] = v.Weight
	}
	return &heuristic{reg: reg, goal: goal, weights: weights}
}

func (h *heuristic) estimate(state worldstate.WorldState) (float64, error) {
	var total float64
	for _, c := range h.goal {
		ok, err := transition.EvalCondition(h.reg, c, state)
		if err != nil {
			return 0, err
		}
		if ok {
			continue
		}
		w := h.weights[c.VariableID]
		total += w
	}
	return total, nil
}
