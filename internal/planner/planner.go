// Package planner implements the engine's A* search over world-states,
// the heart of generateActionPlan. Nodes are world-state identities;
// edges are enabled transitions; the priority function is
// f(n) = g(n) + h(n) with a weighted indicator heuristic. The search
// is single-threaded and synchronous per query: it owns its open set,
// closed set, and came-from map outright, and shares nothing with
// concurrent queries.
package planner

import (
	"container/heap"
	"context"
	"log/slog"

	"github.com/anthropics/goap-engine/internal/domain"
	"github.com/anthropics/goap-engine/internal/operators"
	"github.com/anthropics/goap-engine/internal/transition"
	"github.com/anthropics/goap-engine/internal/worldstate"
)

// DefaultMaxExpansions is the A* expansion-count bound used when Options
// does not set one.
const DefaultMaxExpansions = 100000

// DefaultWarnRatio is the fraction of the expansion bound at which the
// planner logs a warning before it actually aborts.
const DefaultWarnRatio = 0.8

// Options configures one planning query.
type Options struct {
	// MaxExpansions bounds the number of node expansions; exceeding it
	// yields ActionPlan{Status: ABORTED}. Zero means DefaultMaxExpansions.
	MaxExpansions int
	// WarnRatio is the fraction of MaxExpansions at which a warning is
	// logged. Zero means DefaultWarnRatio.
	WarnRatio float64
	// Logger receives expansion-count and warn-threshold diagnostics.
	// Nil means slog.Default().
	Logger *slog.Logger
}

func (o Options) withDefaults() Options {
	if o.MaxExpansions <= 0 {
		o.MaxExpansions = DefaultMaxExpansions
	}
	if o.WarnRatio <= 0 {
		o.WarnRatio = DefaultWarnRatio
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	return o
}

type cameFromEntry struct {
	predID       uint64
	transitionID string
}

// Plan runs generateActionPlan: A* search from initialState to any state
// satisfying goal, using transitions as edges. ctx is checked once per
// node expansion; a cancelled ctx returns ABORTED with no partial result,
// the same outcome as hitting MaxExpansions.
//
// Model-level errors (unknown variable, type mismatch, unsupported
// operator, non-finite cost) are returned as the error value, reported
// once up front before any node is expanded; they are never folded into
// the ActionPlan.Status.
func Plan(
	ctx context.Context,
	reg *operators.Registry,
	variables []domain.Variable,
	transitions []domain.Transition,
	initialState worldstate.WorldState,
	goal []domain.Condition,
	opts Options,
) (domain.ActionPlan, error) {
	if err := Validate(reg, variables, transitions, goal); err != nil {
		return domain.ActionPlan{}, err
	}
	opts = opts.withDefaults()

	byID := make(map[string]domain.Transition, len(transitions))
	for _, t := range transitions {
		byID[t.ID] = t
	}

	h := newHeuristic(reg, variables, goal)

	initialID := initialState.Identity()
	states := map[uint64]worldstate.WorldState{initialID: initialState}
	gScore := map[uint64]float64{initialID: 0}
	cameFrom := map[uint64]cameFromEntry{}

	h0, err := h.estimate(initialState)
	if err != nil {
		return domain.ActionPlan{}, err
	}

	open := &openSet{&node{id: initialID, g: 0, f: h0, seq: 0}}
	heap.Init(open)
	seq := 1
	expansions := 0
	warnAt := int(float64(opts.MaxExpansions) * opts.WarnRatio)
	warned := false

	for open.Len() > 0 {
		if err := ctx.Err(); err != nil {
			return abortedPlan(initialState), nil
		}

		cur := heap.Pop(open).(*node)
		if cur.g > gScore[cur.id] {
			continue // stale entry, a better path to this state was already found
		}

		state := states[cur.id]
		satisfied, err := transition.GoalsSatisfied(reg, goal, state)
		if err != nil {
			return domain.ActionPlan{}, err
		}
		if satisfied {
			return reconstruct(cur.id, initialID, initialState, state, cameFrom, byID, cur.g), nil
		}

		expansions++
		if expansions > opts.MaxExpansions {
			return abortedPlan(initialState), nil
		}
		if !warned && expansions >= warnAt {
			opts.Logger.Warn("goap planner approaching expansion bound",
				"expansions", expansions, "max_expansions", opts.MaxExpansions)
			warned = true
		}
		opts.Logger.Debug("goap planner expanded node", "expansions", expansions, "g", cur.g, "open_len", open.Len())

		for _, t := range transitions {
			enabled, err := transition.IsEnabled(reg, t.Conditions, state)
			if err != nil {
				return domain.ActionPlan{}, err
			}
			if !enabled {
				continue
			}

			next, err := transition.Fire(reg, t, state)
			if err != nil {
				if isArithmeticError(err) {
					// A failed effect evaluation prunes this edge; the search continues.
					continue
				}
				return domain.ActionPlan{}, err
			}

			nextID := next.Identity()
			newG := cur.g + t.Cost
			if existing, ok := gScore[nextID]; ok && newG >= existing {
				continue // not a strictly better path; breaks zero-cost cycles
			}

			gScore[nextID] = newG
			cameFrom[nextID] = cameFromEntry{predID: cur.id, transitionID: t.ID}
			states[nextID] = next

			hv, err := h.estimate(next)
			if err != nil {
				return domain.ActionPlan{}, err
			}
			heap.Push(open, &node{id: nextID, g: newG, f: newG + hv, seq: seq})
			seq++
		}
	}

	return unreachablePlan(initialState), nil
}

func isArithmeticError(err error) bool {
	ee, ok := err.(*domain.EngineError)
	return ok && ee.Code == domain.ErrArithmeticError.Code
}

func reconstruct(
	goalID, initialID uint64,
	initialState, finalState worldstate.WorldState,
	cameFrom map[uint64]cameFromEntry,
	byID map[string]domain.Transition,
	totalCost float64,
) domain.ActionPlan {
	var transitionIDs []string
	for id := goalID; id != initialID; {
		entry, ok := cameFrom[id]
		if !ok {
			break
		}
		transitionIDs = append(transitionIDs, entry.transitionID)
		id = entry.predID
	}
	// transitionIDs was built goal-to-start; reverse to start-to-goal.
	for i, j := 0, len(transitionIDs)-1; i < j; i, j = i+1, j-1 {
		transitionIDs[i], transitionIDs[j] = transitionIDs[j], transitionIDs[i]
	}

	var actions []string
	for _, id := range transitionIDs {
		if t, ok := byID[id]; ok && t.HasAction() {
			actions = append(actions, t.Action)
		}
	}

	return domain.ActionPlan{
		Actions:      actions,
		Transitions:  transitionIDs,
		TotalSteps:   len(transitionIDs),
		TotalCost:    totalCost,
		InitialState: initialState.CanonicalValues(),
		FinalState:   finalState.CanonicalValues(),
		Status:       domain.StatusFound,
	}
}

func unreachablePlan(initialState worldstate.WorldState) domain.ActionPlan {
	return domain.ActionPlan{
		InitialState: initialState.CanonicalValues(),
		FinalState:   initialState.CanonicalValues(),
		Status:       domain.StatusUnreachable,
	}
}

func abortedPlan(initialState worldstate.WorldState) domain.ActionPlan {
	return domain.ActionPlan{
		InitialState: initialState.CanonicalValues(),
		FinalState:   initialState.CanonicalValues(),
		Status:       domain.StatusAborted,
	}
}
