package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/anthropics/goap-engine/internal/domain"
)

// PlanCacheRepo handles persistence for memoized ActionPlan results.
type PlanCacheRepo struct{}

// stateRow is the JSON-serializable form of a []domain.VariableValue.
type stateRow struct {
	VariableID string      `json:"variable_id"`
	Tag        domain.Type `json:"tag"`
	Str        string      `json:"str,omitempty"`
	Int        int64       `json:"int,omitempty"`
	Float      float64     `json:"float,omitempty"`
	Bool       bool        `json:"bool,omitempty"`
}

func toStateRows(vvs []domain.VariableValue) []stateRow {
	out := make([]stateRow, len(vvs))
	for i, vv := range vvs {
		out[i] = stateRow{
			VariableID: vv.VariableID,
			Tag:        vv.Value.Tag,
			Str:        vv.Value.Str,
			Int:        vv.Value.Int,
			Float:      vv.Value.Float,
			Bool:       vv.Value.Bool,
		}
	}
	return out
}

func fromStateRows(rows []stateRow) []domain.VariableValue {
	out := make([]domain.VariableValue, len(rows))
	for i, r := range rows {
		out[i] = domain.VariableValue{
			VariableID: r.VariableID,
			Value: domain.Value{
				Tag: r.Tag, Str: r.Str, Int: r.Int, Float: r.Float, Bool: r.Bool,
			},
		}
	}
	return out
}

// Get looks up a cached plan by its content-hash key. It returns
// (nil, false, nil) on a cache miss. The InitialState of a plan is not
// stored by Put, so the returned plan has a nil InitialState.
func (r *PlanCacheRepo) Get(ctx context.Context, db *sql.DB, cacheKey string) (*domain.ActionPlan, bool, error) {
	const q = `SELECT status, actions_json, transitions_json, total_steps, total_cost, final_state_json
FROM plan_cache WHERE cache_key = ?`

	row := db.QueryRowContext(ctx, q, cacheKey)

	var status, actionsJSON, transitionsJSON, finalStateJSON string
	var totalSteps int
	var totalCost float64
	if err := row.Scan(&status, &actionsJSON, &transitionsJSON, &totalSteps, &totalCost, &finalStateJSON); err != nil {
		if err == sql.ErrNoRows {
			return nil, false, nil
		}
		return nil, false, domain.WrapEngineError(domain.ErrStoreQuery.Code, domain.ErrStoreQuery.Message, err)
	}

	var actions, transitions []string
	var finalRows []stateRow
	if err := json.Unmarshal([]byte(actionsJSON), &actions); err != nil {
		return nil, false, domain.WrapEngineError(domain.ErrStoreQuery.Code, domain.ErrStoreQuery.Message, err)
	}
	if err := json.Unmarshal([]byte(transitionsJSON), &transitions); err != nil {
		return nil, false, domain.WrapEngineError(domain.ErrStoreQuery.Code, domain.ErrStoreQuery.Message, err)
	}
	if err := json.Unmarshal([]byte(finalStateJSON), &finalRows); err != nil {
		return nil, false, domain.WrapEngineError(domain.ErrStoreQuery.Code, domain.ErrStoreQuery.Message, err)
	}

	plan := &domain.ActionPlan{
		Actions:     actions,
		Transitions: transitions,
		TotalSteps:  totalSteps,
		TotalCost:   totalCost,
		FinalState:  fromStateRows(finalRows),
		Status:      domain.Status(status),
	}
	return plan, true, nil
}

// Put stores a plan result under the given cache key, overwriting any
// previous entry for the same key (a key collision means an identical
// model/initial-state/goal query; the result is deterministic, so a
// blind overwrite is safe).
func (r *PlanCacheRepo) Put(ctx context.Context, db *sql.DB, cacheKey string, plan domain.ActionPlan) error {
	actionsJSON, err := json.Marshal(plan.Actions)
	if err != nil {
		return domain.WrapEngineError(domain.ErrStoreWrite.Code, domain.ErrStoreWrite.Message, err)
	}
	transitionsJSON, err := json.Marshal(plan.Transitions)
	if err != nil {
		return domain.WrapEngineError(domain.ErrStoreWrite.Code, domain.ErrStoreWrite.Message, err)
	}
	finalStateJSON, err := json.Marshal(toStateRows(plan.FinalState))
	if err != nil {
		return domain.WrapEngineError(domain.ErrStoreWrite.Code, domain.ErrStoreWrite.Message, err)
	}

	const q = `INSERT INTO plan_cache (cache_key, row_id, status, actions_json, transitions_json, total_steps, total_cost, final_state_json, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(cache_key) DO UPDATE SET
	row_id = excluded.row_id,
	status = excluded.status,
	actions_json = excluded.actions_json,
	transitions_json = excluded.transitions_json,
	total_steps = excluded.total_steps,
	total_cost = excluded.total_cost,
	final_state_json = excluded.final_state_json,
	created_at = excluded.created_at`

	_, err = db.ExecContext(ctx, q,
		cacheKey,
		uuid.New().String(),
		string(plan.Status),
		string(actionsJSON),
		string(transitionsJSON),
		plan.TotalSteps,
		plan.TotalCost,
		string(finalStateJSON),
		time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("put plan cache entry: %w", err)
	}
	return nil
}
