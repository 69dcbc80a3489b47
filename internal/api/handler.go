package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/anthropics/goap-engine/internal/domain"
	"github.com/anthropics/goap-engine/internal/model"
	"github.com/anthropics/goap-engine/internal/operators"
	"github.com/anthropics/goap-engine/internal/planner"
	"github.com/anthropics/goap-engine/internal/query"
)

// Handler holds the dependencies shared by every HTTP handler method.
type Handler struct {
	Registry *operators.Registry
	Logger   *slog.Logger
}

// NewHandler builds a Handler with the standard operator registry.
func NewHandler(logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{Registry: operators.NewRegistry(), Logger: logger}
}

// APIError is a structured error response body.
type APIError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Health handles GET /api/v1/health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GoalsSatisfiedRequest is the body for POST /api/v1/goals-satisfied.
type GoalsSatisfiedRequest struct {
	Variables json.RawMessage `json:"variables"`
	State     json.RawMessage `json:"state"`
	Goals     json.RawMessage `json:"goals"`
}

// GoalsSatisfied handles POST /api/v1/goals-satisfied: areGoalsSatisfied.
func (h *Handler) GoalsSatisfied(w http.ResponseWriter, r *http.Request) {
	var req GoalsSatisfiedRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	variables, _, err := model.ParseModel(wrapVariables(req.Variables))
	if err != nil {
		writeError(h.Logger, w, err)
		return
	}
	state, err := model.ParseInitialState(req.State)
	if err != nil {
		writeError(h.Logger, w, err)
		return
	}
	goals, err := model.ParseGoal(req.Goals)
	if err != nil {
		writeError(h.Logger, w, err)
		return
	}

	ok, err := query.AreGoalsSatisfied(h.Registry, variables, state, goals)
	if err != nil {
		writeError(h.Logger, w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"satisfied": ok})
}

// SingleStepRequest is the body for POST /api/v1/single-step.
type SingleStepRequest struct {
	Variables  json.RawMessage `json:"variables"`
	State      json.RawMessage `json:"state"`
	Transition json.RawMessage `json:"transition"`
}

// SingleStep handles POST /api/v1/single-step: singleStep.
func (h *Handler) SingleStep(w http.ResponseWriter, r *http.Request) {
	var req SingleStepRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	variables, _, err := model.ParseModel(wrapVariables(req.Variables))
	if err != nil {
		writeError(h.Logger, w, err)
		return
	}
	state, err := model.ParseInitialState(req.State)
	if err != nil {
		writeError(h.Logger, w, err)
		return
	}
	_, transitions, err := model.ParseModel(wrapTransition(req.Transition))
	if err != nil {
		writeError(h.Logger, w, err)
		return
	}
	if len(transitions) != 1 {
		writeJSON(w, http.StatusBadRequest, APIError{Code: domain.ErrSchemaError.Code, Message: "transition field is required"})
		return
	}

	out, err := query.SingleStep(h.Registry, variables, state, transitions[0])
	if err != nil {
		writeError(h.Logger, w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"state": out})
}

// EnabledTransitionsRequest is the body for POST /api/v1/enabled-transitions.
type EnabledTransitionsRequest struct {
	Variables   json.RawMessage `json:"variables"`
	State       json.RawMessage `json:"state"`
	Transitions json.RawMessage `json:"transitions"`
}

// EnabledTransitions handles POST /api/v1/enabled-transitions.
func (h *Handler) EnabledTransitions(w http.ResponseWriter, r *http.Request) {
	var req EnabledTransitionsRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	variables, _, err := model.ParseModel(wrapVariables(req.Variables))
	if err != nil {
		writeError(h.Logger, w, err)
		return
	}
	state, err := model.ParseInitialState(req.State)
	if err != nil {
		writeError(h.Logger, w, err)
		return
	}
	_, transitions, err := model.ParseModel(wrapTransitions(req.Transitions))
	if err != nil {
		writeError(h.Logger, w, err)
		return
	}

	ids, err := query.EnabledTransitions(h.Registry, variables, state, transitions)
	if err != nil {
		writeError(h.Logger, w, err)
		return
	}
	if ids == nil {
		ids = []string{}
	}
	writeJSON(w, http.StatusOK, map[string][]string{"enabled": ids})
}

// GeneratePlanRequest is the body for POST /api/v1/plan.
type GeneratePlanRequest struct {
	Variables     json.RawMessage `json:"variables"`
	Transitions   json.RawMessage `json:"transitions"`
	InitialState  json.RawMessage `json:"initialState"`
	Goal          json.RawMessage `json:"goal"`
	MaxExpansions int             `json:"maxExpansions,omitempty"`
}

// GeneratePlan handles POST /api/v1/plan: generateActionPlan.
func (h *Handler) GeneratePlan(w http.ResponseWriter, r *http.Request) {
	var req GeneratePlanRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	variables, _, err := model.ParseModel(wrapVariables(req.Variables))
	if err != nil {
		writeError(h.Logger, w, err)
		return
	}
	_, transitions, err := model.ParseModel(wrapTransitions(req.Transitions))
	if err != nil {
		writeError(h.Logger, w, err)
		return
	}
	initial, err := model.ParseInitialState(req.InitialState)
	if err != nil {
		writeError(h.Logger, w, err)
		return
	}
	goal, err := model.ParseGoal(req.Goal)
	if err != nil {
		writeError(h.Logger, w, err)
		return
	}

	opts := planner.Options{MaxExpansions: req.MaxExpansions, Logger: h.Logger}
	plan, err := query.GenerateActionPlan(r.Context(), h.Registry, variables, transitions, initial, goal, opts)
	if err != nil {
		writeError(h.Logger, w, err)
		return
	}
	writeJSON(w, http.StatusOK, plan)
}

// wrapVariables, wrapTransition, and wrapTransitions let the handler reuse
// model.ParseModel (which expects {"variables": [...], "transitions":
// [...]}) for request fragments that carry only one half of the model.
func wrapVariables(variables json.RawMessage) []byte {
	if len(variables) == 0 {
		variables = json.RawMessage("[]")
	}
	return append(append([]byte(`{"variables":`), variables...), []byte(`,"transitions":[]}`)...)
}

func wrapTransitions(transitions json.RawMessage) []byte {
	if len(transitions) == 0 {
		transitions = json.RawMessage("[]")
	}
	return append(append([]byte(`{"variables":[],"transitions":`), transitions...), []byte(`}`)...)
}

func wrapTransition(transition json.RawMessage) []byte {
	return wrapTransitions(append(append([]byte(`[`), transition...), []byte(`]`)...))
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeJSON(w, http.StatusBadRequest, APIError{Code: domain.ErrSchemaError.Code, Message: "invalid request body"})
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(logger *slog.Logger, w http.ResponseWriter, err error) {
	if engErr, ok := err.(*domain.EngineError); ok {
		status := http.StatusInternalServerError
		switch engErr.Code {
		case domain.ErrSchemaError.Code, domain.ErrMalformedValue.Code, domain.ErrMalformedArgument.Code,
			domain.ErrTypeMismatch.Code, domain.ErrUnsupportedOperator.Code, domain.ErrDuplicateAssignment.Code,
			domain.ErrUnknownVariable.Code, domain.ErrInvalidTypeTag.Code, domain.ErrInvalidCost.Code:
			status = http.StatusBadRequest
		}
		logger.Warn("api request failed", "code", engErr.Code, "message", engErr.Message)
		writeJSON(w, status, APIError{Code: engErr.Code, Message: engErr.Message})
		return
	}
	logger.Error("api request failed with unexpected error", "error", err)
	writeJSON(w, http.StatusInternalServerError, APIError{Code: -1, Message: err.Error()})
}
