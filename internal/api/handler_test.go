package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestHandler() *Handler {
	return NewHandler(nil)
}

func postJSON(h http.HandlerFunc, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func TestHandler_Health(t *testing.T) {
	h := newTestHandler()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	rec := httptest.NewRecorder()
	h.Health(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestHandler_GoalsSatisfied(t *testing.T) {
	h := newTestHandler()
	body := `{
		"variables": [{"id": "x", "typeOf": "INT"}],
		"state": [{"variableId": "x", "INT": 5}],
		"goals": [{"variableId": "x", "comparisonOperator": "EQ", "argument": {"INT": 5}}]
	}`
	rec := postJSON(h.GoalsSatisfied, body)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var resp map[string]bool
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !resp["satisfied"] {
		t.Errorf("satisfied = %v, want true", resp["satisfied"])
	}
}

func TestHandler_GoalsSatisfied_SchemaError(t *testing.T) {
	h := newTestHandler()
	body := `{
		"variables": [{"id": "x"}],
		"state": [],
		"goals": []
	}`
	rec := postJSON(h.GoalsSatisfied, body)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400, body = %s", rec.Code, rec.Body.String())
	}
}

func TestHandler_EnabledTransitions(t *testing.T) {
	h := newTestHandler()
	body := `{
		"variables": [{"id": "x", "typeOf": "INT"}],
		"state": [{"variableId": "x", "INT": 5}],
		"transitions": [
			{"id": "t1", "conditions": [{"variableId": "x", "comparisonOperator": "LT", "argument": {"INT": 10}}], "cost": 1.0},
			{"id": "t2", "conditions": [{"variableId": "x", "comparisonOperator": "GT", "argument": {"INT": 100}}], "cost": 1.0}
		]
	}`
	rec := postJSON(h.EnabledTransitions, body)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var resp map[string][]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(resp["enabled"]) != 1 || resp["enabled"][0] != "t1" {
		t.Errorf("enabled = %v, want [t1]", resp["enabled"])
	}
}

func TestHandler_GeneratePlan(t *testing.T) {
	h := newTestHandler()
	body := `{
		"variables": [{"id": "x", "typeOf": "INT", "weight": 1.0}],
		"transitions": [{
			"id": "t1",
			"conditions": [{"variableId": "x", "comparisonOperator": "LT", "argument": {"INT": 10}}],
			"effects": [{"variableId": "x", "assignmentOperator": "SET", "argument": {"INT": 10}}],
			"action": "A",
			"cost": 1.0
		}],
		"initialState": [{"variableId": "x", "INT": 5}],
		"goal": [{"variableId": "x", "comparisonOperator": "EQ", "argument": {"INT": 10}}]
	}`
	rec := postJSON(h.GeneratePlan, body)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if !bytes.Contains(rec.Body.Bytes(), []byte(`"FOUND"`)) {
		t.Errorf("body = %s, want FOUND status", rec.Body.String())
	}
}
