package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/anthropics/goap-engine/internal/domain"
)

func compile(schemaText, resourceName string) (*jsonschema.Schema, error) {
	c := jsonschema.NewCompiler()
	c.Draft = jsonschema.Draft2020
	url := fmt.Sprintf("https://goap-engine.schemas.local/%s.schema.json", resourceName)
	if err := c.AddResource(url, strings.NewReader(schemaText)); err != nil {
		return nil, fmt.Errorf("load %s schema: %w", resourceName, err)
	}
	return c.Compile(url)
}

var (
	compiledModel         = mustCompile(modelSchema, "model")
	compiledVariableValue = mustCompile(variableValueSchema, "variable-value")
	compiledCondition     = mustCompile(conditionSchema, "condition")
)

func mustCompile(schemaText, name string) *jsonschema.Schema {
	s, err := compile(schemaText, name)
	if err != nil {
		panic(fmt.Sprintf("model: invalid embedded %s schema: %v", name, err))
	}
	return s
}

func validateAgainst(schema *jsonschema.Schema, data []byte) error {
	var instance any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&instance); err != nil {
		return domain.WrapEngineError(domain.ErrSchemaError.Code, domain.ErrSchemaError.Message, err)
	}
	if err := schema.Validate(instance); err != nil {
		return domain.WrapEngineError(domain.ErrSchemaError.Code, domain.ErrSchemaError.Message, err)
	}
	return nil
}

// ParseModel decodes and validates a declarative model (variable table +
// transition set) from its JSON wire form, returning the core domain
// types the query operations consume.
func ParseModel(data []byte) ([]domain.Variable, []domain.Transition, error) {
	if err := validateAgainst(compiledModel, data); err != nil {
		return nil, nil, err
	}

	var wire ModelWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, nil, domain.WrapEngineError(domain.ErrSchemaError.Code, domain.ErrSchemaError.Message, err)
	}

	variables := make([]domain.Variable, len(wire.Variables))
	for i, vw := range wire.Variables {
		v, err := vw.toVariable()
		if err != nil {
			return nil, nil, err
		}
		variables[i] = v
	}

	transitions := make([]domain.Transition, len(wire.Transitions))
	for i, tw := range wire.Transitions {
		tr, err := tw.toTransition()
		if err != nil {
			return nil, nil, err
		}
		transitions[i] = tr
	}

	return variables, transitions, nil
}

// ParseInitialState decodes and validates a JSON array of wire-format
// VariableValue entries, the shape of an initial world-state assignment.
func ParseInitialState(data []byte) ([]domain.VariableValue, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, domain.WrapEngineError(domain.ErrSchemaError.Code, domain.ErrSchemaError.Message, err)
	}

	out := make([]domain.VariableValue, len(raw))
	for i, r := range raw {
		if err := validateAgainst(compiledVariableValue, r); err != nil {
			return nil, err
		}
		var vw VariableValueWire
		if err := json.Unmarshal(r, &vw); err != nil {
			return nil, domain.WrapEngineError(domain.ErrSchemaError.Code, domain.ErrSchemaError.Message, err)
		}
		vv, err := vw.toVariableValue()
		if err != nil {
			return nil, err
		}
		out[i] = vv
	}
	return out, nil
}

// ParseGoal decodes and validates a JSON array of wire-format Condition
// entries, the shape of a goal predicate.
func ParseGoal(data []byte) ([]domain.Condition, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, domain.WrapEngineError(domain.ErrSchemaError.Code, domain.ErrSchemaError.Message, err)
	}

	out := make([]domain.Condition, len(raw))
	for i, r := range raw {
		if err := validateAgainst(compiledCondition, r); err != nil {
			return nil, err
		}
		var cw ConditionWire
		if err := json.Unmarshal(r, &cw); err != nil {
			return nil, domain.WrapEngineError(domain.ErrSchemaError.Code, domain.ErrSchemaError.Message, err)
		}
		c, err := cw.toCondition()
		if err != nil {
			return nil, err
		}
		out[i] = c
	}
	return out, nil
}
