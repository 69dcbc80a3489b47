package model

// modelSchema is the JSON Schema (2020-12) validated against a decoded
// declarative model before any typed conversion happens. It enforces the
// required top-level fields: variableId, operator ids, cost, typeOf.
// It runs ahead of the hand-written MalformedValue/MalformedArgument
// checks in wire.go, which need to look at which-fields-are-set, a shape
// jsonschema alone cannot express as cleanly as Go can.
const modelSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["variables", "transitions"],
  "properties": {
    "variables": {
      "type": "array",
      "items": { "$ref": "#/$defs/variable" }
    },
    "transitions": {
      "type": "array",
      "items": { "$ref": "#/$defs/transition" }
    }
  },
  "$defs": {
    "variable": {
      "type": "object",
      "required": ["id", "typeOf"],
      "properties": {
        "id": { "type": "string" },
        "typeOf": { "type": "string", "enum": ["STRING", "INT", "FLOAT", "BOOLEAN"] },
        "weight": { "type": "number" },
        "description": { "type": "string" }
      }
    },
    "operand": {
      "type": "object",
      "properties": {
        "variableId": { "type": "string" },
        "STRING": { "type": "string" },
        "INT": { "type": "integer" },
        "FLOAT": { "type": "number" },
        "BOOLEAN": { "type": "boolean" }
      }
    },
    "condition": {
      "type": "object",
      "required": ["variableId", "comparisonOperator", "argument"],
      "properties": {
        "variableId": { "type": "string" },
        "comparisonOperator": { "type": "string" },
        "argument": { "$ref": "#/$defs/operand" }
      }
    },
    "effect": {
      "type": "object",
      "required": ["variableId", "assignmentOperator", "argument"],
      "properties": {
        "variableId": { "type": "string" },
        "assignmentOperator": { "type": "string" },
        "argument": { "$ref": "#/$defs/operand" }
      }
    },
    "transition": {
      "type": "object",
      "required": ["id", "cost"],
      "properties": {
        "id": { "type": "string" },
        "conditions": { "type": "array", "items": { "$ref": "#/$defs/condition" } },
        "effects": { "type": "array", "items": { "$ref": "#/$defs/effect" } },
        "action": { "type": "string" },
        "cost": { "type": "number" },
        "description": { "type": "string" }
      }
    }
  }
}`

// variableValueSchema validates a single wire-format VariableValue (used
// for initial-state entries).
const variableValueSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["variableId"],
  "properties": {
    "variableId": { "type": "string" },
    "STRING": { "type": "string" },
    "INT": { "type": "integer" },
    "FLOAT": { "type": "number" },
    "BOOLEAN": { "type": "boolean" }
  }
}`

// conditionSchema validates a single wire-format Condition (used for goal
// lists, which are just condition arrays).
const conditionSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["variableId", "comparisonOperator", "argument"],
  "properties": {
    "variableId": { "type": "string" },
    "comparisonOperator": { "type": "string" },
    "argument": {
      "type": "object",
      "properties": {
        "variableId": { "type": "string" },
        "STRING": { "type": "string" },
        "INT": { "type": "integer" },
        "FLOAT": { "type": "number" },
        "BOOLEAN": { "type": "boolean" }
      }
    }
  }
}`
