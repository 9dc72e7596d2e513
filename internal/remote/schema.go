package remote

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// payloadSchema is the explicit wire contract for recommendation payloads.
// Required: top_recommendations with career + compatibility_score per item.
// Optional: abilities, primary_career, primary_compatibility, session_id —
// their defaulting rules live in the results package. The list may be
// empty; rejecting empty lists is the orchestrator's call, not the wire's.
var payloadSchema = map[string]any{
	"type":     "object",
	"required": []any{"top_recommendations"},
	"properties": map[string]any{
		"top_recommendations": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type":     "object",
				"required": []any{"career", "compatibility_score"},
				"properties": map[string]any{
					"career":              map[string]any{"type": "string"},
					"compatibility_score": map[string]any{"type": "number", "minimum": 0, "maximum": 100},
					"explanation":         map[string]any{"type": "string"},
					"required_skills":     map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
					"suitable_for":        map[string]any{"type": "string"},
				},
			},
		},
		"abilities": map[string]any{
			"type":                 "object",
			"additionalProperties": map[string]any{"type": "number"},
		},
		"primary_career":        map[string]any{"type": "string"},
		"primary_compatibility": map[string]any{"type": "number"},
		"session_id":            map[string]any{"type": "string"},
	},
}

var (
	compileOnce     sync.Once
	compiledPayload *jsonschema.Schema
	compileErr      error
)

// validatePayload checks raw against the payload schema before it enters
// the state machine. Returns *ErrInvalidPayload on any mismatch.
func validatePayload(raw json.RawMessage) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return &ErrInvalidPayload{Content: raw, Err: fmt.Errorf("invalid JSON: %w", err)}
	}

	compiled, err := compiledPayloadSchema()
	if err != nil {
		return &ErrInvalidPayload{Content: raw, Err: fmt.Errorf("compile payload schema: %w", err)}
	}

	if err := compiled.Validate(parsed); err != nil {
		return &ErrInvalidPayload{Content: raw, Err: fmt.Errorf("schema validation failed: %w", err)}
	}
	return nil
}

// compiledPayloadSchema compiles the schema once and caches it.
func compiledPayloadSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value, not raw bytes.
		defBytes, err := json.Marshal(payloadSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://recommendation-payload.json"
		if err := c.AddResource(schemaURL, defParsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledPayload, compileErr = c.Compile(schemaURL)
	})
	return compiledPayload, compileErr
}
