package evaluation

import (
	"bytes"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// requestSchema mirrors the service's request model, which rejects
// unknown fields.
const requestSchema = `{
  "type": "object",
  "additionalProperties": false,
  "required": ["background", "quizResponses", "goals"],
  "properties": {
    "background": {"type": "string", "enum": ["tech", "non-tech"]},
    "quizResponses": {
      "type": "object",
      "additionalProperties": false,
      "required": [
        "currentRole", "experience", "targetRole", "problemSolving",
        "systemDesign", "portfolio", "mockInterviews", "currentCompany",
        "currentSkill", "requirementType", "targetCompany"
      ],
      "properties": {
        "currentRole": {"type": "string"},
        "experience": {"type": "string"},
        "targetRole": {"type": "string"},
        "problemSolving": {"type": "string"},
        "systemDesign": {"type": "string"},
        "portfolio": {"type": "string"},
        "mockInterviews": {"type": "string"},
        "currentCompany": {"type": "string"},
        "currentSkill": {"type": "string"},
        "requirementType": {"type": "string"},
        "targetCompany": {"type": "string"},
        "currentRoleLabel": {"type": ["string", "null"]},
        "targetRoleLabel": {"type": ["string", "null"]},
        "targetCompanyLabel": {"type": ["string", "null"]},
        "primaryGoal": {"type": ["string", "null"]}
      }
    },
    "goals": {
      "type": "object",
      "additionalProperties": false,
      "required": ["requirementType", "targetCompany", "topicOfInterest"],
      "properties": {
        "requirementType": {"type": "array", "items": {"type": "string"}},
        "targetCompany": {"type": "string"},
        "topicOfInterest": {"type": "array", "items": {"type": "string"}}
      }
    }
  }
}`

// envelopeSchema describes the response wrapper around the opaque result.
const envelopeSchema = `{
  "type": "object",
  "required": ["profile_evaluation"],
  "properties": {
    "profile_evaluation": {"type": "object"}
  }
}`

// schemaCache caches compiled schemas by name.
var schemaCache sync.Map // map[string]*jsonschema.Schema

// ValidatePayload checks a JSON request body against the request schema.
func ValidatePayload(raw []byte) error {
	return validate("evaluation-request", requestSchema, raw)
}

// validateEnvelope checks a JSON response body against the envelope schema.
func validateEnvelope(raw []byte) error {
	return validate("evaluation-response", envelopeSchema, raw)
}

func validate(name, definition string, raw []byte) error {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	compiled, err := compiledSchema(name, definition)
	if err != nil {
		return fmt.Errorf("compile schema %q: %w", name, err)
	}

	if err := compiled.Validate(doc); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}

func compiledSchema(name, definition string) (*jsonschema.Schema, error) {
	if cached, ok := schemaCache.Load(name); ok {
		return cached.(*jsonschema.Schema), nil
	}

	def, err := jsonschema.UnmarshalJSON(strings.NewReader(definition))
	if err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	url := fmt.Sprintf("schema://%s.json", name)
	if err := c.AddResource(url, def); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	compiled, err := c.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}

	schemaCache.Store(name, compiled)
	return compiled, nil
}
