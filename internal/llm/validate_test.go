package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func candidateSchema() *Schema {
	return &Schema{
		Name:        "test-candidate",
		Description: "A classified clinical term",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"keyword": map[string]any{"type": "string"},
				"weight":  map[string]any{"type": "number", "minimum": 0.5},
				"tier":    map[string]any{"type": "string", "enum": []any{"life-threat", "safety"}},
			},
			"required": []any{"keyword", "weight"},
		},
	}
}

func TestValidateResponse_Valid(t *testing.T) {
	raw := json.RawMessage(`{"keyword":"cpr","weight":2.5,"tier":"life-threat"}`)
	if err := validateResponse(candidateSchema(), raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponse_ValidWithoutOptional(t *testing.T) {
	raw := json.RawMessage(`{"keyword":"fall","weight":1.5}`)
	if err := validateResponse(candidateSchema(), raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponse_MissingRequired(t *testing.T) {
	raw := json.RawMessage(`{"keyword":"cpr"}`)
	err := validateResponse(candidateSchema(), raw)
	if err == nil {
		t.Fatal("expected error for missing required field")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_WrongType(t *testing.T) {
	raw := json.RawMessage(`{"keyword":"cpr","weight":"heavy"}`)
	if err := validateResponse(candidateSchema(), raw); err == nil {
		t.Fatal("expected error for wrong type")
	}
}

func TestValidateResponse_EnumViolation(t *testing.T) {
	raw := json.RawMessage(`{"keyword":"cpr","weight":2.5,"tier":"urgent"}`)
	if err := validateResponse(candidateSchema(), raw); err == nil {
		t.Fatal("expected error for enum violation")
	}
}

func TestValidateResponse_NotJSON(t *testing.T) {
	raw := json.RawMessage(`this is not JSON`)
	err := validateResponse(candidateSchema(), raw)
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %v", err)
	}
}

func TestValidateResponse_NilSchemaPasses(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`anything at all`)); err != nil {
		t.Fatalf("nil schema must pass, got: %v", err)
	}
}
