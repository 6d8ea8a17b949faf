package question

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// bankSchema validates question bank files before any Question is built,
// so shape errors surface with a path instead of a zero-value struct.
const bankSchema = `{
	"type": "array",
	"items": {
		"type": "object",
		"required": ["id", "stem", "options", "format"],
		"properties": {
			"id": {"type": "string", "minLength": 1},
			"stem": {"type": "string", "minLength": 1},
			"options": {
				"type": "object",
				"minProperties": 2,
				"additionalProperties": {"type": "string"}
			},
			"correct": {"type": "array", "items": {"type": "string"}},
			"format": {"enum": ["single", "sata", "ordered"]},
			"category": {"type": "string"}
		}
	}
}`

type bankRecord struct {
	ID       string            `json:"id"`
	Stem     string            `json:"stem"`
	Options  map[string]string `json:"options"`
	Correct  []string          `json:"correct"`
	Format   string            `json:"format"`
	Category string            `json:"category"`
}

// LoadBank reads a JSON question bank file, validates it against the bank
// schema, and builds validated questions. Any malformed record aborts the
// load.
func LoadBank(path string) ([]*Question, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read question bank: %w", err)
	}
	return ParseBank(data)
}

// ParseBank parses and validates a JSON question bank from raw bytes.
func ParseBank(data []byte) ([]*Question, error) {
	var parsed any
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("question bank is not valid JSON: %w", err)
	}

	schema, err := compiledBankSchema()
	if err != nil {
		return nil, err
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, fmt.Errorf("question bank schema: %w", err)
	}

	var records []bankRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode question bank: %w", err)
	}

	questions := make([]*Question, 0, len(records))
	for _, r := range records {
		q, err := New(r.ID, r.Stem, r.Options, Format(r.Format))
		if err != nil {
			return nil, err
		}
		q.Category = r.Category
		if len(r.Correct) > 0 {
			if err := q.AttachCorrectAnswers(r.Correct...); err != nil {
				return nil, err
			}
		}
		questions = append(questions, q)
	}
	return questions, nil
}

// compiledBankSchema compiles the bank schema once per call site. The
// schema is small; caching is not worth the sync.
func compiledBankSchema() (*jsonschema.Schema, error) {
	var def any
	if err := json.Unmarshal([]byte(bankSchema), &def); err != nil {
		return nil, fmt.Errorf("parse bank schema: %w", err)
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource("schema://question-bank.json", def); err != nil {
		return nil, fmt.Errorf("add bank schema resource: %w", err)
	}
	schema, err := c.Compile("schema://question-bank.json")
	if err != nil {
		return nil, fmt.Errorf("compile bank schema: %w", err)
	}
	return schema, nil
}
