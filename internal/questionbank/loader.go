package questionbank

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"
)

// SupportedMajor is the bank file format major version this build reads.
const SupportedMajor = "v1"

// ErrUnsupportedVersion is returned for bank files with an incompatible
// format version.
var ErrUnsupportedVersion = errors.New("unsupported question bank version")

const bankSchemaURL = "schema://question-bank.json"

// bankFile is the on-disk layout of a custom question bank.
type bankFile struct {
	Version   string     `json:"version"`
	Questions []Question `json:"questions"`
}

var (
	bankSchemaOnce sync.Once
	bankSchema     *jsonschema.Schema
	bankSchemaErr  error
)

// LoadFile reads a custom bank from a YAML (.yaml, .yml) or JSON file.
func LoadFile(path string) (*Bank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read question bank: %w", err)
	}
	ext := strings.ToLower(filepath.Ext(path))
	b, err := Parse(data, ext == ".yaml" || ext == ".yml")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return b, nil
}

// Parse decodes a bank document. YAML input is normalized to JSON first so
// both formats go through the same schema check.
func Parse(data []byte, isYAML bool) (*Bank, error) {
	if isYAML {
		var doc any
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parse yaml: %w", err)
		}
		converted, err := json.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("convert yaml: %w", err)
		}
		data = converted
	}

	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}

	schema, err := compiledBankSchema()
	if err != nil {
		return nil, err
	}
	if err := schema.Validate(inst); err != nil {
		return nil, fmt.Errorf("schema validation failed: %w", err)
	}

	var f bankFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode question bank: %w", err)
	}
	if err := checkVersion(f.Version); err != nil {
		return nil, err
	}
	return New(f.Questions)
}

// checkVersion accepts "1", "1.2", "v1.2.3" and similar, as long as the
// major version matches SupportedMajor.
func checkVersion(v string) error {
	canonical := v
	if !strings.HasPrefix(canonical, "v") {
		canonical = "v" + canonical
	}
	if !semver.IsValid(canonical) {
		return fmt.Errorf("%w: %q is not a semantic version", ErrUnsupportedVersion, v)
	}
	if semver.Major(canonical) != SupportedMajor {
		return fmt.Errorf("%w: %s (want %s.x)", ErrUnsupportedVersion, semver.Canonical(canonical), SupportedMajor)
	}
	return nil
}

func compiledBankSchema() (*jsonschema.Schema, error) {
	bankSchemaOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(strings.NewReader(bankSchemaJSON))
		if err != nil {
			bankSchemaErr = fmt.Errorf("parse bank schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(bankSchemaURL, doc); err != nil {
			bankSchemaErr = fmt.Errorf("add bank schema: %w", err)
			return
		}
		bankSchema, bankSchemaErr = c.Compile(bankSchemaURL)
	})
	return bankSchema, bankSchemaErr
}

const bankSchemaJSON = `{
  "type": "object",
  "required": ["version", "questions"],
  "properties": {
    "version": {"type": "string", "minLength": 1},
    "questions": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["id", "category", "difficulty", "question", "options", "correct", "points"],
        "properties": {
          "id": {"type": "string", "minLength": 1},
          "category": {"enum": ["basic-rules", "positions", "strategy", "history"]},
          "difficulty": {"enum": ["easy", "medium", "hard"]},
          "question": {"type": "string", "minLength": 1},
          "options": {"type": "array", "minItems": 2, "items": {"type": "string"}},
          "correct": {"type": "integer", "minimum": 0},
          "explanation": {"type": "string"},
          "points": {"type": "integer", "minimum": 1},
          "concepts": {"type": "array", "items": {"type": "string"}}
        }
      }
    }
  }
}`
