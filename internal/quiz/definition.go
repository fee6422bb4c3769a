package quiz

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"
)

//go:embed quiz.yaml
var defaultDefinition []byte

//go:embed definition.schema.json
var definitionSchema []byte

const schemaURL = "schema://quiz-definition.json"

// ValidationError reports a definition that decodes but is not usable.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid quiz definition: %s: %s", e.Field, e.Reason)
}

var loadDefault = sync.OnceValues(func() (*Definition, error) {
	return Parse(defaultDefinition)
})

// Default returns the answer key compiled into the binary. The result is
// shared and must not be modified.
func Default() (*Definition, error) {
	return loadDefault()
}

// Parse decodes a YAML quiz definition, validates it against the
// definition schema, and checks the rules the schema cannot express.
func Parse(data []byte) (*Definition, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse quiz definition: %w", err)
	}
	if err := validateSchema(raw); err != nil {
		return nil, err
	}

	var def Definition
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&def); err != nil {
		return nil, fmt.Errorf("parse quiz definition: %w", err)
	}
	var extra yaml.Node
	if err := decoder.Decode(&extra); err != io.EOF {
		if err == nil {
			return nil, errors.New("parse quiz definition: multiple YAML documents are not supported")
		}
		return nil, fmt.Errorf("parse quiz definition: %w", err)
	}

	if err := validate(&def); err != nil {
		return nil, err
	}
	return &def, nil
}

func validate(def *Definition) error {
	seen := make(map[string]bool, len(def.Questions))
	for i, q := range def.Questions {
		field := fmt.Sprintf("questions[%d]", i)
		if seen[q.ID] {
			return &ValidationError{Field: field + ".id", Reason: fmt.Sprintf("duplicate id %q", q.ID)}
		}
		seen[q.ID] = true

		switch q.Kind {
		case KindSingle:
			if len(q.Accepted) != 1 {
				return &ValidationError{Field: field + ".accepted", Reason: "single-choice questions take exactly one accepted option"}
			}
		case KindMulti:
			if hasDuplicates(q.Accepted) {
				return &ValidationError{Field: field + ".accepted", Reason: "accepted set has duplicate members"}
			}
		case KindText:
			for _, a := range q.Accepted {
				if strings.TrimSpace(a) != a {
					return &ValidationError{Field: field + ".accepted", Reason: fmt.Sprintf("accepted answer %q has surrounding whitespace", a)}
				}
			}
		}
	}
	return nil
}

func hasDuplicates(values []string) bool {
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			return true
		}
		seen[v] = struct{}{}
	}
	return false
}

var compiledSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	var doc any
	if err := json.Unmarshal(definitionSchema, &doc); err != nil {
		return nil, fmt.Errorf("parse definition schema: %w", err)
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource(schemaURL, doc); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	schema, err := c.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile definition schema: %w", err)
	}
	return schema, nil
})

// validateSchema checks a decoded YAML value against the definition schema.
// The value goes through a JSON round trip so that it only holds the types
// the validator understands.
func validateSchema(raw any) error {
	schema, err := compiledSchema()
	if err != nil {
		return err
	}
	b, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("parse quiz definition: %w", err)
	}
	var doc any
	if err := json.Unmarshal(b, &doc); err != nil {
		return fmt.Errorf("parse quiz definition: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("quiz definition schema validation failed: %w", err)
	}
	return nil
}
