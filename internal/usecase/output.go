package usecase

import (
	"encoding/json"
	"fmt"
	"strings"

	"jeju-tour-api/internal/domain/entity"

	"github.com/xeipuuv/gojsonschema"
)

type OutputMode string

const (
	// OutputPassthrough relays the provider text untouched.
	OutputPassthrough OutputMode = "passthrough"
	// OutputStrict accepts only text that holds a valid catalog and relays
	// its normalised JSON.
	OutputStrict OutputMode = "strict"
)

const catalogSchemaTmpl = `{
  "type": "object",
  "required": ["filters", "items"],
  "properties": {
    "filters": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["key", "label", "type", "options"],
        "properties": {
          "key": {"type": "string", "minLength": 1},
          "label": {"type": "string"},
          "type": {"enum": ["single_select", "multi_select", "price", "region"]},
          "options": {
            "type": "array",
            "items": {
              "type": "object",
              "required": ["label", "value"],
              "properties": {
                "label": {"type": "string"},
                "value": {"type": "string"}
              }
            }
          }
        }
      }
    },
    "items": {
      "type": "array",
      "maxItems": %d,
      "items": {
        "type": "object",
        "required": ["title", "link", "course", "price", "region", "attributes"],
        "properties": {
          "title": {"type": "string"},
          "link": {"type": "string"},
          "course": {"type": "string"},
          "price": {"type": "integer"},
          "region": {"type": "string"},
          "attributes": {
            "type": "object",
            "additionalProperties": {"type": ["string", "number", "boolean", "null"]}
          }
        }
      }
    }
  }
}`

// catalogValidator checks provider text in strict mode.
type catalogValidator struct {
	schema *gojsonschema.Schema
}

func newCatalogValidator(maxItems int) (*catalogValidator, error) {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(fmt.Sprintf(catalogSchemaTmpl, maxItems)))
	if err != nil {
		return nil, fmt.Errorf("compile catalog schema: %w", err)
	}
	return &catalogValidator{schema: schema}, nil
}

// Normalize extracts the catalog from raw, validates it and returns it with
// coerced attributes and the common filters prepended.
func (v *catalogValidator) Normalize(raw string) (string, error) {
	doc, err := extractJSONObject(raw)
	if err != nil {
		return "", err
	}

	result, err := v.schema.Validate(gojsonschema.NewStringLoader(doc))
	if err != nil {
		return "", fmt.Errorf("%w: %v", entity.ErrMalformedOutput, err)
	}
	if !result.Valid() {
		errs := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			errs[i] = desc.String()
		}
		return "", fmt.Errorf("%w: %s", entity.ErrMalformedOutput, strings.Join(errs, "; "))
	}

	var catalog entity.Catalog
	if err := json.Unmarshal([]byte(doc), &catalog); err != nil {
		return "", fmt.Errorf("%w: %v", entity.ErrMalformedOutput, err)
	}
	if err := catalog.CheckAttributeFilters(); err != nil {
		return "", fmt.Errorf("%w: %v", entity.ErrMalformedOutput, err)
	}

	out, err := json.Marshal(catalog.WithCommonFilters())
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// extractJSONObject scans for the first balanced JSON object, skipping
// braces inside string literals.
func extractJSONObject(s string) (string, error) {
	start := -1
	depth := 0
	inString := false
	escaped := false
	for i, r := range s {
		if inString {
			switch {
			case escaped:
				escaped = false
			case r == '\\':
				escaped = true
			case r == '"':
				inString = false
			}
			continue
		}
		switch r {
		case '"':
			if depth > 0 {
				inString = true
			}
		case '{':
			if depth == 0 {
				start = i
			}
			depth++
		case '}':
			if depth > 0 {
				depth--
				if depth == 0 {
					return s[start : i+1], nil
				}
			}
		}
	}
	return "", fmt.Errorf("%w: no balanced JSON object found", entity.ErrMalformedOutput)
}
