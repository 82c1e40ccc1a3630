package weather

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

const currentSchema = `{
	"type": "object",
	"required": ["main", "weather"],
	"properties": {
		"main": {
			"type": "object",
			"required": ["temp", "feels_like"],
			"properties": {
				"temp": {"type": "number"},
				"feels_like": {"type": "number"},
				"humidity": {"type": "number"},
				"pressure": {"type": "number"}
			}
		},
		"weather": {
			"type": "array",
			"minItems": 1,
			"items": {
				"type": "object",
				"required": ["main", "description", "icon"]
			}
		},
		"wind": {
			"type": "object",
			"properties": {"speed": {"type": "number"}}
		}
	}
}`

var currentValidator = mustCompile(currentSchema)

func mustCompile(schema string) *gojsonschema.Schema {
	compiled, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(schema))
	if err != nil {
		panic(fmt.Sprintf("weather: compile schema: %v", err))
	}
	return compiled
}

func validateCurrent(body []byte) error {
	result, err := currentValidator.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			msgs = append(msgs, e.String())
		}
		return fmt.Errorf("%w: %s", ErrMalformedPayload, strings.Join(msgs, "; "))
	}
	return nil
}
