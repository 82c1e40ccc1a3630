package aviation

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// flightsSchema describes the parts of each flight record the mapping depends on.
const flightsSchema = `{
	"type": "array",
	"items": {
		"type": "object",
		"required": ["departure", "arrival", "flight", "airline"],
		"properties": {
			"flight_status": {"type": ["string", "null"]},
			"departure": {"$ref": "#/definitions/leg"},
			"arrival": {"$ref": "#/definitions/leg"},
			"flight": {"type": "object"},
			"airline": {"type": "object"},
			"aircraft": {"type": ["object", "null"]}
		}
	},
	"definitions": {
		"leg": {
			"type": "object",
			"properties": {
				"delay": {"type": ["integer", "null"]},
				"scheduled": {"type": ["string", "null"]}
			}
		}
	}
}`

var flightsValidator = mustCompile(flightsSchema)

func mustCompile(schema string) *gojsonschema.Schema {
	compiled, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(schema))
	if err != nil {
		panic(fmt.Sprintf("aviation: compile schema: %v", err))
	}
	return compiled
}

func validateFlights(data []byte) error {
	result, err := flightsValidator.Validate(gojsonschema.NewBytesLoader(data))
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
