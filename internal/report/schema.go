package report

import (
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"
)

// Schema describes the persisted report document. Fresh nodes are built on
// every call so resolved schemas never share state.
func Schema() *jsonschema.Schema {
	indexMap := func() *jsonschema.Schema {
		return &jsonschema.Schema{
			Type:                 "object",
			AdditionalProperties: &jsonschema.Schema{Type: "number"},
		}
	}
	return &jsonschema.Schema{
		Type:     "object",
		Required: []string{"metadata", "harvest_summary", "reliability_table"},
		Properties: map[string]*jsonschema.Schema{
			"metadata": {
				Type:     "object",
				Required: []string{"run_id", "generated_at", "simulation_years"},
				Properties: map[string]*jsonschema.Schema{
					"run_id":           {Type: "string"},
					"generated_at":     {Type: "string"},
					"simulation_years": {Type: "integer"},
				},
			},
			"harvest_summary": {
				Type:     "object",
				Required: []string{"monthly_L", "weekly_L"},
				Properties: map[string]*jsonschema.Schema{
					"monthly_L": indexMap(),
					"weekly_L":  indexMap(),
				},
			},
			"reliability_table": {
				Type:     "object",
				Required: []string{"tank_L", "reliability_pct"},
				Properties: map[string]*jsonschema.Schema{
					"tank_L":          indexMap(),
					"reliability_pct": indexMap(),
				},
			},
		},
	}
}

// Validate checks a decoded JSON document against the report schema.
func Validate(doc any) error {
	resolved, err := Schema().Resolve(nil)
	if err != nil {
		return fmt.Errorf("failed to resolve report schema: %w", err)
	}
	if err := resolved.Validate(doc); err != nil {
		return fmt.Errorf("report does not match schema: %w", err)
	}
	return nil
}
