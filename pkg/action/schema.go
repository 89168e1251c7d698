package action

import (
	"github.com/invopop/jsonschema"
)

// The *Document types describe the accepted YAML shape for schema
// generation. Parsing does not use them: mappings must keep their order.

type actionDocument struct {
	Name        string                    `json:"name" jsonschema:"description=The name of the action"`
	Author      string                    `json:"author,omitempty" jsonschema:"description=The name of the action's author"`
	Description string                    `json:"description" jsonschema:"description=A short description of the action"`
	Inputs      map[string]inputDocument  `json:"inputs,omitempty" jsonschema:"description=Input parameters keyed by input id"`
	Outputs     map[string]outputDocument `json:"outputs,omitempty" jsonschema:"description=Output parameters keyed by output id"`
	Branding    *brandingDocument         `json:"branding,omitempty"`
}

type inputDocument struct {
	Description        string `json:"description"`
	Required           bool   `json:"required,omitempty" jsonschema:"default=false"`
	Default            string `json:"default,omitempty"`
	DeprecationMessage string `json:"deprecationMessage,omitempty"`
}

type outputDocument struct {
	Description string `json:"description"`
}

type brandingDocument struct {
	Color string `json:"color,omitempty"`
	Icon  string `json:"icon,omitempty"`
}

// Schema returns the JSON schema of action metadata as accepted by Parse.
func Schema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: true,
		DoNotReference:            true,
	}

	schema := reflector.Reflect(&actionDocument{})
	schema.Title = "GitHub Action metadata"
	return schema
}
