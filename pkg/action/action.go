// Package action models GitHub Action metadata files (action.yml) and turns
// their raw YAML into a validated, order-preserving Action value.
package action

// DefaultFilenames are the conventional metadata filenames, in lookup order.
var DefaultFilenames = []string{"action.yml", "action.yaml"}

// Action is the validated metadata of a GitHub Action.
//
// Inputs and Outputs keep declaration order. A nil slice means the key was
// absent from the metadata; a non-nil empty slice means it was declared with
// no entries.
type Action struct {
	Name        string
	Author      *string
	Description string
	Inputs      []Input
	Outputs     []Output
	Branding    *Branding
}

// Input is a single entry of the inputs mapping.
type Input struct {
	ID                 string
	Description        string
	Required           bool
	Default            *string
	DeprecationMessage *string
}

// Output is a single entry of the outputs mapping.
type Output struct {
	ID          string
	Description string
}

// Branding holds the marketplace branding of the action.
type Branding struct {
	Color *string
	Icon  *string
}

// HasInputs reports whether the inputs key was declared.
func (a *Action) HasInputs() bool {
	return a.Inputs != nil
}

// HasOutputs reports whether the outputs key was declared.
func (a *Action) HasOutputs() bool {
	return a.Outputs != nil
}

// IsDeprecated reports whether the input carries a deprecation message.
func (i Input) IsDeprecated() bool {
	return i.DeprecationMessage != nil
}
