package action

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_FullAction(t *testing.T) {
	data := `
name: Docgen
author: someone
description: |
  Generate docs
  from metadata
inputs:
  zeta:
    description: last in alphabet, first in file
    required: true
  alpha:
    description: second
    default: main
    deprecationMessage: use zeta
outputs:
  result:
    description: the result
branding:
  color: blue
  icon: book
runs:
  using: node20
  main: dist/index.js
`
	a, err := Parse([]byte(data))
	require.NoError(t, err)

	assert.Equal(t, "Docgen", a.Name)
	require.NotNil(t, a.Author)
	assert.Equal(t, "someone", *a.Author)
	assert.Equal(t, "Generate docs\nfrom metadata\n", a.Description)

	require.Len(t, a.Inputs, 2)
	assert.Equal(t, "zeta", a.Inputs[0].ID)
	assert.True(t, a.Inputs[0].Required)
	assert.Nil(t, a.Inputs[0].Default)
	assert.False(t, a.Inputs[0].IsDeprecated())

	assert.Equal(t, "alpha", a.Inputs[1].ID)
	assert.False(t, a.Inputs[1].Required)
	require.NotNil(t, a.Inputs[1].Default)
	assert.Equal(t, "main", *a.Inputs[1].Default)
	require.True(t, a.Inputs[1].IsDeprecated())
	assert.Equal(t, "use zeta", *a.Inputs[1].DeprecationMessage)

	require.Len(t, a.Outputs, 1)
	assert.Equal(t, Output{ID: "result", Description: "the result"}, a.Outputs[0])

	require.NotNil(t, a.Branding)
	assert.Equal(t, "blue", *a.Branding.Color)
	assert.Equal(t, "book", *a.Branding.Icon)
}

func TestParse_AbsentAndEmptyMappings(t *testing.T) {
	a, err := Parse([]byte("name: n\ndescription: d\n"))
	require.NoError(t, err)
	assert.False(t, a.HasInputs())
	assert.False(t, a.HasOutputs())
	assert.Nil(t, a.Branding)

	a, err = Parse([]byte("name: n\ndescription: d\ninputs: {}\noutputs: {}\n"))
	require.NoError(t, err)
	assert.True(t, a.HasInputs())
	assert.True(t, a.HasOutputs())
	assert.Empty(t, a.Inputs)
	assert.Empty(t, a.Outputs)
}

func TestParse_Aliases(t *testing.T) {
	data := `
name: n
description: &desc shared text
inputs:
  one:
    description: *desc
`
	a, err := Parse([]byte(data))
	require.NoError(t, err)
	require.Len(t, a.Inputs, 1)
	assert.Equal(t, "shared text", a.Inputs[0].Description)
}

func TestParse_CombinedValidationError(t *testing.T) {
	data := `
name: My Action
inputs:
  github_token: foo
`
	_, err := Parse([]byte(data))
	require.Error(t, err)

	assert.Equal(t,
		`Invalid input: expected string, received undefined at "description" | Invalid input: expected object, received string at "inputs.github_token"`,
		err.Error())

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	issues := verr.Issues()
	require.Len(t, issues, 2)
	assert.Equal(t, []string{"description"}, issues[0].Path)
	assert.Equal(t, []string{"inputs", "github_token"}, issues[1].Path)
}

func TestParse_ValidationMessages(t *testing.T) {
	tests := []struct {
		name     string
		data     string
		expected string
	}{
		{
			name:     "empty document",
			data:     "",
			expected: `Invalid input: expected object, received null`,
		},
		{
			name:     "top level sequence",
			data:     "- a\n- b\n",
			expected: `Invalid input: expected object, received array`,
		},
		{
			name:     "number name",
			data:     "name: 1\ndescription: d\n",
			expected: `Invalid input: expected string, received number at "name"`,
		},
		{
			name:     "inputs scalar",
			data:     "name: n\ndescription: d\ninputs: nope\n",
			expected: `Invalid input: expected record, received string at "inputs"`,
		},
		{
			name:     "inputs null",
			data:     "name: n\ndescription: d\ninputs:\n",
			expected: `Invalid input: expected record, received null at "inputs"`,
		},
		{
			name:     "required as string",
			data:     "name: n\ndescription: d\ninputs:\n  a:\n    description: x\n    required: 'yes'\n",
			expected: `Invalid input: expected boolean, received string at "inputs.a.required"`,
		},
		{
			name:     "numeric default",
			data:     "name: n\ndescription: d\ninputs:\n  a:\n    description: x\n    default: 3\n",
			expected: `Invalid input: expected string, received number at "inputs.a.default"`,
		},
		{
			name:     "output missing description",
			data:     "name: n\ndescription: d\noutputs:\n  out: {}\n",
			expected: `Invalid input: expected string, received undefined at "outputs.out.description"`,
		},
		{
			name:     "branding color boolean",
			data:     "name: n\ndescription: d\nbranding:\n  color: true\n",
			expected: `Invalid input: expected string, received boolean at "branding.color"`,
		},
		{
			name:     "non identifier key",
			data:     "name: n\ndescription: d\ninputs:\n  '123': 1\n",
			expected: `Invalid input: expected object, received number at "inputs["123"]"`,
		},
		{
			name: "every violation reported in schema order",
			data: "description: [a]\nname: false\noutputs:\n  a: x\ninputs:\n  b: 2\n",
			expected: `Invalid input: expected string, received boolean at "name"` +
				` | Invalid input: expected string, received array at "description"` +
				` | Invalid input: expected object, received number at "inputs.b"` +
				` | Invalid input: expected object, received string at "outputs.a"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			require.Error(t, err)

			var verr *ValidationError
			require.True(t, errors.As(err, &verr), "expected a validation error, got %v", err)
			assert.Equal(t, tt.expected, err.Error())
		})
	}
}

func TestParse_MalformedYAML(t *testing.T) {
	_, err := Parse([]byte("name: [unterminated\n"))
	require.Error(t, err)

	var verr *ValidationError
	assert.False(t, errors.As(err, &verr))
	assert.Contains(t, err.Error(), "yaml:")
}

func TestParse_DuplicateInputIDs(t *testing.T) {
	data := "name: n\ndescription: d\ninputs:\n  a:\n    description: x\n  a:\n    description: y\n"
	_, err := Parse([]byte(data))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `mapping key "a" already defined at line 4`)
}

func TestJoinPath(t *testing.T) {
	assert.Equal(t, "inputs", joinPath([]string{"inputs"}))
	assert.Equal(t, "inputs.foo.description", joinPath([]string{"inputs", "foo", "description"}))
	assert.Equal(t, "inputs.foo-bar", joinPath([]string{"inputs", "foo-bar"}))
	assert.Equal(t, `inputs["42"].description`, joinPath([]string{"inputs", "42", "description"}))
	assert.Equal(t, `inputs["a\"b"]`, joinPath([]string{"inputs", `a"b`}))
}
