package action

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// IssueSeparator joins the messages of a ValidationError.
const IssueSeparator = " | "

// Type names used in validation messages.
const (
	typeUndefined = "undefined"
	typeNull      = "null"
	typeString    = "string"
	typeNumber    = "number"
	typeBoolean   = "boolean"
	typeObject    = "object"
	typeArray     = "array"
	typeRecord    = "record"
)

// Issue is a single schema violation: the value at Path was expected to be
// of type Expected but was Received.
type Issue struct {
	Path     []string
	Expected string
	Received string
}

func (i *Issue) Error() string {
	msg := fmt.Sprintf("Invalid input: expected %s, received %s", i.Expected, i.Received)
	if len(i.Path) == 0 {
		return msg
	}
	return fmt.Sprintf(`%s at "%s"`, msg, joinPath(i.Path))
}

// ValidationError carries every Issue found in a metadata document. Its
// message lists all of them, joined by IssueSeparator.
type ValidationError struct {
	errs *multierror.Error
}

func (e *ValidationError) Error() string {
	return e.errs.Error()
}

// Unwrap exposes the underlying multierror so errors.As can reach single issues.
func (e *ValidationError) Unwrap() error {
	return e.errs
}

// Issues returns the collected violations in the order they were found.
func (e *ValidationError) Issues() []*Issue {
	issues := make([]*Issue, 0, len(e.errs.Errors))
	for _, err := range e.errs.Errors {
		var issue *Issue
		if errors.As(err, &issue) {
			issues = append(issues, issue)
		}
	}
	return issues
}

func formatIssues(errs []error) string {
	msgs := make([]string, len(errs))
	for i, err := range errs {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, IssueSeparator)
}

// joinPath renders a field path the way users read it: dotted identifiers,
// with bracket notation for keys that are not identifier-like.
func joinPath(path []string) string {
	if len(path) == 1 {
		return path[0]
	}

	var b strings.Builder
	for _, p := range path {
		switch {
		case strings.Contains(p, `"`):
			b.WriteString(`["` + strings.ReplaceAll(p, `"`, `\"`) + `"]`)
		case !hasIdentifierStart(p):
			b.WriteString(`["` + p + `"]`)
		default:
			if b.Len() > 0 {
				b.WriteByte('.')
			}
			b.WriteString(p)
		}
	}
	return b.String()
}

func hasIdentifierStart(s string) bool {
	for _, r := range s {
		if r == '$' || r == '_' || unicode.IsLetter(r) || unicode.Is(unicode.Nl, r) {
			return true
		}
	}
	return false
}

// validator walks a YAML node tree against the action schema. It never stops
// at the first violation; every problem is appended to issues.
type validator struct {
	issues *multierror.Error
}

func (v *validator) report(path []string, expected string, node *yaml.Node) {
	v.issues = multierror.Append(v.issues, &Issue{
		Path:     path,
		Expected: expected,
		Received: typeOf(node),
	})
}

func (v *validator) err() error {
	if v.issues == nil {
		return nil
	}
	v.issues.ErrorFormat = formatIssues
	return &ValidationError{errs: v.issues}
}

func (v *validator) action(root *yaml.Node) *Action {
	if typeOf(root) != typeObject {
		v.report(nil, typeObject, root)
		return nil
	}
	root = resolve(root)

	a := &Action{}
	if s := v.str(root, nil, "name", true); s != nil {
		a.Name = *s
	}
	a.Author = v.str(root, nil, "author", false)
	if s := v.str(root, nil, "description", true); s != nil {
		a.Description = *s
	}
	a.Inputs = v.inputs(root)
	a.Outputs = v.outputs(root)
	a.Branding = v.branding(root)
	return a
}

func (v *validator) inputs(root *yaml.Node) []Input {
	entries, ok := v.record(root, "inputs")
	if !ok {
		return nil
	}

	inputs := make([]Input, 0, len(entries))
	for _, e := range entries {
		path := []string{"inputs", e.id}
		if typeOf(e.node) != typeObject {
			v.report(path, typeObject, e.node)
			continue
		}
		node := resolve(e.node)

		in := Input{ID: e.id}
		if s := v.str(node, path, "description", true); s != nil {
			in.Description = *s
		}
		if b := v.boolean(node, path, "required"); b != nil {
			in.Required = *b
		}
		in.Default = v.str(node, path, "default", false)
		in.DeprecationMessage = v.str(node, path, "deprecationMessage", false)
		inputs = append(inputs, in)
	}
	return inputs
}

func (v *validator) outputs(root *yaml.Node) []Output {
	entries, ok := v.record(root, "outputs")
	if !ok {
		return nil
	}

	outputs := make([]Output, 0, len(entries))
	for _, e := range entries {
		path := []string{"outputs", e.id}
		if typeOf(e.node) != typeObject {
			v.report(path, typeObject, e.node)
			continue
		}

		out := Output{ID: e.id}
		if s := v.str(resolve(e.node), path, "description", true); s != nil {
			out.Description = *s
		}
		outputs = append(outputs, out)
	}
	return outputs
}

func (v *validator) branding(root *yaml.Node) *Branding {
	node := lookup(root, "branding")
	if node == nil {
		return nil
	}
	path := []string{"branding"}
	if typeOf(node) != typeObject {
		v.report(path, typeObject, node)
		return nil
	}
	node = resolve(node)

	return &Branding{
		Color: v.str(node, path, "color", false),
		Icon:  v.str(node, path, "icon", false),
	}
}

type recordEntry struct {
	id   string
	node *yaml.Node
}

// record returns the entries of an optional string-keyed mapping. ok is false
// when the key is absent or holds something other than a mapping.
func (v *validator) record(root *yaml.Node, key string) ([]recordEntry, bool) {
	node := lookup(root, key)
	if node == nil {
		return nil, false
	}
	if typeOf(node) != typeObject {
		v.report([]string{key}, typeRecord, node)
		return nil, false
	}
	node = resolve(node)

	entries := make([]recordEntry, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		entries = append(entries, recordEntry{id: node.Content[i].Value, node: node.Content[i+1]})
	}
	return entries, true
}

func (v *validator) str(m *yaml.Node, path []string, key string, required bool) *string {
	node := lookup(m, key)
	if node == nil && !required {
		return nil
	}
	if typeOf(node) != typeString {
		v.report(childPath(path, key), typeString, node)
		return nil
	}
	s := resolve(node).Value
	return &s
}

func (v *validator) boolean(m *yaml.Node, path []string, key string) *bool {
	node := lookup(m, key)
	if node == nil {
		return nil
	}
	var b bool
	if typeOf(node) != typeBoolean || resolve(node).Decode(&b) != nil {
		v.report(childPath(path, key), typeBoolean, node)
		return nil
	}
	return &b
}

func childPath(path []string, key string) []string {
	p := make([]string, 0, len(path)+1)
	p = append(p, path...)
	return append(p, key)
}

// lookup returns the value node for key in a mapping node, or nil.
func lookup(m *yaml.Node, key string) *yaml.Node {
	if m == nil || m.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			return m.Content[i+1]
		}
	}
	return nil
}

// resolve follows aliases and unwraps document nodes.
func resolve(n *yaml.Node) *yaml.Node {
	for n != nil {
		switch {
		case n.Kind == yaml.AliasNode:
			n = n.Alias
		case n.Kind == yaml.DocumentNode && len(n.Content) > 0:
			n = n.Content[0]
		default:
			return n
		}
	}
	return nil
}

// typeOf names the type a node decodes to.
func typeOf(n *yaml.Node) string {
	n = resolve(n)
	if n == nil {
		return typeUndefined
	}

	switch n.Kind {
	case yaml.MappingNode:
		return typeObject
	case yaml.SequenceNode:
		return typeArray
	case yaml.ScalarNode:
		switch n.ShortTag() {
		case "!!null":
			return typeNull
		case "!!bool":
			return typeBoolean
		case "!!int", "!!float":
			return typeNumber
		default:
			return typeString
		}
	default:
		return typeUndefined
	}
}
