package action

import (
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Parse decodes raw action metadata and validates it against the action
// schema. Malformed YAML is returned as-is from the YAML decoder; schema
// violations are returned together as a *ValidationError.
func Parse(data []byte) (*Action, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.WithStack(err)
	}

	root := documentRoot(&doc)
	if err := checkDuplicateKeys(root); err != nil {
		return nil, err
	}

	v := &validator{}
	a := v.action(root)
	if err := v.err(); err != nil {
		return nil, err
	}
	return a, nil
}

// documentRoot returns the top-level value of a decoded document. An empty
// document decodes to null.
func documentRoot(doc *yaml.Node) *yaml.Node {
	if doc.Kind == yaml.DocumentNode && len(doc.Content) > 0 {
		return doc.Content[0]
	}
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null"}
}

// checkDuplicateKeys rejects mappings that declare the same key twice, since
// input and output ids must be unique.
func checkDuplicateKeys(n *yaml.Node) error {
	if n == nil {
		return nil
	}

	if n.Kind == yaml.MappingNode {
		seen := make(map[string]int, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			key := n.Content[i]
			if line, ok := seen[key.Value]; ok {
				return errors.Errorf("yaml: line %d: mapping key %q already defined at line %d", key.Line, key.Value, line)
			}
			seen[key.Value] = key.Line
		}
	}

	for _, c := range n.Content {
		if err := checkDuplicateKeys(c); err != nil {
			return err
		}
	}
	return nil
}
