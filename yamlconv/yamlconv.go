// Package yamlconv converts between YAML text and ir trees, for
// callers that keep JSON documents but exchange YAML at the edges.
package yamlconv

import (
	"fmt"

	jdoc "github.com/jdoc-format/go-jdoc"
	"github.com/jdoc-format/go-jdoc/ir"

	"github.com/goccy/go-yaml"
)

// Decode parses YAML text into a tree. Mappings must have string
// keys; anything else is rejected.
func Decode(d []byte) (*ir.Node, error) {
	var v any
	if err := yaml.Unmarshal(d, &v); err != nil {
		return nil, fmt.Errorf("decoding yaml: %w", err)
	}
	node, err := jdoc.FromAny(v)
	if err != nil {
		return nil, fmt.Errorf("converting yaml: %w", err)
	}
	return node, nil
}

// Encode renders a tree as YAML text.
func Encode(node *ir.Node) ([]byte, error) {
	d, err := yaml.Marshal(jdoc.ToAny(node))
	if err != nil {
		return nil, fmt.Errorf("encoding yaml: %w", err)
	}
	return d, nil
}
