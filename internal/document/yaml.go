package document

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dshills/arbor/internal/engine/tree"
)

// Errors returned by the YAML loader.
var (
	ErrEmptyDocument     = errors.New("document: empty document")
	ErrMappingNotAllowed = errors.New("document: mappings are not allowed")
	ErrUnsupportedNode   = errors.New("document: unsupported YAML node")
)

// Limits on a decoded seed document. Aliases expand into fresh nodes, so
// maxNodes bounds the expanded tree, not the source text.
const (
	maxDepth = 256
	maxNodes = 100_000
)

// LoadYAML decodes a YAML document into a detached root node.
//
// Sequences become collections and scalars become tokens holding the
// scalar's literal value. Aliases are resolved. Mappings are rejected.
func LoadYAML(r io.Reader) (*tree.Node, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyDocument
		}
		return nil, fmt.Errorf("document: decode yaml: %w", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, ErrEmptyDocument
	}
	budget := maxNodes
	return fromYAML(doc.Content[0], 0, &budget)
}

// LoadYAMLFile reads a YAML seed document from path.
func LoadYAMLFile(path string) (*tree.Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("document: %w", err)
	}
	defer f.Close()

	root, err := LoadYAML(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return root, nil
}

// fromYAML converts n, charging every node it creates to budget.
func fromYAML(n *yaml.Node, depth int, budget *int) (*tree.Node, error) {
	if depth > maxDepth {
		return nil, fmt.Errorf("%w: nesting deeper than %d at line %d", ErrUnsupportedNode, maxDepth, n.Line)
	}
	if n.Kind == yaml.ScalarNode || n.Kind == yaml.SequenceNode {
		if *budget <= 0 {
			return nil, fmt.Errorf("%w: document too large (more than %d nodes) at line %d", ErrUnsupportedNode, maxNodes, n.Line)
		}
		*budget--
	}
	switch n.Kind {
	case yaml.ScalarNode:
		return tree.NewToken(n.Value), nil
	case yaml.SequenceNode:
		children := make([]*tree.Node, 0, len(n.Content))
		for _, item := range n.Content {
			child, err := fromYAML(item, depth+1, budget)
			if err != nil {
				return nil, err
			}
			children = append(children, child)
		}
		return tree.NewCollection(children...), nil
	case yaml.AliasNode:
		if n.Alias == nil {
			return nil, fmt.Errorf("%w: dangling alias at line %d", ErrUnsupportedNode, n.Line)
		}
		return fromYAML(n.Alias, depth+1, budget)
	case yaml.MappingNode:
		return nil, fmt.Errorf("%w: line %d", ErrMappingNotAllowed, n.Line)
	default:
		return nil, fmt.Errorf("%w: kind %d at line %d", ErrUnsupportedNode, n.Kind, n.Line)
	}
}
