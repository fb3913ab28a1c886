// Package loader decodes serialized QL and QLS syntax trees.
//
// The parser front-end hands its output over as YAML documents; this
// package turns them back into ast.Form and stylesheet.Stylesheet values.
// Node positions default to the position of the YAML node when the document
// carries no explicit line/column.
package loader

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// DecodeError reports a structurally invalid syntax tree document
type DecodeError struct {
	Line    int
	Column  int
	Message string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Column, e.Message)
}

func errorAt(n *yaml.Node, format string, args ...interface{}) error {
	return &DecodeError{Line: n.Line, Column: n.Column, Message: fmt.Sprintf(format, args...)}
}

// readDocument parses r into its top-level mapping node
func readDocument(r io.Reader, what string) (*yaml.Node, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%s: empty document", what)
		}
		return nil, fmt.Errorf("%s: parse: %w", what, err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, fmt.Errorf("%s: empty document", what)
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, errorAt(root, "%s must be a mapping", what)
	}
	return root, nil
}

func openFile(path, what string) (*os.File, error) {
	if path == "" {
		return nil, fmt.Errorf("%s: empty path", what)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%s: open %s: %w", what, path, err)
	}
	return f, nil
}

// mapping is a decoded YAML mapping that keeps the key nodes for error positions
type mapping struct {
	node   *yaml.Node
	values map[string]*yaml.Node
}

func asMapping(n *yaml.Node) (*mapping, error) {
	if n.Kind != yaml.MappingNode {
		return nil, errorAt(n, "expected a mapping")
	}
	m := &mapping{node: n, values: make(map[string]*yaml.Node, len(n.Content)/2)}
	for i := 0; i+1 < len(n.Content); i += 2 {
		key := n.Content[i]
		if _, dup := m.values[key.Value]; dup {
			return nil, errorAt(key, "duplicate key %q", key.Value)
		}
		m.values[key.Value] = n.Content[i+1]
	}
	return m, nil
}

func (m *mapping) has(key string) bool {
	_, ok := m.values[key]
	return ok
}

func (m *mapping) get(key string) (*yaml.Node, bool) {
	n, ok := m.values[key]
	return n, ok
}

func (m *mapping) require(key string) (*yaml.Node, error) {
	n, ok := m.values[key]
	if !ok {
		return nil, errorAt(m.node, "missing %q", key)
	}
	return n, nil
}

func (m *mapping) scalar(key string) (string, error) {
	n, err := m.require(key)
	if err != nil {
		return "", err
	}
	if n.Kind != yaml.ScalarNode {
		return "", errorAt(n, "%q must be a scalar", key)
	}
	return n.Value, nil
}

func (m *mapping) optionalScalar(key string) (string, error) {
	if !m.has(key) {
		return "", nil
	}
	return m.scalar(key)
}

// position returns the explicit line/column of the node, falling back to
// the YAML position of the mapping itself.
func (m *mapping) position() (int, int, error) {
	line, col := m.node.Line, m.node.Column
	if n, ok := m.get("line"); ok {
		v, err := strconv.Atoi(n.Value)
		if err != nil {
			return 0, 0, errorAt(n, "line must be an integer")
		}
		line = v
	}
	if n, ok := m.get("column"); ok {
		v, err := strconv.Atoi(n.Value)
		if err != nil {
			return 0, 0, errorAt(n, "column must be an integer")
		}
		col = v
	}
	return line, col, nil
}

func asSequence(n *yaml.Node, what string) ([]*yaml.Node, error) {
	if n.Kind != yaml.SequenceNode {
		return nil, errorAt(n, "%s must be a sequence", what)
	}
	return n.Content, nil
}
