// File: marshal.go
// Title: AST Serialization
// Description: JSON and YAML encoding of trees as
//              {type, value, children} documents. GridSize values encode as
//              {rows, cols}, text values as strings, absent values as null.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial JSON and YAML support

package ast

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

type gridWire struct {
	Rows int `json:"rows" yaml:"rows"`
	Cols int `json:"cols" yaml:"cols"`
}

type nodeWire struct {
	Type     Type        `json:"type" yaml:"type"`
	Value    interface{} `json:"value" yaml:"value"`
	Children []*Node     `json:"children" yaml:"children"`
}

func (n *Node) wire() nodeWire {
	w := nodeWire{Type: n.Type, Children: n.Children}
	if w.Children == nil {
		w.Children = []*Node{}
	}
	switch v := n.Value.(type) {
	case Text:
		w.Value = string(v)
	case GridSize:
		w.Value = gridWire{Rows: v.Rows, Cols: v.Cols}
	}
	return w
}

// MarshalJSON encodes the subtree. The tree must be acyclic.
func (n *Node) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.wire())
}

// UnmarshalJSON decodes a subtree written by MarshalJSON
func (n *Node) UnmarshalJSON(data []byte) error {
	var raw struct {
		Type     Type            `json:"type"`
		Value    json.RawMessage `json:"value"`
		Children []*Node         `json:"children"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	value, err := decodeJSONValue(raw.Value)
	if err != nil {
		return fmt.Errorf("node %s: %w", raw.Type, err)
	}

	n.Type = raw.Type
	n.Value = value
	n.Children = raw.Children
	return nil
}

func decodeJSONValue(raw json.RawMessage) (Value, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}

	switch trimmed[0] {
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return nil, err
		}
		return Text(s), nil
	case '{':
		var g gridWire
		if err := json.Unmarshal(trimmed, &g); err != nil {
			return nil, err
		}
		return GridSize{Rows: g.Rows, Cols: g.Cols}, nil
	default:
		var num json.Number
		if err := json.Unmarshal(trimmed, &num); err != nil {
			return nil, fmt.Errorf("unsupported value %s", trimmed)
		}
		return Text(num.String()), nil
	}
}

// MarshalYAML encodes the subtree. The tree must be acyclic.
func (n *Node) MarshalYAML() (interface{}, error) {
	return n.wire(), nil
}

// UnmarshalYAML decodes a subtree written by MarshalYAML
func (n *Node) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		Type     Type      `yaml:"type"`
		Value    yaml.Node `yaml:"value"`
		Children []*Node   `yaml:"children"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}

	var v Value
	switch raw.Value.Kind {
	case 0:
	case yaml.ScalarNode:
		if raw.Value.Tag != "!!null" {
			v = Text(raw.Value.Value)
		}
	case yaml.MappingNode:
		var g gridWire
		if err := raw.Value.Decode(&g); err != nil {
			return fmt.Errorf("node %s: %w", raw.Type, err)
		}
		v = GridSize{Rows: g.Rows, Cols: g.Cols}
	default:
		return fmt.Errorf("node %s: unsupported value at line %d", raw.Type, raw.Value.Line)
	}

	n.Type = raw.Type
	n.Value = v
	n.Children = raw.Children
	return nil
}
