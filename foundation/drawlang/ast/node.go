// File: node.go
// Title: Drawing Language AST Node
// Description: Defines the single AST node type produced by the parser: a
//              type tag, an optional value and ordered owned children,
//              plus the cycle-safe one-line rendering used in diagnostics.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial node definition and rendering

package ast

import (
	"fmt"
	"strings"
)

// Type tags the construct a node represents
type Type string

const (
	Program        Type = "Program"
	Draw           Type = "Draw"
	WriteStatement Type = "WriteStatement"
	GridStatement  Type = "GridStatement"
	GridContent    Type = "GridContent"
	Expression     Type = "Expression"
	Identifier     Type = "Identifier"
	Number         Type = "Number"
)

// Types returns every node type in grammar order
func Types() []Type {
	return []Type{Program, Draw, WriteStatement, GridStatement, GridContent, Expression, Identifier, Number}
}

// IsValid reports whether t is a known node type
func (t Type) IsValid() bool {
	for _, known := range Types() {
		if t == known {
			return true
		}
	}
	return false
}

// IsLeaf reports whether nodes of this type never have children
func (t Type) IsLeaf() bool {
	return t == Identifier || t == Number
}

// Value is the optional payload of a node. A nil Value means absent.
type Value interface {
	String() string
	isValue()
}

// Text is a string payload: operator symbol or literal text
type Text string

func (t Text) String() string { return string(t) }
func (Text) isValue()         {}

// GridSize is the (rows, cols) payload of a GridStatement
type GridSize struct {
	Rows int
	Cols int
}

func (g GridSize) String() string { return fmt.Sprintf("(%d, %d)", g.Rows, g.Cols) }
func (GridSize) isValue()         {}

// Node is one element of the syntax tree. A node owns its children; the
// tree is acyclic and each node has exactly one parent.
type Node struct {
	Type     Type
	Value    Value
	Children []*Node
}

// New creates a node without children. value may be nil.
func New(typ Type, value Value) *Node {
	return &Node{Type: typ, Value: value}
}

// NewText creates a node with a Text payload
func NewText(typ Type, text string) *Node {
	return New(typ, Text(text))
}

// AddChild appends child. The caller must not add a node that already has
// a parent.
func (n *Node) AddChild(child *Node) {
	n.Children = append(n.Children, child)
}

// Child returns the i-th child or nil when out of range
func (n *Node) Child(i int) *Node {
	if i < 0 || i >= len(n.Children) {
		return nil
	}
	return n.Children[i]
}

// Text returns the string payload, or "" if the value is not Text
func (n *Node) Text() string {
	if t, ok := n.Value.(Text); ok {
		return string(t)
	}
	return ""
}

// GridSize returns the grid payload and whether the node carries one
func (n *Node) GridSize() (GridSize, bool) {
	g, ok := n.Value.(GridSize)
	return g, ok
}

// ValueString renders the payload, "None" when absent
func (n *Node) ValueString() string {
	if n.Value == nil {
		return "None"
	}
	return n.Value.String()
}

// Label renders the short form Type(value)
func (n *Node) Label() string {
	return fmt.Sprintf("%s(%s)", n.Type, n.ValueString())
}

// String renders the subtree on one line as Type(value): [child, ...].
// A node met twice in one rendering prints only its label, so the output
// stays finite even if the tree invariant was broken.
func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}
	var sb strings.Builder
	n.render(&sb, make(map[*Node]struct{}))
	return sb.String()
}

func (n *Node) render(sb *strings.Builder, visited map[*Node]struct{}) {
	if _, seen := visited[n]; seen {
		sb.WriteString(n.Label())
		return
	}
	visited[n] = struct{}{}

	sb.WriteString(n.Label())
	sb.WriteString(": [")
	for i, child := range n.Children {
		if i > 0 {
			sb.WriteString(", ")
		}
		if child == nil {
			sb.WriteString("<nil>")
			continue
		}
		child.render(sb, visited)
	}
	sb.WriteString("]")
}
