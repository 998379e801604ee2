// File: validate.go
// Title: AST Shape Validation
// Description: Checks a parsed tree against the shape rules of the grammar.
//              A violation means the tree was built incorrectly, not that
//              the input was bad.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial validation rules

package ast

import (
	mdwerror "github.com/msto63/drawlang/foundation/core/error"
)

// Validate returns a DRAW_MALFORMED_TREE error describing the first shape
// violation found, or nil.
func Validate(root *Node) error {
	if root == nil {
		return malformed(nil, "tree is nil")
	}
	if HasCycle(root) {
		return malformed(root, "tree contains a cycle")
	}

	var firstErr error
	Inspect(root, func(n *Node) bool {
		if firstErr != nil {
			return false
		}
		firstErr = validateNode(n)
		return firstErr == nil
	})
	return firstErr
}

func validateNode(n *Node) error {
	if !n.Type.IsValid() {
		return malformed(n, "unknown node type")
	}
	for _, child := range n.Children {
		if child == nil {
			return malformed(n, "nil child")
		}
	}

	switch n.Type {
	case Identifier, Number:
		if len(n.Children) != 0 {
			return malformed(n, "leaf node has children")
		}
		if n.Text() == "" {
			return malformed(n, "leaf node has no text")
		}

	case Expression:
		if len(n.Children) != 2 {
			return malformed(n, "expression must have exactly two operands")
		}
		if n.Text() == "" {
			return malformed(n, "expression has no operator")
		}

	case Draw, WriteStatement:
		if len(n.Children) != 1 {
			return malformed(n, "statement must have exactly one child")
		}

	case GridStatement:
		if len(n.Children) != 1 || n.Children[0].Type != GridContent {
			return malformed(n, "grid statement must have one GridContent child")
		}
		if _, ok := n.GridSize(); !ok {
			return malformed(n, "grid statement has no size")
		}

	case GridContent:
		for _, child := range n.Children {
			if child.Type != Draw && child.Type != WriteStatement {
				return malformed(n, "grid content may only hold draw and write statements")
			}
		}
	}
	return nil
}

func malformed(n *Node, msg string) error {
	err := mdwerror.New(msg).
		WithCode(mdwerror.CodeDrawMalformed).
		WithOperation("ast.Validate")
	if n != nil {
		err = err.WithDetail("node", n.Label())
	}
	return err
}
