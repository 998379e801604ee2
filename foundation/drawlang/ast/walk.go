// File: walk.go
// Title: AST Traversal and Metrics
// Description: Depth-first traversal with a visitor, structural equality
//              and the tree metrics reported by the engine and CLI.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial traversal utilities

package ast

// Visitor is called for each node by Walk. If Visit returns nil the
// children of that node are skipped; otherwise they are walked with the
// returned visitor.
type Visitor interface {
	Visit(node *Node) Visitor
}

type inspector func(*Node) bool

func (f inspector) Visit(node *Node) Visitor {
	if f(node) {
		return f
	}
	return nil
}

// Walk traverses the tree rooted at node in depth-first pre-order. Every
// node is visited at most once.
func Walk(node *Node, v Visitor) {
	walk(node, v, make(map[*Node]struct{}))
}

func walk(node *Node, v Visitor, visited map[*Node]struct{}) {
	if node == nil || v == nil {
		return
	}
	if _, seen := visited[node]; seen {
		return
	}
	visited[node] = struct{}{}

	w := v.Visit(node)
	if w == nil {
		return
	}
	for _, child := range node.Children {
		walk(child, w, visited)
	}
}

// Inspect walks the tree calling f for each node. Children are skipped
// when f returns false.
func Inspect(node *Node, f func(*Node) bool) {
	Walk(node, inspector(f))
}

// Count returns the number of distinct nodes in the tree
func Count(root *Node) int {
	n := 0
	Inspect(root, func(*Node) bool {
		n++
		return true
	})
	return n
}

// Depth returns the number of nodes on the longest root-to-leaf path.
// A single node has depth 1, a nil tree depth 0.
func Depth(root *Node) int {
	return depth(root, make(map[*Node]struct{}))
}

func depth(node *Node, onPath map[*Node]struct{}) int {
	if node == nil {
		return 0
	}
	if _, cycle := onPath[node]; cycle {
		return 0
	}
	onPath[node] = struct{}{}
	defer delete(onPath, node)

	deepest := 0
	for _, child := range node.Children {
		if d := depth(child, onPath); d > deepest {
			deepest = d
		}
	}
	return deepest + 1
}

// HasCycle reports whether any node is reachable from itself
func HasCycle(root *Node) bool {
	const (
		active = 1
		done   = 2
	)
	state := make(map[*Node]int)

	var visit func(*Node) bool
	visit = func(n *Node) bool {
		if n == nil {
			return false
		}
		switch state[n] {
		case active:
			return true
		case done:
			return false
		}
		state[n] = active
		for _, child := range n.Children {
			if visit(child) {
				return true
			}
		}
		state[n] = done
		return false
	}
	return visit(root)
}

// Equal reports whether a and b have the same type, value and children,
// recursively. Shared or cyclic structure is compared by shape only once
// per node pair.
func Equal(a, b *Node) bool {
	return equal(a, b, make(map[[2]*Node]struct{}))
}

func equal(a, b *Node, seen map[[2]*Node]struct{}) bool {
	if a == nil || b == nil {
		return a == b
	}
	pair := [2]*Node{a, b}
	if _, ok := seen[pair]; ok {
		return true
	}
	seen[pair] = struct{}{}

	if a.Type != b.Type || !valueEqual(a.Value, b.Value) || len(a.Children) != len(b.Children) {
		return false
	}
	for i := range a.Children {
		if !equal(a.Children[i], b.Children[i], seen) {
			return false
		}
	}
	return true
}

func valueEqual(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a == b
}
