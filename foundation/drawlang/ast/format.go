// File: format.go
// Title: AST Tree Printer
// Description: Multi-line indented rendering of a tree with box-drawing
//              connectors. Labels can be customised so the terminal UI can
//              style them.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial tree printer

package ast

import (
	"io"
	"strings"
)

// LabelFunc renders the text shown for a single node
type LabelFunc func(n *Node) string

// Printer renders trees as indented text
type Printer struct {
	// Label renders a node; defaults to (*Node).Label
	Label LabelFunc
	// Connector styles the tree branches; defaults to identity
	Connector func(s string) string
}

// Format renders root with the default printer
func Format(root *Node) string {
	var sb strings.Builder
	(&Printer{}).Fprint(&sb, root)
	return sb.String()
}

// Fprint writes the tree to w, one node per line
func (p *Printer) Fprint(w io.Writer, root *Node) {
	if root == nil {
		return
	}
	io.WriteString(w, p.label(root)+"\n")
	p.children(w, root, "", map[*Node]struct{}{root: {}})
}

func (p *Printer) children(w io.Writer, n *Node, prefix string, visited map[*Node]struct{}) {
	for i, child := range n.Children {
		last := i == len(n.Children)-1
		branch, indent := "├── ", "│   "
		if last {
			branch, indent = "└── ", "    "
		}
		if child == nil {
			continue
		}

		line := p.connector(prefix+branch) + p.label(child)
		if _, seen := visited[child]; seen {
			io.WriteString(w, line+" …\n")
			continue
		}
		visited[child] = struct{}{}

		io.WriteString(w, line+"\n")
		p.children(w, child, prefix+indent, visited)
	}
}

func (p *Printer) label(n *Node) string {
	if p.Label != nil {
		return p.Label(n)
	}
	return n.Label()
}

func (p *Printer) connector(s string) string {
	if p.Connector != nil {
		return p.Connector(s)
	}
	return s
}
