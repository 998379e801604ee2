package tui

import (
	"io"
	"strings"

	"github.com/msto63/drawlang/foundation/drawlang/ast"
)

// NewTreePrinter returns an ast.Printer. With color set, node types,
// values and branches are styled with lipgloss.
func NewTreePrinter(color bool) *ast.Printer {
	if !color {
		return &ast.Printer{}
	}
	return &ast.Printer{
		Label:     styledLabel,
		Connector: func(s string) string { return ConnectorStyle.Render(s) },
	}
}

func styledLabel(n *ast.Node) string {
	typeStyle := NodeTypeStyle
	switch n.Type {
	case ast.Draw, ast.WriteStatement, ast.GridStatement:
		typeStyle = StatementTypeStyle
	}

	value := NodeValueStyle.Render(n.ValueString())
	if n.Value == nil {
		value = AbsentValueStyle.Render(n.ValueString())
	}
	return typeStyle.Render(string(n.Type)) + "(" + value + ")"
}

// RenderTree renders root as an indented tree
func RenderTree(root *ast.Node, color bool) string {
	var sb strings.Builder
	NewTreePrinter(color).Fprint(&sb, root)
	return sb.String()
}

// FprintTree writes the rendered tree to w
func FprintTree(w io.Writer, root *ast.Node, color bool) {
	NewTreePrinter(color).Fprint(w, root)
}
