// File: doc.go
// Title: Drawing Language Parser Package Documentation
// Description: Package overview and grammar of the drawing language.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial parser implementation

/*
Package parser turns a token stream into an ast.Node tree.

Grammar:

	Program        := Statement*
	Statement      := DrawStatement | WriteStatement | GridStatement
	                | "(" Expression | ";"
	DrawStatement  := "draw" "(" Expression ")"
	WriteStatement := "write" "(" Expression ("+" Expression)* ")"
	GridStatement  := "grid" "(" Number "," Number "," GridContent ")"
	GridContent    := (DrawStatement | WriteStatement) ("," ...)*
	Expression     := Factor (Operator Factor)*
	Factor         := DrawStatement | Identifier | Number | "(" Expression ")"

Operators are left associative and share one precedence level. A statement
position holding a ";" produces no node.

The parser is fail-fast: the first violation is returned as a *SyntaxError
and no tree is produced. GridContent is the one lenient spot; it ends the
list at the first token that does not continue it and leaves that token to
the enclosing grid statement.
*/
package parser
