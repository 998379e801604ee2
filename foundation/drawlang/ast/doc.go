// File: doc.go
// Title: Drawing Language AST Package Documentation
// Description: Package overview for the syntax tree of the drawing language.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial AST implementation

/*
Package ast defines the syntax tree produced by package parser.

There is a single node type. Its Type tag says which construct it is, its
optional Value carries the payload (operator, literal text or grid size) and
its Children hold the sub-constructs in source order:

	Program
	├── Draw
	│   └── Identifier(x)
	└── GridStatement((2, 3))
	    └── GridContent
	        └── WriteStatement
	            └── Expression(+)
	                ├── Identifier(a)
	                └── Identifier(b)

Trees are plain ownership trees. Rendering and traversal tolerate shared or
cyclic structure by visiting each node once, but such trees are malformed
and rejected by Validate.
*/
package ast
