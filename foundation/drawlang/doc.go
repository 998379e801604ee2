// File: doc.go
// Title: Drawing Language Package Documentation
// Description: Package overview for the drawlang engine.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial engine

/*
Package drawlang parses token streams of a small drawing language.

Subpackages:
  - token:  token kinds and the Token value
  - ast:    the syntax tree, rendering, traversal and validation
  - parser: the recursive descent parser
  - stream: YAML, JSON and TOML token stream documents

The Engine in this package combines them:

	engine, err := drawlang.New(drawlang.Options{Logger: logger})
	res, err := engine.ParseFile(ctx, "scene.yaml")
	fmt.Println(res.Root)

Syntax errors are returned as *mdwerror.Error values with code DRAW_SYNTAX
that unwrap to *parser.SyntaxError.
*/
package drawlang
