// Package stream reads and writes token stream documents.
//
// The lexer of the drawing language is an external program; its output is
// exchanged with this module as a YAML, JSON or TOML document:
//
//	tokens:
//	  - [Keyword, draw]
//	  - [SpecialSymbol, "("]
//	  - {kind: Identifier, text: x}
//	  - [SpecialSymbol, ")"]
//
// In TOML the list is an array of tables:
//
//	[[tokens]]
//	kind = "Keyword"
//	text = "draw"
//
// Kind names are matched case-insensitively. Decoding errors carry the
// INVALID_FORMAT code and, for per-token problems, the token index.
package stream
