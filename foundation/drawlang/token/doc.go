// Package token defines the lexical tokens of the drawing language.
//
// A token stream is produced by an external lexer and consumed strictly left
// to right by package parser. Tokens are plain values; nothing in this module
// mutates or reorders them.
package token
