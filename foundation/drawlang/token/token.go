// File: token.go
// Title: Drawing Language Tokens
// Description: Defines the token kinds and the immutable Token value handed
//              to the parser by an external lexer.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial token definitions

package token

import (
	"fmt"
	"strings"
)

// Kind classifies a token
type Kind int

const (
	Keyword       Kind = iota // draw, grid, write
	Identifier                // x, label
	Number                    // 2, 10
	Operator                  // +
	SpecialSymbol             // ( ) , ;
)

var kindNames = [...]string{
	Keyword:       "Keyword",
	Identifier:    "Identifier",
	Number:        "Number",
	Operator:      "Operator",
	SpecialSymbol: "SpecialSymbol",
}

// Keywords and symbols the grammar refers to
const (
	KwDraw  = "draw"
	KwGrid  = "grid"
	KwWrite = "write"

	LParen    = "("
	RParen    = ")"
	Comma     = ","
	Semicolon = ";"
	Plus      = "+"
)

// String returns the canonical kind name
func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Kinds returns all valid kinds in declaration order
func Kinds() []Kind {
	return []Kind{Keyword, Identifier, Number, Operator, SpecialSymbol}
}

// ParseKind maps a kind name back to its Kind. Matching ignores case.
func ParseKind(name string) (Kind, error) {
	trimmed := strings.TrimSpace(name)
	for i, n := range kindNames {
		if strings.EqualFold(n, trimmed) {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("unknown token kind %q", name)
}

// Token is an immutable (kind, text) pair
type Token struct {
	Kind Kind
	Text string
}

// New creates a token
func New(kind Kind, text string) Token {
	return Token{Kind: kind, Text: text}
}

// String renders the token as Kind(text)
func (t Token) String() string {
	return fmt.Sprintf("%s(%s)", t.Kind, t.Text)
}

// Is reports whether the token has the given kind and text
func (t Token) Is(kind Kind, text string) bool {
	return t.Kind == kind && t.Text == text
}
