// File: errors.go
// Title: Parser Syntax Errors
// Description: Defines SyntaxError, the only error the parser returns, and
//              its conversion to the structured error type.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial syntax error type

package parser

import (
	"fmt"

	mdwerror "github.com/msto63/drawlang/foundation/core/error"
	"github.com/msto63/drawlang/foundation/drawlang/token"
)

// SyntaxError reports the first grammar violation of a parse
type SyntaxError struct {
	// Expected is set when a specific token kind was required
	Expected *token.Kind
	// Token is the offending token; nil means end of input
	Token *token.Token
	// Position is the cursor index at which the violation was found
	Position int
	// Message describes the violation
	Message string
}

// Error implements the error interface
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at token %d: %s", e.Position, e.Message)
}

// AtEnd reports whether the parse ran out of tokens
func (e *SyntaxError) AtEnd() bool {
	return e.Token == nil
}

// Found renders the offending token, or "end of input"
func (e *SyntaxError) Found() string {
	return describe(e.Token)
}

// AsError converts the syntax error to a DRAW_SYNTAX structured error that
// still unwraps to e.
func (e *SyntaxError) AsError() *mdwerror.Error {
	err := mdwerror.Wrap(e, "program rejected").
		WithCode(mdwerror.CodeDrawSyntax).
		WithOperation("parser.ParseProgram").
		WithDetail("position", e.Position).
		WithDetail("found", e.Found())
	if e.Expected != nil {
		err = err.WithDetail("expected", e.Expected.String())
	}
	return err
}

func describe(tok *token.Token) string {
	if tok == nil {
		return "end of input"
	}
	return tok.String()
}
