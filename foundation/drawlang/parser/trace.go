// File: trace.go
// Title: Parser Trace Hook
// Description: Optional hook called on entry to every production. The parser
//              itself never writes output.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial tracer interface

package parser

import "github.com/msto63/drawlang/foundation/drawlang/token"

// Tracer observes production entries. tok is nil at end of input.
type Tracer interface {
	Enter(production string, pos int, tok *token.Token)
}

// TracerFunc adapts a function to the Tracer interface
type TracerFunc func(production string, pos int, tok *token.Token)

// Enter calls f
func (f TracerFunc) Enter(production string, pos int, tok *token.Token) {
	f(production, pos, tok)
}

type nopTracer struct{}

func (nopTracer) Enter(string, int, *token.Token) {}

// Option configures a Parser
type Option func(*Parser)

// WithTracer installs t as the production tracer. A nil t keeps the no-op
// tracer.
func WithTracer(t Tracer) Option {
	return func(p *Parser) {
		if t != nil {
			p.tracer = t
		}
	}
}
