// File: trace.go
// Title: Log-backed Parser Tracer
// Description: Adapts the parser trace hook to trace-level log lines.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial tracer

package drawlang

import (
	mdwlog "github.com/msto63/drawlang/foundation/core/log"
	mdwparser "github.com/msto63/drawlang/foundation/drawlang/parser"
	mdwtoken "github.com/msto63/drawlang/foundation/drawlang/token"
)

// NewLogTracer returns a parser tracer that logs each production entry
func NewLogTracer(logger *mdwlog.Logger) mdwparser.Tracer {
	return mdwparser.TracerFunc(func(production string, pos int, tok *mdwtoken.Token) {
		if !logger.IsLevelEnabled(mdwlog.LevelTrace) {
			return
		}
		found := "end of input"
		if tok != nil {
			found = tok.String()
		}
		logger.Trace("entering production", mdwlog.Fields{
			"production": production,
			"position":   pos,
			"token":      found,
		})
	})
}
