// Package error provides structured error handling for drawlang.
//
// Package: error
// Title: drawlang Error Handling
// Description: Structured errors with codes, severity, details and the
//              failing operation. Used for token stream decoding, config
//              loading and engine failures; syntax errors raised by the
//              parser are wrapped into this type by the engine.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2025-03-02 v0.2.0: drawlang code set
//
// Usage:
//
//	import mdwerror "github.com/msto63/drawlang/foundation/core/error"
//
//	err := mdwerror.New("unknown token kind").
//		WithCode(mdwerror.CodeInvalidFormat).
//		WithOperation("stream.Decode").
//		WithDetail("index", 4)
//
//	if mdwerror.HasCode(err, mdwerror.CodeInvalidFormat) {
//		// report bad input
//	}
package error
