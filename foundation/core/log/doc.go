// Package log provides structured logging for drawlang.
//
// Package: log
// Title: Structured Logging
// Description: Leveled, structured logging with immutable context (request
//              id, logger name, fields), JSON/text/console formatters,
//              operation timers and severity-aware logging of structured
//              errors.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2025-03-02 v0.2.0: Reduced to synchronous output for the drawlang tools
//
// Usage:
//
//	logger := log.NewWithConfig(log.Config{
//		Level:  log.LevelDebug,
//		Format: log.FormatJSON,
//		Name:   "engine",
//	})
//
//	reqLogger := logger.WithRequestID(id)
//	reqLogger.Info("parse started", log.Fields{"tokens": len(tokens)})
//
//	timer := reqLogger.StartTimer("parse")
//	defer timer.Stop()
//
// Loggers are safe for concurrent use. With* methods never modify the
// receiver, so a base logger can be shared and specialised per request.
package log
