// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used by drawlang for structured error
//              classification in logs and CLI exit handling.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2025-03-02 v0.2.0: Replaced platform codes with drawlang codes

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"
	CodeCanceled     Code = "CANCELED"

	// Drawing language
	CodeDrawSyntax     Code = "DRAW_SYNTAX"
	CodeDrawMalformed  Code = "DRAW_MALFORMED_TREE"
	CodeStreamTooLarge Code = "DRAW_STREAM_TOO_LARGE"

	// Token stream documents
	CodeInvalidFormat Code = "INVALID_FORMAT"
	CodeUnsupported   Code = "UNSUPPORTED_FORMAT"

	// Configuration and environment
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeInvalidConfig Code = "INVALID_CONFIG"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput, CodeCanceled,
		CodeDrawSyntax, CodeDrawMalformed, CodeStreamTooLarge,
		CodeInvalidFormat, CodeUnsupported,
		CodeConfigError, CodeInvalidConfig:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeDrawSyntax, CodeDrawMalformed, CodeStreamTooLarge:
		return "drawlang"
	case CodeInvalidFormat, CodeUnsupported:
		return "stream"
	case CodeConfigError, CodeInvalidConfig:
		return "configuration"
	default:
		return "generic"
	}
}

// ExitCode maps the error code to a process exit status for the CLI
func (c Code) ExitCode() int {
	switch c {
	case CodeDrawSyntax, CodeDrawMalformed:
		return 1
	case CodeInvalidFormat, CodeUnsupported, CodeStreamTooLarge, CodeInvalidInput, CodeNotFound:
		return 2
	case CodeConfigError, CodeInvalidConfig:
		return 3
	case CodeCanceled:
		return 130
	default:
		return 1
	}
}
