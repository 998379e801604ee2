// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors. The logger maps severity
//              to log level when it records a structured error.
// Author: msto63
// Version: v0.1.1
// Created: 2025-01-24
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with severity levels
// - 2025-03-02 v0.1.1: Severity mapping for drawlang codes

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow is a problem with the user's input (bad token stream,
	// syntax error). The program itself is fine.
	SeverityLow Severity = iota

	// SeverityMedium is the default for errors without a known code
	SeverityMedium

	// SeverityHigh is an environment or configuration problem
	SeverityHigh

	// SeverityCritical is a broken internal invariant
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// ShouldAlert returns true if this severity level should trigger alerts
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeDrawMalformed, CodeInternal:
		return SeverityCritical

	case CodeConfigError, CodeInvalidConfig:
		return SeverityHigh

	case CodeDrawSyntax, CodeInvalidInput, CodeInvalidFormat, CodeUnsupported,
		CodeNotFound, CodeStreamTooLarge, CodeCanceled:
		return SeverityLow

	default:
		return SeverityMedium
	}
}
