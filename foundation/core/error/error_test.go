// File: error_test.go
// Title: Error Module Tests
// Description: Tests for error creation, wrapping, codes, severity and
//              JSON encoding.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive test coverage
// - 2025-03-02 v0.2.0: Adjusted to the drawlang code set

package error

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	msg := "test error message"
	err := New(msg)

	if err == nil {
		t.Fatal("New() returned nil")
	}
	if err.Error() != msg {
		t.Errorf("Error() = %q, want %q", err.Error(), msg)
	}
	if err.Code() != CodeUnknown {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeUnknown)
	}
	if err.Severity() != SeverityMedium {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityMedium)
	}
	if err.Timestamp().IsZero() {
		t.Error("Timestamp() should not be zero")
	}
	if len(err.StackTrace()) == 0 {
		t.Error("StackTrace() should not be empty")
	}
}

func TestNewf(t *testing.T) {
	err := Newf("token %d: %s", 3, "bad")
	if err.Error() != "token 3: bad" {
		t.Errorf("Error() = %q, want %q", err.Error(), "token 3: bad")
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		message string
		wantNil bool
		wantMsg string
	}{
		{
			name:    "wrap nil error",
			err:     nil,
			message: "context",
			wantNil: true,
		},
		{
			name:    "wrap standard error",
			err:     errors.New("open tokens.yaml: no such file"),
			message: "failed to load stream",
			wantMsg: "failed to load stream: open tokens.yaml: no such file",
		},
		{
			name:    "wrap structured error",
			err:     New("unknown kind").WithCode(CodeInvalidFormat),
			message: "decode",
			wantMsg: "decode: unknown kind",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Wrap(tt.err, tt.message)
			if tt.wantNil {
				if got != nil {
					t.Errorf("Wrap() = %v, want nil", got)
				}
				return
			}
			if got.Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got.Error(), tt.wantMsg)
			}
			if !errors.Is(got, tt.err) {
				t.Error("errors.Is() should find the wrapped cause")
			}
		})
	}
}

func TestWrapInheritsCode(t *testing.T) {
	inner := New("bad token").WithCode(CodeInvalidFormat).WithDetail("index", 2).WithRequestID("req-1")
	outer := Wrap(inner, "load")

	if outer.Code() != CodeInvalidFormat {
		t.Errorf("Code() = %v, want %v", outer.Code(), CodeInvalidFormat)
	}
	if outer.Severity() != SeverityLow {
		t.Errorf("Severity() = %v, want %v", outer.Severity(), SeverityLow)
	}
	if outer.Details()["index"] != 2 {
		t.Errorf("Details()[index] = %v, want 2", outer.Details()["index"])
	}
	if outer.RequestID() != "req-1" {
		t.Errorf("RequestID() = %q, want req-1", outer.RequestID())
	}
}

func TestWrapForeignChain(t *testing.T) {
	inner := New("bad").WithCode(CodeDrawSyntax)
	foreign := fmt.Errorf("engine: %w", inner)
	outer := Wrap(foreign, "parse")

	if outer.Code() != CodeDrawSyntax {
		t.Errorf("Code() = %v, want %v", outer.Code(), CodeDrawSyntax)
	}
	if outer.RootCause() != inner {
		t.Errorf("RootCause() = %v, want %v", outer.RootCause(), inner)
	}
}

func TestWithCode(t *testing.T) {
	tests := []struct {
		code Code
		want Severity
	}{
		{CodeDrawSyntax, SeverityLow},
		{CodeInvalidConfig, SeverityHigh},
		{CodeDrawMalformed, SeverityCritical},
		{CodeUnknown, SeverityMedium},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			err := New("x").WithCode(tt.code)
			if err.Severity() != tt.want {
				t.Errorf("Severity() = %v, want %v", err.Severity(), tt.want)
			}
		})
	}

	explicit := New("x").WithSeverity(SeverityCritical).WithCode(CodeDrawSyntax)
	if explicit.Severity() != SeverityCritical {
		t.Errorf("explicit Severity() = %v, want %v", explicit.Severity(), SeverityCritical)
	}
}

func TestWithDetails(t *testing.T) {
	err := New("x").WithDetails(map[string]interface{}{"file": "a.yaml", "index": 1})
	details := err.Details()
	if details["file"] != "a.yaml" || details["index"] != 1 {
		t.Errorf("Details() = %v", details)
	}

	details["file"] = "mutated"
	if err.Details()["file"] != "a.yaml" {
		t.Error("Details() should return a copy")
	}
}

func TestHasCode(t *testing.T) {
	base := New("x").WithCode(CodeNotFound)
	tests := []struct {
		name string
		err  error
		code Code
		want bool
	}{
		{"direct", base, CodeNotFound, true},
		{"other code", base, CodeDrawSyntax, false},
		{"wrapped by fmt", fmt.Errorf("outer: %w", base), CodeNotFound, true},
		{"standard error", errors.New("plain"), CodeNotFound, false},
		{"nil", nil, CodeNotFound, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasCode(tt.err, tt.code); got != tt.want {
				t.Errorf("HasCode() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGetCodeAndSeverity(t *testing.T) {
	if got := GetCode(errors.New("plain")); got != CodeUnknown {
		t.Errorf("GetCode() = %v, want %v", got, CodeUnknown)
	}
	if got := GetSeverity(errors.New("plain")); got != SeverityMedium {
		t.Errorf("GetSeverity() = %v, want %v", got, SeverityMedium)
	}

	err := fmt.Errorf("x: %w", New("y").WithCode(CodeConfigError))
	if got := GetCode(err); got != CodeConfigError {
		t.Errorf("GetCode() = %v, want %v", got, CodeConfigError)
	}
	if got := GetSeverity(err); got != SeverityHigh {
		t.Errorf("GetSeverity() = %v, want %v", got, SeverityHigh)
	}
}

func TestString(t *testing.T) {
	err := New("stream rejected").
		WithCode(CodeStreamTooLarge).
		WithOperation("engine.Parse").
		WithRequestID("abc").
		WithDetail("tokens", 12).
		WithDetail("limit", 10)

	s := err.String()
	for _, want := range []string{
		"Error: stream rejected",
		"Code: DRAW_STREAM_TOO_LARGE",
		"Operation: engine.Parse",
		"RequestID: abc",
		"Details: {limit=10, tokens=12}",
	} {
		if !strings.Contains(s, want) {
			t.Errorf("String() missing %q in:\n%s", want, s)
		}
	}
}

func TestMarshalJSON(t *testing.T) {
	err := Wrap(errors.New("eof"), "decode").
		WithCode(CodeInvalidFormat).
		WithOperation("stream.Decode")

	data, marshalErr := json.Marshal(err)
	if marshalErr != nil {
		t.Fatalf("json.Marshal() error = %v", marshalErr)
	}

	var decoded map[string]interface{}
	if unmarshalErr := json.Unmarshal(data, &decoded); unmarshalErr != nil {
		t.Fatalf("json.Unmarshal() error = %v", unmarshalErr)
	}

	if decoded["code"] != "INVALID_FORMAT" {
		t.Errorf("code = %v, want INVALID_FORMAT", decoded["code"])
	}
	if decoded["severity"] != "low" {
		t.Errorf("severity = %v, want low", decoded["severity"])
	}
	if decoded["cause"] != "eof" {
		t.Errorf("cause = %v, want eof", decoded["cause"])
	}
	if decoded["operation"] != "stream.Decode" {
		t.Errorf("operation = %v, want stream.Decode", decoded["operation"])
	}
}

func TestCodeCategoryAndExit(t *testing.T) {
	tests := []struct {
		code     Code
		category string
		exit     int
	}{
		{CodeDrawSyntax, "drawlang", 1},
		{CodeInvalidFormat, "stream", 2},
		{CodeInvalidConfig, "configuration", 3},
		{CodeCanceled, "generic", 130},
		{CodeInternal, "generic", 1},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			if !tt.code.IsValid() {
				t.Errorf("IsValid() = false for %v", tt.code)
			}
			if got := tt.code.Category(); got != tt.category {
				t.Errorf("Category() = %v, want %v", got, tt.category)
			}
			if got := tt.code.ExitCode(); got != tt.exit {
				t.Errorf("ExitCode() = %v, want %v", got, tt.exit)
			}
		})
	}

	if Code("NOPE").IsValid() {
		t.Error("IsValid() = true for unknown code")
	}
}

func TestSeverity(t *testing.T) {
	if SeverityLow.ShouldAlert() || SeverityMedium.ShouldAlert() {
		t.Error("low/medium should not alert")
	}
	if !SeverityHigh.ShouldAlert() || !SeverityCritical.ShouldAlert() {
		t.Error("high/critical should alert")
	}
	if Severity(42).String() != "unknown" {
		t.Errorf("String() = %v, want unknown", Severity(42).String())
	}
}
