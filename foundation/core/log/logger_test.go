// File: logger_test.go
// Title: Logger Tests
// Description: Tests for level filtering, context propagation, immutable
//              clones, error logging and timers.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation
// - 2025-03-02 v0.2.0: Request ids, severity-mapped error logging

package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	mdwerror "github.com/msto63/drawlang/foundation/core/error"
)

func newTestLogger(level Level, format Format) (*Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return NewWithConfig(Config{Level: level, Format: format, Output: buf}), buf
}

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var out []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var m map[string]interface{}
		if err := json.Unmarshal([]byte(line), &m); err != nil {
			t.Fatalf("invalid JSON line %q: %v", line, err)
		}
		out = append(out, m)
	}
	return out
}

func TestLoggerLevelFiltering(t *testing.T) {
	logger, buf := newTestLogger(LevelWarn, FormatJSON)

	logger.Debug("hidden")
	logger.Info("hidden")
	logger.Warn("shown")
	logger.Error("shown too")

	lines := decodeLines(t, buf)
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2: %s", len(lines), buf.String())
	}
	if lines[0]["level"] != "warn" || lines[1]["level"] != "error" {
		t.Errorf("levels = %v, %v", lines[0]["level"], lines[1]["level"])
	}
}

func TestLoggerContextIsImmutable(t *testing.T) {
	base, buf := newTestLogger(LevelInfo, FormatJSON)
	child := base.WithName("parser").WithRequestID("req-7").WithField("file", "a.yaml")

	base.Info("from base")
	child.Info("from child", Fields{"tokens": 4})

	lines := decodeLines(t, buf)
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}

	if _, ok := lines[0]["file"]; ok {
		t.Error("base logger picked up child field")
	}
	if _, ok := lines[0]["request_id"]; ok {
		t.Error("base logger picked up child request id")
	}

	got := lines[1]
	if got["logger"] != "parser" {
		t.Errorf("logger = %v, want parser", got["logger"])
	}
	if got["request_id"] != "req-7" {
		t.Errorf("request_id = %v, want req-7", got["request_id"])
	}
	if got["file"] != "a.yaml" {
		t.Errorf("file = %v, want a.yaml", got["file"])
	}
	if got["tokens"] != float64(4) {
		t.Errorf("tokens = %v, want 4", got["tokens"])
	}
}

func TestLoggerWithLevel(t *testing.T) {
	base, buf := newTestLogger(LevelInfo, FormatText)
	verbose := base.WithLevel(LevelTrace)

	base.Trace("dropped")
	verbose.Trace("kept")

	if strings.Contains(buf.String(), "dropped") {
		t.Error("base logger should drop trace")
	}
	if !strings.Contains(buf.String(), "kept") {
		t.Error("verbose logger should keep trace")
	}
	if base.GetLevel() != LevelInfo {
		t.Errorf("base GetLevel() = %v, want info", base.GetLevel())
	}
	if !verbose.IsLevelEnabled(LevelTrace) {
		t.Error("IsLevelEnabled(trace) = false on verbose logger")
	}
}

func TestLoggerErrorWithErr(t *testing.T) {
	logger, buf := newTestLogger(LevelInfo, FormatJSON)
	logger.ErrorWithErr("decode failed", errors.New("eof"))

	lines := decodeLines(t, buf)
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(lines))
	}
	if lines[0]["error"] != "eof" {
		t.Errorf("error = %v, want eof", lines[0]["error"])
	}
}

func TestLoggerLogErrorSeverity(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		level string
	}{
		{"low severity", mdwerror.New("bad token").WithCode(mdwerror.CodeDrawSyntax), "info"},
		{"medium severity", mdwerror.New("odd"), "warn"},
		{"high severity", mdwerror.New("cfg").WithCode(mdwerror.CodeInvalidConfig), "error"},
		{"plain error", errors.New("plain"), "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, buf := newTestLogger(LevelTrace, FormatJSON)
			logger.LogError(tt.err)

			lines := decodeLines(t, buf)
			if len(lines) != 1 {
				t.Fatalf("got %d lines, want 1", len(lines))
			}
			if lines[0]["level"] != tt.level {
				t.Errorf("level = %v, want %v", lines[0]["level"], tt.level)
			}
		})
	}
}

func TestLoggerLogErrorFields(t *testing.T) {
	logger, buf := newTestLogger(LevelTrace, FormatJSON)
	err := mdwerror.New("unknown kind").
		WithCode(mdwerror.CodeInvalidFormat).
		WithOperation("stream.Decode").
		WithDetail("index", 3)
	logger.LogError(err)
	logger.LogError(nil)

	lines := decodeLines(t, buf)
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(lines))
	}
	got := lines[0]
	if got["error_code"] != "INVALID_FORMAT" {
		t.Errorf("error_code = %v", got["error_code"])
	}
	if got["error_operation"] != "stream.Decode" {
		t.Errorf("error_operation = %v", got["error_operation"])
	}
	if got["error_index"] != float64(3) {
		t.Errorf("error_index = %v", got["error_index"])
	}
	if _, ok := got["error_details"]; !ok {
		t.Error("error_details missing for structured error")
	}
}

func TestLoggerCaller(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewWithConfig(Config{Level: LevelInfo, Format: FormatText, Output: buf, EnableCaller: true})
	logger.Info("where")

	if !strings.Contains(buf.String(), "caller=logger_test.go:") {
		t.Errorf("output missing caller: %q", buf.String())
	}
}

func TestLoggerConcurrent(t *testing.T) {
	logger, buf := newTestLogger(LevelInfo, FormatJSON)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			logger.WithField("n", n).Info("tick")
		}(i)
	}
	wg.Wait()

	if got := len(decodeLines(t, buf)); got != 20 {
		t.Errorf("got %d lines, want 20", got)
	}
}

func TestDiscard(t *testing.T) {
	logger := Discard()
	if logger.IsLevelEnabled(LevelFatal) {
		t.Error("Discard() logger should have every level disabled")
	}
	logger.Error("nothing")
}

func TestDefaultLogger(t *testing.T) {
	original := GetDefault()
	defer SetDefault(original)

	replacement, _ := newTestLogger(LevelDebug, FormatText)
	SetDefault(replacement)
	if GetDefault() != replacement {
		t.Error("GetDefault() did not return the logger passed to SetDefault()")
	}
}

func TestTimer(t *testing.T) {
	logger, buf := newTestLogger(LevelDebug, FormatJSON)

	timer := logger.StartTimer("parse").WithField("tokens", 9)
	time.Sleep(2 * time.Millisecond)
	elapsed := timer.Stop()

	if elapsed <= 0 {
		t.Errorf("Stop() = %v, want > 0", elapsed)
	}
	if again := timer.Stop(); again != 0 {
		t.Errorf("second Stop() = %v, want 0", again)
	}

	lines := decodeLines(t, buf)
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(lines))
	}
	got := lines[0]
	if got["message"] != "parse completed" {
		t.Errorf("message = %v", got["message"])
	}
	if got["operation"] != "parse" {
		t.Errorf("operation = %v", got["operation"])
	}
	if d, ok := got["duration_ms"].(float64); !ok || d <= 0 {
		t.Errorf("duration_ms = %v", got["duration_ms"])
	}
}

func TestTimerStopWithError(t *testing.T) {
	logger, buf := newTestLogger(LevelInfo, FormatText)
	logger.StartTimer("parse").StopWithError(errors.New("boom"))

	out := buf.String()
	if !strings.Contains(out, "[WRN]") || !strings.Contains(out, "parse failed") {
		t.Errorf("output = %q", out)
	}
	if !strings.Contains(out, `error="boom"`) {
		t.Errorf("output missing error: %q", out)
	}
}
