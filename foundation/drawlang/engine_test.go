// File: engine_test.go
// Title: Drawing Language Engine Tests
// Description: Tests for single, file and batch parsing, limits,
//              cancellation, error wrapping and trace logging.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial test suite

package drawlang

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	mdwerror "github.com/msto63/drawlang/foundation/core/error"
	mdwlog "github.com/msto63/drawlang/foundation/core/log"
	mdwparser "github.com/msto63/drawlang/foundation/drawlang/parser"
	mdwtoken "github.com/msto63/drawlang/foundation/drawlang/token"
)

func drawTokens(name string) []mdwtoken.Token {
	return []mdwtoken.Token{
		mdwtoken.New(mdwtoken.Keyword, "draw"),
		mdwtoken.New(mdwtoken.SpecialSymbol, "("),
		mdwtoken.New(mdwtoken.Identifier, name),
		mdwtoken.New(mdwtoken.SpecialSymbol, ")"),
	}
}

func newTestEngine(t *testing.T, opts Options) (*Engine, *bytes.Buffer) {
	t.Helper()
	buf := &bytes.Buffer{}
	if opts.Logger == nil {
		opts.Logger = mdwlog.NewWithConfig(mdwlog.Config{
			Level:  mdwlog.LevelTrace,
			Format: mdwlog.FormatText,
			Output: buf,
		})
	}
	engine, err := New(opts)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return engine, buf
}

func TestEngineParse(t *testing.T) {
	engine, buf := newTestEngine(t, Options{})

	res, err := engine.Parse(context.Background(), drawTokens("x"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if got := res.Root.String(); got != "Program(None): [Draw(None): [Identifier(x): []]]" {
		t.Errorf("Root = %s", got)
	}
	if res.Nodes != 3 || res.Depth != 3 || res.Tokens != 4 {
		t.Errorf("Nodes/Depth/Tokens = %d/%d/%d, want 3/3/4", res.Nodes, res.Depth, res.Tokens)
	}
	if len(res.RequestID) != 36 {
		t.Errorf("RequestID = %q, want a uuid", res.RequestID)
	}
	if !strings.Contains(buf.String(), "(req="+res.RequestID+")") {
		t.Errorf("log output missing request id:\n%s", buf.String())
	}
	if !strings.Contains(buf.String(), "parse completed") {
		t.Errorf("log output missing timer line:\n%s", buf.String())
	}
}

func TestEngineParseSyntaxError(t *testing.T) {
	engine, _ := newTestEngine(t, Options{})

	tokens := drawTokens("x")[:3]
	_, err := engine.Parse(context.Background(), tokens)
	if err == nil {
		t.Fatal("Parse() error = nil")
	}

	if !mdwerror.HasCode(err, mdwerror.CodeDrawSyntax) {
		t.Errorf("code = %v, want %v", mdwerror.GetCode(err), mdwerror.CodeDrawSyntax)
	}
	var syntaxErr *mdwparser.SyntaxError
	if !errors.As(err, &syntaxErr) {
		t.Fatal("error does not unwrap to *parser.SyntaxError")
	}
	if !syntaxErr.AtEnd() {
		t.Error("AtEnd() = false")
	}
	mdwErr, _ := mdwerror.As(err)
	if mdwErr.RequestID() == "" {
		t.Error("RequestID() is empty")
	}
}

func TestEngineMaxTokens(t *testing.T) {
	engine, _ := newTestEngine(t, Options{MaxTokens: 3})

	_, err := engine.Parse(context.Background(), drawTokens("x"))
	if !mdwerror.HasCode(err, mdwerror.CodeStreamTooLarge) {
		t.Fatalf("error = %v, want %v", err, mdwerror.CodeStreamTooLarge)
	}

	if _, err := New(Options{MaxTokens: -1}); !mdwerror.HasCode(err, mdwerror.CodeInvalidConfig) {
		t.Errorf("New(MaxTokens: -1) error = %v", err)
	}
}

func TestEngineCanceled(t *testing.T) {
	engine, _ := newTestEngine(t, Options{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := engine.Parse(ctx, drawTokens("x"))
	if !mdwerror.HasCode(err, mdwerror.CodeCanceled) {
		t.Fatalf("error = %v, want %v", err, mdwerror.CodeCanceled)
	}
	if !errors.Is(err, context.Canceled) {
		t.Error("error does not unwrap to context.Canceled")
	}
}

func TestEngineTrace(t *testing.T) {
	engine, buf := newTestEngine(t, Options{Trace: true})

	if _, err := engine.Parse(context.Background(), drawTokens("x")); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	out := buf.String()
	for _, production := range []string{"program", "statement", "draw", "expression", "factor"} {
		if !strings.Contains(out, "production="+production) {
			t.Errorf("trace output missing production=%s:\n%s", production, out)
		}
	}
}

func writeStream(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestEngineParseFiles(t *testing.T) {
	dir := t.TempDir()
	good := writeStream(t, dir, "good.yaml", "tokens:\n  - [Keyword, write]\n  - [SpecialSymbol, \"(\"]\n  - [Identifier, a]\n  - [Operator, +]\n  - [Identifier, b]\n  - [SpecialSymbol, \")\"]\n")
	bad := writeStream(t, dir, "bad.json", `[["Keyword","erase"],["SpecialSymbol","("],["Identifier","x"],["SpecialSymbol",")"]]`)
	grid := writeStream(t, dir, "grid.toml", "[[tokens]]\nkind = \"SpecialSymbol\"\ntext = \";\"\n")
	missing := filepath.Join(dir, "missing.yaml")

	engine, _ := newTestEngine(t, Options{Workers: 2})
	results := engine.ParseFiles(context.Background(), []string{good, bad, grid, missing})

	if len(results) != 4 {
		t.Fatalf("got %d results, want 4", len(results))
	}
	for i, want := range []string{good, bad, grid, missing} {
		if results[i].Path != want {
			t.Errorf("results[%d].Path = %s, want %s", i, results[i].Path, want)
		}
	}

	if results[0].Err != nil {
		t.Errorf("good: error = %v", results[0].Err)
	} else if got := results[0].Result.Root.String(); got != "Program(None): [WriteStatement(None): [Expression(+): [Identifier(a): [], Identifier(b): []]]]" {
		t.Errorf("good: Root = %s", got)
	}

	if !mdwerror.HasCode(results[1].Err, mdwerror.CodeDrawSyntax) {
		t.Errorf("bad: error = %v", results[1].Err)
	} else if !strings.Contains(results[1].Err.Error(), "erase") {
		t.Errorf("bad: error %q does not name the keyword", results[1].Err)
	}

	if results[2].Err != nil || results[2].Result.Nodes != 1 {
		t.Errorf("grid: result = %+v, err = %v", results[2].Result, results[2].Err)
	}

	if !mdwerror.HasCode(results[3].Err, mdwerror.CodeNotFound) {
		t.Errorf("missing: error = %v", results[3].Err)
	}
}

func TestEngineParseBytes(t *testing.T) {
	engine, _ := newTestEngine(t, Options{})
	ctx := context.Background()

	res, err := engine.ParseBytes(ctx, "inline.json", []byte(`[["Keyword","draw"],["SpecialSymbol","("],["Number",7],["SpecialSymbol",")"]]`))
	if err != nil {
		t.Fatalf("ParseBytes() error = %v", err)
	}
	if res.Source != "inline.json" {
		t.Errorf("Source = %q, want inline.json", res.Source)
	}
	if got := res.Root.String(); got != "Program(None): [Draw(None): [Number(7): []]]" {
		t.Errorf("Root = %s", got)
	}

	tests := []struct {
		name   string
		source string
		data   string
		code   mdwerror.Code
	}{
		{"unknown extension", "stream.txt", "tokens: []", mdwerror.CodeUnsupported},
		{"malformed document", "stream.yaml", "tokens: [", mdwerror.CodeInvalidFormat},
		{"syntax error", "stream.yaml", "tokens:\n  - [Identifier, x]\n", mdwerror.CodeDrawSyntax},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := engine.ParseBytes(ctx, tt.source, []byte(tt.data))
			if !mdwerror.HasCode(err, tt.code) {
				t.Fatalf("ParseBytes() error = %v, want code %s", err, tt.code)
			}
			if tt.code != mdwerror.CodeDrawSyntax {
				mdwErr, _ := mdwerror.As(err)
				if mdwErr.Details()["path"] != tt.source {
					t.Errorf("path detail = %v, want %s", mdwErr.Details()["path"], tt.source)
				}
			}
		})
	}
}
