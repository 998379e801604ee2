// File: stream_test.go
// Title: Token Stream Tests
// Description: Tests for decoding every document shape, error codes and
//              encode/decode symmetry.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial test suite

package stream

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	mdwerror "github.com/msto63/drawlang/foundation/core/error"
	"github.com/msto63/drawlang/foundation/drawlang/token"
)

var drawX = []token.Token{
	token.New(token.Keyword, "draw"),
	token.New(token.SpecialSymbol, "("),
	token.New(token.Identifier, "x"),
	token.New(token.SpecialSymbol, ")"),
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		input  string
	}{
		{
			name:   "yaml pairs",
			format: FormatYAML,
			input: `tokens:
  - [Keyword, draw]
  - [SpecialSymbol, "("]
  - [Identifier, x]
  - [SpecialSymbol, ")"]
`,
		},
		{
			name:   "yaml mappings and lowercase kinds",
			format: FormatYAML,
			input: `tokens:
  - {kind: keyword, text: draw}
  - kind: specialsymbol
    text: "("
  - [Identifier, x]
  - {kind: SpecialSymbol, text: ")"}
`,
		},
		{
			name:   "yaml bare list",
			format: FormatYAML,
			input:  "- [Keyword, draw]\n- [SpecialSymbol, \"(\"]\n- [Identifier, x]\n- [SpecialSymbol, \")\"]\n",
		},
		{
			name:   "json document",
			format: FormatJSON,
			input:  `{"tokens": [["Keyword", "draw"], {"kind": "SpecialSymbol", "text": "("}, ["Identifier", "x"], ["SpecialSymbol", ")"]]}`,
		},
		{
			name:   "json bare list",
			format: FormatJSON,
			input:  `[["Keyword","draw"],["SpecialSymbol","("],["Identifier","x"],["SpecialSymbol",")"]]`,
		},
		{
			name:   "toml tables",
			format: FormatTOML,
			input: `[[tokens]]
kind = "Keyword"
text = "draw"

[[tokens]]
kind = "SpecialSymbol"
text = "("

[[tokens]]
kind = "Identifier"
text = "x"

[[tokens]]
kind = "SpecialSymbol"
text = ")"
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(strings.NewReader(tt.input), tt.format)
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if diff := cmp.Diff(drawX, got); diff != "" {
				t.Errorf("Decode() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDecodeNumbers(t *testing.T) {
	yamlTokens, err := DecodeBytes([]byte("tokens:\n  - [Number, 12]\n"), FormatYAML)
	if err != nil {
		t.Fatalf("yaml DecodeBytes() error = %v", err)
	}
	jsonTokens, err := DecodeBytes([]byte(`{"tokens":[["Number", 12]]}`), FormatJSON)
	if err != nil {
		t.Fatalf("json DecodeBytes() error = %v", err)
	}

	want := []token.Token{token.New(token.Number, "12")}
	if diff := cmp.Diff(want, yamlTokens); diff != "" {
		t.Errorf("yaml mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(want, jsonTokens); diff != "" {
		t.Errorf("json mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeEmpty(t *testing.T) {
	for _, format := range []Format{FormatYAML, FormatJSON, FormatTOML} {
		input := ""
		if format == FormatJSON {
			input = "{}"
		}
		got, err := DecodeBytes([]byte(input), format)
		if err != nil {
			t.Errorf("%s: DecodeBytes() error = %v", format, err)
		}
		if len(got) != 0 {
			t.Errorf("%s: DecodeBytes() = %v, want empty", format, got)
		}
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name      string
		format    Format
		input     string
		wantIndex interface{}
		wantMsg   string
	}{
		{
			name:      "unknown kind",
			format:    FormatYAML,
			input:     "tokens:\n  - [Keyword, draw]\n  - [Comment, hi]\n",
			wantIndex: 1,
			wantMsg:   "token 1",
		},
		{
			name:      "empty text",
			format:    FormatJSON,
			input:     `{"tokens":[["Identifier",""]]}`,
			wantIndex: 0,
			wantMsg:   "empty text",
		},
		{
			name:    "pair with three elements",
			format:  FormatYAML,
			input:   "tokens:\n  - [Keyword, draw, extra]\n",
			wantMsg: "2 elements",
		},
		{
			name:    "scalar token",
			format:  FormatYAML,
			input:   "tokens:\n  - draw\n",
			wantMsg: "sequence or a mapping",
		},
		{
			name:    "broken json",
			format:  FormatJSON,
			input:   `{"tokens": [`,
			wantMsg: "json token stream parse error",
		},
		{
			name:    "unknown toml key",
			format:  FormatTOML,
			input:   "[[tokens]]\nkind = \"Keyword\"\ntext = \"draw\"\nline = 3\n",
			wantMsg: "unknown key",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeBytes([]byte(tt.input), tt.format)
			if err == nil {
				t.Fatal("DecodeBytes() error = nil")
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error = %q, want it to contain %q", err, tt.wantMsg)
			}

			mdwErr, ok := mdwerror.As(err)
			if !ok {
				t.Fatalf("error %T is not structured", err)
			}
			if mdwErr.Code() != mdwerror.CodeInvalidFormat {
				t.Errorf("Code() = %v, want %v", mdwErr.Code(), mdwerror.CodeInvalidFormat)
			}
			if tt.wantIndex != nil && mdwErr.Details()["index"] != tt.wantIndex {
				t.Errorf("Details()[index] = %v, want %v", mdwErr.Details()["index"], tt.wantIndex)
			}
		})
	}
}

func TestEncodeDecodeSymmetry(t *testing.T) {
	tokens := []token.Token{
		token.New(token.Keyword, "grid"),
		token.New(token.SpecialSymbol, "("),
		token.New(token.Number, "2"),
		token.New(token.SpecialSymbol, ","),
		token.New(token.Operator, "+"),
		token.New(token.SpecialSymbol, ";"),
	}

	for _, format := range []Format{FormatYAML, FormatJSON, FormatTOML} {
		t.Run(format.String(), func(t *testing.T) {
			var buf bytes.Buffer
			if err := Encode(&buf, format, tokens); err != nil {
				t.Fatalf("Encode() error = %v", err)
			}
			got, err := Decode(&buf, format)
			if err != nil {
				t.Fatalf("Decode() error = %v\n%s", err, buf.String())
			}
			if diff := cmp.Diff(tokens, got); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDecodeFile(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "prog.yml")
	if err := os.WriteFile(path, []byte("tokens:\n  - [SpecialSymbol, ;]\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := DecodeFile(path)
	if err != nil {
		t.Fatalf("DecodeFile() error = %v", err)
	}
	if len(got) != 1 || !got[0].Is(token.SpecialSymbol, ";") {
		t.Errorf("DecodeFile() = %v", got)
	}

	_, err = DecodeFile(filepath.Join(dir, "missing.json"))
	if !mdwerror.HasCode(err, mdwerror.CodeNotFound) {
		t.Errorf("missing file error code = %v, want %v", mdwerror.GetCode(err), mdwerror.CodeNotFound)
	}

	_, err = DecodeFile(filepath.Join(dir, "prog.txt"))
	if !mdwerror.HasCode(err, mdwerror.CodeUnsupported) {
		t.Errorf("unknown extension error code = %v, want %v", mdwerror.GetCode(err), mdwerror.CodeUnsupported)
	}

	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte(`[["Nope","x"]]`), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err = DecodeFile(bad)
	if mdwErr, ok := mdwerror.As(err); !ok || mdwErr.Details()["path"] != bad {
		t.Errorf("decode error should carry the path, got %v", err)
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"yaml", FormatYAML, false},
		{"YML", FormatYAML, false},
		{"json", FormatJSON, false},
		{"toml", FormatTOML, false},
		{"xml", FormatYAML, true},
	}

	for _, tt := range tests {
		got, err := ParseFormat(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseFormat(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
