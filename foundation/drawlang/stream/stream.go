// File: stream.go
// Title: Token Stream Decoding and Encoding
// Description: Reads and writes token streams produced by an external
//              lexer. A document holds a "tokens" list; each token is either
//              a [kind, text] pair or a {kind, text} mapping. TOML documents
//              use an array of [[tokens]] tables.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial YAML, JSON and TOML support

package stream

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/drawlang/foundation/core/error"
	"github.com/msto63/drawlang/foundation/drawlang/token"
)

// entry is one token as written in a document
type entry struct {
	Kind string `json:"kind" yaml:"kind" toml:"kind"`
	Text string `json:"text" yaml:"text" toml:"text"`
}

// UnmarshalYAML accepts both [kind, text] and {kind: .., text: ..}
func (e *entry) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.SequenceNode:
		var pair []string
		if err := value.Decode(&pair); err != nil {
			return err
		}
		if len(pair) != 2 {
			return fmt.Errorf("line %d: token must have 2 elements, got %d", value.Line, len(pair))
		}
		e.Kind, e.Text = pair[0], pair[1]
		return nil
	case yaml.MappingNode:
		type plain entry
		return value.Decode((*plain)(e))
	default:
		return fmt.Errorf("line %d: token must be a sequence or a mapping", value.Line)
	}
}

// UnmarshalJSON accepts both ["kind", "text"] and {"kind": .., "text": ..}
func (e *entry) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var pair []json.RawMessage
		if err := json.Unmarshal(trimmed, &pair); err != nil {
			return err
		}
		if len(pair) != 2 {
			return fmt.Errorf("token must have 2 elements, got %d", len(pair))
		}
		var err error
		if e.Kind, err = jsonScalar(pair[0]); err != nil {
			return err
		}
		e.Text, err = jsonScalar(pair[1])
		return err
	}

	type plain entry
	return json.Unmarshal(trimmed, (*plain)(e))
}

// jsonScalar reads a string or a number as text
func jsonScalar(raw json.RawMessage) (string, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, nil
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return "", fmt.Errorf("token element %s is not a string", raw)
	}
	return n.String(), nil
}

type document struct {
	Tokens []entry `json:"tokens" yaml:"tokens" toml:"tokens"`
}

// Decode reads a token stream document from r
func Decode(r io.Reader, format Format) ([]token.Token, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to read token stream").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("stream.Decode")
	}
	return DecodeBytes(data, format)
}

// DecodeBytes decodes a token stream document held in memory
func DecodeBytes(data []byte, format Format) ([]token.Token, error) {
	entries, err := decodeEntries(data, format)
	if err != nil {
		return nil, mdwerror.Wrap(err, fmt.Sprintf("%s token stream parse error", format)).
			WithCode(mdwerror.CodeInvalidFormat).
			WithOperation("stream.Decode").
			WithDetail("format", format.String())
	}

	tokens := make([]token.Token, 0, len(entries))
	for i, e := range entries {
		kind, err := token.ParseKind(e.Kind)
		if err != nil {
			return nil, mdwerror.Wrap(err, fmt.Sprintf("token %d", i)).
				WithCode(mdwerror.CodeInvalidFormat).
				WithOperation("stream.Decode").
				WithDetail("index", i)
		}
		if e.Text == "" {
			return nil, mdwerror.Newf("token %d: empty text", i).
				WithCode(mdwerror.CodeInvalidFormat).
				WithOperation("stream.Decode").
				WithDetail("index", i)
		}
		tokens = append(tokens, token.New(kind, e.Text))
	}
	return tokens, nil
}

func decodeEntries(data []byte, format Format) ([]entry, error) {
	var doc document

	switch format {
	case FormatYAML:
		var root yaml.Node
		if err := yaml.Unmarshal(data, &root); err != nil {
			return nil, err
		}
		if len(root.Content) == 0 {
			return nil, nil
		}
		// a bare sequence is accepted as the token list
		if root.Content[0].Kind == yaml.SequenceNode {
			err := root.Content[0].Decode(&doc.Tokens)
			return doc.Tokens, err
		}
		err := root.Decode(&doc)
		return doc.Tokens, err

	case FormatJSON:
		trimmed := bytes.TrimSpace(data)
		if len(trimmed) > 0 && trimmed[0] == '[' {
			err := json.Unmarshal(trimmed, &doc.Tokens)
			return doc.Tokens, err
		}
		err := json.Unmarshal(trimmed, &doc)
		return doc.Tokens, err

	case FormatTOML:
		md, err := toml.Decode(string(data), &doc)
		if err != nil {
			return nil, err
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("unknown key %s", undecoded[0])
		}
		return doc.Tokens, nil

	default:
		return nil, fmt.Errorf("unsupported format %s", format)
	}
}

// DecodeFile reads the token stream stored at path. The format follows
// the file extension.
func DecodeFile(path string) ([]token.Token, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		code := mdwerror.CodeInvalidInput
		if errors.Is(err, fs.ErrNotExist) {
			code = mdwerror.CodeNotFound
		}
		return nil, mdwerror.Wrap(err, "failed to read token stream").
			WithCode(code).
			WithOperation("stream.DecodeFile").
			WithDetail("path", path)
	}

	tokens, err := DecodeBytes(data, format)
	if err != nil {
		if mdwErr, ok := mdwerror.As(err); ok {
			return nil, mdwErr.WithDetail("path", path)
		}
		return nil, err
	}
	return tokens, nil
}

// Encode writes tokens to w as a document in the given format
func Encode(w io.Writer, format Format, tokens []token.Token) error {
	doc := document{Tokens: make([]entry, len(tokens))}
	for i, t := range tokens {
		doc.Tokens[i] = entry{Kind: t.Kind.String(), Text: t.Text}
	}

	var err error
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err = enc.Encode(doc); err == nil {
			err = enc.Close()
		}
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		err = enc.Encode(doc)
	case FormatTOML:
		err = toml.NewEncoder(w).Encode(doc)
	default:
		err = fmt.Errorf("unsupported format %s", format)
	}

	if err != nil {
		return mdwerror.Wrap(err, "failed to encode token stream").
			WithCode(mdwerror.CodeInvalidFormat).
			WithOperation("stream.Encode").
			WithDetail("format", format.String())
	}
	return nil
}
