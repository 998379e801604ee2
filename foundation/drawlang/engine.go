// File: engine.go
// Title: Drawing Language Engine
// Description: High-level entry point that ties token stream decoding, the
//              parser and tree validation together. Each run gets a request
//              id, is timed and logged; the parser itself stays silent.
// Author: msto63
// Version: v0.1.1
// Created: 2025-03-02
// Modified: 2025-03-09
//
// Change History:
// - 2025-03-02 v0.1.0: Initial engine with single and batch parsing
// - 2025-03-09 v0.1.1: ParseBytes for streams already in memory

package drawlang

import (
	"context"
	"errors"
	"runtime"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	mdwerror "github.com/msto63/drawlang/foundation/core/error"
	mdwlog "github.com/msto63/drawlang/foundation/core/log"
	mdwast "github.com/msto63/drawlang/foundation/drawlang/ast"
	mdwparser "github.com/msto63/drawlang/foundation/drawlang/parser"
	mdwstream "github.com/msto63/drawlang/foundation/drawlang/stream"
	mdwtoken "github.com/msto63/drawlang/foundation/drawlang/token"
)

// Engine parses token streams into validated syntax trees
type Engine struct {
	logger  *mdwlog.Logger
	options Options
}

// Options configures the engine
type Options struct {
	Logger *mdwlog.Logger
	// MaxTokens rejects longer streams; 0 means unlimited
	MaxTokens int
	// Trace logs every production entry at trace level
	Trace bool
	// Workers bounds ParseFiles concurrency; 0 means GOMAXPROCS
	Workers int
}

// Result describes one successful parse
type Result struct {
	RequestID string
	Source    string
	Root      *mdwast.Node
	Tokens    int
	Nodes     int
	Depth     int
	Duration  time.Duration
}

// FileResult pairs a path with its parse outcome
type FileResult struct {
	Path   string
	Result *Result
	Err    error
}

// New creates an engine
func New(opts Options) (*Engine, error) {
	if opts.Logger == nil {
		opts.Logger = mdwlog.GetDefault()
	}
	if opts.MaxTokens < 0 {
		return nil, mdwerror.Newf("max tokens must not be negative: %d", opts.MaxTokens).
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("drawlang.New")
	}
	if opts.Workers <= 0 {
		opts.Workers = runtime.GOMAXPROCS(0)
	}

	engine := &Engine{
		logger:  opts.Logger.WithName("drawlang"),
		options: opts,
	}

	engine.logger.Debug("engine initialized", mdwlog.Fields{
		"maxTokens": opts.MaxTokens,
		"trace":     opts.Trace,
		"workers":   opts.Workers,
	})
	return engine, nil
}

// Parse parses tokens with a fresh parser and validates the tree
func (e *Engine) Parse(ctx context.Context, tokens []mdwtoken.Token) (*Result, error) {
	return e.parse(ctx, "", tokens)
}

// ParseFile decodes the token stream stored at path and parses it
func (e *Engine) ParseFile(ctx context.Context, path string) (*Result, error) {
	tokens, err := mdwstream.DecodeFile(path)
	if err != nil {
		e.logger.WithField("source", path).LogError(err)
		return nil, err
	}
	return e.parse(ctx, path, tokens)
}

// ParseBytes decodes data as the token stream named source and parses it.
// The document format follows the extension of source.
func (e *Engine) ParseBytes(ctx context.Context, source string, data []byte) (*Result, error) {
	format, err := mdwstream.DetectFormat(source)
	if err == nil {
		var tokens []mdwtoken.Token
		if tokens, err = mdwstream.DecodeBytes(data, format); err == nil {
			return e.parse(ctx, source, tokens)
		}
	}

	if mdwErr, ok := mdwerror.As(err); ok {
		err = mdwErr.WithDetail("path", source)
	}
	e.logger.WithField("source", source).LogError(err)
	return nil, err
}

// ParseFiles parses every path concurrently, one parser per file. Results
// are returned in input order; a failing file does not stop the others.
func (e *Engine) ParseFiles(ctx context.Context, paths []string) []FileResult {
	results := make([]FileResult, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.options.Workers)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			res, err := e.ParseFile(gctx, path)
			results[i] = FileResult{Path: path, Result: res, Err: err}
			return nil
		})
	}
	_ = g.Wait()

	return results
}

func (e *Engine) parse(ctx context.Context, source string, tokens []mdwtoken.Token) (*Result, error) {
	requestID := uuid.NewString()
	logger := e.logger.WithRequestID(requestID)
	if source != "" {
		logger = logger.WithField("source", source)
	}

	if err := ctx.Err(); err != nil {
		return nil, mdwerror.Wrap(err, "parse canceled").
			WithCode(mdwerror.CodeCanceled).
			WithOperation("drawlang.Parse").
			WithRequestID(requestID)
	}

	if e.options.MaxTokens > 0 && len(tokens) > e.options.MaxTokens {
		err := mdwerror.Newf("token stream too large: %d tokens, limit %d", len(tokens), e.options.MaxTokens).
			WithCode(mdwerror.CodeStreamTooLarge).
			WithOperation("drawlang.Parse").
			WithRequestID(requestID).
			WithDetail("tokens", len(tokens)).
			WithDetail("limit", e.options.MaxTokens)
		logger.LogError(err)
		return nil, err
	}

	var opts []mdwparser.Option
	if e.options.Trace {
		opts = append(opts, mdwparser.WithTracer(NewLogTracer(logger)))
	}

	logger.Debug("parse started", mdwlog.Fields{"tokens": len(tokens)})
	timer := logger.StartTimer("parse").WithField("tokens", len(tokens))

	root, err := mdwparser.New(tokens, opts...).ParseProgram()
	if err != nil {
		var syntaxErr *mdwparser.SyntaxError
		var wrapped *mdwerror.Error
		if errors.As(err, &syntaxErr) {
			wrapped = syntaxErr.AsError()
		} else {
			wrapped = mdwerror.Wrap(err, "parse failed").WithCode(mdwerror.CodeInternal)
		}
		wrapped = wrapped.WithRequestID(requestID)
		if source != "" {
			wrapped = wrapped.WithDetail("source", source)
		}
		timer.StopWithError(wrapped)
		return nil, wrapped
	}

	if err := mdwast.Validate(root); err != nil {
		wrapped := mdwerror.Wrap(err, "parser produced a malformed tree").
			WithOperation("drawlang.Parse").
			WithRequestID(requestID)
		logger.LogError(wrapped)
		return nil, wrapped
	}

	elapsed := timer.Stop()
	return &Result{
		RequestID: requestID,
		Source:    source,
		Root:      root,
		Tokens:    len(tokens),
		Nodes:     mdwast.Count(root),
		Depth:     mdwast.Depth(root),
		Duration:  elapsed,
	}, nil
}
