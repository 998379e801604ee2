// File: parser.go
// Title: Drawing Language Recursive Descent Parser
// Description: Converts a token stream into a Program-rooted syntax tree.
//              One method per grammar production; the cursor only moves
//              forward and only through Eat. Parsing stops at the first
//              violation and no partial tree is returned.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial parser implementation

package parser

import (
	"fmt"
	"strconv"

	"github.com/msto63/drawlang/foundation/drawlang/ast"
	"github.com/msto63/drawlang/foundation/drawlang/token"
)

// Parser holds the cursor over one token stream. A Parser is used for a
// single parse by a single goroutine.
type Parser struct {
	tokens []token.Token
	pos    int
	tracer Tracer
}

// New creates a parser positioned at the first token
func New(tokens []token.Token, opts ...Option) *Parser {
	p := &Parser{
		tokens: tokens,
		tracer: nopTracer{},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse is shorthand for New(tokens, opts...).ParseProgram()
func Parse(tokens []token.Token, opts ...Option) (*ast.Node, error) {
	return New(tokens, opts...).ParseProgram()
}

// Position returns the cursor index
func (p *Parser) Position() int {
	return p.pos
}

// CurrentToken returns the token at the cursor; ok is false past the end
func (p *Parser) CurrentToken() (tok token.Token, ok bool) {
	if p.pos >= len(p.tokens) {
		return token.Token{}, false
	}
	return p.tokens[p.pos], true
}

// Eat advances past the current token if it has the given kind, and
// fails with a SyntaxError otherwise. Only the kind is checked.
func (p *Parser) Eat(kind token.Kind) error {
	tok, ok := p.CurrentToken()
	if ok && tok.Kind == kind {
		p.pos++
		return nil
	}

	expected := kind
	err := p.fail("expected %s, found %s", kind, describe(p.current()))
	err.Expected = &expected
	return err
}

// ParseProgram parses statements until the tokens are exhausted
func (p *Parser) ParseProgram() (*ast.Node, error) {
	p.trace("program")

	root := ast.New(ast.Program, nil)
	for p.pos < len(p.tokens) {
		stmt, err := p.ParseStatement()
		if err != nil {
			return nil, err
		}
		if stmt != nil {
			root.AddChild(stmt)
		}
	}
	return root, nil
}

// ParseStatement dispatches on the current token. A bare ";" and the end
// of input yield neither a node nor an error.
func (p *Parser) ParseStatement() (*ast.Node, error) {
	p.trace("statement")

	tok, ok := p.CurrentToken()
	if !ok {
		return nil, nil
	}

	switch {
	case tok.Kind == token.Keyword:
		switch tok.Text {
		case token.KwDraw:
			return p.ParseDrawStatement()
		case token.KwGrid:
			return p.ParseGridStatement()
		case token.KwWrite:
			return p.ParseWriteStatement()
		default:
			return nil, p.fail("unknown statement %s", tok.Text)
		}

	case tok.Is(token.SpecialSymbol, token.LParen):
		return p.ParseExpression()

	case tok.Is(token.SpecialSymbol, token.Semicolon):
		return nil, p.Eat(token.SpecialSymbol)

	default:
		return nil, p.fail("unexpected token %s", tok)
	}
}

// ParseDrawStatement parses draw ( Expression )
func (p *Parser) ParseDrawStatement() (*ast.Node, error) {
	p.trace("draw")

	if err := p.expectKeyword(token.KwDraw); err != nil {
		return nil, err
	}
	if err := p.Eat(token.SpecialSymbol); err != nil {
		return nil, err
	}
	expr, err := p.ParseExpression()
	if err != nil {
		return nil, err
	}
	if err := p.Eat(token.SpecialSymbol); err != nil {
		return nil, err
	}

	node := ast.New(ast.Draw, nil)
	node.AddChild(expr)
	return node, nil
}

// ParseWriteStatement parses write ( Expression (+ Expression)* ). Extra
// operands fold to the left under Expression(+) nodes.
func (p *Parser) ParseWriteStatement() (*ast.Node, error) {
	p.trace("write")

	if err := p.expectKeyword(token.KwWrite); err != nil {
		return nil, err
	}
	if err := p.Eat(token.SpecialSymbol); err != nil {
		return nil, err
	}

	acc, err := p.ParseExpression()
	if err != nil {
		return nil, err
	}
	for p.at(token.Operator, token.Plus) {
		if err := p.Eat(token.Operator); err != nil {
			return nil, err
		}
		right, err := p.ParseExpression()
		if err != nil {
			return nil, err
		}
		prev := acc
		acc = ast.NewText(ast.Expression, token.Plus)
		acc.AddChild(prev)
		acc.AddChild(right)
	}

	if err := p.Eat(token.SpecialSymbol); err != nil {
		return nil, err
	}

	node := ast.New(ast.WriteStatement, nil)
	node.AddChild(acc)
	return node, nil
}

// ParseGridStatement parses grid ( Number , Number , GridContent )
func (p *Parser) ParseGridStatement() (*ast.Node, error) {
	p.trace("grid")

	if err := p.expectKeyword(token.KwGrid); err != nil {
		return nil, err
	}
	if err := p.Eat(token.SpecialSymbol); err != nil {
		return nil, err
	}
	rows, err := p.parseDimension()
	if err != nil {
		return nil, err
	}
	if err := p.Eat(token.SpecialSymbol); err != nil {
		return nil, err
	}
	cols, err := p.parseDimension()
	if err != nil {
		return nil, err
	}
	if err := p.Eat(token.SpecialSymbol); err != nil {
		return nil, err
	}
	content, err := p.ParseGridContent()
	if err != nil {
		return nil, err
	}
	if err := p.Eat(token.SpecialSymbol); err != nil {
		return nil, err
	}

	node := ast.New(ast.GridStatement, ast.GridSize{Rows: rows, Cols: cols})
	node.AddChild(content)
	return node, nil
}

// ParseGridContent parses comma separated draw and write statements. It
// stops without error at the first position that does not continue the
// list.
func (p *Parser) ParseGridContent() (*ast.Node, error) {
	p.trace("grid_content")

	content := ast.New(ast.GridContent, nil)
	for {
		tok, ok := p.CurrentToken()
		if !ok || tok.Kind != token.Keyword {
			break
		}

		var (
			item *ast.Node
			err  error
		)
		switch tok.Text {
		case token.KwDraw:
			item, err = p.ParseDrawStatement()
		case token.KwWrite:
			item, err = p.ParseWriteStatement()
		default:
			return nil, p.fail("unexpected keyword %s", tok.Text)
		}
		if err != nil {
			return nil, err
		}
		content.AddChild(item)

		if !p.at(token.SpecialSymbol, token.Comma) {
			break
		}
		if err := p.Eat(token.SpecialSymbol); err != nil {
			return nil, err
		}
	}
	return content, nil
}

// ParseExpression parses Factor (Operator Factor)* folding to the left
func (p *Parser) ParseExpression() (*ast.Node, error) {
	p.trace("expression")

	acc, err := p.ParseFactor()
	if err != nil {
		return nil, err
	}

	for {
		tok, ok := p.CurrentToken()
		if !ok || tok.Kind != token.Operator {
			return acc, nil
		}
		if err := p.Eat(token.Operator); err != nil {
			return nil, err
		}
		right, err := p.ParseFactor()
		if err != nil {
			return nil, err
		}

		prev := acc
		acc = ast.NewText(ast.Expression, tok.Text)
		acc.AddChild(prev)
		acc.AddChild(right)
	}
}

// ParseFactor parses a nested draw, an identifier, a number or a
// parenthesised expression. Parentheses leave no node behind.
func (p *Parser) ParseFactor() (*ast.Node, error) {
	p.trace("factor")

	tok, ok := p.CurrentToken()
	if !ok {
		return nil, p.fail("unexpected token %s", describe(nil))
	}

	switch {
	case tok.Is(token.Keyword, token.KwDraw):
		return p.ParseDrawStatement()

	case tok.Kind == token.Identifier:
		if err := p.Eat(token.Identifier); err != nil {
			return nil, err
		}
		return ast.NewText(ast.Identifier, tok.Text), nil

	case tok.Kind == token.Number:
		if err := p.Eat(token.Number); err != nil {
			return nil, err
		}
		return ast.NewText(ast.Number, tok.Text), nil

	case tok.Is(token.SpecialSymbol, token.LParen):
		if err := p.Eat(token.SpecialSymbol); err != nil {
			return nil, err
		}
		expr, err := p.ParseExpression()
		if err != nil {
			return nil, err
		}
		if err := p.Eat(token.SpecialSymbol); err != nil {
			return nil, err
		}
		return expr, nil

	default:
		return nil, p.fail("unexpected token %s", tok)
	}
}

// parseDimension consumes a Number token and converts it to a grid size
func (p *Parser) parseDimension() (int, error) {
	tok, _ := p.CurrentToken()
	if err := p.Eat(token.Number); err != nil {
		return 0, err
	}

	n, convErr := strconv.Atoi(tok.Text)
	if convErr != nil || n < 0 {
		err := p.fail("invalid grid dimension %q", tok.Text)
		err.Position = p.pos - 1
		err.Token = &tok
		return 0, err
	}
	return n, nil
}

func (p *Parser) expectKeyword(text string) error {
	if p.at(token.Keyword, text) {
		return p.Eat(token.Keyword)
	}

	expected := token.Keyword
	err := p.fail("expected keyword %s, found %s", text, describe(p.current()))
	err.Expected = &expected
	return err
}

func (p *Parser) at(kind token.Kind, text string) bool {
	tok, ok := p.CurrentToken()
	return ok && tok.Is(kind, text)
}

func (p *Parser) current() *token.Token {
	tok, ok := p.CurrentToken()
	if !ok {
		return nil
	}
	return &tok
}

func (p *Parser) fail(format string, args ...interface{}) *SyntaxError {
	return &SyntaxError{
		Token:    p.current(),
		Position: p.pos,
		Message:  fmt.Sprintf(format, args...),
	}
}

func (p *Parser) trace(production string) {
	p.tracer.Enter(production, p.pos, p.current())
}
