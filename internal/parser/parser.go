// File: parser.go
// Title: Formula Parser Implementation
// Description: Recursive descent parser turning a token stream into a parse
//              tree of segments and groups. Fails immediately on the first
//              grammar violation.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-25 v0.1.0: Initial parser implementation
// - 2026-10-17 v0.2.0: Formula grammar, typed parse errors

package parser

import (
	mdwerror "github.com/msto63/chemformula/foundation/core/error"
	mdwlog "github.com/msto63/chemformula/foundation/core/log"
)

// DefaultMaxInputLength bounds the formula length accepted by Parse
const DefaultMaxInputLength = 4096

// Parser implements recursive descent parsing for formulas. A Parser is not
// safe for concurrent use; create one per goroutine.
type Parser struct {
	lexer   *Lexer
	input   string
	current Token
	symbols SymbolSet
	logger  *mdwlog.Logger
	options Options
}

// Options configures parser behavior
type Options struct {
	Logger         *mdwlog.Logger
	MaxInputLength int
}

// New creates a new parser validating element symbols against symbols
func New(symbols SymbolSet, opts Options) *Parser {
	if opts.Logger == nil {
		opts.Logger = mdwlog.GetDefault()
	}
	if opts.MaxInputLength <= 0 {
		opts.MaxInputLength = DefaultMaxInputLength
	}

	return &Parser{
		symbols: symbols,
		logger:  opts.Logger.WithField("component", "formula-parser"),
		options: opts,
	}
}

// Parse parses a formula string and returns its parse tree
func (p *Parser) Parse(input string) (*Tree, error) {
	if len(input) > p.options.MaxInputLength {
		return nil, mdwerror.Newf("input exceeds maximum length: %d > %d",
			len(input), p.options.MaxInputLength).
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("parser.Parse")
	}

	p.lexer = NewLexer(input, p.symbols)
	p.input = input

	p.logger.Debug("Starting formula parsing", mdwlog.Fields{
		"input":  input,
		"length": len(input),
	})

	tree, err := p.parseFormula()
	if err != nil {
		p.logger.Debug("Formula rejected", mdwlog.Fields{
			"input": input,
			"error": err.Error(),
		})
		return nil, err
	}

	p.logger.Debug("Formula parsing completed", mdwlog.Fields{
		"input":    input,
		"segments": len(tree.Segments),
	})

	return tree, nil
}

// parseFormula parses Segment ("*" Segment)*
func (p *Parser) parseFormula() (*Tree, error) {
	if err := p.advance(); err != nil {
		return nil, err
	}

	tree := &Tree{Input: p.input}

	for {
		seg, err := p.parseSegment(len(tree.Segments) > 0, false)
		if err != nil {
			return nil, err
		}
		tree.Segments = append(tree.Segments, seg)

		switch p.current.Type {
		case TokenHydration:
			if err := p.advance(); err != nil {
				return nil, err
			}
		case TokenEOF:
			return tree, nil
		default:
			// only a ')' can stop a top level segment
			return nil, p.errorAt(UnbalancedParentheses)
		}
	}
}

// parseSegment parses [Digits] Term+
func (p *Parser) parseSegment(allowCoefficient, nested bool) (Segment, error) {
	seg := Segment{Coefficient: 1, Position: p.current.Position}

	if p.current.Type == TokenDigits {
		if !allowCoefficient {
			return Segment{}, p.errorAt(DanglingMultiplier)
		}
		seg.Coefficient = p.current.Count
		if err := p.advance(); err != nil {
			return Segment{}, err
		}
	}

	for p.current.Type == TokenElement || p.current.Type == TokenOpen {
		node, err := p.parseTerm()
		if err != nil {
			return Segment{}, err
		}
		seg.Nodes = append(seg.Nodes, node)
	}

	if len(seg.Nodes) == 0 {
		switch {
		case nested && (p.current.Type == TokenEOF || p.current.Type == TokenHydration):
			return Segment{}, p.errorAt(UnbalancedParentheses)
		case !nested && p.current.Type == TokenClose:
			return Segment{}, p.errorAt(UnbalancedParentheses)
		default:
			return Segment{}, p.errorAt(EmptySegment)
		}
	}

	return seg, nil
}

// parseTerm parses (ElementSymbol | "(" Segment ")") [Digits]
func (p *Parser) parseTerm() (GroupNode, error) {
	var node GroupNode

	if p.current.Type == TokenElement {
		node = GroupNode{Symbol: p.current.Value, Count: 1, Position: p.current.Position}
		if err := p.advance(); err != nil {
			return GroupNode{}, err
		}
		if p.current.Type == TokenDigits {
			node.Count = p.current.Count
			if err := p.advance(); err != nil {
				return GroupNode{}, err
			}
		}
		return node, nil
	}

	// TokenOpen
	node = GroupNode{Multiplier: 1, Position: p.current.Position}
	if err := p.advance(); err != nil {
		return GroupNode{}, err
	}

	inner, err := p.parseSegment(false, true)
	if err != nil {
		return GroupNode{}, err
	}
	if p.current.Type != TokenClose {
		return GroupNode{}, p.errorAt(UnbalancedParentheses)
	}
	node.Children = inner.Nodes

	if err := p.advance(); err != nil {
		return GroupNode{}, err
	}
	if p.current.Type == TokenDigits {
		node.Multiplier = p.current.Count
		if err := p.advance(); err != nil {
			return GroupNode{}, err
		}
	}

	return node, nil
}

// advance moves to the next token
func (p *Parser) advance() error {
	tok, err := p.lexer.NextToken()
	if err != nil {
		return err
	}
	p.current = tok
	return nil
}

// errorAt creates a parse error at the current token
func (p *Parser) errorAt(kind ErrorKind) *ParseError {
	return &ParseError{
		Kind:     kind,
		Position: p.current.Position,
		Input:    p.input,
		Near:     p.current.Value,
	}
}

// Parse parses input with a throwaway parser using default options
func Parse(input string, symbols SymbolSet) (*Tree, error) {
	return New(symbols, Options{}).Parse(input)
}
