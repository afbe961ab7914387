// File: lexer.go
// Title: Formula Lexical Analyzer (Tokenizer)
// Description: Converts formula strings into a stream of element, digit,
//              parenthesis and hydration tokens. Element symbols are
//              validated against a SymbolSet while scanning.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-25 v0.1.0: Initial lexer implementation
// - 2026-10-17 v0.2.0: Formula tokens with greedy element symbol matching

package parser

import (
	"fmt"
	"math"
	"strconv"
	"unicode/utf8"
)

// TokenType represents the type of a lexical token
type TokenType int

const (
	TokenEOF       TokenType = iota
	TokenElement             // Fe, C, N
	TokenDigits              // 6, 12
	TokenOpen                // (
	TokenClose               // )
	TokenHydration           // *
)

// MaxCount is the largest count a single digit run may carry
const MaxCount = math.MaxInt32

// Token represents a lexical token with position information
type Token struct {
	Type     TokenType
	Value    string // token text
	Count    int    // numeric value of TokenDigits
	Position int    // byte position in input
}

// String returns a string representation of the token
func (t Token) String() string {
	if t.Type == TokenEOF {
		return "EOF"
	}
	return fmt.Sprintf("%s(%s)", t.Type.String(), t.Value)
}

// String returns a string representation of the token type
func (tt TokenType) String() string {
	switch tt {
	case TokenEOF:
		return "EOF"
	case TokenElement:
		return "ELEMENT"
	case TokenDigits:
		return "DIGITS"
	case TokenOpen:
		return "OPEN"
	case TokenClose:
		return "CLOSE"
	case TokenHydration:
		return "HYDRATION"
	default:
		return "UNKNOWN"
	}
}

// SymbolSet is the view of an element table the lexer needs
type SymbolSet interface {
	Has(symbol string) bool
}

// Lexer performs lexical analysis of formula input
type Lexer struct {
	input    string
	position int  // current position in input (points to current char)
	readPos  int  // current reading position (after current char)
	ch       byte // current char under examination
	symbols  SymbolSet
	err      *ParseError
}

// NewLexer creates a new lexer for the given input
func NewLexer(input string, symbols SymbolSet) *Lexer {
	l := &Lexer{
		input:   input,
		symbols: symbols,
	}
	l.readChar()
	return l
}

// NextToken returns the next token from the input. After the first error
// every further call returns the same error.
func (l *Lexer) NextToken() (Token, error) {
	if l.err != nil {
		return Token{}, l.err
	}

	pos := l.position
	var tok Token

	switch l.ch {
	case 0:
		if l.position >= len(l.input) {
			return Token{Type: TokenEOF, Position: pos}, nil
		}
		return Token{}, l.fail(UnrecognizedCharacter, pos, "\x00")
	case '(':
		tok = Token{Type: TokenOpen, Value: "(", Position: pos}
	case ')':
		tok = Token{Type: TokenClose, Value: ")", Position: pos}
	case '*':
		tok = Token{Type: TokenHydration, Value: "*", Position: pos}
	default:
		if isLetter(l.ch) {
			return l.readElement()
		}
		if isDigit(l.ch) {
			return l.readDigits()
		}
		r, _ := utf8.DecodeRuneInString(l.input[pos:])
		return Token{}, l.fail(UnrecognizedCharacter, pos, string(r))
	}

	l.readChar()
	return tok, nil
}

// Tokenize returns all tokens of input including the final EOF token, or
// the first error. A partial stream is never returned.
func Tokenize(input string, symbols SymbolSet) ([]Token, error) {
	l := NewLexer(input, symbols)
	var tokens []Token

	for {
		tok, err := l.NextToken()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Type == TokenEOF {
			return tokens, nil
		}
	}
}

// readElement matches the longest known symbol at the current position
func (l *Lexer) readElement() (Token, error) {
	pos := l.position

	if isLetter(l.peekChar()) {
		two := l.input[pos : pos+2]
		if l.symbols.Has(two) {
			l.readChar()
			l.readChar()
			return Token{Type: TokenElement, Value: two, Position: pos}, nil
		}
	}

	one := l.input[pos : pos+1]
	if l.symbols.Has(one) {
		l.readChar()
		return Token{Type: TokenElement, Value: one, Position: pos}, nil
	}

	near := one
	if isLetter(l.peekChar()) {
		near = l.input[pos : pos+2]
	}
	return Token{}, l.fail(UnknownElementSymbol, pos, near)
}

// readDigits collapses a digit run into one count
func (l *Lexer) readDigits() (Token, error) {
	pos := l.position
	for isDigit(l.ch) {
		l.readChar()
	}
	text := l.input[pos:l.position]

	n, err := strconv.Atoi(text)
	if err != nil || n < 1 || n > MaxCount {
		return Token{}, l.fail(InvalidCount, pos, text)
	}
	return Token{Type: TokenDigits, Value: text, Count: n, Position: pos}, nil
}

func (l *Lexer) fail(kind ErrorKind, pos int, near string) *ParseError {
	l.err = &ParseError{Kind: kind, Position: pos, Input: l.input, Near: near}
	return l.err
}

// readChar reads the next character and advances position
func (l *Lexer) readChar() {
	if l.readPos >= len(l.input) {
		l.ch = 0 // ASCII NUL character represents EOF
	} else {
		l.ch = l.input[l.readPos]
	}
	l.position = l.readPos
	l.readPos++
}

// peekChar returns the next character without advancing position
func (l *Lexer) peekChar() byte {
	if l.readPos >= len(l.input) {
		return 0
	}
	return l.input[l.readPos]
}

func isLetter(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}
