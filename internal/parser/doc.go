// File: doc.go
// Title: Formula Parser Package Documentation
// Description: Lexical analyzer and recursive descent parser for chemical
//              formula strings.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-25 v0.1.0: Initial parser implementation
// - 2026-10-17 v0.2.0: Formula grammar with groups and hydration segments

/*
Package parser turns formula strings such as "Fe(CN)6*5H2O" into a parse tree.

Grammar (one token of lookahead):

	Formula  := Segment ("*" Segment)*
	Segment  := [Digits] Term+
	Term     := (ElementSymbol | "(" Segment ")") [Digits]

A leading coefficient is only allowed on segments after a "*". Element
symbols are matched greedily against a SymbolSet, two letters before one,
so "Co" is cobalt while "CO" is carbon followed by oxygen.

Every failure is a *ParseError carrying an ErrorKind and the byte position
of the offending input. Parsing stops at the first error; no partial tree
is returned.
*/
package parser
