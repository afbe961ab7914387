// File: ast.go
// Title: Formula Parse Tree
// Description: Owned recursive value types produced by the parser. The tree
//              is discarded once the composition has been built from it.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.2.0: Initial parse tree with groups and segments

package parser

import (
	"strconv"
	"strings"
)

// GroupNode is either a leaf {Symbol, Count} or a parenthesized group
// {Children, Multiplier}.
type GroupNode struct {
	Symbol     string
	Count      int
	Children   []GroupNode
	Multiplier int
	Position   int
}

// IsLeaf reports whether the node is a single element
func (n GroupNode) IsLeaf() bool {
	return n.Symbol != ""
}

// String returns the node in formula notation
func (n GroupNode) String() string {
	var sb strings.Builder
	n.write(&sb)
	return sb.String()
}

func (n GroupNode) write(sb *strings.Builder) {
	if n.IsLeaf() {
		sb.WriteString(n.Symbol)
		writeCount(sb, n.Count)
		return
	}
	sb.WriteByte('(')
	for _, c := range n.Children {
		c.write(sb)
	}
	sb.WriteByte(')')
	writeCount(sb, n.Multiplier)
}

// Segment is one hydration separated clause with its leading coefficient
type Segment struct {
	Coefficient int
	Nodes       []GroupNode
	Position    int
}

// String returns the segment in formula notation
func (s Segment) String() string {
	var sb strings.Builder
	writeCount(&sb, s.Coefficient)
	for _, n := range s.Nodes {
		n.write(&sb)
	}
	return sb.String()
}

// Tree is the result of a successful parse
type Tree struct {
	Input    string
	Segments []Segment
}

// String returns the tree in normalized formula notation: counts of one
// are dropped and segments are joined with "*".
func (t *Tree) String() string {
	parts := make([]string, len(t.Segments))
	for i, s := range t.Segments {
		parts[i] = s.String()
	}
	return strings.Join(parts, "*")
}

// Leaves calls fn for every element leaf in left-to-right order with the
// count multiplied by all enclosing group multipliers and the segment
// coefficient. Products above MaxCount are reported as MaxCount+1.
func (t *Tree) Leaves(fn func(symbol string, count int64, position int)) {
	for _, s := range t.Segments {
		for _, n := range s.Nodes {
			walk(n, int64(s.Coefficient), fn)
		}
	}
}

func walk(n GroupNode, factor int64, fn func(string, int64, int)) {
	if n.IsLeaf() {
		fn(n.Symbol, saturatingMul(factor, int64(n.Count)), n.Position)
		return
	}
	factor = saturatingMul(factor, int64(n.Multiplier))
	for _, c := range n.Children {
		walk(c, factor, fn)
	}
}

func writeCount(sb *strings.Builder, n int) {
	if n > 1 {
		sb.WriteString(strconv.Itoa(n))
	}
}

func saturatingMul(a, b int64) int64 {
	if p := a * b; p <= MaxCount {
		return p
	}
	return MaxCount + 1
}
