package formula

import (
	"sort"

	"github.com/msto63/chemformula/internal/elements"
	"github.com/msto63/chemformula/internal/parser"
)

// fromTree sums leaf counts per element and records first-occurrence order
func fromTree(tree *parser.Tree) (map[string]int, []string, error) {
	counts := make(map[string]int64)
	var order []string
	var err error

	tree.Leaves(func(symbol string, count int64, position int) {
		if err != nil {
			return
		}
		if _, seen := counts[symbol]; !seen {
			order = append(order, symbol)
		}
		counts[symbol] += count
		if counts[symbol] > parser.MaxCount {
			err = &ParseError{Kind: InvalidCount, Position: position, Input: tree.Input, Near: symbol}
		}
	})
	if err != nil {
		return nil, nil, err
	}

	composition := make(map[string]int, len(counts))
	for sym, c := range counts {
		composition[sym] = int(c)
	}
	return composition, order, nil
}

// fromComposition validates an explicit composition. Its sum order is
// ascending atomic number.
func fromComposition(in map[string]int, table *elements.Table) (map[string]int, []string, error) {
	if len(in) == 0 {
		return nil, nil, &ParseError{Kind: EmptySegment, Position: -1}
	}

	symbols := make([]string, 0, len(in))
	for sym := range in {
		symbols = append(symbols, sym)
	}
	sort.Strings(symbols)

	numbers := make(map[string]int, len(in))
	composition := make(map[string]int, len(in))
	for _, sym := range symbols {
		e, ok := table.Lookup(sym)
		if !ok {
			return nil, nil, &ParseError{Kind: UnknownElementSymbol, Position: -1, Near: sym}
		}
		count := in[sym]
		if count <= 0 || count > parser.MaxCount {
			return nil, nil, &ParseError{Kind: InvalidCount, Position: -1, Near: sym}
		}
		numbers[sym] = e.Number
		composition[sym] = count
	}

	sort.SliceStable(symbols, func(i, j int) bool {
		return numbers[symbols[i]] < numbers[symbols[j]]
	})
	return composition, symbols, nil
}
