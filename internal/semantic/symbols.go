package semantic

import (
	"sort"

	"umjunsik/internal/ast"
)

// Symbol records where a variable index is assigned and read
type Symbol struct {
	Index   int
	Assigns []ast.Position
	Reads   []ast.Position
}

type SymbolTable struct {
	symbols map[int]*Symbol
}

func NewSymbolTable() *SymbolTable {
	return &SymbolTable{symbols: make(map[int]*Symbol)}
}

func (st *SymbolTable) lookupOrDefine(index int) *Symbol {
	if symbol, exists := st.symbols[index]; exists {
		return symbol
	}
	symbol := &Symbol{Index: index}
	st.symbols[index] = symbol
	return symbol
}

func (st *SymbolTable) Assign(index int, pos ast.Position) {
	symbol := st.lookupOrDefine(index)
	symbol.Assigns = append(symbol.Assigns, pos)
}

func (st *SymbolTable) Read(index int, pos ast.Position) {
	symbol := st.lookupOrDefine(index)
	symbol.Reads = append(symbol.Reads, pos)
}

func (st *SymbolTable) Lookup(index int) *Symbol {
	return st.symbols[index]
}

// Symbols returns every symbol ordered by variable index
func (st *SymbolTable) Symbols() []*Symbol {
	symbols := make([]*Symbol, 0, len(st.symbols))
	for _, symbol := range st.symbols {
		symbols = append(symbols, symbol)
	}
	sort.Slice(symbols, func(i, j int) bool { return symbols[i].Index < symbols[j].Index })
	return symbols
}
