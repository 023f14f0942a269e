package common

import (
	"decafc/dtypes"
	"decafc/report"
)

type SymbolKind uint8

const (
	SK_FIELD SymbolKind = iota
	SK_PARAM
	SK_LOCAL
)

func (sk SymbolKind) String() string {
	switch sk {
	case SK_FIELD:
		return "field"
	case SK_PARAM:
		return "param"
	default:
		return "local"
	}
}

type Symbol struct {
	Name string
	Type dtypes.Type
	Kind SymbolKind
	Span *report.TextSpan
}

/* -------------------------------------------------------------------------- */

// SymbolTable is the flat name table of one compilation unit. Fields,
// parameters and locals share it; there is no block scoping and the first
// declaration of a name always wins.
type SymbolTable struct {
	byName  map[string]*Symbol
	entries []*Symbol
}

func NewSymbolTable() *SymbolTable {
	return &SymbolTable{byName: make(map[string]*Symbol)}
}

// Declare adds sym unless its name is taken, in which case the existing entry
// is returned with ok false and the table is left untouched.
func (st *SymbolTable) Declare(sym *Symbol) (prev *Symbol, ok bool) {
	if prev, exists := st.byName[sym.Name]; exists {
		return prev, false
	}

	st.byName[sym.Name] = sym
	st.entries = append(st.entries, sym)
	return nil, true
}

func (st *SymbolTable) Lookup(name string) (*Symbol, bool) {
	sym, ok := st.byName[name]
	return sym, ok
}

// Entries returns the symbols in declaration order.
func (st *SymbolTable) Entries() []*Symbol {
	return st.entries
}

func (st *SymbolTable) Len() int {
	return len(st.entries)
}
