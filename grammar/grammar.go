// Package grammar defines the document structure grammar as data: a table of
// non-terminals, each owning an ordered list of alternative productions over
// terminals, non-terminal references, and the content placeholder.
//
// Alternatives are recognized with ordered choice: the first one that derives
// successfully wins, so grammar authors must place more specific alternatives
// before more general ones. A grammar is immutable once validated and may be
// shared across concurrent recognizer calls.
package grammar

type SymbolKind int

const (
	// TermKind marks a terminal, matched against a token by exact literal equality.
	TermKind SymbolKind = iota

	// NontermKind marks a reference to a declared non-terminal.
	NontermKind

	// ContentKind marks the content placeholder, matched by any content token.
	ContentKind
)

// Symbol is one element of a production right-hand side.
type Symbol struct {
	Kind SymbolKind
	Name string
}

// Term creates a terminal symbol for a tag literal.
func Term(name string) Symbol {
	return Symbol{TermKind, name}
}

// Ref creates a reference to the non-terminal with the given name.
func Ref(name string) Symbol {
	return Symbol{NontermKind, name}
}

// Content creates the content placeholder symbol.
func Content() Symbol {
	return Symbol{Kind: ContentKind}
}

// Production is one ordered right-hand-side alternative. An empty production
// derives the empty token sequence.
type Production []Symbol

// Nonterm is a named grammar category with its ordered alternatives.
type Nonterm struct {
	Name        string
	Productions []Production
}

// Grammar is the set of all non-terminals plus the designated start symbol
// and the declared terminal set.
type Grammar struct {
	start     string
	nonterms  []Nonterm
	index     map[string]int
	terminals map[string]struct{}
}

// New assembles a grammar. The result must pass Validate before being handed
// to a recognizer; New itself performs no checks.
func New(start string, terminals []string, nonterms []Nonterm) *Grammar {
	g := &Grammar{
		start:     start,
		nonterms:  nonterms,
		index:     make(map[string]int, len(nonterms)),
		terminals: make(map[string]struct{}, len(terminals)),
	}
	for i, nt := range nonterms {
		g.index[nt.Name] = i
	}
	for _, t := range terminals {
		g.terminals[t] = struct{}{}
	}
	return g
}

// Start returns the start symbol name.
func (g *Grammar) Start() string {
	return g.start
}

// Nonterms returns a copy of the declared non-terminals in declaration
// order. Productions are copied too, so mutating the result cannot reach the
// grammar.
func (g *Grammar) Nonterms() []Nonterm {
	res := make([]Nonterm, len(g.nonterms))
	for i, nt := range g.nonterms {
		prods := make([]Production, len(nt.Productions))
		for j, prod := range nt.Productions {
			prods[j] = append(Production(nil), prod...)
		}
		res[i] = Nonterm{Name: nt.Name, Productions: prods}
	}
	return res
}

// NontermIndex returns the declaration index of a non-terminal name.
func (g *Grammar) NontermIndex(name string) (index int, found bool) {
	index, found = g.index[name]
	return
}

// IsTerminal reports whether name is a declared terminal literal.
func (g *Grammar) IsTerminal(name string) bool {
	_, found := g.terminals[name]
	return found
}
