package grammar

// Validate runs the one-time grammar self-check: the start symbol must be a
// declared non-terminal and every symbol occurring in every production must
// be a declared non-terminal, a declared terminal, or the content
// placeholder. A violation is a definitional error surfaced before any
// document is processed, never a per-document failure.
func (g *Grammar) Validate() error {
	if _, found := g.index[g.start]; !found {
		return startSymbolError(g.start)
	}

	declared := make(map[string]struct{}, len(g.nonterms))
	for _, nt := range g.nonterms {
		if _, found := declared[nt.Name]; found {
			return redefinedNontermError(nt.Name)
		}
		declared[nt.Name] = struct{}{}
	}

	for _, nt := range g.nonterms {
		for _, prod := range nt.Productions {
			for _, sym := range prod {
				if e := g.checkSymbol(nt.Name, sym); e != nil {
					return e
				}
			}
		}
	}

	return nil
}

func (g *Grammar) checkSymbol(nonterm string, sym Symbol) error {
	switch sym.Kind {
	case ContentKind:
		return nil
	case NontermKind:
		if _, found := g.index[sym.Name]; !found {
			return unknownSymbolError(nonterm, sym.Name)
		}
	case TermKind:
		if !g.IsTerminal(sym.Name) {
			return unknownSymbolError(nonterm, sym.Name)
		}
	}
	return nil
}
