package grammar

import (
	err "github.com/docling-go/doctags/errors"
)

// Error codes used by the grammar self-check:
const (
	StartSymbolError = err.GrammarErrors + iota
	UnknownSymbolError
	RedefinedNontermError
)

func startSymbolError(name string) *err.Error {
	return err.Format(StartSymbolError, "start symbol %q is not a declared non-terminal", name)
}

func unknownSymbolError(nonterm, symbol string) *err.Error {
	return err.Format(UnknownSymbolError, "unknown symbol %q in a production of %q", symbol, nonterm)
}

func redefinedNontermError(name string) *err.Error {
	return err.Format(RedefinedNontermError, "non-terminal %q declared twice", name)
}
