package parser

import (
	err "github.com/docling-go/doctags/errors"
)

// Error codes used by parser:
const (
	NilGrammarError = err.ParserErrors + iota
)

func nilGrammarError() *err.Error {
	return err.Format(NilGrammarError, "parser needs a non-nil grammar")
}
