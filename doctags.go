/*
Package doctags validates serialized DocTags strings, a flat tag-based markup
encoding the layout of a parsed document (text blocks, tables, pictures,
lists, code, formulas, each optionally annotated with location markers).

Consists of subpackages:
  - token: catalog of terminal tag literals for one grammar version;
  - lexer: tokenizer turning a raw string into a terminal/content token sequence;
  - grammar: grammar-as-data model, its self-check, and the built-in document grammar;
  - parser: recursive-descent recognizer deciding membership;
  - tree: content-tree container for extracted key/value data;
  - schema: conformance checks against the legacy RAW/ANN/OCR JSON schemas;
  - validators: generic value validators (unique list, datetime-or-string);
  - source: resolution of local and remote document sources;
  - cmd/doctags: console validator.

Typical usage is a single call:

	ok := doctags.Validate(raw)

which tokenizes the string and decides whether it is derivable from the
built-in document grammar. The grammar and tokenizer are built and
self-checked once; validation calls share them safely from any number of
goroutines.
*/
package doctags

import (
	"sync"

	"github.com/docling-go/doctags/grammar"
	"github.com/docling-go/doctags/lexer"
	"github.com/docling-go/doctags/parser"
	"github.com/docling-go/doctags/token"
)

var (
	defaultOnce   sync.Once
	defaultLexer  *lexer.Lexer
	defaultParser *parser.Parser
)

func defaults() (*lexer.Lexer, *parser.Parser) {
	defaultOnce.Do(func() {
		catalog := token.Default()
		g := grammar.DocTags(catalog)
		p, e := parser.New(g)
		if e != nil {
			panic("doctags: built-in grammar failed self-check: " + e.Error())
		}
		defaultLexer = lexer.New(catalog.Terminals())
		defaultParser = p
	})
	return defaultLexer, defaultParser
}

// Validate reports whether raw is a structurally well-formed DocTags
// document. It never fails: any string that is not derivable from the
// document grammar, including one full of unknown tags, yields false.
func Validate(raw string) bool {
	l, p := defaults()
	return p.Recognize(l.Tokenize(raw))
}
