// Package parser defines the recognizer deciding whether a token sequence is
// fully derivable from a grammar's start symbol.
package parser

import (
	"github.com/docling-go/doctags/grammar"
	"github.com/docling-go/doctags/internal/ints"
	"github.com/docling-go/doctags/lexer"
)

// DefaultMaxDepth is the default ceiling on the recursive expansion depth.
// Recursion depth grows with the nesting depth of the input's list, table,
// and picture structures; an expansion deeper than the ceiling folds into a
// plain reject, so adversarial nesting cannot exhaust the stack.
const DefaultMaxDepth = 1024

// Option adjusts recognizer parameters.
type Option func(*Parser)

// WithMaxDepth replaces the expansion depth ceiling. Values below 1 are
// ignored.
func WithMaxDepth(n int) Option {
	return func(p *Parser) {
		if n > 0 {
			p.maxDepth = n
		}
	}
}

// Parser is a recursive-descent recognizer over an immutable grammar.
// Alternatives are tried in declaration order and the first derivable one
// wins (ordered choice). Parser keeps no state between calls and is safe
// for concurrent use.
type Parser struct {
	g        *grammar.Grammar
	nonterms []grammar.Nonterm
	start    int
	maxDepth int
}

// New checks the grammar once and creates a recognizer for it. A grammar
// failing its self-check yields the coded definitional error and no parser.
func New(g *grammar.Grammar, opts ...Option) (*Parser, error) {
	if g == nil {
		return nil, nilGrammarError()
	}
	if e := g.Validate(); e != nil {
		return nil, e
	}

	p := &Parser{g: g, nonterms: g.Nonterms(), maxDepth: DefaultMaxDepth}
	p.start, _ = g.NontermIndex(g.Start())
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Grammar returns the grammar this recognizer was built for.
func (p *Parser) Grammar() *grammar.Grammar {
	return p.g
}

// Recognize reports whether the entire token sequence is derivable from the
// start symbol with no leftover tokens. A failed derivation, a trailing
// unconsumed token, and a cycle-guard or depth-ceiling trip all fold into
// the same reject outcome.
func (p *Parser) Recognize(tokens []lexer.Token) bool {
	positions := len(tokens) + 1
	r := &run{
		g:        p.g,
		nonterms: p.nonterms,
		tokens:   tokens,
		visited:  ints.NewSize(len(p.nonterms) * positions),
		keySpan:  positions,
		maxDepth: p.maxDepth,
	}
	ok, next := r.deriveNonterm(p.start, 0, 0)
	return ok && next == len(tokens)
}

// run is the per-call parse state, discarded when Recognize returns.
// The visited arena holds (non-terminal, token position) pairs, keyed as
// index*keySpan+pos; it covers both in-progress expansions (the guard
// against unproductive recursion) and memoized failures.
type run struct {
	g        *grammar.Grammar
	nonterms []grammar.Nonterm
	tokens   []lexer.Token
	visited  *ints.Set
	keySpan  int
	maxDepth int
	tripped  bool
}

func (r *run) deriveNonterm(index, pos, depth int) (ok bool, next int) {
	if depth >= r.maxDepth {
		r.tripped = true
		return false, pos
	}

	key := index*r.keySpan + pos
	if r.visited.Contains(key) {
		return false, pos
	}
	r.visited.Add(key)

	outer := r.tripped
	r.tripped = false

	for _, prod := range r.nonterms[index].Productions {
		cur := pos
		ok = true
		for i, sym := range prod {
			// The trailing symbol expands at the same depth, so a
			// right-recursive repetition stays flat and depth measures
			// nesting, not sibling count.
			d := depth + 1
			if i == len(prod)-1 {
				d = depth
			}
			ok, cur = r.deriveSymbol(sym, cur, d)
			if !ok {
				break
			}
		}
		if ok {
			// Unblock sibling attempts at this position; failures stay
			// memoized for the rest of the call.
			r.visited.Remove(key)
			r.tripped = r.tripped || outer
			return true, cur
		}
	}

	if r.tripped {
		// A ceiling trip under this expansion is not a definitive failure:
		// a shallower attempt at the same position may still succeed, so
		// this one must not be memoized.
		r.visited.Remove(key)
	}
	r.tripped = r.tripped || outer
	return false, pos
}

func (r *run) deriveSymbol(sym grammar.Symbol, pos, depth int) (bool, int) {
	switch sym.Kind {
	case grammar.ContentKind:
		if pos < len(r.tokens) && r.tokens[pos].IsContent() {
			return true, pos + 1
		}
		return false, pos

	case grammar.TermKind:
		if pos < len(r.tokens) && !r.tokens[pos].IsContent() && r.tokens[pos].Text() == sym.Name {
			return true, pos + 1
		}
		return false, pos

	default:
		index, _ := r.g.NontermIndex(sym.Name)
		return r.deriveNonterm(index, pos, depth)
	}
}
