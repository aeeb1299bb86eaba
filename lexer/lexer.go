// Package lexer defines the DocTags tokenizer.
package lexer

import (
	"regexp"
	"sort"
	"strings"
)

// Lexer converts a raw DocTags string into a token sequence using
// longest-match scanning over a fixed terminal set. Whitespace is never
// structurally significant and is removed before scanning; any run of
// characters matching no terminal collapses into a single content token.
// Lexer is immutable and safe for concurrent use.
type Lexer struct {
	re *regexp.Regexp
}

// New creates a Lexer for the given terminal literals. Longer literals take
// precedence at every position, so a terminal that is a prefix of another is
// never matched in its place.
func New(terminals []string) *Lexer {
	sorted := make([]string, len(terminals))
	copy(sorted, terminals)
	sort.SliceStable(sorted, func(i, j int) bool {
		return len(sorted[i]) > len(sorted[j])
	})

	quoted := make([]string, len(sorted))
	for i, t := range sorted {
		quoted[i] = regexp.QuoteMeta(t)
	}

	return &Lexer{re: regexp.MustCompile(`^(?:` + strings.Join(quoted, "|") + `)`)}
}

// Tokenize scans raw and returns its token sequence. It is total and
// deterministic: every input yields a sequence, rejection decisions are
// entirely the recognizer's concern.
func (l *Lexer) Tokenize(raw string) []Token {
	text := strings.Join(strings.Fields(raw), "")
	tokens := make([]Token, 0, len(text)/8)

	pos := 0
	for pos < len(text) {
		if n := l.match(text[pos:]); n > 0 {
			tokens = append(tokens, NewTerminal(text[pos:pos+n], pos))
			pos += n
			continue
		}

		start := pos
		for pos < len(text) && l.match(text[pos:]) == 0 {
			pos++
		}
		tokens = append(tokens, NewContent(text[start:pos], start))
	}

	return tokens
}

// match returns the length of the longest terminal starting at the head of s,
// 0 when none matches.
func (l *Lexer) match(s string) int {
	m := l.re.FindStringIndex(s)
	if m == nil {
		return 0
	}
	return m[1]
}
