package lexer

// Token is a single terminal or content instance produced by the tokenizer.
// The grammar is structure-only: a content token matches the grammar's
// content placeholder regardless of its text, which is kept for diagnostics.
type Token struct {
	text    string
	content bool
	pos     int
}

// NewTerminal creates a token for a terminal literal found at byte offset pos
// of the whitespace-stripped input.
func NewTerminal(text string, pos int) Token {
	return Token{text: text, pos: pos}
}

// NewContent creates a content token covering one maximal run of characters
// matching no terminal.
func NewContent(text string, pos int) Token {
	return Token{text: text, content: true, pos: pos}
}

// Text returns the terminal literal or the covered content run.
func (t Token) Text() string {
	return t.text
}

// IsContent reports whether the token stands for a run of free text.
func (t Token) IsContent() bool {
	return t.content
}

// Pos returns the byte offset in the whitespace-stripped input.
func (t Token) Pos() int {
	return t.pos
}
