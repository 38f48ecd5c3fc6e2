package lexer

// Line is one non-blank source line split into whitespace-separated tokens.
type Line struct {
	Number int     // 1-based line number
	Tokens []Token // tokens in source order, never empty
}

// Lexemes returns the raw text of every token on the line
func (l Line) Lexemes() []string {
	out := make([]string, len(l.Tokens))
	for i, tok := range l.Tokens {
		out[i] = tok.Lexeme
	}
	return out
}

type Lexer struct {
	input    string // input string to be tokenized
	length   int    // length of the input string
	position int    // current position in the input string
	line     int    // current line number for error reporting
	column   int    // current column number for error reporting
}

// Create a new lexer instance
func NewLexer(s string) *Lexer {
	return &Lexer{
		input:    s,
		length:   len(s),
		position: 0,
		line:     1,
		column:   1,
	}
}

// NextLine returns the next line that carries at least one token.
// Blank and whitespace-only lines are skipped but still counted.
func (l *Lexer) NextLine() (Line, bool) {
	for l.HasMore() {
		number := l.line
		var tokens []Token

		for {
			l.skipWhitespace()
			if !l.HasMore() || l.input[l.position] == '\n' {
				break
			}
			tokens = append(tokens, l.readToken())
		}

		// consume the line break, if any
		if l.HasMore() {
			l.advance(1)
		}

		if len(tokens) > 0 {
			tokens[0].Type = LookupKeyword(tokens[0].Lexeme)
			return Line{Number: number, Tokens: tokens}, true
		}
	}

	return Line{}, false
}

// Check if there are more characters to read
func (l *Lexer) HasMore() bool {
	return l.position < l.length
}

// readToken consumes a maximal run of non-whitespace characters
func (l *Lexer) readToken() Token {
	pos := l.currentPosition()
	start := l.position

	for l.HasMore() && !isSpace(l.input[l.position]) {
		l.advance(1)
	}

	return NewToken(WORD, l.input[start:l.position], pos)
}

// Skip whitespace on the current line; line breaks are left for NextLine
func (l *Lexer) skipWhitespace() {
	for l.position < l.length {
		ch := l.input[l.position]
		if ch == '\n' || !isSpace(ch) {
			break
		}
		l.column++
		l.position++
	}
}

// Advance the lexer position by n characters
func (l *Lexer) advance(n int) {
	for i := 0; i < n; i++ {
		if l.position >= l.length {
			break
		}

		if l.input[l.position] == '\n' {
			l.line++
			l.column = 1
		} else {
			l.column++
		}

		l.position++
	}
}

// Get the current position of the lexer
func (l *Lexer) currentPosition() Position {
	return Position{
		Line:   l.line,
		Column: l.column,
		Offset: l.position,
	}
}

// isSpace matches ASCII whitespace only; bytes of multi-byte UTF-8 characters never match
func isSpace(ch byte) bool {
	switch ch {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	default:
		return false
	}
}
