package lexer

type TokenType int

type Token struct {
	Type   TokenType // Type of the token
	Lexeme string    // Actual string from source code
	Pos    Position  // Position in source code
}

// NewToken creates a new Token instance
func NewToken(tokenType TokenType, lexeme string, pos Position) Token {
	return Token{
		Type:   tokenType,
		Lexeme: lexeme,
		Pos:    pos,
	}
}

const (
	WORD TokenType = iota // any non-keyword token (names, literals)

	SUB   // sub
	SET   // set
	CALL  // call
	PRINT // print
)

var keywords = map[string]TokenType{
	"sub":   SUB,
	"set":   SET,
	"call":  CALL,
	"print": PRINT,
}

// LookupKeyword returns the keyword type for a lexeme, or WORD
func LookupKeyword(lexeme string) TokenType {
	if t, ok := keywords[lexeme]; ok {
		return t
	}

	return WORD
}

// String returns the source spelling of the token type
func (t TokenType) String() string {
	switch t {
	case SUB:
		return "sub"
	case SET:
		return "set"
	case CALL:
		return "call"
	case PRINT:
		return "print"
	default:
		return "word"
	}
}

// IsKeyword reports whether the token type is one of the instruction keywords
func (t TokenType) IsKeyword() bool {
	return t != WORD
}
