package parser

import (
	"errors"
	"fmt"
	"guu/pkg/color"
	"guu/pkg/lexer"
)

var (
	ErrMalformedInstruction = errors.New("malformed instruction")
	ErrUnknownKeyword       = errors.New("unknown keyword")
)

// SyntaxError reports why a source line could not be parsed.
type SyntaxError struct {
	Kind error          // ErrMalformedInstruction or ErrUnknownKeyword
	Pos  lexer.Position // position of the offending token
	Msg  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s: %s (line %d)", e.Kind, e.Msg, e.Pos.Line)
}

func (e *SyntaxError) Unwrap() error {
	return e.Kind
}

// Pretty renders the error for a terminal
func (e *SyntaxError) Pretty() string {
	return color.RedText(e.Kind.Error()) + ": " + e.Msg + " at " +
		color.YellowText(fmt.Sprintf("Line: %d, Column %d", e.Pos.Line, e.Pos.Column))
}

// malformed reports a line whose shape does not fit any instruction
func (p *Parser) malformed(tok lexer.Token, format string, args ...any) error {
	return &SyntaxError{Kind: ErrMalformedInstruction, Pos: tok.Pos, Msg: fmt.Sprintf(format, args...)}
}

// unknownKeyword reports a line starting with something other than an instruction keyword
func (p *Parser) unknownKeyword(tok lexer.Token) error {
	return &SyntaxError{
		Kind: ErrUnknownKeyword,
		Pos:  tok.Pos,
		Msg:  fmt.Sprintf("unexpected keyword %q", tok.Lexeme),
	}
}
