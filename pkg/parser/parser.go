package parser

import (
	"guu/pkg/lexer"
	"guu/pkg/program"
	"strings"
)

type Parser struct {
	lexer     *lexer.Lexer          // lexer instance
	functions program.FunctionTable // functions declared so far
	current   *program.Function     // function receiving instructions, nil before the first sub
}

// NewParser creates a new parser instance
func NewParser(l *lexer.Lexer) *Parser {
	return &Parser{
		lexer:     l,
		functions: program.FunctionTable{},
	}
}

// Parse is a shorthand for parsing a whole source text
func Parse(source string) (program.FunctionTable, error) {
	return NewParser(lexer.NewLexer(source)).Parse()
}

// Parse consumes the input line by line and builds the function table.
// It stops at the first error.
func (p *Parser) Parse() (program.FunctionTable, error) {
	for {
		line, ok := p.lexer.NextLine()
		if !ok {
			break
		}

		if err := p.parseLine(line); err != nil {
			return nil, err
		}
	}

	return p.functions, nil
}

// parseLine handles a single non-blank line
func (p *Parser) parseLine(line lexer.Line) error {
	head := line.Tokens[0]

	if len(line.Tokens) < 2 {
		return p.malformed(head, "there's no command with %d word(s): [%s]", len(line.Tokens), strings.Join(line.Lexemes(), " "))
	}

	if !head.Type.IsKeyword() {
		return p.unknownKeyword(head)
	}

	operands := line.Lexemes()[1:]

	if head.Type == lexer.SUB {
		if len(operands) != 1 {
			return p.malformed(head, "sub takes 1 operand, found %d", len(operands))
		}
		p.current = program.NewFunction(operands[0], line.Number)
		p.functions[p.current.Name] = p.current // last declaration wins
		return nil
	}

	if p.current == nil {
		return p.malformed(head, "%s outside of any sub", head.Lexeme)
	}

	ins, err := program.NewInstruction(program.Operation(head.Lexeme), operands...)
	if err != nil {
		return p.malformed(head, "%s", err)
	}
	p.current.Instructions = append(p.current.Instructions, ins)
	return nil
}

// Functions returns the function table built so far
func (p *Parser) Functions() program.FunctionTable {
	return p.functions
}

// NewParserFromString creates a parser over a source text
func NewParserFromString(source string) *Parser {
	return NewParser(lexer.NewLexer(source))
}
