package parser_test

import (
	"errors"
	"guu/pkg/parser"
	"guu/pkg/program"
	"reflect"
	"strings"
	"testing"
)

func setOp(name, value string) program.Instruction {
	return program.Instruction{Op: program.OpSet, Args: []string{name, value}}
}

func callOp(name string) program.Instruction {
	return program.Instruction{Op: program.OpCall, Args: []string{name}}
}

func printOp(name string) program.Instruction {
	return program.Instruction{Op: program.OpPrint, Args: []string{name}}
}

func TestParseStructure(t *testing.T) {
	source := "sub main\n" +
		"    call foo\n" +
		"\n" +
		"sub foo\n" +
		"    set a   15\n" +
		"\tcall b\n" +
		strings.Repeat("\n", 14) +
		"sub b\n" +
		"    print a\n"

	functions, err := parser.Parse(source)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := []*program.Function{
		{Name: "main", StartLine: 1, Instructions: []program.Instruction{callOp("foo")}},
		{Name: "foo", StartLine: 4, Instructions: []program.Instruction{setOp("a", "15"), callOp("b")}},
		{Name: "b", StartLine: 21, Instructions: []program.Instruction{printOp("a")}},
	}

	if len(functions) != len(expected) {
		t.Fatalf("expected %d functions, got %d", len(expected), len(functions))
	}

	for _, want := range expected {
		got, ok := functions.Lookup(want.Name)
		if !ok {
			t.Errorf("function %s missing", want.Name)
			continue
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("function %s: expected %+v, got %+v", want.Name, want, got)
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name   string
		source string
		kind   error
		line   int
	}{
		{"single word", "sub main\nset\n", parser.ErrMalformedInstruction, 2},
		{"single word sub", "\n\nsub\n", parser.ErrMalformedInstruction, 3},
		{"set missing value", "sub main\nset a\n", parser.ErrMalformedInstruction, 2},
		{"call extra operand", "sub main\ncall a b\n", parser.ErrMalformedInstruction, 2},
		{"sub extra operand", "sub main x\n", parser.ErrMalformedInstruction, 1},
		{"instruction before sub", "set a 1\nsub main\n", parser.ErrMalformedInstruction, 1},
		{"unknown keyword", "sub main\n    set a 1\n    jump a\n", parser.ErrUnknownKeyword, 3},
		{"keyword case", "sub main\nPRINT a\n", parser.ErrUnknownKeyword, 2},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			functions, err := parser.Parse(test.source)
			if err == nil {
				t.Fatalf("expected an error, got functions %v", functions)
			}
			if !errors.Is(err, test.kind) {
				t.Errorf("expected %v, got %v", test.kind, err)
			}

			var syntaxErr *parser.SyntaxError
			if !errors.As(err, &syntaxErr) {
				t.Fatalf("expected *SyntaxError, got %T", err)
			}
			if syntaxErr.Pos.Line != test.line {
				t.Errorf("expected line %d, got %d", test.line, syntaxErr.Pos.Line)
			}
		})
	}
}

func TestUnknownKeywordRegistersNothing(t *testing.T) {
	p := parser.NewParserFromString("sub main\nfoo bar\nsub other\n")
	if _, err := p.Parse(); !errors.Is(err, parser.ErrUnknownKeyword) {
		t.Fatalf("expected unknown keyword, got %v", err)
	}

	functions := p.Functions()
	if _, ok := functions.Lookup("bar"); ok {
		t.Errorf("operand of the rejected line was registered")
	}
	if _, ok := functions.Lookup("other"); ok {
		t.Errorf("parsing continued past the rejected line")
	}
	if main, ok := functions.Lookup("main"); !ok || len(main.Instructions) != 0 {
		t.Errorf("main should exist with an empty body, got %+v", main)
	}
}

func TestDuplicateDeclarationLastWins(t *testing.T) {
	functions, err := parser.Parse("sub f\nset a 1\nsub f\nset a 2\nset b 3\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f, _ := functions.Lookup("f")
	if f.StartLine != 3 || len(f.Instructions) != 2 {
		t.Errorf("expected the second declaration, got %+v", f)
	}
}

func TestNoSemanticValidation(t *testing.T) {
	functions, err := parser.Parse("sub main\nset a notanumber\ncall nowhere\nprint ghost\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	main, _ := functions.Lookup("main")
	if len(main.Instructions) != 3 {
		t.Errorf("expected 3 instructions, got %d", len(main.Instructions))
	}
}

func TestEmptySource(t *testing.T) {
	functions, err := parser.Parse("\n \n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(functions) != 0 {
		t.Errorf("expected no functions, got %d", len(functions))
	}
}

func TestNonASCIINames(t *testing.T) {
	functions, err := parser.Parse("sub main\nset à 1\nprint à\ncall х\nsub х\nset Рх 2\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	main, _ := functions.Lookup("main")
	want := []program.Instruction{setOp("à", "1"), printOp("à"), callOp("х")}
	if !reflect.DeepEqual(main.Instructions, want) {
		t.Errorf("expected %v, got %v", want, main.Instructions)
	}

	fn, ok := functions.Lookup("х")
	if !ok || fn.StartLine != 5 || !reflect.DeepEqual(fn.Instructions, []program.Instruction{setOp("Рх", "2")}) {
		t.Errorf("function х not registered as declared, got %+v", fn)
	}
}
