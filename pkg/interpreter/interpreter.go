package interpreter

import (
	"bufio"
	"errors"
	"io"
	"os"

	"guu/pkg/program"
	"guu/pkg/stack"
)

// DefaultMaxDepth is the call depth at which execution fails with ErrCallDepthExceeded
const DefaultMaxDepth = 10000

// Interpreter executes a parsed Guu program under operator control
type Interpreter struct {
	functions program.FunctionTable // function table produced by the parser

	vars *Variables // shared variable store

	stack *stack.Stack[*Frame] // call stack (frames)
	saved []Frame              // stack snapshot taken by the last save command

	commands *bufio.Scanner // debug command source
	out      io.Writer      // output writer for print, trace and var
	prompt   string         // written before every command read, if set

	maxDepth int // maximum call depth
	steps    int // instructions executed
}

type Option func(*Interpreter)

// WithWriter sets the output writer
func WithWriter(w io.Writer) Option {
	return func(i *Interpreter) { i.out = w }
}

// WithCommands sets the source of debug commands, one per line
func WithCommands(r io.Reader) Option {
	return func(i *Interpreter) { i.commands = bufio.NewScanner(r) }
}

// WithVariables injects the variable store
func WithVariables(v *Variables) Option {
	return func(i *Interpreter) { i.vars = v }
}

// WithMaxDepth sets the maximum call depth before returning ErrCallDepthExceeded
func WithMaxDepth(n int) Option {
	return func(i *Interpreter) { i.maxDepth = n }
}

// WithPrompt sets the text written before each command is read
func WithPrompt(p string) Option {
	return func(i *Interpreter) { i.prompt = p }
}

// NewInterpreter creates a new Interpreter instance
func NewInterpreter(functions program.FunctionTable, opts ...Option) *Interpreter {
	it := &Interpreter{
		functions: functions,
		stack:     stack.NewStack[*Frame](),
		maxDepth:  DefaultMaxDepth,
	}

	for _, o := range opts {
		o(it)
	}

	if it.vars == nil {
		it.vars = NewVariables()
	}

	if it.out == nil {
		it.out = os.Stdout
	}

	if it.commands == nil {
		it.commands = bufio.NewScanner(os.Stdin)
	}

	if it.maxDepth <= 0 {
		it.maxDepth = DefaultMaxDepth
	}

	return it
}

// Process runs main until it returns or fails
func (i *Interpreter) Process() error {
	main, ok := i.functions.Lookup("main")
	if !ok {
		return ErrMissingEntryPoint
	}

	i.stack.Clear()
	i.saved = nil
	i.steps = 0

	return i.runFunction(main, false)
}

// Variables returns the variable store
func (i *Interpreter) Variables() *Variables {
	return i.vars
}

// SavedStack returns the snapshot taken by the last save command, bottom frame first
func (i *Interpreter) SavedStack() []Frame {
	return append([]Frame(nil), i.saved...)
}

// Depth returns the current call depth
func (i *Interpreter) Depth() int {
	return i.stack.Size()
}

// Steps returns the number of instructions executed by the last Process call
func (i *Interpreter) Steps() int {
	return i.steps
}

var (
	ErrMissingEntryPoint       = errors.New("can't find main function in the source code")
	ErrUndefinedFunction       = errors.New("undefined function")
	ErrUndefinedVariable       = errors.New("undefined variable")
	ErrInvalidLiteral          = errors.New("invalid integer literal")
	ErrCallDepthExceeded       = errors.New("call stack overflowed")
	ErrUnknownDebugCommand     = errors.New("unknown debug command")
	ErrUnexpectedEndOfCommands = errors.New("unexpected end of debug commands")
)
