package interpreter

import (
	"errors"
	"fmt"
	"strconv"

	"guu/pkg/program"

	"github.com/charmbracelet/log"
)

// RuntimeError locates an execution failure at the instruction that raised it.
type RuntimeError struct {
	Function string // function executing the failing instruction
	Line     int    // display line of the failing instruction
	Err      error
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("%s (in %s at line %d)", e.Err, e.Function, e.Line)
}

func (e *RuntimeError) Unwrap() error {
	return e.Err
}

// runFunction executes fn in a new frame. A hidden frame never reads commands,
// and neither does anything it calls.
func (i *Interpreter) runFunction(fn *program.Function, hidden bool) error {
	if i.stack.Size() >= i.maxDepth {
		return fmt.Errorf("%w: %d frames deep when calling %s", ErrCallDepthExceeded, i.stack.Size(), fn.Name)
	}

	frame := &Frame{Function: fn, Hidden: hidden}
	i.stack.Push(frame)
	defer i.stack.Pop()

	if !hidden {
		log.Debug("Entering function", "name", fn.Name, "depth", i.stack.Size())
	}

	for idx, in := range fn.Instructions {
		frame.IP = idx

		// only a step-in on a call makes the callee visible
		follow := false
		if !hidden {
			var err error
			if follow, err = i.awaitStep(frame, in); err != nil {
				return i.locate(frame, err)
			}
		}

		if err := i.execute(in, hidden || !follow); err != nil {
			return i.locate(frame, err)
		}
		i.steps++
	}

	return nil
}

// awaitStep blocks until the operator issues i or o, serving inspection
// commands in the meantime. It reports whether a call should be stepped into.
func (i *Interpreter) awaitStep(frame *Frame, in program.Instruction) (bool, error) {
	for {
		cmd, err := i.nextCommand()
		if err != nil {
			return false, err
		}

		switch cmd {
		case CmdStepIn:
			return in.Op == program.OpCall, nil
		case CmdStepOver:
			return false, nil
		case CmdTrace:
			i.printTrace(frame)
		case CmdVar:
			i.printVariables()
		case CmdSave:
			i.saveStack()
		default:
			return false, fmt.Errorf("%w: %q", ErrUnknownDebugCommand, string(cmd))
		}
	}
}

// execute dispatches a single instruction; hideCallee applies to call only
func (i *Interpreter) execute(in program.Instruction, hideCallee bool) error {
	switch in.Op {
	case program.OpCall:
		name := in.Arg(0)
		fn, ok := i.functions.Lookup(name)
		if !ok {
			return fmt.Errorf("%w: %s", ErrUndefinedFunction, name)
		}
		return i.runFunction(fn, hideCallee)

	case program.OpSet:
		name, literal := in.Arg(0), in.Arg(1)
		value, err := strconv.ParseInt(literal, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %q is not a number", ErrInvalidLiteral, literal)
		}
		i.vars.Set(name, value)
		return nil

	case program.OpPrint:
		name := in.Arg(0)
		value, ok := i.vars.Get(name)
		if !ok {
			return fmt.Errorf("%w: %s", ErrUndefinedVariable, name)
		}
		fmt.Fprintf(i.out, "%d\n", value)
		return nil

	default:
		return fmt.Errorf("unsupported operation %q", in.Op)
	}
}

// locate wraps err with the frame's position unless an inner frame already did
func (i *Interpreter) locate(frame *Frame, err error) error {
	var located *RuntimeError
	if errors.As(err, &located) {
		return err
	}

	return &RuntimeError{Function: frame.Function.Name, Line: frame.Line(), Err: err}
}

// printTrace writes the current line and the call stack, innermost frame first
func (i *Interpreter) printTrace(frame *Frame) {
	fmt.Fprintf(i.out, "current line: %d\n", frame.Line())
	i.stack.TopDown(func(f *Frame) bool {
		fmt.Fprintln(i.out, f.String())
		return true
	})
}

// printVariables writes the variable count followed by every variable
func (i *Interpreter) printVariables() {
	fmt.Fprintf(i.out, "%d variables:\n", i.vars.Len())
	i.vars.Each(func(name string, value int64) {
		fmt.Fprintf(i.out, "%s: %d\n", name, value)
	})
}

// saveStack replaces the snapshot with a copy of the live call stack
func (i *Interpreter) saveStack() {
	live := i.stack.Array()
	saved := make([]Frame, 0, len(live))
	for _, f := range live {
		saved = append(saved, *f)
	}
	i.saved = saved
}
