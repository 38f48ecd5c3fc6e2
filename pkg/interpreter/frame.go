package interpreter

import (
	"fmt"

	"guu/pkg/program"
)

// Frame represents a function call frame.
type Frame struct {
	Function *program.Function // function executing in this frame
	IP       int               // index of the instruction being executed
	Hidden   bool              // frame runs without consulting the command source
}

// Line returns the display line of the current instruction
func (f Frame) Line() int {
	return f.Function.LineOf(f.IP)
}

// String renders the frame the way trace prints it
func (f Frame) String() string {
	return fmt.Sprintf("%d: %s", f.Function.StartLine, f.Function.Name)
}
