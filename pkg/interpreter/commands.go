package interpreter

import (
	"fmt"
	"strings"
)

// Command is a debug command read from the command source.
type Command string

const (
	CmdStepIn   Command = "i"     // execute the instruction, following a call
	CmdStepOver Command = "o"     // execute the instruction, running a call hidden
	CmdTrace    Command = "trace" // print the current line and call stack
	CmdVar      Command = "var"   // print all variables
	CmdSave     Command = "save"  // snapshot the call stack
)

// nextCommand reads one command line
func (i *Interpreter) nextCommand() (Command, error) {
	if i.prompt != "" {
		fmt.Fprint(i.out, i.prompt)
	}

	if !i.commands.Scan() {
		if err := i.commands.Err(); err != nil {
			return "", fmt.Errorf("read debug command: %w", err)
		}
		return "", ErrUnexpectedEndOfCommands
	}

	return Command(strings.TrimSpace(i.commands.Text())), nil
}
