package interpreter

import (
	"encoding/json"
	"io"
)

// State is a serializable view of the interpreter after a run.
type State struct {
	Variables  []VariableState `json:"variables"`
	SavedStack []FrameState    `json:"savedStack"`
}

type VariableState struct {
	Name  string `json:"name"`
	Value int64  `json:"value"`
}

type FrameState struct {
	Function  string `json:"function"`
	StartLine int    `json:"startLine"`
	Line      int    `json:"line"`
}

// State returns the variables in assignment order and the saved stack, bottom frame first
func (i *Interpreter) State() State {
	st := State{
		Variables:  make([]VariableState, 0, i.vars.Len()),
		SavedStack: make([]FrameState, 0, len(i.saved)),
	}

	i.vars.Each(func(name string, value int64) {
		st.Variables = append(st.Variables, VariableState{Name: name, Value: value})
	})

	for _, f := range i.saved {
		st.SavedStack = append(st.SavedStack, FrameState{
			Function:  f.Function.Name,
			StartLine: f.Function.StartLine,
			Line:      f.Line(),
		})
	}

	return st
}

// WriteState writes State as indented JSON
func (i *Interpreter) WriteState(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(i.State())
}
