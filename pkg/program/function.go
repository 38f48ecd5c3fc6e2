package program

import "sort"

// Function is a declared subroutine.
type Function struct {
	Name         string        // unique key in the function table
	StartLine    int           // 1-based line of the sub declaration
	Instructions []Instruction // body, fixed once the parser moves on
}

// NewFunction creates a function with an empty body
func NewFunction(name string, startLine int) *Function {
	return &Function{
		Name:         name,
		StartLine:    startLine,
		Instructions: []Instruction{},
	}
}

// LineOf returns the display line of the instruction at index idx
func (f *Function) LineOf(idx int) int {
	return f.StartLine + idx + 1
}

// FunctionTable maps function names to their definitions.
type FunctionTable map[string]*Function

// Lookup returns the function registered under name
func (t FunctionTable) Lookup(name string) (*Function, bool) {
	fn, ok := t[name]
	return fn, ok
}

// Names returns the declared function names ordered by declaration line
func (t FunctionTable) Names() []string {
	names := make([]string, 0, len(t))
	for name := range t {
		names = append(names, name)
	}

	sort.Slice(names, func(a, b int) bool {
		la, lb := t[names[a]].StartLine, t[names[b]].StartLine
		if la != lb {
			return la < lb
		}
		return names[a] < names[b]
	})

	return names
}
