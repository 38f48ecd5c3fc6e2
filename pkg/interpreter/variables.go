package interpreter

// Variables is the flat variable namespace shared by every frame.
// Iteration follows the order in which names were first assigned.
type Variables struct {
	names  []string
	values map[string]int64
}

// NewVariables creates an empty store
func NewVariables() *Variables {
	return &Variables{
		names:  make([]string, 0),
		values: make(map[string]int64),
	}
}

// Set assigns a value, creating the variable if needed
func (v *Variables) Set(name string, value int64) {
	if _, ok := v.values[name]; !ok {
		v.names = append(v.names, name)
	}
	v.values[name] = value
}

// Get returns the value of a variable
func (v *Variables) Get(name string) (int64, bool) {
	value, ok := v.values[name]
	return value, ok
}

// Len returns the number of variables
func (v *Variables) Len() int {
	return len(v.names)
}

// Each calls fn for every variable in assignment order
func (v *Variables) Each(fn func(name string, value int64)) {
	for _, name := range v.names {
		fn(name, v.values[name])
	}
}
