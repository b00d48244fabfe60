package lox

// Environment is one scope frame. Lookups and assignments walk outward
// through enclosing frames; definitions always land in the receiver.
type Environment struct {
	enclosing *Environment
	values    map[string]any
}

func NewEnvironment(enclosing *Environment) *Environment {
	return &Environment{enclosing, make(map[string]any)}
}

func (e *Environment) Enclosing() *Environment {
	return e.enclosing
}

func (e *Environment) Get(key string) (any, bool) {
	for ; e != nil; e = e.enclosing {
		if val, ok := e.values[key]; ok {
			return val, true
		}
	}

	return nil, false
}

// Define binds key in this frame, shadowing any outer binding.
func (e *Environment) Define(key string, value any) {
	e.values[key] = value
}

// Assign updates the nearest frame that already defines key. It never
// creates a binding and reports false when no frame has one.
func (e *Environment) Assign(key string, value any) bool {
	for ; e != nil; e = e.enclosing {
		if _, ok := e.values[key]; ok {
			e.values[key] = value
			return true
		}
	}

	return false
}
