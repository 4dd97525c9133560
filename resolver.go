package calc

import "strconv"

// Resolver supplies values for variable names during evaluation. The
// evaluator queries it once per variable occurrence and never caches
// results; a resolver that wants ask-once semantics memoizes internally.
// Implementations may block, e.g. to prompt a user for input.
type Resolver interface {
	// Resolve returns the value bound to name. A failure is surfaced by
	// the evaluator wrapped in a *ResolveError.
	Resolve(name string) (float64, error)
}

// Vars is a fixed-table Resolver backed by a map. It is the implementation
// to reach for in tests and whenever all bindings are known up front. A nil
// Vars resolves nothing.
type Vars map[string]float64

// Resolve returns the value bound to name, or a *NameError if the table has
// no such binding.
func (v Vars) Resolve(name string) (float64, error) {
	x, ok := v[name]
	if !ok {
		return 0, &NameError{Name: name}
	}
	return x, nil
}

// NameError is an error from a lookup for a variable that is missing from a
// Vars table.
type NameError struct {
	// Name is the name that was missing.
	Name string
}

func (err *NameError) Error() string {
	return "undefined variable: " + strconv.Quote(err.Name)
}
