package calc

import (
	"math"
	"strconv"
)

// Func is a builtin function of one real variable. Builtins interpret their
// argument in degrees.
type Func func(x float64) float64

// builtins is the reserved function name set. The lexer classifies
// identifiers against it, and applyFunc consults it again at evaluation time
// so that a hand-built KindFunction token with any other name is still
// rejected rather than applied.
var builtins = map[string]Func{
	"sin": degrees(math.Sin),
	"cos": degrees(math.Cos),
	"tan": degrees(math.Tan),
}

// degrees adapts a radian-domain function to take its argument in degrees.
func degrees(f func(float64) float64) Func {
	return func(x float64) float64 {
		return f(x * math.Pi / 180)
	}
}

// applyFunc evaluates the named builtin on arg.
func applyFunc(name string, arg float64) (float64, error) {
	f := builtins[name]
	if f == nil {
		return 0, &UnknownFunctionError{Name: name}
	}
	return f(arg), nil
}

// UnknownFunctionError indicates a KindFunction token whose name is not a
// builtin. Tokenize never produces such a token.
type UnknownFunctionError struct {
	// Name is the unrecognized function name.
	Name string
}

func (err *UnknownFunctionError) Error() string {
	return "unknown function: " + strconv.Quote(err.Name)
}
