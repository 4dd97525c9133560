package calc

import (
	"errors"
	"strconv"
)

// ErrDivisionByZero is returned when the right operand of / evaluates to
// exactly zero. The operand is checked before dividing, so no quotient is
// computed. The message is the contractually fixed "Division by zero".
var ErrDivisionByZero = errors.New("Division by zero")

// SyntaxError indicates a token sequence that violates the expression
// grammar: a missing parenthesis, a token that cannot begin a factor, or
// trailing tokens after a complete expression.
type SyntaxError struct {
	// Msg describes the expectation that was violated.
	Msg string
}

func (err *SyntaxError) Error() string {
	return err.Msg
}

// NumberError indicates a KindNumber token whose text does not convert to a
// float64, e.g. "1.2.3" or ".". The lexer admits such tokens deliberately;
// conversion is where they are rejected.
type NumberError struct {
	// Text is the token text that failed to convert.
	Text string
	// Err is the underlying conversion error.
	Err error
}

func (err *NumberError) Error() string {
	return "malformed number " + strconv.Quote(err.Text)
}

func (err *NumberError) Unwrap() error {
	return err.Err
}

// ResolveError indicates that the resolver failed to supply a value for a
// variable. It carries the resolver's own error unchanged; errors.Is and
// errors.As see through to it.
type ResolveError struct {
	// Name is the variable that was being resolved.
	Name string
	// Err is the resolver's error, verbatim.
	Err error
}

func (err *ResolveError) Error() string {
	return "resolving " + strconv.Quote(err.Name) + ": " + err.Err.Error()
}

func (err *ResolveError) Unwrap() error {
	return err.Err
}
