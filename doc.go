// Package calc evaluates arithmetic expressions supplied as text.
//
// An expression is tokenized, then parsed and computed in one recursive
// descent with the usual precedence: "2 + 3 * 4" is 14, "(2 + 3) * 4" is 20.
// Identifiers name variables whose values come from a Resolver chosen by the
// caller, so "x + y" can be evaluated against any set of bindings. The
// builtin functions sin, cos, and tan take their argument in degrees:
// "sin(30)" is 0.5.
//
// Tokenizing and evaluating are separate steps so that a token sequence can
// be inspected (see Variables) or evaluated several times against different
// resolvers; EvalString does both steps at once.
package calc
