package calc_test

import (
	"fmt"

	"github.com/jordosi/calc"
)

func ExampleEvalString() {
	r, err := calc.EvalString("2 + 3 * 4", calc.Vars{})
	if err != nil {
		panic(err)
	}
	fmt.Println(r)
	// Output: 14
}

func ExampleEvalString_variables() {
	vars := calc.Vars{"x": 3, "y": 4}
	r, err := calc.EvalString("x * y - 2", vars)
	if err != nil {
		panic(err)
	}
	fmt.Println(r)
	// Output: 10
}

func ExampleEvalString_error() {
	_, err := calc.EvalString("1 / 0", calc.Vars{})
	fmt.Println(err)
	// Output: Division by zero
}

func ExampleTokenize() {
	tokens, err := calc.Tokenize("x + 1")
	if err != nil {
		panic(err)
	}
	for _, tok := range tokens {
		fmt.Println(tok)
	}
	// Output:
	// Token(Variable, "x")
	// Token(Operator, "+")
	// Token(Number, "1")
	// Token(EOF, "")
}

func ExampleVariables() {
	tokens, err := calc.Tokenize("y + x * sin(y)")
	if err != nil {
		panic(err)
	}
	fmt.Println(calc.Variables(tokens))
	// Output: [x y]
}
