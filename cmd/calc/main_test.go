package main

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jordosi/calc"
)

func TestEvalLine(t *testing.T) {
	cases := []struct {
		name string
		src  string
		verb string
		want string
	}{
		{"result", "2 + 3 * 4", "%g", "Result: 14\n"},
		{"formatted", "20 / 8", "%.3f", "Result: 2.500\n"},
		{"division by zero", "2 / 0", "%g", "Error: Division by zero\n"},
		{"lex error", "2 $ 3", "%g", "Error: unexpected character at column 3: '$'\n"},
		{"syntax error", "(2 + 3", "%g", "Error: expect ')' after expression\n"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var out bytes.Buffer
			evalLine(&out, c.src, calc.Vars{}, c.verb)
			assert.Equal(t, c.want, out.String())
		})
	}
}

func TestREPL(t *testing.T) {
	in := bufio.NewReader(strings.NewReader("x + y\n2\n3\nx * 2\n"))
	var out bytes.Buffer
	res := newPromptResolver(in, &out, nil)
	repl(in, &out, res, "%g")
	want := "Enter expression: " +
		"Enter value for variable x: Enter value for variable y: Result: 5\n" +
		"Enter expression: Result: 4\n" +
		"Enter expression: "
	assert.Equal(t, want, out.String())
}

func TestREPLSkipsBlankLines(t *testing.T) {
	in := bufio.NewReader(strings.NewReader("\n\n1 + 1\n"))
	var out bytes.Buffer
	repl(in, &out, calc.Vars{}, "%g")
	want := "Enter expression: Enter expression: Enter expression: Result: 2\n" +
		"Enter expression: "
	assert.Equal(t, want, out.String())
}
