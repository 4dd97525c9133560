package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jordosi/calc"
)

// promptResolver asks for each variable the first time it appears and
// remembers the answer for the rest of the process. A value that fails to
// parse is not remembered, so the next occurrence asks again.
type promptResolver struct {
	in     *bufio.Reader
	out    io.Writer
	values map[string]float64
}

var _ calc.Resolver = (*promptResolver)(nil)

func newPromptResolver(in *bufio.Reader, out io.Writer, given map[string]float64) *promptResolver {
	values := make(map[string]float64, len(given))
	for name, v := range given {
		values[name] = v
	}
	return &promptResolver{in: in, out: out, values: values}
}

func (p *promptResolver) Resolve(name string) (float64, error) {
	if v, ok := p.values[name]; ok {
		return v, nil
	}
	fmt.Fprintf(p.out, "Enter value for variable %s: ", name)
	line, err := p.in.ReadString('\n')
	if line == "" && err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(line), 64)
	if err != nil {
		return 0, err
	}
	p.values[name] = v
	return v, nil
}
