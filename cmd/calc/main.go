// Command calc evaluates arithmetic expressions.
//
// Expressions given as arguments are evaluated in order. With no arguments,
// calc reads expressions from stdin, one per line, and prompts for the value
// of any variable it has not seen before. Variables may be predefined with
// -given, e.g.
//
//	calc -given x=2 -given y=3 '(x + y) * sin(30) - 1'
//
// Setting the DEBUG environment variable enables debug logging.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/jordosi/calc"
)

func main() {
	log.SetFlags(0)
	if os.Getenv("DEBUG") != "" {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}
	var verb string
	given := make(map[string]float64)
	addgiven := func(s string) error {
		d := strings.SplitN(s, "=", 2)
		if len(d) != 2 {
			return fmt.Errorf(`variable definitions must be "name=value", not %q`, s)
		}
		name := strings.TrimSpace(d[0])
		v, err := strconv.ParseFloat(strings.TrimSpace(d[1]), 64)
		if err != nil {
			return fmt.Errorf("setting %s: %v", name, err)
		}
		given[name] = v
		return nil
	}
	flag.StringVar(&verb, "fmt", "%g", "result formatting verb")
	flag.Func("given", "name=value variable definition (any number of times)", addgiven)
	flag.Parse()

	in := bufio.NewReader(os.Stdin)
	res := newPromptResolver(in, os.Stdout, given)
	if flag.NArg() > 0 {
		for _, arg := range flag.Args() {
			evalLine(os.Stdout, arg, res, verb)
		}
		return
	}
	repl(in, os.Stdout, res, verb)
}

// repl prompts for expressions until the input runs out. Blank lines are
// skipped. The resolver reads variable values from the same input, so a
// prompted value consumes the next line.
func repl(in *bufio.Reader, out io.Writer, res calc.Resolver, verb string) {
	for {
		fmt.Fprint(out, "Enter expression: ")
		line, err := in.ReadString('\n')
		if line = strings.TrimSpace(line); line != "" {
			evalLine(out, line, res, verb)
		}
		if err != nil {
			if err != io.EOF {
				log.Fatal(err)
			}
			return
		}
	}
}

func evalLine(out io.Writer, src string, res calc.Resolver, verb string) {
	tokens, err := calc.Tokenize(src)
	if err != nil {
		fmt.Fprintf(out, "Error: %v\n", err)
		return
	}
	slog.Debug("tokenized", "expr", src, "tokens", len(tokens), "variables", calc.Variables(tokens))
	r, err := calc.Evaluate(tokens, res)
	if err != nil {
		fmt.Fprintf(out, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(out, "Result: "+verb+"\n", r)
}
