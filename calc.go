package calc

import (
	"slices"
	"strconv"
)

// Grammar, precedence low to high, both operator levels left-associative:
//
//	expression := term (('+' | '-') term)*
//	term       := factor (('*' | '/') factor)*
//	factor     := NUMBER
//	            | VARIABLE
//	            | FUNCTION '(' expression ')'
//	            | '(' expression ')'

// Evaluate computes the value of a token sequence, resolving variables
// through r. The sequence must be one produced by Tokenize or shaped like
// one: nonempty and terminated by a KindEOF token. Evaluate panics on a
// malformed sequence or a nil resolver; invalid input is never a panic but
// an error: *SyntaxError, *NumberError, *UnknownFunctionError,
// *ResolveError, or ErrDivisionByZero.
//
// Evaluation is a single pass: the recursive descent produces values
// directly, so the tokens are parsed and computed at once. Each call owns
// its own cursor; evaluating the same sequence again starts over from the
// first token.
func Evaluate(tokens []Token, r Resolver) (float64, error) {
	if r == nil {
		panic("calc: nil resolver")
	}
	if len(tokens) == 0 || tokens[len(tokens)-1].Kind != KindEOF {
		panic("calc: token sequence must end with a KindEOF token")
	}
	c := calculator{tokens: tokens, res: r}
	return c.calculate()
}

// EvalString is a shortcut to tokenize and evaluate an expression.
func EvalString(src string, r Resolver) (float64, error) {
	tokens, err := Tokenize(src)
	if err != nil {
		return 0, err
	}
	return Evaluate(tokens, r)
}

// Variables returns the distinct variable names appearing in a token
// sequence, sorted. Callers can use it to bind or prompt for every name
// before evaluating.
func Variables(tokens []Token) []string {
	seen := make(map[string]bool)
	var names []string
	for _, t := range tokens {
		if t.Kind == KindVariable && !seen[t.Text] {
			seen[t.Text] = true
			names = append(names, t.Text)
		}
	}
	slices.Sort(names)
	return names
}

// calculator runs one evaluation. pos is the cursor: the index of the token
// under consideration, monotonically nondecreasing and private to the call.
type calculator struct {
	tokens []Token
	res    Resolver
	pos    int
}

// calculate runs the start rule, then requires the cursor to have reached
// the terminator: trailing tokens such as in "2 3" are rejected.
func (c *calculator) calculate() (float64, error) {
	result, err := c.expression()
	if err != nil {
		return 0, err
	}
	if !c.isAtEnd() {
		return 0, &SyntaxError{Msg: "unexpected token: " + c.peek().Text}
	}
	return result, nil
}

func (c *calculator) expression() (float64, error) {
	result, err := c.term()
	if err != nil {
		return 0, err
	}
	for {
		switch {
		case c.matchOperator("+"):
			rhs, err := c.term()
			if err != nil {
				return 0, err
			}
			result += rhs
		case c.matchOperator("-"):
			rhs, err := c.term()
			if err != nil {
				return 0, err
			}
			result -= rhs
		default:
			return result, nil
		}
	}
}

func (c *calculator) term() (float64, error) {
	result, err := c.factor()
	if err != nil {
		return 0, err
	}
	for {
		switch {
		case c.matchOperator("*"):
			rhs, err := c.factor()
			if err != nil {
				return 0, err
			}
			result *= rhs
		case c.matchOperator("/"):
			divisor, err := c.factor()
			if err != nil {
				return 0, err
			}
			if divisor == 0 {
				return 0, ErrDivisionByZero
			}
			result /= divisor
		default:
			return result, nil
		}
	}
}

func (c *calculator) factor() (float64, error) {
	switch {
	case c.match(KindLeftParen):
		result, err := c.expression()
		if err != nil {
			return 0, err
		}
		if err := c.consume(KindRightParen, "expect ')' after expression"); err != nil {
			return 0, err
		}
		return result, nil
	case c.match(KindNumber):
		text := c.previous().Text
		x, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return 0, &NumberError{Text: text, Err: err}
		}
		return x, nil
	case c.match(KindVariable):
		name := c.previous().Text
		x, err := c.res.Resolve(name)
		if err != nil {
			return 0, &ResolveError{Name: name, Err: err}
		}
		return x, nil
	case c.match(KindFunction):
		name := c.previous().Text
		if err := c.consume(KindLeftParen, "expected '(' after function name"); err != nil {
			return 0, err
		}
		arg, err := c.expression()
		if err != nil {
			return 0, err
		}
		if err := c.consume(KindRightParen, "expected ')' after function argument"); err != nil {
			return 0, err
		}
		return applyFunc(name, arg)
	}
	return 0, &SyntaxError{Msg: "unexpected token: " + c.peek().Text}
}

// match consumes the current token only if it has kind k.
func (c *calculator) match(k Kind) bool {
	if !c.check(k) {
		return false
	}
	c.pos++
	return true
}

// matchOperator consumes the current token only if it is a KindOperator
// token spelled text.
func (c *calculator) matchOperator(text string) bool {
	if !c.check(KindOperator) || c.peek().Text != text {
		return false
	}
	c.pos++
	return true
}

// consume advances past the current token if it has kind k, and otherwise
// reports a *SyntaxError carrying msg.
func (c *calculator) consume(k Kind, msg string) error {
	if c.check(k) {
		c.advance()
		return nil
	}
	return &SyntaxError{Msg: msg}
}

// check reports whether the current token has kind k, without advancing. It
// is false on the terminator.
func (c *calculator) check(k Kind) bool {
	if c.isAtEnd() {
		return false
	}
	return c.peek().Kind == k
}

// advance consumes the current token and returns it. The cursor never moves
// past the terminator.
func (c *calculator) advance() Token {
	if !c.isAtEnd() {
		c.pos++
	}
	return c.previous()
}

// isAtEnd reports whether the cursor is on the terminating KindEOF token.
func (c *calculator) isAtEnd() bool {
	return c.peek().Kind == KindEOF
}

// peek returns the current token without advancing.
func (c *calculator) peek() Token {
	return c.tokens[c.pos]
}

// previous returns the most recently consumed token.
func (c *calculator) previous() Token {
	return c.tokens[c.pos-1]
}
