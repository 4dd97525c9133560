package calc

import (
	"strconv"
	"unicode"
	"unicode/utf8"
)

// Kind classifies a token.
type Kind int

const (
	// KindEOF marks the end of the token sequence. It is the kind of the
	// zero Token, and the only kind whose text is empty.
	KindEOF Kind = iota
	// KindNumber is a numeric literal, e.g. 2 or 3.14.
	KindNumber
	// KindVariable is a name to be resolved at evaluation time.
	KindVariable
	// KindFunction is a reserved builtin function name.
	KindFunction
	// KindOperator is one of + - * /.
	KindOperator
	// KindLeftParen is (.
	KindLeftParen
	// KindRightParen is ).
	KindRightParen
)

//go:generate go run golang.org/x/tools/cmd/stringer@v0.33.0 -type=Kind -trimprefix=Kind

// Token is a classified lexical unit of an expression. Tokens are immutable;
// the lexer produces them in order and nothing modifies them afterward.
type Token struct {
	// Kind is the token's classification.
	Kind Kind
	// Text is the token's spelling in the input. It is empty only for
	// KindEOF tokens.
	Text string
}

func (t Token) String() string {
	return "Token(" + t.Kind.String() + ", " + strconv.Quote(t.Text) + ")"
}

// Tokenize converts an expression into its token sequence. The sequence
// always ends with exactly one KindEOF token. Tokenize accepts any input
// made of whitespace, digits and dots, letters, the operators + - * /, and
// parentheses; any other character produces a *LexError. Identifiers that
// spell a builtin function name (sin, cos, tan; exact match) become
// KindFunction tokens, all other identifiers become KindVariable.
//
// Number scanning is deliberately lenient: it consumes any run of digits and
// dots, so text like "1.2.3" or "." lexes as a single KindNumber token and
// is rejected later, when the evaluator converts it to a float64.
func Tokenize(input string) ([]Token, error) {
	s := scanner{src: input, col: 1}
	var toks []Token
	for {
		r, ok := s.peek()
		if !ok {
			break
		}
		switch {
		case unicode.IsSpace(r):
			s.next()
		case unicode.IsDigit(r), r == '.':
			toks = append(toks, Token{KindNumber, s.scanNumber()})
		case unicode.IsLetter(r):
			text := s.scanIdent()
			if _, ok := builtins[text]; ok {
				toks = append(toks, Token{KindFunction, text})
			} else {
				toks = append(toks, Token{KindVariable, text})
			}
		case r == '+', r == '-', r == '*', r == '/':
			s.next()
			toks = append(toks, Token{KindOperator, string(r)})
		case r == '(':
			s.next()
			toks = append(toks, Token{KindLeftParen, "("})
		case r == ')':
			s.next()
			toks = append(toks, Token{KindRightParen, ")"})
		default:
			return nil, &LexError{Char: r, Col: s.col}
		}
	}
	return append(toks, Token{Kind: KindEOF}), nil
}

// scanner steps through src one rune at a time with a single rune of
// lookahead and no backtracking.
type scanner struct {
	src string
	pos int // byte offset of the rune under the cursor
	col int // 1-based rune column of the rune under the cursor
}

// peek returns the rune under the cursor without advancing. The second
// result is false at end of input.
func (s *scanner) peek() (rune, bool) {
	if s.pos >= len(s.src) {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(s.src[s.pos:])
	return r, true
}

// next advances the cursor past the rune under it.
func (s *scanner) next() {
	_, sz := utf8.DecodeRuneInString(s.src[s.pos:])
	s.pos += sz
	s.col++
}

// scanNumber consumes a greedy run of digits and dots.
func (s *scanner) scanNumber() string {
	start := s.pos
	for {
		r, ok := s.peek()
		if !ok || (!unicode.IsDigit(r) && r != '.') {
			break
		}
		s.next()
	}
	return s.src[start:s.pos]
}

// scanIdent consumes a greedy run of letters. Digits and underscores do not
// continue an identifier.
func (s *scanner) scanIdent() string {
	start := s.pos
	for {
		r, ok := s.peek()
		if !ok || !unicode.IsLetter(r) {
			break
		}
		s.next()
	}
	return s.src[start:s.pos]
}

// LexError indicates a character that cannot begin any token.
type LexError struct {
	// Char is the offending character.
	Char rune
	// Col is the 1-based rune column of the character in the input.
	Col int
}

func (err *LexError) Error() string {
	return "unexpected character at column " + strconv.Itoa(err.Col) + ": " + strconv.QuoteRune(err.Char)
}
