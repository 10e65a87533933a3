package token

import (
	"strconv"
	"unicode"

	"github.com/DjordjeVuckovic/mathline/internal/apperr"
)

// Tokenizer breaks an expression string into tokens for evaluation.
// It holds no state of its own; each Tokenize call scans with its own
// cursor, so a single Tokenizer is safe for concurrent use.
type Tokenizer struct {
}

func NewTokenizer() *Tokenizer {
	return &Tokenizer{}
}

// Tokenize converts the input string into a slice of Tokens.
// Example: Input: `-(3 + 2) * 50%`
//
// A `-` is tagged UMINUS when it opens the expression or directly follows
// an operator or a left parenthesis, so the evaluator never re-derives
// context. Empty or whitespace-only input yields an empty slice, not an
// error. Error positions are rune offsets into the original input.
func (t *Tokenizer) Tokenize(input string) ([]Token, error) {
	s := &scanner{input: []rune(input)}
	return s.scan()
}

type scanner struct {
	input []rune
	pos   int
}

func (s *scanner) scan() ([]Token, error) {
	var tokens []Token

	for s.pos < len(s.input) {
		ch := s.input[s.pos]
		switch {
		case unicode.IsSpace(ch):
			s.pos++
		case ch == '(':
			tokens = append(tokens, Token{Type: LPAREN, Value: "("})
			s.pos++
		case ch == ')':
			tokens = append(tokens, Token{Type: RPAREN, Value: ")"})
			s.pos++
		case isDigit(ch) || ch == '.':
			tok, err := s.readNumber()
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, tok)
		case ch == '-':
			if minusIsUnary(tokens) {
				tokens = append(tokens, Token{Type: UMINUS, Value: "-"})
			} else {
				tokens = append(tokens, Token{Type: MINUS, Value: "-"})
			}
			s.pos++
		case ch == '+':
			tokens = append(tokens, Token{Type: PLUS, Value: "+"})
			s.pos++
		case ch == '*':
			tokens = append(tokens, Token{Type: STAR, Value: "*"})
			s.pos++
		case ch == '/':
			tokens = append(tokens, Token{Type: SLASH, Value: "/"})
			s.pos++
		case ch == '^':
			tokens = append(tokens, Token{Type: CARET, Value: "^"})
			s.pos++
		case ch == '%':
			tokens = append(tokens, Token{Type: PERCENT, Value: "%"})
			s.pos++
		default:
			return nil, apperr.NewSyntax(apperr.UnexpectedCharacter, s.pos, strconv.QuoteRune(ch))
		}
	}

	return tokens, nil
}

// minusIsUnary decides prefix vs binary minus from the tokens emitted so
// far: expression start, an operator, or an opening parenthesis all mean a
// negation follows.
func minusIsUnary(emitted []Token) bool {
	if len(emitted) == 0 {
		return true
	}
	prev := emitted[len(emitted)-1].Type
	return prev.IsOperator() || prev == LPAREN
}

// readNumber scans a maximal run of digits and decimal points.
// A second decimal point in one run is rejected rather than split into
// two tokens.
func (s *scanner) readNumber() (Token, error) {
	start := s.pos
	dots := 0
	for s.pos < len(s.input) && (isDigit(s.input[s.pos]) || s.input[s.pos] == '.') {
		if s.input[s.pos] == '.' {
			dots++
		}
		s.pos++
	}

	raw := string(s.input[start:s.pos])
	if dots > 1 {
		return Token{}, apperr.NewSyntax(apperr.InvalidNumber, start, raw)
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return Token{}, apperr.NewSyntax(apperr.InvalidNumber, start, raw)
	}

	return Token{Type: NUMBER, Value: raw, Number: value}, nil
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}
