package token

import "github.com/DjordjeVuckovic/mathline/internal/types/operator"

type Type int

const (
	EOF Type = iota
	NUMBER
	PLUS
	MINUS
	UMINUS
	STAR
	SLASH
	CARET
	PERCENT
	LPAREN
	RPAREN
)

func (t Type) String() string {
	switch t {
	case EOF:
		return "EOF"
	case NUMBER:
		return "NUMBER"
	case PLUS:
		return "PLUS"
	case MINUS:
		return "MINUS"
	case UMINUS:
		return "UMINUS"
	case STAR:
		return "STAR"
	case SLASH:
		return "SLASH"
	case CARET:
		return "CARET"
	case PERCENT:
		return "PERCENT"
	case LPAREN:
		return "LPAREN"
	case RPAREN:
		return "RPAREN"
	default:
		return "UNKNOWN"
	}
}

// IsOperator reports whether the type is one of the arithmetic operators,
// unary minus included.
func (t Type) IsOperator() bool {
	switch t {
	case PLUS, MINUS, UMINUS, STAR, SLASH, CARET, PERCENT:
		return true
	default:
		return false
	}
}

// Token represents a lexical token with its type, source text, and for
// NUMBER tokens the parsed value. Immutable once produced.
type Token struct {
	Type   Type
	Value  string
	Number float64
}

var typeOperators = map[Type]operator.Operator{
	PLUS:    operator.Add,
	MINUS:   operator.Sub,
	UMINUS:  operator.Neg,
	STAR:    operator.Mul,
	SLASH:   operator.Div,
	CARET:   operator.Pow,
	PERCENT: operator.Percent,
}

// Operator maps an operator token to its operator value object.
// The second return is false for non-operator tokens.
func (t Token) Operator() (operator.Operator, bool) {
	op, ok := typeOperators[t.Type]
	return op, ok
}
