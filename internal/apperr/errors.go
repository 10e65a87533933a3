package apperr

import "fmt"

type SyntaxKind int

const (
	InvalidNumber SyntaxKind = iota
	UnexpectedCharacter
)

func (k SyntaxKind) String() string {
	switch k {
	case InvalidNumber:
		return "InvalidNumber"
	case UnexpectedCharacter:
		return "UnexpectedCharacter"
	default:
		return "UnknownSyntaxKind"
	}
}

// SyntaxError reports malformed input text found while tokenizing.
// Pos is the rune offset of the offending character or number run.
type SyntaxError struct {
	Kind   SyntaxKind
	Pos    int
	Detail string
}

func (e *SyntaxError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("syntax error at position %d: %s: %s", e.Pos, e.Kind, e.Detail)
	}
	return fmt.Sprintf("syntax error at position %d: %s", e.Pos, e.Kind)
}

func NewSyntax(kind SyntaxKind, pos int, detail string) *SyntaxError {
	return &SyntaxError{Kind: kind, Pos: pos, Detail: detail}
}

type EvalKind int

const (
	UnmatchedParenthesis EvalKind = iota
	DivisionByZero
	InsufficientOperands
	MalformedExpression
)

func (k EvalKind) String() string {
	switch k {
	case UnmatchedParenthesis:
		return "UnmatchedParenthesis"
	case DivisionByZero:
		return "DivisionByZero"
	case InsufficientOperands:
		return "InsufficientOperands"
	case MalformedExpression:
		return "MalformedExpression"
	default:
		return "UnknownEvalKind"
	}
}

// EvalError reports a structurally or semantically invalid token sequence.
type EvalError struct {
	Kind   EvalKind
	Detail string
}

func (e *EvalError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("eval error: %s: %s", e.Kind, e.Detail)
	}
	return fmt.Sprintf("eval error: %s", e.Kind)
}

func NewEval(kind EvalKind, detail string) *EvalError {
	return &EvalError{Kind: kind, Detail: detail}
}
