package eval

import (
	"math"

	"github.com/DjordjeVuckovic/mathline/internal/apperr"
	"github.com/DjordjeVuckovic/mathline/internal/token"
	"github.com/DjordjeVuckovic/mathline/internal/types/operator"
)

// Result is the outcome of evaluating one expression line.
// Empty marks whitespace-only input, which is a no-op rather than an error.
type Result struct {
	Value float64
	Empty bool
}

// Evaluator evaluates arithmetic expressions in a single left-to-right
// pass using an operand stack and an operator stack (Shunting Yard with
// apply-on-pop). All evaluation state is scoped to one call — the stacks
// live in a per-call state struct and the tokenizer scans with a per-call
// cursor — so a single Evaluator is safe for concurrent use.
type Evaluator struct {
	tokenizer *token.Tokenizer
}

func NewEvaluator() *Evaluator {
	return &Evaluator{
		tokenizer: token.NewTokenizer(),
	}
}

// Evaluate tokenizes and evaluates one expression.
func (e *Evaluator) Evaluate(expression string) (Result, error) {
	tokens, err := e.tokenizer.Tokenize(expression)
	if err != nil {
		return Result{}, err
	}
	if len(tokens) == 0 {
		return Result{Empty: true}, nil
	}

	value, err := e.run(tokens)
	if err != nil {
		return Result{}, err
	}
	return Result{Value: value}, nil
}

type state struct {
	operands []float64
	pending  []token.Token
}

func (s *state) run(tokens []token.Token) (float64, error) {
	for _, tok := range tokens {
		switch tok.Type {
		case token.NUMBER:
			s.operands = append(s.operands, tok.Number)
		case token.LPAREN:
			s.pending = append(s.pending, tok)
		case token.RPAREN:
			if err := s.closeParen(); err != nil {
				return 0, err
			}
		case token.PERCENT:
			// postfix, binds tightest: applies to the operand already
			// on the stack
			if err := s.apply(operator.Percent); err != nil {
				return 0, err
			}
		case token.UMINUS:
			// prefix, binds tighter than any binary operator: pushed
			// without popping
			s.pending = append(s.pending, tok)
		default:
			op, ok := tok.Operator()
			if !ok {
				return 0, apperr.NewEval(apperr.MalformedExpression, "unexpected token "+tok.Type.String())
			}
			if err := s.pushBinary(tok, op); err != nil {
				return 0, err
			}
		}
	}

	return s.finish()
}

// pushBinary pops pending operators that bind at least as tight as op
// (strictly tighter when op is right-associative), then pushes op.
func (s *state) pushBinary(tok token.Token, op operator.Operator) error {
	spec := op.Spec()
	for len(s.pending) > 0 {
		top := s.pending[len(s.pending)-1]
		if top.Type == token.LPAREN {
			break
		}
		topOp, _ := top.Operator()
		topSpec := topOp.Spec()
		if topSpec.Precedence < spec.Precedence {
			break
		}
		if topSpec.Precedence == spec.Precedence && spec.Assoc == operator.AssocRight {
			break
		}
		s.pending = s.pending[:len(s.pending)-1]
		if err := s.apply(topOp); err != nil {
			return err
		}
	}
	s.pending = append(s.pending, tok)
	return nil
}

// closeParen pops and applies until the matching left parenthesis, which
// is discarded.
func (s *state) closeParen() error {
	for len(s.pending) > 0 {
		top := s.pending[len(s.pending)-1]
		s.pending = s.pending[:len(s.pending)-1]
		if top.Type == token.LPAREN {
			return nil
		}
		op, _ := top.Operator()
		if err := s.apply(op); err != nil {
			return err
		}
	}
	return apperr.NewEval(apperr.UnmatchedParenthesis, "no matching '('")
}

// finish drains the operator stack and checks the single-result invariant:
// exactly one operand left, no pending operators.
func (s *state) finish() (float64, error) {
	for len(s.pending) > 0 {
		top := s.pending[len(s.pending)-1]
		s.pending = s.pending[:len(s.pending)-1]
		if top.Type == token.LPAREN {
			return 0, apperr.NewEval(apperr.UnmatchedParenthesis, "'(' is never closed")
		}
		op, _ := top.Operator()
		if err := s.apply(op); err != nil {
			return 0, err
		}
	}

	if len(s.operands) != 1 {
		return 0, apperr.NewEval(apperr.MalformedExpression, "expression does not reduce to a single value")
	}
	return s.operands[0], nil
}

// apply pops the operator's operands and pushes the result.
func (s *state) apply(op operator.Operator) error {
	arity := int(op.Spec().Arity)
	if len(s.operands) < arity {
		return apperr.NewEval(apperr.InsufficientOperands, "operator "+op.String()+" is missing operands")
	}

	if op.IsUnary() {
		a := s.operands[len(s.operands)-1]
		s.operands = s.operands[:len(s.operands)-1]
		switch op {
		case operator.Neg:
			s.operands = append(s.operands, -a)
		case operator.Percent:
			s.operands = append(s.operands, a/100)
		}
		return nil
	}

	b := s.operands[len(s.operands)-1]
	a := s.operands[len(s.operands)-2]
	s.operands = s.operands[:len(s.operands)-2]

	var result float64
	switch op {
	case operator.Add:
		result = a + b
	case operator.Sub:
		result = a - b
	case operator.Mul:
		result = a * b
	case operator.Div:
		if b == 0 {
			return apperr.NewEval(apperr.DivisionByZero, "")
		}
		result = a / b
	case operator.Pow:
		// NaN/Inf from negative bases or overflow pass through untouched
		result = math.Pow(a, b)
	}

	s.operands = append(s.operands, result)
	return nil
}

func (e *Evaluator) run(tokens []token.Token) (float64, error) {
	s := &state{}
	return s.run(tokens)
}
