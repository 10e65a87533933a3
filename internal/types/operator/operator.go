package operator

import (
	"fmt"
)

// Operator represents a single arithmetic operation in an expression.
// Value object with a static precedence/associativity/arity table.
//
// Usage:
//
//	spec := operator.Pow.Spec() // precedence 3, right-associative, binary
type Operator string

const (
	// Add is binary addition
	Add Operator = "+"

	// Sub is binary subtraction
	Sub Operator = "-"

	// Mul is binary multiplication
	Mul Operator = "*"

	// Div is binary division (fails on a zero divisor)
	Div Operator = "/"

	// Pow is binary exponentiation, the only right-associative operator
	Pow Operator = "^"

	// Neg is unary prefix minus, resolved contextually by the tokenizer
	Neg Operator = "neg"

	// Percent is unary postfix percent: divides its operand by 100
	Percent Operator = "%"
)

type Associativity int

const (
	AssocLeft Associativity = iota
	AssocRight
)

func (a Associativity) String() string {
	if a == AssocRight {
		return "right"
	}
	return "left"
}

type Arity int

const (
	Unary  Arity = 1
	Binary Arity = 2
)

// Spec is the static lookup data for one operator. Defined once at
// process start; never mutated.
type Spec struct {
	Precedence int
	Assoc      Associativity
	Arity      Arity
}

var specs = map[Operator]Spec{
	Add:     {Precedence: 1, Assoc: AssocLeft, Arity: Binary},
	Sub:     {Precedence: 1, Assoc: AssocLeft, Arity: Binary},
	Mul:     {Precedence: 2, Assoc: AssocLeft, Arity: Binary},
	Div:     {Precedence: 2, Assoc: AssocLeft, Arity: Binary},
	Pow:     {Precedence: 3, Assoc: AssocRight, Arity: Binary},
	Neg:     {Precedence: 4, Assoc: AssocRight, Arity: Unary},
	Percent: {Precedence: 4, Assoc: AssocLeft, Arity: Unary},
}

// All returns every operator in precedence order, lowest first.
// Sub and Neg share the `-` glyph; Neg is listed with unary arity.
func All() []Operator {
	return []Operator{Add, Sub, Mul, Div, Pow, Neg, Percent}
}

func Parse(s string) (Operator, error) {
	op := Operator(s)
	switch op {
	case Add, Sub, Mul, Div, Pow, Percent:
		return op, nil
	default:
		return "", fmt.Errorf("invalid operator: %q (must be one of + - * / ^ %%)", s)
	}
}

// Spec returns the precedence/associativity/arity entry for the operator.
func (o Operator) Spec() Spec {
	return specs[o]
}

// String returns the source-text representation of the operator.
func (o Operator) String() string {
	if o == Neg {
		return "-"
	}
	return string(o)
}

// IsUnary returns true for the single-operand operators (Neg, Percent)
func (o Operator) IsUnary() bool {
	return specs[o].Arity == Unary
}

// IsRightAssociative returns true if equal-precedence ties group rightward
func (o Operator) IsRightAssociative() bool {
	return specs[o].Assoc == AssocRight
}

// Validate ensures the operator has a spec entry
func (o Operator) Validate() error {
	if _, ok := specs[o]; !ok {
		return fmt.Errorf("invalid operator: %q", string(o))
	}
	return nil
}

// MarshalText implements encoding.TextMarshaler for JSON serialization
func (o Operator) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for JSON deserialization
func (o *Operator) UnmarshalText(text []byte) error {
	op, err := Parse(string(text))
	if err != nil {
		return err
	}
	*o = op
	return nil
}
