package dto

import (
	"github.com/google/uuid"

	"github.com/DjordjeVuckovic/mathline/internal/types/operator"
)

type EvalRequest struct {
	Expression string `json:"expression"`
}

// EvalResponse carries one evaluation outcome. Result is omitted when the
// value is not finite (NaN/Inf are not representable in JSON numbers);
// Formatted always holds the display rendering.
type EvalResponse struct {
	ID         uuid.UUID `json:"id"`
	Expression string    `json:"expression"`
	Result     *float64  `json:"result,omitempty"`
	Formatted  string    `json:"formatted"`
}

// OperatorInfo describes one entry of the operator table for API clients.
// Symbol serializes through operator.Operator's TextMarshaler, so Neg
// renders as "-".
type OperatorInfo struct {
	Symbol        operator.Operator `json:"symbol"`
	Precedence    int               `json:"precedence"`
	Associativity string            `json:"associativity"`
	Arity         int               `json:"arity"`
}
