package router

import (
	"math"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/DjordjeVuckovic/mathline/internal/dto"
	"github.com/DjordjeVuckovic/mathline/internal/eval"
	"github.com/DjordjeVuckovic/mathline/internal/repl"
	"github.com/DjordjeVuckovic/mathline/internal/types/operator"
)

type EvalRouter struct {
	e         *echo.Echo
	evaluator *eval.Evaluator
}

func NewEvalRouter(e *echo.Echo, evaluator *eval.Evaluator) *EvalRouter {
	return &EvalRouter{
		e:         e,
		evaluator: evaluator,
	}
}

func (r *EvalRouter) Bind() {
	r.e.POST("/eval", r.evalHandler)
	r.e.GET("/operators", r.operatorsHandler)
}

func (r *EvalRouter) operatorsHandler(c echo.Context) error {
	ops := operator.All()
	infos := make([]dto.OperatorInfo, 0, len(ops))
	for _, op := range ops {
		spec := op.Spec()
		infos = append(infos, dto.OperatorInfo{
			Symbol:        op,
			Precedence:    spec.Precedence,
			Associativity: spec.Assoc.String(),
			Arity:         int(spec.Arity),
		})
	}
	return c.JSON(http.StatusOK, infos)
}

func (r *EvalRouter) evalHandler(c echo.Context) error {
	var req dto.EvalRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	if strings.TrimSpace(req.Expression) == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "expression is required"})
	}

	res, err := r.evaluator.Evaluate(req.Expression)
	if err != nil {
		// the global error handler maps syntax/eval errors to 400
		return err
	}

	resp := dto.EvalResponse{
		ID:         uuid.New(),
		Expression: req.Expression,
		Formatted:  repl.FormatResult(res.Value),
	}
	if !math.IsNaN(res.Value) && !math.IsInf(res.Value, 0) {
		v := res.Value
		resp.Result = &v
	}

	return c.JSON(http.StatusOK, resp)
}
