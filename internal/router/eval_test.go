package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DjordjeVuckovic/mathline/internal/apperr"
	"github.com/DjordjeVuckovic/mathline/internal/dto"
	"github.com/DjordjeVuckovic/mathline/internal/eval"
)

func newTestServer() *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = apperr.GlobalErrorHandler()
	NewEvalRouter(e, eval.NewEvaluator()).Bind()
	return e
}

func postEval(e *echo.Echo, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/eval", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestEvalHandler_Success(t *testing.T) {
	e := newTestServer()

	rec := postEval(e, `{"expression": "2 + 3 * 4"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.EvalResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Result)
	assert.Equal(t, 14.0, *resp.Result)
	assert.Equal(t, "14", resp.Formatted)
	assert.Equal(t, "2 + 3 * 4", resp.Expression)
	assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", resp.ID.String())
}

func TestEvalHandler_NonFiniteResult(t *testing.T) {
	e := newTestServer()

	rec := postEval(e, `{"expression": "10 ^ 1000"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.EvalResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Nil(t, resp.Result)
	assert.Equal(t, "+Inf", resp.Formatted)
}

func TestEvalHandler_MissingExpression(t *testing.T) {
	e := newTestServer()

	for _, body := range []string{`{}`, `{"expression": "  "}`} {
		rec := postEval(e, body)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "expression is required")
	}
}

func TestEvalHandler_EvalErrorsMapTo400(t *testing.T) {
	tests := []struct {
		name string
		body string
		kind string
	}{
		{name: "division by zero", body: `{"expression": "5 / 0"}`, kind: "DivisionByZero"},
		{name: "unmatched paren", body: `{"expression": "(2 + 3"}`, kind: "UnmatchedParenthesis"},
		{name: "bad character", body: `{"expression": "2 & 3"}`, kind: "UnexpectedCharacter"},
		{name: "malformed", body: `{"expression": "2 3"}`, kind: "MalformedExpression"},
	}

	e := newTestServer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postEval(e, tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)

			var resp map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.kind, resp["kind"])
		})
	}
}

func TestOperatorsHandler(t *testing.T) {
	e := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/operators", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var infos []dto.OperatorInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &infos))
	require.Len(t, infos, 7)

	bySymbolArity := func(symbol string, arity int) *dto.OperatorInfo {
		for i := range infos {
			if infos[i].Symbol.String() == symbol && infos[i].Arity == arity {
				return &infos[i]
			}
		}
		return nil
	}

	pow := bySymbolArity("^", 2)
	require.NotNil(t, pow)
	assert.Equal(t, "right", pow.Associativity)

	// binary subtraction and unary negation share the glyph
	require.NotNil(t, bySymbolArity("-", 2))
	neg := bySymbolArity("-", 1)
	require.NotNil(t, neg)
	assert.Greater(t, neg.Precedence, pow.Precedence)

	percent := bySymbolArity("%", 1)
	require.NotNil(t, percent)
	assert.Equal(t, "left", percent.Associativity)
}

func TestEvalHandler_InvalidBody(t *testing.T) {
	e := newTestServer()

	rec := postEval(e, `{"expression": 5}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
