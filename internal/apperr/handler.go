package apperr

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
)

func GlobalErrorHandler() echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var se *SyntaxError
		if errors.As(err, &se) {
			_ = c.JSON(http.StatusBadRequest, map[string]string{
				"error": se.Error(),
				"kind":  se.Kind.String(),
				"title": "syntax error",
			})
			return
		}

		var ee *EvalError
		if errors.As(err, &ee) {
			_ = c.JSON(http.StatusBadRequest, map[string]string{
				"error": ee.Error(),
				"kind":  ee.Kind.String(),
				"title": "evaluation error",
			})
			return
		}

		var he *echo.HTTPError
		if errors.As(err, &he) {
			msg := fmt.Sprintf("%v", he.Message)
			_ = c.JSON(he.Code, map[string]string{"error": msg})
			return
		}

		slog.Error("Unhandled error", "error", err)
		_ = c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}
}
