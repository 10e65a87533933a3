package main

import (
	"log/slog"
	"os"

	"github.com/labstack/echo/v4"

	"github.com/DjordjeVuckovic/mathline/internal/eval"
	"github.com/DjordjeVuckovic/mathline/internal/router"
	"github.com/DjordjeVuckovic/mathline/internal/server"
)

func main() {
	cfg, err := server.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	e := echo.New()
	e.HideBanner = true

	s := server.NewServer(e, cfg)

	s.Echo.GET("/", func(c echo.Context) error {
		return c.String(200, "mathline eval API is running")
	})

	evalRouter := router.NewEvalRouter(s.Echo, eval.NewEvaluator())
	evalRouter.Bind()

	slog.Info("Starting eval API", "port", cfg.Port)
	if err := s.Start(); err != nil {
		s.Echo.Logger.Error("Failed to start server: ", err)
		os.Exit(1)
	}
}
